package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hexmatch/internal/games/hexmatch"
	"github.com/vovakirdan/tui-hexmatch/internal/level"
	"github.com/vovakirdan/tui-hexmatch/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List games and builtin levels",
	Long: `Shows the registered games and the levels embedded in the binary.
Any level can be played with 'hexmatch play <game> --level <id>'.`,
	Run: runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	defaults := make(map[string]string, len(hexmatch.Variants))
	for _, v := range hexmatch.Variants {
		defaults[v.ID] = v.Level
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Level")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, defaults[g.ID])
	}

	fmt.Println()
	fmt.Println("Builtin levels:")
	fmt.Println()
	fmt.Printf("  %-10s  %-22s  %-8s  %6s  %5s\n", "ID", "Name", "Shape", "Cells", "Moves")
	fmt.Printf("  %-10s  %-22s  %-8s  %6s  %5s\n", "--", "----", "-----", "-----", "-----")
	for _, id := range level.BuiltinIDs() {
		lvl, err := level.Builtin(id)
		if err != nil {
			logger.Warn("cannot load builtin level", "level", id, "err", err)
			continue
		}
		cells := "?"
		if grid, _, _, err := lvl.Build(); err == nil {
			cells = fmt.Sprint(grid.Len())
		}
		moves := "∞"
		if lvl.Moves > 0 {
			moves = fmt.Sprint(lvl.Moves)
		}
		fmt.Printf("  %-10s  %-22s  %-8s  %6s  %5s\n", lvl.ID, lvl.Name, lvl.Shape.Kind, cells, moves)
	}

	fmt.Println()
	fmt.Println("Run 'hexmatch play <id>' to play a game.")
}
