// hexmatch is a match-3 puzzle game for the terminal, played on hex and
// square boards.
//
// Usage:
//
//	hexmatch list              - List games and builtin levels
//	hexmatch play <game>       - Play a game
//	hexmatch menu              - Pick a game and level interactively
//	hexmatch scores <game>     - Show high scores for a game
//	hexmatch bench <game>      - Play headless games and report statistics
//	hexmatch trace <game>      - Print the engine event log of one game
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 30)
//	--seed <value>       - Set RNG seed for reproducible boards
//	--db <path>          - Set database path (default: ~/.hexmatch/scores.db)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hexmatch/internal/config"
	"github.com/vovakirdan/tui-hexmatch/internal/games/hexmatch"
	"github.com/vovakirdan/tui-hexmatch/internal/registry"
	"github.com/vovakirdan/tui-hexmatch/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

// logger is configured from --log-level before any command runs.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "hexmatch",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hexmatch",
	Short: "Hex Match - match-3 on hex and square boards in your terminal",
	Long: `Hex Match is a terminal match-3 game. Swap neighbouring stones to line
up three of a colour; matches are cleared, stones fall and new ones drop
in from the top edge until the board settles.

Available commands:
  list     - Show games and builtin levels
  play     - Play a game
  menu     - Interactive game and level picker
  scores   - View high scores
  bench    - Play many headless games and report statistics
  trace    - Print the event log of a headless game

Examples:
  hexmatch list
  hexmatch play hexmatch
  hexmatch play squarematch --difficulty hard
  hexmatch play hexmatch --level ./levels/custom.yaml
  hexmatch scores hexmatch --tui
  hexmatch bench hexmatch --runs 200
  hexmatch trace squarematch --seed 42`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		lvl, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(lvl)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(traceCmd)
}

// requireGame fails with a hint when id is not a registered game.
func requireGame(id string) (hexmatch.Variant, error) {
	if !registry.Exists(id) {
		return hexmatch.Variant{}, fmt.Errorf("unknown game %q, run 'hexmatch list' to see available games", id)
	}
	for _, v := range hexmatch.Variants {
		if v.ID == id {
			return v, nil
		}
	}
	return hexmatch.Variant{}, fmt.Errorf("game %q has no level", id)
}

// parseDifficulty validates a --difficulty value. Empty means none.
func parseDifficulty(s string) (config.DifficultyPreset, error) {
	if s == "" {
		return "", nil
	}
	p, ok := config.ParsePreset(s)
	if !ok {
		return "", fmt.Errorf("unknown difficulty %q, want easy, normal, hard or fixed", s)
	}
	return p, nil
}
