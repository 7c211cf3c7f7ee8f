package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hexmatch/internal/core"
	"github.com/vovakirdan/tui-hexmatch/internal/games/hexmatch"
	"github.com/vovakirdan/tui-hexmatch/internal/level"
	"github.com/vovakirdan/tui-hexmatch/internal/platform/tui"
	"github.com/vovakirdan/tui-hexmatch/internal/registry"
	"github.com/vovakirdan/tui-hexmatch/internal/storage"
)

var flagLevelsDir string

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a game and level from a menu",
	Long: `Start in interactive menu mode.

Choose a game, then a level: the game's default, a builtin level, or a
level file from --levels. After a game ends you return to the menu.

Controls:
  Up/Down/j/k  - Navigate
  Enter        - Select
  Esc          - Back
  Tab          - High scores
  Q            - Quit

Examples:
  hexmatch menu
  hexmatch menu --levels ./levels --difficulty easy`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory with extra level YAML files")
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// menuLevels lists the builtin levels followed by the levels in dir.
func menuLevels(dir string) []tui.LevelItem {
	var items []tui.LevelItem
	for _, id := range level.BuiltinIDs() {
		if lvl, err := level.Builtin(id); err == nil {
			items = append(items, tui.LevelItem{Ref: id, Name: lvl.Name, Shape: string(lvl.Shape.Kind)})
		}
	}
	if dir == "" {
		return items
	}

	extra, err := level.NewLoader(dir).LoadAll()
	if err != nil {
		logger.Warn("cannot load levels", "dir", dir, "err", err)
	}
	for _, lvl := range extra {
		items = append(items, tui.LevelItem{Ref: lvl.FilePath, Name: lvl.Name, Shape: string(lvl.Shape.Kind)})
	}
	return items
}

func runMenu(_ *cobra.Command, _ []string) error {
	if _, err := parseDifficulty(flagDifficulty); err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	levels := menuLevels(flagLevelsDir)
	session := storage.NewSessionID()
	hexmatch.SetConfigPath(flagConfig)
	hexmatch.SetDifficultyPreset(flagDifficulty)
	hexmatch.SetLogger(log.New(io.Discard))

	for {
		res, err := tui.RunMenu(levels, cfg)
		if err != nil {
			return err
		}
		cfg = res.Config

		switch {
		case res.Quit:
			printSessionSummary(store, session)
			return nil
		case res.WantsScoreboard:
			if err := tui.RunScoreboard(store, "", cfg.ScreenW, cfg.ScreenH); err != nil {
				return err
			}
			continue
		}

		hexmatch.SetLevelPath(res.Level)
		game, err := registry.Create(res.GameID)
		if err != nil {
			return err
		}

		// A fresh board every time unless the seed was fixed
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		if err := tui.Run(game, cfg, tui.Options{Store: store, SessionID: session}); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if g, ok := game.(*hexmatch.Game); ok && g.Err() != nil {
			logger.Error("game failed", "game", res.GameID, "err", g.Err())
		}
	}
}

// printSessionSummary reports the games of a finished menu session.
func printSessionSummary(store *storage.Store, session string) {
	if store == nil {
		return
	}
	entries, err := store.SessionScores(session)
	if err != nil {
		logger.Warn("cannot read session scores", "session", session, "err", err)
		return
	}
	if len(entries) == 0 {
		return
	}
	total := 0
	for _, e := range entries {
		total += e.Score
	}
	fmt.Printf("Played %d games this session, %d points in total.\n", len(entries), total)
	fmt.Printf("Details: hexmatch scores --session %s\n", session)
}
