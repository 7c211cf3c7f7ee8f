package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hexmatch/internal/core"
	"github.com/vovakirdan/tui-hexmatch/internal/games/hexmatch"
	"github.com/vovakirdan/tui-hexmatch/internal/platform/tui"
	"github.com/vovakirdan/tui-hexmatch/internal/registry"
	"github.com/vovakirdan/tui-hexmatch/internal/storage"
)

var (
	flagLevel      string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WS   - Move the cursor
  Q/E/A/D     - Move to the diagonal hex neighbours
  Enter       - Select a stone, then move to swap it
  N           - Spawn a random stone at the cursor
  X           - Destroy the stone at the cursor
  Space       - Clear the board
  P/Esc       - Pause
  R           - Restart (after game over or while paused)
  ?           - Toggle full help
  Ctrl+C      - Quit

Difficulty options:
  easy   - Fewer colours, more moves
  normal - Level defaults, colours grow with the score
  hard   - Fewer moves, more blockers
  fixed  - No progression

Examples:
  hexmatch play hexmatch
  hexmatch play squarematch --difficulty easy
  hexmatch play hexmatch --level spiral
  hexmatch play hexmatch --level ./my-level.yaml --config ./my-hexmatch.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Builtin level ID or path to a level YAML")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write game logs to this file")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if _, err := requireGame(gameID); err != nil {
		return err
	}
	if _, err := parseDifficulty(flagDifficulty); err != nil {
		return err
	}

	// The alternate screen hides stderr, so game logs go to a file or nowhere.
	gameLog := log.New(io.Discard)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		gameLog = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          gameID,
			Level:           logger.GetLevel(),
		})
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set level, config and difficulty before the game is created
	hexmatch.SetLevelPath(flagLevel)
	hexmatch.SetConfigPath(flagConfig)
	hexmatch.SetDifficultyPreset(flagDifficulty)
	hexmatch.SetLogger(gameLog)

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	// Continue without storage, the game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		store = nil
	}

	runErr := tui.Run(game, cfg, tui.Options{
		Store:     store,
		SessionID: storage.NewSessionID(),
		Logger:    gameLog,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	if g, ok := game.(*hexmatch.Game); ok && g.Err() != nil {
		return g.Err()
	}
	return nil
}
