package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hexmatch/internal/bench"
	"github.com/vovakirdan/tui-hexmatch/internal/config"
	"github.com/vovakirdan/tui-hexmatch/internal/games/hexmatch"
	"github.com/vovakirdan/tui-hexmatch/internal/level"
)

var (
	flagBenchRuns    int
	flagBenchSwaps   int
	flagBenchWorkers int
	flagBenchQuiet   bool
)

var benchCmd = &cobra.Command{
	Use:   "bench <game>",
	Short: "Play headless games and report statistics",
	Long: `Plays many games without a terminal, making random adjacent swaps,
and reports score, cascade length and revert statistics for the level.

Game i uses seed --seed+i, so a bench is reproducible for a fixed seed.

Examples:
  hexmatch bench hexmatch
  hexmatch bench squarematch --runs 1000 --swaps 50
  hexmatch bench hexmatch --level spiral --difficulty hard --seed 1`,
	Args: cobra.ExactArgs(1),
	RunE: runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagBenchRuns, "runs", 100, "Number of games")
	benchCmd.Flags().IntVar(&flagBenchSwaps, "swaps", 0, "Swaps per game (0 = level move budget)")
	benchCmd.Flags().IntVar(&flagBenchWorkers, "workers", runtime.NumCPU(), "Games played in parallel")
	benchCmd.Flags().BoolVar(&flagBenchQuiet, "quiet", false, "Hide the progress bar")
	addSetupFlags(benchCmd)
}

// addSetupFlags registers the level and config flags shared by the
// headless commands.
func addSetupFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagLevel, "level", "", "Builtin level ID or path to a level YAML")
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// resolveSetup loads the level and config a headless command plays.
func resolveSetup(gameID string) (level.Level, config.HexMatchConfig, error) {
	v, err := requireGame(gameID)
	if err != nil {
		return level.Level{}, config.HexMatchConfig{}, err
	}
	preset, err := parseDifficulty(flagDifficulty)
	if err != nil {
		return level.Level{}, config.HexMatchConfig{}, err
	}

	ref := v.Level
	if flagLevel != "" {
		ref = flagLevel
	}
	lvl, err := level.Resolve(ref)
	if err != nil {
		return level.Level{}, config.HexMatchConfig{}, err
	}

	cfg, err := hexmatch.LoadConfig(flagConfig, preset)
	if err != nil {
		logger.Warn("using default config", "err", err)
	}
	return lvl, cfg, nil
}

func seedOrNow() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

func runBench(cmd *cobra.Command, args []string) error {
	lvl, cfg, err := resolveSetup(args[0])
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	opts := bench.Options{
		Runs:     flagBenchRuns,
		Swaps:    flagBenchSwaps,
		Seed:     seedOrNow(),
		Workers:  flagBenchWorkers,
		Progress: os.Stderr,
		Logger:   logger.WithPrefix("bench"),
	}
	if flagBenchQuiet {
		opts.Progress = nil
	}

	report, err := bench.Run(ctx, lvl, cfg, opts)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return errors.New("bench interrupted")
		}
		return err
	}

	fmt.Println(renderReport(report, opts.Seed))
	return nil
}

var (
	reportTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	reportHeader = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	reportCell   = lipgloss.NewStyle().Padding(0, 1)
	reportMuted  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// renderReport formats the summaries as a table.
func renderReport(r bench.Report, seed int64) string {
	row := func(name string, s bench.Summary) []string {
		return []string{
			name,
			fmt.Sprintf("%.1f", s.Mean),
			fmt.Sprintf("%.1f", s.StdDev),
			fmt.Sprintf("%.0f", s.Min),
			fmt.Sprintf("%.0f", s.Median),
			fmt.Sprintf("%.0f", s.P90),
			fmt.Sprintf("%.0f", s.Max),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(rowIdx, _ int) lipgloss.Style {
			if rowIdx == table.HeaderRow {
				return reportHeader
			}
			return reportCell
		}).
		Headers("", "Mean", "StdDev", "Min", "Median", "P90", "Max").
		Row(row("Score", r.Score)...).
		Row(row("Stones", r.Stones)...).
		Row(row("Steps/run", r.Steps)...)

	title := reportTitle.Render(fmt.Sprintf("Level %s: %d games", r.Level, len(r.Games)))
	footer := reportMuted.Render(fmt.Sprintf(
		"reverted swaps %.1f%%  halted runs %.1f%%  seed %d  %s",
		r.RevertRate*100, r.HaltRate*100, seed, r.Elapsed.Round(time.Millisecond)))
	return lipgloss.JoinVertical(lipgloss.Left, title, t.Render(), footer)
}
