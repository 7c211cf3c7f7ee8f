package main

import (
	"bufio"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hexmatch/internal/bench"
)

var flagTraceSwaps int

var traceCmd = &cobra.Command{
	Use:   "trace <game>",
	Short: "Print the engine event log of one headless game",
	Long: `Fills the board, makes random adjacent swaps and prints every batch
the engine emits: spawns, moves, destructions and score changes, with
their step number and playback offset.

Examples:
  hexmatch trace squarematch --seed 42
  hexmatch trace hexmatch --swaps 3 --level hexagon`,
	Args: cobra.ExactArgs(1),
	RunE: runTrace,
}

func init() {
	traceCmd.Flags().IntVar(&flagTraceSwaps, "swaps", 5, "Number of swaps to make")
	addSetupFlags(traceCmd)
}

func runTrace(cmd *cobra.Command, args []string) error {
	lvl, cfg, err := resolveSetup(args[0])
	if err != nil {
		return err
	}

	seed := seedOrNow()
	logger.Debug("tracing", "level", lvl.ID, "seed", seed, "swaps", flagTraceSwaps)

	out := bufio.NewWriter(os.Stdout)
	res, err := bench.Trace(out, lvl, cfg, seed, flagTraceSwaps)
	if flushErr := out.Flush(); err == nil {
		err = flushErr
	}
	if err != nil {
		return err
	}
	logger.Info("trace finished", "level", lvl.ID, "seed", seed, "score", res.Score, "halted", res.Halted)
	return nil
}
