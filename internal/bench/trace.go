package bench

import (
	"fmt"
	"io"

	"github.com/vovakirdan/tui-hexmatch/internal/config"
	"github.com/vovakirdan/tui-hexmatch/internal/engine"
	"github.com/vovakirdan/tui-hexmatch/internal/level"
)

// Trace plays one game like PlayGame and writes the event log of every
// run to w: a header line per command, one line per batch and one line
// per event.
func Trace(w io.Writer, lvl level.Level, cfg config.HexMatchConfig, seed int64, swaps int) (GameResult, error) {
	var writeErr error
	printf := func(format string, args ...any) {
		if writeErr == nil {
			_, writeErr = fmt.Fprintf(w, format, args...)
		}
	}

	res, err := play(lvl, cfg, seed, swaps, func(cmd string, batches []engine.Batch, run engine.RunResult) {
		status := "stable"
		switch {
		case run.Err() != nil:
			status = run.Err().Error()
		case run.Reverted:
			status = "reverted"
		}
		printf("== %s: %d batches, %d steps, %s\n", cmd, len(batches), run.Steps, status)
		for _, b := range batches {
			printf("  batch step=%d events=%d duration=%s\n", b.Step, len(b.Events), b.Duration)
			for _, ev := range b.Events {
				printf("    %s\n", engine.FormatEvent(ev))
			}
		}
	})
	if err != nil {
		return res, err
	}
	printf("== score %d, %d stones, %d swaps (%d reverted)\n", res.Score, res.Stones, res.Swaps, res.Reverted)
	return res, writeErr
}
