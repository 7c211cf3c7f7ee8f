// Package bench plays many headless games against the engine and reports
// score and cascade statistics for a level.
package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/cheggaaa/pb/v3"

	"github.com/vovakirdan/tui-hexmatch/internal/config"
	"github.com/vovakirdan/tui-hexmatch/internal/engine"
	"github.com/vovakirdan/tui-hexmatch/internal/games/hexmatch"
	"github.com/vovakirdan/tui-hexmatch/internal/hex"
	"github.com/vovakirdan/tui-hexmatch/internal/level"
)

// DefaultSwaps is used when neither the options nor the level set a budget.
const DefaultSwaps = 30

// attemptsPerSwap bounds how often a game looks for a legal swap.
const attemptsPerSwap = 50

// Options configures a benchmark.
type Options struct {
	Runs     int   // Games to play
	Swaps    int   // Swaps per game, 0 for the level's move budget
	Seed     int64 // Seed of the first game; game i uses Seed+i
	Workers  int   // Games played in parallel, 0 for one
	Progress io.Writer
	Logger   *log.Logger
}

// GameResult is the outcome of one headless game.
type GameResult struct {
	Seed     int64
	Score    int
	Stones   int
	Swaps    int // Swaps accepted by the engine
	Reverted int // Accepted swaps that were undone
	Halted   int // Runs stopped by the depth bound
	Steps    int // Engine steps over all runs
	Runs     int
}

// Report aggregates the results of a benchmark.
type Report struct {
	Level      string
	Games      []GameResult
	Score      Summary
	Stones     Summary
	Steps      Summary // Steps per run
	RevertRate float64 // Reverted swaps per accepted swap
	HaltRate   float64 // Halted runs per run
	Elapsed    time.Duration
}

// Run plays opts.Runs games on lvl. Games are independent, so they are
// spread over opts.Workers goroutines, each with its own engine.
func Run(ctx context.Context, lvl level.Level, cfg config.HexMatchConfig, opts Options) (Report, error) {
	if opts.Runs <= 0 {
		return Report{}, errors.New("bench: runs must be positive")
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.Swaps <= 0 {
		opts.Swaps = hexmatch.MoveBudget(lvl, cfg)
	}
	if opts.Swaps <= 0 {
		opts.Swaps = DefaultSwaps
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	bar := pb.New(opts.Runs)
	if opts.Progress == nil {
		bar.SetWriter(io.Discard)
	} else {
		bar.SetWriter(opts.Progress)
	}
	bar.Start()

	results := make([]GameResult, opts.Runs)
	jobs := make(chan int)
	errs := make(chan error, opts.Workers)

	var wg sync.WaitGroup
	for range opts.Workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res, err := PlayGame(lvl, cfg, opts.Seed+int64(i), opts.Swaps)
				if err != nil {
					errs <- fmt.Errorf("bench: game %d: %w", i, err)
					return
				}
				results[i] = res
				bar.Increment()
			}
		}()
	}

	var runErr error
feed:
	for i := range opts.Runs {
		select {
		case jobs <- i:
		case err := <-errs:
			runErr = err
			break feed
		case <-ctx.Done():
			runErr = ctx.Err()
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	elapsed := time.Since(bar.StartTime())
	bar.Finish()

	if runErr == nil {
		select {
		case runErr = <-errs:
		default:
		}
	}
	if runErr != nil {
		return Report{}, runErr
	}

	report := summarize(lvl.ID, results)
	report.Elapsed = elapsed
	logger.Info("bench finished", "level", lvl.ID, "games", opts.Runs, "mean_score", report.Score.Mean, "elapsed", elapsed)
	return report, nil
}

func summarize(levelID string, games []GameResult) Report {
	scores := make([]float64, len(games))
	stones := make([]float64, len(games))
	var steps []float64
	var swaps, reverted, runs, halted int
	for i, g := range games {
		scores[i] = float64(g.Score)
		stones[i] = float64(g.Stones)
		if g.Runs > 0 {
			steps = append(steps, float64(g.Steps)/float64(g.Runs))
		}
		swaps += g.Swaps
		reverted += g.Reverted
		runs += g.Runs
		halted += g.Halted
	}
	return Report{
		Level:      levelID,
		Games:      games,
		Score:      Summarize(scores),
		Stones:     Summarize(stones),
		Steps:      Summarize(steps),
		RevertRate: rate(reverted, swaps),
		HaltRate:   rate(halted, runs),
	}
}

// PlayGame fills the board and makes up to swaps random adjacent swaps,
// settling the engine after each one.
func PlayGame(lvl level.Level, cfg config.HexMatchConfig, seed int64, swaps int) (GameResult, error) {
	return play(lvl, cfg, seed, swaps, nil)
}

// Observer is called after every settled run with the command that
// started it and the batches the run produced.
type Observer func(cmd string, batches []engine.Batch, run engine.RunResult)

func play(lvl level.Level, cfg config.HexMatchConfig, seed int64, swaps int, observe Observer) (GameResult, error) {
	eng, err := hexmatch.NewEngine(lvl, cfg, seed)
	if err != nil {
		return GameResult{}, err
	}
	res := GameResult{Seed: seed}

	if err := eng.Populate(hexmatch.BlockerChance(lvl, cfg)); err != nil {
		return res, err
	}
	res.record(eng, "populate", observe)

	rng := rand.New(rand.NewSource(seed))
	for attempts := 0; res.Swaps < swaps && attempts < swaps*attemptsPerSwap; attempts++ {
		a, b, ok := randomSwap(eng, rng)
		if !ok {
			continue
		}
		if err := eng.Swap(a, b); err != nil {
			continue
		}
		res.Swaps++
		if res.record(eng, fmt.Sprintf("swap %v %v", a, b), observe) {
			res.Reverted++
		}
	}

	res.Score = eng.Score()
	res.Stones = eng.Destroyed()
	return res, nil
}

// record settles the engine and accumulates the run. It reports whether
// the run reverted a swap.
func (r *GameResult) record(eng *engine.Engine, cmd string, observe Observer) bool {
	batches, run := eng.Settle()
	r.Runs++
	r.Steps += run.Steps
	if !run.Stable {
		r.Halted++
	}
	if observe != nil {
		observe(cmd, batches, run)
	}
	return run.Reverted
}

// randomSwap picks a movable stone and a movable neighbour.
func randomSwap(eng *engine.Engine, rng *rand.Rand) (hex.Coord, hex.Coord, bool) {
	grid := eng.Grid()
	occupied := grid.Occupied()
	if len(occupied) == 0 {
		return hex.Coord{}, hex.Coord{}, false
	}
	a := occupied[rng.Intn(len(occupied))]
	b := eng.Config().Geometry.Neighbor(a, hex.Directions[rng.Intn(len(hex.Directions))])

	for _, pos := range [2]hex.Coord{a, b} {
		s, err := grid.Occupant(pos)
		if err != nil || s == nil || !s.CanMove {
			return hex.Coord{}, hex.Coord{}, false
		}
	}
	return a, b, true
}
