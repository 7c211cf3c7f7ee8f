// Package engine implements the match simulation: gravity, refill, triple
// detection and the bounded run loop that follows every player command.
//
// The engine is single-threaded and cooperative. A command mutates the grid
// and starts a run; the driver then calls Update to execute one step at a
// time, Next to take the events each step produced, and Done once those
// events have been played back. Commands are rejected with ErrBusy until
// the run has ended and every batch has been acknowledged.
package engine

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hexmatch/internal/board"
	"github.com/vovakirdan/tui-hexmatch/internal/hex"
	"github.com/vovakirdan/tui-hexmatch/internal/scoring"
)

// swapMove remembers the last swap until the first step of its run
// decides whether it stays.
type swapMove struct {
	a, b hex.Coord
}

// Engine owns a frozen grid and simulates it.
type Engine struct {
	grid      *board.Grid
	positions []hex.Coord
	cfg       Config
	rng       *rand.Rand
	logger    *log.Logger
	score     *scoring.Scorer
	nextID    uint64

	state   State
	depth   int
	pending []Batch
	playing bool
	swap    *swapMove
	run     RunResult
	last    RunResult
}

// New creates an engine over grid. The grid is frozen; stones already on it
// without an ID are given one.
func New(grid *board.Grid, cfg Config) (*Engine, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(grid); err != nil {
		return nil, err
	}
	grid.Freeze()

	e := &Engine{
		grid:      grid,
		positions: grid.Positions(),
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(cfg.Seed)),
		logger:    log.New(io.Discard),
		score:     scoring.New(cfg.PointsPerStone),
		state:     StateIdle,
	}

	for _, pos := range e.positions {
		if s, _ := grid.Occupant(pos); s != nil && s.ID > e.nextID {
			e.nextID = s.ID
		}
	}
	for _, pos := range e.positions {
		if s, _ := grid.Occupant(pos); s != nil && s.ID == 0 {
			e.place(pos, *s)
		}
	}
	return e, nil
}

// SetLogger sets the logger used for run diagnostics.
func (e *Engine) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	e.logger = l
}

// Grid returns the simulated grid. Callers must not mutate it directly.
func (e *Engine) Grid() *board.Grid { return e.grid }

// Config returns the effective configuration.
func (e *Engine) Config() Config { return e.cfg }

// Score returns the current score.
func (e *Engine) Score() int { return e.score.Total() }

// Destroyed returns the number of stones destroyed so far.
func (e *Engine) Destroyed() int { return e.score.Destroyed() }

// State returns the phase of the current or last run.
func (e *Engine) State() State { return e.state }

// place stores a copy of s at pos with a fresh ID.
func (e *Engine) place(pos hex.Coord, s board.Stone) *board.Stone {
	e.nextID++
	s.ID = e.nextID
	stone := &s
	e.grid.SetOccupant(pos, stone)
	return stone
}

// randomColor draws a palette colour. The palette must not be empty.
func (e *Engine) randomColor() int {
	return e.cfg.Palette[e.rng.Intn(len(e.cfg.Palette))]
}

// destroyAt clears pos and scores it. It returns nil if pos is empty.
func (e *Engine) destroyAt(pos hex.Coord, st Stamp) []Event {
	s, err := e.grid.SetOccupant(pos, nil)
	if err != nil || s == nil {
		return nil
	}
	old, updated := e.score.Add(1)
	return []Event{
		Destroyed{Stamp: st, Pos: pos, StoneID: s.ID, Color: s.Color},
		ScoreChanged{Stamp: st, Old: old, New: updated},
	}
}

// SetPalette replaces the colours used by refill and random spawns.
// Stones already on the board keep their colours.
func (e *Engine) SetPalette(palette []int) error {
	for _, c := range palette {
		if c < 0 {
			return fmt.Errorf("engine: palette colour %d is reserved", c)
		}
	}
	e.cfg.Palette = append([]int(nil), palette...)
	return nil
}
