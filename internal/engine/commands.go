package engine

import (
	"github.com/vovakirdan/tui-hexmatch/internal/board"
	"github.com/vovakirdan/tui-hexmatch/internal/hex"
)

// Spawn places a copy of stone at an empty pos and starts a run.
func (e *Engine) Spawn(pos hex.Coord, stone board.Stone) error {
	if e.Busy() {
		return ErrBusy
	}
	cur, err := e.grid.Occupant(pos)
	if err != nil {
		return err
	}
	if cur != nil {
		return ErrOccupied
	}

	s := e.place(pos, stone)
	e.enqueue(newBatch(0, []Event{
		Spawned{Pos: pos, StoneID: s.ID, Color: s.Color},
	}, e.cfg.Tween))
	e.startRun()
	return nil
}

// SpawnRandom spawns a stone of a random palette colour at pos.
func (e *Engine) SpawnRandom(pos hex.Coord) error {
	if e.Busy() {
		return ErrBusy
	}
	if len(e.cfg.Palette) == 0 {
		return ErrNoPalette
	}
	return e.Spawn(pos, board.NewStone(e.randomColor()))
}

// Destroy removes the stone at pos, scores it and starts a run.
func (e *Engine) Destroy(pos hex.Coord) error {
	if e.Busy() {
		return ErrBusy
	}
	cur, err := e.grid.Occupant(pos)
	if err != nil {
		return err
	}
	if cur == nil {
		return ErrEmpty
	}

	e.enqueue(newBatch(0, e.destroyAt(pos, Stamp{}), e.cfg.Tween))
	e.startRun()
	return nil
}

// Swap exchanges two movable stones and starts a run. If the first step of
// that run changes nothing, the swap is undone and the board re-simulated.
// Adjacency is not checked here.
func (e *Engine) Swap(a, b hex.Coord) error {
	if e.Busy() {
		return ErrBusy
	}
	if a == b {
		return ErrSameCell
	}
	for _, pos := range [2]hex.Coord{a, b} {
		s, err := e.grid.Occupant(pos)
		if err != nil {
			return err
		}
		if s == nil {
			return ErrEmpty
		}
		if !s.CanMove {
			return ErrImmovable
		}
	}

	e.enqueue(e.swapEvents(a, b))
	e.swap = &swapMove{a: a, b: b}
	e.startRun()
	return nil
}

// swapEvents exchanges the occupants of a and b and returns the move batch.
func (e *Engine) swapEvents(a, b hex.Coord) Batch {
	sa, _ := e.grid.Occupant(a)
	sb, _ := e.grid.Occupant(b)
	if err := e.grid.SwapOccupants(a, b); err != nil {
		return Batch{}
	}

	var events []Event
	if sa != nil {
		events = append(events, Moved{StoneID: sa.ID, From: a, To: b})
	}
	if sb != nil {
		events = append(events, Moved{StoneID: sb.ID, From: b, To: a})
	}
	return newBatch(0, events, e.cfg.Tween)
}

// DestroyAll removes every stone, blockers included, in a single batch and
// starts a run.
func (e *Engine) DestroyAll() error {
	if e.Busy() {
		return ErrBusy
	}
	var events []Event
	for _, pos := range e.positions {
		events = append(events, e.destroyAt(pos, Stamp{})...)
	}
	e.enqueue(newBatch(0, events, e.cfg.Tween))
	e.startRun()
	return nil
}

// Populate fills every empty cell, placing a blocker with probability
// blockerChance and a random palette stone otherwise, then starts a run.
func (e *Engine) Populate(blockerChance float64) error {
	if e.Busy() {
		return ErrBusy
	}
	if len(e.cfg.Palette) == 0 && blockerChance < 1 {
		return ErrNoPalette
	}

	var events []Event
	for _, pos := range e.grid.Empty() {
		stone := board.NewBlocker()
		if e.rng.Float64() >= blockerChance {
			stone = board.NewStone(e.randomColor())
		}
		s := e.place(pos, stone)
		events = append(events, Spawned{Pos: pos, StoneID: s.ID, Color: s.Color})
	}
	e.enqueue(newBatch(0, events, e.cfg.Tween))
	e.startRun()
	return nil
}

// TrySpawn is Spawn reporting only success.
func (e *Engine) TrySpawn(pos hex.Coord, stone board.Stone) bool {
	return e.Spawn(pos, stone) == nil
}

// TrySpawnRandom is SpawnRandom reporting only success.
func (e *Engine) TrySpawnRandom(pos hex.Coord) bool {
	return e.SpawnRandom(pos) == nil
}

// TryDestroy is Destroy reporting only success.
func (e *Engine) TryDestroy(pos hex.Coord) bool {
	return e.Destroy(pos) == nil
}

// TrySwap is Swap reporting only success. A swap that was accepted and later
// reverted still counts as success.
func (e *Engine) TrySwap(a, b hex.Coord) bool {
	return e.Swap(a, b) == nil
}

// TryDestroyAll is DestroyAll reporting only success.
func (e *Engine) TryDestroyAll() bool {
	return e.DestroyAll() == nil
}
