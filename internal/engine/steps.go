package engine

import (
	"time"

	"github.com/vovakirdan/tui-hexmatch/internal/board"
	"github.com/vovakirdan/tui-hexmatch/internal/hex"
)

// Step runs one simulation step: gravity first, then refill, then matching.
// Later phases only run when the earlier ones changed nothing.
func (e *Engine) Step(step int) (bool, Batch) {
	changed, events := e.StepFall(step)
	if !changed {
		changed, events = e.StepRefill(step)
	}
	if !changed {
		changed, events = e.StepCombine(step)
	}
	return changed, newBatch(step, events, e.cfg.Tween)
}

// StepRefill spawns a random palette stone on every empty source.
func (e *Engine) StepRefill(step int) (bool, []Event) {
	return e.refill(Stamp{Step: step})
}

func (e *Engine) refill(st Stamp) (bool, []Event) {
	if len(e.cfg.Palette) == 0 {
		return false, nil
	}
	var events []Event
	for _, src := range e.cfg.Sources {
		if cur, err := e.grid.Occupant(src); err != nil || cur != nil {
			continue
		}
		s := e.place(src, board.NewStone(e.randomColor()))
		events = append(events, Spawned{Stamp: st, Pos: src, StoneID: s.ID, Color: s.Color})
	}
	return len(events) > 0, events
}

// StepFall lets stones fall until nothing moves. Every pass refills the
// sources, then moves each movable stone one cell down. Diagonal moves are
// only tried in a pass where nothing fell straight and nothing spawned, and
// each stone picks its first diagonal at random.
func (e *Engine) StepFall(step int) (bool, []Event) {
	var events []Event
	changed := false
	geo := e.cfg.Geometry

	for pass := 0; ; pass++ {
		st := Stamp{Step: step, At: time.Duration(pass) * e.cfg.FallInterval}

		moved, spawned := e.refill(st)
		events = append(events, spawned...)

		for _, pos := range e.positions {
			if ev, ok := e.fall(pos, geo.Down, st); ok {
				events = append(events, ev)
				moved = true
			}
		}

		if !moved {
			for _, pos := range e.positions {
				if !e.movable(pos) {
					continue
				}
				first, second := geo.Diagonals[0], geo.Diagonals[1]
				if e.rng.Intn(2) == 0 {
					first, second = second, first
				}
				if ev, ok := e.fall(pos, first, st); ok {
					events = append(events, ev)
					moved = true
				} else if ev, ok := e.fall(pos, second, st); ok {
					events = append(events, ev)
					moved = true
				}
			}
		}

		if !moved {
			break
		}
		changed = true
	}
	return changed, events
}

func (e *Engine) movable(pos hex.Coord) bool {
	s, err := e.grid.Occupant(pos)
	return err == nil && s != nil && s.CanMove
}

// fall moves the stone at pos by dir if the target exists and is empty.
func (e *Engine) fall(pos, dir hex.Coord, st Stamp) (Event, bool) {
	if !e.movable(pos) {
		return nil, false
	}
	to := pos.Add(dir)
	if other, err := e.grid.Occupant(to); err != nil || other != nil {
		return nil, false
	}
	s, _ := e.grid.SetOccupant(pos, nil)
	e.grid.SetOccupant(to, s)
	return Moved{Stamp: st, StoneID: s.ID, From: pos, To: to}, true
}

// StepCombine destroys every stone that is part of a line of three equal
// combinable stones along a match axis. Lines are detected on a snapshot
// taken before any destruction, so overlapping lines are all found and a
// shared stone is destroyed once.
func (e *Engine) StepCombine(step int) (bool, []Event) {
	snap := e.grid.Snapshot()
	marked := make(map[hex.Coord]bool)

	for _, pos := range e.positions {
		s := snap[pos]
		if !combinable(s) {
			continue
		}
		for _, axis := range e.cfg.Geometry.Axes {
			a, b := pos.Add(axis), pos.Sub(axis)
			sa, sb := snap[a], snap[b]
			if !combinable(sa) || !combinable(sb) {
				continue
			}
			if sa.Color != s.Color || sb.Color != s.Color {
				continue
			}
			marked[pos] = true
			marked[a] = true
			marked[b] = true
		}
	}

	if len(marked) == 0 {
		return false, nil
	}

	var events []Event
	st := Stamp{Step: step}
	for _, pos := range e.positions {
		if marked[pos] {
			events = append(events, e.destroyAt(pos, st)...)
		}
	}
	return true, events
}

func combinable(s *board.Stone) bool {
	return s != nil && s.CanCombine
}
