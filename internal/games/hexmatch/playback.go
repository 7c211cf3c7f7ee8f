package hexmatch

import (
	"cmp"
	"slices"
	"time"

	"github.com/vovakirdan/tui-hexmatch/internal/board"
	"github.com/vovakirdan/tui-hexmatch/internal/engine"
	"github.com/vovakirdan/tui-hexmatch/internal/hex"
)

// visualBoard is what the player sees. It lags behind the engine grid and
// catches up as batch events are played.
type visualBoard struct {
	cells  map[hex.Coord]uint64 // stone ID per position
	colors map[uint64]int       // colour per stone ID
	bursts map[hex.Coord]time.Duration
	moved  map[uint64]bool // stones that moved in the batch being played
}

func newVisualBoard(grid *board.Grid) *visualBoard {
	v := &visualBoard{
		cells:  make(map[hex.Coord]uint64),
		colors: make(map[uint64]int),
		bursts: make(map[hex.Coord]time.Duration),
		moved:  make(map[uint64]bool),
	}
	for pos, s := range grid.Snapshot() {
		if s == nil {
			continue
		}
		v.cells[pos] = s.ID
		v.colors[s.ID] = s.Color
	}
	return v
}

// apply plays a single event.
func (v *visualBoard) apply(ev engine.Event, burst time.Duration) {
	switch e := ev.(type) {
	case engine.Spawned:
		v.colors[e.StoneID] = e.Color
		v.cells[e.Pos] = e.StoneID
	case engine.Moved:
		if v.cells[e.From] == e.StoneID {
			delete(v.cells, e.From)
		}
		v.cells[e.To] = e.StoneID
		v.moved[e.StoneID] = true
	case engine.Destroyed:
		if v.cells[e.Pos] == e.StoneID {
			delete(v.cells, e.Pos)
		}
		delete(v.colors, e.StoneID)
		v.bursts[e.Pos] = burst
	}
}

// stone returns the colour shown at pos.
func (v *visualBoard) stone(pos hex.Coord) (color int, id uint64, ok bool) {
	id, ok = v.cells[pos]
	if !ok {
		return 0, 0, false
	}
	return v.colors[id], id, true
}

// decay shortens destroy bursts by dt.
func (v *visualBoard) decay(dt time.Duration) {
	for pos, left := range v.bursts {
		if left -= dt; left <= 0 {
			delete(v.bursts, pos)
		} else {
			v.bursts[pos] = left
		}
	}
}

// matches reports whether the visual board shows exactly the grid's stones.
func (v *visualBoard) matches(grid *board.Grid) bool {
	want := grid.Assignment()
	if len(want) != len(v.cells) {
		return false
	}
	for pos, id := range want {
		if v.cells[pos] != id {
			return false
		}
	}
	return true
}

// player plays one engine batch at a time against the clock.
type player struct {
	batch   engine.Batch
	active  bool
	elapsed time.Duration
	next    int
}

func (p *player) start(b engine.Batch) {
	slices.SortStableFunc(b.Events, func(x, y engine.Event) int {
		return cmp.Compare(x.When().At, y.When().At)
	})
	p.batch = b
	p.active = true
	p.elapsed = 0
	p.next = 0
}

// due returns the events whose offset has been reached and not yet played.
func (p *player) due() []engine.Event {
	start := p.next
	for p.next < len(p.batch.Events) && p.batch.Events[p.next].When().At <= p.elapsed {
		p.next++
	}
	return p.batch.Events[start:p.next]
}

// finished reports whether every event was played and the batch duration
// has elapsed.
func (p *player) finished() bool {
	return p.next >= len(p.batch.Events) && p.elapsed >= p.batch.Duration
}

// progress returns how far the batch is, from 0 to 1.
func (p *player) progress() float64 {
	if !p.active || p.batch.Duration <= 0 {
		return 1
	}
	return min(1, float64(p.elapsed)/float64(p.batch.Duration))
}
