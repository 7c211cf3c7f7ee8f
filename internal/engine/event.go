package engine

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-hexmatch/internal/hex"
)

// Stamp tags an event with the step that produced it and its playback
// offset inside that step's batch.
type Stamp struct {
	Step int           // 0 for commands, 1..MaxDepth for run steps
	At   time.Duration // Offset from the start of the batch
}

// When returns the stamp. It is promoted to every event type.
func (s Stamp) When() Stamp { return s }

// Event is a state delta emitted by the engine.
type Event interface {
	When() Stamp
	event()
}

// Spawned records a new stone placed on the board.
type Spawned struct {
	Stamp
	Pos     hex.Coord
	StoneID uint64
	Color   int
}

func (Spawned) event() {}

// Moved records a stone changing position, by gravity or a swap.
type Moved struct {
	Stamp
	StoneID  uint64
	From, To hex.Coord
}

func (Moved) event() {}

// Destroyed records a stone removed from the board.
type Destroyed struct {
	Stamp
	Pos     hex.Coord
	StoneID uint64
	Color   int
}

func (Destroyed) event() {}

// ScoreChanged records a score update.
type ScoreChanged struct {
	Stamp
	Old, New int
}

func (ScoreChanged) event() {}

// Batch groups the events of one command or one step. A consumer plays a
// batch for Duration before acknowledging it.
type Batch struct {
	Step     int
	Events   []Event
	Duration time.Duration
}

// newBatch builds a batch whose duration covers the last event plus tween.
func newBatch(step int, events []Event, tween time.Duration) Batch {
	b := Batch{Step: step, Events: events}
	if len(events) == 0 {
		return b
	}
	var last time.Duration
	for _, ev := range events {
		if at := ev.When().At; at > last {
			last = at
		}
	}
	b.Duration = last + tween
	return b
}

// FormatEvent renders an event as a single log line.
func FormatEvent(ev Event) string {
	st := ev.When()
	prefix := fmt.Sprintf("step=%d at=%s", st.Step, st.At)
	switch e := ev.(type) {
	case Spawned:
		return fmt.Sprintf("%s spawned #%d color=%d at %v", prefix, e.StoneID, e.Color, e.Pos)
	case Moved:
		return fmt.Sprintf("%s moved #%d %v -> %v", prefix, e.StoneID, e.From, e.To)
	case Destroyed:
		return fmt.Sprintf("%s destroyed #%d color=%d at %v", prefix, e.StoneID, e.Color, e.Pos)
	case ScoreChanged:
		return fmt.Sprintf("%s score %d -> %d", prefix, e.Old, e.New)
	default:
		return prefix + " unknown event"
	}
}
