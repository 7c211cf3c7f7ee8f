// Package board holds the position-indexed state of a match board: which
// coordinates exist, which stone occupies each, and the static layers under
// it. It knows nothing about gravity or matching.
package board

import "fmt"

// BlockerColor is the colour carried by blockers. It never equals a palette
// colour, so blockers cannot take part in a match even by accident.
const BlockerColor = -1

// Stone is a single movable board occupant.
// Stones are never re-coloured once placed; combination destroys them.
type Stone struct {
	ID         uint64 // Assigned by the engine when the stone is spawned
	Color      int    // Match key
	CanMove    bool   // Participates in gravity and swaps
	CanCombine bool   // Participates in match detection
}

// NewStone returns a regular stone of the given colour.
func NewStone(color int) Stone {
	return Stone{Color: color, CanMove: true, CanCombine: true}
}

// NewBlocker returns a stone that neither moves nor combines.
func NewBlocker() Stone {
	return Stone{Color: BlockerColor}
}

// IsBlocker reports whether the stone is fixed and inert.
func (s Stone) IsBlocker() bool {
	return !s.CanMove && !s.CanCombine
}

// String returns a short description of the stone.
func (s Stone) String() string {
	if s.IsBlocker() {
		return fmt.Sprintf("#%d blocker", s.ID)
	}
	return fmt.Sprintf("#%d color=%d", s.ID, s.Color)
}
