package board

import "errors"

var (
	// ErrNotFound is returned when a position is not part of the board.
	// An existing but empty position is not an error.
	ErrNotFound = errors.New("board: position not on board")

	// ErrInvalidLayer is returned for a layer kind outside [0, LayerCount).
	ErrInvalidLayer = errors.New("board: invalid layer kind")
)
