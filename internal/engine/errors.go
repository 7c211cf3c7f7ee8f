package engine

import "errors"

var (
	// ErrBusy is returned when a command arrives while a run or its playback
	// is still in progress. Commands are rejected, never queued.
	ErrBusy = errors.New("engine: busy")

	// ErrOccupied is returned when spawning onto an occupied cell.
	ErrOccupied = errors.New("engine: cell occupied")

	// ErrEmpty is returned when destroying or swapping an empty cell.
	ErrEmpty = errors.New("engine: cell empty")

	// ErrImmovable is returned when a swap involves a stone that cannot move.
	ErrImmovable = errors.New("engine: stone cannot move")

	// ErrSameCell is returned when a swap names the same cell twice.
	ErrSameCell = errors.New("engine: swap with itself")

	// ErrNoPalette is returned by random spawns when no colours are configured.
	ErrNoPalette = errors.New("engine: empty palette")

	// ErrDepthExceeded reports a run stopped by the depth bound before the
	// board became stable. It is a soft failure.
	ErrDepthExceeded = errors.New("engine: simulation depth exceeded")
)
