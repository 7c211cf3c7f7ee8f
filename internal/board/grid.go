package board

import "github.com/vovakirdan/tui-hexmatch/internal/hex"

// cell is the state stored per board position.
type cell struct {
	stone  *Stone
	layers [LayerCount]*Layer
}

// Grid maps board positions to cells. Whether a position exists is
// independent of whether it is occupied: a missing key is ErrNotFound,
// a present key with a nil stone is simply empty.
type Grid struct {
	cells  map[hex.Coord]*cell
	order  []hex.Coord // insertion order, used for deterministic scans
	frozen bool
}

// NewGrid creates an empty grid with room for capacity cells.
func NewGrid(capacity int) *Grid {
	if capacity < 0 {
		capacity = 0
	}
	return &Grid{
		cells: make(map[hex.Coord]*cell, capacity),
		order: make([]hex.Coord, 0, capacity),
	}
}

// NewGridFrom creates a grid containing every given position.
func NewGridFrom(positions []hex.Coord) *Grid {
	g := NewGrid(len(positions))
	for _, p := range positions {
		g.AddCell(p)
	}
	return g
}

// AddCell inserts an empty cell at pos if it does not already exist.
// Returns whether a cell was added. Once the grid is frozen the topology is
// fixed and AddCell always returns false.
func (g *Grid) AddCell(pos hex.Coord) bool {
	if g.frozen {
		return false
	}
	if _, ok := g.cells[pos]; ok {
		return false
	}
	g.cells[pos] = &cell{}
	g.order = append(g.order, pos)
	return true
}

// Freeze fixes the set of positions. Called before simulation starts.
func (g *Grid) Freeze() {
	g.frozen = true
}

// HasCell reports whether pos exists on the board.
func (g *Grid) HasCell(pos hex.Coord) bool {
	_, ok := g.cells[pos]
	return ok
}

// Len returns the number of board positions.
func (g *Grid) Len() int {
	return len(g.order)
}

// Positions returns a copy of all positions in insertion order.
func (g *Grid) Positions() []hex.Coord {
	out := make([]hex.Coord, len(g.order))
	copy(out, g.order)
	return out
}

// Occupant returns the stone at pos, or nil if the cell is empty.
func (g *Grid) Occupant(pos hex.Coord) (*Stone, error) {
	c, ok := g.cells[pos]
	if !ok {
		return nil, ErrNotFound
	}
	return c.stone, nil
}

// SetOccupant places stone at pos (nil clears it) and returns the stone it
// replaced.
func (g *Grid) SetOccupant(pos hex.Coord, stone *Stone) (*Stone, error) {
	c, ok := g.cells[pos]
	if !ok {
		return nil, ErrNotFound
	}
	replaced := c.stone
	c.stone = stone
	return replaced, nil
}

// SwapOccupants exchanges the occupants of a and b. Either may be empty;
// gameplay restrictions such as immovable stones are checked by callers.
func (g *Grid) SwapOccupants(a, b hex.Coord) error {
	ca, ok := g.cells[a]
	if !ok {
		return ErrNotFound
	}
	cb, ok := g.cells[b]
	if !ok {
		return ErrNotFound
	}
	ca.stone, cb.stone = cb.stone, ca.stone
	return nil
}

// Layer returns the layer of the given kind at pos, or nil if unset.
func (g *Grid) Layer(pos hex.Coord, kind LayerKind) (*Layer, error) {
	if kind >= LayerCount {
		return nil, ErrInvalidLayer
	}
	c, ok := g.cells[pos]
	if !ok {
		return nil, ErrNotFound
	}
	return c.layers[kind], nil
}

// SetLayer stores layer in the given slot at pos and returns the previous one.
func (g *Grid) SetLayer(pos hex.Coord, kind LayerKind, layer *Layer) (*Layer, error) {
	if kind >= LayerCount {
		return nil, ErrInvalidLayer
	}
	c, ok := g.cells[pos]
	if !ok {
		return nil, ErrNotFound
	}
	replaced := c.layers[kind]
	c.layers[kind] = layer
	return replaced, nil
}

// Snapshot returns a copy of the current occupancy. Stones are shared, which
// is safe because they are never mutated in place.
func (g *Grid) Snapshot() map[hex.Coord]*Stone {
	out := make(map[hex.Coord]*Stone, len(g.cells))
	for pos, c := range g.cells {
		out[pos] = c.stone
	}
	return out
}

// Assignment maps each occupied position to its stone ID.
// Two grids with equal assignments hold the same stones in the same places.
func (g *Grid) Assignment() map[hex.Coord]uint64 {
	out := make(map[hex.Coord]uint64)
	for pos, c := range g.cells {
		if c.stone != nil {
			out[pos] = c.stone.ID
		}
	}
	return out
}

// Occupied returns the occupied positions in insertion order.
func (g *Grid) Occupied() []hex.Coord {
	out := make([]hex.Coord, 0, len(g.order))
	for _, pos := range g.order {
		if g.cells[pos].stone != nil {
			out = append(out, pos)
		}
	}
	return out
}

// Empty returns the unoccupied positions in insertion order.
func (g *Grid) Empty() []hex.Coord {
	out := make([]hex.Coord, 0)
	for _, pos := range g.order {
		if g.cells[pos].stone == nil {
			out = append(out, pos)
		}
	}
	return out
}
