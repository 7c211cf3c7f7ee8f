package board

import "github.com/vovakirdan/tui-hexmatch/internal/hex"

// Geometry describes how gravity and matching work on a coordinate system.
type Geometry struct {
	Name      string
	Down      hex.Coord    // Primary gravity direction
	Diagonals [2]hex.Coord // Fallback fall directions, tried in random order
	Axes      []hex.Coord  // Match lines run through p-axis, p, p+axis
	Moves     [6]hex.Coord // Neighbour offset per hex.Direction, for input
}

// HexGeometry is the axial hex board with gravity along -r.
var HexGeometry = Geometry{
	Name:      "hex",
	Down:      hex.Down,
	Diagonals: [2]hex.Coord{hex.DownLeft, hex.DownRight},
	Axes:      []hex.Coord{hex.Up, hex.UpRight, hex.UpLeft},
	Moves:     hex.Zero.Neighbors(),
}

// SquareGeometry is a plain square grid: Q is the column, R the row growing
// downward. Matches are horizontal and vertical only.
var SquareGeometry = Geometry{
	Name:      "square",
	Down:      hex.C(0, 1),
	Diagonals: [2]hex.Coord{hex.C(-1, 1), hex.C(1, 1)},
	Axes:      []hex.Coord{hex.C(1, 0), hex.C(0, 1)},
	Moves: [6]hex.Coord{
		hex.DirUp:        hex.C(0, -1),
		hex.DirUpRight:   hex.C(1, 0),
		hex.DirDownRight: hex.C(1, 0),
		hex.DirDown:      hex.C(0, 1),
		hex.DirDownLeft:  hex.C(-1, 0),
		hex.DirUpLeft:    hex.C(-1, 0),
	},
}

// GeometryByName looks up a geometry by its Name.
func GeometryByName(name string) (Geometry, bool) {
	switch name {
	case "", HexGeometry.Name:
		return HexGeometry, true
	case SquareGeometry.Name:
		return SquareGeometry, true
	default:
		return Geometry{}, false
	}
}

// Neighbor returns the position one step from pos in direction d.
func (g Geometry) Neighbor(pos hex.Coord, d hex.Direction) hex.Coord {
	if int(d) >= len(g.Moves) {
		return pos
	}
	return pos.Add(g.Moves[d])
}

// Adjacent reports whether a and b are one move apart.
func (g Geometry) Adjacent(a, b hex.Coord) bool {
	delta := b.Sub(a)
	for _, m := range g.Moves {
		if m == delta {
			return true
		}
	}
	return false
}
