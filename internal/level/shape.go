package level

import (
	"fmt"

	"github.com/vovakirdan/tui-hexmatch/internal/board"
	"github.com/vovakirdan/tui-hexmatch/internal/hex"
)

// ShapeKind names a board layout.
type ShapeKind string

const (
	ShapeRing    ShapeKind = "ring"    // hexagon with the centre cut out
	ShapeHexagon ShapeKind = "hexagon" // filled hexagon
	ShapeSpiral  ShapeKind = "spiral"  // filled hexagon, radius exclusive
	ShapeHexRect ShapeKind = "hexrect" // axial rectangle without its centre
	ShapeSquare  ShapeKind = "square"  // plain square grid
)

// Shape describes the set of board positions.
type Shape struct {
	Kind   ShapeKind
	Radius int
	Width  int
	Height int
}

// Validate checks that the shape has the dimensions its kind needs.
func (s Shape) Validate() error {
	switch s.Kind {
	case ShapeRing, ShapeHexagon:
		if s.Radius < 1 {
			return fmt.Errorf("shape %s: radius must be at least 1", s.Kind)
		}
	case ShapeSpiral:
		if s.Radius < 2 {
			return fmt.Errorf("shape %s: radius must be at least 2", s.Kind)
		}
	case ShapeHexRect, ShapeSquare:
		if s.Width < 1 || s.Height < 1 {
			return fmt.Errorf("shape %s: width and height must be positive", s.Kind)
		}
	default:
		return fmt.Errorf("unknown shape kind %q", s.Kind)
	}
	return nil
}

// Geometry returns the gravity and matching rules for the shape.
func (s Shape) Geometry() board.Geometry {
	if s.Kind == ShapeSquare {
		return board.SquareGeometry
	}
	return board.HexGeometry
}

// Positions returns the board positions in layout order.
func (s Shape) Positions() ([]hex.Coord, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	switch s.Kind {
	case ShapeRing:
		r := s.Radius
		return hex.Collect(hex.Filter(hex.Area(r), func(c hex.Coord) bool {
			return c.Length() > r-2
		})), nil
	case ShapeHexagon:
		return hex.Collect(hex.Area(s.Radius)), nil
	case ShapeSpiral:
		return hex.Collect(hex.Spiral(s.Radius)), nil
	case ShapeHexRect:
		var out []hex.Coord
		for i := range s.Width {
			for j := range s.Height {
				c := hex.C(i-s.Width/2, j-s.Height/2)
				if c.Length() == 0 {
					continue
				}
				out = append(out, c)
			}
		}
		return out, nil
	default:
		out := make([]hex.Coord, 0, s.Width*s.Height)
		for y := range s.Height {
			for x := range s.Width {
				out = append(out, hex.C(x, y))
			}
		}
		return out, nil
	}
}

// TopEdge filters positions down to the refill sources: the edge gravity
// pulls stones away from.
func (s Shape) TopEdge(positions []hex.Coord) []hex.Coord {
	var top func(hex.Coord) bool
	switch s.Kind {
	case ShapeRing, ShapeHexagon:
		r := s.Radius
		top = func(c hex.Coord) bool { return c.R == -r || c.S() == r }
	case ShapeSpiral:
		r := s.Radius - 1
		top = func(c hex.Coord) bool { return c.R == -r || c.S() == r }
	case ShapeHexRect:
		r := -(s.Height / 2)
		top = func(c hex.Coord) bool { return c.R == r }
	default:
		top = func(c hex.Coord) bool { return c.R == 0 }
	}

	var out []hex.Coord
	for _, c := range positions {
		if top(c) {
			out = append(out, c)
		}
	}
	return out
}
