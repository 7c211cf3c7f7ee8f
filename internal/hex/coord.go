// Package hex provides axial hex coordinates and the generators used to lay
// out board shapes. Values are immutable and safe to use as map keys.
package hex

import "fmt"

// Coord is an axial hex coordinate. The third cube component S is derived
// from Q and R, so Q+R+S == 0 holds for every value.
// Square boards reuse Coord with Q as column and R as row and ignore S.
type Coord struct {
	Q int
	R int
}

// Named unit vectors. Each "up" direction is the negation of its "down" pair.
var (
	Zero      = Coord{Q: 0, R: 0}
	Up        = Coord{Q: 0, R: -1}
	UpRight   = Coord{Q: 1, R: -1}
	UpLeft    = Coord{Q: -1, R: 0}
	Down      = Coord{Q: 0, R: 1}
	DownRight = Coord{Q: 1, R: 0}
	DownLeft  = Coord{Q: -1, R: 1}
)

// C is a convenience constructor for Coord.
func C(q, r int) Coord {
	return Coord{Q: q, R: r}
}

// S returns the derived cube component.
func (c Coord) S() int {
	return -c.Q - c.R
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.Q, c.R, c.S())
}

// Add returns the sum of two coordinates.
func (c Coord) Add(other Coord) Coord {
	return Coord{Q: c.Q + other.Q, R: c.R + other.R}
}

// Sub returns the difference of two coordinates.
func (c Coord) Sub(other Coord) Coord {
	return Coord{Q: c.Q - other.Q, R: c.R - other.R}
}

// Neg returns the coordinate mirrored through the origin.
func (c Coord) Neg() Coord {
	return Coord{Q: -c.Q, R: -c.R}
}

// Scale multiplies every component by k.
func (c Coord) Scale(k int) Coord {
	return Coord{Q: c.Q * k, R: c.R * k}
}

// Length returns the hex distance from the origin.
func (c Coord) Length() int {
	return (abs(c.Q) + abs(c.R) + abs(c.S())) / 2
}

// Distance returns the hex distance between two coordinates.
func Distance(a, b Coord) int {
	return a.Sub(b).Length()
}

// Neighbors returns the six adjacent coordinates in Direction order.
func (c Coord) Neighbors() [6]Coord {
	var out [6]Coord
	for i, d := range Directions {
		out[i] = c.Add(d.Vector())
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
