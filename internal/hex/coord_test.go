package hex

import "testing"

func TestCubeIdentity(t *testing.T) {
	coords := []Coord{Zero, Up, UpRight, UpLeft, Down, DownRight, DownLeft, C(3, -7), C(-4, 2)}

	for _, a := range coords {
		for _, b := range coords {
			for _, c := range []Coord{a.Add(b), a.Sub(b), a.Scale(3), b.Scale(-2).Add(a)} {
				if c.Q+c.R+c.S() != 0 {
					t.Errorf("%v: q+r+s = %d, expected 0", c, c.Q+c.R+c.S())
				}
			}
		}
	}
}

func TestLengthSymmetry(t *testing.T) {
	for c := range Area(4) {
		if c.Length() != c.Neg().Length() {
			t.Errorf("Length(%v) = %d, Length(-a) = %d", c, c.Length(), c.Neg().Length())
		}
		if c.Add(c.Neg()) != Zero {
			t.Errorf("%v + (-%v) = %v, expected Zero", c, c, c.Add(c.Neg()))
		}
	}
}

func TestDirectionPairs(t *testing.T) {
	tests := []struct {
		name string
		up   Coord
		down Coord
	}{
		{"vertical", Up, Down},
		{"right diagonal", UpRight, DownLeft},
		{"left diagonal", UpLeft, DownRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.up != tc.down.Neg() {
				t.Errorf("expected %v == -%v", tc.up, tc.down)
			}
			if tc.up.Length() != 1 || tc.down.Length() != 1 {
				t.Errorf("unit directions must have length 1")
			}
		})
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range Directions {
		if d.Opposite().Vector() != d.Vector().Neg() {
			t.Errorf("%v.Opposite() = %v, vectors do not cancel", d, d.Opposite())
		}
		if d.Opposite().Opposite() != d {
			t.Errorf("%v.Opposite().Opposite() = %v", d, d.Opposite().Opposite())
		}
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b     Coord
		expected int
	}{
		{Zero, Zero, 0},
		{Zero, Up, 1},
		{C(2, -1), C(-1, 2), 3},
		{C(3, 0), C(0, 3), 3},
		{C(3, 0), C(0, -3), 6},
	}

	for _, tc := range tests {
		if got := Distance(tc.a, tc.b); got != tc.expected {
			t.Errorf("Distance(%v, %v) = %d, expected %d", tc.a, tc.b, got, tc.expected)
		}
	}
}

func TestNeighbors(t *testing.T) {
	origin := C(1, 1)
	seen := make(map[Coord]bool)
	for _, n := range origin.Neighbors() {
		if Distance(origin, n) != 1 {
			t.Errorf("neighbour %v at distance %d", n, Distance(origin, n))
		}
		seen[n] = true
	}
	if len(seen) != 6 {
		t.Errorf("expected 6 distinct neighbours, got %d", len(seen))
	}
}
