package hex

import "testing"

func TestRingZero(t *testing.T) {
	got := Collect(Ring(0))
	if len(got) != 1 || got[0] != Zero {
		t.Errorf("Ring(0) = %v, expected [Zero]", got)
	}
}

func TestRingNegative(t *testing.T) {
	if got := Collect(Ring(-1)); len(got) != 0 {
		t.Errorf("Ring(-1) = %v, expected empty", got)
	}
}

func TestRingCounts(t *testing.T) {
	for n := 1; n <= 5; n++ {
		ring := Collect(Ring(n))
		if len(ring) != 6*n {
			t.Errorf("Ring(%d) yielded %d coords, expected %d", n, len(ring), 6*n)
		}

		seen := make(map[Coord]bool)
		for _, c := range ring {
			if c.Length() != n {
				t.Errorf("Ring(%d) yielded %v with length %d", n, c, c.Length())
			}
			if seen[c] {
				t.Errorf("Ring(%d) yielded %v twice", n, c)
			}
			seen[c] = true
		}
	}
}

func TestRingContinuity(t *testing.T) {
	ring := Collect(Ring(3))
	for i := range ring {
		next := ring[(i+1)%len(ring)]
		if Distance(ring[i], next) != 1 {
			t.Errorf("ring walk jumps from %v to %v", ring[i], next)
		}
	}
}

func TestSpiral(t *testing.T) {
	for n := 0; n <= 4; n++ {
		spiral := Collect(Spiral(n))

		expected := 0
		if n > 0 {
			expected = 3*n*(n-1) + 1
		}
		if len(spiral) != expected {
			t.Errorf("Spiral(%d) yielded %d coords, expected %d", n, len(spiral), expected)
		}

		seen := make(map[Coord]bool)
		for _, c := range spiral {
			if c.Length() >= n {
				t.Errorf("Spiral(%d) yielded %v with length %d", n, c, c.Length())
			}
			if seen[c] {
				t.Errorf("Spiral(%d) yielded %v twice", n, c)
			}
			seen[c] = true
		}
	}
}

func TestAreaInclusive(t *testing.T) {
	area := Collect(Area(2))
	if len(area) != 19 {
		t.Errorf("Area(2) yielded %d coords, expected 19", len(area))
	}
	for _, c := range area {
		if c.Length() > 2 {
			t.Errorf("Area(2) yielded %v with length %d", c, c.Length())
		}
	}
}

func TestFilterEarlyStop(t *testing.T) {
	count := 0
	for range Filter(Area(3), func(c Coord) bool { return c.Length() > 1 }) {
		count++
		if count == 5 {
			break
		}
	}
	if count != 5 {
		t.Errorf("expected to stop after 5, got %d", count)
	}
}
