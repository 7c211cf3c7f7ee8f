package hex

import "iter"

// Ring yields the coordinates at exactly Length == radius, walking the six
// edges of the ring consecutively. Ring(0) yields only Zero and a negative
// radius yields nothing.
func Ring(radius int) iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		if radius < 0 {
			return
		}
		if radius == 0 {
			yield(Zero)
			return
		}

		// Each edge starts at a corner and walks toward the next one.
		edges := [6][2]Coord{
			{Up, DownLeft},
			{UpLeft, Down},
			{DownLeft, DownRight},
			{Down, UpRight},
			{DownRight, Up},
			{UpRight, UpLeft},
		}
		for _, e := range edges {
			corner := e[0].Scale(radius)
			for i := 0; i < radius; i++ {
				if !yield(corner.Add(e[1].Scale(i))) {
					return
				}
			}
		}
	}
}

// Spiral yields Ring(0) through Ring(maxRadius-1), i.e. every coordinate
// with Length < maxRadius, ring by ring.
func Spiral(maxRadius int) iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for r := 0; r < maxRadius; r++ {
			for c := range Ring(r) {
				if !yield(c) {
					return
				}
			}
		}
	}
}

// Area yields every coordinate with Length <= radius, ring by ring.
func Area(radius int) iter.Seq[Coord] {
	return Spiral(radius + 1)
}

// Collect drains a sequence into a slice.
func Collect(seq iter.Seq[Coord]) []Coord {
	out := make([]Coord, 0)
	for c := range seq {
		out = append(out, c)
	}
	return out
}

// Filter yields the coordinates of seq for which keep returns true.
func Filter(seq iter.Seq[Coord], keep func(Coord) bool) iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for c := range seq {
			if keep(c) && !yield(c) {
				return
			}
		}
	}
}
