// Package scoring accumulates points for destroyed stones.
package scoring

// DefaultPointsPerStone is awarded for every destroyed stone.
const DefaultPointsPerStone = 100

// Points returns the score for destroying n stones.
func Points(destroyed, perStone int) int {
	if destroyed <= 0 {
		return 0
	}
	return destroyed * perStone
}

// Scorer keeps a running total. The zero value awards nothing per stone;
// use New.
type Scorer struct {
	perStone  int
	total     int
	destroyed int
}

// New creates a scorer. A non-positive perStone falls back to
// DefaultPointsPerStone.
func New(perStone int) *Scorer {
	if perStone <= 0 {
		perStone = DefaultPointsPerStone
	}
	return &Scorer{perStone: perStone}
}

// Add records n destroyed stones and returns the total before and after.
func (s *Scorer) Add(n int) (old, updated int) {
	old = s.total
	if n > 0 {
		s.destroyed += n
		s.total += Points(n, s.perStone)
	}
	return old, s.total
}

// Total returns the accumulated score.
func (s *Scorer) Total() int { return s.total }

// Destroyed returns the number of stones scored so far.
func (s *Scorer) Destroyed() int { return s.destroyed }
