package bench

import (
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Summary describes a sample of per-game values.
type Summary struct {
	N      int
	Mean   float64
	StdDev float64 // Population standard deviation
	Min    float64
	Median float64
	P90    float64
	Max    float64
}

// Summarize computes the summary of xs. An empty sample gives a zero Summary.
func Summarize(xs []float64) Summary {
	if len(xs) == 0 {
		return Summary{}
	}
	sorted := slices.Clone(xs)
	slices.Sort(sorted)

	mean, std := stat.PopMeanStdDev(sorted, nil)
	return Summary{
		N:      len(sorted),
		Mean:   mean,
		StdDev: std,
		Min:    sorted[0],
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P90:    stat.Quantile(0.9, stat.Empirical, sorted, nil),
		Max:    sorted[len(sorted)-1],
	}
}

// rate returns k/n, or 0 when n is 0.
func rate(k, n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(k) / float64(n)
}
