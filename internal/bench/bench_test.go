package bench

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-hexmatch/internal/config"
	"github.com/vovakirdan/tui-hexmatch/internal/level"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name   string
		in     []float64
		mean   float64
		std    float64
		min    float64
		median float64
		max    float64
	}{
		{"empty", nil, 0, 0, 0, 0, 0},
		{"single", []float64{5}, 5, 0, 5, 5, 5},
		{"unsorted", []float64{4, 2, 8, 6}, 5, math.Sqrt(5), 2, 4, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Summarize(tt.in)
			if s.N != len(tt.in) {
				t.Errorf("N = %d, want %d", s.N, len(tt.in))
			}
			if math.Abs(s.Mean-tt.mean) > 1e-9 || math.Abs(s.StdDev-tt.std) > 1e-9 {
				t.Errorf("mean/std = %v/%v, want %v/%v", s.Mean, s.StdDev, tt.mean, tt.std)
			}
			if s.Min != tt.min || s.Median != tt.median || s.Max != tt.max {
				t.Errorf("min/median/max = %v/%v/%v, want %v/%v/%v", s.Min, s.Median, s.Max, tt.min, tt.median, tt.max)
			}
		})
	}
}

func TestSummarizeKeepsInput(t *testing.T) {
	in := []float64{3, 1, 2}
	Summarize(in)
	if in[0] != 3 || in[1] != 1 || in[2] != 2 {
		t.Errorf("input reordered: %v", in)
	}
}

func TestPlayGameDeterministic(t *testing.T) {
	lvl, err := level.Builtin("square")
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.DefaultHexMatchConfig()

	a, err := PlayGame(lvl, cfg, 11, 10)
	if err != nil {
		t.Fatalf("PlayGame: %v", err)
	}
	b, err := PlayGame(lvl, cfg, 11, 10)
	if err != nil {
		t.Fatalf("PlayGame: %v", err)
	}
	if a != b {
		t.Errorf("same seed gave different games:\n%+v\n%+v", a, b)
	}
	if a.Swaps != 10 {
		t.Errorf("Swaps = %d, want 10", a.Swaps)
	}
	if a.Runs != a.Swaps+1 {
		t.Errorf("Runs = %d, want %d", a.Runs, a.Swaps+1)
	}
	if a.Score != a.Stones*cfg.Engine.PointsPerStone {
		t.Errorf("score %d does not match %d stones", a.Score, a.Stones)
	}
}

func TestRun(t *testing.T) {
	lvl, err := level.Builtin("ring")
	if err != nil {
		t.Fatal(err)
	}
	var progress bytes.Buffer

	report, err := Run(context.Background(), lvl, config.DefaultHexMatchConfig(), Options{
		Runs:     6,
		Swaps:    5,
		Seed:     100,
		Workers:  3,
		Progress: &progress,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(report.Games) != 6 || report.Score.N != 6 {
		t.Fatalf("games = %d, summary N = %d", len(report.Games), report.Score.N)
	}
	for i, g := range report.Games {
		if g.Seed != 100+int64(i) {
			t.Errorf("game %d seed = %d", i, g.Seed)
		}
	}
	if report.RevertRate < 0 || report.RevertRate > 1 || report.HaltRate < 0 || report.HaltRate > 1 {
		t.Errorf("rates out of range: %+v", report)
	}
	if report.Level != "ring" {
		t.Errorf("Level = %q", report.Level)
	}
}

func TestRunErrors(t *testing.T) {
	lvl, _ := level.Builtin("ring")
	cfg := config.DefaultHexMatchConfig()

	if _, err := Run(context.Background(), lvl, cfg, Options{}); err == nil {
		t.Error("expected error for zero runs")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Run(ctx, lvl, cfg, Options{Runs: 1000, Swaps: 1}); err == nil {
		t.Error("expected error for a cancelled context")
	}
}

func TestTrace(t *testing.T) {
	lvl, err := level.Builtin("square")
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.DefaultHexMatchConfig()

	var out bytes.Buffer
	res, err := Trace(&out, lvl, cfg, 11, 3)
	if err != nil {
		t.Fatalf("Trace: %v", err)
	}
	played, _ := PlayGame(lvl, cfg, 11, 3)
	if res != played {
		t.Errorf("trace played a different game:\n%+v\n%+v", res, played)
	}

	log := out.String()
	for _, want := range []string{"== populate:", "== swap ", "spawned #", "== score "} {
		if !strings.Contains(log, want) {
			t.Errorf("trace missing %q", want)
		}
	}
	// One header per run plus the closing score line.
	if got := strings.Count("\n"+log, "\n== "); got != res.Runs+1 {
		t.Errorf("found %d header lines, want %d", got, res.Runs+1)
	}
}
