package engine_test

import (
	"errors"
	"maps"
	"testing"

	"github.com/vovakirdan/tui-hexmatch/internal/board"
	"github.com/vovakirdan/tui-hexmatch/internal/engine"
	"github.com/vovakirdan/tui-hexmatch/internal/hex"
)

// squareBoard builds a w×h square grid with the top row as sources.
// colors is indexed [y][x]; a negative entry places a blocker, nil leaves
// the board empty.
func squareBoard(t *testing.T, w, h int, colors [][]int, palette []int) *engine.Engine {
	t.Helper()

	var positions, sources []hex.Coord
	for y := range h {
		for x := range w {
			positions = append(positions, hex.C(x, y))
			if y == 0 {
				sources = append(sources, hex.C(x, y))
			}
		}
	}
	g := board.NewGridFrom(positions)
	for y, row := range colors {
		for x, c := range row {
			s := board.NewStone(c)
			if c < 0 {
				s = board.NewBlocker()
			}
			g.SetOccupant(hex.C(x, y), &s)
		}
	}

	cfg := engine.DefaultConfig(palette, sources)
	cfg.Geometry = board.SquareGeometry
	cfg.Seed = 42
	e, err := engine.New(g, cfg)
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	return e
}

func TestSwapWithoutMatchIsReverted(t *testing.T) {
	e := squareBoard(t, 3, 3, [][]int{
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
	}, []int{0, 1, 2})
	before := e.Grid().Assignment()

	if !e.TrySwap(hex.C(0, 0), hex.C(1, 0)) {
		t.Fatal("swap of two movable stones should be accepted")
	}
	batches, run := e.Settle()

	if !run.Reverted {
		t.Error("expected the swap to be reverted")
	}
	if !run.Stable {
		t.Error("expected the run to end stable")
	}
	if !maps.Equal(before, e.Grid().Assignment()) {
		t.Error("revert must restore the exact occupant assignment")
	}
	if e.Score() != 0 {
		t.Errorf("score = %d, expected 0", e.Score())
	}
	if len(batches) != 2 {
		t.Errorf("expected swap and revert batches, got %d", len(batches))
	}
}

func TestSingleColorSwapScores(t *testing.T) {
	e := squareBoard(t, 3, 3, [][]int{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	}, []int{0})

	if !e.TrySwap(hex.C(1, 1), hex.C(2, 1)) {
		t.Fatal("swap should be accepted")
	}
	batches, run := e.Settle()

	if e.Score() <= 0 {
		t.Fatalf("score = %d, expected an increase", e.Score())
	}
	if run.Reverted {
		t.Error("a matching swap must not be reverted")
	}

	destroyedInFirstStep := 0
	for _, b := range batches {
		if b.Step != 1 {
			continue
		}
		for _, ev := range b.Events {
			if _, ok := ev.(engine.Destroyed); ok {
				destroyedInFirstStep++
			}
		}
	}
	if destroyedInFirstStep != 9 {
		t.Errorf("first step destroyed %d stones, expected all 9", destroyedInFirstStep)
	}
}

func TestStepCombineClearsAndScores(t *testing.T) {
	tests := []struct {
		name   string
		colors map[hex.Coord]int
		want   int
	}{
		{
			name: "single line",
			colors: map[hex.Coord]int{
				hex.Zero: 1, hex.Up: 1, hex.Down: 1,
				hex.UpRight: 2, hex.DownLeft: 3, hex.UpLeft: 2, hex.DownRight: 3,
			},
			want: 3,
		},
		{
			name: "two lines share the centre",
			colors: map[hex.Coord]int{
				hex.Zero: 1, hex.Up: 1, hex.Down: 1,
				hex.UpRight: 1, hex.DownLeft: 1, hex.UpLeft: 2, hex.DownRight: 3,
			},
			want: 5,
		},
		{
			name: "no line",
			colors: map[hex.Coord]int{
				hex.Zero: 1, hex.Up: 1, hex.Down: 2,
				hex.UpRight: 2, hex.DownLeft: 3, hex.UpLeft: 2, hex.DownRight: 3,
			},
			want: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := board.NewGridFrom(hex.Collect(hex.Area(1)))
			for pos, c := range tc.colors {
				s := board.NewStone(c)
				g.SetOccupant(pos, &s)
			}
			e, err := engine.New(g, engine.DefaultConfig([]int{1, 2, 3}, nil))
			if err != nil {
				t.Fatal(err)
			}

			changed, events := e.StepCombine(1)

			if changed != (tc.want > 0) {
				t.Errorf("changed = %v, expected %v", changed, tc.want > 0)
			}
			destroyed := 0
			for _, ev := range events {
				d, ok := ev.(engine.Destroyed)
				if !ok {
					continue
				}
				destroyed++
				if s, _ := g.Occupant(d.Pos); s != nil {
					t.Errorf("%v still occupied after destruction", d.Pos)
				}
			}
			if destroyed != tc.want {
				t.Errorf("destroyed %d, expected %d", destroyed, tc.want)
			}
			if e.Score() != 100*tc.want {
				t.Errorf("score = %d, expected %d", e.Score(), 100*tc.want)
			}
		})
	}
}

func TestBlockerNeverFalls(t *testing.T) {
	top, mid, bottom := hex.C(0, 0), hex.C(0, 1), hex.C(0, 2)
	g := board.NewGridFrom([]hex.Coord{top, mid, bottom})
	blocker := board.NewBlocker()
	g.SetOccupant(mid, &blocker)

	cfg := engine.DefaultConfig([]int{0, 1}, []hex.Coord{top})
	cfg.Geometry = board.SquareGeometry
	e, err := engine.New(g, cfg)
	if err != nil {
		t.Fatal(err)
	}
	blockerID := func() uint64 {
		s, _ := g.Occupant(mid)
		if s == nil {
			t.Fatal("blocker disappeared")
		}
		return s.ID
	}
	id := blockerID()

	for step := 1; step <= 3; step++ {
		_, events := e.StepFall(step)
		for _, ev := range events {
			if m, ok := ev.(engine.Moved); ok && m.StoneID == id {
				t.Fatalf("blocker moved %v -> %v", m.From, m.To)
			}
		}
	}

	if blockerID() != id {
		t.Error("blocker was replaced")
	}
	if s, _ := g.Occupant(bottom); s != nil {
		t.Errorf("cell below the blocker was filled with %v", s)
	}
	if s, _ := g.Occupant(top); s == nil {
		t.Error("source above the blocker should have been refilled")
	}
}

func TestRefillDrawsFromPalette(t *testing.T) {
	src := hex.Zero
	g := board.NewGridFrom([]hex.Coord{src})
	palette := []int{2, 5, 7}
	e, err := engine.New(g, engine.DefaultConfig(palette, []hex.Coord{src}))
	if err != nil {
		t.Fatal(err)
	}

	seen := make(map[int]int)
	for i := range 300 {
		changed, events := e.StepRefill(i + 1)
		if !changed || len(events) != 1 {
			t.Fatalf("refill of an empty source: changed=%v events=%d", changed, len(events))
		}
		s, _ := g.Occupant(src)
		seen[s.Color]++

		if changed, _ := e.StepRefill(i + 1); changed {
			t.Fatal("refill of an occupied source must not change anything")
		}
		g.SetOccupant(src, nil)
	}

	for _, c := range palette {
		if seen[c] == 0 {
			t.Errorf("colour %d never drawn", c)
		}
	}
	for c := range seen {
		if c != 2 && c != 5 && c != 7 {
			t.Errorf("colour %d is outside the palette", c)
		}
	}
}

func TestRefillWithEmptyPalette(t *testing.T) {
	g := board.NewGridFrom([]hex.Coord{hex.Zero})
	e, err := engine.New(g, engine.DefaultConfig(nil, []hex.Coord{hex.Zero}))
	if err != nil {
		t.Fatal(err)
	}
	if changed, _ := e.StepRefill(1); changed {
		t.Error("empty palette must not refill")
	}
	if err := e.SpawnRandom(hex.Zero); !errors.Is(err, engine.ErrNoPalette) {
		t.Errorf("expected ErrNoPalette, got %v", err)
	}
}

func TestDepthBoundHalts(t *testing.T) {
	e := squareBoard(t, 3, 3, nil, []int{0})

	if err := e.DestroyAll(); err != nil {
		t.Fatal(err)
	}
	_, run := e.Settle()

	if run.Stable {
		t.Fatal("a single-colour board keeps re-matching and cannot become stable")
	}
	if run.Steps != engine.DefaultMaxDepth {
		t.Errorf("run stopped after %d steps, expected %d", run.Steps, engine.DefaultMaxDepth)
	}
	if !errors.Is(run.Err(), engine.ErrDepthExceeded) {
		t.Errorf("expected ErrDepthExceeded, got %v", run.Err())
	}
	if e.State() != engine.StateHalted {
		t.Errorf("state = %v, expected halted", e.State())
	}
	if e.Busy() {
		t.Error("engine must accept commands after a halted run")
	}
}

func TestBusyGate(t *testing.T) {
	e := squareBoard(t, 3, 3, [][]int{
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 2},
	}, []int{0, 1, 2})

	if err := e.Destroy(hex.C(2, 2)); err != nil {
		t.Fatal(err)
	}
	if !e.Busy() {
		t.Fatal("engine should be busy after a command")
	}
	if err := e.Destroy(hex.C(0, 0)); !errors.Is(err, engine.ErrBusy) {
		t.Errorf("expected ErrBusy, got %v", err)
	}
	if e.TrySwap(hex.C(0, 0), hex.C(1, 0)) || e.TryDestroyAll() {
		t.Error("commands must be rejected while busy")
	}

	e.Settle()
	if e.Busy() {
		t.Error("engine should be idle after Settle")
	}
	if occupied := e.Grid().Occupied(); len(occupied) == 0 || !e.TryDestroy(occupied[0]) {
		t.Error("command should be accepted once idle")
	}
}

func TestCooperativeStepping(t *testing.T) {
	e := squareBoard(t, 3, 3, [][]int{
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 2},
	}, []int{0, 1, 2})

	if err := e.Destroy(hex.C(1, 2)); err != nil {
		t.Fatal(err)
	}
	if e.Update() {
		t.Fatal("Update must wait until the command batch is played")
	}

	b, ok := e.Next()
	if !ok || b.Step != 0 {
		t.Fatalf("expected the command batch, got %+v ok=%v", b, ok)
	}
	if _, ok := e.Next(); ok {
		t.Fatal("Next must not hand out a second batch before Done")
	}
	if e.Update() {
		t.Fatal("Update must wait while a batch is playing")
	}

	e.Done()
	if !e.Update() {
		t.Fatal("Update should run the first step")
	}
	b, ok = e.Next()
	if !ok || b.Step != 1 {
		t.Fatalf("expected the first step batch, got %+v ok=%v", b, ok)
	}
	if b.Duration <= 0 {
		t.Errorf("step batch duration = %v, expected positive", b.Duration)
	}
	e.Done()
}

func TestFallStampsIncrease(t *testing.T) {
	e := squareBoard(t, 1, 4, nil, []int{0, 1})
	cfg := e.Config()

	changed, events := e.StepFall(1)
	if !changed {
		t.Fatal("an empty column with a source must change")
	}

	last := events[0].When().At
	for _, ev := range events {
		st := ev.When()
		if st.Step != 1 {
			t.Errorf("event %s has step %d", engine.FormatEvent(ev), st.Step)
		}
		if st.At < last {
			t.Errorf("event %s goes back in time", engine.FormatEvent(ev))
		}
		if st.At%cfg.FallInterval != 0 {
			t.Errorf("event %s is not aligned to a fall pass", engine.FormatEvent(ev))
		}
		last = st.At
	}

	for y := range 4 {
		if s, _ := e.Grid().Occupant(hex.C(0, y)); s == nil {
			t.Errorf("(0,%d) should be filled after the fall", y)
		}
	}
}

func TestCommandErrors(t *testing.T) {
	e := squareBoard(t, 2, 2, [][]int{
		{0, -1},
	}, []int{0, 1})

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"spawn off board", e.Spawn(hex.C(5, 5), board.NewStone(0)), board.ErrNotFound},
		{"spawn occupied", e.Spawn(hex.C(0, 0), board.NewStone(0)), engine.ErrOccupied},
		{"destroy empty", e.Destroy(hex.C(1, 1)), engine.ErrEmpty},
		{"destroy off board", e.Destroy(hex.C(-1, 0)), board.ErrNotFound},
		{"swap blocker", e.Swap(hex.C(0, 0), hex.C(1, 0)), engine.ErrImmovable},
		{"swap empty", e.Swap(hex.C(0, 0), hex.C(0, 1)), engine.ErrEmpty},
		{"swap with itself", e.Swap(hex.C(0, 0), hex.C(0, 0)), engine.ErrSameCell},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !errors.Is(tc.err, tc.want) {
				t.Errorf("got %v, expected %v", tc.err, tc.want)
			}
		})
	}
	if e.TrySwap(hex.C(0, 0), hex.C(0, 0)) {
		t.Error("TrySwap accepted a cell swapped with itself")
	}
	if e.Busy() {
		t.Error("rejected commands must not start a run")
	}
}

func TestNewValidatesSources(t *testing.T) {
	g := board.NewGridFrom([]hex.Coord{hex.Zero})
	_, err := engine.New(g, engine.DefaultConfig([]int{0}, []hex.Coord{hex.Up}))
	if !errors.Is(err, board.ErrNotFound) {
		t.Errorf("expected ErrNotFound for a missing source, got %v", err)
	}
}

func TestPopulate(t *testing.T) {
	e := squareBoard(t, 4, 4, nil, []int{0, 1, 2, 3})

	if err := e.Populate(0.25); err != nil {
		t.Fatal(err)
	}
	if empty := e.Grid().Empty(); len(empty) != 0 {
		t.Errorf("board should be full after populate, %d empty", len(empty))
	}

	b, ok := e.Next()
	if !ok || len(b.Events) != 16 {
		t.Fatalf("expected one spawn per cell, got %d events", len(b.Events))
	}
	e.Done()

	e.Settle()
	if e.Busy() {
		t.Error("engine should be idle after Settle")
	}
	if err := e.Populate(0); err != nil {
		t.Errorf("second populate: %v", err)
	}
}

func TestSetPalette(t *testing.T) {
	g := board.NewGridFrom([]hex.Coord{hex.Zero})
	e, err := engine.New(g, engine.DefaultConfig([]int{0}, []hex.Coord{hex.Zero}))
	if err != nil {
		t.Fatal(err)
	}
	if err := e.SetPalette([]int{-1}); err == nil {
		t.Error("blocker colour must not be accepted in a palette")
	}
	if err := e.SetPalette([]int{4}); err != nil {
		t.Fatal(err)
	}
	e.StepRefill(1)
	if s, _ := g.Occupant(hex.Zero); s == nil || s.Color != 4 {
		t.Errorf("refill should use the new palette, got %v", s)
	}
}
