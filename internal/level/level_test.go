package level

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-hexmatch/internal/board"
	"github.com/vovakirdan/tui-hexmatch/internal/hex"
)

func TestShapePositions(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  int
	}{
		{"ring radius 2", Shape{Kind: ShapeRing, Radius: 2}, 18},
		{"ring radius 3", Shape{Kind: ShapeRing, Radius: 3}, 30},
		{"hexagon radius 2", Shape{Kind: ShapeHexagon, Radius: 2}, 19},
		{"spiral radius 3", Shape{Kind: ShapeSpiral, Radius: 3}, 19},
		{"hexrect 5x5", Shape{Kind: ShapeHexRect, Width: 5, Height: 5}, 24},
		{"square 3x4", Shape{Kind: ShapeSquare, Width: 3, Height: 4}, 12},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.shape.Positions()
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != tc.want {
				t.Errorf("got %d positions, expected %d", len(got), tc.want)
			}
			seen := make(map[hex.Coord]bool)
			for _, c := range got {
				if seen[c] {
					t.Errorf("duplicate position %v", c)
				}
				seen[c] = true
			}
		})
	}
}

func TestRingTopEdge(t *testing.T) {
	shape := Shape{Kind: ShapeRing, Radius: 2}
	positions, _ := shape.Positions()
	top := shape.TopEdge(positions)

	// Both upper edges of a radius-2 ring share the Up corner.
	if len(top) != 5 {
		t.Errorf("got %d top positions, expected 5: %v", len(top), top)
	}
	for _, c := range top {
		if c.R != -2 && c.S() != 2 {
			t.Errorf("%v is not on the top edge", c)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	bad := []Shape{
		{Kind: ShapeRing},
		{Kind: ShapeSpiral, Radius: 1},
		{Kind: ShapeSquare, Width: 3},
		{Kind: "triangle", Radius: 3},
	}
	for _, s := range bad {
		if err := s.Validate(); err == nil {
			t.Errorf("%+v should not validate", s)
		}
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
id: test
shape: {kind: hexagon, radius: 2}
palette: [red, b, green, red]
moves: 12
sources: [{q: 0, r: -2}]
holes: [{q: 0, r: 0}]
stones:
  - {q: 1, r: 0, color: yellow}
  - {q: -1, r: 0, blocker: true}
layers:
  - {q: 0, r: 1, kind: ground, variant: 3}
`)
	lvl, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}

	if lvl.Name != "test" {
		t.Errorf("name should default to the id, got %q", lvl.Name)
	}
	if got := lvl.Palette(); len(got) != 3 || got[0] != 0 || got[1] != 2 || got[2] != 1 {
		t.Errorf("Palette() = %v, expected [0 2 1]", got)
	}

	grid, geo, sources, err := lvl.Build()
	if err != nil {
		t.Fatal(err)
	}
	if geo.Name != "hex" {
		t.Errorf("geometry = %s", geo.Name)
	}
	if grid.HasCell(hex.Zero) {
		t.Error("hole should not be on the board")
	}
	if grid.Len() != 18 {
		t.Errorf("Len() = %d, expected 18", grid.Len())
	}
	if len(sources) != 1 || sources[0] != hex.C(0, -2) {
		t.Errorf("sources = %v", sources)
	}
	if s, _ := grid.Occupant(hex.C(1, 0)); s == nil || s.Color != 3 {
		t.Errorf("expected yellow stone, got %v", s)
	}
	if s, _ := grid.Occupant(hex.C(-1, 0)); s == nil || !s.IsBlocker() {
		t.Errorf("expected blocker, got %v", s)
	}
	if l, _ := grid.Layer(hex.C(0, 1), board.LayerGround); l == nil || l.Variant != 3 {
		t.Errorf("expected ground layer variant 3, got %v", l)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no id", "shape: {kind: ring, radius: 2}"},
		{"bad shape", "id: x\nshape: {kind: blob}"},
		{"bad colour", "id: x\nshape: {kind: ring, radius: 2}\npalette: [mauve]"},
		{"bad layer", "id: x\nshape: {kind: ring, radius: 2}\nlayers: [{q: 0, r: -2, kind: roof}]"},
		{"bad chance", "id: x\nshape: {kind: ring, radius: 2}\nblocker_chance: 1.5"},
		{"not yaml", "id: [x"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.data)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestBuildRejectsStoneOffBoard(t *testing.T) {
	lvl := Level{
		ID:     "x",
		Shape:  Shape{Kind: ShapeSquare, Width: 2, Height: 2},
		Stones: []StoneSpec{{Pos: hex.C(5, 5)}},
	}
	if _, _, _, err := lvl.Build(); !errors.Is(err, board.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestBuiltins(t *testing.T) {
	ids := BuiltinIDs()
	if len(ids) == 0 {
		t.Fatal("no builtin levels")
	}
	for _, id := range ids {
		lvl, err := Builtin(id)
		if err != nil {
			t.Fatalf("Builtin(%s): %v", id, err)
		}
		grid, _, sources, err := lvl.Build()
		if err != nil {
			t.Errorf("%s: %v", id, err)
			continue
		}
		if grid.Len() == 0 || len(sources) == 0 {
			t.Errorf("%s: %d cells, %d sources", id, grid.Len(), len(sources))
		}
	}
	if _, err := Builtin("missing"); err == nil {
		t.Error("expected an error for an unknown builtin")
	}
}

func TestLoader(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "pack")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	files := map[string]string{
		filepath.Join(dir, "b.yaml"):    "id: b\nshape: {kind: square, width: 3, height: 3}\n",
		filepath.Join(nested, "a.yml"):  "id: a\nshape: {kind: ring, radius: 2}\n",
		filepath.Join(dir, "bad.yaml"):  "id: [",
		filepath.Join(dir, "notes.txt"): "id: c",
	}
	for path, body := range files {
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	loader := NewLoader(dir)
	ids, err := loader.ListIDs()
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Errorf("ListIDs() = %v, expected [a b]", ids)
	}

	lvl, err := loader.LoadByID("b")
	if err != nil {
		t.Fatal(err)
	}
	if lvl.FilePath != filepath.Join(dir, "b.yaml") {
		t.Errorf("FilePath = %s", lvl.FilePath)
	}
	if _, err := loader.LoadByID("zzz"); err == nil {
		t.Error("expected an error for an unknown id")
	}

	resolved, err := Resolve(filepath.Join(nested, "a.yml"))
	if err != nil || resolved.ID != "a" {
		t.Errorf("Resolve(path) = %v, %v", resolved.ID, err)
	}
	if resolved, err := Resolve("ring"); err != nil || resolved.ID != "ring" {
		t.Errorf("Resolve(builtin) = %v, %v", resolved.ID, err)
	}
}
