package board

import (
	"errors"
	"maps"
	"testing"

	"github.com/vovakirdan/tui-hexmatch/internal/hex"
)

func stoneAt(id uint64, color int) *Stone {
	s := NewStone(color)
	s.ID = id
	return &s
}

func TestAddCell(t *testing.T) {
	g := NewGrid(4)
	if !g.AddCell(hex.Zero) {
		t.Fatal("first AddCell should insert")
	}
	if g.AddCell(hex.Zero) {
		t.Error("second AddCell at the same position should not insert")
	}
	if !g.HasCell(hex.Zero) || g.HasCell(hex.Up) {
		t.Error("HasCell disagrees with inserted cells")
	}

	g.Freeze()
	if g.AddCell(hex.Up) {
		t.Error("AddCell after Freeze must not insert")
	}
	if g.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", g.Len())
	}
}

func TestNotFoundVersusEmpty(t *testing.T) {
	g := NewGridFrom([]hex.Coord{hex.Zero})

	s, err := g.Occupant(hex.Zero)
	if err != nil || s != nil {
		t.Errorf("empty cell: got (%v, %v), expected (nil, nil)", s, err)
	}

	if _, err := g.Occupant(hex.C(5, 5)); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing cell: expected ErrNotFound, got %v", err)
	}
	if _, err := g.SetOccupant(hex.C(5, 5), stoneAt(1, 0)); !errors.Is(err, ErrNotFound) {
		t.Errorf("SetOccupant on missing cell: expected ErrNotFound, got %v", err)
	}
	if err := g.SwapOccupants(hex.Zero, hex.C(5, 5)); !errors.Is(err, ErrNotFound) {
		t.Errorf("SwapOccupants with missing cell: expected ErrNotFound, got %v", err)
	}
}

func TestSetOccupantReturnsReplaced(t *testing.T) {
	g := NewGridFrom([]hex.Coord{hex.Zero})
	first := stoneAt(1, 2)
	second := stoneAt(2, 3)

	if prev, _ := g.SetOccupant(hex.Zero, first); prev != nil {
		t.Errorf("expected no previous occupant, got %v", prev)
	}
	if prev, _ := g.SetOccupant(hex.Zero, second); prev != first {
		t.Errorf("expected %v to be replaced, got %v", first, prev)
	}
	if prev, _ := g.SetOccupant(hex.Zero, nil); prev != second {
		t.Errorf("clearing should return %v, got %v", second, prev)
	}
}

func TestSwapSelfInverse(t *testing.T) {
	positions := hex.Collect(hex.Area(2))
	g := NewGridFrom(positions)
	for i, p := range positions {
		if i%3 == 0 {
			continue // leave some cells empty
		}
		g.SetOccupant(p, stoneAt(uint64(i+1), i%4))
	}
	before := g.Assignment()

	pairs := [][2]hex.Coord{
		{hex.Zero, hex.Up},
		{positions[0], positions[3]},  // empty with empty
		{positions[1], positions[6]},  // filled with empty
		{positions[4], positions[17]}, // filled with filled
	}
	for _, pair := range pairs {
		if err := g.SwapOccupants(pair[0], pair[1]); err != nil {
			t.Fatalf("swap %v: %v", pair, err)
		}
		if err := g.SwapOccupants(pair[0], pair[1]); err != nil {
			t.Fatalf("swap back %v: %v", pair, err)
		}
		if !maps.Equal(before, g.Assignment()) {
			t.Errorf("double swap of %v changed the assignment", pair)
		}
	}
}

func TestLayers(t *testing.T) {
	g := NewGridFrom([]hex.Coord{hex.Zero})

	if _, err := g.SetLayer(hex.Zero, LayerCount, &Layer{}); !errors.Is(err, ErrInvalidLayer) {
		t.Errorf("expected ErrInvalidLayer, got %v", err)
	}
	if _, err := g.Layer(hex.Up, LayerGround); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	ground := &Layer{Kind: LayerGround, Variant: 2}
	g.SetLayer(hex.Zero, LayerGround, ground)
	g.SetOccupant(hex.Zero, stoneAt(1, 0))

	got, err := g.Layer(hex.Zero, LayerGround)
	if err != nil || got != ground {
		t.Errorf("Layer() = (%v, %v), expected %v", got, err, ground)
	}
	if overlay, _ := g.Layer(hex.Zero, LayerOverlay); overlay != nil {
		t.Errorf("overlay should be unset, got %v", overlay)
	}
}

func TestOccupiedAndEmpty(t *testing.T) {
	g := NewGridFrom([]hex.Coord{hex.Zero, hex.Up, hex.Down})
	g.SetOccupant(hex.Up, stoneAt(1, 0))

	if occ := g.Occupied(); len(occ) != 1 || occ[0] != hex.Up {
		t.Errorf("Occupied() = %v", occ)
	}
	if empty := g.Empty(); len(empty) != 2 || empty[0] != hex.Zero || empty[1] != hex.Down {
		t.Errorf("Empty() = %v", empty)
	}
}

func TestGeometryAdjacent(t *testing.T) {
	tests := []struct {
		name string
		geo  Geometry
		a, b hex.Coord
		want bool
	}{
		{"hex neighbour", HexGeometry, hex.Zero, hex.UpRight, true},
		{"hex not neighbour", HexGeometry, hex.Zero, hex.C(1, 1), false},
		{"square horizontal", SquareGeometry, hex.C(1, 1), hex.C(2, 1), true},
		{"square vertical", SquareGeometry, hex.C(1, 1), hex.C(1, 0), true},
		{"square diagonal", SquareGeometry, hex.C(1, 1), hex.C(2, 2), false},
		{"same cell", SquareGeometry, hex.C(1, 1), hex.C(1, 1), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.geo.Adjacent(tc.a, tc.b); got != tc.want {
				t.Errorf("Adjacent(%v, %v) = %v, expected %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestHexGeometryMovesFollowDirections(t *testing.T) {
	pos := hex.C(2, -1)
	for _, d := range hex.Directions {
		if got, want := HexGeometry.Neighbor(pos, d), pos.Add(d.Vector()); got != want {
			t.Errorf("Neighbor(%v, %v) = %v, expected %v", pos, d, got, want)
		}
	}
}

func TestGeometryByName(t *testing.T) {
	if g, ok := GeometryByName("square"); !ok || g.Name != "square" {
		t.Errorf("square lookup failed")
	}
	if g, ok := GeometryByName(""); !ok || g.Name != "hex" {
		t.Errorf("empty name should default to hex")
	}
	if _, ok := GeometryByName("triangle"); ok {
		t.Errorf("unknown geometry should not resolve")
	}
}

func TestBlocker(t *testing.T) {
	b := NewBlocker()
	if !b.IsBlocker() || b.CanMove || b.CanCombine || b.Color != BlockerColor {
		t.Errorf("NewBlocker() = %+v", b)
	}
	if NewStone(0).IsBlocker() {
		t.Error("a regular stone is not a blocker")
	}
}
