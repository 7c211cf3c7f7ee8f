// Package level describes board layouts and loads them from YAML.
// This package depends on board but board does not depend on level.
package level

import (
	"fmt"

	"github.com/vovakirdan/tui-hexmatch/internal/board"
	"github.com/vovakirdan/tui-hexmatch/internal/hex"
)

// StoneSpec places a fixed stone when the level is built.
type StoneSpec struct {
	Pos     hex.Coord
	Color   int
	Blocker bool
}

// LayerSpec places a static layer when the level is built.
type LayerSpec struct {
	Pos   hex.Coord
	Layer board.Layer
}

// Level represents a complete level definition.
type Level struct {
	ID            string
	Name          string
	Shape         Shape
	Colors        []int // Palette as colour indices
	Moves         int   // Swap budget, 0 for unlimited
	BlockerChance float64
	Sources       []hex.Coord // Overrides the shape's top edge when set
	Holes         []hex.Coord
	Stones        []StoneSpec
	Layers        []LayerSpec
	FilePath      string
}

// Palette returns the colours refill may draw from.
func (l *Level) Palette() []int {
	if len(l.Colors) == 0 {
		return DefaultPalette(DefaultPaletteSize)
	}
	out := make([]int, len(l.Colors))
	copy(out, l.Colors)
	return out
}

// Geometry returns the gravity and matching rules of the level.
func (l *Level) Geometry() board.Geometry {
	return l.Shape.Geometry()
}

// Build creates the grid with fixed stones and layers, and resolves the
// refill sources.
func (l *Level) Build() (*board.Grid, board.Geometry, []hex.Coord, error) {
	positions, err := l.Shape.Positions()
	if err != nil {
		return nil, board.Geometry{}, nil, fmt.Errorf("level %s: %w", l.ID, err)
	}

	holes := make(map[hex.Coord]bool, len(l.Holes))
	for _, h := range l.Holes {
		holes[h] = true
	}
	kept := make([]hex.Coord, 0, len(positions))
	for _, p := range positions {
		if !holes[p] {
			kept = append(kept, p)
		}
	}
	grid := board.NewGridFrom(kept)

	sources := l.Sources
	if len(sources) == 0 {
		sources = l.Shape.TopEdge(kept)
	}
	for _, src := range sources {
		if !grid.HasCell(src) {
			return nil, board.Geometry{}, nil, fmt.Errorf("level %s: source %v: %w", l.ID, src, board.ErrNotFound)
		}
	}

	for _, spec := range l.Stones {
		stone := board.NewStone(spec.Color)
		if spec.Blocker {
			stone = board.NewBlocker()
		}
		if _, err := grid.SetOccupant(spec.Pos, &stone); err != nil {
			return nil, board.Geometry{}, nil, fmt.Errorf("level %s: stone %v: %w", l.ID, spec.Pos, err)
		}
	}

	for _, spec := range l.Layers {
		layer := spec.Layer
		if _, err := grid.SetLayer(spec.Pos, layer.Kind, &layer); err != nil {
			return nil, board.Geometry{}, nil, fmt.Errorf("level %s: layer %v: %w", l.ID, spec.Pos, err)
		}
	}

	return grid, l.Geometry(), sources, nil
}
