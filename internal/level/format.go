package level

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-hexmatch/internal/board"
	"github.com/vovakirdan/tui-hexmatch/internal/hex"
)

// yamlLevel represents the YAML structure for a level file.
type yamlLevel struct {
	ID            string      `yaml:"id"`
	Name          string      `yaml:"name"`
	Shape         yamlShape   `yaml:"shape"`
	Palette       []string    `yaml:"palette,omitempty"`
	Moves         int         `yaml:"moves,omitempty"`
	BlockerChance float64     `yaml:"blocker_chance,omitempty"`
	Sources       []yamlCoord `yaml:"sources,omitempty"`
	Holes         []yamlCoord `yaml:"holes,omitempty"`
	Stones        []yamlStone `yaml:"stones,omitempty"`
	Layers        []yamlLayer `yaml:"layers,omitempty"`
}

type yamlShape struct {
	Kind   string `yaml:"kind"`
	Radius int    `yaml:"radius,omitempty"`
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
}

type yamlCoord struct {
	Q int `yaml:"q"`
	R int `yaml:"r"`
}

type yamlStone struct {
	Q       int    `yaml:"q"`
	R       int    `yaml:"r"`
	Color   string `yaml:"color,omitempty"`
	Blocker bool   `yaml:"blocker,omitempty"`
}

type yamlLayer struct {
	Q       int    `yaml:"q"`
	R       int    `yaml:"r"`
	Kind    string `yaml:"kind"`
	Variant int    `yaml:"variant,omitempty"`
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

// Parse parses a YAML level file.
func Parse(data []byte) (Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, fmt.Errorf("level has no id")
	}

	lvl := Level{
		ID:   yl.ID,
		Name: yl.Name,
		Shape: Shape{
			Kind:   ShapeKind(yl.Shape.Kind),
			Radius: yl.Shape.Radius,
			Width:  yl.Shape.Width,
			Height: yl.Shape.Height,
		},
		Moves:         yl.Moves,
		BlockerChance: yl.BlockerChance,
		Sources:       coords(yl.Sources),
		Holes:         coords(yl.Holes),
	}
	if lvl.Name == "" {
		lvl.Name = lvl.ID
	}
	if err := lvl.Shape.Validate(); err != nil {
		return Level{}, fmt.Errorf("level %s: %w", lvl.ID, err)
	}
	if lvl.Moves < 0 {
		return Level{}, fmt.Errorf("level %s: negative moves", lvl.ID)
	}
	if lvl.BlockerChance < 0 || lvl.BlockerChance >= 1 {
		return Level{}, fmt.Errorf("level %s: blocker_chance must be in [0, 1)", lvl.ID)
	}

	seen := make(map[int]bool)
	for _, name := range yl.Palette {
		c, ok := ParseColor(name)
		if !ok {
			return Level{}, fmt.Errorf("level %s: unknown palette colour %q", lvl.ID, name)
		}
		if !seen[c] {
			seen[c] = true
			lvl.Colors = append(lvl.Colors, c)
		}
	}

	for _, s := range yl.Stones {
		spec := StoneSpec{Pos: hex.C(s.Q, s.R), Blocker: s.Blocker}
		if !s.Blocker {
			c, ok := ParseColor(s.Color)
			if !ok {
				return Level{}, fmt.Errorf("level %s: stone at (%d,%d): unknown colour %q", lvl.ID, s.Q, s.R, s.Color)
			}
			spec.Color = c
		}
		lvl.Stones = append(lvl.Stones, spec)
	}

	for _, l := range yl.Layers {
		kind, ok := board.ParseLayerKind(l.Kind)
		if !ok {
			return Level{}, fmt.Errorf("level %s: layer at (%d,%d): %w", lvl.ID, l.Q, l.R, board.ErrInvalidLayer)
		}
		lvl.Layers = append(lvl.Layers, LayerSpec{
			Pos:   hex.C(l.Q, l.R),
			Layer: board.Layer{Kind: kind, Variant: l.Variant},
		})
	}

	return lvl, nil
}

func coords(in []yamlCoord) []hex.Coord {
	if len(in) == 0 {
		return nil
	}
	out := make([]hex.Coord, len(in))
	for i, c := range in {
		out[i] = hex.C(c.Q, c.R)
	}
	return out
}
