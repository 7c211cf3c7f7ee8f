package engine

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-hexmatch/internal/board"
	"github.com/vovakirdan/tui-hexmatch/internal/hex"
	"github.com/vovakirdan/tui-hexmatch/internal/scoring"
)

// Defaults used when the matching Config field is zero.
const (
	DefaultMaxDepth     = 10
	DefaultTween        = 200 * time.Millisecond
	DefaultFallInterval = 100 * time.Millisecond
)

// Config holds engine parameters.
type Config struct {
	MaxDepth       int            // Steps per run before the run is halted
	PointsPerStone int            // Score per destroyed stone; zero selects DefaultPointsPerStone
	Palette        []int          // Colours used by refill and random spawns
	Geometry       board.Geometry // Gravity and match directions
	Sources        []hex.Coord    // Refill positions (the top edge)
	Tween          time.Duration  // Playback time of a single event
	FallInterval   time.Duration  // Offset between consecutive fall passes
	Seed           int64
}

// DefaultConfig returns a hex configuration with the given palette and
// sources.
func DefaultConfig(palette []int, sources []hex.Coord) Config {
	return Config{
		MaxDepth:       DefaultMaxDepth,
		PointsPerStone: scoring.DefaultPointsPerStone,
		Palette:        palette,
		Geometry:       board.HexGeometry,
		Sources:        sources,
		Tween:          DefaultTween,
		FallInterval:   DefaultFallInterval,
	}
}

// withDefaults fills zero fields.
func (c Config) withDefaults() Config {
	if c.MaxDepth == 0 {
		c.MaxDepth = DefaultMaxDepth
	}
	if c.PointsPerStone == 0 {
		c.PointsPerStone = scoring.DefaultPointsPerStone
	}
	if c.Geometry.Name == "" {
		c.Geometry = board.HexGeometry
	}
	if c.Tween == 0 {
		c.Tween = DefaultTween
	}
	if c.FallInterval == 0 {
		c.FallInterval = DefaultFallInterval
	}
	return c
}

func (c Config) validate(g *board.Grid) error {
	if c.MaxDepth < 1 {
		return fmt.Errorf("engine: max depth must be at least 1, got %d", c.MaxDepth)
	}
	if c.PointsPerStone < 0 {
		return fmt.Errorf("engine: negative points per stone %d", c.PointsPerStone)
	}
	if c.Tween < 0 || c.FallInterval < 0 {
		return fmt.Errorf("engine: negative timing")
	}
	for _, color := range c.Palette {
		if color < 0 {
			return fmt.Errorf("engine: palette colour %d is reserved", color)
		}
	}
	for _, src := range c.Sources {
		if !g.HasCell(src) {
			return fmt.Errorf("engine: source %v: %w", src, board.ErrNotFound)
		}
	}
	return nil
}
