package hexmatch

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-hexmatch/internal/config"
	"github.com/vovakirdan/tui-hexmatch/internal/engine"
	"github.com/vovakirdan/tui-hexmatch/internal/level"
)

// Palettes returns the refill palette a game on lvl starts with and the
// largest palette difficulty progression may grow it to.
func Palettes(lvl level.Level, cfg config.HexMatchConfig) (base, full []int) {
	base = lvl.Palette()
	if n := cfg.Gameplay.PaletteSize; n > 0 && n < len(base) {
		base = base[:n]
	}

	full = slices.Clone(base)
	extra := cfg.Difficulty.Scaling.ExtraColors
	for _, c := range level.DefaultPalette(len(level.ColorNames)) {
		if extra <= 0 {
			break
		}
		if !slices.Contains(full, c) {
			full = append(full, c)
			extra--
		}
	}
	return base, full
}

// MoveBudget returns the number of swaps allowed, 0 for unlimited.
// A positive gameplay.moves overrides the level.
func MoveBudget(lvl level.Level, cfg config.HexMatchConfig) int {
	if cfg.Gameplay.Moves > 0 {
		return cfg.Gameplay.Moves
	}
	return lvl.Moves
}

// BlockerChance returns the probability of a blocker in the initial fill.
func BlockerChance(lvl level.Level, cfg config.HexMatchConfig) float64 {
	if bc := cfg.Gameplay.BlockerChance; bc != nil {
		return *bc
	}
	return lvl.BlockerChance
}

// NewEngine builds the level grid and an engine configured from cfg.
// The engine is not populated.
func NewEngine(lvl level.Level, cfg config.HexMatchConfig, seed int64) (*engine.Engine, error) {
	grid, geom, sources, err := lvl.Build()
	if err != nil {
		return nil, err
	}
	base, _ := Palettes(lvl, cfg)

	eng, err := engine.New(grid, engine.Config{
		MaxDepth:       cfg.Engine.MaxDepth,
		PointsPerStone: cfg.Engine.PointsPerStone,
		Palette:        base,
		Geometry:       geom,
		Sources:        sources,
		Tween:          cfg.Timing.Tween(),
		FallInterval:   cfg.Timing.FallInterval(),
		Seed:           seed,
	})
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", lvl.ID, err)
	}
	return eng, nil
}

// LoadConfig loads the game configuration from path (or the default search
// locations) and applies preset when it is set.
func LoadConfig(path string, preset config.DifficultyPreset) (config.HexMatchConfig, error) {
	cfg, err := config.LoadHexMatch(path)
	if err != nil {
		return config.DefaultHexMatchConfig(), err
	}
	if preset != "" {
		config.ApplyHexMatchPreset(&cfg, preset)
	}
	return cfg, nil
}
