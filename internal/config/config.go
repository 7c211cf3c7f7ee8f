// Package config provides YAML-based game configuration loading and
// difficulty management for hexmatch.
package config

import "time"

// HexMatchConfig contains all configuration for the match game.
type HexMatchConfig struct {
	Engine     HexMatchEngine   `yaml:"engine"`
	Timing     HexMatchTiming   `yaml:"timing"`
	Gameplay   HexMatchGameplay `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// HexMatchEngine defines simulation parameters.
type HexMatchEngine struct {
	MaxDepth       int `yaml:"max_depth"`        // Steps per run before it is halted
	PointsPerStone int `yaml:"points_per_stone"` // Score per destroyed stone
}

// HexMatchTiming defines playback speeds in milliseconds.
type HexMatchTiming struct {
	TweenMS        int `yaml:"tween_ms"`
	FallIntervalMS int `yaml:"fall_interval_ms"`
	ScoreTweenMS   int `yaml:"score_tween_ms"`
}

// Tween returns the per-event playback time.
func (t HexMatchTiming) Tween() time.Duration {
	return time.Duration(t.TweenMS) * time.Millisecond
}

// FallInterval returns the offset between fall passes.
func (t HexMatchTiming) FallInterval() time.Duration {
	return time.Duration(t.FallIntervalMS) * time.Millisecond
}

// ScoreTween returns how long the HUD takes to count up to a new score.
func (t HexMatchTiming) ScoreTween() time.Duration {
	return time.Duration(t.ScoreTweenMS) * time.Millisecond
}

// HexMatchGameplay overrides level parameters. Zero values keep the level's.
type HexMatchGameplay struct {
	Moves         int      `yaml:"moves"`                    // Swap budget
	PaletteSize   int      `yaml:"palette_size"`             // Number of colours
	BlockerChance *float64 `yaml:"blocker_chance,omitempty"` // Chance of a blocker in the initial fill
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a game.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "moves", or "none"
	MaxAt int    `yaml:"max_at"` // Score or moves at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	ExtraColors int `yaml:"extra_colors"` // Colours added to the refill palette at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return DifficultyNormal, false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
