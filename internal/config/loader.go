package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadHexMatch loads the game configuration.
// Search order: customPath -> ~/.hexmatch/configs/hexmatch.yaml -> ./configs/hexmatch.yaml -> embedded default
func LoadHexMatch(customPath string) (HexMatchConfig, error) {
	cfg := DefaultHexMatchConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("hexmatch.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath, cfg); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", "hexmatch.yaml"), cfg); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultHexMatchYAML, &cfg); err != nil {
		return DefaultHexMatchConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file over base. Unreadable or invalid
// files are ignored.
func tryLoad(path string, base HexMatchConfig) (HexMatchConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, false
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, false
	}
	if cfg.Validate() != nil {
		return base, false
	}
	return cfg, true
}

// Validate checks value ranges.
func (c HexMatchConfig) Validate() error {
	if c.Engine.MaxDepth < 1 {
		return fmt.Errorf("engine.max_depth must be at least 1, got %d", c.Engine.MaxDepth)
	}
	if c.Engine.PointsPerStone < 1 {
		return fmt.Errorf("engine.points_per_stone must be at least 1, got %d", c.Engine.PointsPerStone)
	}
	if c.Timing.TweenMS < 0 || c.Timing.FallIntervalMS < 0 || c.Timing.ScoreTweenMS < 0 {
		return fmt.Errorf("timing values must not be negative")
	}
	if c.Gameplay.Moves < 0 || c.Gameplay.PaletteSize < 0 {
		return fmt.Errorf("gameplay values must not be negative")
	}
	if bc := c.Gameplay.BlockerChance; bc != nil && (*bc < 0 || *bc >= 1) {
		return fmt.Errorf("gameplay.blocker_chance must be in [0, 1), got %v", *bc)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hexmatch", "configs", filename)
}

// ApplyHexMatchPreset modifies the config based on a difficulty preset.
func ApplyHexMatchPreset(cfg *HexMatchConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Moves = 40
		cfg.Gameplay.PaletteSize = 4
	case DifficultyHard:
		chance := 0.15
		cfg.Gameplay.Moves = 20
		cfg.Gameplay.BlockerChance = &chance
	}
}
