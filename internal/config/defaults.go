package config

import (
	_ "embed"
)

//go:embed defaults/hexmatch.yaml
var defaultHexMatchYAML []byte

// DefaultHexMatchConfig returns the default configuration.
func DefaultHexMatchConfig() HexMatchConfig {
	return HexMatchConfig{
		Engine: HexMatchEngine{
			MaxDepth:       10,
			PointsPerStone: 100,
		},
		Timing: HexMatchTiming{
			TweenMS:        200,
			FallIntervalMS: 100,
			ScoreTweenMS:   500,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 20000,
			},
			Scaling: ScalingConfig{
				ExtraColors: 1,
			},
		},
	}
}
