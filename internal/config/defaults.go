package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default CyberRunner configuration.
func DefaultRunnerConfig() RunnerConfig {
	bg := SpriteSize{Width: 400, Height: 300}
	return RunnerConfig{
		Physics: Physics{
			Gravity:     1500,
			JumpImpulse: 1200,
		},
		Player: PlayerConfig{
			Speed:          6.0,
			SpeedIncrement: 0.2,
			Scale:          4,
			Frames:         6,
			MaxFrame:       4,
			FrameRate:      12,
		},
		Hazards: HazardConfig{
			Count:     3,
			Scale:     3,
			Frames:    8,
			MaxFrame:  6,
			FrameRate: 12,
			MinSpeed:  275,
			MaxSpeed:  400,
			MinOffset: 300,
			MaxOffset: 800,
		},
		Collision: CollisionConfig{
			Pad: 20,
		},
		Parallax: ParallaxConfig{
			Scale:  2,
			Speeds: []float64{20, 40, 60, 80, 100},
		},
		Difficulty: DifficultyConfig{
			Enabled:              true,
			Period:               60,
			PeriodGrowth:         0.25,
			HazardSpeedStep:      0.1,
			HazardDistanceStep:   0.1,
			HazardDistanceFloor:  0.5,
			BackgroundSpeedStep:  2.5,
			ScoreMultiplier:      2,
			ResetPeriodOnRestart: true,
		},
		Score: ScoreConfig{
			Rate:    100,
			Tick:    1.0,
			MaxRate: 1_000_000_000_000_000,
		},
		Sprites: SpriteSizes{
			Walk:        SpriteSize{Width: 192, Height: 28},
			Jump:        SpriteSize{Width: 192, Height: 28},
			Death:       SpriteSize{Width: 192, Height: 28},
			Drone:       SpriteSize{Width: 256, Height: 32},
			Backgrounds: []SpriteSize{bg, bg, bg, bg, bg},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
