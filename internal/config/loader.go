package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRunner loads CyberRunner configuration.
// Search order: customPath -> ~/.cyberrunner/configs/runner.yaml -> ./configs/runner.yaml -> embedded default.
// Files are applied over the defaults, so a file may override only a few keys.
func LoadRunner(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseRunner(data)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseRunner(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "runner.yaml")); err == nil {
		if cfg, err := parseRunner(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseRunner(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseRunner decodes YAML over the defaults and validates the result.
func parseRunner(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RunnerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cyberrunner", "configs", filename)
}

// Validate rejects values the simulation cannot run with: zero divisors,
// inverted ranges, and signs that would stop drones or collapse the
// escalation period.
func (c RunnerConfig) Validate() error {
	var errs []error
	if c.Physics.Gravity <= 0 {
		errs = append(errs, errors.New("physics.gravity must be positive"))
	}
	if c.Physics.JumpImpulse < 0 {
		errs = append(errs, errors.New("physics.jump_impulse must not be negative"))
	}
	if c.Player.Scale <= 0 || c.Hazards.Scale <= 0 || c.Parallax.Scale <= 0 {
		errs = append(errs, errors.New("scales must be positive"))
	}
	if c.Player.Frames <= 0 || c.Hazards.Frames <= 0 {
		errs = append(errs, errors.New("frames must be positive"))
	}
	if c.Player.MaxFrame < 0 || c.Hazards.MaxFrame < 0 {
		errs = append(errs, errors.New("max_frame must not be negative"))
	}
	if c.Player.FrameRate <= 0 || c.Hazards.FrameRate <= 0 {
		errs = append(errs, errors.New("frame_rate must be positive"))
	}
	if c.Hazards.Count <= 0 {
		errs = append(errs, errors.New("hazards.count must be positive"))
	}
	if c.Hazards.MinSpeed <= 0 {
		errs = append(errs, errors.New("hazards.min_speed must be positive"))
	}
	if c.Hazards.MinOffset < 0 {
		errs = append(errs, errors.New("hazards.min_offset must not be negative"))
	}
	if c.Collision.Pad < 0 {
		errs = append(errs, errors.New("collision.pad must not be negative"))
	}
	if c.Hazards.MinSpeed > c.Hazards.MaxSpeed {
		errs = append(errs, fmt.Errorf("hazards speed range [%d, %d] is inverted", c.Hazards.MinSpeed, c.Hazards.MaxSpeed))
	}
	if c.Hazards.MinOffset > c.Hazards.MaxOffset {
		errs = append(errs, fmt.Errorf("hazards offset range [%d, %d] is inverted", c.Hazards.MinOffset, c.Hazards.MaxOffset))
	}
	if len(c.Parallax.Speeds) == 0 {
		errs = append(errs, errors.New("parallax.speeds must list at least one layer"))
	}
	if c.Difficulty.Period <= 0 {
		errs = append(errs, errors.New("difficulty.period must be positive"))
	}
	if c.Difficulty.PeriodGrowth < 0 {
		errs = append(errs, errors.New("difficulty.period_growth must not be negative"))
	}
	d := c.Difficulty
	if d.HazardSpeedStep < 0 || d.HazardDistanceStep < 0 || d.BackgroundSpeedStep < 0 {
		errs = append(errs, errors.New("difficulty steps must not be negative"))
	}
	if d.HazardDistanceFloor <= 0 || d.HazardDistanceFloor > 1 {
		errs = append(errs, errors.New("difficulty.hazard_distance_floor must be within (0, 1]"))
	}
	if c.Difficulty.ScoreMultiplier < 1 {
		errs = append(errs, errors.New("difficulty.score_multiplier must be at least 1"))
	}
	if c.Score.Tick <= 0 {
		errs = append(errs, errors.New("score.tick must be positive"))
	}
	if c.Score.Rate < 0 || c.Score.MaxRate < c.Score.Rate {
		errs = append(errs, errors.New("score.rate must be within [0, max_rate]"))
	}
	return errors.Join(errs...)
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		if p := PeriodForPreset(preset); p > 0 {
			cfg.Difficulty.Period = p
		}
	}
}
