// Package config provides YAML-based tuning for CyberRunner and the
// difficulty escalator that ramps it up during a run.
package config

// RunnerConfig contains all gameplay tuning for CyberRunner.
type RunnerConfig struct {
	Physics    Physics          `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Hazards    HazardConfig     `yaml:"hazards"`
	Collision  CollisionConfig  `yaml:"collision"`
	Parallax   ParallaxConfig   `yaml:"parallax"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Score      ScoreConfig      `yaml:"score"`
	Sprites    SpriteSizes      `yaml:"sprites"`
}

// Physics defines vertical motion parameters, in pixels and seconds.
type Physics struct {
	Gravity     float64 `yaml:"gravity"`      // px/s^2
	JumpImpulse float64 `yaml:"jump_impulse"` // px/s subtracted from velocity on jump
}

// PlayerConfig defines the avatar's sheet layout and movement.
type PlayerConfig struct {
	Speed          float64 `yaml:"speed"`           // px per input tick
	SpeedIncrement float64 `yaml:"speed_increment"` // added per escalation while hazards tighten
	Scale          float64 `yaml:"scale"`
	Frames         int     `yaml:"frames"`    // frames per sheet row
	MaxFrame       int     `yaml:"max_frame"` // last frame index the animation cycles to
	FrameRate      float64 `yaml:"frame_rate"`
}

// HazardConfig defines drone spawning and animation.
type HazardConfig struct {
	Count     int     `yaml:"count"`
	Scale     float64 `yaml:"scale"`
	Frames    int     `yaml:"frames"`
	MaxFrame  int     `yaml:"max_frame"`
	FrameRate float64 `yaml:"frame_rate"`
	MinSpeed  int     `yaml:"min_speed"`  // px/s
	MaxSpeed  int     `yaml:"max_speed"`  // px/s
	MinOffset int     `yaml:"min_offset"` // per-slot spawn stagger, px
	MaxOffset int     `yaml:"max_offset"`
}

// CollisionConfig defines hit box shrinking.
type CollisionConfig struct {
	Pad float64 `yaml:"pad"`
}

// ParallaxConfig defines background layer scrolling, farthest layer first.
type ParallaxConfig struct {
	Scale  float64   `yaml:"scale"`
	Speeds []float64 `yaml:"speeds"` // px/s, one per layer
}

// DifficultyConfig defines the periodic escalation of a run.
type DifficultyConfig struct {
	Enabled              bool    `yaml:"enabled"`
	Period               float64 `yaml:"period"`        // seconds until the first escalation
	PeriodGrowth         float64 `yaml:"period_growth"` // each interval grows by this fraction
	HazardSpeedStep      float64 `yaml:"hazard_speed_step"`
	HazardDistanceStep   float64 `yaml:"hazard_distance_step"`
	HazardDistanceFloor  float64 `yaml:"hazard_distance_floor"`
	BackgroundSpeedStep  float64 `yaml:"background_speed_step"`
	ScoreMultiplier      int64   `yaml:"score_multiplier"`
	ResetPeriodOnRestart bool    `yaml:"reset_period_on_restart"`
}

// ScoreConfig defines score accumulation.
type ScoreConfig struct {
	Rate    int64   `yaml:"rate"`     // points per tick period
	Tick    float64 `yaml:"tick"`     // seconds between payouts
	MaxRate int64   `yaml:"max_rate"` // rate stops doubling here
}

// SpriteSize is the pixel size of a whole texture.
type SpriteSize struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpriteSizes lists texture sizes used when running without texture files.
type SpriteSizes struct {
	Walk        SpriteSize   `yaml:"walk"`
	Jump        SpriteSize   `yaml:"jump"`
	Death       SpriteSize   `yaml:"death"`
	Drone       SpriteSize   `yaml:"drone"`
	Backgrounds []SpriteSize `yaml:"backgrounds"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// PeriodForPreset returns the first escalation period for a preset.
// Unknown presets return 0, meaning "keep the configured period".
func PeriodForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 90
	case DifficultyNormal:
		return 60
	case DifficultyHard:
		return 40
	default:
		return 0
	}
}

// ParsePreset converts a CLI string to a preset. Empty or unknown strings
// return "" so the config file decides.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
