// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade.
package config

import "github.com/vovakirdan/tilt-arcade/internal/session"

// SessionConfig holds the session tuning shared by both games.
type SessionConfig struct {
	MaxLives      int     `yaml:"max_lives"`
	DecayRate     float64 `yaml:"decay_rate"`      // energy per second
	BumpDrain     float64 `yaml:"bump_drain"`      // energy per bump
	GameOverDelay float64 `yaml:"game_over_delay"` // seconds
	FallThreshold float64 `yaml:"fall_threshold"`
}

// Session converts the YAML block into a session configuration for model.
func (c SessionConfig) Session(model session.LifeModel) session.Config {
	return session.Config{
		Model:         model,
		MaxLives:      c.MaxLives,
		DecayRate:     c.DecayRate,
		BumpDrain:     c.BumpDrain,
		GameOverDelay: c.GameOverDelay,
		FallThreshold: c.FallThreshold,
	}.Validate()
}

// MarbleConfig contains all configuration for the marble maze.
type MarbleConfig struct {
	Session    SessionConfig    `yaml:"session"`
	Physics    MarblePhysics    `yaml:"physics"`
	Pearls     MarblePearls     `yaml:"pearls"`
	Camera     MarbleCamera     `yaml:"camera"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// MarblePhysics defines ball movement in cells and seconds.
type MarblePhysics struct {
	TiltForce    float64 `yaml:"tilt_force"`    // acceleration while a tilt key is held
	TiltHold     float64 `yaml:"tilt_hold"`     // seconds a key press keeps tilting
	Friction     float64 `yaml:"friction"`      // fraction of velocity lost per second
	MaxSpeed     float64 `yaml:"max_speed"`     // cells per second
	Bounce       float64 `yaml:"bounce"`        // velocity kept after hitting a wall
	BumpCooldown float64 `yaml:"bump_cooldown"` // seconds between bump events
	Gravity      float64 `yaml:"gravity"`       // fall acceleration once unsupported
}

// MarblePearls defines pickup behaviour.
type MarblePearls struct {
	RespawnDelay float64 `yaml:"respawn_delay"` // seconds a collected pearl stays hidden
}

// MarbleCamera defines how the view follows the ball.
type MarbleCamera struct {
	FollowLerp float64 `yaml:"follow_lerp"` // fraction of the distance closed per frame
}

// FighterConfig contains all configuration for geometry fighter.
type FighterConfig struct {
	Session    SessionConfig    `yaml:"session"`
	Spawn      FighterSpawn     `yaml:"spawn"`
	Physics    FighterPhysics   `yaml:"physics"`
	Crosshair  FighterCrosshair `yaml:"crosshair"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FighterSpawn defines how shapes enter the screen.
type FighterSpawn struct {
	Interval  float64 `yaml:"interval"`   // seconds between spawns
	BadRatio  float64 `yaml:"bad_ratio"`  // chance that a shape is bad
	MaxShapes int     `yaml:"max_shapes"` // cap on live shapes
}

// FighterPhysics defines shape flight in cells and seconds.
type FighterPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	LaunchMin   float64 `yaml:"launch_min"` // upward speed range
	LaunchMax   float64 `yaml:"launch_max"`
	Drift       float64 `yaml:"drift"` // max sideways speed
	HitRadius   float64 `yaml:"hit_radius"`
	BurstLength float64 `yaml:"burst_length"` // seconds an explosion is drawn
}

// FighterCrosshair defines aiming.
type FighterCrosshair struct {
	Step int `yaml:"step"` // cells moved per key press
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a run.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "score", "time", or "none"
	MaxAt float64 `yaml:"max_at"` // score or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // added to speed at max difficulty
	DrainMultiplier   float64 `yaml:"drain_multiplier"`   // added to energy decay at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // fraction cut from spawn interval at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset; unknown values give "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

func applyDifficulty(d *DifficultyConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		d.Enabled = false
		return
	}
	d.Enabled = true
	d.InitialLevel = InitialLevelForPreset(preset)
}

// ApplyMarblePreset adjusts energy drain for a difficulty preset.
func ApplyMarblePreset(cfg *MarbleConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	applyDifficulty(&cfg.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Session.DecayRate = 0.04
		cfg.Session.BumpDrain = 0.01
	case DifficultyHard:
		cfg.Session.DecayRate = 0.09
		cfg.Session.BumpDrain = 0.04
	}
}

// ApplyFighterPreset adjusts lives and spawn pace for a difficulty preset.
func ApplyFighterPreset(cfg *FighterConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	applyDifficulty(&cfg.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Session.MaxLives = 5
		cfg.Spawn.BadRatio = 0.2
	case DifficultyHard:
		cfg.Session.MaxLives = 2
		cfg.Spawn.Interval *= 0.7
	}
}
