package config

import "math"

// DifficultyManager calculates dynamic game parameters based on score and run time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty level (0.0 to 1.0) for a score and seconds played.
func (d *DifficultyManager) Level(score int, elapsed float64) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := d.cfg.Progression.MaxAt
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = elapsed / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed scales baseSpeed up to base * (1 + speed_multiplier).
func (d *DifficultyManager) Speed(baseSpeed float64, score int, elapsed float64) float64 {
	return baseSpeed * (1.0 + d.Level(score, elapsed)*d.cfg.Scaling.SpeedMultiplier)
}

// Drain scales an energy decay rate up to base * (1 + drain_multiplier).
func (d *DifficultyManager) Drain(baseRate float64, score int, elapsed float64) float64 {
	return baseRate * (1.0 + d.Level(score, elapsed)*d.cfg.Scaling.DrainMultiplier)
}

// Interval shortens a spawn interval by up to interval_reduction of itself,
// never below a fifth of the base.
func (d *DifficultyManager) Interval(base float64, score int, elapsed float64) float64 {
	cut := clampF(d.Level(score, elapsed)*d.cfg.Scaling.IntervalReduction, 0, 0.8)
	return base * (1.0 - cut)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	if math.IsNaN(val) {
		return min
	}
	return math.Max(min, math.Min(max, val))
}
