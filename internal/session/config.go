package session

import "math"

// Config tunes a Session.
type Config struct {
	Model LifeModel

	// MaxLives is the life count a new run starts with (LivesDiscrete).
	MaxLives int

	// DecayRate is the energy lost per second of play (EnergyContinuous).
	DecayRate float64

	// BumpDrain is the energy lost per unfavorable contact (EnergyContinuous).
	BumpDrain float64

	// GameOverDelay is how many seconds GameOver lasts before TapToPlay returns.
	GameOverDelay float64

	// FallThreshold is the height below which the player is out of bounds.
	FallThreshold float64
}

// DefaultLivesConfig returns the three-lives configuration.
func DefaultLivesConfig() Config {
	return Config{
		Model:         LivesDiscrete,
		MaxLives:      3,
		GameOverDelay: 5,
		FallThreshold: -2,
	}
}

// DefaultEnergyConfig returns the draining-energy configuration.
// A decay of 0.06/s matches 0.001 per frame at 60 FPS.
func DefaultEnergyConfig() Config {
	return Config{
		Model:         EnergyContinuous,
		MaxLives:      1,
		DecayRate:     0.06,
		BumpDrain:     0.02,
		GameOverDelay: 5,
		FallThreshold: -5,
	}
}

// Validate returns a copy with out-of-range values replaced by usable ones.
func (c Config) Validate() Config {
	if c.MaxLives < 1 {
		c.MaxLives = 1
	}
	c.DecayRate = nonNegative(c.DecayRate)
	c.BumpDrain = nonNegative(c.BumpDrain)
	c.GameOverDelay = nonNegative(c.GameOverDelay)
	if math.IsNaN(c.FallThreshold) {
		c.FallThreshold = 0
	}
	return c
}

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
