package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// DeltaTime returns the fixed simulation step in seconds.
func (c RuntimeConfig) DeltaTime() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState is the platform's view of a running game.
type GameState struct {
	Phase     string  // Session phase name ("tap_to_play", "playing", "game_over")
	Score     int     // Current score
	GameOver  bool    // Whether the current run has just ended
	Paused    bool    // Whether the game is paused
	RunTime   float64 // Seconds spent in the current or last run
	EndReason string  // Why the last run ended, empty while playing
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
