package config

import (
	_ "embed"
)

//go:embed defaults/marble.yaml
var defaultMarbleYAML []byte

//go:embed defaults/fighter.yaml
var defaultFighterYAML []byte

// DefaultMarbleConfig returns the hardcoded marble maze configuration.
func DefaultMarbleConfig() MarbleConfig {
	return MarbleConfig{
		Session: SessionConfig{
			MaxLives:      1,
			DecayRate:     0.06, // 0.001 per frame at 60 FPS
			BumpDrain:     0.02,
			GameOverDelay: 5,
			FallThreshold: -5,
		},
		Physics: MarblePhysics{
			TiltForce:    24,
			TiltHold:     0.15,
			Friction:     1.5,
			MaxSpeed:     14,
			Bounce:       0.5,
			BumpCooldown: 0.3,
			Gravity:      9.8,
		},
		Pearls: MarblePearls{
			RespawnDelay: 30,
		},
		Camera: MarbleCamera{
			FollowLerp: 0.1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.4,
				DrainMultiplier: 0.5,
			},
		},
	}
}

// DefaultFighterConfig returns the hardcoded geometry fighter configuration.
func DefaultFighterConfig() FighterConfig {
	return FighterConfig{
		Session: SessionConfig{
			MaxLives:      3,
			GameOverDelay: 5,
			FallThreshold: -2,
		},
		Spawn: FighterSpawn{
			Interval:  1.2,
			BadRatio:  0.3,
			MaxShapes: 12,
		},
		Physics: FighterPhysics{
			Gravity:     14,
			LaunchMin:   14,
			LaunchMax:   20,
			Drift:       6,
			HitRadius:   1.5,
			BurstLength: 0.4,
		},
		Crosshair: FighterCrosshair{
			Step: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 60,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.3,
				IntervalReduction: 0.6,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "marble":
		return defaultMarbleYAML
	case "fighter":
		return defaultFighterYAML
	default:
		return nil
	}
}
