package config

import (
	_ "embed"
)

//go:embed defaults/flappyball.yaml
var defaultFlappyBallYAML []byte

// DefaultFlappyBallConfig returns the built-in configuration.
func DefaultFlappyBallConfig() FlappyBallConfig {
	return FlappyBallConfig{
		Screen: ScreenConfig{
			Width:        400,
			Height:       600,
			GroundHeight: 15,
		},
		Physics: PhysicsConfig{
			Gravity:     0.75,
			JumpImpulse: -10,
			Restitution: 0.85,
		},
		Ball: BallConfig{
			X:      100, // a quarter of the screen width
			Radius: 20,
		},
		Obstacles: ObstacleConfig{
			Width:            80,
			Speed:            3,
			GapHeight:        250,
			MinCeilingMargin: 50,
			MinFloorMargin:   0,
			SpawnIntervalMs:  1500,
		},
		Idle: IdleConfig{
			Amplitude: 10,
			PeriodMs:  800,
		},
		TickRate: 60,
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultFlappyBallYAML
}
