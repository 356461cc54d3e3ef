// Package config provides YAML-based game configuration loading and
// validation for flappyball.
package config

import (
	"errors"
	"fmt"
)

// FlappyBallConfig contains every tunable of the simulation. It is read once
// at start-up and never changes during a session.
type FlappyBallConfig struct {
	Screen    ScreenConfig   `yaml:"screen"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Ball      BallConfig     `yaml:"ball"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Idle      IdleConfig     `yaml:"idle"`
	TickRate  int            `yaml:"tick_rate"`
}

// ScreenConfig defines the logical play area in pixels.
type ScreenConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// PhysicsConfig defines per-tick ball physics. Down is positive y.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
	Restitution float64 `yaml:"restitution"`
}

// BallConfig defines the ball's fixed column and size.
type BallConfig struct {
	X      float64 `yaml:"x"`
	Radius float64 `yaml:"radius"`
}

// ObstacleConfig defines pipe geometry and spawn timing.
type ObstacleConfig struct {
	Width            float64 `yaml:"width"`
	Speed            float64 `yaml:"speed"`
	GapHeight        float64 `yaml:"gap_height"`
	MinCeilingMargin float64 `yaml:"min_ceiling_margin"`
	MinFloorMargin   float64 `yaml:"min_floor_margin"`
	SpawnIntervalMs  int64   `yaml:"spawn_interval_ms"`
}

// IdleConfig defines the floating animation shown outside gameplay.
type IdleConfig struct {
	Amplitude float64 `yaml:"amplitude"`
	PeriodMs  int64   `yaml:"period_ms"`
}

// GroundTop returns the y coordinate of the ground surface.
func (c FlappyBallConfig) GroundTop() float64 {
	return c.Screen.Height - c.Screen.GroundHeight
}

// GapTopRange returns the inclusive range gap tops are drawn from.
func (c FlappyBallConfig) GapTopRange() (lo, hi float64) {
	lo = c.Obstacles.MinCeilingMargin
	hi = c.Screen.Height - (c.Obstacles.MinFloorMargin + c.Obstacles.GapHeight)
	return lo, hi
}

// Validate reports every setting that would make the simulation meaningless.
func (c FlappyBallConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Screen.Width > 0, "screen.width must be positive, got %v", c.Screen.Width)
	check(c.Screen.Height > 0, "screen.height must be positive, got %v", c.Screen.Height)
	check(c.Screen.GroundHeight >= 0 && c.Screen.GroundHeight < c.Screen.Height,
		"screen.ground_height must be in [0, height), got %v", c.Screen.GroundHeight)

	check(c.Physics.Gravity > 0, "physics.gravity must be positive, got %v", c.Physics.Gravity)
	check(c.Physics.JumpImpulse < 0, "physics.jump_impulse must be negative (up), got %v", c.Physics.JumpImpulse)
	check(c.Physics.Restitution > 0 && c.Physics.Restitution < 1,
		"physics.restitution must be in (0, 1), got %v", c.Physics.Restitution)

	check(c.Ball.Radius > 0, "ball.radius must be positive, got %v", c.Ball.Radius)
	check(c.Ball.X >= 0 && c.Ball.X <= c.Screen.Width, "ball.x must lie on screen, got %v", c.Ball.X)
	check(2*c.Ball.Radius < c.GroundTop(), "ball.radius %v does not fit above the ground", c.Ball.Radius)

	check(c.Obstacles.Width > 0, "obstacles.width must be positive, got %v", c.Obstacles.Width)
	check(c.Obstacles.Speed > 0, "obstacles.speed must be positive, got %v", c.Obstacles.Speed)
	check(c.Obstacles.GapHeight > 0, "obstacles.gap_height must be positive, got %v", c.Obstacles.GapHeight)
	check(c.Obstacles.MinCeilingMargin >= 0, "obstacles.min_ceiling_margin must not be negative")
	check(c.Obstacles.MinFloorMargin >= 0, "obstacles.min_floor_margin must not be negative")
	if lo, hi := c.GapTopRange(); lo > hi {
		errs = append(errs, fmt.Errorf("obstacles: gap %v plus margins %v/%v does not fit a %v-pixel screen",
			c.Obstacles.GapHeight, c.Obstacles.MinCeilingMargin, c.Obstacles.MinFloorMargin, c.Screen.Height))
	}
	check(c.Obstacles.SpawnIntervalMs > 0, "obstacles.spawn_interval_ms must be positive, got %d", c.Obstacles.SpawnIntervalMs)

	check(c.Idle.Amplitude >= 0, "idle.amplitude must not be negative, got %v", c.Idle.Amplitude)
	check(c.Idle.PeriodMs > 0, "idle.period_ms must be positive, got %d", c.Idle.PeriodMs)
	check(c.TickRate > 0, "tick_rate must be positive, got %d", c.TickRate)

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid settings: %w", errors.Join(errs...))
	}
	return nil
}
