// Package flappyball implements the Flappy Ball simulation.
// The player taps to push a bouncing ball upward through gaps in a stream of
// scrolling obstacles. The package is purely synchronous: it performs no I/O
// and makes no wall-clock calls, so frontends drive it with their own clock.
package flappyball

import (
	"math"

	"github.com/vovakirdan/flappyball/internal/config"
	"github.com/vovakirdan/flappyball/internal/core"
)

// Phase is the lifecycle state of a game.
type Phase int

const (
	PhaseIdle   Phase = iota // Start screen, ball floating
	PhaseActive              // Session in progress
	PhaseEnded               // Game over screen, ball floating
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseActive:
		return "Active"
	case PhaseEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// Stats counts what happened during the current (or last) session.
type Stats struct {
	Ticks   int // Active ticks simulated
	Jumps   int // Activations applied as jumps
	Bounces int // Ground contacts
}

// Game is the top-level state machine. It owns the ball and the obstacle set,
// interprets input against the current phase and exposes snapshots.
type Game struct {
	cfg       config.FlappyBallConfig
	ball      Ball
	obstacles *ObstacleSet

	phase     Phase
	score     int
	highScore int
	sessions  int
	stats     Stats

	now          int64   // Last accepted timestamp in milliseconds
	groundOffset float64 // Cosmetic ground scroll, in (-width, 0]
}

// New creates a game in the Idle phase. The seed drives obstacle placement;
// two games with the same seed and input produce identical runs.
func New(cfg config.FlappyBallConfig, seed int64) *Game {
	g := &Game{
		cfg:       cfg,
		obstacles: NewObstacleSet(seed, cfg),
		phase:     PhaseIdle,
		ball: Ball{
			X:      cfg.Ball.X,
			Radius: cfg.Ball.Radius,
		},
	}
	g.ball.Y = g.centerY()
	return g
}

// Tick advances the game by one step at timestamp now (milliseconds).
// Actions are applied in order. A Quit action stops processing and no
// simulation happens on that tick; the caller is expected to stop driving the
// game. Timestamps earlier than the previous one are clamped.
func (g *Game) Tick(now int64, in core.InputFrame) Snapshot {
	if now > g.now {
		g.now = now
	}

	var ev Events
	for _, a := range in.Actions() {
		switch a {
		case core.ActionQuit:
			ev.Quit = true
			return g.snapshot(ev)
		case core.ActionActivate:
			if g.phase == PhaseActive {
				g.jump()
				ev.Jumped = true
			} else {
				g.start()
				ev.Started = true
			}
		}
	}

	if g.phase != PhaseActive {
		g.float()
		return g.snapshot(ev)
	}

	g.step(&ev)
	return g.snapshot(ev)
}

// start resets the session state and enters the Active phase.
func (g *Game) start() {
	g.ball.Y = g.centerY()
	g.ball.VelY = 0
	g.score = 0
	g.stats = Stats{}
	g.obstacles.Reset(g.now)
	g.sessions++
	g.phase = PhaseActive
}

// jump applies the upward impulse, replacing any current velocity.
func (g *Game) jump() {
	g.ball.VelY = g.cfg.Physics.JumpImpulse
	g.stats.Jumps++
}

// end enters the Ended phase and records the high score.
func (g *Game) end() {
	g.phase = PhaseEnded
	g.highScore = max(g.highScore, g.score)
}

// float positions the ball on the idle oscillation. The position is derived
// from absolute time, never integrated.
func (g *Game) float() {
	period := g.cfg.Idle.PeriodMs
	phase := float64(g.now%period) * 2 * math.Pi / float64(period)
	g.ball.Y = g.centerY() + g.cfg.Idle.Amplitude*math.Sin(phase)
}

// step runs one Active tick: physics, scrolling, obstacles, then spawning.
// A collision ends the session after this tick's score has been counted.
func (g *Game) step(ev *Events) {
	if g.ball.Step(g.cfg.Physics.Gravity, g.cfg.Physics.Restitution, g.cfg.GroundTop()) {
		g.stats.Bounces++
		ev.Bounced = true
	}

	g.groundOffset = math.Mod(g.groundOffset-g.cfg.Obstacles.Speed, g.cfg.Screen.Width)

	g.obstacles.Advance()
	hit, passed := g.obstacles.Evaluate(g.ball.Rect())
	g.score += passed
	ev.Scored = passed

	ev.Spawned = g.obstacles.MaybeSpawn(g.now)
	g.stats.Ticks++

	if hit {
		g.end()
		ev.Crashed = true
	}
}

// centerY returns the ball's resting height, rounded down to a whole pixel.
func (g *Game) centerY() float64 {
	return math.Floor(g.cfg.Screen.Height / 2)
}

// Snapshot returns the current state without advancing the game.
func (g *Game) Snapshot() Snapshot {
	return g.snapshot(Events{})
}
