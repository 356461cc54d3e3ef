// Package platform holds what every frontend shares: the Driver that feeds
// the game a clock and input, plays sound cues, records finished sessions and
// logs what happens.
package platform

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappyball/internal/audio"
	"github.com/vovakirdan/flappyball/internal/config"
	"github.com/vovakirdan/flappyball/internal/core"
	"github.com/vovakirdan/flappyball/internal/games/flappyball"
	"github.com/vovakirdan/flappyball/internal/storage"
)

// Options configures a Driver. Zero values are valid: no journal, no sound,
// no logging, time-based seed.
type Options struct {
	Config config.FlappyBallConfig
	Seed   int64
	Store  *storage.Store
	Player audio.Player
	Logger *log.Logger
}

// Driver runs one game for a frontend. It is not safe for concurrent use;
// frontends call it from their single loop goroutine.
type Driver struct {
	game   *flappyball.Game
	clock  core.Clock
	store  *storage.Store
	player audio.Player
	logger *log.Logger

	frame        core.InputFrame // Actions queued since the last step
	last         flappyball.Snapshot
	sessionStart int64
	seed         int64
	quit         bool
}

// NewDriver creates a driver whose clock epoch is start.
func NewDriver(opts Options, start time.Time) *Driver {
	// Use time-based seed if not specified
	if opts.Seed == 0 {
		opts.Seed = start.UnixNano()
	}
	if opts.Player == nil {
		opts.Player = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	d := &Driver{
		game:   flappyball.New(opts.Config, opts.Seed),
		clock:  core.NewClock(start),
		store:  opts.Store,
		player: opts.Player,
		logger: opts.Logger,
		frame:  core.NewInputFrame(),
		seed:   opts.Seed,
	}
	d.last = d.game.Snapshot()

	d.logger.Debug("game created", "seed", d.seed, "tick_rate", opts.Config.TickRate)
	return d
}

// Push queues an action for the next step.
func (d *Driver) Push(a core.Action) {
	d.frame.Push(a)
}

// Step advances the game to wall-clock instant t using the queued actions.
func (d *Driver) Step(t time.Time) flappyball.Snapshot {
	return d.StepAt(d.clock.Millis(t))
}

// StepAt advances the game to timestamp now (milliseconds since the epoch).
// Headless runs use it to drive the game on synthetic time.
func (d *Driver) StepAt(now int64) flappyball.Snapshot {
	if d.frame.Len() > 0 {
		d.logger.Debug("input", "now", now, "actions", d.frame.Len(), "quit", d.frame.Has(core.ActionQuit))
	}
	s := d.game.Tick(now, d.frame)
	d.frame.Clear()
	d.handle(s)
	d.last = s
	return s
}

// handle reacts to the events of one tick.
func (d *Driver) handle(s flappyball.Snapshot) {
	ev := s.Events

	if ev.Quit {
		d.quit = true
		d.logger.Debug("quit requested", "phase", s.Phase)
		return
	}

	if ev.Started {
		d.sessionStart = s.Time
		d.player.Play(audio.CueStart)
		d.logger.Debug("session started", "session", s.Session)
	}
	if ev.Jumped {
		d.player.Play(audio.CueJump)
	}
	if ev.Bounced {
		d.player.Play(audio.CueBounce)
	}
	if ev.Scored > 0 {
		d.player.Play(audio.CueScore)
		d.logger.Debug("obstacle passed", "score", s.Score)
	}
	if ev.Crashed {
		d.player.Play(audio.CueCrash)
		d.record(s)
	}
}

// record stores the finished session in the journal. Failures are logged and
// the game carries on.
func (d *Driver) record(s flappyball.Snapshot) {
	duration := s.Time - d.sessionStart

	d.logger.Info("session ended",
		"session", s.Session,
		"score", s.Score,
		"high_score", s.HighScore,
		"ticks", s.Stats.Ticks,
		"duration", time.Duration(duration)*time.Millisecond,
	)

	if d.store == nil {
		return
	}

	_, err := d.store.SaveRun(storage.RunRecord{
		Session:    s.Session,
		Score:      s.Score,
		Ticks:      s.Stats.Ticks,
		Jumps:      s.Stats.Jumps,
		Bounces:    s.Stats.Bounces,
		DurationMs: duration,
		EndedAt:    d.clock.Start().Add(time.Duration(s.Time) * time.Millisecond),
	})
	if err != nil {
		d.logger.Warn("could not record run", "session", s.Session, "error", err)
	}
}

// Snapshot returns the state after the most recent step.
func (d *Driver) Snapshot() flappyball.Snapshot {
	return d.last
}

// Quit reports whether a quit action has been processed.
func (d *Driver) Quit() bool {
	return d.quit
}

// Seed returns the seed the game was created with.
func (d *Driver) Seed() int64 {
	return d.seed
}
