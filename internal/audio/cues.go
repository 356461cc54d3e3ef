package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// SampleRate is the output rate used for every cue.
const SampleRate = beep.SampleRate(44100)

// Cue identifies a sound effect.
type Cue int

const (
	CueStart Cue = iota
	CueJump
	CueScore
	CueBounce
	CueCrash
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueStart:
		return "start"
	case CueJump:
		return "jump"
	case CueScore:
		return "score"
	case CueBounce:
		return "bounce"
	case CueCrash:
		return "crash"
	default:
		return "unknown"
	}
}

// Cue timings
const (
	startDuration  = 120 * time.Millisecond
	jumpDuration   = 60 * time.Millisecond
	scoreNote1     = 60 * time.Millisecond
	scoreNote2     = 120 * time.Millisecond
	bounceDuration = 40 * time.Millisecond
	crashDuration  = 300 * time.Millisecond
)

// Duration returns how long the cue plays.
func (c Cue) Duration() time.Duration {
	switch c {
	case CueStart:
		return startDuration
	case CueJump:
		return jumpDuration
	case CueScore:
		return scoreNote1 + scoreNote2
	case CueBounce:
		return bounceDuration
	case CueCrash:
		return crashDuration
	default:
		return 0
	}
}

// Streamer builds a fresh streamer for the cue, scaled by gain.
// Returns nil for unknown cues.
func (c Cue) Streamer(rate beep.SampleRate, gain float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueStart:
		s = beep.Seq(sine(523.25, startDuration/2, rate), sine(783.99, startDuration/2, rate))
	case CueJump:
		s = newDecay(sine(660, jumpDuration, rate), jumpDuration, rate)
	case CueScore:
		// Two-note chime, B5 then E6
		s = beep.Seq(
			square(987.77, scoreNote1, rate),
			newDecay(square(1318.51, scoreNote2, rate), scoreNote2, rate),
		)
		gain *= 0.4
	case CueBounce:
		s = newDecay(sine(110, bounceDuration, rate), bounceDuration, rate)
	case CueCrash:
		s = beep.Mix(
			withVolume(newDecay(newNoise(crashDuration, rate, 1), crashDuration, rate), 0.6),
			withVolume(newDecay(square(80, crashDuration, rate), crashDuration, rate), 0.4),
		)
	default:
		return nil
	}
	return withVolume(s, gain)
}
