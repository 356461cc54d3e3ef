// Package audio synthesises the short sound cues played during a run.
// Cues are generated on the fly with beep; no sample files are shipped.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// noise is fixed-length white noise. beep has no noise generator.
type noise struct {
	remaining int
	rng       *rand.Rand
}

// newNoise creates a noise burst of length d. The seed keeps cues repeatable.
func newNoise(d time.Duration, rate beep.SampleRate, seed int64) beep.Streamer {
	return &noise{remaining: rate.N(d), rng: rand.New(rand.NewSource(seed))}
}

func (ns *noise) Stream(samples [][2]float64) (n int, ok bool) {
	if ns.remaining <= 0 {
		return 0, false
	}
	if len(samples) > ns.remaining {
		samples = samples[:ns.remaining]
	}
	for i := range samples {
		v := ns.rng.Float64()*2 - 1
		samples[i][0] = v
		samples[i][1] = v
	}
	ns.remaining -= len(samples)
	return len(samples), true
}

func (ns *noise) Err() error { return nil }

// decay fades a stream linearly to silence over its length.
type decay struct {
	s      beep.Streamer
	pos    int
	length int
}

func newDecay(s beep.Streamer, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decay{s: s, length: rate.N(d)}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.s.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 0.0
		if d.pos < d.length {
			gain = 1 - float64(d.pos)/float64(d.length)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		d.pos++
	}
	return n, ok
}

func (d *decay) Err() error { return d.s.Err() }

// withVolume scales a stream by a linear gain. Zero or less is silent.
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// sine returns a pure sine of length d.
func sine(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return timed(generators.SineTone, freq, d, rate)
}

// square returns a square wave of length d.
func square(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return timed(generators.SquareTone, freq, d, rate)
}

// timed cuts an endless beep generator down to d.
func timed(gen func(beep.SampleRate, float64) (beep.Streamer, error), freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	s, err := gen(rate, freq)
	if err != nil {
		// Frequency above Nyquist; fall back to silence of the same length
		return beep.Silence(rate.N(d))
	}
	return beep.Take(rate.N(d), s)
}
