package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player plays sound cues. Implementations must not block.
type Player interface {
	Play(c Cue)
	Close() error
}

// Nop is a Player that discards every cue.
type Nop struct{}

func (Nop) Play(Cue)     {}
func (Nop) Close() error { return nil }

// Speaker plays cues through the system audio device.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	gain   float64
	closed bool
}

// NewSpeaker initialises the audio device. The speaker package is global, so
// only one Speaker should exist per process.
func NewSpeaker(gain float64) (*Speaker, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio: cannot initialise speaker: %w", err)
	}

	s := &Speaker{
		mixer: &beep.Mixer{},
		gain:  gain,
	}
	speaker.Play(s.mixer)
	return s, nil
}

// Play queues a cue on the mixer. Unknown cues are ignored.
func (s *Speaker) Play(c Cue) {
	st := c.Streamer(SampleRate, s.gain)
	if st == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (s *Speaker) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	speaker.Clear()
	speaker.Close()
	return nil
}

// Recorder is a Player that remembers the cues it was asked to play.
type Recorder struct {
	mu   sync.Mutex
	cues []Cue
}

// Play records the cue.
func (r *Recorder) Play(c Cue) {
	r.mu.Lock()
	r.cues = append(r.cues, c)
	r.mu.Unlock()
}

// Close implements Player.
func (r *Recorder) Close() error { return nil }

// Cues returns a copy of the recorded cues in order.
func (r *Recorder) Cues() []Cue {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Cue, len(r.cues))
	copy(out, r.cues)
	return out
}
