package flappyball

// Pilot decides whether to press activate before the next tick.
type Pilot interface {
	Decide(s Snapshot) bool
}

// Autopilot steers the ball through the gap of the next obstacle.
// It flaps whenever the ball is falling below a target line just above the
// gap's lower edge. Outside a session it always presses to start one.
type Autopilot struct {
	Margin float64 // Distance kept between the ball and the gap's lower edge
}

// NewAutopilot creates an autopilot with a margin suited to the default
// physics.
func NewAutopilot() *Autopilot {
	return &Autopilot{Margin: 30}
}

// Decide implements Pilot.
func (a *Autopilot) Decide(s Snapshot) bool {
	if s.Phase != PhaseActive {
		return true
	}

	target := s.Height / 2
	if o, ok := s.NextObstacle(); ok {
		target = o.GapBottom - s.BallRadius - a.Margin
	}
	return s.BallY > target && s.BallVelY >= 0
}

// Metronome flaps on a fixed tick interval while a session is active and
// starts a new session whenever none is running.
type Metronome struct {
	Every int
	ticks int
}

// Decide implements Pilot.
func (m *Metronome) Decide(s Snapshot) bool {
	if s.Phase != PhaseActive {
		m.ticks = 0
		return true
	}
	m.ticks++
	return m.Every > 0 && m.ticks%m.Every == 0
}
