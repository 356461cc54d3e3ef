package flappyball

// Events reports what happened during a single tick.
type Events struct {
	Started bool // A session began
	Jumped  bool // At least one jump impulse was applied
	Bounced bool // The ball hit the ground
	Spawned bool // A new obstacle entered at the right edge
	Scored  int  // Obstacles passed this tick
	Crashed bool // The session ended on an obstacle
	Quit    bool // A quit was requested; the run should stop
}

// Snapshot is a read-only copy of the game state after a tick.
// It shares no memory with the game and is safe to hand to a renderer.
type Snapshot struct {
	Phase     Phase
	Time      int64
	Score     int
	HighScore int
	Session   int

	BallX      float64
	BallY      float64
	BallVelY   float64
	BallRadius float64

	Obstacles    []Obstacle
	GroundOffset float64

	Stats  Stats
	Events Events

	// Geometry needed to draw the scene
	Width         float64
	Height        float64
	GroundTop     float64
	ObstacleWidth float64
}

// snapshot captures the current state together with this tick's events.
func (g *Game) snapshot(ev Events) Snapshot {
	return Snapshot{
		Phase:         g.phase,
		Time:          g.now,
		Score:         g.score,
		HighScore:     g.highScore,
		Session:       g.sessions,
		BallX:         g.ball.X,
		BallY:         g.ball.Y,
		BallVelY:      g.ball.VelY,
		BallRadius:    g.ball.Radius,
		Obstacles:     g.obstacles.Obstacles(),
		GroundOffset:  g.groundOffset,
		Stats:         g.stats,
		Events:        ev,
		Width:         g.cfg.Screen.Width,
		Height:        g.cfg.Screen.Height,
		GroundTop:     g.cfg.GroundTop(),
		ObstacleWidth: g.cfg.Obstacles.Width,
	}
}

// Ended reports whether this tick moved the game from Active to Ended.
func (s Snapshot) Ended() bool {
	return s.Events.Crashed
}

// NextObstacle returns the first obstacle the ball has not yet passed.
func (s Snapshot) NextObstacle() (Obstacle, bool) {
	for _, o := range s.Obstacles {
		if !o.Scored {
			return o, true
		}
	}
	return Obstacle{}, false
}
