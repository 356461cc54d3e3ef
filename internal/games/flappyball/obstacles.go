package flappyball

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/flappyball/internal/config"
	"github.com/vovakirdan/flappyball/internal/core"
)

// Obstacle is a pipe pair with a vertical gap the ball must pass through.
type Obstacle struct {
	X         float64 // Left edge, decreasing over time
	GapTop    float64 // Y where the gap starts
	GapBottom float64 // Y where the gap ends
	Scored    bool    // Whether the ball has passed this obstacle
}

// TopRect returns the solid region above the gap.
func (o Obstacle) TopRect(width float64) core.Rect {
	return core.NewRect(o.X, 0, width, o.GapTop)
}

// BottomRect returns the solid region below the gap, down to the screen edge.
func (o Obstacle) BottomRect(width, screenH float64) core.Rect {
	return core.NewRect(o.X, o.GapBottom, width, screenH-o.GapBottom)
}

// Right returns the x coordinate of the trailing edge.
func (o Obstacle) Right(width float64) float64 {
	return o.X + width
}

// ObstacleSet handles spawning, movement, scoring and removal of obstacles.
type ObstacleSet struct {
	obstacles []Obstacle
	rng       *rand.Rand
	cfg       config.ObstacleConfig
	screenW   float64
	screenH   float64
	gapLo     int   // Smallest gap top, inclusive
	gapHi     int   // Largest gap top, inclusive
	nextSpawn int64 // Timestamp after which the next obstacle spawns
}

// NewObstacleSet creates an empty obstacle set with the given RNG seed.
func NewObstacleSet(seed int64, cfg config.FlappyBallConfig) *ObstacleSet {
	lo, hi := cfg.GapTopRange()
	return &ObstacleSet{
		obstacles: make([]Obstacle, 0, 8),
		rng:       rand.New(rand.NewSource(seed)),
		cfg:       cfg.Obstacles,
		screenW:   cfg.Screen.Width,
		screenH:   cfg.Screen.Height,
		gapLo:     int(math.Ceil(lo)),
		gapHi:     int(math.Floor(hi)),
	}
}

// Reset clears all obstacles and arms the spawn timer so that the first
// update at or after now spawns immediately.
func (os *ObstacleSet) Reset(now int64) {
	os.obstacles = os.obstacles[:0]
	os.nextSpawn = now - os.cfg.SpawnIntervalMs
}

// Advance moves every obstacle left by one tick's worth of scrolling.
func (os *ObstacleSet) Advance() {
	for i := range os.obstacles {
		os.obstacles[i].X -= os.cfg.Speed
	}
}

// Evaluate runs the collision, scoring and retirement tests against the
// ball's bounding box. It reports whether any obstacle was hit and how many
// obstacles were passed for the first time. Obstacles whose trailing edge has
// scrolled off the left side are removed afterwards.
func (os *ObstacleSet) Evaluate(ball core.Rect) (hit bool, passed int) {
	w := os.cfg.Width

	for i := range os.obstacles {
		o := &os.obstacles[i]

		if !hit && (ball.Intersects(o.TopRect(w)) || ball.Intersects(o.BottomRect(w, os.screenH))) {
			hit = true
		}

		if !o.Scored && ball.X > o.Right(w) {
			o.Scored = true
			passed++
		}
	}

	// Remove obstacles that have moved off the left side
	kept := os.obstacles[:0]
	for _, o := range os.obstacles {
		if o.Right(w) >= 0 {
			kept = append(kept, o)
		}
	}
	os.obstacles = kept

	return hit, passed
}

// MaybeSpawn adds an obstacle at the right edge once the spawn timer has
// elapsed. Returns true if an obstacle was spawned.
func (os *ObstacleSet) MaybeSpawn(now int64) bool {
	if now <= os.nextSpawn {
		return false
	}
	os.spawn()
	os.nextSpawn = now + os.cfg.SpawnIntervalMs
	return true
}

// spawn creates a new obstacle with a uniformly random whole-pixel gap top.
func (os *ObstacleSet) spawn() {
	gapTop := os.gapLo
	if os.gapHi > os.gapLo {
		gapTop += os.rng.Intn(os.gapHi - os.gapLo + 1)
	}

	os.obstacles = append(os.obstacles, Obstacle{
		X:         os.screenW,
		GapTop:    float64(gapTop),
		GapBottom: float64(gapTop) + os.cfg.GapHeight,
	})
}

// Obstacles returns a copy of the active obstacles in spawn order.
func (os *ObstacleSet) Obstacles() []Obstacle {
	out := make([]Obstacle, len(os.obstacles))
	copy(out, os.obstacles)
	return out
}

// Len returns the number of active obstacles.
func (os *ObstacleSet) Len() int {
	return len(os.obstacles)
}

// NextSpawn returns the timestamp the spawn timer is armed for.
func (os *ObstacleSet) NextSpawn() int64 {
	return os.nextSpawn
}
