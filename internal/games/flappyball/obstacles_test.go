package flappyball

import (
	"math"
	"testing"

	"github.com/vovakirdan/flappyball/internal/config"
	"github.com/vovakirdan/flappyball/internal/core"
)

func TestObstacleRects(t *testing.T) {
	o := Obstacle{X: 200, GapTop: 100, GapBottom: 350}

	top := o.TopRect(80)
	if top != core.NewRect(200, 0, 80, 100) {
		t.Errorf("TopRect = %+v", top)
	}
	bottom := o.BottomRect(80, 600)
	if bottom != core.NewRect(200, 350, 80, 250) {
		t.Errorf("BottomRect = %+v", bottom)
	}
}

func TestObstacleSetSpawnTiming(t *testing.T) {
	os := NewObstacleSet(1, config.DefaultFlappyBallConfig())
	os.Reset(1000)

	if !os.MaybeSpawn(1000) {
		t.Fatal("first update after reset should spawn")
	}
	if os.MaybeSpawn(2500) {
		t.Error("spawn requires time strictly after the scheduled instant")
	}
	if !os.MaybeSpawn(2501) {
		t.Error("spawn should happen once the interval has elapsed")
	}
	if os.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", os.Len())
	}

	for _, o := range os.Obstacles() {
		if o.X != 400 {
			t.Errorf("new obstacle X = %v, expected right edge 400", o.X)
		}
	}
}

func TestObstacleSetGapRange(t *testing.T) {
	cfg := config.DefaultFlappyBallConfig()
	os := NewObstacleSet(7, cfg)
	os.Reset(0)

	seen := map[float64]bool{}
	for i := 0; i < 2000; i++ {
		os.MaybeSpawn(int64(i) * cfg.Obstacles.SpawnIntervalMs * 2)
	}

	for _, o := range os.Obstacles() {
		if o.GapTop < 50 || o.GapTop > 350 {
			t.Fatalf("GapTop %v outside [50, 350]", o.GapTop)
		}
		if o.GapTop != math.Trunc(o.GapTop) {
			t.Fatalf("GapTop %v is not a whole pixel", o.GapTop)
		}
		if o.GapBottom-o.GapTop != 250 {
			t.Fatalf("gap height = %v, expected 250", o.GapBottom-o.GapTop)
		}
		seen[o.GapTop] = true
	}

	if len(seen) < 100 {
		t.Errorf("expected gap tops to spread over the range, saw %d distinct values", len(seen))
	}
}

func TestObstacleSetPassAndScoreOnce(t *testing.T) {
	os := NewObstacleSet(1, config.DefaultFlappyBallConfig())
	os.obstacles = append(os.obstacles, Obstacle{X: 400, GapTop: 100, GapBottom: 350})

	// Ball centred inside the gap
	ball := Ball{X: 100, Y: 225, Radius: 20}

	total := 0
	for i := 0; i < 200; i++ {
		os.Advance()
		hit, passed := os.Evaluate(ball.Rect())
		if hit {
			t.Fatalf("tick %d: ball inside the gap should not collide", i)
		}
		total += passed
	}

	if total != 1 {
		t.Errorf("obstacle scored %d times, expected exactly once", total)
	}
	if os.Len() != 0 {
		t.Errorf("obstacle should have been retired, %d remain", os.Len())
	}
}

func TestObstacleSetScoreBoundary(t *testing.T) {
	os := NewObstacleSet(1, config.DefaultFlappyBallConfig())
	ball := Ball{X: 100, Y: 225, Radius: 20}

	// Trailing edge exactly at the ball's left edge is not yet a pass
	os.obstacles = append(os.obstacles, Obstacle{X: 0, GapTop: 100, GapBottom: 350})
	if _, passed := os.Evaluate(ball.Rect()); passed != 0 {
		t.Error("equal edges should not score")
	}

	os.obstacles[0].X = -0.5
	if _, passed := os.Evaluate(ball.Rect()); passed != 1 {
		t.Error("trailing edge left of the ball should score")
	}
}

func TestObstacleSetRetirement(t *testing.T) {
	os := NewObstacleSet(1, config.DefaultFlappyBallConfig())
	os.obstacles = append(os.obstacles,
		Obstacle{X: -81, GapTop: 100, GapBottom: 350},
		Obstacle{X: -80, GapTop: 100, GapBottom: 350},
		Obstacle{X: 10, GapTop: 100, GapBottom: 350},
	)
	far := core.NewRect(1000, 1000, 1, 1)

	_, passed := os.Evaluate(far)
	if passed != 3 {
		t.Errorf("first evaluation passed = %d, expected 3", passed)
	}
	if os.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2 after retirement", os.Len())
	}

	_, passed = os.Evaluate(far)
	if passed != 0 {
		t.Errorf("second evaluation passed = %d, expected 0", passed)
	}
	if os.Len() != 2 {
		t.Errorf("retirement should be idempotent, Len() = %d", os.Len())
	}

	got := os.Obstacles()
	if got[0].X != -80 || got[1].X != 10 {
		t.Errorf("remaining obstacles out of order: %+v", got)
	}
}

func TestObstacleSetCollision(t *testing.T) {
	os := NewObstacleSet(1, config.DefaultFlappyBallConfig())
	os.obstacles = append(os.obstacles, Obstacle{X: 90, GapTop: 100, GapBottom: 350})

	tests := []struct {
		name string
		y    float64
		hit  bool
	}{
		{"inside gap", 225, false},
		{"touching gap top", 120, false},
		{"overlapping top region", 119, true},
		{"touching gap bottom", 330, false},
		{"overlapping bottom region", 331, true},
		{"above the screen", -100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball := Ball{X: 100, Y: tt.y, Radius: 20}
			hit, _ := os.Evaluate(ball.Rect())
			if hit != tt.hit {
				t.Errorf("Evaluate hit = %v, expected %v", hit, tt.hit)
			}
		})
	}
}

func TestObstacleSetResetClears(t *testing.T) {
	os := NewObstacleSet(1, config.DefaultFlappyBallConfig())
	os.Reset(0)
	os.MaybeSpawn(1)
	os.Reset(5000)

	if os.Len() != 0 {
		t.Errorf("Reset should clear obstacles, Len() = %d", os.Len())
	}
	if os.NextSpawn() != 3500 {
		t.Errorf("NextSpawn() = %d, expected 3500", os.NextSpawn())
	}
}

func TestObstacleSetGapRangeFollowsConfig(t *testing.T) {
	tests := []struct {
		name           string
		ceiling, floor float64
		lo, hi         int
	}{
		{"defaults", 50, 0, 50, 350},
		{"fractional margins round inwards", 120.5, 100.4, 121, 249},
		{"single position", 200, 150, 200, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultFlappyBallConfig()
			cfg.Obstacles.MinCeilingMargin = tt.ceiling
			cfg.Obstacles.MinFloorMargin = tt.floor

			os := NewObstacleSet(5, cfg)
			if os.gapLo != tt.lo || os.gapHi != tt.hi {
				t.Fatalf("gap range = [%d, %d], expected [%d, %d]", os.gapLo, os.gapHi, tt.lo, tt.hi)
			}

			os.Reset(0)
			for i := 0; i < 200; i++ {
				os.MaybeSpawn(int64(i) * cfg.Obstacles.SpawnIntervalMs * 2)
			}
			for _, o := range os.Obstacles() {
				if o.GapTop < float64(tt.lo) || o.GapTop > float64(tt.hi) {
					t.Fatalf("GapTop %v outside [%d, %d]", o.GapTop, tt.lo, tt.hi)
				}
			}
		})
	}
}
