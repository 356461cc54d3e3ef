package scene

import (
	"strings"
	"testing"

	"github.com/vovakirdan/flappyball/internal/config"
	"github.com/vovakirdan/flappyball/internal/core"
	"github.com/vovakirdan/flappyball/internal/games/flappyball"
)

func labels(sc Scene) string {
	var parts []string
	for _, l := range sc.Labels {
		parts = append(parts, l.Text)
	}
	return strings.Join(parts, "|")
}

func countShapes(sc Scene, c interface{ RGBA() (r, g, b, a uint32) }) int {
	r0, g0, b0, _ := c.RGBA()
	n := 0
	for _, s := range sc.Shapes {
		r, g, b, _ := s.Color.RGBA()
		if r == r0 && g == g0 && b == b0 {
			n++
		}
	}
	return n
}

func TestSceneIdle(t *testing.T) {
	g := flappyball.New(config.DefaultFlappyBallConfig(), 1)
	sc := Build(g.Tick(0, core.NewInputFrame()))

	if sc.Background != skyColor {
		t.Errorf("Background = %v, expected sky", sc.Background)
	}
	if got := labels(sc); got != "FLAPPY BALL|Press SPACE to Start" {
		t.Errorf("labels = %q", got)
	}
	if n := countShapes(sc, pipeColor); n != 0 {
		t.Errorf("idle scene has %d pipe shapes, expected 0", n)
	}
	// Title sits 75px above the centre line
	if sc.Labels[0].X != 50 || sc.Labels[0].Y != 300-75 {
		t.Errorf("title at (%d, %d), expected (50, 225)", sc.Labels[0].X, sc.Labels[0].Y)
	}
}

func TestSceneActive(t *testing.T) {
	g := flappyball.New(config.DefaultFlappyBallConfig(), 1)
	s := g.Tick(0, core.NewInputFrame(core.ActionActivate))

	want := 0
	for _, o := range s.Obstacles {
		for _, r := range []core.Rect{o.TopRect(s.ObstacleWidth), o.BottomRect(s.ObstacleWidth, s.Height)} {
			if !r.Empty() {
				want++
			}
		}
	}

	sc := Build(s)
	if n := countShapes(sc, pipeColor); n != want || want == 0 {
		t.Errorf("pipe shapes = %d, expected %d", n, want)
	}
	if got := labels(sc); got != "Score: 0|High Score: 0" {
		t.Errorf("labels = %q", got)
	}
	if sc.Labels[1].X != 400-120 || sc.Labels[1].Y != 16 {
		t.Errorf("high score at (%d, %d), expected (280, 16)", sc.Labels[1].X, sc.Labels[1].Y)
	}

	last := sc.Shapes[len(sc.Shapes)-1]
	if last.Kind != ShapeCircle || last.Color != ballColor {
		t.Fatalf("last shape = %+v, expected the ball", last)
	}
	if last.X != 100 || last.R != 20 {
		t.Errorf("ball at x=%v r=%v, expected x=100 r=20", last.X, last.R)
	}
}

func TestSceneEnded(t *testing.T) {
	g := flappyball.New(config.DefaultFlappyBallConfig(), 1)
	g.Tick(0, core.NewInputFrame(core.ActionActivate))

	var s flappyball.Snapshot
	for now := int64(16); now < 60000; now += 16 {
		s = g.Tick(now, core.NewInputFrame())
		if s.Ended() {
			break
		}
	}
	if !s.Ended() {
		t.Fatal("session never ended without input")
	}

	sc := Build(s)
	want := "GAME OVER...|FLAPPY BALL|Press SPACE to Restart|Final Score: 0|High Score: 0"
	if got := labels(sc); got != want {
		t.Errorf("labels = %q, expected %q", got, want)
	}
	if n := countShapes(sc, pipeColor); n != 0 {
		t.Errorf("ended scene has %d pipe shapes, expected 0", n)
	}
}

func TestSceneGroundScrolls(t *testing.T) {
	g := flappyball.New(config.DefaultFlappyBallConfig(), 1)
	g.Tick(0, core.NewInputFrame(core.ActionActivate))
	s := g.Tick(16, core.NewInputFrame())

	sc := Build(s)
	for _, sh := range sc.Shapes {
		if sh.Color == groundColor {
			if sh.X != s.GroundOffset || sh.Y != 585 || sh.H != 15 {
				t.Errorf("ground = %+v, expected x=%v y=585 h=15", sh, s.GroundOffset)
			}
			if sh.X+sh.W < s.Width {
				t.Error("ground does not cover the screen width")
			}
			return
		}
	}
	t.Fatal("no ground shape")
}

func TestSceneTilesCoverScreen(t *testing.T) {
	g := flappyball.New(config.DefaultFlappyBallConfig(), 1)
	sc := Build(g.Tick(0, core.NewInputFrame()))

	if n := countShapes(sc, groundTileColor); n < 400/groundTile {
		t.Errorf("ground tiles = %d, expected at least %d", n, 400/groundTile)
	}
}
