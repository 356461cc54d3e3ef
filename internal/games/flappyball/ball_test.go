package flappyball

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestBallStepFreeFall(t *testing.T) {
	b := Ball{X: 100, Y: 300, Radius: 20}

	if b.Step(0.75, 0.85, 585) {
		t.Error("ball in the air should not bounce")
	}
	if b.VelY != 0.75 || b.Y != 300.75 {
		t.Errorf("after one step: Y=%v VelY=%v, expected Y=300.75 VelY=0.75", b.Y, b.VelY)
	}
}

func TestBallStepBounce(t *testing.T) {
	// Incoming velocity after gravity is 10; restitution 0.85 gives -8.5
	b := Ball{X: 100, Y: 560, VelY: 9.25, Radius: 20}

	if !b.Step(0.75, 0.85, 585) {
		t.Fatal("ball crossing the ground should bounce")
	}
	if b.Y != 565 {
		t.Errorf("Y = %v, expected ball clamped to 565", b.Y)
	}
	if math.Abs(b.VelY-(-8.5)) > eps {
		t.Errorf("VelY = %v, expected -8.5", b.VelY)
	}
}

func TestBallStepNoCeiling(t *testing.T) {
	b := Ball{X: 100, Y: 5, VelY: -10, Radius: 20}
	b.Step(0.75, 0.85, 585)

	if b.Y >= 0 {
		t.Errorf("ball should keep rising above the screen, Y = %v", b.Y)
	}
}

func TestBallRect(t *testing.T) {
	b := Ball{X: 100, Y: 300, Radius: 20}
	r := b.Rect()

	if r.X != 80 || r.Y != 280 || r.W != 40 || r.H != 40 {
		t.Errorf("Rect() = %+v, expected (80, 280, 40, 40)", r)
	}
	if b.Left() != 80 {
		t.Errorf("Left() = %v, expected 80", b.Left())
	}
}
