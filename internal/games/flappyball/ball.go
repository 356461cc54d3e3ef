package flappyball

import "github.com/vovakirdan/flappyball/internal/core"

// Ball is the player body. It only ever moves vertically.
type Ball struct {
	X      float64 // Fixed horizontal centre
	Y      float64 // Vertical centre, down is positive
	VelY   float64 // Vertical velocity in pixels per tick
	Radius float64
}

// Step integrates one tick of gravity and resolves ground contact.
// The ball is clamped onto the ground and bounced with energy loss; there is
// no ceiling. Returns true if the ball bounced this tick.
func (b *Ball) Step(gravity, restitution, groundTop float64) bool {
	b.VelY += gravity
	next := b.Y + b.VelY

	bounced := false
	if next+b.Radius > groundTop {
		next = groundTop - b.Radius
		b.VelY = -(b.VelY * restitution)
		bounced = true
	}

	b.Y = next
	return bounced
}

// Rect returns the ball's bounding box.
func (b Ball) Rect() core.Rect {
	return core.NewRect(b.X-b.Radius, b.Y-b.Radius, 2*b.Radius, 2*b.Radius)
}

// Left returns the x coordinate of the ball's left edge. An obstacle counts as
// passed once this edge is beyond the obstacle's right edge.
func (b Ball) Left() float64 {
	return b.X - b.Radius
}
