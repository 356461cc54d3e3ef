// Package scene turns snapshots into a pixel display list. It has no graphics
// dependencies so it can be tested headless.
package scene

import (
	"fmt"
	"image/color"
	"math"

	"github.com/vovakirdan/flappyball/internal/games/flappyball"
)

// Scene colors
var (
	skyColor        = color.RGBA{R: 110, G: 180, B: 255, A: 255}
	pipeColor       = color.RGBA{R: 40, G: 160, B: 40, A: 255}
	groundColor     = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	groundTileColor = color.RGBA{R: 80, G: 50, B: 20, A: 255}
	ballColor       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)

// groundTile is the spacing of the ground texture in pixels.
const groundTile = 15

// ShapeKind selects how a shape is filled.
type ShapeKind int

const (
	ShapeRect ShapeKind = iota
	ShapeCircle
)

// Shape is a filled rectangle, or a circle centred at (X, Y) with radius R.
type Shape struct {
	Kind  ShapeKind
	X, Y  float64
	W, H  float64
	R     float64
	Color color.RGBA
}

// Label is a line of text anchored at its top-left corner.
type Label struct {
	Text string
	X, Y int
}

// Scene is a display list in logical pixels, drawn back to front.
type Scene struct {
	Background color.RGBA
	Shapes     []Shape
	Labels     []Label
}

// Build converts a snapshot into the shapes and text to draw.
func Build(s flappyball.Snapshot) Scene {
	sc := Scene{Background: skyColor}

	if s.Phase == flappyball.PhaseActive {
		for _, o := range s.Obstacles {
			top := o.TopRect(s.ObstacleWidth)
			bottom := o.BottomRect(s.ObstacleWidth, s.Height)
			sc.rect(top.X, top.Y, top.W, top.H, pipeColor)
			sc.rect(bottom.X, bottom.Y, bottom.W, bottom.H, pipeColor)
		}
	}

	// Ground is twice the screen wide so the scroll never shows a seam
	groundH := s.Height - s.GroundTop
	sc.rect(s.GroundOffset, s.GroundTop, 2*s.Width, groundH, groundColor)
	for x := s.GroundOffset; x < s.Width; x += groundTile {
		sc.rect(x, s.GroundTop+groundH/2, 4, groundH/2, groundTileColor)
	}

	sc.Shapes = append(sc.Shapes, Shape{
		Kind:  ShapeCircle,
		X:     math.Floor(s.BallX),
		Y:     math.Floor(s.BallY),
		R:     s.BallRadius,
		Color: ballColor,
	})

	mid := int(math.Floor(s.Height / 2))
	switch s.Phase {
	case flappyball.PhaseActive:
		sc.label(fmt.Sprintf("Score: %d", s.Score), 20, 16)
		sc.label(fmt.Sprintf("High Score: %d", s.HighScore), int(s.Width)-120, 16)
	case flappyball.PhaseIdle:
		sc.label("FLAPPY BALL", 50, mid-75)
		sc.label("Press SPACE to Start", 50, mid+45)
	case flappyball.PhaseEnded:
		sc.label("GAME OVER...", 50, mid-105)
		sc.label("FLAPPY BALL", 50, mid-75)
		sc.label("Press SPACE to Restart", 50, mid+45)
		sc.label(fmt.Sprintf("Final Score: %d", s.Score), 50, mid+75)
		sc.label(fmt.Sprintf("High Score: %d", s.HighScore), 50, mid+105)
	}

	return sc
}

func (sc *Scene) rect(x, y, w, h float64, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	sc.Shapes = append(sc.Shapes, Shape{Kind: ShapeRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (sc *Scene) label(text string, x, y int) {
	sc.Labels = append(sc.Labels, Label{Text: text, X: x, Y: y})
}
