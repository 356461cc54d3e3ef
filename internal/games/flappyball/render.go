package flappyball

import (
	"fmt"
	"math"

	"github.com/vovakirdan/flappyball/internal/core"
)

// Visual characters for rendering
const (
	BallChar      = '●'
	BallAboveChar = '▲' // Ball is above the visible area
	PipeChar      = '█'
	GroundChar    = '▓'
	GroundAltChar = '▒'
)

// groundTile is the width of one ground texture segment in pixels.
const groundTile = 15

// Text anchors relative to the vertical centre of the screen, in pixels.
const (
	textLeft       = 50
	gameOverOffset = -105
	titleOffset    = -75
	promptOffset   = 45
	finalOffset    = 75
	bestOffset     = 105
)

// Render draws the snapshot onto dst. The logical scene is scaled into the
// largest aspect-correct area that fits the buffer and centred in it.
func (s Snapshot) Render(dst *core.Screen) {
	dst.Clear()

	v := core.FitViewport(dst.Width(), dst.Height(), s.Width, s.Height)
	if v.Cols == 0 || v.Rows == 0 {
		return
	}

	if s.Phase == PhaseActive {
		for _, o := range s.Obstacles {
			s.drawObstacle(dst, v, o)
		}
	}

	s.drawGround(dst, v)

	switch s.Phase {
	case PhaseActive:
		s.drawHUD(dst, v)
	case PhaseIdle:
		s.drawLabel(dst, v, titleOffset, "FLAPPY BALL", core.ColorTitle)
		s.drawLabel(dst, v, promptOffset, "Press SPACE to Start", core.ColorText)
	case PhaseEnded:
		s.drawLabel(dst, v, gameOverOffset, "GAME OVER...", core.ColorAlert)
		s.drawLabel(dst, v, titleOffset, "FLAPPY BALL", core.ColorTitle)
		s.drawLabel(dst, v, promptOffset, "Press SPACE to Restart", core.ColorText)
		s.drawLabel(dst, v, finalOffset, fmt.Sprintf("Final Score: %d", s.Score), core.ColorText)
		s.drawLabel(dst, v, bestOffset, fmt.Sprintf("High Score: %d", s.HighScore), core.ColorHighScore)
	}

	s.drawBall(dst, v)
}

// drawObstacle fills both solid regions of an obstacle.
func (s Snapshot) drawObstacle(dst *core.Screen, v core.Viewport, o Obstacle) {
	for _, r := range []core.Rect{o.TopRect(s.ObstacleWidth), o.BottomRect(s.ObstacleWidth, s.Height)} {
		x0, y0, x1, y1 := v.Cells(r)
		dst.FillArea(x0, y0, x1, y1, PipeChar, core.ColorPipe)
	}
}

// drawGround draws the ground strip with a texture that scrolls with the
// obstacles. The strip is always at least one row tall.
func (s Snapshot) drawGround(dst *core.Screen, v core.Viewport) {
	x0, y0, x1, y1 := v.Cells(core.NewRect(0, s.GroundTop, s.Width, s.Height-s.GroundTop))
	if y1 <= y0 {
		y1 = v.OffsetRow + v.Rows
		y0 = y1 - 1
	}

	for col := x0; col < x1; col++ {
		x := (float64(col-v.OffsetCol)+0.5)/v.ScaleX - s.GroundOffset
		r := GroundChar
		if int(math.Floor(x/groundTile))%2 == 1 {
			r = GroundAltChar
		}
		for row := y0; row < y1; row++ {
			dst.SetColor(col, row, r, core.ColorGround)
		}
	}
}

// drawBall fills the ball's bounding box. A ball that has flown above the
// screen is marked at the top edge so the player can still track it.
func (s Snapshot) drawBall(dst *core.Screen, v core.Viewport) {
	col := v.Col(s.BallX)
	if s.BallY+s.BallRadius < 0 {
		dst.SetColor(col, v.OffsetRow, BallAboveChar, core.ColorBall)
		return
	}

	r := core.NewRect(s.BallX-s.BallRadius, s.BallY-s.BallRadius, 2*s.BallRadius, 2*s.BallRadius)
	x0, y0, x1, y1 := v.Cells(r)
	if x1 <= x0 || y1 <= y0 {
		if row := v.Row(s.BallY); v.InBounds(col, row) {
			dst.SetColor(col, row, BallChar, core.ColorBall)
		}
		return
	}
	dst.FillArea(x0, y0, x1, y1, BallChar, core.ColorBall)
}

// drawHUD shows the score on the left and the high score on the right.
func (s Snapshot) drawHUD(dst *core.Screen, v core.Viewport) {
	row := v.Row(16)
	s.drawText(dst, v, 20, row, fmt.Sprintf("Score: %d", s.Score), core.ColorTitle)
	s.drawText(dst, v, s.Width-120, row, fmt.Sprintf("High Score: %d", s.HighScore), core.ColorHighScore)
}

// drawLabel draws overlay text at a vertical offset from the screen centre.
func (s Snapshot) drawLabel(dst *core.Screen, v core.Viewport, offset float64, text string, c core.Color) {
	s.drawText(dst, v, textLeft, v.Row(math.Floor(s.Height/2)+offset), text, c)
}

// drawText draws text starting at logical x, shifted left where needed so it
// stays inside the play area.
func (s Snapshot) drawText(dst *core.Screen, v core.Viewport, x float64, row int, text string, c core.Color) {
	n := len([]rune(text))
	col := core.Min(v.Col(x), v.OffsetCol+v.Cols-n)
	col = core.Max(col, v.OffsetCol)
	dst.DrawTextColor(col, row, text, c)
}
