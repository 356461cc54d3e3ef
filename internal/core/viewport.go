package core

import "math"

// cellAspect is the height of a terminal cell relative to its width.
const cellAspect = 2.0

// Viewport maps a fixed logical resolution (pixels) onto a block of terminal
// cells. The block keeps the logical aspect ratio and is centred in the
// terminal.
type Viewport struct {
	Cols, Rows           int     // Size of the play area in cells
	OffsetCol, OffsetRow int     // Top-left cell of the play area
	ScaleX, ScaleY       float64 // Cells per logical pixel
}

// FitViewport computes the largest aspect-correct play area that fits a
// termW x termH terminal for a logicalW x logicalH world.
func FitViewport(termW, termH int, logicalW, logicalH float64) Viewport {
	if termW <= 0 || termH <= 0 || logicalW <= 0 || logicalH <= 0 {
		return Viewport{}
	}

	rows := termH
	cols := int(math.Round(float64(rows) * cellAspect * logicalW / logicalH))
	if cols > termW {
		cols = termW
		rows = int(math.Round(float64(cols) * logicalH / (cellAspect * logicalW)))
	}
	cols = Max(cols, 1)
	rows = Max(rows, 1)

	return Viewport{
		Cols:      cols,
		Rows:      rows,
		OffsetCol: (termW - cols) / 2,
		OffsetRow: (termH - rows) / 2,
		ScaleX:    float64(cols) / logicalW,
		ScaleY:    float64(rows) / logicalH,
	}
}

// Col converts a logical x coordinate to a terminal column.
func (v Viewport) Col(x float64) int {
	return v.OffsetCol + int(math.Floor(x*v.ScaleX))
}

// Row converts a logical y coordinate to a terminal row.
func (v Viewport) Row(y float64) int {
	return v.OffsetRow + int(math.Floor(y*v.ScaleY))
}

// Cells converts a logical rectangle to a half-open cell range clipped to the
// play area. Edges are rounded so that adjacent rectangles tile without gaps.
func (v Viewport) Cells(r Rect) (x0, y0, x1, y1 int) {
	x0 = v.OffsetCol + int(math.Round(r.X*v.ScaleX))
	x1 = v.OffsetCol + int(math.Round(r.Right()*v.ScaleX))
	y0 = v.OffsetRow + int(math.Round(r.Y*v.ScaleY))
	y1 = v.OffsetRow + int(math.Round(r.Bottom()*v.ScaleY))

	x0 = Clamp(x0, v.OffsetCol, v.OffsetCol+v.Cols)
	x1 = Clamp(x1, v.OffsetCol, v.OffsetCol+v.Cols)
	y0 = Clamp(y0, v.OffsetRow, v.OffsetRow+v.Rows)
	y1 = Clamp(y1, v.OffsetRow, v.OffsetRow+v.Rows)
	return x0, y0, x1, y1
}

// InBounds reports whether the cell lies inside the play area.
func (v Viewport) InBounds(col, row int) bool {
	return col >= v.OffsetCol && col < v.OffsetCol+v.Cols &&
		row >= v.OffsetRow && row < v.OffsetRow+v.Rows
}
