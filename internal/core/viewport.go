package core

import "math"

// Viewport maps a logical pixel space onto a screen's cell grid.
type Viewport struct {
	LogicalW, LogicalH float64
	Cols, Rows         int
}

// NewViewport creates a viewport for a logical resolution and a screen.
func NewViewport(logicalW, logicalH int, dst *Screen) Viewport {
	return Viewport{
		LogicalW: float64(logicalW),
		LogicalH: float64(logicalH),
		Cols:     dst.Width(),
		Rows:     dst.Height(),
	}
}

// Column converts a logical x to a cell column.
func (v Viewport) Column(x float64) int {
	return int(math.Floor(x * float64(v.Cols) / v.LogicalW))
}

// Line converts a logical y to a cell row.
func (v Viewport) Line(y float64) int {
	return int(math.Floor(y * float64(v.Rows) / v.LogicalH))
}

// Cell converts a logical point to a cell position.
func (v Viewport) Cell(p Vec2) (int, int) {
	return v.Column(p.X), v.Line(p.Y)
}

// Project converts a logical rectangle to cells. Any rectangle with a
// positive size covers at least one cell.
func (v Viewport) Project(r RectF) Rect {
	x0, y0 := v.Column(r.X), v.Line(r.Y)
	x1 := int(math.Ceil(r.Right() * float64(v.Cols) / v.LogicalW))
	y1 := int(math.Ceil(r.Bottom() * float64(v.Rows) / v.LogicalH))
	return Rect{X: x0, Y: y0, W: max(1, x1-x0), H: max(1, y1-y0)}
}

// Logical converts a cell position back to the logical point at the
// center of that cell. Used for mouse hit testing.
func (v Viewport) Logical(col, row int) Vec2 {
	return Vec2{
		X: (float64(col) + 0.5) * v.LogicalW / float64(v.Cols),
		Y: (float64(row) + 0.5) * v.LogicalH / float64(v.Rows),
	}
}
