package core

import "math"

// Viewport maps world-space coordinates (origin bottom-left, y up) onto
// screen cells (origin top-left, y down).
type Viewport struct {
	WorldW, WorldH   float64
	ScreenW, ScreenH int
}

// NewViewport creates a viewport for the given world and screen sizes.
func NewViewport(worldW, worldH float64, screenW, screenH int) Viewport {
	return Viewport{WorldW: worldW, WorldH: worldH, ScreenW: screenW, ScreenH: screenH}
}

func (v Viewport) col(x float64) int {
	if v.WorldW <= 0 {
		return 0
	}
	return int(math.Floor(x / v.WorldW * float64(v.ScreenW)))
}

func (v Viewport) row(y float64) int {
	if v.WorldH <= 0 {
		return 0
	}
	return int(math.Floor((v.WorldH - y) / v.WorldH * float64(v.ScreenH)))
}

// ToCell returns the cell containing p, clamped to the screen.
func (v Viewport) ToCell(p Point) (int, int) {
	return Clamp(v.col(p.X), 0, Max(v.ScreenW-1, 0)), Clamp(v.row(p.Y), 0, Max(v.ScreenH-1, 0))
}

// Project converts a world box into the cell rectangle covering it.
// Every box covers at least one cell.
func (v Viewport) Project(b Box) Rect {
	x0, x1 := v.col(b.Left()), v.col(b.Right())
	y0, y1 := v.row(b.Top()), v.row(b.Bottom())
	return NewRect(x0, y0, Max(1, x1-x0), Max(1, y1-y0))
}
