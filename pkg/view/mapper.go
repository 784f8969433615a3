package view

import (
	"image"
	"math"

	"github.com/willbeason/mandelbrot-viewer/pkg/geometry"
)

// Mapper converts between screen pixels and world coordinates.
//
// Screen Y grows downward; world Y grows upward. The screen center is
// (Width/2, Height/2) using integer division.
type Mapper struct {
	Viewport
	Scale  float64
	Offset geometry.XY
}

// ToScreen returns the pixel showing world point w.
func (m Mapper) ToScreen(w geometry.XY) image.Point {
	return image.Point{
		X: int(math.Round((w.X+m.Offset.X)*m.Scale)) + m.Width/2,
		Y: -int(math.Round((w.Y+m.Offset.Y)*m.Scale)) + m.Height/2,
	}
}

// ToWorld returns the world point shown at pixel p. It is the exact
// inverse of ToScreen before rounding.
func (m Mapper) ToWorld(p image.Point) geometry.XY {
	return geometry.XY{
		X: float64(p.X-m.Width/2)/m.Scale - m.Offset.X,
		Y: -float64(p.Y-m.Height/2)/m.Scale - m.Offset.Y,
	}
}
