package view

import (
	"github.com/willbeason/mandelbrot-viewer/pkg/geometry"
)

const (
	DefaultWidth  = 640
	DefaultHeight = 480

	DefaultScale         = 150.0
	DefaultMaxIterations = 2
	DefaultZoomRate      = 0.01

	// MinZoomRate and MaxZoomRate bound ZoomRate so that zooming out always
	// multiplies Scale by a strictly positive factor.
	MinZoomRate = 1e-6
	MaxZoomRate = 0.9

	// MinScale and MaxScale bound Scale so world coordinates stay finite
	// and distinguishable in float64.
	MinScale = 1e-3
	MaxScale = 1e15
)

// Viewport is the fixed size of the presentation surface in pixels.
type Viewport struct {
	Width, Height int
}

func DefaultViewport() Viewport {
	return Viewport{Width: DefaultWidth, Height: DefaultHeight}
}

// State is the mutable view onto the complex plane.
//
// Scale is pixels per world unit and must stay positive. Offset is added to
// world coordinates before scaling, so the screen center shows -Offset.
type State struct {
	Scale         float64
	Offset        geometry.XY
	MaxIterations int
	ZoomRate      float64
}

// Default returns the startup view.
func Default() State {
	return State{
		Scale:         DefaultScale,
		MaxIterations: DefaultMaxIterations,
		ZoomRate:      DefaultZoomRate,
	}
}

// Clamp enforces MaxIterations >= 1, MinZoomRate <= ZoomRate <= MaxZoomRate
// and MinScale <= Scale <= MaxScale.
func (s *State) Clamp() {
	if s.MaxIterations < 1 {
		s.MaxIterations = 1
	}
	s.ZoomRate = ClampZoomRate(s.ZoomRate)
	s.Scale = ClampScale(s.Scale)
}

func ClampScale(scale float64) float64 {
	switch {
	case scale < MinScale:
		return MinScale
	case scale > MaxScale:
		return MaxScale
	}
	return scale
}

func ClampZoomRate(rate float64) float64 {
	switch {
	case rate < MinZoomRate:
		return MinZoomRate
	case rate > MaxZoomRate:
		return MaxZoomRate
	}
	return rate
}

// Mapper returns the coordinate mapping for the current scale and offset.
func (s State) Mapper(v Viewport) Mapper {
	return Mapper{
		Viewport: v,
		Scale:    s.Scale,
		Offset:   s.Offset,
	}
}
