package escape

import (
	"github.com/willbeason/mandelbrot-viewer/pkg/transforms"
)

// Kind selects which family of escape-time fractal is drawn.
type Kind int

const (
	Mandelbrot Kind = iota
	Julia
)

func (k Kind) String() string {
	switch k {
	case Mandelbrot:
		return "mandelbrot"
	case Julia:
		return "julia"
	}
	return "unknown"
}

// Evaluator classifies points of the complex plane by escape time.
//
// The zero value draws the quadratic Mandelbrot set in the Grey palette.
type Evaluator struct {
	Kind Kind

	// K is the Julia constant. Ignored for Mandelbrot.
	K complex128

	// Power is the exponent of the iterated polynomial. Values below 2
	// mean 2.
	Power int

	// Palette defaults to Grey when nil.
	Palette *Palette
}

// Iterations runs the orbit for c and returns the number of steps taken
// and whether the orbit stayed bounded for all maxIterations steps.
func (e Evaluator) Iterations(c complex128, maxIterations int) (int, bool) {
	quadratic := e.Power <= 2

	switch {
	case e.Kind == Julia && quadratic:
		return transforms.Escape(transforms.Julia2{C: e.K}, c, maxIterations)
	case e.Kind == Julia:
		return transforms.Escape(transforms.JuliaN{N: e.Power, C: e.K}, c, maxIterations)
	case quadratic:
		return transforms.Escape(transforms.Mandelbrot{C: c}, 0, maxIterations)
	default:
		return transforms.Escape(transforms.MandelbrotN{N: e.Power, C: c}, 0, maxIterations)
	}
}

// Color returns InSet for bounded orbits and the palette entry for the
// escape count otherwise.
//
// maxIterations must be positive: with zero steps every point is bounded.
func (e Evaluator) Color(c complex128, maxIterations int) Color {
	iterations, bounded := e.Iterations(c, maxIterations)
	if bounded {
		return InSet
	}

	p := e.Palette
	if p == nil {
		p = &Grey
	}
	return p.ForEscape(iterations)
}
