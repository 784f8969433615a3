package transforms

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	tcs := []struct {
		name          string
		c             complex128
		maxIterations int
		iterations    int
		bounded       bool
	}{
		{name: "origin never escapes", c: 0, maxIterations: 100, iterations: 100, bounded: true},
		{name: "far point escapes on first step", c: 3, maxIterations: 100, iterations: 1, bounded: false},
		{name: "minus one cycles", c: -1, maxIterations: 50, iterations: 50, bounded: true},
		{name: "one escapes on second step", c: 1, maxIterations: 10, iterations: 2, bounded: false},
		{name: "escape on last step counts as bounded", c: 1, maxIterations: 2, iterations: 2, bounded: true},
		{name: "zero bound performs no steps", c: 3, maxIterations: 0, iterations: 0, bounded: true},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			n, bounded := Escape(Mandelbrot{C: tc.c}, 0, tc.maxIterations)
			assert.Equal(t, tc.iterations, n)
			assert.Equal(t, tc.bounded, bounded)
		})
	}
}

func TestEscape_StartOutside(t *testing.T) {
	n, bounded := Escape(Julia2{C: 0}, 5, 10)
	assert.Equal(t, 0, n)
	assert.False(t, bounded)
}

func TestPow(t *testing.T) {
	z := complex(0.3, -1.2)
	for n := 0; n <= 7; n++ {
		assert.InDelta(t, 0.0, cmplx.Abs(pow(z, n)-cmplx.Pow(z, complex(float64(n), 0))), 1e-12, "n=%d", n)
	}
}

func TestPowerTwoMatchesQuadratic(t *testing.T) {
	c := complex(-0.4, 0.6)
	z := complex(0.1, 0.2)

	assert.InDelta(t, 0.0, cmplx.Abs(Mandelbrot{C: c}.Next(z)-MandelbrotN{N: 2, C: c}.Next(z)), 1e-15)
	assert.InDelta(t, 0.0, cmplx.Abs(Julia2{C: c}.Next(z)-JuliaN{N: 2, C: c}.Next(z)), 1e-15)
}
