package escape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrey_Symmetric(t *testing.T) {
	for i := 0; i < PaletteSize/2; i++ {
		assert.Equal(t, Grey[i], Grey[PaletteSize-1-i], "index %d", i)
	}
}

func TestPalette_ForEscape(t *testing.T) {
	assert.Equal(t, Grey[0], Grey.ForEscape(1))
	assert.Equal(t, Grey[15], Grey.ForEscape(16))
	assert.Equal(t, Grey[0], Grey.ForEscape(17))
	assert.Equal(t, Grey[4], Grey.ForEscape(37))
	assert.Equal(t, Grey[15], Grey.ForEscape(0))
}

func TestColor_Components(t *testing.T) {
	c := Color(0x12AB34)

	assert.Equal(t, uint8(0x12), c.R())
	assert.Equal(t, uint8(0xAB), c.G())
	assert.Equal(t, uint8(0x34), c.B())
	assert.Equal(t, uint32(0xFF12AB34), c.ARGB())
	assert.Equal(t, uint8(0xFF), c.RGBA().A)
}

func TestEvaluator_Origin(t *testing.T) {
	var e Evaluator
	for n := 1; n <= 64; n++ {
		assert.Equal(t, InSet, e.Color(0, n), "maxIterations %d", n)
	}
}

func TestEvaluator_KnownEscape(t *testing.T) {
	var e Evaluator

	for _, n := range []int{2, 3, 64, 1000} {
		assert.Equal(t, Grey[0], e.Color(3, n), "maxIterations %d", n)
	}

	iterations, bounded := e.Iterations(3, 64)
	assert.Equal(t, 1, iterations)
	assert.False(t, bounded)
}

func TestEvaluator_Deterministic(t *testing.T) {
	e := Evaluator{}
	points := []complex128{
		complex(-0.75, 0.1), complex(0.3, 0.5), complex(-1.25, 0.02), complex(0.25, 0),
	}

	for _, c := range points {
		first := e.Color(c, 200)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, e.Color(c, 200))
		}
	}
}

func TestEvaluator_EscapeCount(t *testing.T) {
	var e Evaluator

	// 1 -> 2 reaches |z|^2 = 4 after two steps.
	assert.Equal(t, Grey[1], e.Color(1, 10))
	// |-2|^2 = 4 already meets the escape radius after one step.
	assert.Equal(t, Grey[0], e.Color(-2, 10))
}

func TestEvaluator_Julia(t *testing.T) {
	e := Evaluator{Kind: Julia, K: complex(-0.8, 0.156)}

	// The orbit starts at the pixel itself, so a far point escapes with no
	// steps taken and is colored by the wrap-around palette entry.
	iterations, bounded := e.Iterations(5, 10)
	assert.Equal(t, 0, iterations)
	assert.False(t, bounded)
	assert.Equal(t, Grey[PaletteSize-1], e.Color(5, 10))

	// z = 0 with k = 0 stays at 0.
	assert.Equal(t, InSet, Evaluator{Kind: Julia}.Color(0, 20))

	// z = 1.5: 1.5^2 = 2.25 escapes on the first step with k = 0.
	assert.Equal(t, Grey[0], Evaluator{Kind: Julia}.Color(1.5, 20))
}

func TestEvaluator_Power(t *testing.T) {
	cubic := Evaluator{Power: 3}

	// 0 -> 1 -> 2: same as the quadratic case for c = 1.
	iterations, bounded := cubic.Iterations(1, 10)
	assert.Equal(t, 2, iterations)
	assert.False(t, bounded)

	// c = i is bounded for the cubic map: 0, i, 0, i, ...
	assert.Equal(t, InSet, cubic.Color(complex(0, 1), 100))
}

func TestEvaluator_CustomPalette(t *testing.T) {
	p := Palette{0xFF0000}
	e := Evaluator{Palette: &p}

	assert.Equal(t, Color(0xFF0000), e.Color(3, 10))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "mandelbrot", Mandelbrot.String())
	assert.Equal(t, "julia", Julia.String())
	assert.Equal(t, "unknown", Kind(7).String())
}
