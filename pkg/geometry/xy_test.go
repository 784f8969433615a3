package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXY(t *testing.T) {
	a := XY{X: 1.5, Y: -2}
	b := XY{X: 0.5, Y: 3}

	assert.Equal(t, XY{X: 2, Y: 1}, a.Add(b))
	assert.Equal(t, XY{X: 1, Y: -5}, a.Sub(b))
	assert.Equal(t, a, a.Add(b).Sub(b))
	assert.Equal(t, complex(1.5, -2), a.Complex())
}
