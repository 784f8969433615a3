package render

import (
	"image"
	"image/png"
	"os"

	"github.com/pkg/errors"
	"github.com/willbeason/mandelbrot-viewer/pkg/escape"
)

// Buffer is a width x height grid of colors stored row-major.
type Buffer struct {
	width  int
	height int
	pix    []escape.Color
}

func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]escape.Color, width*height),
	}
}

func (b *Buffer) Width() int {
	return b.width
}

func (b *Buffer) Height() int {
	return b.height
}

// At returns the color at (x, y), or InSet outside the buffer.
func (b *Buffer) At(x, y int) escape.Color {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return escape.InSet
	}
	return b.pix[y*b.width+x]
}

// Set writes c at (x, y). Out-of-bounds writes are ignored.
func (b *Buffer) Set(x, y int, c escape.Color) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.pix[y*b.width+x] = c
}

// Row returns the backing slice of row y. Distinct rows never alias, so
// each may be written by a different goroutine.
func (b *Buffer) Row(y int) []escape.Color {
	start := y * b.width
	return b.pix[start : start+b.width : start+b.width]
}

// RGBA copies the buffer into dst as 8-bit R, G, B, A bytes with an
// opaque alpha, growing dst if needed.
func (b *Buffer) RGBA(dst []byte) []byte {
	n := 4 * len(b.pix)
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, c := range b.pix {
		dst[4*i+0] = c.R()
		dst[4*i+1] = c.G()
		dst[4*i+2] = c.B()
		dst[4*i+3] = 0xff
	}
	return dst
}

func (b *Buffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	b.RGBA(img.Pix[:0])
	return img
}

// SavePNG writes the buffer to path as a PNG.
func (b *Buffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating snapshot")
	}

	err = png.Encode(f, b.Image())
	if err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "encoding %s", path)
	}

	return errors.Wrapf(f.Close(), "closing %s", path)
}
