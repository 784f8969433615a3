package escape

import (
	"image/color"
)

// Color is a packed 0xRRGGBB value. The top byte is unused.
type Color uint32

// InSet colors points whose orbit stays bounded.
const InSet Color = 0x000000

func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c) }

// ARGB returns c in the packed 32-bit ARGB8888 layout with an opaque alpha.
func (c Color) ARGB() uint32 {
	return 0xff000000 | uint32(c)&0x00ffffff
}

func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R(), G: c.G(), B: c.B(), A: 0xff}
}

// PaletteSize is the number of entries cycled through by escape count.
const PaletteSize = 16

type Palette [PaletteSize]Color

// Grey fades from white to near-black and back, so neighbouring escape
// counts never jump in brightness when the palette wraps.
var Grey = Palette{
	0xFFFFFF, 0xDDDDDD, 0xBBBBBB, 0x999999,
	0x777777, 0x555555, 0x333333, 0x111111,
	0x111111, 0x333333, 0x555555, 0x777777,
	0x999999, 0xBBBBBB, 0xDDDDDD, 0xFFFFFF,
}

// ForEscape returns the color for an orbit that escaped after iterations
// steps. Zero steps, which only a Julia orbit starting outside the escape
// radius can produce, wraps to the last entry.
func (p *Palette) ForEscape(iterations int) Color {
	i := (iterations - 1) % PaletteSize
	if i < 0 {
		i += PaletteSize
	}
	return p[i]
}
