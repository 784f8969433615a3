package transforms

// Mandelbrot is the quadratic step z^2 + C for the parameter point C.
// Orbits start from zero.
type Mandelbrot struct {
	C complex128
}

func (m Mandelbrot) Next(z complex128) complex128 {
	return z*z + m.C
}

// MandelbrotN is the multibrot step z^N + C.
type MandelbrotN struct {
	N int
	C complex128
}

func (m MandelbrotN) Next(z complex128) complex128 {
	return pow(z, m.N) + m.C
}
