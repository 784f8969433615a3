package transforms

// Julia2 is the quadratic step for a fixed constant. Orbits start from
// the point being classified.
type Julia2 struct {
	C complex128
}

func (j Julia2) Next(z complex128) complex128 {
	return z*z + j.C
}

type JuliaN struct {
	N int
	C complex128
}

func (j JuliaN) Next(z complex128) complex128 {
	return pow(z, j.N) + j.C
}

var (
	_ Transform = Mandelbrot{}
	_ Transform = MandelbrotN{}
	_ Transform = Julia2{}
	_ Transform = JuliaN{}
)
