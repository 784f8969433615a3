package geometry

// XY is a point in world space; X is the real axis and Y the imaginary axis.
type XY struct {
	X, Y float64
}

func (xy XY) Add(o XY) XY {
	return XY{X: xy.X + o.X, Y: xy.Y + o.Y}
}

func (xy XY) Sub(o XY) XY {
	return XY{X: xy.X - o.X, Y: xy.Y - o.Y}
}

// Complex returns xy as the complex number X + Yi.
func (xy XY) Complex() complex128 {
	return complex(xy.X, xy.Y)
}
