package transforms

const (
	// EscapeNorm is the squared escape radius: an orbit with |z|^2 >= 4 diverges.
	EscapeNorm = 4.0
)

// A Transform advances an orbit by one step.
type Transform interface {
	Next(z complex128) complex128
}

// Escape iterates t starting from z until |z|^2 reaches EscapeNorm or
// maxIterations steps have been taken. It returns the number of steps
// performed and whether the loop stopped because of the iteration bound.
//
// A point whose orbit only escapes on the final permitted step is reported
// as bounded.
func Escape[T Transform](t T, z complex128, maxIterations int) (int, bool) {
	iterations := 0
	for norm(z) < EscapeNorm && iterations < maxIterations {
		z = t.Next(z)
		iterations++
	}

	return iterations, iterations == maxIterations
}

func norm(z complex128) float64 {
	re, im := real(z), imag(z)
	return re*re + im*im
}

// pow raises z to a non-negative integer power by squaring.
func pow(z complex128, n int) complex128 {
	result := complex(1, 0)
	for n > 0 {
		if n&1 == 1 {
			result *= z
		}
		z *= z
		n >>= 1
	}
	return result
}
