package uncertain

import "math/cmplx"

// Scalar is the constraint over the numeric types a Value may hold: real
// measurements are float64, complex measurements (e.g. phasors, S-parameters)
// are complex128.
//
// The constraint deliberately lists the two exact types rather than type sets
// with approximation (~), so that internal code may recover the concrete type
// of a scalar with a plain type assertion.
type Scalar interface {
	float64 | complex128
}

// conjugate returns the complex conjugate of s; for real scalars it is the
// identity.
func conjugate[S Scalar](s S) S {
	if z, ok := any(s).(complex128); ok {
		return any(cmplx.Conj(z)).(S)
	}
	return s
}

// abs2 returns |s|^2 as a real number.
func abs2[S Scalar](s S) float64 {
	switch v := any(s).(type) {
	case float64:
		return v * v
	case complex128:
		return real(v)*real(v) + imag(v)*imag(v)
	}
	return 0 // unreachable: Scalar admits no other types
}

// fromReal widens a real number into the scalar type S.
func fromReal[S Scalar](f float64) S {
	var zero S
	if _, ok := any(zero).(complex128); ok {
		return any(complex(f, 0)).(S)
	}
	return any(f).(S)
}
