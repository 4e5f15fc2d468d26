package uncertain

import (
	"fmt"
	"math"
	"math/cmplx"
)

// A Value pairs a nominal scalar with the sensitivities that describe how it
// responds to every elementary source of uncertainty it transitively depends
// on. The zero value is an exact zero.
//
// Values are immutable: every arithmetic operation returns a new Value and
// never modifies its operands, so values may be reused as operands in any
// number of expressions - the covariance bookkeeping keeps derived results
// correctly correlated.
//
// A complex Value (S = complex128) is the pairing of two correlated real
// parts over the same component space; its sensitivities are complex and its
// covariance is Hermitian.
type Value[S Scalar] struct {
	nominal S
	sens    sensitivities[S]
}

// NewValue returns a Value for a fresh independent measurement with the given
// nominal value and standard deviation. A new Component (variance sigma²) is
// allocated internally.
//
// It returns an error wrapping ErrInvalidUncertainty if sigma is negative or
// NaN.
func NewValue[S Scalar](nominal S, sigma float64) (Value[S], error) {
	if sigma < 0 || math.IsNaN(sigma) {
		return Value[S]{}, fmt.Errorf("%w: standard deviation %v", ErrInvalidUncertainty, sigma)
	}
	return NewValueVariance(nominal, sigma*sigma)
}

// NewValueVariance is NewValue with the uncertainty given as a variance
// instead of a standard deviation.
func NewValueVariance[S Scalar](nominal S, variance float64) (Value[S], error) {
	c, err := NewComponent(variance)
	if err != nil {
		return Value[S]{}, err
	}
	return FromComponent[S](nominal, c), nil
}

// FromComponent returns a Value whose uncertainty stems entirely from the
// given component, with unit sensitivity. Use it to build several values that
// share a single elementary error.
func FromComponent[S Scalar](nominal S, c Component) Value[S] {
	return Value[S]{nominal: nominal, sens: singleton(c, fromReal[S](1))}
}

// Exact returns a Value with no uncertainty at all: its sensitivity map is
// empty and its variance is zero.
func Exact[S Scalar](nominal S) Value[S] {
	return Value[S]{nominal: nominal}
}

// Nominal returns the value's nominal scalar.
func (v Value[S]) Nominal() S { return v.nominal }

// Variance returns the first-order variance of v.
func (v Value[S]) Variance() float64 { return v.sens.variance() }

// StandardDeviation returns the square root of the value's variance. It is
// the combined standard uncertainty of v.
func (v Value[S]) StandardDeviation() float64 { return math.Sqrt(v.sens.variance()) }

// Covariance returns the covariance between v and other. It is nonzero
// exactly when the two values share at least one origin component; for
// complex values it is the Hermitian covariance E[δv · conj(δother)].
func (v Value[S]) Covariance(other Value[S]) S {
	return v.sens.covariance(other.sens)
}

// Neg returns -v.
func (v Value[S]) Neg() Value[S] {
	return Value[S]{nominal: -v.nominal, sens: v.sens.scale(fromReal[S](-1))}
}

// Add returns v + other. Addition is affine, so the propagation is exact:
// nominals sum and sensitivity maps merge per component.
func (v Value[S]) Add(other Value[S]) Value[S] {
	return Value[S]{nominal: v.nominal + other.nominal, sens: v.sens.add(other.sens)}
}

// Sub returns v - other.
func (v Value[S]) Sub(other Value[S]) Value[S] {
	return v.Add(other.Neg())
}

// Scale returns v multiplied by the exact scalar k. Like Add, this is affine
// and carries no linearisation error.
func (v Value[S]) Scale(k S) Value[S] {
	return Value[S]{nominal: v.nominal * k, sens: v.sens.scale(k)}
}

// Mul returns v * other using the first-order product rule: the result is
// sensitive to each operand's components in proportion to the other operand's
// nominal value, with coefficients summed for shared components.
func (v Value[S]) Mul(other Value[S]) Value[S] {
	return Value[S]{
		nominal: v.nominal * other.nominal,
		sens:    v.sens.scale(other.nominal).add(other.sens.scale(v.nominal)),
	}
}

// Div returns v / other using the first-order quotient rule, with partial
// derivatives 1/other and -v/other².
//
// It returns an error wrapping ErrDivisionByZero if other's nominal value is
// exactly zero; no linearisation is defined at the pole.
func (v Value[S]) Div(other Value[S]) (Value[S], error) {
	var zero S
	if other.nominal == zero {
		return Value[S]{}, fmt.Errorf("%w: divisor nominal is zero", ErrDivisionByZero)
	}
	return Value[S]{
		nominal: v.nominal / other.nominal,
		sens: v.sens.scale(fromReal[S](1) / other.nominal).
			add(other.sens.scale(-v.nominal / (other.nominal * other.nominal))),
	}, nil
}

// Pow returns v raised to the exponent p, with derivative p·v^(p-1).
//
// It returns an error wrapping ErrDomain when that derivative is undefined
// over the value's domain: a non-integer power of a negative real nominal, or
// any power p < 1 (other than the constant p = 0) at a zero nominal, where
// the derivative has a pole.
func (v Value[S]) Pow(p float64) (Value[S], error) {
	if p == 0 {
		// v⁰ is the exact constant 1 with zero sensitivity everywhere.
		return Value[S]{nominal: fromReal[S](1), sens: v.sens.scale(fromReal[S](0))}, nil
	}

	var zero S
	if v.nominal == zero && p < 1 {
		return Value[S]{}, fmt.Errorf("%w: power %v of zero", ErrDomain, p)
	}

	integer := p == math.Trunc(p)
	switch z := any(v.nominal).(type) {
	case float64:
		if z < 0 && !integer {
			return Value[S]{}, fmt.Errorf("%w: non-integer power %v of negative value %v", ErrDomain, p, z)
		}
		nominal := math.Pow(z, p)
		derivative := p * math.Pow(z, p-1)
		return Value[S]{nominal: fromReal[S](nominal), sens: v.sens.scale(fromReal[S](derivative))}, nil
	case complex128:
		nominal := cmplx.Pow(z, complex(p, 0))
		derivative := complex(p, 0) * cmplx.Pow(z, complex(p-1, 0))
		return Value[S]{nominal: any(nominal).(S), sens: v.sens.scale(any(derivative).(S))}, nil
	}
	panic("uncertain: unreachable scalar type")
}

func (v Value[S]) String() string {
	return fmt.Sprintf("%v ±%v", v.nominal, v.StandardDeviation())
}

//=============================================================================
// Projections between the complex and real instantiations. These cannot be
// methods because Go methods may not introduce their own type parameters.

// Complex combines two correlated real values into a single complex value
// with nominal complex(re, im). Sensitivities merge over the shared component
// space, so Real(Complex(a, b)) reproduces a exactly.
func Complex(re, im Value[float64]) Value[complex128] {
	sens := make(sensitivities[complex128], len(re.sens)+len(im.sens))
	for c, coefficient := range re.sens {
		sens[c] = complex(coefficient, 0)
	}
	for c, coefficient := range im.sens {
		sens[c] += complex(0, coefficient)
	}
	return Value[complex128]{nominal: complex(re.nominal, im.nominal), sens: sens}
}

// Real projects a complex value onto its real part. The projection is linear
// and therefore exact.
func Real(v Value[complex128]) Value[float64] {
	sens := make(sensitivities[float64], len(v.sens))
	for c, coefficient := range v.sens {
		sens[c] = real(coefficient)
	}
	return Value[float64]{nominal: real(v.nominal), sens: sens}
}

// Imag projects a complex value onto its imaginary part. The projection is
// linear and therefore exact.
func Imag(v Value[complex128]) Value[float64] {
	sens := make(sensitivities[float64], len(v.sens))
	for c, coefficient := range v.sens {
		sens[c] = imag(coefficient)
	}
	return Value[float64]{nominal: imag(v.nominal), sens: sens}
}

// Abs reduces a complex value to its real magnitude |v|. By the chain rule
// over the real and imaginary parts, the real sensitivity to each component
// is Re(conj(z)·s) / |z| for complex coefficient s at nominal z.
//
// It returns an error wrapping ErrDomain if the nominal value is zero, where
// the magnitude is not differentiable.
func Abs(v Value[complex128]) (Value[float64], error) {
	if v.nominal == 0 {
		return Value[float64]{}, fmt.Errorf("%w: magnitude at zero", ErrDomain)
	}
	magnitude := cmplx.Abs(v.nominal)
	sens := make(sensitivities[float64], len(v.sens))
	for c, coefficient := range v.sens {
		sens[c] = real(cmplx.Conj(v.nominal)*coefficient) / magnitude
	}
	return Value[float64]{nominal: magnitude, sens: sens}, nil
}

// Phase reduces a complex value to its real phase angle atan2(im, re), in
// radians. The real sensitivity to each component is Im(conj(z)·s) / |z|².
//
// It returns an error wrapping ErrDomain if the nominal value is zero, where
// the phase is undefined.
func Phase(v Value[complex128]) (Value[float64], error) {
	if v.nominal == 0 {
		return Value[float64]{}, fmt.Errorf("%w: phase at zero", ErrDomain)
	}
	squared := real(v.nominal)*real(v.nominal) + imag(v.nominal)*imag(v.nominal)
	sens := make(sensitivities[float64], len(v.sens))
	for c, coefficient := range v.sens {
		sens[c] = imag(cmplx.Conj(v.nominal)*coefficient) / squared
	}
	return Value[float64]{nominal: cmplx.Phase(v.nominal), sens: sens}, nil
}
