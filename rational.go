package uncertain

import (
	"fmt"
	"strconv"
)

// A Rational is an exact ratio of two int64 values, used as the exponent
// representation of the unit algebra. Rational exponents keep roots of units
// representable: the square root of a metre is m^(1/2), not an error.
//
// A Rational is always stored normalised (lowest terms, positive
// denominator), which makes == the correct equality and lets units be
// compared and used as map keys directly. The zero value is 0/1.
type Rational struct {
	num, den int64
}

// NewRational returns the normalised rational num/den.
//
// It returns an error wrapping ErrFractionalDimension if den is zero.
func NewRational(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, fmt.Errorf("%w: zero denominator", ErrFractionalDimension)
	}
	if den < 0 {
		num, den = -num, -den
	}
	if num == 0 {
		// Canonical zero is the zero value of Rational, so that constructed
		// zeros compare equal to the zero-valued exponents of a fresh Unit.
		return Rational{}, nil
	}
	d := gcd(num, den)
	return Rational{num: num / d, den: den / d}, nil
}

// MustRational is like NewRational but panics on a zero denominator. It is
// intended for rational literals in unit catalogues, where the arguments are
// spelled out by the programmer.
func MustRational(num, den int64) Rational {
	r, err := NewRational(num, den)
	if err != nil {
		panic(fmt.Sprintf("uncertain: invalid rational %d/%d: %v", num, den, err))
	}
	return r
}

// Integer returns the rational n/1.
func Integer(n int64) Rational {
	if n == 0 {
		return Rational{}
	}
	return Rational{num: n, den: 1}
}

// Num returns the normalised numerator.
func (r Rational) Num() int64 { return r.num }

// Den returns the normalised denominator. It is always positive, except for
// the zero value of Rational where it is reported as 1.
func (r Rational) Den() int64 {
	if r.den == 0 {
		return 1
	}
	return r.den
}

// IsZero reports whether r equals zero.
func (r Rational) IsZero() bool { return r.num == 0 }

// Add returns r + other.
func (r Rational) Add(other Rational) Rational {
	return MustRational(r.num*other.Den()+other.num*r.Den(), r.Den()*other.Den())
}

// Sub returns r - other.
func (r Rational) Sub(other Rational) Rational {
	return MustRational(r.num*other.Den()-other.num*r.Den(), r.Den()*other.Den())
}

// Mul returns r * other.
func (r Rational) Mul(other Rational) Rational {
	return MustRational(r.num*other.num, r.Den()*other.Den())
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	if r.num == 0 {
		return Rational{}
	}
	return Rational{num: -r.num, den: r.Den()}
}

// Float returns the nearest float64 to r.
func (r Rational) Float() float64 {
	return float64(r.num) / float64(r.Den())
}

func (r Rational) String() string {
	if r.Den() == 1 {
		return strconv.FormatInt(r.num, 10)
	}
	return fmt.Sprintf("%d/%d", r.num, r.den)
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
