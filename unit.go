package uncertain

import (
	"fmt"
	"math"
	"strings"
)

// A Dimension indexes one of the seven SI base dimensions.
type Dimension int

const (
	Length Dimension = iota
	Mass
	Time
	Current
	Temperature
	Amount
	LuminousIntensity

	numDimensions
)

// dimensionSymbols follows the ISQ dimension symbols (Θ for thermodynamic
// temperature, N for amount of substance, J for luminous intensity).
var dimensionSymbols = [numDimensions]string{"L", "M", "T", "I", "Θ", "N", "J"}

func (d Dimension) String() string {
	if d < 0 || d >= numDimensions {
		return fmt.Sprintf("Dimension(%d)", int(d))
	}
	return dimensionSymbols[d]
}

// A Unit is a vector of rational exponents over the SI base dimensions,
// together with a positive scale factor relative to the coherent SI unit of
// that dimension vector. The kilometre, for example, carries the metre's
// exponent vector with scale 1000.
//
// Unit is an immutable comparable value: the == operator implements exact
// unit equality (equal exponent vectors AND equal scales), which also makes
// units usable as map keys. Units with equal exponent vectors but different
// scales are not equal, yet remain additively compatible - the scale ratio is
// a conversion factor, not an incompatibility.
//
// The zero Unit is not meaningful (its scale is zero); construct units from
// BaseUnit, NewUnit, Dimensionless, or the operators below.
type Unit struct {
	dims  [numDimensions]Rational
	scale float64
}

// Dimensionless is the unit of pure numbers: all exponents zero, scale one.
var Dimensionless = Unit{scale: 1}

// BaseUnit returns the coherent SI unit of the given base dimension: exponent
// one for that dimension, zero for all others, scale one.
//
// It panics if d is not one of the seven base dimensions.
func BaseUnit(d Dimension) Unit {
	if d < 0 || d >= numDimensions {
		panic(fmt.Sprintf("uncertain: invalid dimension %d", int(d)))
	}
	u := Unit{scale: 1}
	u.dims[d] = Integer(1)
	return u
}

// NewUnit returns a unit with the given scale and exponent vector. Dimensions
// absent from the exponents map get exponent zero.
//
// It panics if the scale is not a positive finite number, or if a map key is
// not one of the seven base dimensions; both indicate programmer error in a
// unit catalogue, not a runtime condition.
func NewUnit(scale float64, exponents map[Dimension]Rational) Unit {
	if !(scale > 0) || math.IsInf(scale, 1) {
		panic(fmt.Sprintf("uncertain: invalid unit scale %v", scale))
	}
	u := Unit{scale: scale}
	for d, r := range exponents {
		if d < 0 || d >= numDimensions {
			panic(fmt.Sprintf("uncertain: invalid dimension %d", int(d)))
		}
		u.dims[d] = r
	}
	return u
}

// Scale returns the unit's scale factor relative to the coherent SI unit of
// its dimension vector.
func (u Unit) Scale() float64 { return u.scale }

// Exponent returns the unit's exponent for the given base dimension.
func (u Unit) Exponent(d Dimension) Rational { return u.dims[d] }

// Scaled returns u multiplied by the given positive factor. It is how metric
// prefixes are applied: Meter.Scaled(1000) is the kilometre.
//
// It panics if the factor is not a positive finite number.
func (u Unit) Scaled(factor float64) Unit {
	if !(factor > 0) || math.IsInf(factor, 1) {
		panic(fmt.Sprintf("uncertain: invalid unit scale factor %v", factor))
	}
	u.scale *= factor
	return u
}

// Mul returns the product unit: exponent vectors added component-wise, scales
// multiplied.
func (u Unit) Mul(other Unit) Unit {
	product := Unit{scale: u.scale * other.scale}
	for d := range product.dims {
		product.dims[d] = u.dims[d].Add(other.dims[d])
	}
	return product
}

// Div returns the quotient unit: exponent vectors subtracted component-wise,
// scales divided.
func (u Unit) Div(other Unit) Unit {
	quotient := Unit{scale: u.scale / other.scale}
	for d := range quotient.dims {
		quotient.dims[d] = u.dims[d].Sub(other.dims[d])
	}
	return quotient
}

// Pow returns u raised to the rational exponent r: every dimensional exponent
// is multiplied by r and the scale is raised to the r-th power.
func (u Unit) Pow(r Rational) Unit {
	power := Unit{scale: math.Pow(u.scale, r.Float())}
	for d := range power.dims {
		power.dims[d] = u.dims[d].Mul(r)
	}
	return power
}

// Root returns the n-th root of u, i.e. u.Pow(1/n).
//
// It returns an error wrapping ErrFractionalDimension if n is zero, since no
// exponent representation exists for a zeroth root.
func (u Unit) Root(n int64) (Unit, error) {
	r, err := NewRational(1, n)
	if err != nil {
		return Unit{}, fmt.Errorf("root %d: %w", n, err)
	}
	return u.Pow(r), nil
}

// Compatible reports whether u and other have equal dimensional exponent
// vectors. Compatible units may be added, compared, and converted into each
// other; their scales are irrelevant to compatibility.
func (u Unit) Compatible(other Unit) bool {
	return u.dims == other.dims
}

// ConversionFactorTo returns the factor by which a numeric value expressed in
// u must be multiplied to re-express it in target.
//
// It returns an error wrapping ErrIncompatibleUnits if the two units differ
// dimensionally.
func (u Unit) ConversionFactorTo(target Unit) (float64, error) {
	if !u.Compatible(target) {
		return 0, fmt.Errorf("%w: %v and %v", ErrIncompatibleUnits, u, target)
	}
	return u.scale / target.scale, nil
}

func (u Unit) String() string {
	var b strings.Builder
	for d, r := range u.dims {
		if r.IsZero() {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("·")
		}
		b.WriteString(Dimension(d).String())
		if r != Integer(1) {
			b.WriteString("^")
			b.WriteString(r.String())
		}
	}
	if b.Len() == 0 {
		b.WriteString("1")
	}
	if u.scale != 1 {
		fmt.Fprintf(&b, " ×%v", u.scale)
	}
	return b.String()
}
