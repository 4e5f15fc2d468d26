package uncertain

import (
	"fmt"
	"math"
)

// A Quantity is the user-facing measurable value: an uncertain Value tagged
// with a Unit. Arithmetic on quantities delegates numeric propagation to the
// Value and dimensional checking to the Unit, and wraps the results back up.
//
// A quantity's numeric value is expressed in its own unit: 2 with the
// kilometre unit means two kilometres. Like every type in this package,
// Quantity is immutable.
type Quantity[S Scalar] struct {
	value Value[S]
	unit  Unit
}

// NewQuantity returns a quantity for a fresh independent measurement with the
// given nominal value and standard deviation, expressed in the given unit. A
// new Component is allocated internally.
//
// It returns an error wrapping ErrInvalidUncertainty if sigma is negative or
// NaN.
func NewQuantity[S Scalar](nominal S, sigma float64, unit Unit) (Quantity[S], error) {
	v, err := NewValue(nominal, sigma)
	if err != nil {
		return Quantity[S]{}, err
	}
	return Quantity[S]{value: v, unit: unit}, nil
}

// NewQuantityVariance is NewQuantity with the uncertainty given as a variance
// instead of a standard deviation.
func NewQuantityVariance[S Scalar](nominal S, variance float64, unit Unit) (Quantity[S], error) {
	v, err := NewValueVariance(nominal, variance)
	if err != nil {
		return Quantity[S]{}, err
	}
	return Quantity[S]{value: v, unit: unit}, nil
}

// ExactQuantity returns a quantity with no uncertainty: a plain number tagged
// with a unit.
func ExactQuantity[S Scalar](nominal S, unit Unit) Quantity[S] {
	return Quantity[S]{value: Exact(nominal), unit: unit}
}

// FromValue tags an existing uncertain value with a unit. The value's
// sensitivities carry over unchanged, so quantities built from the same value
// remain fully correlated.
func FromValue[S Scalar](v Value[S], unit Unit) Quantity[S] {
	return Quantity[S]{value: v, unit: unit}
}

// Value returns the quantity's uncertain value, expressed in the quantity's
// unit.
func (q Quantity[S]) Value() Value[S] { return q.value }

// Unit returns the quantity's unit.
func (q Quantity[S]) Unit() Unit { return q.unit }

// Nominal returns the quantity's nominal value, expressed in the quantity's
// unit.
func (q Quantity[S]) Nominal() S { return q.value.nominal }

// Variance returns the quantity's variance, expressed in the square of the
// quantity's unit.
func (q Quantity[S]) Variance() float64 { return q.value.Variance() }

// StandardDeviation returns the quantity's combined standard uncertainty,
// expressed in the quantity's unit.
func (q Quantity[S]) StandardDeviation() float64 { return q.value.StandardDeviation() }

// Covariance returns the covariance between q and other, expressed in the
// product of the two quantities' coherent SI units. Both operands are
// rescaled to coherent SI before the covariance sum, so the result does not
// depend on which prefixed units the operands happen to be stored in.
func (q Quantity[S]) Covariance(other Quantity[S]) S {
	cov := q.value.Covariance(other.value)
	return cov * fromReal[S](q.unit.scale*other.unit.scale)
}

// Neg returns -q.
func (q Quantity[S]) Neg() Quantity[S] {
	return Quantity[S]{value: q.value.Neg(), unit: q.unit}
}

// Scale returns q multiplied by the exact dimensionless scalar k.
func (q Quantity[S]) Scale(k S) Quantity[S] {
	return Quantity[S]{value: q.value.Scale(k), unit: q.unit}
}

// Add returns q + other.
//
// It returns an error wrapping ErrIncompatibleUnits if the operands differ
// dimensionally. When the operands' scales differ, the right operand is first
// converted into the left operand's unit, and the result carries the left
// operand's unit; "left operand wins" is this package's documented policy for
// all additive operations.
func (q Quantity[S]) Add(other Quantity[S]) (Quantity[S], error) {
	converted, err := other.convertTo(q.unit, "add")
	if err != nil {
		return Quantity[S]{}, err
	}
	return Quantity[S]{value: q.value.Add(converted.value), unit: q.unit}, nil
}

// Sub returns q - other, under the same unit policy as Add.
func (q Quantity[S]) Sub(other Quantity[S]) (Quantity[S], error) {
	converted, err := other.convertTo(q.unit, "sub")
	if err != nil {
		return Quantity[S]{}, err
	}
	return Quantity[S]{value: q.value.Sub(converted.value), unit: q.unit}, nil
}

// Mul returns q * other. Multiplication always succeeds dimensionally: the
// result's unit is the product of the operand units.
func (q Quantity[S]) Mul(other Quantity[S]) Quantity[S] {
	return Quantity[S]{value: q.value.Mul(other.value), unit: q.unit.Mul(other.unit)}
}

// Div returns q / other, with the quotient of the operand units.
//
// It returns an error wrapping ErrDivisionByZero if other's nominal value is
// exactly zero.
func (q Quantity[S]) Div(other Quantity[S]) (Quantity[S], error) {
	v, err := q.value.Div(other.value)
	if err != nil {
		measureOperationFailure("div")
		return Quantity[S]{}, err
	}
	return Quantity[S]{value: v, unit: q.unit.Div(other.unit)}, nil
}

// Pow returns q raised to the rational exponent r: the unit's exponents are
// multiplied by r and the value follows the power propagation rule.
//
// It returns an error wrapping ErrDomain when the value's derivative is
// undefined (see Value.Pow).
func (q Quantity[S]) Pow(r Rational) (Quantity[S], error) {
	v, err := q.value.Pow(r.Float())
	if err != nil {
		measureOperationFailure("pow")
		return Quantity[S]{}, err
	}
	return Quantity[S]{value: v, unit: q.unit.Pow(r)}, nil
}

// ConvertTo re-expresses q under the target unit without changing its
// physical meaning: the nominal value and every sensitivity coefficient are
// multiplied by the conversion factor. This is the only operation that
// changes a quantity's unit representation.
//
// It returns an error wrapping ErrIncompatibleUnits if the target unit
// differs dimensionally from q's unit.
func (q Quantity[S]) ConvertTo(target Unit) (Quantity[S], error) {
	return q.convertTo(target, "convert")
}

// convertTo implements ConvertTo with the operation label under which a
// failure is measured, so that an additive operation rejected for
// incompatible units counts against that operation rather than "convert".
func (q Quantity[S]) convertTo(target Unit, operation string) (Quantity[S], error) {
	if q.unit == target {
		return q, nil
	}
	factor, err := q.unit.ConversionFactorTo(target)
	if err != nil {
		measureOperationFailure(operation)
		return Quantity[S]{}, err
	}
	return Quantity[S]{value: q.value.Scale(fromReal[S](factor)), unit: target}, nil
}

func (q Quantity[S]) String() string {
	return fmt.Sprintf("%v [%v]", q.value, q.unit)
}

//=============================================================================
// Comparisons are defined over real quantities only; reduce complex
// quantities through Magnitude, PhaseAngle, RealPart, or ImagPart first.

// Compare orders two real quantities by nominal value, returning -1, 0, or +1
// as a is less than, equal to, or greater than b. Uncertainty plays no part
// in the ordering; see Overlaps for an uncertainty-aware comparison.
//
// It returns an error wrapping ErrIncompatibleUnits if the operands differ
// dimensionally. Operands of compatible but differently scaled units are
// converted before comparing, so one kilometre compares equal to a thousand
// metres.
func Compare(a, b Quantity[float64]) (int, error) {
	converted, err := b.convertTo(a.unit, "compare")
	if err != nil {
		return 0, err
	}
	switch {
	case a.value.nominal < converted.value.nominal:
		return -1, nil
	case a.value.nominal > converted.value.nominal:
		return 1, nil
	}
	return 0, nil
}

// Overlaps is the uncertainty-aware comparison: it reports whether the two
// real quantities agree within k combined standard uncertainties, i.e.
// whether
//
//	|a - b| ≤ k · sqrt(var(a) + var(b) - 2·cov(a, b))
//
// after converting b into a's unit. The coverage factor k is chosen by the
// caller (k = 2 approximates a 95% confidence interval under the usual
// Gaussian assumption). The covariance term means two quantities derived from
// the same measurement are compared against their actual joint spread, not
// naive quadrature.
//
// It returns an error wrapping ErrIncompatibleUnits if the operands differ
// dimensionally.
func Overlaps(a, b Quantity[float64], k float64) (bool, error) {
	converted, err := b.convertTo(a.unit, "overlaps")
	if err != nil {
		return false, err
	}
	difference := math.Abs(a.value.nominal - converted.value.nominal)
	spread := a.Variance() + converted.Variance() - 2*a.value.Covariance(converted.value)
	// The radicand is non-negative in exact arithmetic, but rounding in the
	// covariance sum can leave it a hair below zero for strongly correlated
	// operands.
	return difference <= k*math.Sqrt(math.Max(spread, 0)), nil
}

//=============================================================================
// Projections of complex quantities onto real ones.

// Magnitude reduces a complex quantity to its real magnitude, keeping the
// unit. It returns an error wrapping ErrDomain at a zero nominal value.
func Magnitude(q Quantity[complex128]) (Quantity[float64], error) {
	v, err := Abs(q.value)
	if err != nil {
		measureOperationFailure("magnitude")
		return Quantity[float64]{}, err
	}
	return Quantity[float64]{value: v, unit: q.unit}, nil
}

// PhaseAngle reduces a complex quantity to its phase angle in radians. The
// result is dimensionless: an angle carries no SI dimension, and a positive
// unit scale cannot rotate a phasor.
//
// It returns an error wrapping ErrDomain at a zero nominal value.
func PhaseAngle(q Quantity[complex128]) (Quantity[float64], error) {
	v, err := Phase(q.value)
	if err != nil {
		measureOperationFailure("phase")
		return Quantity[float64]{}, err
	}
	return Quantity[float64]{value: v, unit: Dimensionless}, nil
}

// RealPart projects a complex quantity onto its real part, keeping the unit.
func RealPart(q Quantity[complex128]) Quantity[float64] {
	return Quantity[float64]{value: Real(q.value), unit: q.unit}
}

// ImagPart projects a complex quantity onto its imaginary part, keeping the
// unit.
func ImagPart(q Quantity[complex128]) Quantity[float64] {
	return Quantity[float64]{value: Imag(q.value), unit: q.unit}
}

// ComplexQuantity combines two correlated real quantities into a complex one
// under the real operand's unit; the imaginary operand is converted first,
// per the same left-operand-wins policy as Add.
//
// It returns an error wrapping ErrIncompatibleUnits if the operands differ
// dimensionally.
func ComplexQuantity(re, im Quantity[float64]) (Quantity[complex128], error) {
	converted, err := im.convertTo(re.unit, "complex")
	if err != nil {
		return Quantity[complex128]{}, err
	}
	return Quantity[complex128]{value: Complex(re.value, converted.value), unit: re.unit}, nil
}
