package uncertain

import "errors"

// The package reports failures by wrapping one of the sentinel errors below,
// so callers can classify any returned error with errors.Is while still
// receiving operation-specific context in the message.
//
// All of these failures are deterministic: retrying the same operation with
// the same operands fails the same way. None of them should be swallowed and
// replaced by a default value - doing so would silently corrupt the
// uncertainty and unit bookkeeping of every value derived afterwards.
var (
	// ErrInvalidUncertainty reports a negative (or NaN) variance or standard
	// deviation supplied at construction. Uncertainty is a second moment and
	// has no meaningful negative value.
	ErrInvalidUncertainty = errors.New("invalid uncertainty")

	// ErrIncompatibleUnits reports an additive operation, comparison, or
	// conversion between quantities whose dimensional exponent vectors differ.
	// Differing scales are not an incompatibility - they are a conversion
	// factor - so metres add to kilometres but never to seconds.
	ErrIncompatibleUnits = errors.New("incompatible units")

	// ErrDivisionByZero reports a division whose divisor has a nominal value
	// of exactly zero. First-order propagation linearises around the nominal
	// value and no linearisation exists at the pole.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrDomain reports an operation whose derivative is undefined over the
	// operand's domain, such as a non-integer power of a negative real value,
	// or the magnitude of a complex value at the origin.
	ErrDomain = errors.New("domain error")

	// ErrFractionalDimension reports a unit operation that would require a
	// dimensional exponent outside the rational representation, such as a
	// zeroth root or a rational with a zero denominator.
	ErrFractionalDimension = errors.New("fractional dimension")
)
