// Package uncertain provides a library for computing with physical quantities
// that carry measurement uncertainty. A quantity pairs a numeric value (real
// or complex) with a physical unit, and ordinary arithmetic over quantities
// propagates both the numeric uncertainty and the derived unit.
//
// Uncertainty propagation follows the GUM-tree pattern: every independent
// measurement allocates a unique Component carrying its variance, and every
// derived value keeps a sparse map of sensitivities (first-order partial
// derivatives) to the components it transitively depends on. Variance,
// standard deviation, and the covariance between any two derived values fall
// out of that bookkeeping - including the correlations induced by reusing the
// same measurement in several operands, which naive quadrature gets wrong.
//
// Units are dimensional-exponent vectors over the seven SI base dimensions,
// with rational exponents (so that roots of units remain representable) and a
// scale factor relative to the coherent SI unit. Additive operations require
// equal exponent vectors and fail otherwise; multiplicative operations derive
// the result unit by exponent arithmetic.
//
// All types in this package are immutable values: every operation returns a
// new instance and operands are never modified, so quantities may be shared
// freely across goroutines without synchronisation.
package uncertain
