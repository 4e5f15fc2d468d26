package uncertain

// sensitivities is a sparse map from a Component to the partial derivative of
// a derived value with respect to that component's underlying perturbation.
// A component absent from the map has coefficient zero; a map whose
// coefficients are all zero describes an exact value.
//
// The Component key carries its own variance, so variance and covariance are
// computable from the map alone, without an external registry lookup.
//
// Maps are never shared between values and never mutated after construction:
// every operation below allocates a fresh map, which keeps each Value
// independently reusable as an operand.
type sensitivities[S Scalar] map[Component]S

// singleton returns a map holding the given component with the given
// coefficient.
func singleton[S Scalar](c Component, coefficient S) sensitivities[S] {
	return sensitivities[S]{c: coefficient}
}

// scale returns a copy of m with every coefficient multiplied by k. It is the
// propagation rule for multiplying a value by an exact scalar, and the
// linearisation primitive for everything else.
func (m sensitivities[S]) scale(k S) sensitivities[S] {
	scaled := make(sensitivities[S], len(m))
	for c, coefficient := range m {
		scaled[c] = coefficient * k
	}
	return scaled
}

// add returns the per-component sum of m and other. Components present in
// only one operand pass through unchanged; components shared by both sum
// their coefficients, which is exactly where correlation bookkeeping happens.
func (m sensitivities[S]) add(other sensitivities[S]) sensitivities[S] {
	sum := make(sensitivities[S], len(m)+len(other))
	for c, coefficient := range m {
		sum[c] = coefficient
	}
	for c, coefficient := range other {
		sum[c] += coefficient
	}
	return sum
}

// variance returns the first-order variance of the value described by m:
//
//	Σ |coefficient(c)|² · variance(c)
func (m sensitivities[S]) variance() float64 {
	var total float64
	for c, coefficient := range m {
		total += abs2(coefficient) * c.variance
	}
	return total
}

// covariance returns the (Hermitian, for complex scalars) covariance between
// the values described by m and other:
//
//	Σ coefficient(c) · conj(other.coefficient(c)) · variance(c)
//
// The sum ranges over the components present in both maps. Values built from
// disjoint component sets are therefore exactly zero-covariant without any
// special casing, and values sharing an origin component are correlated in
// proportion to their sensitivities to it.
func (m sensitivities[S]) covariance(other sensitivities[S]) S {
	// Iterate over the smaller map; the sum only ever covers the intersection.
	small, large := m, other
	swapped := false
	if len(large) < len(small) {
		small, large = large, small
		swapped = true
	}

	var total S
	for c, coefficient := range small {
		counterpart, ok := large[c]
		if !ok {
			continue
		}
		if swapped {
			coefficient, counterpart = counterpart, coefficient
		}
		total += coefficient * conjugate(counterpart) * fromReal[S](c.variance)
	}
	return total
}
