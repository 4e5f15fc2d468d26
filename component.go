package uncertain

import (
	"fmt"
	"math"
	"sync/atomic"
)

// A ComponentID identifies a single elementary source of uncertainty across
// the lifetime of the process. IDs are allocated from a monotonic counter and
// are never reused.
//
// It is defined as its own type to provide a compile-time guarantee against
// confusing component identities with other integral values.
type ComponentID uint64

// componentIDs is the identity-allocation counter - the only shared mutable
// state in this package. Components may therefore be created concurrently
// from multiple goroutines.
var componentIDs atomic.Uint64

// A Component represents an independent elementary source of uncertainty: a
// unique identity paired with the variance of the underlying (zero-mean)
// perturbation. It is an immutable value.
//
// Two components constructed with the same variance remain distinct. That
// distinction is the entire point: sensitivity maps recognise shared origin
// (same identity appears in both maps) versus coincidentally equal
// uncertainty (different identities, zero covariance).
type Component struct {
	id       ComponentID
	variance float64
}

// NewComponent allocates a fresh Component with the given variance.
//
// It returns an error wrapping ErrInvalidUncertainty if the variance is
// negative or NaN.
func NewComponent(variance float64) (Component, error) {
	if variance < 0 || math.IsNaN(variance) {
		return Component{}, fmt.Errorf("%w: variance %v", ErrInvalidUncertainty, variance)
	}
	measureComponentAllocation()
	return Component{id: ComponentID(componentIDs.Add(1)), variance: variance}, nil
}

// ID returns the component's unique identity.
func (c Component) ID() ComponentID { return c.id }

// Variance returns the variance of the component's underlying perturbation.
func (c Component) Variance() float64 { return c.variance }

// StandardDeviation returns the square root of the component's variance.
func (c Component) StandardDeviation() float64 { return math.Sqrt(c.variance) }

func (c Component) String() string {
	return fmt.Sprintf("component(%d ±%v)", c.id, c.StandardDeviation())
}
