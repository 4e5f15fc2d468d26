/*
Package quantitytest provides approximate-equality helpers for tests that
check propagated uncertainties against analytically derived expectations.

First-order propagation is exact for affine operations but floating-point
arithmetic is not, so expectations are compared within a small absolute
tolerance rather than bit-for-bit.

This package is intended to be used in tests only. It is not suitable for
production use.
*/
package quantitytest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/go-uncertain/go-uncertain"
)

// Tolerance is the default absolute tolerance for comparing propagated
// results against analytic expectations.
const Tolerance = 1e-9

// Close fails the test if got differs from want by more than the tolerance.
// The what argument names the compared figure in the failure message.
func Close(t *testing.T, what string, got, want, tolerance float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, tolerance)); diff != "" {
		t.Errorf("%s mismatch (-want +got):\n%s", what, diff)
	}
}

// SameQuantity fails the test unless got and want carry exactly the same unit
// and agree on nominal value and standard deviation within the tolerance.
func SameQuantity(t *testing.T, what string, got, want uncertain.Quantity[float64], tolerance float64) {
	t.Helper()
	if got.Unit() != want.Unit() {
		t.Errorf("%s unit = %v, want %v", what, got.Unit(), want.Unit())
	}
	Close(t, what+" nominal", got.Nominal(), want.Nominal(), tolerance)
	Close(t, what+" standard deviation", got.StandardDeviation(), want.StandardDeviation(), tolerance)
}
