package uncertain

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var meter = otel.Meter("github.com/go-uncertain/go-uncertain")

const (
	// operationName is the attribute key used to associate each failure record
	// with the quantity operation that produced it. This enables both collective
	// examination of all failed operations and individual analysis per
	// operation kind (add, div, convert, ...).
	operationName = "operation"
)

var (
	// componentsAllocated measures the number of elementary uncertainty
	// components allocated since process start. Every independent measurement
	// allocates exactly one component, so this counter approximates the number
	// of distinct measurements fed into the process.
	componentsAllocated metric.Int64Counter
	// operationFailures measures the number of quantity operations rejected for
	// incompatible units, division by zero, or an undefined derivative.
	//
	// Each record is associated with the operationName.
	operationFailures metric.Int64Counter
)

func init() {
	var err error
	componentsAllocated, err = meter.Int64Counter(
		"uncertain.components.allocated",
		metric.WithDescription("The number of elementary uncertainty components allocated since process start."),
	)
	if err != nil {
		panic("uncertain: failed to init 'uncertain.components.allocated' instrument")
	}

	operationFailures, err = meter.Int64Counter(
		"uncertain.operations.failures",
		metric.WithDescription("The number of quantity operations rejected for incompatible units, division by zero, or an undefined derivative."),
	)
	if err != nil {
		panic("uncertain: failed to init 'uncertain.operations.failures' instrument")
	}
}

// measureComponentAllocation counts a single component allocation.
//
// The core operations are pure computations without a context parameter, so
// records are made against the background context; metric exporters do not
// rely on the recording context for anything beyond propagation.
func measureComponentAllocation() {
	componentsAllocated.Add(context.Background(), 1)
}

// measureOperationFailure counts a single rejected quantity operation,
// labelled with the operation kind.
//
// According to [metric] documentation, [metric.WithAttributeSet] should be
// used instead of [metric.WithAttributes] for performance optimization.
func measureOperationFailure(operation string) {
	attrs := attribute.NewSet(attribute.String(operationName, operation))
	operationFailures.Add(context.Background(), 1, metric.WithAttributeSet(attrs))
}
