package asn1types

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var meter = otel.Meter("github.com/go-asn1types/go-asn1types")

// ---- instance.go ----

const (
	// resolutionOutcome is the attribute key used to associate each registry
	// resolution with its outcome ("hit" or "miss"). This enables examining
	// the miss rate on its own: a rising miss count means peers are sending
	// InstanceOf values naming types this process never registered.
	resolutionOutcome = "outcome"
)

var (
	// registryResolutions measures the number of TypeRegistry resolutions.
	//
	// Each record is associated with the resolutionOutcome.
	registryResolutions metric.Int64Counter
)

func init() {
	var err error
	registryResolutions, err = meter.Int64Counter(
		"instanceof.registry.resolutions",
		metric.WithDescription("The number of object-identifier resolutions against a type registry, by outcome."),
	)
	if err != nil {
		panic("asn1types: failed to init 'instanceof.registry.resolutions' instrument")
	}
}

// measureResolution counts a single registry resolution, labelled hit or
// miss. Tag resolution itself is a pure constant lookup with nothing to
// measure; registry consultation is the one place this layer touches
// process-wide state on behalf of a decode path, and misses there are what
// an operator needs to see.
//
// According to [metric] documentation, [metric.WithAttributeSet] should be
// used instead of [metric.WithAttributes] for performance optimization.
func measureResolution(hit bool) {
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	attrs := attribute.NewSet(attribute.String(resolutionOutcome, outcome))
	// Resolution is a plain map lookup with no caller context to propagate,
	// so the records carry the background context.
	registryResolutions.Add(context.Background(), 1, metric.WithAttributeSet(attrs))
}
