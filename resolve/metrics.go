package resolve

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "github.com/damedic/odata-toolbox-go/resolve"

const (
	resultHit     = "hit"
	resultMiss    = "miss"
	resultUnknown = "unknown"
)

// resolverMetrics holds the instruments of a resolver.
type resolverMetrics struct {
	resolutions metric.Int64Counter
	diagnostics metric.Int64Counter
}

// newResolverMetrics creates the instruments. Instruments that cannot be created fall
// back to no-op instruments.
func newResolverMetrics(meterProvider metric.MeterProvider) *resolverMetrics {
	meter := meterProvider.Meter(meterName)
	fallback := noop.Meter{}

	resolutions, err := meter.Int64Counter(
		"odata_resolutions_total",
		metric.WithDescription("Total number of annotation resolutions"),
		metric.WithUnit("{resolution}"),
	)
	if err != nil {
		resolutions, _ = fallback.Int64Counter("odata_resolutions_total")
	}

	diagnostics, err := meter.Int64Counter(
		"odata_annotation_diagnostics_total",
		metric.WithDescription("Total number of annotation values that could not be decoded"),
		metric.WithUnit("{diagnostic}"),
	)
	if err != nil {
		diagnostics, _ = fallback.Int64Counter("odata_annotation_diagnostics_total")
	}

	return &resolverMetrics{resolutions: resolutions, diagnostics: diagnostics}
}

func (m *resolverMetrics) recordResolution(term, result string) {
	m.resolutions.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("term", term),
		attribute.String("result", result),
	))
}

func (m *resolverMetrics) recordDiagnostic(term string) {
	m.diagnostics.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("term", term),
	))
}
