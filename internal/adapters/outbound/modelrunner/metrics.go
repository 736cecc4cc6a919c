package modelrunner

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter           = otel.Meter("modelrunner")
	EnrichmentCalls metric.Int64Counter
)

func init() {
	var err error
	EnrichmentCalls, err = meter.Int64Counter(
		"listing_enrichment_calls_total",
		metric.WithDescription("Total listing enrichment calls by outcome"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordEnrichmentSuccess records an enrichment call that produced features.
func RecordEnrichmentSuccess(ctx context.Context) {
	EnrichmentCalls.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", "enriched"),
	))
}

// RecordEnrichmentFailure records an enrichment call that fell back to the
// raw listing text.
func RecordEnrichmentFailure(ctx context.Context) {
	EnrichmentCalls.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", "fallback"),
	))
}
