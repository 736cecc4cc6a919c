package usecases

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter               = otel.Meter("usecases")
	EmbeddingsGenerated metric.Int64Counter
	DegradedSearches    metric.Int64Counter
)

func init() {
	var err error
	EmbeddingsGenerated, err = meter.Int64Counter(
		"embeddings_generated_total",
		metric.WithDescription("Total item embeddings generated"),
	)
	if err != nil {
		panic(err)
	}

	DegradedSearches, err = meter.Int64Counter(
		"degraded_searches_total",
		metric.WithDescription("Total search operations that degraded to an empty result"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordEmbeddingGenerated records one generated item embedding.
func RecordEmbeddingGenerated(ctx context.Context) {
	EmbeddingsGenerated.Add(ctx, 1)
}

// RecordDegradedSearch records a search operation that returned empty
// because of an infrastructure failure.
func RecordDegradedSearch(ctx context.Context, operation string) {
	DegradedSearches.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
	))
}
