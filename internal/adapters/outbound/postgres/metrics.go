package postgres

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter           = otel.Meter("postgres")
	SearchFallbacks metric.Int64Counter
)

func init() {
	var err error
	SearchFallbacks, err = meter.Int64Counter(
		"vector_search_fallbacks_total",
		metric.WithDescription("Total vector searches served by the in-memory fallback path"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordSearchFallback records a search that bypassed the native vector index.
func RecordSearchFallback(ctx context.Context) {
	SearchFallbacks.Add(ctx, 1)
}
