package vectorize

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/unimarket/semantic-search/internal/domain"
	"github.com/unimarket/semantic-search/internal/telemetry"
)

// Encoder is the full text-to-vector pipeline: optional enrichment,
// tokenization, feature hashing, L2 normalization. It implements
// domain.SemanticEncoder.
type Encoder struct {
	enricher domain.TextEnricher
	hasher   FeatureHasher
}

// NewEncoder creates an Encoder with the given enricher and dimension.
func NewEncoder(enricher domain.TextEnricher, dim int) Encoder {
	return Encoder{
		enricher: enricher,
		hasher:   NewFeatureHasher(dim),
	}
}

// Encode turns text into an embedding vector. Enrichment is fail-open, so
// Encode always succeeds; text with no usable tokens encodes to the zero
// vector.
func (e Encoder) Encode(ctx context.Context, text string) domain.Vector {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	enriched := e.enricher.Enrich(spanCtx, text)
	return e.hasher.Vectorize(Tokenize(enriched))
}

// Dim returns the configured embedding dimension.
func (e Encoder) Dim() int {
	return e.hasher.Dim()
}

// InitEncoder initializes the SemanticEncoder and registers it in the
// dependency container.
type InitEncoder struct {
	Enricher domain.TextEnricher `resolve:""`
	Dim      int                 `config:"EMBEDDING_DIM" default:"384"`
}

// Initialize registers the Encoder in the dependency container.
func (ie InitEncoder) Initialize(ctx context.Context) (context.Context, error) {
	if ie.Dim <= 0 {
		return ctx, domain.NewConfigurationErr("EMBEDDING_DIM must be greater than 0")
	}
	depend.Register[domain.SemanticEncoder](NewEncoder(ie.Enricher, ie.Dim))
	return ctx, nil
}
