package domain

import "context"

// SemanticEncoder turns free text into an embedding vector. Encoding is
// deterministic for a fixed input and never fails: text with no usable
// tokens encodes to the zero vector.
type SemanticEncoder interface {
	// Encode runs the full pipeline: optional enrichment, tokenization,
	// feature hashing and L2 normalization. Items and queries go through
	// the identical pipeline so their vectors are comparable.
	Encode(ctx context.Context, text string) Vector

	// Dim returns the configured embedding dimension.
	Dim() int
}

// TextEnricher expands raw listing text with extracted features before
// vectorization. Enrichment is strictly additive and fail-open: on any
// failure the original text is returned unchanged, and a disabled enricher
// is the identity function.
type TextEnricher interface {
	Enrich(ctx context.Context, text string) string
}
