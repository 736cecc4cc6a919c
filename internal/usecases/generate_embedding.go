package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/unimarket/semantic-search/internal/domain"
	"github.com/unimarket/semantic-search/internal/telemetry"
)

// GenerateItemEmbedding defines the interface for the GenerateItemEmbedding use case.
type GenerateItemEmbedding interface {
	Execute(ctx context.Context, itemID uuid.UUID) (domain.Vector, error)
}

// GenerateItemEmbeddingImpl is the implementation of the GenerateItemEmbedding use case.
// It runs the full pipeline for one item: build the listing text, encode it
// and store the resulting vector. Last write wins.
type GenerateItemEmbeddingImpl struct {
	itemRepo domain.ItemRepository
	encoder  domain.SemanticEncoder
}

// NewGenerateItemEmbeddingImpl creates a new instance of GenerateItemEmbeddingImpl.
func NewGenerateItemEmbeddingImpl(itemRepo domain.ItemRepository, encoder domain.SemanticEncoder) GenerateItemEmbeddingImpl {
	return GenerateItemEmbeddingImpl{
		itemRepo: itemRepo,
		encoder:  encoder,
	}
}

// Execute generates and stores the embedding for the given item.
func (gie GenerateItemEmbeddingImpl) Execute(ctx context.Context, itemID uuid.UUID) (domain.Vector, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	item, found, err := gie.itemRepo.GetItem(spanCtx, itemID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	if !found {
		err := domain.NewNotFoundErr("item not found")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	vec := gie.encoder.Encode(spanCtx, item.EmbeddingInput())

	if err := gie.itemRepo.SetEmbedding(spanCtx, itemID, vec); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	RecordEmbeddingGenerated(spanCtx)
	return vec, nil
}

// InitGenerateItemEmbedding initializes the GenerateItemEmbedding use case and registers it in the dependency container.
type InitGenerateItemEmbedding struct {
	ItemRepo domain.ItemRepository  `resolve:""`
	Encoder  domain.SemanticEncoder `resolve:""`
}

// Initialize initializes the GenerateItemEmbeddingImpl use case and registers it in the dependency container.
func (ig InitGenerateItemEmbedding) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GenerateItemEmbedding](NewGenerateItemEmbeddingImpl(ig.ItemRepo, ig.Encoder))
	return ctx, nil
}
