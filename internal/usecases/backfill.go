package usecases

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/unimarket/semantic-search/internal/domain"
	"github.com/unimarket/semantic-search/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// BackfillEmbeddings defines the interface for the BackfillEmbeddings use case.
type BackfillEmbeddings interface {
	Execute(ctx context.Context, batchSize int) (int, error)
}

// BackfillEmbeddingsImpl is the implementation of the BackfillEmbeddings use
// case. One run claims a batch of active items without embeddings inside a
// transaction (the row locks keep concurrent runs on disjoint batches),
// embeds them sequentially and reports how many were processed. Re-running
// is always safe.
type BackfillEmbeddingsImpl struct {
	uow     domain.UnitOfWork
	encoder domain.SemanticEncoder
	logger  *log.Logger
}

// NewBackfillEmbeddingsImpl creates a new instance of BackfillEmbeddingsImpl.
func NewBackfillEmbeddingsImpl(uow domain.UnitOfWork, encoder domain.SemanticEncoder, logger *log.Logger) BackfillEmbeddingsImpl {
	return BackfillEmbeddingsImpl{
		uow:     uow,
		encoder: encoder,
		logger:  logger,
	}
}

// Execute embeds up to batchSize items that have no stored embedding.
func (be BackfillEmbeddingsImpl) Execute(ctx context.Context, batchSize int) (int, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("batch_size", batchSize),
	))
	defer span.End()

	if batchSize <= 0 {
		err := domain.NewValidationErr("batch_size must be greater than 0")
		telemetry.RecordErrorAndStatus(span, err)
		return 0, err
	}

	processed := 0
	err := be.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		items, err := uow.Item().ListMissingEmbeddings(spanCtx, batchSize)
		if err != nil {
			return err
		}

		for _, item := range items {
			vec := be.encoder.Encode(spanCtx, item.EmbeddingInput())
			if err := uow.Item().SetEmbedding(spanCtx, item.ID, vec); err != nil {
				return err
			}
			RecordEmbeddingGenerated(spanCtx)
			processed++
		}
		return nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}

	if processed > 0 {
		be.logger.Printf("BackfillEmbeddings: embedded %d items", processed)
	}
	return processed, nil
}

// InitBackfillEmbeddings initializes the BackfillEmbeddings use case and registers it in the dependency container.
type InitBackfillEmbeddings struct {
	Uow     domain.UnitOfWork      `resolve:""`
	Encoder domain.SemanticEncoder `resolve:""`
	Logger  *log.Logger            `resolve:""`
}

// Initialize initializes the BackfillEmbeddingsImpl use case and registers it in the dependency container.
func (ibe InitBackfillEmbeddings) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[BackfillEmbeddings](NewBackfillEmbeddingsImpl(ibe.Uow, ibe.Encoder, ibe.Logger))
	return ctx, nil
}
