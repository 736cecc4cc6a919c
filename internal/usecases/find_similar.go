package usecases

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/unimarket/semantic-search/internal/common"
	"github.com/unimarket/semantic-search/internal/domain"
	"github.com/unimarket/semantic-search/internal/telemetry"
)

// FindSimilar defines the interface for the FindSimilar use case.
type FindSimilar interface {
	Execute(ctx context.Context, itemID uuid.UUID, limit int) ([]domain.SearchResult, error)
}

// FindSimilarImpl is the implementation of the FindSimilar use case. It uses
// the item's stored embedding as the query vector, excluding the item
// itself. Unknown items and items without an embedding yield an empty
// result, never an error.
type FindSimilarImpl struct {
	itemRepo domain.ItemRepository
	searcher domain.ItemSearcher
	logger   *log.Logger
}

// NewFindSimilarImpl creates a new instance of FindSimilarImpl.
func NewFindSimilarImpl(itemRepo domain.ItemRepository, searcher domain.ItemSearcher, logger *log.Logger) FindSimilarImpl {
	return FindSimilarImpl{
		itemRepo: itemRepo,
		searcher: searcher,
		logger:   logger,
	}
}

// Execute returns items most similar to the given item.
func (fs FindSimilarImpl) Execute(ctx context.Context, itemID uuid.UUID, limit int) ([]domain.SearchResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if limit <= 0 {
		err := domain.NewValidationErr("limit must be greater than 0")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	item, found, err := fs.itemRepo.GetItem(spanCtx, itemID)
	if telemetry.RecordErrorAndStatus(span, err) {
		fs.logger.Printf("FindSimilar: degrading to empty result: %v", err)
		RecordDegradedSearch(spanCtx, "similar")
		return []domain.SearchResult{}, nil
	}
	if !found || !item.HasEmbedding() {
		return []domain.SearchResult{}, nil
	}

	// One extra in case the filter still lets the anchor item through.
	results, err := fs.searcher.Search(spanCtx, domain.SearchQuery{
		Vector:     item.Embedding,
		Status:     common.Ptr(domain.ItemStatus_ACTIVE),
		ExcludeIDs: []uuid.UUID{itemID},
		Limit:      limit + 1,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		fs.logger.Printf("FindSimilar: degrading to empty result: %v", err)
		RecordDegradedSearch(spanCtx, "similar")
		return []domain.SearchResult{}, nil
	}

	filtered := make([]domain.SearchResult, 0, len(results))
	for _, r := range results {
		if r.Item.ID == itemID {
			continue
		}
		filtered = append(filtered, r)
	}
	if len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered, nil
}

// InitFindSimilar initializes the FindSimilar use case and registers it in the dependency container.
type InitFindSimilar struct {
	ItemRepo domain.ItemRepository `resolve:""`
	Searcher domain.ItemSearcher   `resolve:""`
	Logger   *log.Logger           `resolve:""`
}

// Initialize initializes the FindSimilarImpl use case and registers it in the dependency container.
func (ifs InitFindSimilar) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[FindSimilar](NewFindSimilarImpl(ifs.ItemRepo, ifs.Searcher, ifs.Logger))
	return ctx, nil
}
