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

// SemanticSearch defines the interface for the SemanticSearch use case.
type SemanticSearch interface {
	Query(ctx context.Context, text string, campusID *uuid.UUID, limit int, offset int) ([]domain.SearchResult, error)
}

// SemanticSearchImpl is the implementation of the SemanticSearch use case.
// The query text goes through the same pipeline as listing text, then runs
// a nearest-neighbor query over active items. Infrastructure failures
// degrade to an empty result instead of surfacing to the caller.
type SemanticSearchImpl struct {
	searcher domain.ItemSearcher
	encoder  domain.SemanticEncoder
	logger   *log.Logger
}

// NewSemanticSearchImpl creates a new instance of SemanticSearchImpl.
func NewSemanticSearchImpl(searcher domain.ItemSearcher, encoder domain.SemanticEncoder, logger *log.Logger) SemanticSearchImpl {
	return SemanticSearchImpl{
		searcher: searcher,
		encoder:  encoder,
		logger:   logger,
	}
}

// Query runs a semantic search over active items.
func (ss SemanticSearchImpl) Query(ctx context.Context, text string, campusID *uuid.UUID, limit int, offset int) ([]domain.SearchResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	query := domain.SearchQuery{
		CampusID: campusID,
		Status:   common.Ptr(domain.ItemStatus_ACTIVE),
		Limit:    limit,
		Offset:   offset,
	}
	if err := query.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	query.Vector = ss.encoder.Encode(spanCtx, text)
	if query.Vector.IsZero() {
		// Nothing to rank against; a zero query matches nothing.
		return []domain.SearchResult{}, nil
	}

	results, err := ss.searcher.Search(spanCtx, query)
	if telemetry.RecordErrorAndStatus(span, err) {
		ss.logger.Printf("SemanticSearch: degrading to empty result: %v", err)
		RecordDegradedSearch(spanCtx, "search")
		return []domain.SearchResult{}, nil
	}

	return results, nil
}

// InitSemanticSearch initializes the SemanticSearch use case and registers it in the dependency container.
type InitSemanticSearch struct {
	Searcher domain.ItemSearcher    `resolve:""`
	Encoder  domain.SemanticEncoder `resolve:""`
	Logger   *log.Logger            `resolve:""`
}

// Initialize initializes the SemanticSearchImpl use case and registers it in the dependency container.
func (iss InitSemanticSearch) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[SemanticSearch](NewSemanticSearchImpl(iss.Searcher, iss.Encoder, iss.Logger))
	return ctx, nil
}
