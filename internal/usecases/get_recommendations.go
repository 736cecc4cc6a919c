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

// GetRecommendations defines the interface for the GetRecommendations use case.
type GetRecommendations interface {
	Execute(ctx context.Context, userID uuid.UUID, limit int) ([]domain.SearchResult, error)
}

// GetRecommendationsImpl is the implementation of the GetRecommendations use
// case. The query vector is the renormalized centroid of the user's
// favorite-item embeddings; the favorites themselves are excluded from the
// result. Users without usable favorites get an empty result.
type GetRecommendationsImpl struct {
	favoriteRepo domain.FavoriteRepository
	searcher     domain.ItemSearcher
	logger       *log.Logger
}

// NewGetRecommendationsImpl creates a new instance of GetRecommendationsImpl.
func NewGetRecommendationsImpl(favoriteRepo domain.FavoriteRepository, searcher domain.ItemSearcher, logger *log.Logger) GetRecommendationsImpl {
	return GetRecommendationsImpl{
		favoriteRepo: favoriteRepo,
		searcher:     searcher,
		logger:       logger,
	}
}

// Execute returns recommended items for the given user.
func (gr GetRecommendationsImpl) Execute(ctx context.Context, userID uuid.UUID, limit int) ([]domain.SearchResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if limit <= 0 {
		err := domain.NewValidationErr("limit must be greater than 0")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	favorites, err := gr.favoriteRepo.ListFavoriteEmbeddings(spanCtx, userID)
	if telemetry.RecordErrorAndStatus(span, err) {
		gr.logger.Printf("GetRecommendations: degrading to empty result: %v", err)
		RecordDegradedSearch(spanCtx, "recommendations")
		return []domain.SearchResult{}, nil
	}
	if len(favorites) == 0 {
		return []domain.SearchResult{}, nil
	}

	vectors := make([]domain.Vector, 0, len(favorites))
	excludeIDs := make([]uuid.UUID, 0, len(favorites))
	for _, fav := range favorites {
		vectors = append(vectors, fav.Embedding)
		excludeIDs = append(excludeIDs, fav.ItemID)
	}

	centroid := domain.Centroid(vectors)
	if centroid.IsZero() {
		return []domain.SearchResult{}, nil
	}

	results, err := gr.searcher.Search(spanCtx, domain.SearchQuery{
		Vector:     centroid,
		Status:     common.Ptr(domain.ItemStatus_ACTIVE),
		ExcludeIDs: excludeIDs,
		Limit:      limit,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		gr.logger.Printf("GetRecommendations: degrading to empty result: %v", err)
		RecordDegradedSearch(spanCtx, "recommendations")
		return []domain.SearchResult{}, nil
	}

	return results, nil
}

// InitGetRecommendations initializes the GetRecommendations use case and registers it in the dependency container.
type InitGetRecommendations struct {
	FavoriteRepo domain.FavoriteRepository `resolve:""`
	Searcher     domain.ItemSearcher       `resolve:""`
	Logger       *log.Logger               `resolve:""`
}

// Initialize initializes the GetRecommendationsImpl use case and registers it in the dependency container.
func (igr InitGetRecommendations) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetRecommendations](NewGetRecommendationsImpl(igr.FavoriteRepo, igr.Searcher, igr.Logger))
	return ctx, nil
}
