package domain

import (
	"context"

	"github.com/google/uuid"
)

// SearchResult pairs an item with its cosine similarity to the query
// vector. Score is in [-1, 1]; results are ordered descending by score.
type SearchResult struct {
	Item  Item
	Score float64
}

// SearchQuery describes one nearest-neighbor query against stored
// embeddings.
type SearchQuery struct {
	Vector     Vector
	CampusID   *uuid.UUID
	Status     *ItemStatus
	ExcludeIDs []uuid.UUID
	Limit      int
	Offset     int
}

// Validate checks the paging bounds of the query.
func (q SearchQuery) Validate() error {
	if q.Limit <= 0 {
		return NewValidationErr("limit must be greater than 0")
	}
	if q.Offset < 0 {
		return NewValidationErr("offset cannot be negative")
	}
	return nil
}

// ItemSearcher answers nearest-neighbor queries over stored item
// embeddings. Implementations must never return items without a stored
// embedding and must resolve infrastructure degradation internally (the
// native-index path falls back to an exact in-memory scan).
type ItemSearcher interface {
	Search(ctx context.Context, query SearchQuery) ([]SearchResult, error)
}
