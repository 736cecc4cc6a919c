package domain

import (
	"context"

	"github.com/google/uuid"
)

// FavoriteEmbedding is the stored embedding of an item a user favorited.
type FavoriteEmbedding struct {
	ItemID    uuid.UUID
	Embedding Vector
}

// FavoriteRepository exposes the favorites relation, consumed only to
// gather reference vectors for recommendations.
type FavoriteRepository interface {
	// ListFavoriteEmbeddings returns the embeddings of the user's favorited
	// items. Favorites whose items have no embedding yet are skipped.
	ListFavoriteEmbeddings(ctx context.Context, userID uuid.UUID) ([]FavoriteEmbedding, error)
}
