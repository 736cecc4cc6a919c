package postgres

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/unimarket/semantic-search/internal/domain"
	"github.com/unimarket/semantic-search/internal/telemetry"
)

// FavoriteRepository implements the domain.FavoriteRepository interface using PostgreSQL as the storage backend.
type FavoriteRepository struct {
	sb squirrel.StatementBuilderType
}

// NewFavoriteRepository creates a new instance of FavoriteRepository.
func NewFavoriteRepository(br squirrel.BaseRunner) FavoriteRepository {
	return FavoriteRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// ListFavoriteEmbeddings returns the embeddings of a user's favorited items.
// Favorites whose item has no stored embedding are skipped.
func (fr FavoriteRepository) ListFavoriteEmbeddings(ctx context.Context, userID uuid.UUID) ([]domain.FavoriteEmbedding, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	rows, err := fr.sb.
		Select("f.item_id", "i.embedding").
		From("favorites f").
		Join("items i ON i.id = f.item_id").
		Where(squirrel.Eq{"f.user_id": userID}).
		Where(squirrel.Expr("i.embedding IS NOT NULL")).
		OrderBy("f.created_at ASC").
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var favorites []domain.FavoriteEmbedding
	for rows.Next() {
		var (
			fav domain.FavoriteEmbedding
			emb nullVector
		)
		if err := rows.Scan(&fav.ItemID, &emb); telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		fav.Embedding = emb.Vector
		favorites = append(favorites, fav)
	}

	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return favorites, nil
}

// InitFavoriteRepository is a Symbiont initializer for FavoriteRepository.
type InitFavoriteRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the FavoriteRepository in the dependency container.
func (fr InitFavoriteRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.FavoriteRepository](NewFavoriteRepository(fr.DB))
	return ctx, nil
}
