package domain

import "context"

// UnitOfWork represents a unit of work for managing repositories and
// transactions. The backfill job uses it to claim and embed a batch of
// items atomically.
type UnitOfWork interface {
	// Item returns the repository for marketplace items.
	Item() ItemRepository
	// Favorite returns the repository for user favorites.
	Favorite() FavoriteRepository
	// Execute runs a function within the context of a unit of work.
	Execute(ctx context.Context, fn func(uow UnitOfWork) error) error
}
