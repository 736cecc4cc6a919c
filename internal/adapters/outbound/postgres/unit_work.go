package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/unimarket/semantic-search/internal/domain"
)

// UnitOfWork implements the domain.UnitOfWork interface for Postgres.
type UnitOfWork struct {
	db *sql.DB
	tx *sql.Tx
	tp domain.CurrentTimeProvider
}

// NewUnitOfWork creates a new instance of UnitOfWork.
func NewUnitOfWork(db *sql.DB, tp domain.CurrentTimeProvider) *UnitOfWork {
	return &UnitOfWork{
		db: db,
		tp: tp,
	}
}

// Execute runs the provided function within a database transaction.
func (u *UnitOfWork) Execute(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	uow := &UnitOfWork{
		db: u.db,
		tx: tx,
		tp: u.tp,
	}

	err = fn(uow)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction rollback error: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}

// Item returns the ItemRepository for this UnitOfWork.
func (u *UnitOfWork) Item() domain.ItemRepository {
	return NewItemRepository(u.getBaseRunner(), u.tp)
}

// Favorite returns the FavoriteRepository for this UnitOfWork.
func (u *UnitOfWork) Favorite() domain.FavoriteRepository {
	return NewFavoriteRepository(u.getBaseRunner())
}

// getBaseRunner returns the appropriate BaseRunner (transaction or DB) for the UnitOfWork.
func (u *UnitOfWork) getBaseRunner() squirrel.BaseRunner {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// InitUnitOfWork is responsible for initializing the UnitOfWork dependency.
type InitUnitOfWork struct {
	DB   *sql.DB                    `resolve:""`
	Time domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the UnitOfWork in the dependency container.
func (iuw InitUnitOfWork) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.UnitOfWork](NewUnitOfWork(iuw.DB, iuw.Time))
	return ctx, nil
}
