package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/unimarket/semantic-search/internal/common"
	"github.com/unimarket/semantic-search/internal/domain"
)

type fixedTimeProvider struct {
	t time.Time
}

func (f fixedTimeProvider) Now() time.Time { return f.t }

var testLogger = log.New(os.Stdout, "", log.LstdFlags)

func TestItemRepository_GetItem(t *testing.T) {
	fixedUUID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	fixedCampus := uuid.MustParse("223e4567-e89b-12d3-a456-426614174001")
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	item := domain.Item{
		ID:          fixedUUID,
		CampusID:    fixedCampus,
		Title:       "MacBook Pro",
		Description: "Lightly used laptop",
		Price:       common.Ptr(899.99),
		Status:      domain.ItemStatus_ACTIVE,
		Embedding:   domain.Vector{0, 1},
		CreatedAt:   fixedTime,
		UpdatedAt:   fixedTime,
	}

	tests := map[string]struct {
		setExpectations func(mock sqlmock.Sqlmock)
		id              uuid.UUID
		expectedItem    domain.Item
		expectedFound   bool
		expectedErr     bool
	}{
		"success": {
			id: fixedUUID,
			setExpectations: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(itemFields).
					AddRow(
						item.ID,
						item.CampusID,
						item.Title,
						item.Description,
						*item.Price,
						item.Status,
						"[0,1]",
						item.CreatedAt,
						item.UpdatedAt,
					)
				mock.ExpectQuery("SELECT id, campus_id, title, description, price, status, embedding, created_at, updated_at FROM items WHERE id = $1").
					WithArgs(fixedUUID).
					WillReturnRows(rows)
			},
			expectedItem:  item,
			expectedFound: true,
		},
		"missing-embedding-scans-as-nil": {
			id: fixedUUID,
			setExpectations: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(itemFields).
					AddRow(
						item.ID,
						item.CampusID,
						item.Title,
						item.Description,
						*item.Price,
						item.Status,
						nil,
						item.CreatedAt,
						item.UpdatedAt,
					)
				mock.ExpectQuery("SELECT id, campus_id, title, description, price, status, embedding, created_at, updated_at FROM items WHERE id = $1").
					WithArgs(fixedUUID).
					WillReturnRows(rows)
			},
			expectedItem: func() domain.Item {
				i := item
				i.Embedding = nil
				return i
			}(),
			expectedFound: true,
		},
		"not-found": {
			id: fixedUUID,
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT id, campus_id, title, description, price, status, embedding, created_at, updated_at FROM items WHERE id = $1").
					WithArgs(fixedUUID).
					WillReturnError(sql.ErrNoRows)
			},
			expectedItem: domain.Item{},
		},
		"database-error": {
			id: fixedUUID,
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT id, campus_id, title, description, price, status, embedding, created_at, updated_at FROM items WHERE id = $1").
					WithArgs(fixedUUID).
					WillReturnError(errors.New("database error"))
			},
			expectedItem: domain.Item{},
			expectedErr:  true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.setExpectations(mock)

			repo := NewItemRepository(db, fixedTimeProvider{})
			got, gotFound, gotErr := repo.GetItem(context.Background(), tt.id)
			if tt.expectedErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
				assert.Equal(t, tt.expectedFound, gotFound)
				assert.Equal(t, tt.expectedItem, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestItemRepository_SetEmbedding(t *testing.T) {
	fixedUUID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	embedding := domain.Vector{0.6, 0.8}

	tests := map[string]struct {
		setExpectations func(mock sqlmock.Sqlmock)
		expectedErr     error
	}{
		"success": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE items SET embedding = $1, updated_at = $2 WHERE id = $3").
					WithArgs(
						pgvector.NewVector(toFloat32(embedding)),
						fixedTime,
						fixedUUID,
					).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			expectedErr: nil,
		},
		"database-error": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE items SET embedding = $1, updated_at = $2 WHERE id = $3").
					WithArgs(
						pgvector.NewVector(toFloat32(embedding)),
						fixedTime,
						fixedUUID,
					).
					WillReturnError(errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.setExpectations(mock)

			repo := NewItemRepository(db, fixedTimeProvider{t: fixedTime})
			gotErr := repo.SetEmbedding(context.Background(), fixedUUID, embedding)
			assert.Equal(t, tt.expectedErr, gotErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestItemRepository_ListMissingEmbeddings(t *testing.T) {
	fixedUUID1 := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	fixedUUID2 := uuid.MustParse("223e4567-e89b-12d3-a456-426614174001")
	fixedCampus := uuid.MustParse("323e4567-e89b-12d3-a456-426614174002")
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	listSQL := "SELECT id, campus_id, title, description, price, status, embedding, created_at, updated_at " +
		"FROM items WHERE embedding IS NULL AND status = $1 ORDER BY created_at ASC LIMIT 5 FOR UPDATE SKIP LOCKED"

	tests := map[string]struct {
		setExpectations func(mock sqlmock.Sqlmock)
		limit           int
		expectedItems   []domain.Item
		expectedErr     bool
	}{
		"success": {
			limit: 5,
			setExpectations: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(itemFields).
					AddRow(fixedUUID1, fixedCampus, "Desk lamp", "", nil, domain.ItemStatus_ACTIVE, nil, fixedTime, fixedTime).
					AddRow(fixedUUID2, fixedCampus, "Mini fridge", "", nil, domain.ItemStatus_ACTIVE, nil, fixedTime, fixedTime)
				mock.ExpectQuery(listSQL).
					WithArgs(domain.ItemStatus_ACTIVE).
					WillReturnRows(rows)
			},
			expectedItems: []domain.Item{
				{ID: fixedUUID1, CampusID: fixedCampus, Title: "Desk lamp", Status: domain.ItemStatus_ACTIVE, CreatedAt: fixedTime, UpdatedAt: fixedTime},
				{ID: fixedUUID2, CampusID: fixedCampus, Title: "Mini fridge", Status: domain.ItemStatus_ACTIVE, CreatedAt: fixedTime, UpdatedAt: fixedTime},
			},
		},
		"invalid-limit": {
			limit:           0,
			setExpectations: func(mock sqlmock.Sqlmock) {},
			expectedErr:     true,
		},
		"database-error": {
			limit: 5,
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(listSQL).
					WithArgs(domain.ItemStatus_ACTIVE).
					WillReturnError(errors.New("database error"))
			},
			expectedErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.setExpectations(mock)

			repo := NewItemRepository(db, fixedTimeProvider{})
			got, gotErr := repo.ListMissingEmbeddings(context.Background(), tt.limit)
			if tt.expectedErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
				assert.Equal(t, tt.expectedItems, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestItemSearcher_Search(t *testing.T) {
	fixedUUID1 := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	fixedUUID2 := uuid.MustParse("223e4567-e89b-12d3-a456-426614174001")
	fixedCampus := uuid.MustParse("323e4567-e89b-12d3-a456-426614174002")
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	queryVec := domain.Vector{0, 1}
	pgVec := pgvector.NewVector(toFloat32(queryVec))
	activeStatus := domain.ItemStatus_ACTIVE

	nativeFields := append(append([]string{}, itemFields...), "distance")

	tests := map[string]struct {
		setExpectations func(mock sqlmock.Sqlmock)
		query           domain.SearchQuery
		expectedIDs     []uuid.UUID
		expectedScores  []float64
		expectedErr     bool
	}{
		"native-path": {
			query: domain.SearchQuery{Vector: queryVec, Limit: 10},
			setExpectations: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(nativeFields).
					AddRow(fixedUUID1, fixedCampus, "MacBook Pro", "", nil, activeStatus, "[0,1]", fixedTime, fixedTime, 0.0).
					AddRow(fixedUUID2, fixedCampus, "Calculus textbook", "", nil, activeStatus, "[1,0]", fixedTime, fixedTime, 1.0)
				mock.ExpectQuery("SELECT id, campus_id, title, description, price, status, embedding, created_at, updated_at, (embedding <=> $1) AS distance FROM items WHERE embedding IS NOT NULL ORDER BY embedding <=> $2 ASC LIMIT 10 OFFSET 0").
					WithArgs(pgVec, pgVec).
					WillReturnRows(rows)
			},
			expectedIDs:    []uuid.UUID{fixedUUID1, fixedUUID2},
			expectedScores: []float64{1.0, 0.0},
		},
		"native-path-with-filters": {
			query: domain.SearchQuery{
				Vector:     queryVec,
				CampusID:   common.Ptr(fixedCampus),
				Status:     common.Ptr(activeStatus),
				ExcludeIDs: []uuid.UUID{fixedUUID2},
				Limit:      5,
				Offset:     5,
			},
			setExpectations: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(nativeFields).
					AddRow(fixedUUID1, fixedCampus, "MacBook Pro", "", nil, activeStatus, "[0,1]", fixedTime, fixedTime, 0.25)
				mock.ExpectQuery("SELECT id, campus_id, title, description, price, status, embedding, created_at, updated_at, (embedding <=> $1) AS distance FROM items WHERE embedding IS NOT NULL AND campus_id = $2 AND status = $3 AND id NOT IN ($4) ORDER BY embedding <=> $5 ASC LIMIT 5 OFFSET 5").
					WithArgs(pgVec, fixedCampus, activeStatus, fixedUUID2, pgVec).
					WillReturnRows(rows)
			},
			expectedIDs:    []uuid.UUID{fixedUUID1},
			expectedScores: []float64{0.75},
		},
		"fallback-ranks-by-exact-cosine": {
			query: domain.SearchQuery{Vector: queryVec, Limit: 10},
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT id, campus_id, title, description, price, status, embedding, created_at, updated_at, (embedding <=> $1) AS distance FROM items WHERE embedding IS NOT NULL ORDER BY embedding <=> $2 ASC LIMIT 10 OFFSET 0").
					WithArgs(pgVec, pgVec).
					WillReturnError(errors.New("operator does not exist: vector <=> vector"))

				rows := sqlmock.NewRows(itemFields).
					AddRow(fixedUUID2, fixedCampus, "Calculus textbook", "", nil, activeStatus, "[1,0]", fixedTime, fixedTime).
					AddRow(fixedUUID1, fixedCampus, "MacBook Pro", "", nil, activeStatus, "[0,1]", fixedTime, fixedTime)
				mock.ExpectQuery("SELECT id, campus_id, title, description, price, status, embedding, created_at, updated_at FROM items WHERE embedding IS NOT NULL").
					WillReturnRows(rows)
			},
			expectedIDs:    []uuid.UUID{fixedUUID1, fixedUUID2},
			expectedScores: []float64{1.0, 0.0},
		},
		"fallback-breaks-score-ties-by-id": {
			query: domain.SearchQuery{Vector: queryVec, Limit: 10},
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT id, campus_id, title, description, price, status, embedding, created_at, updated_at, (embedding <=> $1) AS distance FROM items WHERE embedding IS NOT NULL ORDER BY embedding <=> $2 ASC LIMIT 10 OFFSET 0").
					WithArgs(pgVec, pgVec).
					WillReturnError(errors.New("index corrupted"))

				rows := sqlmock.NewRows(itemFields).
					AddRow(fixedUUID2, fixedCampus, "Twin item B", "", nil, activeStatus, "[0,1]", fixedTime, fixedTime).
					AddRow(fixedUUID1, fixedCampus, "Twin item A", "", nil, activeStatus, "[0,1]", fixedTime, fixedTime)
				mock.ExpectQuery("SELECT id, campus_id, title, description, price, status, embedding, created_at, updated_at FROM items WHERE embedding IS NOT NULL").
					WillReturnRows(rows)
			},
			expectedIDs:    []uuid.UUID{fixedUUID1, fixedUUID2},
			expectedScores: []float64{1.0, 1.0},
		},
		"both-paths-fail": {
			query: domain.SearchQuery{Vector: queryVec, Limit: 10},
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT id, campus_id, title, description, price, status, embedding, created_at, updated_at, (embedding <=> $1) AS distance FROM items WHERE embedding IS NOT NULL ORDER BY embedding <=> $2 ASC LIMIT 10 OFFSET 0").
					WithArgs(pgVec, pgVec).
					WillReturnError(errors.New("database error"))
				mock.ExpectQuery("SELECT id, campus_id, title, description, price, status, embedding, created_at, updated_at FROM items WHERE embedding IS NOT NULL").
					WillReturnError(errors.New("database error"))
			},
			expectedErr: true,
		},
		"invalid-limit": {
			query:           domain.SearchQuery{Vector: queryVec, Limit: 0},
			setExpectations: func(mock sqlmock.Sqlmock) {},
			expectedErr:     true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.setExpectations(mock)

			searcher := NewItemSearcher(db, testLogger)
			got, gotErr := searcher.Search(context.Background(), tt.query)
			if tt.expectedErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
				gotIDs := make([]uuid.UUID, 0, len(got))
				gotScores := make([]float64, 0, len(got))
				for _, r := range got {
					gotIDs = append(gotIDs, r.Item.ID)
					gotScores = append(gotScores, r.Score)
				}
				assert.Equal(t, tt.expectedIDs, gotIDs)
				assert.InDeltaSlice(t, tt.expectedScores, gotScores, 1e-9)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestItemSearcher_FallbackOffsetBeyondResults(t *testing.T) {
	queryVec := domain.Vector{0, 1}
	pgVec := pgvector.NewVector(toFloat32(queryVec))

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	assert.NoError(t, err)
	defer db.Close() //nolint:errcheck

	mock.ExpectQuery("SELECT id, campus_id, title, description, price, status, embedding, created_at, updated_at, (embedding <=> $1) AS distance FROM items WHERE embedding IS NOT NULL ORDER BY embedding <=> $2 ASC LIMIT 10 OFFSET 50").
		WithArgs(pgVec, pgVec).
		WillReturnError(errors.New("database error"))
	mock.ExpectQuery("SELECT id, campus_id, title, description, price, status, embedding, created_at, updated_at FROM items WHERE embedding IS NOT NULL").
		WillReturnRows(sqlmock.NewRows(itemFields))

	searcher := NewItemSearcher(db, testLogger)
	got, gotErr := searcher.Search(context.Background(), domain.SearchQuery{Vector: queryVec, Limit: 10, Offset: 50})
	assert.NoError(t, gotErr)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInitItemRepository_Initialize(t *testing.T) {
	i := InitItemRepository{
		DB:   &sql.DB{},
		Time: fixedTimeProvider{},
	}

	_, err := i.Initialize(context.Background())
	assert.NoError(t, err)

	_, err = depend.Resolve[domain.ItemRepository]()
	assert.NoError(t, err)
}

func TestInitItemSearcher_Initialize(t *testing.T) {
	i := InitItemSearcher{
		DB:     &sql.DB{},
		Logger: testLogger,
	}

	_, err := i.Initialize(context.Background())
	assert.NoError(t, err)

	_, err = depend.Resolve[domain.ItemSearcher]()
	assert.NoError(t, err)
}
