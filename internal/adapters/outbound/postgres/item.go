package postgres

import (
	"context"
	"database/sql"
	"log"
	"sort"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/unimarket/semantic-search/internal/common"
	"github.com/unimarket/semantic-search/internal/domain"
	"github.com/unimarket/semantic-search/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	itemFields = []string{
		"id",
		"campus_id",
		"title",
		"description",
		"price",
		"status",
		"embedding",
		"created_at",
		"updated_at",
	}
)

// ItemRepository implements the domain.ItemRepository interface using PostgreSQL as the storage backend.
type ItemRepository struct {
	sb squirrel.StatementBuilderType
	tp domain.CurrentTimeProvider
}

// NewItemRepository creates a new instance of ItemRepository.
func NewItemRepository(br squirrel.BaseRunner, tp domain.CurrentTimeProvider) ItemRepository {
	return ItemRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
		tp: tp,
	}
}

// GetItem retrieves an item by its ID.
func (ir ItemRepository) GetItem(ctx context.Context, id uuid.UUID) (domain.Item, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	row := ir.sb.
		Select(itemFields...).
		From("items").
		Where(squirrel.Eq{"id": id}).
		QueryRowContext(spanCtx)

	item, err := scanItem(row)
	if telemetry.RecordErrorAndStatus(span, err) {
		if err == sql.ErrNoRows {
			return domain.Item{}, false, nil
		}
		return domain.Item{}, false, err
	}

	return item, true, nil
}

// SetEmbedding stores the embedding for an item. Last write wins.
func (ir ItemRepository) SetEmbedding(ctx context.Context, id uuid.UUID, embedding domain.Vector) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := ir.sb.
		Update("items").
		Set("embedding", pgvector.NewVector(toFloat32(embedding))).
		Set("updated_at", ir.tp.Now()).
		Where(squirrel.Eq{"id": id}).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// ListMissingEmbeddings returns up to limit active items without a stored
// embedding, oldest first. Inside a transaction the rows are locked with
// SKIP LOCKED so concurrent backfill runs claim disjoint batches.
func (ir ItemRepository) ListMissingEmbeddings(ctx context.Context, limit int) ([]domain.Item, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("limit", limit),
	))
	defer span.End()

	if limit <= 0 {
		return nil, domain.NewValidationErr("limit must be greater than 0")
	}

	rows, err := ir.sb.
		Select(itemFields...).
		From("items").
		Where(squirrel.Expr("embedding IS NULL")).
		Where(squirrel.Eq{"status": domain.ItemStatus_ACTIVE}).
		OrderBy("created_at ASC").
		Limit(uint64(limit)).
		Suffix("FOR UPDATE SKIP LOCKED").
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	items, err := scanItems(rows)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return items, nil
}

// ItemSearcher answers nearest-neighbor queries against the items table.
// The primary path orders by the pgvector cosine distance operator so the
// index does the work. When that query fails the searcher falls back to an
// exact in-memory scan over the filtered candidates, which ranks items
// identically at higher cost.
type ItemSearcher struct {
	sb     squirrel.StatementBuilderType
	logger *log.Logger
}

// NewItemSearcher creates a new instance of ItemSearcher.
func NewItemSearcher(br squirrel.BaseRunner, logger *log.Logger) ItemSearcher {
	return ItemSearcher{
		sb:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
		logger: logger,
	}
}

// Search runs a nearest-neighbor query and returns results ordered
// descending by cosine similarity.
func (is ItemSearcher) Search(ctx context.Context, query domain.SearchQuery) ([]domain.SearchResult, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("limit", query.Limit),
		attribute.Int("offset", query.Offset),
	))
	defer span.End()

	if err := query.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	results, err := is.searchNative(spanCtx, query)
	if err == nil {
		return results, nil
	}

	is.logger.Printf("ItemSearcher: native vector search failed, using in-memory fallback: %v", err)
	RecordSearchFallback(spanCtx)

	results, err = is.searchInMemory(spanCtx, query)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return results, nil
}

// searchNative lets Postgres order candidates by the cosine distance
// operator. Score is 1 - distance.
func (is ItemSearcher) searchNative(ctx context.Context, query domain.SearchQuery) ([]domain.SearchResult, error) {
	vec := pgvector.NewVector(toFloat32(query.Vector))

	qry := applySearchFilters(is.sb.
		Select(itemFields...).
		Column(squirrel.Expr("(embedding <=> ?) AS distance", vec)).
		From("items"), query).
		OrderByClause(squirrel.Expr("embedding <=> ? ASC", vec)).
		Limit(uint64(query.Limit)).
		Offset(uint64(query.Offset))

	rows, err := qry.QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var results []domain.SearchResult
	for rows.Next() {
		var (
			item     domain.Item
			emb      nullVector
			distance float64
		)
		err := rows.Scan(
			&item.ID,
			&item.CampusID,
			&item.Title,
			&item.Description,
			&item.Price,
			&item.Status,
			&emb,
			&item.CreatedAt,
			&item.UpdatedAt,
			&distance,
		)
		if err != nil {
			return nil, err
		}
		item.Embedding = emb.Vector
		results = append(results, domain.SearchResult{Item: item, Score: 1 - distance})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// searchInMemory loads the filtered candidates and ranks them with an exact
// cosine similarity computation.
func (is ItemSearcher) searchInMemory(ctx context.Context, query domain.SearchQuery) ([]domain.SearchResult, error) {
	rows, err := applySearchFilters(is.sb.
		Select(itemFields...).
		From("items"), query).
		QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	items, err := scanItems(rows)
	if err != nil {
		return nil, err
	}

	results := make([]domain.SearchResult, 0, len(items))
	for _, item := range items {
		score, ok := common.CosineSimilarity(query.Vector, item.Embedding)
		if !ok {
			continue
		}
		results = append(results, domain.SearchResult{Item: item, Score: score})
	}

	// Equal scores are broken by ID so fallback ranking is deterministic.
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Item.ID.String() < results[j].Item.ID.String()
	})

	if query.Offset >= len(results) {
		return nil, nil
	}
	results = results[query.Offset:]
	if len(results) > query.Limit {
		results = results[:query.Limit]
	}
	return results, nil
}

// applySearchFilters adds the shared candidate filters. Items without an
// embedding never match.
func applySearchFilters(qry squirrel.SelectBuilder, query domain.SearchQuery) squirrel.SelectBuilder {
	qry = qry.Where(squirrel.Expr("embedding IS NOT NULL"))

	if query.CampusID != nil {
		qry = qry.Where(squirrel.Eq{"campus_id": *query.CampusID})
	}
	if query.Status != nil {
		qry = qry.Where(squirrel.Eq{"status": *query.Status})
	}
	if len(query.ExcludeIDs) > 0 {
		qry = qry.Where(squirrel.NotEq{"id": query.ExcludeIDs})
	}
	return qry
}

func scanItems(rows *sql.Rows) ([]domain.Item, error) {
	var items []domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (domain.Item, error) {
	var (
		item domain.Item
		emb  nullVector
	)
	err := row.Scan(
		&item.ID,
		&item.CampusID,
		&item.Title,
		&item.Description,
		&item.Price,
		&item.Status,
		&emb,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return domain.Item{}, err
	}
	item.Embedding = emb.Vector
	return item, nil
}

// nullVector scans a nullable pgvector column into a domain.Vector.
type nullVector struct {
	Vector domain.Vector
}

func (nv *nullVector) Scan(src any) error {
	if src == nil {
		nv.Vector = nil
		return nil
	}
	var vec pgvector.Vector
	if err := vec.Scan(src); err != nil {
		return err
	}
	nv.Vector = toFloat64(vec.Slice())
	return nil
}

func toFloat32(input domain.Vector) []float32 {
	f32 := make([]float32, len(input))
	for i, v := range input {
		f32[i] = float32(v)
	}
	return f32
}

func toFloat64(input []float32) domain.Vector {
	f64 := make(domain.Vector, len(input))
	for i, v := range input {
		f64[i] = float64(v)
	}
	return f64
}

// InitItemRepository is a Symbiont initializer for ItemRepository.
type InitItemRepository struct {
	DB   *sql.DB                    `resolve:""`
	Time domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the ItemRepository in the dependency container.
func (ir InitItemRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.ItemRepository](NewItemRepository(ir.DB, ir.Time))
	return ctx, nil
}

// InitItemSearcher is a Symbiont initializer for ItemSearcher.
type InitItemSearcher struct {
	DB     *sql.DB     `resolve:""`
	Logger *log.Logger `resolve:""`
}

// Initialize registers the ItemSearcher in the dependency container.
func (is InitItemSearcher) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.ItemSearcher](NewItemSearcher(is.DB, is.Logger))
	return ctx, nil
}
