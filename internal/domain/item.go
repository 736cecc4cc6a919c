package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ItemStatus represents the lifecycle status of a marketplace item.
type ItemStatus string

const (
	// ItemStatus_ACTIVE indicates the item is listed and searchable.
	ItemStatus_ACTIVE ItemStatus = "ACTIVE"
	// ItemStatus_INACTIVE indicates the item is delisted (sold, removed or moderated).
	ItemStatus_INACTIVE ItemStatus = "INACTIVE"
)

// Item represents a marketplace listing. Item CRUD is owned by the
// marketplace backend; this subsystem only reads listings and writes their
// embeddings.
type Item struct {
	ID          uuid.UUID
	CampusID    uuid.UUID
	Title       string
	Description string
	Price       *float64
	Status      ItemStatus
	Embedding   Vector
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasEmbedding reports whether an embedding has been generated for the item.
func (i Item) HasEmbedding() bool {
	return len(i.Embedding) > 0
}

// EmbeddingInput builds the text fed into the embedding pipeline.
func (i Item) EmbeddingInput() string {
	var sb strings.Builder
	sb.WriteString(i.Title)
	if i.Description != "" {
		sb.WriteString("\n")
		sb.WriteString(i.Description)
	}
	if i.Price != nil {
		sb.WriteString(fmt.Sprintf("\nprice: %.2f", *i.Price))
	}
	return sb.String()
}

// ItemRepository defines read access to marketplace items plus the single
// write this subsystem owns: storing an item's embedding.
type ItemRepository interface {
	// GetItem retrieves an item by id. Returns false when no item exists.
	GetItem(ctx context.Context, id uuid.UUID) (Item, bool, error)

	// SetEmbedding stores the embedding for an item. Last write wins;
	// embeddings are derivative, recomputable data.
	SetEmbedding(ctx context.Context, id uuid.UUID, embedding Vector) error

	// ListMissingEmbeddings returns up to limit active items that have no
	// stored embedding. Inside a transaction the selected rows are claimed
	// so concurrent backfill runs never pick the same batch.
	ListMissingEmbeddings(ctx context.Context, limit int) ([]Item, error)
}
