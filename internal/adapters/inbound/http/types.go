package http

import (
	"time"

	"github.com/google/uuid"
)

// ErrorCode classifies API errors.
type ErrorCode string

const (
	BADREQUEST    ErrorCode = "BAD_REQUEST"
	NOTFOUND      ErrorCode = "NOT_FOUND"
	INTERNALERROR ErrorCode = "INTERNAL_ERROR"
)

// ErrorResp is the error envelope returned by every endpoint.
type ErrorResp struct {
	Error struct {
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
	} `json:"error"`
}

// Item is the API representation of a marketplace item.
type Item struct {
	Id          uuid.UUID `json:"id"`
	CampusId    uuid.UUID `json:"campus_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SearchResult pairs an item with its similarity score.
type SearchResult struct {
	Item  Item    `json:"item"`
	Score float64 `json:"score"`
}

// SearchResp is the response of the search, similar and recommendation
// endpoints.
type SearchResp struct {
	Results []SearchResult `json:"results"`
}

// EmbeddingResp reports a generated embedding.
type EmbeddingResp struct {
	ItemId    uuid.UUID `json:"item_id"`
	Dimension int       `json:"dimension"`
}

// BackfillReq is the request body of the backfill endpoint.
type BackfillReq struct {
	BatchSize int `json:"batch_size"`
}

// BackfillResp reports a backfill run.
type BackfillResp struct {
	Processed int `json:"processed"`
}
