package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
)

const (
	defaultSearchLimit   = 20
	defaultSimilarLimit  = 10
	defaultBackfillBatch = 100
	maxLimit             = 100
)

// Search handles GET /v1/search.
func (api SearchAPIServer) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		respondError(w, badRequest("query parameter q is required"))
		return
	}

	limit, err := parseBoundedInt(r.URL.Query().Get("limit"), defaultSearchLimit)
	if err != nil {
		respondError(w, badRequest(err.Error()))
		return
	}
	offset, err := parseBoundedInt(r.URL.Query().Get("offset"), 0)
	if err != nil {
		respondError(w, badRequest(err.Error()))
		return
	}

	var campusID *uuid.UUID
	if raw := r.URL.Query().Get("campus_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondError(w, badRequest(fmt.Sprintf("invalid campus_id: %v", err)))
			return
		}
		campusID = &id
	}

	results, err := api.SemanticSearchUseCase.Query(r.Context(), query, campusID, limit, offset)
	if err != nil {
		api.Logger.Printf("Error searching items: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toSearchResp(results))
}

// FindSimilarItems handles GET /v1/items/{itemId}/similar.
func (api SearchAPIServer) FindSimilarItems(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuid.Parse(r.PathValue("itemId"))
	if err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid item id: %v", err)))
		return
	}

	limit, err := parseBoundedInt(r.URL.Query().Get("limit"), defaultSimilarLimit)
	if err != nil {
		respondError(w, badRequest(err.Error()))
		return
	}

	results, err := api.FindSimilarUseCase.Execute(r.Context(), itemID, limit)
	if err != nil {
		api.Logger.Printf("Error finding similar items: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toSearchResp(results))
}

// GetUserRecommendations handles GET /v1/users/{userId}/recommendations.
func (api SearchAPIServer) GetUserRecommendations(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("userId"))
	if err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid user id: %v", err)))
		return
	}

	limit, err := parseBoundedInt(r.URL.Query().Get("limit"), defaultSimilarLimit)
	if err != nil {
		respondError(w, badRequest(err.Error()))
		return
	}

	results, err := api.GetRecommendationsUseCase.Execute(r.Context(), userID, limit)
	if err != nil {
		api.Logger.Printf("Error getting recommendations: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toSearchResp(results))
}

// GenerateEmbedding handles POST /v1/items/{itemId}/embedding. It is the
// explicit regeneration hook for items whose listing text changed.
func (api SearchAPIServer) GenerateEmbedding(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuid.Parse(r.PathValue("itemId"))
	if err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid item id: %v", err)))
		return
	}

	vec, err := api.GenerateEmbeddingUseCase.Execute(r.Context(), itemID)
	if err != nil {
		api.Logger.Printf("Error generating embedding: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusCreated, EmbeddingResp{
		ItemId:    itemID,
		Dimension: vec.Dim(),
	})
}

// Backfill handles POST /v1/backfill.
func (api SearchAPIServer) Backfill(w http.ResponseWriter, r *http.Request) {
	req := BackfillReq{BatchSize: defaultBackfillBatch}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, badRequest(fmt.Sprintf("invalid request body: %v", err)))
			return
		}
	}

	processed, err := api.BackfillUseCase.Execute(r.Context(), req.BatchSize)
	if err != nil {
		api.Logger.Printf("Error backfilling embeddings: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, BackfillResp{Processed: processed})
}

func parseBoundedInt(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric parameter: %v", err)
	}
	if v > maxLimit {
		return maxLimit, nil
	}
	return v, nil
}
