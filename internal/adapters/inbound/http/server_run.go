package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/rs/cors"
	"github.com/unimarket/semantic-search/internal/telemetry"
	"github.com/unimarket/semantic-search/internal/usecases"
)

// SearchAPIServer is the REST API the rest of the marketplace calls into the
// embedding & search subsystem with.
type SearchAPIServer struct {
	Port                      int                             `config:"HTTP_PORT" default:"8080"`
	Logger                    *log.Logger                     `resolve:""`
	SemanticSearchUseCase     usecases.SemanticSearch         `resolve:""`
	FindSimilarUseCase        usecases.FindSimilar            `resolve:""`
	GetRecommendationsUseCase usecases.GetRecommendations     `resolve:""`
	GenerateEmbeddingUseCase  usecases.GenerateItemEmbedding  `resolve:""`
	BackfillUseCase           usecases.BackfillEmbeddings     `resolve:""`
}

func (api SearchAPIServer) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("/introspect", IntrospectHandler)

	mux.HandleFunc("GET /v1/search", api.Search)
	mux.HandleFunc("GET /v1/items/{itemId}/similar", api.FindSimilarItems)
	mux.HandleFunc("GET /v1/users/{userId}/recommendations", api.GetUserRecommendations)
	mux.HandleFunc("POST /v1/items/{itemId}/embedding", api.GenerateEmbedding)
	mux.HandleFunc("POST /v1/backfill", api.Backfill)

	return mux
}

// Run starts the HTTP server for the SearchAPIServer.
func (api SearchAPIServer) Run(ctx context.Context) error {
	h := telemetry.HttpHandler(api.routes(), "semantic-search-api")

	// Apply CORS at the top-level so preflight requests hit it, too.
	h = cors.AllowAll().Handler(h)

	s := &http.Server{
		Handler: h,
		Addr:    fmt.Sprintf(":%d", api.Port),
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("SearchAPIServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("SearchAPIServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("SearchAPIServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the SearchAPIServer is ready by performing a health check.
func (api SearchAPIServer) IsReady(ctx context.Context) error {
	resp, err := http.Get(fmt.Sprintf("http://:%d/healthz", api.Port))
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
