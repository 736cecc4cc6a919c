package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/unimarket/semantic-search/internal/adapters/inbound/http"
	"github.com/unimarket/semantic-search/internal/adapters/inbound/workers"
	"github.com/unimarket/semantic-search/internal/adapters/outbound/config"
	"github.com/unimarket/semantic-search/internal/adapters/outbound/log"
	"github.com/unimarket/semantic-search/internal/adapters/outbound/modelrunner"
	"github.com/unimarket/semantic-search/internal/adapters/outbound/postgres"
	"github.com/unimarket/semantic-search/internal/adapters/outbound/pubsub"
	"github.com/unimarket/semantic-search/internal/adapters/outbound/time"
	"github.com/unimarket/semantic-search/internal/telemetry"
	"github.com/unimarket/semantic-search/internal/usecases"
	"github.com/unimarket/semantic-search/internal/vectorize"
)

// NewSearchApp creates and returns a new instance of the semantic search application.
func NewSearchApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&postgres.InitDB{},
			&postgres.InitUnitOfWork{},
			&postgres.InitItemRepository{},
			&postgres.InitItemSearcher{},
			&postgres.InitFavoriteRepository{},
			&time.InitCurrentTimeProvider{},
			&pubsub.InitClient{},
			&modelrunner.InitEnricher{},
			&vectorize.InitEncoder{},

			&usecases.InitSemanticSearch{},
			&usecases.InitFindSimilar{},
			&usecases.InitGetRecommendations{},
			&usecases.InitGenerateItemEmbedding{},
			&usecases.InitBackfillEmbeddings{},
		).
		Host(
			&http.SearchAPIServer{},
			&workers.ItemEventSubscriber{},
			&workers.EmbeddingBackfiller{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
