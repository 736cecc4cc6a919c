package modelrunner

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/unimarket/semantic-search/internal/common"
	"github.com/unimarket/semantic-search/internal/domain"
	"github.com/unimarket/semantic-search/internal/telemetry"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const enrichmentSystemPrompt = `You extract marketplace listing features. ` +
	`Given a listing text, respond with a single JSON object with exactly these fields: ` +
	`"category" (string), "keywords" (array of strings), "condition" (string), ` +
	`"intent" (string), "summary" (string). Respond with JSON only, no prose.`

// listingFeatures is the structured-completion payload. The model response
// is untrusted input; anything that does not parse into this shape is
// discarded.
type listingFeatures struct {
	Category  string   `json:"category"`
	Keywords  []string `json:"keywords"`
	Condition string   `json:"condition"`
	Intent    string   `json:"intent"`
	Summary   string   `json:"summary"`
}

// ListingEnricher implements domain.TextEnricher against an
// OpenAI-compatible completion endpoint. Every failure path returns the
// original text unchanged: embedding generation must never depend on the
// remote service's health.
type ListingEnricher struct {
	client  CompletionClient
	model   string
	timeout time.Duration
	logger  *log.Logger
}

// NewListingEnricher creates a new ListingEnricher.
func NewListingEnricher(client CompletionClient, model string, timeout time.Duration, logger *log.Logger) ListingEnricher {
	return ListingEnricher{
		client:  client,
		model:   model,
		timeout: timeout,
		logger:  logger,
	}
}

// Enrich appends model-extracted features to the listing text. On any
// failure it returns the input unchanged.
func (e ListingEnricher) Enrich(ctx context.Context, text string) string {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if strings.TrimSpace(text) == "" {
		return text
	}

	callCtx, cancel := context.WithTimeout(spanCtx, e.timeout)
	defer cancel()

	features, err := e.extractFeatures(callCtx, text)
	if err != nil {
		telemetry.RecordErrorAndStatus(span, err)
		RecordEnrichmentFailure(spanCtx)
		e.logger.Printf("ListingEnricher: falling back to raw text: %v", err)
		return text
	}

	RecordEnrichmentSuccess(spanCtx)
	return appendFeatures(text, features)
}

func (e ListingEnricher) extractFeatures(ctx context.Context, text string) (listingFeatures, error) {
	resp, err := e.client.Chat(ctx, ChatRequest{
		Model:       e.model,
		Temperature: common.Ptr(0.0),
		Messages: []ChatMessage{
			{Role: "system", Content: enrichmentSystemPrompt},
			{Role: "user", Content: text},
		},
		ResponseFormat: &ResponseFormat{Type: "json_object"},
	})
	if err != nil {
		return listingFeatures{}, err
	}
	if len(resp.Choices) == 0 {
		return listingFeatures{}, errors.New("no choices in response")
	}

	var features listingFeatures
	content := stripCodeFences(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(content), &features); err != nil {
		return listingFeatures{}, errors.New("response is not valid JSON")
	}
	if features.Category == "" || features.Summary == "" {
		return listingFeatures{}, errors.New("response is missing required fields")
	}
	return features, nil
}

// appendFeatures concatenates all returned string fields to the original
// text so enrichment is strictly additive.
func appendFeatures(text string, features listingFeatures) string {
	parts := []string{text, features.Category}
	parts = append(parts, features.Keywords...)
	parts = append(parts, features.Condition, features.Intent, features.Summary)

	var kept []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

// stripCodeFences removes a surrounding markdown code fence, which some
// models emit despite the JSON-only instruction.
func stripCodeFences(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

// disabledEnricher is the identity enricher used when no completion
// endpoint is configured.
type disabledEnricher struct{}

func (disabledEnricher) Enrich(_ context.Context, text string) string { return text }

// InitEnricher initializes the TextEnricher dependency. Without a
// configured endpoint and model the enricher is a no-op, keeping the
// embedding pipeline fully local.
type InitEnricher struct {
	Logger    *log.Logger   `resolve:""`
	ModelHost string        `config:"LLM_MODEL_HOST" default:"-"`
	Model     string        `config:"LLM_ENRICHMENT_MODEL" default:"-"`
	Timeout   time.Duration `config:"LLM_ENRICHMENT_TIMEOUT" default:"5s"`
}

// Initialize registers the TextEnricher in the dependency container.
func (ie InitEnricher) Initialize(ctx context.Context) (context.Context, error) {
	if ie.ModelHost == "-" || ie.Model == "-" || ie.ModelHost == "" || ie.Model == "" {
		ie.Logger.Println("InitEnricher: no completion endpoint configured, enrichment disabled")
		depend.Register[domain.TextEnricher](disabledEnricher{})
		return ctx, nil
	}

	depend.Register[domain.TextEnricher](NewListingEnricher(
		NewCompletionClient(ie.ModelHost, "", newEnrichmentHTTPClient(ie.Logger)),
		ie.Model,
		ie.Timeout,
		ie.Logger,
	))
	return ctx, nil
}

// newEnrichmentHTTPClient builds the outbound client for enrichment calls:
// at most one retry, instrumented transport. The per-call deadline lives in
// Enrich.
func newEnrichmentHTTPClient(logger *log.Logger) *http.Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 1
	retryClient.RetryWaitMax = time.Second
	retryClient.Logger = logger

	stdClient := retryClient.StandardClient()
	stdClient.Transport = otelhttp.NewTransport(
		stdClient.Transport,
		otelhttp.WithSpanNameFormatter(telemetry.SpanNameFormatter),
	)
	return stdClient
}
