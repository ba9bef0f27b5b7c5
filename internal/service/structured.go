package service

import (
	"context"
	"fmt"
	"time"

	"agroclimate-api/internal/extract"
	"agroclimate-api/internal/models"
	"agroclimate-api/internal/observability"

	"github.com/rs/zerolog"
)

// CompletionClient sends a prompt to the chat completion API and returns the model text.
type CompletionClient interface {
	Complete(ctx context.Context, prompt models.Prompt) (string, error)
}

// StructuredRequest describes one "ask the model for a JSON document" call.
// Normalize receives the extracted object and must return a fully populated value.
type StructuredRequest[T any] struct {
	Endpoint  string
	Prompt    models.Prompt
	Normalize func(obj map[string]any) T
}

// structuredAsker runs a prompt through the completion API and the extractor.
type structuredAsker struct {
	client  CompletionClient
	metrics *observability.Metrics
}

// askJSON calls the completion API once. Upstream failures are returned as errors;
// output that holds no JSON object is not an error and yields Parsed=false.
func askJSON[T any](ctx context.Context, a structuredAsker, req StructuredRequest[T]) (models.Answer[T], error) {
	start := time.Now()
	raw, err := a.client.Complete(ctx, req.Prompt)
	a.metrics.CompletionDuration.WithLabelValues(req.Endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		a.metrics.CompletionRequests.WithLabelValues(req.Endpoint, "error").Inc()
		return models.Answer[T]{}, fmt.Errorf("service: completion: %w", err)
	}
	a.metrics.CompletionRequests.WithLabelValues(req.Endpoint, "success").Inc()

	result, err := extract.Extract(raw)
	if err != nil {
		a.metrics.Extractions.WithLabelValues(req.Endpoint, "failed").Inc()
		zerolog.Ctx(ctx).Warn().
			Str("endpoint", req.Endpoint).
			Int("raw_len", len(raw)).
			Msg("model output is not JSON, returning raw text")
		return models.Answer[T]{Raw: raw}, nil
	}
	a.metrics.Extractions.WithLabelValues(req.Endpoint, result.Strategy).Inc()

	return models.Answer[T]{
		Value:  req.Normalize(result.Object),
		Raw:    raw,
		Parsed: true,
	}, nil
}
