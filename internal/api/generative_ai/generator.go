package generativeAI

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-kemet-travel-planner/app/observability/metrics"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Sampling settings shared by every provider.
const (
	temperature     float32 = 0.7
	topP            float32 = 0.8
	topK            float32 = 40
	maxOutputTokens int32   = 2048
)

var (
	// ErrQuotaExceeded is returned when the provider rejects the call for
	// rate or quota reasons.
	ErrQuotaExceeded = errors.New("generative model quota exceeded")
	// ErrGeneration covers every other failed model call.
	ErrGeneration = errors.New("generative model call failed")

	errEmptyReply = errors.New("model returned an empty response")
)

// Generator turns a prompt into the model's raw text reply.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Options selects and configures a provider.
type Options struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
}

// NewGenerator builds the client for opts.Provider.
func NewGenerator(ctx context.Context, opts Options, logger *slog.Logger) (Generator, error) {
	if opts.APIKey == "" {
		return nil, errors.New("generative model API key is not set")
	}
	switch strings.ToLower(opts.Provider) {
	case "", ProviderGemini:
		return NewGeminiClient(ctx, opts, logger)
	case ProviderOpenAI:
		return NewOpenAIClient(opts, logger), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", opts.Provider)
	}
}

// classifyError wraps a provider error in ErrQuotaExceeded or ErrGeneration.
func classifyError(err error, rateLimited bool) error {
	if err == nil {
		return nil
	}
	if rateLimited || isQuotaMessage(err.Error()) {
		return fmt.Errorf("%w: %w", ErrQuotaExceeded, err)
	}
	return fmt.Errorf("%w: %w", ErrGeneration, err)
}

func isQuotaMessage(msg string) bool {
	msg = strings.ToLower(msg)
	return strings.Contains(msg, "quota") || strings.Contains(msg, "resource_exhausted")
}

func errorKind(err error) string {
	if errors.Is(err, ErrQuotaExceeded) {
		return "quota"
	}
	return "generation"
}

// observe records the outcome of one model call on span and in metrics.
func observe(ctx context.Context, span trace.Span, provider string, start time.Time, reply string, err error) {
	m := metrics.Get()
	m.LLMGenerationDurationSeconds.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.Bool("success", err == nil),
	))
	if err != nil {
		m.LLMErrorsTotal.Add(ctx, 1, metric.WithAttributes(
			attribute.String("provider", provider),
			attribute.String("kind", errorKind(err)),
		))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to generate content")
		return
	}
	span.SetAttributes(attribute.Int("response.length", len(reply)))
	span.SetStatus(codes.Ok, "Content generated successfully")
}
