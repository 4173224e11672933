package generativeAI

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.0-flash"

var _ Generator = (*GeminiClient)(nil)

type GeminiClient struct {
	client *genai.Client
	model  string
	config *genai.GenerateContentConfig
	logger *slog.Logger
}

func NewGeminiClient(ctx context.Context, opts Options, logger *slog.Logger) (*GeminiClient, error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "NewGeminiClient")
	defer span.End()

	clientConfig := &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if opts.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}
	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to create Gemini client")
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := opts.Model
	if model == "" {
		model = defaultGeminiModel
	}

	span.SetStatus(codes.Ok, "AI client created successfully")
	return &GeminiClient{
		client: client,
		model:  model,
		config: &genai.GenerateContentConfig{
			Temperature:     genai.Ptr(temperature),
			TopP:            genai.Ptr(topP),
			TopK:            genai.Ptr(topK),
			MaxOutputTokens: maxOutputTokens,
		},
		logger: logger,
	}, nil
}

func (g *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "GenerateContent", trace.WithAttributes(
		attribute.Int("prompt.length", len(prompt)),
		attribute.String("model", g.model),
		attribute.String("provider", ProviderGemini),
	))
	defer span.End()

	start := time.Now()
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), g.config)
	var reply string
	if err == nil {
		reply = result.Text()
		if strings.TrimSpace(reply) == "" {
			err = errEmptyReply
		}
	}
	err = classifyError(err, false)
	observe(ctx, span, ProviderGemini, start, reply, err)
	if err != nil {
		g.logger.ErrorContext(ctx, "Gemini call failed",
			slog.String("model", g.model),
			slog.Any("error", err))
		return "", err
	}

	g.logger.DebugContext(ctx, "Gemini call completed",
		slog.String("model", g.model),
		slog.Int("response_length", len(reply)),
		slog.Duration("latency", time.Since(start)))
	return reply, nil
}
