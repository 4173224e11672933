package generativeAI

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var _ Generator = (*OpenAIClient)(nil)

// OpenAIClient talks to any OpenAI-compatible chat completion endpoint.
type OpenAIClient struct {
	client *openai.Client
	model  string
	logger *slog.Logger
}

func NewOpenAIClient(opts Options, logger *slog.Logger) *OpenAIClient {
	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	model := opts.Model
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		logger: logger,
	}
}

func (o *OpenAIClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "GenerateContent", trace.WithAttributes(
		attribute.Int("prompt.length", len(prompt)),
		attribute.String("model", o.model),
		attribute.String("provider", ProviderOpenAI),
	))
	defer span.End()

	start := time.Now()
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: temperature,
		TopP:        topP,
		MaxTokens:   int(maxOutputTokens),
	})

	var reply string
	if err == nil {
		if len(resp.Choices) == 0 {
			err = errors.New("model returned no choices")
		} else if reply = resp.Choices[0].Message.Content; strings.TrimSpace(reply) == "" {
			err = errEmptyReply
		}
	}
	err = classifyError(err, isRateLimited(err))
	observe(ctx, span, ProviderOpenAI, start, reply, err)
	if err != nil {
		o.logger.ErrorContext(ctx, "OpenAI call failed",
			slog.String("model", o.model),
			slog.Any("error", err))
		return "", err
	}

	o.logger.DebugContext(ctx, "OpenAI call completed",
		slog.String("model", o.model),
		slog.Int("response_length", len(reply)),
		slog.Duration("latency", time.Since(start)))
	return reply, nil
}

func isRateLimited(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == http.StatusTooManyRequests
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode == http.StatusTooManyRequests
	}
	return false
}
