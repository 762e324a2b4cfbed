// Package modelrunner talks to an OpenAI-compatible endpoint (OpenAI, Docker Model Runner,
// llama.cpp server) for embeddings and single-turn completions.
package modelrunner

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/domain"
	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"
)

// Client implements domain.AIProvider on top of the go-openai client.
type Client struct {
	api            *openai.Client
	limiter        *rate.Limiter
	model          string
	embeddingModel string
}

// NewClient creates a new Client. requestsPerSecond <= 0 disables rate limiting.
func NewClient(api *openai.Client, model, embeddingModel string, requestsPerSecond float64) Client {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if requestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), max(1, int(requestsPerSecond)))
	}
	return Client{
		api:            api,
		limiter:        limiter,
		model:          model,
		embeddingModel: embeddingModel,
	}
}

// NewOpenAIAPI builds the go-openai client for baseURL, sending requests through httpClient.
func NewOpenAIAPI(baseURL, apiKey string, httpClient *http.Client) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}
	return openai.NewClientWithConfig(cfg)
}

// GenerateEmbedding implements domain.AIProvider.GenerateEmbedding.
// An answer without data yields an empty vector, which callers treat as an invalid response.
func (c Client) GenerateEmbedding(ctx context.Context, text string) (domain.EmbeddingVector, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("model", c.embeddingModel),
	))
	defer span.End()

	if err := c.limiter.Wait(spanCtx); telemetry.RecordErrorAndStatus(span, err) {
		return domain.EmbeddingVector{}, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	resp, err := c.api.CreateEmbeddings(spanCtx, openai.EmbeddingRequestStrings{
		Input: []string{text},
		Model: openai.EmbeddingModel(c.embeddingModel),
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.EmbeddingVector{}, describeError(err)
	}

	out := domain.EmbeddingVector{TotalTokens: resp.Usage.TotalTokens}
	if len(resp.Data) > 0 {
		out.Vector = make([]float64, len(resp.Data[0].Embedding))
		for i, v := range resp.Data[0].Embedding {
			out.Vector[i] = float64(v)
		}
	}
	span.SetAttributes(attribute.Int("dimension", len(out.Vector)))

	return out, nil
}

// GenerateCompletion implements domain.AIProvider.GenerateCompletion.
func (c Client) GenerateCompletion(ctx context.Context, req domain.CompletionRequest) (domain.Completion, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("model", c.model),
	))
	defer span.End()

	if err := c.limiter.Wait(spanCtx); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Completion{}, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	messages := []openai.ChatCompletionMessage{}
	if req.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.UserMessage,
	})

	resp, err := c.api.CreateChatCompletion(spanCtx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Completion{}, describeError(err)
	}

	if len(resp.Choices) == 0 {
		err := errors.New("no choices in response")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.Completion{}, err
	}

	return domain.Completion{
		Content:          resp.Choices[0].Message.Content,
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
	}, nil
}

// describeError keeps the provider's own message and status for API errors.
func describeError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("provider returned status %d: %s", apiErr.HTTPStatusCode, apiErr.Message)
	}
	return err
}

// InitAIProvider is a Symbiont initializer for the AI provider client.
type InitAIProvider struct {
	HttpClient        *http.Client `resolve:""`
	LLMHost           string       `config:"LLM_MODEL_HOST" default:"https://api.openai.com/v1"`
	APIKey            string       `config:"LLM_API_KEY" default:"-"`
	Model             string       `config:"LLM_MODEL" default:"gpt-4.1-nano"`
	EmbeddingModel    string       `config:"LLM_EMBEDDING_MODEL" default:"text-embedding-3-small"`
	RequestsPerSecond float64      `config:"LLM_REQUESTS_PER_SECOND" default:"10"`
}

// Initialize registers the Client as the domain.AIProvider.
// LLM_API_KEY "-" is meant for local runners that need no credentials.
func (i InitAIProvider) Initialize(ctx context.Context) (context.Context, error) {
	apiKey := i.APIKey
	if apiKey == "-" {
		apiKey = ""
	}
	depend.Register[domain.AIProvider](NewClient(
		NewOpenAIAPI(i.LLMHost, apiKey, i.HttpClient),
		i.Model,
		i.EmbeddingModel,
		i.RequestsPerSecond,
	))
	return ctx, nil
}
