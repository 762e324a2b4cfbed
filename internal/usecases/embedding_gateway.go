package usecases

import (
	"context"
	"strings"

	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/domain"
	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

const (
	// CompletionTemperature is the sampling temperature used for single-turn completions.
	CompletionTemperature = 0.7
	// CompletionMaxTokens is the output token cap used for single-turn completions.
	CompletionMaxTokens = 1000
)

// EmbeddingGateway is the single entry point to the AI provider.
type EmbeddingGateway interface {
	// Embed returns the embedding vector of text.
	Embed(ctx context.Context, text string) (domain.EmbeddingVector, error)
	// Complete returns the model answer to userMessage under systemPrompt.
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

// EmbeddingGatewayImpl is the implementation of EmbeddingGateway.
type EmbeddingGatewayImpl struct {
	provider domain.AIProvider
}

// NewEmbeddingGatewayImpl creates a new instance of EmbeddingGatewayImpl.
func NewEmbeddingGatewayImpl(provider domain.AIProvider) EmbeddingGatewayImpl {
	return EmbeddingGatewayImpl{
		provider: provider,
	}
}

// Embed validates text, asks the provider for its vector and checks the result is usable.
func (g EmbeddingGatewayImpl) Embed(ctx context.Context, text string) (domain.EmbeddingVector, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if strings.TrimSpace(text) == "" {
		err := domain.NewValidationErr("text empty")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.EmbeddingVector{}, err
	}

	resp, err := g.provider.GenerateEmbedding(spanCtx, text)
	if err != nil {
		providerErr := domain.NewProviderErr(err.Error())
		telemetry.RecordErrorAndStatus(span, providerErr)
		return domain.EmbeddingVector{}, providerErr
	}

	if len(resp.Vector) == 0 {
		invalidErr := domain.NewInvalidProviderResponseErr("provider returned an empty embedding")
		telemetry.RecordErrorAndStatus(span, invalidErr)
		return domain.EmbeddingVector{}, invalidErr
	}

	RecordLLMTokensEmbedding(spanCtx, resp.TotalTokens)
	telemetry.RecordErrorAndStatus(span, nil)
	return resp, nil
}

// Complete runs a single-turn completion.
func (g EmbeddingGatewayImpl) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	resp, err := g.provider.GenerateCompletion(spanCtx, domain.CompletionRequest{
		SystemPrompt: systemPrompt,
		UserMessage:  userMessage,
		Temperature:  CompletionTemperature,
		MaxTokens:    CompletionMaxTokens,
	})
	if err != nil {
		providerErr := domain.NewProviderErr(err.Error())
		telemetry.RecordErrorAndStatus(span, providerErr)
		return "", providerErr
	}

	RecordLLMTokensUsed(spanCtx, resp.PromptTokens, resp.CompletionTokens)
	telemetry.RecordErrorAndStatus(span, nil)
	return resp.Content, nil
}

// InitEmbeddingGateway initializes the EmbeddingGateway and registers it in the dependency container.
type InitEmbeddingGateway struct {
	Provider domain.AIProvider `resolve:""`
}

// Initialize registers the EmbeddingGateway in the dependency container.
func (i InitEmbeddingGateway) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[EmbeddingGateway](NewEmbeddingGatewayImpl(i.Provider))
	return ctx, nil
}
