package domain

import (
	"context"
	"time"
)

// EmbeddingVector is a semantic vector plus token accounting.
type EmbeddingVector struct {
	Vector      []float64
	TotalTokens int
}

// CompletionRequest is a single-turn request to a language model.
type CompletionRequest struct {
	SystemPrompt string
	UserMessage  string
	Temperature  float64
	MaxTokens    int
}

// Completion is the text answer of a language model.
type Completion struct {
	Content          string
	PromptTokens     int
	CompletionTokens int
}

// AIProvider defines the external service producing embeddings and completions.
type AIProvider interface {
	// GenerateEmbedding returns the embedding vector of text.
	GenerateEmbedding(ctx context.Context, text string) (EmbeddingVector, error)
	// GenerateCompletion returns the model answer for a single system/user exchange.
	GenerateCompletion(ctx context.Context, req CompletionRequest) (Completion, error)
}

// EmbeddingCache stores query vectors keyed by their source text.
type EmbeddingCache interface {
	// Get returns the cached vector of text, if any.
	Get(ctx context.Context, text string) ([]float64, bool, error)
	// Set stores the vector of text for ttl.
	Set(ctx context.Context, text string, vector []float64, ttl time.Duration) error
}
