package usecases

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter                 = otel.Meter("usecases")
	LLMTokensUsed         metric.Int64Counter
	LLMTokensPerRequest   metric.Int64Histogram
	SemanticSearchResults metric.Int64Histogram
	EmbeddingCacheLookups metric.Int64Counter
)

func init() {
	var err error
	// Tokens consumed by LLM (input + output)
	LLMTokensUsed, err = meter.Int64Counter(
		"llm_tokens_used_total",
		metric.WithDescription("Total LLM tokens consumed"),
	)
	if err != nil {
		panic(err)
	}

	LLMTokensPerRequest, err = meter.Int64Histogram(
		"llm_tokens_per_request",
		metric.WithDescription("Tokens consumed by a single provider request"),
	)
	if err != nil {
		panic(err)
	}

	SemanticSearchResults, err = meter.Int64Histogram(
		"semantic_search_results",
		metric.WithDescription("Number of todos returned by a semantic search"),
		metric.WithExplicitBucketBoundaries(0, 1, 2, 5, 10, 20, 50),
	)
	if err != nil {
		panic(err)
	}

	EmbeddingCacheLookups, err = meter.Int64Counter(
		"embedding_cache_lookups_total",
		metric.WithDescription("Query embedding cache lookups by outcome"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordLLMTokensUsed records the number of tokens used in an LLM completion.
func RecordLLMTokensUsed(ctx context.Context, promptTokens, completionTokens int) {
	LLMTokensUsed.Add(ctx, int64(promptTokens), metric.WithAttributes(
		attribute.String("token_type", "prompt"),
	))
	LLMTokensUsed.Add(ctx, int64(completionTokens), metric.WithAttributes(
		attribute.String("token_type", "completion"),
	))
	LLMTokensPerRequest.Record(ctx, int64(promptTokens+completionTokens), metric.WithAttributes(
		attribute.String("request_type", "completion"),
	))
}

// RecordLLMTokensEmbedding records the number of tokens used in an embedding operation.
func RecordLLMTokensEmbedding(ctx context.Context, totalTokens int) {
	LLMTokensUsed.Add(ctx, int64(totalTokens), metric.WithAttributes(
		attribute.String("token_type", "embedding"),
	))
	LLMTokensPerRequest.Record(ctx, int64(totalTokens), metric.WithAttributes(
		attribute.String("request_type", "embedding"),
	))
}

// RecordSemanticSearchResults records how many todos a semantic search returned.
func RecordSemanticSearchResults(ctx context.Context, count int) {
	SemanticSearchResults.Record(ctx, int64(count))
}

// RecordEmbeddingCacheLookup records a query embedding cache hit or miss.
func RecordEmbeddingCacheLookup(ctx context.Context, hit bool) {
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	EmbeddingCacheLookups.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}
