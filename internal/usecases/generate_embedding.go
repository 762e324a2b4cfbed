package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/domain"
	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.uber.org/zap"
)

// GenerateEmbedding produces embedding vectors for todos and free text.
// Every failure is reported as a *domain.EmbeddingGenerationErr.
type GenerateEmbedding interface {
	// ForTodo returns the vector of the canonical text of todo.
	ForTodo(ctx context.Context, todo domain.Todo) ([]float64, error)
	// FromText returns the vector of text.
	FromText(ctx context.Context, text string) ([]float64, error)
}

// GenerateEmbeddingImpl is the implementation of the GenerateEmbedding use case.
type GenerateEmbeddingImpl struct {
	gateway  EmbeddingGateway
	cache    domain.EmbeddingCache
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewGenerateEmbeddingImpl creates a new instance of GenerateEmbeddingImpl.
// A nil cache disables caching of text embeddings.
func NewGenerateEmbeddingImpl(gateway EmbeddingGateway, cache domain.EmbeddingCache, cacheTTL time.Duration, logger *zap.Logger) GenerateEmbeddingImpl {
	return GenerateEmbeddingImpl{
		gateway:  gateway,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// ForTodo builds the embedding text of todo and embeds it.
func (g GenerateEmbeddingImpl) ForTodo(ctx context.Context, todo domain.Todo) ([]float64, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	text, err := domain.BuildEmbeddingText(todo.EmbeddingSource())
	if err != nil {
		err := domain.NewEmbeddingGenerationErr(err)
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	resp, err := g.gateway.Embed(spanCtx, text)
	if err != nil {
		err := domain.NewEmbeddingGenerationErr(err)
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	telemetry.RecordErrorAndStatus(span, nil)
	return resp.Vector, nil
}

// FromText embeds text, serving repeated texts from the cache when one is configured.
func (g GenerateEmbeddingImpl) FromText(ctx context.Context, text string) ([]float64, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if strings.TrimSpace(text) == "" {
		err := domain.NewEmbeddingGenerationErr(domain.NewValidationErr("text cannot be empty"))
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	if vector, ok := g.lookup(spanCtx, text); ok {
		telemetry.RecordErrorAndStatus(span, nil)
		return vector, nil
	}

	resp, err := g.gateway.Embed(spanCtx, text)
	if err != nil {
		err := domain.NewEmbeddingGenerationErr(err)
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	g.store(spanCtx, text, resp.Vector)

	telemetry.RecordErrorAndStatus(span, nil)
	return resp.Vector, nil
}

// lookup never fails: cache errors are logged and treated as a miss.
func (g GenerateEmbeddingImpl) lookup(ctx context.Context, text string) ([]float64, bool) {
	if g.cache == nil {
		return nil, false
	}
	vector, found, err := g.cache.Get(ctx, text)
	if err != nil {
		g.logger.Warn("embedding cache lookup failed", zap.Error(err))
		return nil, false
	}
	hit := found && len(vector) > 0
	RecordEmbeddingCacheLookup(ctx, hit)
	return vector, hit
}

func (g GenerateEmbeddingImpl) store(ctx context.Context, text string, vector []float64) {
	if g.cache == nil {
		return
	}
	if err := g.cache.Set(ctx, text, vector, g.cacheTTL); err != nil {
		g.logger.Warn("embedding cache store failed", zap.Error(err))
	}
}

// InitGenerateEmbedding initializes the GenerateEmbedding use case and registers it in the dependency container.
type InitGenerateEmbedding struct {
	Gateway  EmbeddingGateway      `resolve:""`
	Cache    domain.EmbeddingCache `resolve:""`
	Logger   *zap.Logger           `resolve:""`
	CacheTTL time.Duration         `config:"EMBEDDING_CACHE_TTL" default:"10m"`
}

// Initialize registers the GenerateEmbedding use case in the dependency container.
func (i InitGenerateEmbedding) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GenerateEmbedding](NewGenerateEmbeddingImpl(i.Gateway, i.Cache, i.CacheTTL, i.Logger))
	return ctx, nil
}
