package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/common"
	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/domain"
	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	goredis "github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const keyPrefix = "todoapp:embedding:"

// EmbeddingCache implements domain.EmbeddingCache on Redis.
// Vectors are stored JSON-encoded under a key hashed from the embedding model,
// the vector dimension and the text, so a model change never serves old vectors.
type EmbeddingCache struct {
	client    goredis.UniversalClient
	model     string
	dimension int
}

// NewEmbeddingCache creates a new instance of EmbeddingCache.
func NewEmbeddingCache(client goredis.UniversalClient, model string, dimension int) EmbeddingCache {
	return EmbeddingCache{client: client, model: model, dimension: dimension}
}

// Get implements domain.EmbeddingCache.Get. An undecodable entry counts as a miss.
func (c EmbeddingCache) Get(ctx context.Context, text string) ([]float64, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	data, err := c.client.Get(spanCtx, c.key(text)).Result()
	if errors.Is(err, goredis.Nil) {
		span.SetAttributes(attribute.Bool("hit", false))
		return nil, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, false, fmt.Errorf("failed to get embedding from redis: %w", err)
	}

	vector := common.DecodeEmbedding(data)
	span.SetAttributes(attribute.Bool("hit", vector != nil))
	return vector, vector != nil, nil
}

// Set implements domain.EmbeddingCache.Set.
func (c EmbeddingCache) Set(ctx context.Context, text string, vector []float64, ttl time.Duration) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	data, err := common.EncodeEmbedding(vector)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to encode embedding: %w", err)
	}

	err = c.client.Set(spanCtx, c.key(text), data, ttl).Err()
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to set embedding in redis: %w", err)
	}
	return nil
}

func (c EmbeddingCache) key(text string) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%s\x00%d\x00%s", c.model, c.dimension, text))
	return keyPrefix + hex.EncodeToString(sum[:])
}

// NoopEmbeddingCache never stores anything.
type NoopEmbeddingCache struct{}

// Get always reports a miss.
func (NoopEmbeddingCache) Get(context.Context, string) ([]float64, bool, error) {
	return nil, false, nil
}

// Set discards the vector.
func (NoopEmbeddingCache) Set(context.Context, string, []float64, time.Duration) error {
	return nil
}

// InitEmbeddingCache is a Symbiont initializer for the query embedding cache.
// REDIS_ADDR "-" registers a cache that never hits.
type InitEmbeddingCache struct {
	Logger   *zap.Logger `resolve:""`
	Addr     string      `config:"REDIS_ADDR" default:"-"`
	Password string      `config:"REDIS_PASSWORD" default:"-"`
	DB       int         `config:"REDIS_DB" default:"0"`

	EmbeddingModel     string `config:"LLM_EMBEDDING_MODEL" default:"text-embedding-3-small"`
	EmbeddingDimension int    `config:"EMBEDDING_DIMENSION" default:"1536"`

	client *goredis.Client
}

// Initialize registers the domain.EmbeddingCache in the dependency container.
func (i *InitEmbeddingCache) Initialize(ctx context.Context) (context.Context, error) {
	if i.Addr == "-" {
		i.Logger.Info("embedding cache disabled")
		depend.Register[domain.EmbeddingCache](NoopEmbeddingCache{})
		return ctx, nil
	}

	password := i.Password
	if password == "-" {
		password = ""
	}
	i.client = goredis.NewClient(&goredis.Options{
		Addr:     i.Addr,
		Password: password,
		DB:       i.DB,
	})
	if err := i.client.Ping(ctx).Err(); err != nil {
		i.Logger.Warn("redis is not reachable, embedding cache lookups will miss", zap.String("addr", i.Addr), zap.Error(err))
	}

	depend.Register[domain.EmbeddingCache](NewEmbeddingCache(i.client, i.EmbeddingModel, i.EmbeddingDimension))
	return ctx, nil
}

// Close closes the Redis client.
func (i *InitEmbeddingCache) Close() {
	if i.client == nil {
		return
	}
	if err := i.client.Close(); err != nil {
		i.Logger.Error("closing redis client", zap.Error(err))
	}
}
