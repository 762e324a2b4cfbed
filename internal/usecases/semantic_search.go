package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/domain"
	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// SemanticSearch defines the interface for the SemanticSearch use case.
type SemanticSearch interface {
	// Query returns the todos of ownerID closest in meaning to query, best first.
	// Every failure is reported as a *domain.SearchErr.
	Query(ctx context.Context, query string, limit int, ownerID uuid.UUID) ([]domain.SearchResult, error)
}

// SemanticSearchImpl is the implementation of the SemanticSearch use case.
type SemanticSearchImpl struct {
	todoRepo          domain.TodoRepository
	generateEmbedding GenerateEmbedding
	engine            domain.SimilarityEngine
}

// NewSemanticSearchImpl creates a new instance of SemanticSearchImpl.
func NewSemanticSearchImpl(todoRepo domain.TodoRepository, generateEmbedding GenerateEmbedding, engine domain.SimilarityEngine) SemanticSearchImpl {
	return SemanticSearchImpl{
		todoRepo:          todoRepo,
		generateEmbedding: generateEmbedding,
		engine:            engine,
	}
}

// Query embeds query and ranks the embedded todos of ownerID against it.
func (s SemanticSearchImpl) Query(ctx context.Context, query string, limit int, ownerID uuid.UUID) ([]domain.SearchResult, error) {
	spanCtx, span := telemetry.Start(ctx, telemetry.WithOwner(ownerID))
	defer span.End()

	queryVector, err := s.generateEmbedding.FromText(spanCtx, query)
	if err != nil {
		err := domain.NewSearchErr(err)
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	candidates, err := s.todoRepo.ListEmbeddedTodos(spanCtx, ownerID)
	if err != nil {
		err := domain.NewSearchErr(fmt.Errorf("listing embedded todos: %w", err))
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	if len(candidates) == 0 {
		RecordSemanticSearchResults(spanCtx, 0)
		telemetry.RecordErrorAndStatus(span, nil)
		return []domain.SearchResult{}, nil
	}

	results := s.engine.RankCandidates(candidates, queryVector, limit)
	RecordSemanticSearchResults(spanCtx, len(results))

	telemetry.RecordErrorAndStatus(span, nil)
	return results, nil
}

// InitSemanticSearch initializes the SemanticSearch use case and registers it in the dependency container.
type InitSemanticSearch struct {
	TodoRepo            domain.TodoRepository `resolve:""`
	GenerateEmbedding   GenerateEmbedding     `resolve:""`
	EmbeddingDimension  int                   `config:"EMBEDDING_DIMENSION" default:"1536"`
	SimilarityThreshold float64               `config:"SEARCH_SIMILARITY_THRESHOLD" default:"0.3"`
}

// Initialize registers the SemanticSearch use case in the dependency container.
func (i InitSemanticSearch) Initialize(ctx context.Context) (context.Context, error) {
	engine := domain.NewSimilarityEngine(i.EmbeddingDimension, i.SimilarityThreshold)
	depend.Register[SemanticSearch](NewSemanticSearchImpl(i.TodoRepo, i.GenerateEmbedding, engine))
	return ctx, nil
}
