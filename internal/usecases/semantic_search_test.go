package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSemanticSearchImpl_Query(t *testing.T) {
	engine := domain.NewSimilarityEngine(2, 0.3)
	queryVector := []float64{1, 0}

	best := domain.Todo{ID: uuid.MustParse("00000000-0000-0000-0000-000000000001"), Title: "Comprar leite", Urgency: domain.TodoUrgency_LOW, OwnerID: fixedOwner, CreatedAt: fixedTime, UpdatedAt: fixedTime, Embedding: []float64{1, 0}}
	good := domain.Todo{ID: uuid.MustParse("00000000-0000-0000-0000-000000000002"), Title: "Comprar pão", Urgency: domain.TodoUrgency_MEDIUM, OwnerID: fixedOwner, CreatedAt: fixedTime, UpdatedAt: fixedTime, Embedding: []float64{1, 1}}
	unrelated := domain.Todo{ID: uuid.MustParse("00000000-0000-0000-0000-000000000003"), Title: "Correr", Urgency: domain.TodoUrgency_LOW, OwnerID: fixedOwner, Embedding: []float64{0, 1}}
	groceries := domain.Todo{ID: uuid.MustParse("00000000-0000-0000-0000-000000000005"), Title: "Comprar arroz", Urgency: domain.TodoUrgency_LOW, OwnerID: fixedOwner, Embedding: []float64{0.9, 0.9}}
	market := domain.Todo{ID: uuid.MustParse("00000000-0000-0000-0000-000000000006"), Title: "Ir ao mercado", Urgency: domain.TodoUrgency_HIGH, OwnerID: fixedOwner, Embedding: []float64{0.9, 0.9}}
	legacy := domain.Todo{ID: uuid.MustParse("00000000-0000-0000-0000-000000000004"), Title: "Antigo", Urgency: domain.TodoUrgency_LOW, OwnerID: fixedOwner, Embedding: []float64{1, 0, 0}}

	tests := map[string]struct {
		query           string
		limit           int
		setExpectations func(provider *domain.MockAIProvider, repo *domain.MockTodoRepository)
		expected        []domain.SearchResult
		expectedErr     error
	}{
		"ranked-results": {
			query: "leite",
			limit: 10,
			setExpectations: func(provider *domain.MockAIProvider, repo *domain.MockTodoRepository) {
				provider.EXPECT().GenerateEmbedding(mock.Anything, "leite").Return(domain.EmbeddingVector{Vector: queryVector}, nil)
				repo.EXPECT().ListEmbeddedTodos(mock.Anything, fixedOwner).Return([]domain.Todo{unrelated, good, legacy, best}, nil)
			},
			expected: []domain.SearchResult{
				{ID: best.ID, Title: best.Title, Urgency: best.Urgency, CreatedAt: fixedTime, UpdatedAt: fixedTime, Similarity: 1},
				{ID: good.ID, Title: good.Title, Urgency: good.Urgency, CreatedAt: fixedTime, UpdatedAt: fixedTime, Similarity: 0.7071067811865475},
			},
		},
		"equal-scores-keep-stored-order": {
			query: "comprar alimentos",
			limit: 10,
			setExpectations: func(provider *domain.MockAIProvider, repo *domain.MockTodoRepository) {
				provider.EXPECT().GenerateEmbedding(mock.Anything, "comprar alimentos").Return(domain.EmbeddingVector{Vector: []float64{0.9, 0.9}}, nil)
				repo.EXPECT().ListEmbeddedTodos(mock.Anything, fixedOwner).Return([]domain.Todo{groceries, market}, nil)
			},
			expected: []domain.SearchResult{
				{ID: groceries.ID, Title: groceries.Title, Urgency: groceries.Urgency, Similarity: 1},
				{ID: market.ID, Title: market.Title, Urgency: market.Urgency, Similarity: 1},
			},
		},
		"limit-applied": {
			query: "leite",
			limit: 1,
			setExpectations: func(provider *domain.MockAIProvider, repo *domain.MockTodoRepository) {
				provider.EXPECT().GenerateEmbedding(mock.Anything, "leite").Return(domain.EmbeddingVector{Vector: queryVector}, nil)
				repo.EXPECT().ListEmbeddedTodos(mock.Anything, fixedOwner).Return([]domain.Todo{good, best}, nil)
			},
			expected: []domain.SearchResult{
				{ID: best.ID, Title: best.Title, Urgency: best.Urgency, CreatedAt: fixedTime, UpdatedAt: fixedTime, Similarity: 1},
			},
		},
		"no-embedded-todos": {
			query: "leite",
			limit: 10,
			setExpectations: func(provider *domain.MockAIProvider, repo *domain.MockTodoRepository) {
				provider.EXPECT().GenerateEmbedding(mock.Anything, "leite").Return(domain.EmbeddingVector{Vector: queryVector}, nil)
				repo.EXPECT().ListEmbeddedTodos(mock.Anything, fixedOwner).Return(nil, nil)
			},
			expected: []domain.SearchResult{},
		},
		"nothing-above-threshold": {
			query: "leite",
			limit: 10,
			setExpectations: func(provider *domain.MockAIProvider, repo *domain.MockTodoRepository) {
				provider.EXPECT().GenerateEmbedding(mock.Anything, "leite").Return(domain.EmbeddingVector{Vector: queryVector}, nil)
				repo.EXPECT().ListEmbeddedTodos(mock.Anything, fixedOwner).Return([]domain.Todo{unrelated}, nil)
			},
			expected: []domain.SearchResult{},
		},
		"embedding-failure": {
			query: "leite",
			limit: 10,
			setExpectations: func(provider *domain.MockAIProvider, repo *domain.MockTodoRepository) {
				provider.EXPECT().GenerateEmbedding(mock.Anything, "leite").Return(domain.EmbeddingVector{}, errors.New("quota exceeded"))
			},
			expectedErr: domain.NewSearchErr(errors.New("embedding generation failed: provider error: quota exceeded")),
		},
		"empty-query": {
			query:       "  ",
			limit:       10,
			expectedErr: domain.NewSearchErr(errors.New("embedding generation failed: text cannot be empty")),
		},
		"storage-failure": {
			query: "leite",
			limit: 10,
			setExpectations: func(provider *domain.MockAIProvider, repo *domain.MockTodoRepository) {
				provider.EXPECT().GenerateEmbedding(mock.Anything, "leite").Return(domain.EmbeddingVector{Vector: queryVector}, nil)
				repo.EXPECT().ListEmbeddedTodos(mock.Anything, fixedOwner).Return(nil, errors.New("connection reset"))
			},
			expectedErr: domain.NewSearchErr(errors.New("listing embedded todos: connection reset")),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			provider := domain.NewMockAIProvider(t)
			repo := domain.NewMockTodoRepository(t)
			if tt.setExpectations != nil {
				tt.setExpectations(provider, repo)
			}

			uc := NewSemanticSearchImpl(repo, newGenerateEmbedding(provider), engine)
			got, err := uc.Query(context.Background(), tt.query, tt.limit, fixedOwner)
			assert.Equal(t, tt.expectedErr, err)
			if tt.expectedErr != nil {
				assert.Nil(t, got)
				return
			}
			if assert.Len(t, got, len(tt.expected)) {
				assert.NotNil(t, got)
				for i := range tt.expected {
					assert.Equal(t, tt.expected[i].ID, got[i].ID)
					assert.Equal(t, tt.expected[i].Title, got[i].Title)
					assert.Equal(t, tt.expected[i].Urgency, got[i].Urgency)
					assert.InDelta(t, tt.expected[i].Similarity, got[i].Similarity, 1e-9)
				}
			}
		})
	}
}

func TestInitSemanticSearch_Initialize(t *testing.T) {
	i := InitSemanticSearch{
		TodoRepo:            domain.NewMockTodoRepository(t),
		GenerateEmbedding:   newGenerateEmbedding(domain.NewMockAIProvider(t)),
		EmbeddingDimension:  domain.DefaultEmbeddingDimension,
		SimilarityThreshold: domain.DefaultSimilarityThreshold,
	}

	ctx, err := i.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[SemanticSearch]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
