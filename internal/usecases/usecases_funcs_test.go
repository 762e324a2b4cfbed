package usecases

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

var (
	fixedTime   = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	fixedTodoID = uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	fixedOwner  = uuid.MustParse("223e4567-e89b-12d3-a456-426614174000")
	otherOwner  = uuid.MustParse("323e4567-e89b-12d3-a456-426614174000")
)

func fixedUUID() uuid.UUID {
	return fixedTodoID
}

// newGenerateEmbedding wires a GenerateEmbeddingImpl over a mocked provider without cache.
func newGenerateEmbedding(provider domain.AIProvider) GenerateEmbeddingImpl {
	return NewGenerateEmbeddingImpl(NewEmbeddingGatewayImpl(provider), nil, 0, zap.NewNop())
}

// newTodoCreator wires a TodoCreatorImpl with deterministic ids over a mocked provider.
func newTodoCreator(timeProvider domain.CurrentTimeProvider, provider domain.AIProvider) TodoCreatorImpl {
	creator := NewTodoCreatorImpl(timeProvider, newGenerateEmbedding(provider))
	creator.createUUID = fixedUUID
	return creator
}

// expectUnitOfWork makes uow run its callback against itself.
func expectUnitOfWork(uow *domain.MockUnitOfWork) {
	uow.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
			return fn(uow)
		})
}
