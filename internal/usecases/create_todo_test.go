package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateTodoImpl_Execute(t *testing.T) {
	vector := []float64{0.5, 0.5}

	tests := map[string]struct {
		draft           TodoDraft
		setExpectations func(uow *domain.MockUnitOfWork, provider *domain.MockAIProvider)
		expectedTodo    domain.Todo
		expectedErr     error
	}{
		"success": {
			draft: TodoDraft{Title: "Pagar boleto", Description: "Conta de luz", Urgency: domain.TodoUrgency_URGENT},
			setExpectations: func(uow *domain.MockUnitOfWork, provider *domain.MockAIProvider) {
				repo := domain.NewMockTodoRepository(t)
				outbox := domain.NewMockOutboxRepository(t)
				expectUnitOfWork(uow)
				uow.EXPECT().Todo().Return(repo)
				uow.EXPECT().Outbox().Return(outbox)

				provider.EXPECT().
					GenerateEmbedding(mock.Anything, "Título: Pagar boleto\nDescrição: Conta de luz\nUrgência: urgent\nID do Usuário: "+fixedOwner.String()).
					Return(domain.EmbeddingVector{Vector: vector, TotalTokens: 12}, nil)
				repo.EXPECT().CreateTodo(mock.Anything, mock.Anything).Return(nil)
				outbox.EXPECT().CreateTodoEvent(mock.Anything, mock.Anything).Return(nil)
			},
			expectedTodo: domain.Todo{
				ID:          fixedTodoID,
				Title:       "Pagar boleto",
				Description: "Conta de luz",
				Urgency:     domain.TodoUrgency_URGENT,
				OwnerID:     fixedOwner,
				Embedding:   vector,
				CreatedAt:   fixedTime,
				UpdatedAt:   fixedTime,
			},
		},
		"validation-error": {
			draft: TodoDraft{Title: ""},
			setExpectations: func(uow *domain.MockUnitOfWork, provider *domain.MockAIProvider) {
				expectUnitOfWork(uow)
			},
			expectedErr: domain.NewValidationErr("title cannot be empty"),
		},
		"unit-of-work-error": {
			draft: TodoDraft{Title: "Pagar boleto"},
			setExpectations: func(uow *domain.MockUnitOfWork, provider *domain.MockAIProvider) {
				uow.EXPECT().Execute(mock.Anything, mock.Anything).Return(errors.New("begin failed"))
			},
			expectedErr: errors.New("begin failed"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			uow := domain.NewMockUnitOfWork(t)
			provider := domain.NewMockAIProvider(t)
			timeProvider := domain.NewMockCurrentTimeProvider(t)
			timeProvider.EXPECT().Now().Return(fixedTime).Maybe()
			tt.setExpectations(uow, provider)

			cti := NewCreateTodoImpl(uow, newTodoCreator(timeProvider, provider))
			got, err := cti.Execute(context.Background(), fixedOwner, tt.draft)
			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expectedTodo, got)
		})
	}
}

func TestInitCreateTodo_Initialize(t *testing.T) {
	ict := InitCreateTodo{}

	ctx, err := ict.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registeredCreateTodo, err := depend.Resolve[CreateTodo]()
	assert.NoError(t, err)
	assert.NotNil(t, registeredCreateTodo)
}
