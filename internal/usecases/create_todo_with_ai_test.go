package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestCreateTodoWithAIImpl_Execute(t *testing.T) {
	const systemPrompt = "create a todo"
	vector := []float64{0.3, 0.4}

	completionFor := func(message string) domain.CompletionRequest {
		return domain.CompletionRequest{
			SystemPrompt: systemPrompt,
			UserMessage:  message,
			Temperature:  CompletionTemperature,
			MaxTokens:    CompletionMaxTokens,
		}
	}

	tests := map[string]struct {
		message         string
		setExpectations func(uow *domain.MockUnitOfWork, provider *domain.MockAIProvider)
		expectedTodo    domain.Todo
		expectedErr     error
	}{
		"success": {
			message: "fazer um bolo",
			setExpectations: func(uow *domain.MockUnitOfWork, provider *domain.MockAIProvider) {
				repo := domain.NewMockTodoRepository(t)
				outbox := domain.NewMockOutboxRepository(t)
				expectUnitOfWork(uow)
				uow.EXPECT().Todo().Return(repo)
				uow.EXPECT().Outbox().Return(outbox)

				provider.EXPECT().GenerateCompletion(mock.Anything, completionFor("fazer um bolo")).Return(domain.Completion{
					Content:          `{"title":"Fazer um bolo","description":"Preparar e assar um bolo.","urgency":"low"}`,
					PromptTokens:     120,
					CompletionTokens: 30,
				}, nil)
				provider.EXPECT().
					GenerateEmbedding(mock.Anything, "Título: Fazer um bolo\nDescrição: Preparar e assar um bolo.\nUrgência: low\nID do Usuário: "+fixedOwner.String()).
					Return(domain.EmbeddingVector{Vector: vector}, nil)
				repo.EXPECT().CreateTodo(mock.Anything, mock.Anything).Return(nil)
				outbox.EXPECT().CreateTodoEvent(mock.Anything, mock.Anything).Return(nil)
			},
			expectedTodo: domain.Todo{
				ID:          fixedTodoID,
				Title:       "Fazer um bolo",
				Description: "Preparar e assar um bolo.",
				Urgency:     domain.TodoUrgency_LOW,
				OwnerID:     fixedOwner,
				Embedding:   vector,
				CreatedAt:   fixedTime,
				UpdatedAt:   fixedTime,
			},
		},
		"fenced-response-with-unknown-urgency": {
			message: "terminar relatório",
			setExpectations: func(uow *domain.MockUnitOfWork, provider *domain.MockAIProvider) {
				repo := domain.NewMockTodoRepository(t)
				outbox := domain.NewMockOutboxRepository(t)
				expectUnitOfWork(uow)
				uow.EXPECT().Todo().Return(repo)
				uow.EXPECT().Outbox().Return(outbox)

				provider.EXPECT().GenerateCompletion(mock.Anything, completionFor("terminar relatório")).Return(domain.Completion{
					Content: "```json\n{\"title\":\"Terminar relatório\",\"urgency\":\"asap\"}\n```",
				}, nil)
				provider.EXPECT().
					GenerateEmbedding(mock.Anything, "Título: Terminar relatório\nUrgência: low\nID do Usuário: "+fixedOwner.String()).
					Return(domain.EmbeddingVector{Vector: vector}, nil)
				repo.EXPECT().CreateTodo(mock.Anything, mock.Anything).Return(nil)
				outbox.EXPECT().CreateTodoEvent(mock.Anything, mock.Anything).Return(nil)
			},
			expectedTodo: domain.Todo{
				ID:        fixedTodoID,
				Title:     "Terminar relatório",
				Urgency:   domain.TodoUrgency_LOW,
				OwnerID:   fixedOwner,
				Embedding: vector,
				CreatedAt: fixedTime,
				UpdatedAt: fixedTime,
			},
		},
		"empty-message": {
			message:     " ",
			expectedErr: domain.NewCreationFailedErr(domain.NewValidationErr("message cannot be empty")),
		},
		"completion-failure": {
			message: "fazer um bolo",
			setExpectations: func(uow *domain.MockUnitOfWork, provider *domain.MockAIProvider) {
				provider.EXPECT().GenerateCompletion(mock.Anything, completionFor("fazer um bolo")).Return(domain.Completion{}, errors.New("503 service unavailable"))
			},
			expectedErr: domain.NewCreationFailedErr(domain.NewProviderErr("503 service unavailable")),
		},
		"non-json-response-stores-nothing": {
			message: "comprar alimentos",
			setExpectations: func(uow *domain.MockUnitOfWork, provider *domain.MockAIProvider) {
				provider.EXPECT().GenerateCompletion(mock.Anything, completionFor("comprar alimentos")).Return(domain.Completion{
					Content: "Claro! Aqui está sua tarefa.",
				}, nil)
			},
			expectedErr: domain.NewCreationFailedErr(domain.NewAIResponseParseErr("invalid character 'C' looking for beginning of value")),
		},
		"response-without-title": {
			message: "fazer um bolo",
			setExpectations: func(uow *domain.MockUnitOfWork, provider *domain.MockAIProvider) {
				provider.EXPECT().GenerateCompletion(mock.Anything, completionFor("fazer um bolo")).Return(domain.Completion{
					Content: `{"description":"sem título"}`,
				}, nil)
			},
			expectedErr: domain.NewCreationFailedErr(domain.NewAIResponseParseErr("title is required")),
		},
		"embedding-failure-stores-nothing": {
			message: "fazer um bolo",
			setExpectations: func(uow *domain.MockUnitOfWork, provider *domain.MockAIProvider) {
				expectUnitOfWork(uow)
				provider.EXPECT().GenerateCompletion(mock.Anything, completionFor("fazer um bolo")).Return(domain.Completion{
					Content: `{"title":"Fazer um bolo","urgency":"medium"}`,
				}, nil)
				provider.EXPECT().GenerateEmbedding(mock.Anything, mock.Anything).Return(domain.EmbeddingVector{}, errors.New("quota exceeded"))
			},
			expectedErr: domain.NewCreationFailedErr(domain.NewEmbeddingGenerationErr(domain.NewProviderErr("quota exceeded"))),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			uow := domain.NewMockUnitOfWork(t)
			provider := domain.NewMockAIProvider(t)
			timeProvider := domain.NewMockCurrentTimeProvider(t)
			timeProvider.EXPECT().Now().Return(fixedTime).Maybe()
			if tt.setExpectations != nil {
				tt.setExpectations(uow, provider)
			}

			uc := NewCreateTodoWithAIImpl(
				uow,
				NewEmbeddingGatewayImpl(provider),
				newTodoCreator(timeProvider, provider),
				systemPrompt,
				zap.NewNop(),
			)
			got, err := uc.Execute(context.Background(), tt.message, fixedOwner)
			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expectedTodo, got)
		})
	}
}

func TestParseAITodoDraft(t *testing.T) {
	tests := map[string]struct {
		content     string
		expected    TodoDraft
		expectedErr bool
	}{
		"all-fields": {
			content:  `{"title":"Ligar para o médico","description":"Marcar consulta","urgency":"HIGH"}`,
			expected: TodoDraft{Title: "Ligar para o médico", Description: "Marcar consulta", Urgency: domain.TodoUrgency_HIGH},
		},
		"missing-urgency": {
			content:  `{"title":"Regar plantas"}`,
			expected: TodoDraft{Title: "Regar plantas", Urgency: domain.TodoUrgency_LOW},
		},
		"non-string-urgency": {
			content:  `{"title":"Regar plantas","urgency":3}`,
			expected: TodoDraft{Title: "Regar plantas", Urgency: domain.TodoUrgency_LOW},
		},
		"code-fence-without-language": {
			content:  "```\n{\"title\":\"Regar plantas\",\"urgency\":\" urgent \"}\n```",
			expected: TodoDraft{Title: "Regar plantas", Urgency: domain.TodoUrgency_URGENT},
		},
		"blank-title": {
			content:     `{"title":"  "}`,
			expectedErr: true,
		},
		"not-json": {
			content:     "Claro! Aqui está sua tarefa.",
			expectedErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := parseAITodoDraft(tt.content)
			if tt.expectedErr {
				var parseErr *domain.AIResponseParseErr
				assert.ErrorAs(t, err, &parseErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLoadCreateTodoPrompt(t *testing.T) {
	prompt, err := loadCreateTodoPrompt()
	assert.NoError(t, err)
	assert.Contains(t, prompt, "Return ONLY the JSON object")
	assert.Contains(t, prompt, `"urgency": "low" | "medium" | "high" | "urgent"`)
}

func TestInitCreateTodoWithAI_Initialize(t *testing.T) {
	i := InitCreateTodoWithAI{Logger: zap.NewNop()}

	ctx, err := i.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[CreateTodoWithAI]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
