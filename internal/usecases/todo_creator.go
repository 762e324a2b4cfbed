package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// TodoDraft holds the user-provided fields of a todo that is about to be created.
type TodoDraft struct {
	Title       string
	Description string
	Urgency     domain.TodoUrgency
}

// TodoCreator defines the interface for creating todos within a unit of work.
type TodoCreator interface {
	Create(ctx context.Context, uow domain.UnitOfWork, ownerID uuid.UUID, draft TodoDraft) (domain.Todo, error)
}

// TodoCreatorImpl is the implementation of the TodoCreator use case.
type TodoCreatorImpl struct {
	timeProvider      domain.CurrentTimeProvider
	generateEmbedding GenerateEmbedding
	createUUID        func() uuid.UUID
}

// NewTodoCreatorImpl creates a new instance of TodoCreatorImpl.
func NewTodoCreatorImpl(timeProvider domain.CurrentTimeProvider, generateEmbedding GenerateEmbedding) TodoCreatorImpl {
	return TodoCreatorImpl{
		timeProvider:      timeProvider,
		generateEmbedding: generateEmbedding,
		createUUID:        uuid.New,
	}
}

// Create validates draft, embeds it and stores the todo with its TODO.CREATED event.
// An empty urgency defaults to low.
func (tci TodoCreatorImpl) Create(ctx context.Context, uow domain.UnitOfWork, ownerID uuid.UUID, draft TodoDraft) (domain.Todo, error) {
	now := tci.timeProvider.Now()

	urgency := draft.Urgency
	if urgency == "" {
		urgency = domain.TodoUrgency_LOW
	}

	todo := domain.Todo{
		ID:          tci.createUUID(),
		Title:       draft.Title,
		Description: draft.Description,
		Urgency:     urgency,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := todo.Validate(); err != nil {
		return domain.Todo{}, err
	}

	embedding, err := tci.generateEmbedding.ForTodo(ctx, todo)
	if err != nil {
		return domain.Todo{}, err
	}
	todo.Embedding = embedding

	if err := uow.Todo().CreateTodo(ctx, todo); err != nil {
		return domain.Todo{}, err
	}

	if err := uow.Outbox().CreateTodoEvent(ctx, domain.NewTodoEvent(domain.EventType_TODO_CREATED, todo, now)); err != nil {
		return domain.Todo{}, err
	}

	return todo, nil
}

// InitTodoCreator initializes the TodoCreator and registers it in the dependency container.
type InitTodoCreator struct {
	TimeService       domain.CurrentTimeProvider `resolve:""`
	GenerateEmbedding GenerateEmbedding          `resolve:""`
}

// Initialize initializes the TodoCreatorImpl use case and registers it in the dependency container.
func (ict InitTodoCreator) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[TodoCreator](NewTodoCreatorImpl(ict.TimeService, ict.GenerateEmbedding))
	return ctx, nil
}
