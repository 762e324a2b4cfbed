package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/domain"
	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// UpdateTodoParams holds the fields to change. Nil fields are left untouched.
type UpdateTodoParams struct {
	Title       *string
	Description *string
	Urgency     *domain.TodoUrgency
}

type UpdateTodo interface {
	Execute(ctx context.Context, id uuid.UUID, ownerID uuid.UUID, params UpdateTodoParams) (domain.Todo, error)
}

// UpdateTodoImpl is the implementation of the UpdateTodo use case.
type UpdateTodoImpl struct {
	uow               domain.UnitOfWork
	timeProvider      domain.CurrentTimeProvider
	generateEmbedding GenerateEmbedding
}

// NewUpdateTodoImpl creates a new instance of UpdateTodoImpl.
func NewUpdateTodoImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider, generateEmbedding GenerateEmbedding) UpdateTodoImpl {
	return UpdateTodoImpl{
		uow:               uow,
		timeProvider:      timeProvider,
		generateEmbedding: generateEmbedding,
	}
}

// Execute applies params to the todo identified by id. The embedding is regenerated
// only when a field that feeds it has changed.
func (uti UpdateTodoImpl) Execute(ctx context.Context, id uuid.UUID, ownerID uuid.UUID, params UpdateTodoParams) (domain.Todo, error) {
	spanCtx, span := telemetry.Start(ctx, telemetry.WithOwner(ownerID), telemetry.WithTodo(id))
	defer span.End()

	now := uti.timeProvider.Now()
	var todo domain.Todo
	err := uti.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		current, err := findOwnedTodo(spanCtx, uow.Todo(), id, ownerID)
		if err != nil {
			return err
		}

		updated := current
		if params.Title != nil {
			updated.Title = *params.Title
		}
		if params.Description != nil {
			updated.Description = *params.Description
		}
		if params.Urgency != nil {
			updated.Urgency = *params.Urgency
		}
		updated.UpdatedAt = now

		if err := updated.Validate(); err != nil {
			return err
		}

		if current.SemanticContentChanged(updated) {
			embedding, err := uti.generateEmbedding.ForTodo(spanCtx, updated)
			if err != nil {
				return err
			}
			updated.Embedding = embedding
		}

		if err := uow.Todo().UpdateTodo(spanCtx, updated); err != nil {
			return err
		}

		todo = updated
		return uow.Outbox().CreateTodoEvent(spanCtx, domain.NewTodoEvent(domain.EventType_TODO_UPDATED, updated, now))
	})

	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Todo{}, err
	}

	return todo, nil
}

// InitUpdateTodo initializes the UpdateTodo use case and registers it in the dependency container.
type InitUpdateTodo struct {
	Uow               domain.UnitOfWork          `resolve:""`
	TimeService       domain.CurrentTimeProvider `resolve:""`
	GenerateEmbedding GenerateEmbedding          `resolve:""`
}

// Initialize initializes the UpdateTodoImpl use case.
func (iut InitUpdateTodo) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[UpdateTodo](NewUpdateTodoImpl(iut.Uow, iut.TimeService, iut.GenerateEmbedding))
	return ctx, nil
}
