package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/domain"
	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// DeleteTodo defines the interface for the DeleteTodo use case.
type DeleteTodo interface {
	Execute(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
}

// DeleteTodoImpl is the implementation of the DeleteTodo use case.
type DeleteTodoImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
}

// NewDeleteTodoImpl creates a new instance of DeleteTodoImpl.
func NewDeleteTodoImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider) DeleteTodoImpl {
	return DeleteTodoImpl{
		uow:          uow,
		timeProvider: timeProvider,
	}
}

// Execute deletes a todo item by its ID.
func (dti DeleteTodoImpl) Execute(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	spanCtx, span := telemetry.Start(ctx, telemetry.WithOwner(ownerID), telemetry.WithTodo(id))
	defer span.End()

	err := dti.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		todo, err := findOwnedTodo(spanCtx, uow.Todo(), id, ownerID)
		if err != nil {
			return err
		}
		if err := uow.Todo().DeleteTodo(spanCtx, id); err != nil {
			return err
		}
		return uow.Outbox().CreateTodoEvent(spanCtx, domain.NewTodoEvent(domain.EventType_TODO_DELETED, todo, dti.timeProvider.Now()))
	})
	telemetry.RecordErrorAndStatus(span, err)
	return err
}

// InitDeleteTodo initializes the DeleteTodo use case.
type InitDeleteTodo struct {
	Uow          domain.UnitOfWork          `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the DeleteTodo use case in the dependency container.
func (i InitDeleteTodo) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[DeleteTodo](NewDeleteTodoImpl(i.Uow, i.TimeProvider))
	return ctx, nil
}
