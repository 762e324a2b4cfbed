package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/domain"
	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// CreateTodo defines the interface for the CreateTodo use case.
type CreateTodo interface {
	Execute(ctx context.Context, ownerID uuid.UUID, draft TodoDraft) (domain.Todo, error)
}

// CreateTodoImpl is the implementation of the CreateTodo use case.
type CreateTodoImpl struct {
	uow         domain.UnitOfWork
	todoCreator TodoCreator
}

// NewCreateTodoImpl creates a new instance of CreateTodoImpl.
func NewCreateTodoImpl(uow domain.UnitOfWork, todoCreator TodoCreator) CreateTodoImpl {
	return CreateTodoImpl{
		uow:         uow,
		todoCreator: todoCreator,
	}
}

// Execute creates a new todo item owned by ownerID.
func (cti CreateTodoImpl) Execute(ctx context.Context, ownerID uuid.UUID, draft TodoDraft) (domain.Todo, error) {
	spanCtx, span := telemetry.Start(ctx, telemetry.WithOwner(ownerID))
	defer span.End()

	var todo domain.Todo
	err := cti.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		created, err := cti.todoCreator.Create(spanCtx, uow, ownerID, draft)
		if err != nil {
			return err
		}
		todo = created
		return nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Todo{}, err
	}

	return todo, nil
}

// InitCreateTodo initializes the CreateTodo use case and registers it in the dependency container.
type InitCreateTodo struct {
	Uow         domain.UnitOfWork `resolve:""`
	TodoCreator TodoCreator       `resolve:""`
}

// Initialize initializes the CreateTodoImpl use case and registers it in the dependency container.
func (ict InitCreateTodo) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[CreateTodo](NewCreateTodoImpl(ict.Uow, ict.TodoCreator))
	return ctx, nil
}
