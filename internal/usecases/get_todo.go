package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/domain"
	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// GetTodo defines the interface for the GetTodo use case.
type GetTodo interface {
	Query(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (domain.Todo, error)
}

// GetTodoImpl is the implementation of the GetTodo use case.
type GetTodoImpl struct {
	todoRepo domain.TodoRepository
}

// NewGetTodoImpl creates a new instance of GetTodoImpl.
func NewGetTodoImpl(todoRepo domain.TodoRepository) GetTodoImpl {
	return GetTodoImpl{
		todoRepo: todoRepo,
	}
}

// Query returns the todo identified by id if it belongs to ownerID.
func (g GetTodoImpl) Query(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (domain.Todo, error) {
	spanCtx, span := telemetry.Start(ctx, telemetry.WithOwner(ownerID), telemetry.WithTodo(id))
	defer span.End()

	todo, err := findOwnedTodo(spanCtx, g.todoRepo, id, ownerID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Todo{}, err
	}
	return todo, nil
}

// findOwnedTodo loads a todo and hides the ones owned by someone else.
func findOwnedTodo(ctx context.Context, repo domain.TodoRepository, id uuid.UUID, ownerID uuid.UUID) (domain.Todo, error) {
	todo, found, err := repo.GetTodo(ctx, id)
	if err != nil {
		return domain.Todo{}, err
	}
	if !found || todo.OwnerID != ownerID {
		return domain.Todo{}, domain.NewNotFoundErr(fmt.Sprintf("todo with ID %s not found", id))
	}
	return todo, nil
}

// InitGetTodo initializes the GetTodo use case and registers it in the dependency container.
type InitGetTodo struct {
	TodoRepo domain.TodoRepository `resolve:""`
}

// Initialize registers the GetTodo use case in the dependency container.
func (i InitGetTodo) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetTodo](NewGetTodoImpl(i.TodoRepo))
	return ctx, nil
}
