package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/domain"
	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

const (
	// DefaultPageSize is the page size used when none is given.
	DefaultPageSize = 10
	// MaxPageSize is the largest accepted page size.
	MaxPageSize = 100
)

// TodoPage is one page of todos plus the pagination totals.
type TodoPage struct {
	Items    []domain.Todo
	Page     int
	PageSize int
	Total    int
	Pages    int
}

// ListTodos defines the interface for the ListTodos use case.
type ListTodos interface {
	Query(ctx context.Context, ownerID uuid.UUID, page int, pageSize int) (TodoPage, error)
}

// ListTodosImpl is the implementation of the ListTodos use case.
type ListTodosImpl struct {
	todoRepo domain.TodoRepository
}

// NewListTodosImpl creates a new instance of ListTodosImpl.
func NewListTodosImpl(todoRepo domain.TodoRepository) ListTodosImpl {
	return ListTodosImpl{
		todoRepo: todoRepo,
	}
}

// Query retrieves a page of the todos of ownerID, newest first.
func (lti ListTodosImpl) Query(ctx context.Context, ownerID uuid.UUID, page int, pageSize int) (TodoPage, error) {
	spanCtx, span := telemetry.Start(ctx, telemetry.WithOwner(ownerID))
	defer span.End()

	if err := validateListTodosParams(page, pageSize); telemetry.RecordErrorAndStatus(span, err) {
		return TodoPage{}, err
	}

	todos, total, err := lti.todoRepo.ListTodos(spanCtx, page, pageSize, domain.WithOwner(ownerID))
	if telemetry.RecordErrorAndStatus(span, err) {
		return TodoPage{}, err
	}

	pages := 0
	if total > 0 {
		pages = (total + pageSize - 1) / pageSize
	}

	return TodoPage{
		Items:    todos,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
		Pages:    pages,
	}, nil
}

func validateListTodosParams(page, pageSize int) error {
	if page < 1 {
		return domain.NewValidationErr("page must be greater than or equal to 1")
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		return domain.NewValidationErr("pageSize must be between 1 and 100")
	}
	return nil
}

// InitListTodos initializes the ListTodos use case and registers it in the dependency container.
type InitListTodos struct {
	TodoRepo domain.TodoRepository `resolve:""`
}

// Initialize initializes the ListTodosImpl use case and registers it in the dependency container.
func (ilt InitListTodos) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListTodos](NewListTodosImpl(ilt.TodoRepo))
	return ctx, nil
}
