package domain

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// TodoUrgency represents how urgent a todo item is.
type TodoUrgency string

const (
	// TodoUrgency_LOW is used for routine tasks with no deadline.
	TodoUrgency_LOW TodoUrgency = "low"
	// TodoUrgency_MEDIUM is used for important but not time-sensitive tasks.
	TodoUrgency_MEDIUM TodoUrgency = "medium"
	// TodoUrgency_HIGH is used for important tasks with approaching deadlines.
	TodoUrgency_HIGH TodoUrgency = "high"
	// TodoUrgency_URGENT is used for critical tasks requiring immediate attention.
	TodoUrgency_URGENT TodoUrgency = "urgent"
)

// MaxTodoTitleLength is the maximum number of characters of a todo title.
const MaxTodoTitleLength = 200

// IsValid reports whether u is one of the known urgency levels.
func (u TodoUrgency) IsValid() bool {
	switch u {
	case TodoUrgency_LOW, TodoUrgency_MEDIUM, TodoUrgency_HIGH, TodoUrgency_URGENT:
		return true
	}
	return false
}

// Todo represents a todo item in the system.
//
// Embedding is derived state: it is rebuilt from Title, Description and Urgency
// and must never be exposed to callers outside the core.
type Todo struct {
	ID          uuid.UUID
	Title       string
	Description string
	Urgency     TodoUrgency
	OwnerID     uuid.UUID
	Embedding   []float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks the invariants of a todo before it is persisted.
func (t Todo) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return NewValidationErr("title cannot be empty")
	}
	if utf8.RuneCountInString(t.Title) > MaxTodoTitleLength {
		return NewValidationErr("title must be between 1 and 200 characters")
	}
	if !t.Urgency.IsValid() {
		return NewValidationErr("urgency must be one of low, medium, high or urgent")
	}
	if t.OwnerID == uuid.Nil {
		return NewValidationErr("owner_id cannot be empty")
	}
	return nil
}

// EmbeddingSource returns the fields of the todo that make up its embedding text.
func (t Todo) EmbeddingSource() EmbeddingSource {
	src := EmbeddingSource{
		Title:       t.Title,
		Description: t.Description,
		Urgency:     t.Urgency,
	}
	if t.OwnerID != uuid.Nil {
		ownerID := t.OwnerID
		src.OwnerID = &ownerID
	}
	return src
}

// SemanticContentChanged reports whether other differs from t in any field that feeds the embedding.
func (t Todo) SemanticContentChanged(other Todo) bool {
	return t.Title != other.Title ||
		t.Description != other.Description ||
		t.Urgency != other.Urgency
}

// ListTodosParams represents the parameters for listing todo items.
type ListTodosParams struct {
	OwnerID *uuid.UUID
}

// ListTodoOption defines a function type for modifying ListTodosParams.
type ListTodoOption func(*ListTodosParams)

// WithOwner is a ListTodoOption that restricts the listing to the todos of one owner.
func WithOwner(ownerID uuid.UUID) ListTodoOption {
	return func(params *ListTodosParams) {
		params.OwnerID = &ownerID
	}
}

// TodoRepository defines the interface for interacting with todo items in the data store.
type TodoRepository interface {
	// ListTodos retrieves a page of todo items, newest first, together with the total number of matching items.
	ListTodos(ctx context.Context, page int, pageSize int, opts ...ListTodoOption) ([]Todo, int, error)

	// ListEmbeddedTodos retrieves every todo of the owner that carries an embedding, embedding included.
	ListEmbeddedTodos(ctx context.Context, ownerID uuid.UUID) ([]Todo, error)

	// CreateTodo stores a new todo item.
	CreateTodo(ctx context.Context, todo Todo) error

	// UpdateTodo updates an existing todo item identified by its id.
	UpdateTodo(ctx context.Context, todo Todo) error

	// DeleteTodo removes a todo item identified by id from the data store.
	DeleteTodo(ctx context.Context, id uuid.UUID) error

	// GetTodo retrieves a todo item by its unique identifier.
	GetTodo(ctx context.Context, id uuid.UUID) (Todo, bool, error)
}
