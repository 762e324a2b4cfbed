package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventType identifies the kind of change a todo event describes.
type EventType string

const (
	// EventType_TODO_CREATED represents the event when a todo item is created.
	EventType_TODO_CREATED EventType = "TODO.CREATED"
	// EventType_TODO_UPDATED represents the event when a todo item is updated.
	EventType_TODO_UPDATED EventType = "TODO.UPDATED"
	// EventType_TODO_DELETED represents the event when a todo item is deleted.
	EventType_TODO_DELETED EventType = "TODO.DELETED"
)

// TodoEvent represents a change of a todo item. It never carries the embedding.
type TodoEvent struct {
	Type      EventType   `json:"type"`
	TodoID    uuid.UUID   `json:"todo_id"`
	OwnerID   uuid.UUID   `json:"owner_id"`
	Urgency   TodoUrgency `json:"urgency"`
	CreatedAt time.Time   `json:"created_at"`
}

// NewTodoEvent creates the event of type eventType for todo at the given time.
func NewTodoEvent(eventType EventType, todo Todo, at time.Time) TodoEvent {
	return TodoEvent{
		Type:      eventType,
		TodoID:    todo.ID,
		OwnerID:   todo.OwnerID,
		Urgency:   todo.Urgency,
		CreatedAt: at,
	}
}

// EventPublisher defines the interface for publishing events.
type EventPublisher interface {
	PublishEvent(ctx context.Context, event OutboxEvent) error
}
