package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OutboxStatus is the relay state of an outbox event.
type OutboxStatus string

const (
	// OutboxStatus_Pending events are picked up by the next relay run.
	OutboxStatus_Pending OutboxStatus = "PENDING"
	// OutboxStatus_Failed events ran out of publish attempts and are kept for inspection.
	OutboxStatus_Failed OutboxStatus = "FAILED"
)

// OutboxEntityType names the aggregate an outbox event belongs to.
type OutboxEntityType string

// OutboxEntityType_Todo marks events about todos.
const OutboxEntityType_Todo OutboxEntityType = "Todo"

// OutboxTopic names the broker topic an outbox event is published to.
type OutboxTopic string

// OutboxTopic_Todo carries every TodoEvent.
const OutboxTopic_Todo OutboxTopic = "Todo"

// DefaultOutboxMaxRetries is the number of publish attempts before an event is marked failed.
const DefaultOutboxMaxRetries = 5

// OutboxEvent is a TodoEvent waiting in the outbox to be published.
// Payload is the JSON encoding of the TodoEvent.
type OutboxEvent struct {
	ID         uuid.UUID
	EntityType OutboxEntityType
	EntityID   uuid.UUID
	Topic      OutboxTopic
	EventType  EventType
	Payload    []byte
	Status     OutboxStatus
	RetryCount int
	MaxRetries int
	LastError  *string
	CreatedAt  time.Time
}

// FailedAttempt returns the status and retry count to store after a failed publish.
// The event stays pending until MaxRetries attempts have been made.
func (e OutboxEvent) FailedAttempt() (OutboxStatus, int) {
	retries := e.RetryCount + 1
	if retries >= e.MaxRetries {
		return OutboxStatus_Failed, retries
	}
	return OutboxStatus_Pending, retries
}

// OutboxRepository stores outbox events. Implementations bound to a UnitOfWork
// write in its transaction.
type OutboxRepository interface {
	// CreateTodoEvent stores event as a pending outbox event.
	CreateTodoEvent(ctx context.Context, event TodoEvent) error
	// FetchPendingEvents returns up to limit pending events, oldest first.
	FetchPendingEvents(ctx context.Context, limit int) ([]OutboxEvent, error)
	// UpdateEvent stores the outcome of a failed publish.
	UpdateEvent(ctx context.Context, eventID uuid.UUID, status OutboxStatus, retryCount int, lastError string) error
	// DeleteEvent removes a published event.
	DeleteEvent(ctx context.Context, eventID uuid.UUID) error
}
