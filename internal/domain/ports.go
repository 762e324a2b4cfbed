package domain

import (
	"context"
	"time"
)

// UnitOfWork groups todo and outbox writes into a single transaction, so a
// todo change and its TodoEvent are stored together or not at all.
type UnitOfWork interface {
	// Todo returns the todo repository bound to the current transaction.
	Todo() TodoRepository
	// Outbox returns the outbox repository bound to the current transaction.
	Outbox() OutboxRepository
	// Execute runs fn in a new transaction, committing when fn returns nil.
	Execute(ctx context.Context, fn func(uow UnitOfWork) error) error
}

// CurrentTimeProvider is the clock used to stamp todos and events.
type CurrentTimeProvider interface {
	Now() time.Time
}
