package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/domain"
	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.uber.org/zap"
)

// DefaultRelayBatchSize is the number of pending events relayed per run.
const DefaultRelayBatchSize = 100

// RelayOutbox defines the interface for relaying outbox events
type RelayOutbox interface {
	// Execute processes pending outbox events and relays them
	Execute(ctx context.Context) error
}

// RelayOutboxImpl publishes pending outbox events to the event bus.
type RelayOutboxImpl struct {
	uow       domain.UnitOfWork
	publisher domain.EventPublisher
	logger    *zap.Logger
	batchSize int
}

// NewRelayOutboxImpl creates a new instance
func NewRelayOutboxImpl(uow domain.UnitOfWork, publisher domain.EventPublisher, logger *zap.Logger) RelayOutboxImpl {
	return RelayOutboxImpl{
		uow:       uow,
		publisher: publisher,
		logger:    logger,
		batchSize: DefaultRelayBatchSize,
	}
}

// Execute processes pending outbox events and relays them
func (r RelayOutboxImpl) Execute(ctx context.Context) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	err := r.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		events, err := uow.Outbox().FetchPendingEvents(spanCtx, r.batchSize)
		if err != nil {
			return err
		}

		for _, event := range events {
			if err := r.relayEvent(spanCtx, uow, event); err != nil {
				r.logger.Error("relay failed",
					zap.String("event_id", event.ID.String()),
					zap.String("event_type", string(event.EventType)),
					zap.Error(err),
				)
			}
		}
		return nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// relayEvent publishes one event, then deletes it or schedules a retry.
func (r RelayOutboxImpl) relayEvent(ctx context.Context, uow domain.UnitOfWork, event domain.OutboxEvent) error {
	if err := r.publisher.PublishEvent(ctx, event); err != nil {
		status, retries := event.FailedAttempt()
		if status == domain.OutboxStatus_Failed {
			r.logger.Warn("outbox event gave up",
				zap.String("event_id", event.ID.String()),
				zap.Int("attempts", retries),
			)
		}
		return uow.Outbox().UpdateEvent(ctx, event.ID, status, retries, err.Error())
	}
	return uow.Outbox().DeleteEvent(ctx, event.ID)
}

// InitRelayOutbox is used to initialize the RelayOutbox in the dependency container
type InitRelayOutbox struct {
	Uow       domain.UnitOfWork     `resolve:""`
	Logger    *zap.Logger           `resolve:""`
	Publisher domain.EventPublisher `resolve:""`
	BatchSize int                   `config:"OUTBOX_BATCH_SIZE" default:"100"`
}

// Initialize registers the RelayOutbox implementation in the dependency container
func (iro InitRelayOutbox) Initialize(ctx context.Context) (context.Context, error) {
	relay := NewRelayOutboxImpl(iro.Uow, iro.Publisher, iro.Logger)
	if iro.BatchSize > 0 {
		relay.batchSize = iro.BatchSize
	}
	depend.Register[RelayOutbox](relay)
	return ctx, nil
}
