package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestRelayOutboxImpl_Execute(t *testing.T) {
	eventID := uuid.MustParse("423e4567-e89b-12d3-a456-426614174000")
	eventID2 := uuid.MustParse("523e4567-e89b-12d3-a456-426614174000")

	pendingEvent := func(id uuid.UUID, eventType domain.EventType, retryCount int) domain.OutboxEvent {
		return domain.OutboxEvent{
			ID:         id,
			EntityType: domain.OutboxEntityType_Todo,
			EntityID:   fixedTodoID,
			Topic:      domain.OutboxTopic_Todo,
			EventType:  eventType,
			Status:     domain.OutboxStatus_Pending,
			RetryCount: retryCount,
			MaxRetries: domain.DefaultOutboxMaxRetries,
			CreatedAt:  fixedTime,
		}
	}

	tests := map[string]struct {
		setExpectations func(outbox *domain.MockOutboxRepository, publisher *domain.MockEventPublisher)
		expectedErr     error
	}{
		"success-relay-and-delete": {
			setExpectations: func(outbox *domain.MockOutboxRepository, publisher *domain.MockEventPublisher) {
				event := pendingEvent(eventID, domain.EventType_TODO_CREATED, 0)
				outbox.EXPECT().FetchPendingEvents(mock.Anything, 100).Return([]domain.OutboxEvent{event}, nil)
				publisher.EXPECT().PublishEvent(mock.Anything, event).Return(nil)
				outbox.EXPECT().DeleteEvent(mock.Anything, eventID).Return(nil)
			},
		},
		"success-relay-multiple-events": {
			setExpectations: func(outbox *domain.MockOutboxRepository, publisher *domain.MockEventPublisher) {
				events := []domain.OutboxEvent{
					pendingEvent(eventID, domain.EventType_TODO_CREATED, 0),
					pendingEvent(eventID2, domain.EventType_TODO_DELETED, 1),
				}
				outbox.EXPECT().FetchPendingEvents(mock.Anything, 100).Return(events, nil)
				for _, event := range events {
					publisher.EXPECT().PublishEvent(mock.Anything, event).Return(nil)
					outbox.EXPECT().DeleteEvent(mock.Anything, event.ID).Return(nil)
				}
			},
		},
		"publish-error-retry": {
			setExpectations: func(outbox *domain.MockOutboxRepository, publisher *domain.MockEventPublisher) {
				outbox.EXPECT().FetchPendingEvents(mock.Anything, 100).Return([]domain.OutboxEvent{
					pendingEvent(eventID, domain.EventType_TODO_UPDATED, 0),
				}, nil)
				publisher.EXPECT().PublishEvent(mock.Anything, mock.Anything).Return(errors.New("publish error"))
				outbox.EXPECT().UpdateEvent(mock.Anything, eventID, domain.OutboxStatus_Pending, 1, "publish error").Return(nil)
			},
		},
		"publish-error-max-retries-exceeded": {
			setExpectations: func(outbox *domain.MockOutboxRepository, publisher *domain.MockEventPublisher) {
				outbox.EXPECT().FetchPendingEvents(mock.Anything, 100).Return([]domain.OutboxEvent{
					pendingEvent(eventID, domain.EventType_TODO_UPDATED, domain.DefaultOutboxMaxRetries-1),
				}, nil)
				publisher.EXPECT().PublishEvent(mock.Anything, mock.Anything).Return(errors.New("publish error"))
				outbox.EXPECT().UpdateEvent(mock.Anything, eventID, domain.OutboxStatus_Failed, domain.DefaultOutboxMaxRetries, "publish error").Return(nil)
			},
		},
		"one-failure-does-not-stop-the-batch": {
			setExpectations: func(outbox *domain.MockOutboxRepository, publisher *domain.MockEventPublisher) {
				first := pendingEvent(eventID, domain.EventType_TODO_CREATED, 0)
				second := pendingEvent(eventID2, domain.EventType_TODO_CREATED, 0)
				outbox.EXPECT().FetchPendingEvents(mock.Anything, 100).Return([]domain.OutboxEvent{first, second}, nil)
				publisher.EXPECT().PublishEvent(mock.Anything, first).Return(nil)
				outbox.EXPECT().DeleteEvent(mock.Anything, eventID).Return(errors.New("delete error"))
				publisher.EXPECT().PublishEvent(mock.Anything, second).Return(nil)
				outbox.EXPECT().DeleteEvent(mock.Anything, eventID2).Return(nil)
			},
		},
		"fetch-pending-events-error": {
			setExpectations: func(outbox *domain.MockOutboxRepository, publisher *domain.MockEventPublisher) {
				outbox.EXPECT().FetchPendingEvents(mock.Anything, 100).Return(nil, errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
		"empty-batch": {
			setExpectations: func(outbox *domain.MockOutboxRepository, publisher *domain.MockEventPublisher) {
				outbox.EXPECT().FetchPendingEvents(mock.Anything, 100).Return([]domain.OutboxEvent{}, nil)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			uow := domain.NewMockUnitOfWork(t)
			outbox := domain.NewMockOutboxRepository(t)
			publisher := domain.NewMockEventPublisher(t)
			expectUnitOfWork(uow)
			uow.EXPECT().Outbox().Return(outbox)
			tt.setExpectations(outbox, publisher)

			relay := NewRelayOutboxImpl(uow, publisher, zap.NewNop())
			gotErr := relay.Execute(context.Background())

			assert.Equal(t, tt.expectedErr, gotErr)
		})
	}
}

func TestInitRelayOutbox_Initialize(t *testing.T) {
	iro := InitRelayOutbox{BatchSize: 25}

	ctx, err := iro.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registeredRelayOutbox, err := depend.Resolve[RelayOutbox]()
	assert.NoError(t, err)
	impl, ok := registeredRelayOutbox.(RelayOutboxImpl)
	assert.True(t, ok)
	assert.Equal(t, 25, impl.batchSize)
}
