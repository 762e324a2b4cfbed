package pubsub

import (
	"context"
	"sync"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/domain"
	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// EventPublisher implements domain.EventPublisher using Google Cloud Pub/Sub.
// Each outbox topic maps to the Pub/Sub topic of the same name, and its
// publisher is created once and reused.
type EventPublisher struct {
	client     *pubsubV2.Client
	mu         *sync.Mutex
	publishers map[domain.OutboxTopic]*pubsubV2.Publisher
}

// NewEventPublisher creates a new instance of EventPublisher.
func NewEventPublisher(client *pubsubV2.Client) EventPublisher {
	return EventPublisher{
		client:     client,
		mu:         &sync.Mutex{},
		publishers: map[domain.OutboxTopic]*pubsubV2.Publisher{},
	}
}

// PublishEvent publishes the payload of event and waits for the server acknowledgement.
func (p EventPublisher) PublishEvent(ctx context.Context, event domain.OutboxEvent) error {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.String("event_id", event.ID.String()),
			attribute.String("event_type", string(event.EventType)),
			attribute.String("topic", string(event.Topic)),
		),
		telemetry.WithTodo(event.EntityID),
	)
	defer span.End()

	result := p.publisher(event.Topic).Publish(spanCtx, &pubsubV2.Message{
		Data: event.Payload,
		Attributes: map[string]string{
			"event_id":    event.ID.String(),
			"event_type":  string(event.EventType),
			"entity_type": string(event.EntityType),
			"entity_id":   event.EntityID.String(),
		},
	})

	_, err := result.Get(spanCtx)
	telemetry.RecordErrorAndStatus(span, err)
	return err
}

// Stop flushes and stops every publisher created so far.
func (p EventPublisher) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for topic, publisher := range p.publishers {
		publisher.Stop()
		delete(p.publishers, topic)
	}
}

func (p EventPublisher) publisher(topic domain.OutboxTopic) *pubsubV2.Publisher {
	p.mu.Lock()
	defer p.mu.Unlock()
	publisher, ok := p.publishers[topic]
	if !ok {
		publisher = p.client.Publisher(string(topic))
		p.publishers[topic] = publisher
	}
	return publisher
}

// InitPublisher registers the EventPublisher as the domain.EventPublisher.
type InitPublisher struct {
	Client    *pubsubV2.Client `resolve:""`
	publisher *EventPublisher
}

// Initialize registers the EventPublisher in the dependency container.
func (i *InitPublisher) Initialize(ctx context.Context) (context.Context, error) {
	publisher := NewEventPublisher(i.Client)
	i.publisher = &publisher
	depend.Register[domain.EventPublisher](publisher)
	return ctx, nil
}

// Close stops the topic publishers.
func (i *InitPublisher) Close() {
	if i.publisher != nil {
		i.publisher.Stop()
	}
}
