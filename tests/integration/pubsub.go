package integration

import (
	"context"
	"errors"
	"fmt"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// initPubSubTopic creates the todo topic and a test subscription on the emulator.
type initPubSubTopic struct {
	ProjectID      string
	TopicID        string
	SubscriptionID string
	client         *pubsubV2.Client
}

func (i *initPubSubTopic) Initialize(ctx context.Context) (context.Context, error) {
	client, err := pubsubV2.NewClient(ctx, i.ProjectID)
	if err != nil {
		return ctx, fmt.Errorf("failed to create pubsub client: %w", err)
	}
	i.client = client

	topicName := fmt.Sprintf("projects/%s/topics/%s", i.ProjectID, i.TopicID)
	_, err = client.TopicAdminClient.CreateTopic(ctx, &pubsubpb.Topic{Name: topicName})
	if err != nil && !isAlreadyExists(err) {
		return ctx, fmt.Errorf("failed to create topic: %w", err)
	}

	_, err = client.SubscriptionAdminClient.CreateSubscription(ctx, &pubsubpb.Subscription{
		Name:  i.subscriptionName(),
		Topic: topicName,
	})
	if err != nil && !isAlreadyExists(err) {
		return ctx, fmt.Errorf("failed to create subscription: %w", err)
	}
	return ctx, nil
}

func (i *initPubSubTopic) Close() {
	if i.client != nil {
		_ = i.client.Close()
	}
}

func (i *initPubSubTopic) subscriptionName() string {
	return fmt.Sprintf("projects/%s/subscriptions/%s", i.ProjectID, i.SubscriptionID)
}

// receive collects the event_type attribute of incoming messages until ctx is done.
func (i *initPubSubTopic) receive(ctx context.Context, eventTypes chan<- string) error {
	err := i.client.Subscriber(i.subscriptionName()).Receive(ctx, func(_ context.Context, msg *pubsubV2.Message) {
		msg.Ack()
		select {
		case eventTypes <- msg.Attributes["event_type"]:
		default:
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func isAlreadyExists(err error) bool {
	return status.Code(err) == codes.AlreadyExists
}
