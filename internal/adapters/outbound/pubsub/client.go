package pubsub

import (
	"context"
	"fmt"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// InitClient registers the Pub/Sub client that carries todo events.
// PUBSUB_EMULATOR_HOST is honored by the client library.
type InitClient struct {
	Logger      *zap.Logger `resolve:""`
	ProjectID   string      `config:"PUBSUB_PROJECT_ID"`
	EnsureTopic bool        `config:"PUBSUB_ENSURE_TOPIC" default:"false"`
	client      *pubsubV2.Client
}

// Initialize creates the client, unless one was already set, and registers it.
// With PUBSUB_ENSURE_TOPIC the todo topic is created when missing.
func (i *InitClient) Initialize(ctx context.Context) (context.Context, error) {
	if i.client == nil {
		client, err := pubsubV2.NewClient(ctx, i.ProjectID)
		if err != nil {
			return ctx, fmt.Errorf("failed to create pubsub client: %w", err)
		}
		i.client = client
	}

	if i.EnsureTopic {
		if err := ensureTopic(ctx, i.client, i.ProjectID, domain.OutboxTopic_Todo); err != nil {
			return ctx, err
		}
		i.Logger.Info("pubsub topic ready", zap.String("topic", string(domain.OutboxTopic_Todo)))
	}

	depend.Register(i.client)
	return ctx, nil
}

// Close closes the Pub/Sub client.
func (i *InitClient) Close() {
	if i.client == nil {
		return
	}
	if err := i.client.Close(); err != nil {
		i.Logger.Error("failed to close pubsub client", zap.Error(err))
	}
}

func ensureTopic(ctx context.Context, client *pubsubV2.Client, projectID string, topic domain.OutboxTopic) error {
	_, err := client.TopicAdminClient.CreateTopic(ctx, &pubsubpb.Topic{
		Name: fmt.Sprintf("projects/%s/topics/%s", projectID, topic),
	})
	if err != nil && status.Code(err) != codes.AlreadyExists {
		return fmt.Errorf("failed to create topic %s: %w", topic, err)
	}
	return nil
}
