package workers

import (
	"context"
	"testing"
	"time"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"cloud.google.com/go/pubsub/v2/pstest"
	"github.com/cleitonmarx/symbiont"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const testProjectID = "test-project"

// newTestBroker starts an in-memory Pub/Sub server with topicID and a subscription to it.
func newTestBroker(t *testing.T, topicID, subscriptionID string) *pubsubV2.Client {
	t.Helper()

	server := pstest.NewServer()
	t.Cleanup(func() { _ = server.Close() })

	conn, err := grpc.NewClient(server.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	client, err := pubsubV2.NewClient(t.Context(), testProjectID, option.WithGRPCConn(conn))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	topic, err := client.TopicAdminClient.CreateTopic(t.Context(), &pubsubpb.Topic{
		Name: "projects/" + testProjectID + "/topics/" + topicID,
	})
	require.NoError(t, err)

	_, err = client.SubscriptionAdminClient.CreateSubscription(t.Context(), &pubsubpb.Subscription{
		Name:  "projects/" + testProjectID + "/subscriptions/" + subscriptionID,
		Topic: topic.GetName(),
	})
	require.NoError(t, err)

	return client
}

// startRunnable runs r in the background. The returned stop cancels it and
// waits for Run to return.
func startRunnable(t *testing.T, r symbiont.Runnable) (stop func()) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	return func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("runnable did not shut down in time")
		}
	}
}

// waitBatches blocks until n relay attempts were signaled.
func waitBatches(t *testing.T, batchDone <-chan struct{}, n int) {
	t.Helper()

	for got := 0; got < n; got++ {
		select {
		case <-batchDone:
		case <-time.After(2 * time.Second):
			t.Fatalf("timeout waiting for relay batches; got %d, expected %d", got, n)
		}
	}
}
