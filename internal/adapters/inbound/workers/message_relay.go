package workers

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/usecases"
	"go.uber.org/zap"
)

// MessageRelay publishes pending outbox events, so todo events reach the broker
// shortly after the transaction that recorded them commits.
type MessageRelay struct {
	RelayOutbox usecases.RelayOutbox `resolve:""`
	Logger      *zap.Logger          `resolve:""`
	Interval    time.Duration        `config:"FETCH_OUTBOX_INTERVAL" default:"500ms"`
	// batchDone receives a signal after every relay attempt. Tests only.
	batchDone chan struct{}
}

// Run relays a batch right away and then on every tick until ctx is done.
// A failed batch is logged and retried on the next tick.
func (mr MessageRelay) Run(ctx context.Context) error {
	logger := mr.Logger.Named("message_relay")
	logger.Info("running", zap.Duration("interval", mr.Interval))

	ticker := time.NewTicker(mr.Interval)
	defer ticker.Stop()

	for {
		mr.relay(ctx, logger)

		select {
		case <-ticker.C:
		case <-ctx.Done():
			logger.Info("stopping")
			return nil
		}
	}
}

func (mr MessageRelay) relay(ctx context.Context, logger *zap.Logger) {
	if err := mr.RelayOutbox.Execute(ctx); err != nil && ctx.Err() == nil {
		logger.Error("error relaying outbox batch", zap.Error(err))
	}
	if mr.batchDone != nil {
		select {
		case mr.batchDone <- struct{}{}:
		case <-ctx.Done():
		}
	}
}
