package integration

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go/modules/compose"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

// dependencyServices lists the compose services the app needs and how to tell each is ready.
var dependencyServices = []struct {
	name     string
	strategy wait.Strategy
}{
	// postgres restarts once after initdb, so the ready line shows up twice
	{"postgres", wait.NewLogStrategy("database system is ready to accept connections").WithOccurrence(2)},
	{"vault", wait.NewLogStrategy("Vault server started!")},
	{"vault-init", wait.ForExit()},
	{"pubsub", wait.NewLogStrategy("Server started")},
	{"redis", wait.NewLogStrategy("Ready to accept connections")},
}

// InitDockerCompose brings up docker-compose.deps.yml and tears it down on Close.
type InitDockerCompose struct {
	File    string
	Logger  *zap.Logger
	compose *compose.DockerCompose
}

func (i *InitDockerCompose) Initialize(ctx context.Context) (context.Context, error) {
	file := i.File
	if file == "" {
		file = "../../docker-compose.deps.yml"
	}

	dc, err := compose.NewDockerCompose(file)
	if err != nil {
		return ctx, fmt.Errorf("failed to load %s: %w", file, err)
	}
	i.compose = dc

	var stack compose.ComposeStack = dc
	for _, svc := range dependencyServices {
		stack = stack.WaitForService(svc.name, svc.strategy)
	}

	start := time.Now()
	if err := stack.Up(ctx, compose.Wait(true)); err != nil {
		return ctx, fmt.Errorf("failed to start dependencies: %w", err)
	}
	i.logger().Info("dependencies ready", zap.Duration("took", time.Since(start)))
	return ctx, nil
}

func (i *InitDockerCompose) Close() {
	if i.compose == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	err := i.compose.Down(
		ctx,
		compose.RemoveOrphans(true),
		compose.RemoveVolumes(true),
	)
	if err != nil {
		i.logger().Error("failed to stop dependencies", zap.Error(err))
	}
}

func (i *InitDockerCompose) logger() *zap.Logger {
	if i.Logger == nil {
		return zap.NewNop()
	}
	return i.Logger
}
