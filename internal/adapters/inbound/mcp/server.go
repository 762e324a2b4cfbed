package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/usecases"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

const (
	serverName    = "semantic-todoapp"
	serverVersion = "v1.0.0"
)

// TodoMCPServer exposes semantic search and AI-assisted creation as MCP tools over streamable HTTP.
type TodoMCPServer struct {
	Port                    int                       `config:"MCP_PORT" default:"8090"`
	Logger                  *zap.Logger               `resolve:""`
	SemanticSearchUseCase   usecases.SemanticSearch   `resolve:""`
	CreateTodoWithAIUseCase usecases.CreateTodoWithAI `resolve:""`
}

// NewServer builds the MCP server with every todo tool registered.
func (s TodoMCPServer) NewServer() *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Title:   "Semantic TodoApp",
		Version: serverVersion,
	}, nil)

	tools := todoTools{
		logger:           s.Logger,
		semanticSearch:   s.SemanticSearchUseCase,
		createTodoWithAI: s.CreateTodoWithAIUseCase,
	}
	tools.register(server)

	return server
}

// Run serves the MCP endpoint on /mcp until ctx is done.
func (s TodoMCPServer) Run(ctx context.Context) error {
	server := s.NewServer()

	mux := http.NewServeMux()
	mux.Handle("/mcp", telemetry.Middleware("todoapp-mcp")(
		mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server { return server }, nil),
	))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	hs := &http.Server{
		Handler:           mux,
		Addr:              fmt.Sprintf(":%d", s.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.Logger.Info("TodoMCPServer: listening", zap.Int("port", s.Port))
		errCh <- hs.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := hs.Shutdown(shutdownCtx)
		if err != nil {
			s.Logger.Error("TodoMCPServer: error during shutdown", zap.Error(err))
		} else {
			s.Logger.Info("TodoMCPServer: stopped")
		}
		return err
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// IsReady checks if the TodoMCPServer is accepting requests.
func (s TodoMCPServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://localhost:%d/healthz", s.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
