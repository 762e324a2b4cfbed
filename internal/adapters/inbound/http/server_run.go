package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/usecases"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

var _ gen.ServerInterface = (*TodoAppServer)(nil)

// TodoAppServer is the REST API HTTP server for the semantic TodoApp.
type TodoAppServer struct {
	Port                    int                       `config:"HTTP_PORT" default:"8080"`
	Logger                  *zap.Logger               `resolve:""`
	ListTodosUseCase        usecases.ListTodos        `resolve:""`
	CreateTodoUseCase       usecases.CreateTodo       `resolve:""`
	CreateTodoWithAIUseCase usecases.CreateTodoWithAI `resolve:""`
	GetTodoUseCase          usecases.GetTodo          `resolve:""`
	UpdateTodoUseCase       usecases.UpdateTodo       `resolve:""`
	DeleteTodoUseCase       usecases.DeleteTodo       `resolve:""`
	SemanticSearchUseCase   usecases.SemanticSearch   `resolve:""`
}

// Handler builds the routed, instrumented and CORS-enabled handler of the server.
func (api TodoAppServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Dependency graph page for debugging and testing purposes
	mux.HandleFunc("GET /introspect", IntrospectHandler)

	h := gen.HandlerWithOptions(api, gen.StdHTTPServerOptions{
		BaseRouter: mux,
		Middlewares: []gen.MiddlewareFunc{
			telemetry.Middleware("todoapp-api"),
		},
		ErrorHandlerFunc: api.handleParamError,
	})

	// Apply CORS at the top-level so preflight requests hit it, too.
	return cors.AllowAll().Handler(h)
}

// Run starts the HTTP server for the TodoAppServer.
func (api TodoAppServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler:           api.Handler(),
		Addr:              fmt.Sprintf(":%d", api.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Info("TodoAppServer: listening", zap.Int("port", api.Port))
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Error("TodoAppServer: error during shutdown", zap.Error(err))
		} else {
			api.Logger.Info("TodoAppServer: stopped")
		}
		return err
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// IsReady checks if the TodoAppServer is ready by performing a health check.
func (api TodoAppServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://localhost:%d/healthz", api.Port), nil)
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

// handleParamError answers requests whose path, query or header parameters could not be bound.
func (api TodoAppServer) handleParamError(w http.ResponseWriter, r *http.Request, err error) {
	api.Logger.Debug("rejecting request parameters",
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	respondError(w, badRequest(err.Error()))
}
