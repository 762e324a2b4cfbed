package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/adapters/inbound/mcp"
	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/adapters/inbound/workers"
	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/adapters/outbound/config"
	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/adapters/outbound/log"
	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/adapters/outbound/modelrunner"
	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/adapters/outbound/postgres"
	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/adapters/outbound/pubsub"
	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/adapters/outbound/redis"
	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/adapters/outbound/time"
	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/usecases"
)

// NewTodoApp creates and returns a new instance of the semantic TodoApp application.
func NewTodoApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&postgres.InitDB{},
			&postgres.InitUnitOfWork{},
			&postgres.InitTodoRepository{},
			&time.InitCurrentTimeProvider{},
			&pubsub.InitClient{},
			&pubsub.InitPublisher{},
			&modelrunner.InitAIProvider{},
			&redis.InitEmbeddingCache{},

			&usecases.InitEmbeddingGateway{},
			&usecases.InitGenerateEmbedding{},
			&usecases.InitTodoCreator{},

			&usecases.InitListTodos{},
			&usecases.InitGetTodo{},
			&usecases.InitCreateTodo{},
			&usecases.InitCreateTodoWithAI{},
			&usecases.InitUpdateTodo{},
			&usecases.InitDeleteTodo{},
			&usecases.InitSemanticSearch{},
			&usecases.InitRelayOutbox{},
		).
		Host(
			&http.TodoAppServer{},
			&mcp.TodoMCPServer{},
			&workers.MessageRelay{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
