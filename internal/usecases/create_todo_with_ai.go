package usecases

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/domain"
	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.yaml.in/yaml/v3"
)

//go:embed prompts/create-todo.yml
var createTodoPrompt embed.FS

// CreateTodoWithAI defines the interface for creating a todo from a free-text request.
type CreateTodoWithAI interface {
	// Execute turns userMessage into a stored todo owned by ownerID.
	// Every failure is reported as a *domain.CreationFailedErr.
	Execute(ctx context.Context, userMessage string, ownerID uuid.UUID) (domain.Todo, error)
}

// CreateTodoWithAIImpl is the implementation of the CreateTodoWithAI use case.
type CreateTodoWithAIImpl struct {
	uow          domain.UnitOfWork
	gateway      EmbeddingGateway
	todoCreator  TodoCreator
	systemPrompt string
	logger       *zap.Logger
}

// NewCreateTodoWithAIImpl creates a new instance of CreateTodoWithAIImpl.
func NewCreateTodoWithAIImpl(
	uow domain.UnitOfWork,
	gateway EmbeddingGateway,
	todoCreator TodoCreator,
	systemPrompt string,
	logger *zap.Logger,
) CreateTodoWithAIImpl {
	return CreateTodoWithAIImpl{
		uow:          uow,
		gateway:      gateway,
		todoCreator:  todoCreator,
		systemPrompt: systemPrompt,
		logger:       logger,
	}
}

// Execute asks the model for a todo draft, embeds it and stores it. Nothing is stored on failure.
func (c CreateTodoWithAIImpl) Execute(ctx context.Context, userMessage string, ownerID uuid.UUID) (domain.Todo, error) {
	spanCtx, span := telemetry.Start(ctx, telemetry.WithOwner(ownerID))
	defer span.End()

	todo, err := c.execute(spanCtx, userMessage, ownerID)
	if err != nil {
		c.logger.Error("failed to create todo with AI", zap.Error(err), zap.String("owner_id", ownerID.String()))
		creationErr := domain.NewCreationFailedErr(err)
		telemetry.RecordErrorAndStatus(span, creationErr)
		return domain.Todo{}, creationErr
	}

	telemetry.RecordErrorAndStatus(span, nil)
	return todo, nil
}

func (c CreateTodoWithAIImpl) execute(ctx context.Context, userMessage string, ownerID uuid.UUID) (domain.Todo, error) {
	if strings.TrimSpace(userMessage) == "" {
		return domain.Todo{}, domain.NewValidationErr("message cannot be empty")
	}

	content, err := c.gateway.Complete(ctx, c.systemPrompt, userMessage)
	if err != nil {
		return domain.Todo{}, err
	}

	draft, err := parseAITodoDraft(content)
	if err != nil {
		return domain.Todo{}, err
	}

	var todo domain.Todo
	err = c.uow.Execute(ctx, func(uow domain.UnitOfWork) error {
		created, err := c.todoCreator.Create(ctx, uow, ownerID, draft)
		if err != nil {
			return err
		}
		todo = created
		return nil
	})
	if err != nil {
		return domain.Todo{}, err
	}
	return todo, nil
}

// parseAITodoDraft reads the JSON object produced by the model. Fields are looked up
// explicitly: the title is required, a missing description becomes empty and a missing
// or unknown urgency becomes low.
func parseAITodoDraft(content string) (TodoDraft, error) {
	raw := map[string]any{}
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &raw); err != nil {
		return TodoDraft{}, domain.NewAIResponseParseErr(err.Error())
	}

	title, _ := raw["title"].(string)
	if strings.TrimSpace(title) == "" {
		return TodoDraft{}, domain.NewAIResponseParseErr("title is required")
	}

	description, _ := raw["description"].(string)

	urgency := domain.TodoUrgency_LOW
	if value, ok := raw["urgency"].(string); ok {
		if candidate := domain.TodoUrgency(strings.ToLower(strings.TrimSpace(value))); candidate.IsValid() {
			urgency = candidate
		}
	}

	return TodoDraft{
		Title:       strings.TrimSpace(title),
		Description: description,
		Urgency:     urgency,
	}, nil
}

// stripCodeFence removes a surrounding markdown code fence, if any.
func stripCodeFence(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	if newline := strings.IndexByte(trimmed, '\n'); newline >= 0 {
		trimmed = trimmed[newline+1:]
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(trimmed), "```"))
}

type promptMessage struct {
	Role    string `yaml:"role"`
	Content string `yaml:"content"`
}

// loadCreateTodoPrompt returns the system message of the embedded create-todo prompt.
func loadCreateTodoPrompt() (string, error) {
	file, err := createTodoPrompt.Open("prompts/create-todo.yml")
	if err != nil {
		return "", fmt.Errorf("failed to open create todo prompt: %w", err)
	}
	defer file.Close() //nolint:errcheck

	messages := []promptMessage{}
	if err := yaml.NewDecoder(file).Decode(&messages); err != nil {
		return "", fmt.Errorf("failed to decode create todo prompt: %w", err)
	}

	for _, msg := range messages {
		if msg.Role == "system" {
			return msg.Content, nil
		}
	}
	return "", errors.New("create todo prompt has no system message")
}

// InitCreateTodoWithAI initializes the CreateTodoWithAI use case and registers it in the dependency container.
type InitCreateTodoWithAI struct {
	Uow         domain.UnitOfWork `resolve:""`
	Gateway     EmbeddingGateway  `resolve:""`
	TodoCreator TodoCreator       `resolve:""`
	Logger      *zap.Logger       `resolve:""`
}

// Initialize loads the prompt and registers the CreateTodoWithAI use case in the dependency container.
func (i InitCreateTodoWithAI) Initialize(ctx context.Context) (context.Context, error) {
	systemPrompt, err := loadCreateTodoPrompt()
	if err != nil {
		return ctx, err
	}
	depend.Register[CreateTodoWithAI](NewCreateTodoWithAIImpl(i.Uow, i.Gateway, i.TodoCreator, systemPrompt, i.Logger))
	return ctx, nil
}
