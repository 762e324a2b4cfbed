package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/domain"
	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/usecases"
	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/toon-format/toon-go"
	"go.uber.org/zap"
)

// SearchTodosInput is the argument set of the search_todos tool.
type SearchTodosInput struct {
	OwnerID string `json:"owner_id" jsonschema:"UUID of the user whose todos are searched"`
	Query   string `json:"query" jsonschema:"Free text describing what the todos are about"`
	Limit   int    `json:"limit,omitempty" jsonschema:"Maximum number of results, from 1 to 50 (default 10)"`
}

// CreateTodoWithAIInput is the argument set of the create_todo_with_ai tool.
type CreateTodoWithAIInput struct {
	OwnerID     string `json:"owner_id" jsonschema:"UUID of the user who owns the new todo"`
	UserMessage string `json:"user_message" jsonschema:"Natural language description of the todo to create"`
}

type todoView struct {
	ID          string `json:"id" toon:"id"`
	Title       string `json:"title" toon:"title"`
	Description string `json:"description,omitempty" toon:"description,omitempty"`
	Urgency     string `json:"urgency" toon:"urgency"`
	CreatedAt   string `json:"created_at" toon:"created_at"`
	UpdatedAt   string `json:"updated_at" toon:"updated_at"`
}

type searchResultView struct {
	ID         string  `json:"id" toon:"id"`
	Title      string  `json:"title" toon:"title"`
	Urgency    string  `json:"urgency" toon:"urgency"`
	Similarity float64 `json:"similarity" toon:"similarity"`
	UpdatedAt  string  `json:"updated_at" toon:"updated_at"`
}

type searchResultsView struct {
	Query   string             `json:"query" toon:"query"`
	Results []searchResultView `json:"results" toon:"results"`
}

type todoTools struct {
	logger           *zap.Logger
	semanticSearch   usecases.SemanticSearch
	createTodoWithAI usecases.CreateTodoWithAI
}

func (tt todoTools) register(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_todos",
		Description: "Find the user's todos closest in meaning to a free-text query, best match first.",
	}, tt.searchTodos)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_todo_with_ai",
		Description: "Create a todo from a natural language request. Title, description and urgency are inferred by a language model.",
	}, tt.createTodo)
}

func (tt todoTools) searchTodos(ctx context.Context, _ *mcp.CallToolRequest, in SearchTodosInput) (*mcp.CallToolResult, any, error) {
	ownerID, err := parseOwnerID(in.OwnerID)
	if err != nil {
		return nil, nil, err
	}
	if strings.TrimSpace(in.Query) == "" {
		return nil, nil, domain.NewValidationErr("query cannot be empty")
	}
	limit := in.Limit
	if limit == 0 {
		limit = domain.DefaultSearchLimit
	}
	if limit < 1 || limit > domain.MaxSearchLimit {
		return nil, nil, domain.NewValidationErr(fmt.Sprintf("limit must be between 1 and %d", domain.MaxSearchLimit))
	}

	results, err := tt.semanticSearch.Query(ctx, in.Query, limit, ownerID)
	if err != nil {
		tt.logger.Error("search_todos failed", zap.Error(err))
		return nil, nil, err
	}

	view := searchResultsView{
		Query:   in.Query,
		Results: make([]searchResultView, 0, len(results)),
	}
	for _, r := range results {
		view.Results = append(view.Results, searchResultView{
			ID:         r.ID.String(),
			Title:      r.Title,
			Urgency:    string(r.Urgency),
			Similarity: r.Similarity,
			UpdatedAt:  r.UpdatedAt.Format(time.RFC3339),
		})
	}

	return textResult(view)
}

func (tt todoTools) createTodo(ctx context.Context, _ *mcp.CallToolRequest, in CreateTodoWithAIInput) (*mcp.CallToolResult, any, error) {
	ownerID, err := parseOwnerID(in.OwnerID)
	if err != nil {
		return nil, nil, err
	}

	todo, err := tt.createTodoWithAI.Execute(ctx, in.UserMessage, ownerID)
	if err != nil {
		tt.logger.Error("create_todo_with_ai failed", zap.Error(err))
		return nil, nil, err
	}

	return textResult(todoView{
		ID:          todo.ID.String(),
		Title:       todo.Title,
		Description: todo.Description,
		Urgency:     string(todo.Urgency),
		CreatedAt:   todo.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   todo.UpdatedAt.Format(time.RFC3339),
	})
}

// textResult renders v as TOON text content.
func textResult(v any) (*mcp.CallToolResult, any, error) {
	text, err := toon.MarshalString(v, toon.WithLengthMarkers(true))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal tool output: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}, nil, nil
}

func parseOwnerID(raw string) (uuid.UUID, error) {
	ownerID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.NewValidationErr("owner_id must be a valid UUID")
	}
	return ownerID, nil
}
