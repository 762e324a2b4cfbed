//go:build integration

package integration

import (
	"net/http"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/common"
	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

func TestTodoApp_RestAPI(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	var milk, bill gen.Todo
	t.Run("create-todos", func(t *testing.T) {
		var code int
		var err error

		milk, code, err = restCli.CreateTodo(t.Context(), owner, gen.CreateTodoRequest{
			Title:       "Comprar leite",
			Description: common.Ptr("Leite integral no mercado da esquina"),
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, code)
		require.Equal(t, gen.Low, milk.Urgency, "expected urgency to default to low")

		bill, code, err = restCli.CreateTodo(t.Context(), owner, gen.CreateTodoRequest{
			Title:   "Pagar conta de luz",
			Urgency: common.Ptr(gen.High),
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, code)
	})

	t.Run("reject-invalid-todo", func(t *testing.T) {
		_, code, err := restCli.CreateTodo(t.Context(), owner, gen.CreateTodoRequest{Title: ""})
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("list-created-todos", func(t *testing.T) {
		resp, code, err := restCli.ListTodos(t.Context(), owner, 1, 10)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, 2, resp.Paging.Total)
		require.Equal(t, 1, resp.Paging.Pages)
		require.Equal(t, bill.Id, resp.List[0].Id, "expected newest todo first")
	})

	t.Run("semantic-search", func(t *testing.T) {
		results, code, err := restCli.SearchTodos(t.Context(), owner, "leite", 5)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, code)
		require.NotEmpty(t, results)
		require.Equal(t, milk.Id, results[0].Id)
		require.Greater(t, results[0].Similarity, 0.1)
	})

	t.Run("search-is-scoped-by-owner", func(t *testing.T) {
		results, code, err := restCli.SearchTodos(t.Context(), stranger, "leite", 5)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, code)
		require.Empty(t, results)

		_, code, err = restCli.GetTodo(t.Context(), stranger, milk.Id)
		require.NoError(t, err)
		require.Equal(t, http.StatusNotFound, code)
	})

	t.Run("update-reembeds-todo", func(t *testing.T) {
		updated, code, err := restCli.UpdateTodo(t.Context(), owner, bill.Id, gen.UpdateTodoRequest{
			Title: common.Ptr("Pagar conta de luz e comprar pão"),
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "Pagar conta de luz e comprar pão", updated.Title)

		results, _, err := restCli.SearchTodos(t.Context(), owner, "pão", 5)
		require.NoError(t, err)
		require.NotEmpty(t, results)
		require.Equal(t, bill.Id, results[0].Id)
	})

	t.Run("create-todo-with-ai", func(t *testing.T) {
		todo, code, err := restCli.CreateTodoWithAI(t.Context(), owner, "terminar relatório hoje")
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, code)
		require.Equal(t, "terminar relatório hoje", todo.Title)
		require.Equal(t, gen.Urgent, todo.Urgency)

		code, err = restCli.DeleteTodo(t.Context(), owner, todo.Id)
		require.NoError(t, err)
		require.Equal(t, http.StatusNoContent, code)
	})

	t.Run("delete-todos", func(t *testing.T) {
		for _, todo := range []gen.Todo{milk, bill} {
			code, err := restCli.DeleteTodo(t.Context(), owner, todo.Id)
			require.NoError(t, err)
			require.Equal(t, http.StatusNoContent, code)
		}

		resp, _, err := restCli.ListTodos(t.Context(), owner, 1, 10)
		require.NoError(t, err)
		require.Equal(t, 0, resp.Paging.Total)
	})

	t.Run("events-published", func(t *testing.T) {
		seen := map[string]int{}
		timeout := time.After(1 * time.Minute)
		for seen["TODO.CREATED"] < 3 || seen["TODO.UPDATED"] < 1 || seen["TODO.DELETED"] < 3 {
			select {
			case eventType := <-publishedEvents:
				seen[eventType]++
			case <-timeout:
				t.Fatalf("timed out waiting for todo events, got %v", seen)
			}
		}
	})
}

func TestTodoApp_MCP(t *testing.T) {
	owner := uuid.New()

	client := mcp.NewClient(&mcp.Implementation{Name: "integration-test", Version: "v0.0.1"}, nil)
	session, err := client.Connect(t.Context(), &mcp.StreamableClientTransport{
		Endpoint: mcpURL,
	}, nil)
	require.NoError(t, err)
	defer session.Close() //nolint:errcheck

	t.Run("create-todo-with-ai", func(t *testing.T) {
		res, err := session.CallTool(t.Context(), &mcp.CallToolParams{
			Name: "create_todo_with_ai",
			Arguments: map[string]any{
				"owner_id":     owner.String(),
				"user_message": "regar as plantas da varanda",
			},
		})
		require.NoError(t, err)
		require.False(t, res.IsError)
	})

	t.Run("search-todos", func(t *testing.T) {
		res, err := session.CallTool(t.Context(), &mcp.CallToolParams{
			Name: "search_todos",
			Arguments: map[string]any{
				"owner_id": owner.String(),
				"query":    "plantas",
			},
		})
		require.NoError(t, err)
		require.False(t, res.IsError)
		require.NotEmpty(t, res.Content)

		text, ok := res.Content[0].(*mcp.TextContent)
		require.True(t, ok)
		require.Contains(t, text.Text, "regar as plantas da varanda")
	})
}
