package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/adapters/inbound/http/gen"
	"github.com/google/uuid"
)

// restClient calls the REST API on behalf of one owner per request.
type restClient struct {
	baseURL string
	http    *http.Client
}

func newRestClient(baseURL string) *restClient {
	return &restClient{baseURL: baseURL, http: &http.Client{}}
}

func (c *restClient) CreateTodo(ctx context.Context, owner uuid.UUID, body gen.CreateTodoRequest) (gen.Todo, int, error) {
	var todo gen.Todo
	code, err := c.do(ctx, http.MethodPost, "/api/v1/todos", owner, body, &todo)
	return todo, code, err
}

func (c *restClient) CreateTodoWithAI(ctx context.Context, owner uuid.UUID, message string) (gen.Todo, int, error) {
	var todo gen.Todo
	code, err := c.do(ctx, http.MethodPost, "/api/v1/todos/ai", owner, gen.CreateTodoWithAIRequest{UserMessage: message}, &todo)
	return todo, code, err
}

func (c *restClient) ListTodos(ctx context.Context, owner uuid.UUID, page, pageSize int) (gen.ListTodosResp, int, error) {
	var resp gen.ListTodosResp
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(pageSize))
	code, err := c.do(ctx, http.MethodGet, "/api/v1/todos?"+q.Encode(), owner, nil, &resp)
	return resp, code, err
}

func (c *restClient) SearchTodos(ctx context.Context, owner uuid.UUID, query string, limit int) ([]gen.SearchResult, int, error) {
	var resp []gen.SearchResult
	q := url.Values{}
	q.Set("query", query)
	q.Set("limit", strconv.Itoa(limit))
	code, err := c.do(ctx, http.MethodGet, "/api/v1/todos/search/semantic?"+q.Encode(), owner, nil, &resp)
	return resp, code, err
}

func (c *restClient) GetTodo(ctx context.Context, owner, id uuid.UUID) (gen.Todo, int, error) {
	var todo gen.Todo
	code, err := c.do(ctx, http.MethodGet, "/api/v1/todos/"+id.String(), owner, nil, &todo)
	return todo, code, err
}

func (c *restClient) UpdateTodo(ctx context.Context, owner, id uuid.UUID, body gen.UpdateTodoRequest) (gen.Todo, int, error) {
	var todo gen.Todo
	code, err := c.do(ctx, http.MethodPatch, "/api/v1/todos/"+id.String(), owner, body, &todo)
	return todo, code, err
}

func (c *restClient) DeleteTodo(ctx context.Context, owner, id uuid.UUID) (int, error) {
	return c.do(ctx, http.MethodDelete, "/api/v1/todos/"+id.String(), owner, nil, nil)
}

// do sends the request and decodes 2xx bodies into out. Error bodies are left undecoded.
func (c *restClient) do(ctx context.Context, method, path string, owner uuid.UUID, body, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Owner-ID", owner.String())

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= 300 || out == nil {
		return resp.StatusCode, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return resp.StatusCode, nil
}
