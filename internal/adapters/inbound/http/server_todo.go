package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/domain"
	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/usecases"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"go.uber.org/zap"
)

func (api TodoAppServer) ListTodos(w http.ResponseWriter, r *http.Request, params gen.ListTodosParams) {
	if err := validateRequest(params); err != nil {
		respondError(w, toError(err))
		return
	}

	page, pageSize := 1, usecases.DefaultPageSize
	if params.Page != nil {
		page = *params.Page
	}
	if params.PageSize != nil {
		pageSize = *params.PageSize
	}

	todos, err := api.ListTodosUseCase.Query(r.Context(), uuid.UUID(params.XOwnerID), page, pageSize)
	if err != nil {
		api.Logger.Error("listing todos", zap.Error(err))
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toListTodosResp(todos))
}

func (api TodoAppServer) CreateTodo(w http.ResponseWriter, r *http.Request, params gen.CreateTodoParams) {
	var req gen.CreateTodoJSONRequestBody
	if !decodeBody(w, r, &req) {
		return
	}

	draft := usecases.TodoDraft{Title: req.Title}
	if req.Description != nil {
		draft.Description = *req.Description
	}
	if req.Urgency != nil {
		draft.Urgency = domain.TodoUrgency(*req.Urgency)
	}

	todo, err := api.CreateTodoUseCase.Execute(r.Context(), uuid.UUID(params.XOwnerID), draft)
	if err != nil {
		api.Logger.Error("creating todo", zap.Error(err))
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusCreated, toTodo(todo))
}

func (api TodoAppServer) CreateTodoWithAI(w http.ResponseWriter, r *http.Request, params gen.CreateTodoWithAIParams) {
	var req gen.CreateTodoWithAIJSONRequestBody
	if !decodeBody(w, r, &req) {
		return
	}

	todo, err := api.CreateTodoWithAIUseCase.Execute(r.Context(), req.UserMessage, uuid.UUID(params.XOwnerID))
	if err != nil {
		api.Logger.Error("creating todo with AI", zap.Error(err))
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusCreated, toTodo(todo))
}

func (api TodoAppServer) SemanticSearchTodos(w http.ResponseWriter, r *http.Request, params gen.SemanticSearchTodosParams) {
	if err := validateRequest(params); err != nil {
		respondError(w, toError(err))
		return
	}
	if strings.TrimSpace(params.Query) == "" {
		respondError(w, badRequest("query cannot be empty"))
		return
	}

	limit := domain.DefaultSearchLimit
	if params.Limit != nil {
		limit = *params.Limit
	}

	results, err := api.SemanticSearchUseCase.Query(r.Context(), params.Query, limit, uuid.UUID(params.XOwnerID))
	if err != nil {
		api.Logger.Error("searching todos", zap.Error(err))
		respondError(w, toError(err))
		return
	}

	resp := make([]gen.SearchResult, 0, len(results))
	for _, res := range results {
		resp = append(resp, toSearchResult(res))
	}
	respondJSON(w, http.StatusOK, resp)
}

func (api TodoAppServer) GetTodo(w http.ResponseWriter, r *http.Request, todoId openapi_types.UUID, params gen.GetTodoParams) {
	todo, err := api.GetTodoUseCase.Query(r.Context(), uuid.UUID(todoId), uuid.UUID(params.XOwnerID))
	if err != nil {
		api.Logger.Error("getting todo", zap.Error(err))
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toTodo(todo))
}

func (api TodoAppServer) UpdateTodo(w http.ResponseWriter, r *http.Request, todoId openapi_types.UUID, params gen.UpdateTodoParams) {
	var req gen.UpdateTodoJSONRequestBody
	if !decodeBody(w, r, &req) {
		return
	}

	todo, err := api.UpdateTodoUseCase.Execute(
		r.Context(),
		uuid.UUID(todoId),
		uuid.UUID(params.XOwnerID),
		toUpdateTodoParams(req),
	)
	if err != nil {
		api.Logger.Error("updating todo", zap.Error(err))
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toTodo(todo))
}

func (api TodoAppServer) DeleteTodo(w http.ResponseWriter, r *http.Request, todoId openapi_types.UUID, params gen.DeleteTodoParams) {
	err := api.DeleteTodoUseCase.Execute(r.Context(), uuid.UUID(todoId), uuid.UUID(params.XOwnerID))
	if err != nil {
		api.Logger.Error("deleting todo", zap.Error(err))
		respondError(w, toError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeBody reads and validates a JSON request body, answering 400 when it is malformed.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid request body: %v", err)))
		return false
	}
	if err := validateRequest(dst); err != nil {
		respondError(w, toError(err))
		return false
	}
	return true
}
