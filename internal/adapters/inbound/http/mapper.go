package http

import (
	"errors"

	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/domain"
	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/usecases"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toError(err error) gen.ErrorResp {
	var (
		validationErr *domain.ValidationErr
		notFoundErr   *domain.NotFoundErr
		embeddingErr  *domain.EmbeddingGenerationErr
		searchErr     *domain.SearchErr
		creationErr   *domain.CreationFailedErr
	)

	errResp := gen.ErrorResp{}
	switch {
	case errors.As(err, &validationErr):
		errResp.Error.Code = gen.BADREQUEST
		errResp.Error.Message = validationErr.Error()
	case errors.As(err, &notFoundErr):
		errResp.Error.Code = gen.NOTFOUND
		errResp.Error.Message = notFoundErr.Error()
	case errors.As(err, &embeddingErr):
		errResp.Error.Code = gen.EMBEDDINGFAILED
		errResp.Error.Message = embeddingErr.Error()
	case errors.As(err, &searchErr):
		errResp.Error.Code = gen.SEARCHFAILED
		errResp.Error.Message = searchErr.Error()
	case errors.As(err, &creationErr):
		errResp.Error.Code = gen.BADREQUEST
		errResp.Error.Message = creationErr.Error()
	default:
		errResp.Error.Code = gen.INTERNALERROR
		errResp.Error.Message = "internal server error"
	}
	return errResp
}

func toTodo(t domain.Todo) gen.Todo {
	return gen.Todo{
		Id:          openapi_types.UUID(t.ID),
		Title:       t.Title,
		Description: optionalString(t.Description),
		Urgency:     gen.TodoUrgency(t.Urgency),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toSearchResult(r domain.SearchResult) gen.SearchResult {
	return gen.SearchResult{
		Id:          openapi_types.UUID(r.ID),
		Title:       r.Title,
		Description: optionalString(r.Description),
		Urgency:     gen.TodoUrgency(r.Urgency),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		Similarity:  r.Similarity,
	}
}

func toListTodosResp(page usecases.TodoPage) gen.ListTodosResp {
	resp := gen.ListTodosResp{
		List: make([]gen.Todo, 0, len(page.Items)),
		Paging: gen.Paging{
			Total: page.Total,
			Page:  page.Page,
			Pages: page.Pages,
		},
	}
	for _, t := range page.Items {
		resp.List = append(resp.List, toTodo(t))
	}
	return resp
}

func toUpdateTodoParams(req gen.UpdateTodoRequest) usecases.UpdateTodoParams {
	return usecases.UpdateTodoParams{
		Title:       req.Title,
		Description: req.Description,
		Urgency:     (*domain.TodoUrgency)(req.Urgency),
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
