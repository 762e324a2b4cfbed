package gen

import (
	"fmt"
	"net/http"
	"time"

	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for ErrorCode.
const (
	BADREQUEST      ErrorCode = "BAD_REQUEST"
	EMBEDDINGFAILED ErrorCode = "EMBEDDING_FAILED"
	INTERNALERROR   ErrorCode = "INTERNAL_ERROR"
	NOTFOUND        ErrorCode = "NOT_FOUND"
	SEARCHFAILED    ErrorCode = "SEARCH_FAILED"
)

// Defines values for TodoUrgency.
const (
	High   TodoUrgency = "high"
	Low    TodoUrgency = "low"
	Medium TodoUrgency = "medium"
	Urgent TodoUrgency = "urgent"
)

// CreateTodoRequest defines model for CreateTodoRequest.
type CreateTodoRequest struct {
	Description *string      `json:"description,omitempty"`
	Title       string       `json:"title" validate:"required,max=200"`
	Urgency     *TodoUrgency `json:"urgency,omitempty" validate:"omitempty,oneof=low medium high urgent"`
}

// CreateTodoWithAIRequest defines model for CreateTodoWithAIRequest.
type CreateTodoWithAIRequest struct {
	UserMessage string `json:"userMessage" validate:"required"`
}

// Error defines model for Error.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorCode defines model for ErrorCode.
type ErrorCode string

// ErrorResp defines model for ErrorResp.
type ErrorResp struct {
	Error Error `json:"error"`
}

// ListTodosResp defines model for ListTodosResp.
type ListTodosResp struct {
	List   []Todo `json:"list"`
	Paging Paging `json:"paging"`
}

// Paging defines model for Paging.
type Paging struct {
	Page  int `json:"page"`
	Pages int `json:"pages"`
	Total int `json:"total"`
}

// SearchResult defines model for SearchResult.
type SearchResult struct {
	CreatedAt   time.Time          `json:"createdAt"`
	Description *string            `json:"description,omitempty"`
	Id          openapi_types.UUID `json:"id"`
	Similarity  float64            `json:"similarity"`
	Title       string             `json:"title"`
	UpdatedAt   time.Time          `json:"updatedAt"`
	Urgency     TodoUrgency        `json:"urgency"`
}

// Todo defines model for Todo.
type Todo struct {
	CreatedAt   time.Time          `json:"createdAt"`
	Description *string            `json:"description,omitempty"`
	Id          openapi_types.UUID `json:"id"`
	Title       string             `json:"title"`
	UpdatedAt   time.Time          `json:"updatedAt"`
	Urgency     TodoUrgency        `json:"urgency"`
}

// TodoUrgency defines model for TodoUrgency.
type TodoUrgency string

// UpdateTodoRequest defines model for UpdateTodoRequest.
type UpdateTodoRequest struct {
	Description *string      `json:"description,omitempty"`
	Title       *string      `json:"title,omitempty" validate:"omitempty,max=200"`
	Urgency     *TodoUrgency `json:"urgency,omitempty" validate:"omitempty,oneof=low medium high urgent"`
}

// OwnerID defines model for OwnerID.
type OwnerID = openapi_types.UUID

// ListTodosParams defines parameters for ListTodos.
type ListTodosParams struct {
	Page     *int `form:"page,omitempty" json:"page,omitempty" validate:"omitempty,min=1"`
	PageSize *int `form:"pageSize,omitempty" json:"pageSize,omitempty" validate:"omitempty,min=1,max=100"`

	// XOwnerID Owner of the todos the request reads or writes.
	XOwnerID OwnerID `json:"X-Owner-ID"`
}

// CreateTodoParams defines parameters for CreateTodo.
type CreateTodoParams struct {
	// XOwnerID Owner of the todos the request reads or writes.
	XOwnerID OwnerID `json:"X-Owner-ID"`
}

// CreateTodoWithAIParams defines parameters for CreateTodoWithAI.
type CreateTodoWithAIParams struct {
	// XOwnerID Owner of the todos the request reads or writes.
	XOwnerID OwnerID `json:"X-Owner-ID"`
}

// SemanticSearchTodosParams defines parameters for SemanticSearchTodos.
type SemanticSearchTodosParams struct {
	Query string `form:"query" json:"query" validate:"required"`
	Limit *int   `form:"limit,omitempty" json:"limit,omitempty" validate:"omitempty,min=1,max=50"`

	// XOwnerID Owner of the todos the request reads or writes.
	XOwnerID OwnerID `json:"X-Owner-ID"`
}

// DeleteTodoParams defines parameters for DeleteTodo.
type DeleteTodoParams struct {
	// XOwnerID Owner of the todos the request reads or writes.
	XOwnerID OwnerID `json:"X-Owner-ID"`
}

// GetTodoParams defines parameters for GetTodo.
type GetTodoParams struct {
	// XOwnerID Owner of the todos the request reads or writes.
	XOwnerID OwnerID `json:"X-Owner-ID"`
}

// UpdateTodoParams defines parameters for UpdateTodo.
type UpdateTodoParams struct {
	// XOwnerID Owner of the todos the request reads or writes.
	XOwnerID OwnerID `json:"X-Owner-ID"`
}

// CreateTodoJSONRequestBody defines body for CreateTodo for application/json ContentType.
type CreateTodoJSONRequestBody = CreateTodoRequest

// CreateTodoWithAIJSONRequestBody defines body for CreateTodoWithAI for application/json ContentType.
type CreateTodoWithAIJSONRequestBody = CreateTodoWithAIRequest

// UpdateTodoJSONRequestBody defines body for UpdateTodo for application/json ContentType.
type UpdateTodoJSONRequestBody = UpdateTodoRequest

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List the caller's todos, newest first
	// (GET /api/v1/todos)
	ListTodos(w http.ResponseWriter, r *http.Request, params ListTodosParams)
	// Create a todo
	// (POST /api/v1/todos)
	CreateTodo(w http.ResponseWriter, r *http.Request, params CreateTodoParams)
	// Create a todo from a free-text request interpreted by a language model
	// (POST /api/v1/todos/ai)
	CreateTodoWithAI(w http.ResponseWriter, r *http.Request, params CreateTodoWithAIParams)
	// Find the caller's todos closest in meaning to a query
	// (GET /api/v1/todos/search/semantic)
	SemanticSearchTodos(w http.ResponseWriter, r *http.Request, params SemanticSearchTodosParams)
	// Delete one of the caller's todos
	// (DELETE /api/v1/todos/{todoId})
	DeleteTodo(w http.ResponseWriter, r *http.Request, todoId openapi_types.UUID, params DeleteTodoParams)
	// Get one of the caller's todos
	// (GET /api/v1/todos/{todoId})
	GetTodo(w http.ResponseWriter, r *http.Request, todoId openapi_types.UUID, params GetTodoParams)
	// Change some fields of one of the caller's todos
	// (PATCH /api/v1/todos/{todoId})
	UpdateTodo(w http.ResponseWriter, r *http.Request, todoId openapi_types.UUID, params UpdateTodoParams)
}

// ServerInterfaceWrapper converts contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandlerFunc   func(w http.ResponseWriter, r *http.Request, err error)
}

type MiddlewareFunc func(http.Handler) http.Handler

// ListTodos operation middleware
func (siw *ServerInterfaceWrapper) ListTodos(w http.ResponseWriter, r *http.Request) {

	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params ListTodosParams

	// ------------- Optional query parameter "page" -------------

	err = runtime.BindQueryParameter("form", true, false, "page", r.URL.Query(), &params.Page)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "page", Err: err})
		return
	}

	// ------------- Optional query parameter "pageSize" -------------

	err = runtime.BindQueryParameter("form", true, false, "pageSize", r.URL.Query(), &params.PageSize)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "pageSize", Err: err})
		return
	}

	if !siw.bindOwnerID(w, r, &params.XOwnerID) {
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListTodos(w, r, params)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// CreateTodo operation middleware
func (siw *ServerInterfaceWrapper) CreateTodo(w http.ResponseWriter, r *http.Request) {

	// Parameter object where we will unmarshal all parameters from the context
	var params CreateTodoParams

	if !siw.bindOwnerID(w, r, &params.XOwnerID) {
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.CreateTodo(w, r, params)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// CreateTodoWithAI operation middleware
func (siw *ServerInterfaceWrapper) CreateTodoWithAI(w http.ResponseWriter, r *http.Request) {

	// Parameter object where we will unmarshal all parameters from the context
	var params CreateTodoWithAIParams

	if !siw.bindOwnerID(w, r, &params.XOwnerID) {
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.CreateTodoWithAI(w, r, params)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// SemanticSearchTodos operation middleware
func (siw *ServerInterfaceWrapper) SemanticSearchTodos(w http.ResponseWriter, r *http.Request) {

	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params SemanticSearchTodosParams

	// ------------- Required query parameter "query" -------------

	if paramValue := r.URL.Query().Get("query"); paramValue != "" {

	} else {
		siw.ErrorHandlerFunc(w, r, &RequiredParamError{ParamName: "query"})
		return
	}

	err = runtime.BindQueryParameter("form", true, true, "query", r.URL.Query(), &params.Query)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "query", Err: err})
		return
	}

	// ------------- Optional query parameter "limit" -------------

	err = runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &params.Limit)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "limit", Err: err})
		return
	}

	if !siw.bindOwnerID(w, r, &params.XOwnerID) {
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.SemanticSearchTodos(w, r, params)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// DeleteTodo operation middleware
func (siw *ServerInterfaceWrapper) DeleteTodo(w http.ResponseWriter, r *http.Request) {

	// ------------- Path parameter "todoId" -------------
	var todoId openapi_types.UUID
	if !siw.bindTodoID(w, r, &todoId) {
		return
	}

	// Parameter object where we will unmarshal all parameters from the context
	var params DeleteTodoParams

	if !siw.bindOwnerID(w, r, &params.XOwnerID) {
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.DeleteTodo(w, r, todoId, params)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// GetTodo operation middleware
func (siw *ServerInterfaceWrapper) GetTodo(w http.ResponseWriter, r *http.Request) {

	// ------------- Path parameter "todoId" -------------
	var todoId openapi_types.UUID
	if !siw.bindTodoID(w, r, &todoId) {
		return
	}

	// Parameter object where we will unmarshal all parameters from the context
	var params GetTodoParams

	if !siw.bindOwnerID(w, r, &params.XOwnerID) {
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetTodo(w, r, todoId, params)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// UpdateTodo operation middleware
func (siw *ServerInterfaceWrapper) UpdateTodo(w http.ResponseWriter, r *http.Request) {

	// ------------- Path parameter "todoId" -------------
	var todoId openapi_types.UUID
	if !siw.bindTodoID(w, r, &todoId) {
		return
	}

	// Parameter object where we will unmarshal all parameters from the context
	var params UpdateTodoParams

	if !siw.bindOwnerID(w, r, &params.XOwnerID) {
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.UpdateTodo(w, r, todoId, params)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// bindTodoID binds the "todoId" path parameter shared by the item routes.
func (siw *ServerInterfaceWrapper) bindTodoID(w http.ResponseWriter, r *http.Request, todoId *openapi_types.UUID) bool {
	err := runtime.BindStyledParameterWithOptions("simple", "todoId", r.PathValue("todoId"), todoId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "todoId", Err: err})
		return false
	}
	return true
}

// bindOwnerID binds the required "X-Owner-ID" header parameter shared by every operation.
func (siw *ServerInterfaceWrapper) bindOwnerID(w http.ResponseWriter, r *http.Request, ownerID *OwnerID) bool {
	headers := r.Header

	// ------------- Required header parameter "X-Owner-ID" -------------
	valueList, found := headers[http.CanonicalHeaderKey("X-Owner-ID")]
	if !found {
		err := fmt.Errorf("Header parameter X-Owner-ID is required, but not found")
		siw.ErrorHandlerFunc(w, r, &RequiredHeaderError{ParamName: "X-Owner-ID", Err: err})
		return false
	}

	n := len(valueList)
	if n != 1 {
		siw.ErrorHandlerFunc(w, r, &TooManyValuesForParamError{ParamName: "X-Owner-ID", Count: n})
		return false
	}

	err := runtime.BindStyledParameterWithOptions("simple", "X-Owner-ID", valueList[0], ownerID, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "X-Owner-ID", Err: err})
		return false
	}
	return true
}

type UnescapedCookieParamError struct {
	ParamName string
	Err       error
}

func (e *UnescapedCookieParamError) Error() string {
	return fmt.Sprintf("error unescaping cookie parameter '%s'", e.ParamName)
}

func (e *UnescapedCookieParamError) Unwrap() error {
	return e.Err
}

type UnmarshalingParamError struct {
	ParamName string
	Err       error
}

func (e *UnmarshalingParamError) Error() string {
	return fmt.Sprintf("Error unmarshaling parameter %s as JSON: %s", e.ParamName, e.Err.Error())
}

func (e *UnmarshalingParamError) Unwrap() error {
	return e.Err
}

type RequiredParamError struct {
	ParamName string
}

func (e *RequiredParamError) Error() string {
	return fmt.Sprintf("Query argument %s is required, but not found", e.ParamName)
}

type RequiredHeaderError struct {
	ParamName string
	Err       error
}

func (e *RequiredHeaderError) Error() string {
	return fmt.Sprintf("Header parameter %s is required, but not found", e.ParamName)
}

func (e *RequiredHeaderError) Unwrap() error {
	return e.Err
}

type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("Invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error {
	return e.Err
}

type TooManyValuesForParamError struct {
	ParamName string
	Count     int
}

func (e *TooManyValuesForParamError) Error() string {
	return fmt.Sprintf("Expected one value for %s, got %d", e.ParamName, e.Count)
}

// Handler creates http.Handler with routing matching OpenAPI spec.
func Handler(si ServerInterface) http.Handler {
	return HandlerWithOptions(si, StdHTTPServerOptions{})
}

// ServeMux is an abstraction of http.ServeMux.
type ServeMux interface {
	HandleFunc(pattern string, handler func(http.ResponseWriter, *http.Request))
	ServeHTTP(w http.ResponseWriter, r *http.Request)
}

type StdHTTPServerOptions struct {
	BaseURL          string
	BaseRouter       ServeMux
	Middlewares      []MiddlewareFunc
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// HandlerFromMux creates http.Handler with routing matching OpenAPI spec based on the provided mux.
func HandlerFromMux(si ServerInterface, m ServeMux) http.Handler {
	return HandlerWithOptions(si, StdHTTPServerOptions{
		BaseRouter: m,
	})
}

func HandlerFromMuxWithBaseURL(si ServerInterface, m ServeMux, baseURL string) http.Handler {
	return HandlerWithOptions(si, StdHTTPServerOptions{
		BaseURL:    baseURL,
		BaseRouter: m,
	})
}

// HandlerWithOptions creates http.Handler with additional options
func HandlerWithOptions(si ServerInterface, options StdHTTPServerOptions) http.Handler {
	m := options.BaseRouter

	if m == nil {
		m = http.NewServeMux()
	}
	if options.ErrorHandlerFunc == nil {
		options.ErrorHandlerFunc = func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
	}

	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandlerFunc:   options.ErrorHandlerFunc,
	}

	m.HandleFunc("GET "+options.BaseURL+"/api/v1/todos", wrapper.ListTodos)
	m.HandleFunc("POST "+options.BaseURL+"/api/v1/todos", wrapper.CreateTodo)
	m.HandleFunc("POST "+options.BaseURL+"/api/v1/todos/ai", wrapper.CreateTodoWithAI)
	m.HandleFunc("GET "+options.BaseURL+"/api/v1/todos/search/semantic", wrapper.SemanticSearchTodos)
	m.HandleFunc("DELETE "+options.BaseURL+"/api/v1/todos/{todoId}", wrapper.DeleteTodo)
	m.HandleFunc("GET "+options.BaseURL+"/api/v1/todos/{todoId}", wrapper.GetTodo)
	m.HandleFunc("PATCH "+options.BaseURL+"/api/v1/todos/{todoId}", wrapper.UpdateTodo)

	return m
}
