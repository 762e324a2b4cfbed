package mocks

import (
	"context"

	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/domain"
	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/usecases"
	"github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"
)

// NewMockCreateTodo creates a new instance of MockCreateTodo. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockCreateTodo(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCreateTodo {
	mock := &MockCreateTodo{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockCreateTodo is an autogenerated mock type for the CreateTodo type
type MockCreateTodo struct {
	mock.Mock
}

type MockCreateTodo_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCreateTodo) EXPECT() *MockCreateTodo_Expecter {
	return &MockCreateTodo_Expecter{mock: &_m.Mock}
}

// Execute provides a mock function for the type MockCreateTodo
func (_mock *MockCreateTodo) Execute(ctx context.Context, ownerID uuid.UUID, draft usecases.TodoDraft) (domain.Todo, error) {
	ret := _mock.Called(ctx, ownerID, draft)

	if len(ret) == 0 {
		panic("no return value specified for Execute")
	}

	var r0 domain.Todo
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, uuid.UUID, usecases.TodoDraft) (domain.Todo, error)); ok {
		return returnFunc(ctx, ownerID, draft)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, uuid.UUID, usecases.TodoDraft) domain.Todo); ok {
		r0 = returnFunc(ctx, ownerID, draft)
	} else {
		r0 = ret.Get(0).(domain.Todo)
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, uuid.UUID, usecases.TodoDraft) error); ok {
		r1 = returnFunc(ctx, ownerID, draft)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockCreateTodo_Execute_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Execute'
type MockCreateTodo_Execute_Call struct {
	*mock.Call
}

// Execute is a helper method to define mock.On call
//   - ctx context.Context
//   - ownerID uuid.UUID
//   - draft usecases.TodoDraft
func (_e *MockCreateTodo_Expecter) Execute(ctx interface{}, ownerID interface{}, draft interface{}) *MockCreateTodo_Execute_Call {
	return &MockCreateTodo_Execute_Call{Call: _e.mock.On("Execute", ctx, ownerID, draft)}
}

func (_c *MockCreateTodo_Execute_Call) Run(run func(ctx context.Context, ownerID uuid.UUID, draft usecases.TodoDraft)) *MockCreateTodo_Execute_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 uuid.UUID
		if args[1] != nil {
			arg1 = args[1].(uuid.UUID)
		}
		var arg2 usecases.TodoDraft
		if args[2] != nil {
			arg2 = args[2].(usecases.TodoDraft)
		}
		run(arg0, arg1, arg2)
	})
	return _c
}

func (_c *MockCreateTodo_Execute_Call) Return(todo domain.Todo, err error) *MockCreateTodo_Execute_Call {
	_c.Call.Return(todo, err)
	return _c
}

func (_c *MockCreateTodo_Execute_Call) RunAndReturn(run func(context.Context, uuid.UUID, usecases.TodoDraft) (domain.Todo, error)) *MockCreateTodo_Execute_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockCreateTodoWithAI creates a new instance of MockCreateTodoWithAI. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockCreateTodoWithAI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCreateTodoWithAI {
	mock := &MockCreateTodoWithAI{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockCreateTodoWithAI is an autogenerated mock type for the CreateTodoWithAI type
type MockCreateTodoWithAI struct {
	mock.Mock
}

type MockCreateTodoWithAI_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCreateTodoWithAI) EXPECT() *MockCreateTodoWithAI_Expecter {
	return &MockCreateTodoWithAI_Expecter{mock: &_m.Mock}
}

// Execute provides a mock function for the type MockCreateTodoWithAI
func (_mock *MockCreateTodoWithAI) Execute(ctx context.Context, userMessage string, ownerID uuid.UUID) (domain.Todo, error) {
	ret := _mock.Called(ctx, userMessage, ownerID)

	if len(ret) == 0 {
		panic("no return value specified for Execute")
	}

	var r0 domain.Todo
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, string, uuid.UUID) (domain.Todo, error)); ok {
		return returnFunc(ctx, userMessage, ownerID)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, string, uuid.UUID) domain.Todo); ok {
		r0 = returnFunc(ctx, userMessage, ownerID)
	} else {
		r0 = ret.Get(0).(domain.Todo)
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, string, uuid.UUID) error); ok {
		r1 = returnFunc(ctx, userMessage, ownerID)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockCreateTodoWithAI_Execute_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Execute'
type MockCreateTodoWithAI_Execute_Call struct {
	*mock.Call
}

// Execute is a helper method to define mock.On call
//   - ctx context.Context
//   - userMessage string
//   - ownerID uuid.UUID
func (_e *MockCreateTodoWithAI_Expecter) Execute(ctx interface{}, userMessage interface{}, ownerID interface{}) *MockCreateTodoWithAI_Execute_Call {
	return &MockCreateTodoWithAI_Execute_Call{Call: _e.mock.On("Execute", ctx, userMessage, ownerID)}
}

func (_c *MockCreateTodoWithAI_Execute_Call) Run(run func(ctx context.Context, userMessage string, ownerID uuid.UUID)) *MockCreateTodoWithAI_Execute_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 string
		if args[1] != nil {
			arg1 = args[1].(string)
		}
		var arg2 uuid.UUID
		if args[2] != nil {
			arg2 = args[2].(uuid.UUID)
		}
		run(arg0, arg1, arg2)
	})
	return _c
}

func (_c *MockCreateTodoWithAI_Execute_Call) Return(todo domain.Todo, err error) *MockCreateTodoWithAI_Execute_Call {
	_c.Call.Return(todo, err)
	return _c
}

func (_c *MockCreateTodoWithAI_Execute_Call) RunAndReturn(run func(context.Context, string, uuid.UUID) (domain.Todo, error)) *MockCreateTodoWithAI_Execute_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockDeleteTodo creates a new instance of MockDeleteTodo. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockDeleteTodo(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDeleteTodo {
	mock := &MockDeleteTodo{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockDeleteTodo is an autogenerated mock type for the DeleteTodo type
type MockDeleteTodo struct {
	mock.Mock
}

type MockDeleteTodo_Expecter struct {
	mock *mock.Mock
}

func (_m *MockDeleteTodo) EXPECT() *MockDeleteTodo_Expecter {
	return &MockDeleteTodo_Expecter{mock: &_m.Mock}
}

// Execute provides a mock function for the type MockDeleteTodo
func (_mock *MockDeleteTodo) Execute(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	ret := _mock.Called(ctx, id, ownerID)

	if len(ret) == 0 {
		panic("no return value specified for Execute")
	}

	var r0 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) error); ok {
		r0 = returnFunc(ctx, id, ownerID)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// MockDeleteTodo_Execute_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Execute'
type MockDeleteTodo_Execute_Call struct {
	*mock.Call
}

// Execute is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
//   - ownerID uuid.UUID
func (_e *MockDeleteTodo_Expecter) Execute(ctx interface{}, id interface{}, ownerID interface{}) *MockDeleteTodo_Execute_Call {
	return &MockDeleteTodo_Execute_Call{Call: _e.mock.On("Execute", ctx, id, ownerID)}
}

func (_c *MockDeleteTodo_Execute_Call) Run(run func(ctx context.Context, id uuid.UUID, ownerID uuid.UUID)) *MockDeleteTodo_Execute_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 uuid.UUID
		if args[1] != nil {
			arg1 = args[1].(uuid.UUID)
		}
		var arg2 uuid.UUID
		if args[2] != nil {
			arg2 = args[2].(uuid.UUID)
		}
		run(arg0, arg1, arg2)
	})
	return _c
}

func (_c *MockDeleteTodo_Execute_Call) Return(err error) *MockDeleteTodo_Execute_Call {
	_c.Call.Return(err)
	return _c
}

func (_c *MockDeleteTodo_Execute_Call) RunAndReturn(run func(context.Context, uuid.UUID, uuid.UUID) error) *MockDeleteTodo_Execute_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockEmbeddingGateway creates a new instance of MockEmbeddingGateway. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockEmbeddingGateway(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEmbeddingGateway {
	mock := &MockEmbeddingGateway{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockEmbeddingGateway is an autogenerated mock type for the EmbeddingGateway type
type MockEmbeddingGateway struct {
	mock.Mock
}

type MockEmbeddingGateway_Expecter struct {
	mock *mock.Mock
}

func (_m *MockEmbeddingGateway) EXPECT() *MockEmbeddingGateway_Expecter {
	return &MockEmbeddingGateway_Expecter{mock: &_m.Mock}
}

// Complete provides a mock function for the type MockEmbeddingGateway
func (_mock *MockEmbeddingGateway) Complete(ctx context.Context, systemPrompt string, userMessage string) (string, error) {
	ret := _mock.Called(ctx, systemPrompt, userMessage)

	if len(ret) == 0 {
		panic("no return value specified for Complete")
	}

	var r0 string
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, string, string) (string, error)); ok {
		return returnFunc(ctx, systemPrompt, userMessage)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, string, string) string); ok {
		r0 = returnFunc(ctx, systemPrompt, userMessage)
	} else {
		r0 = ret.Get(0).(string)
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = returnFunc(ctx, systemPrompt, userMessage)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockEmbeddingGateway_Complete_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Complete'
type MockEmbeddingGateway_Complete_Call struct {
	*mock.Call
}

// Complete is a helper method to define mock.On call
//   - ctx context.Context
//   - systemPrompt string
//   - userMessage string
func (_e *MockEmbeddingGateway_Expecter) Complete(ctx interface{}, systemPrompt interface{}, userMessage interface{}) *MockEmbeddingGateway_Complete_Call {
	return &MockEmbeddingGateway_Complete_Call{Call: _e.mock.On("Complete", ctx, systemPrompt, userMessage)}
}

func (_c *MockEmbeddingGateway_Complete_Call) Run(run func(ctx context.Context, systemPrompt string, userMessage string)) *MockEmbeddingGateway_Complete_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 string
		if args[1] != nil {
			arg1 = args[1].(string)
		}
		var arg2 string
		if args[2] != nil {
			arg2 = args[2].(string)
		}
		run(arg0, arg1, arg2)
	})
	return _c
}

func (_c *MockEmbeddingGateway_Complete_Call) Return(s string, err error) *MockEmbeddingGateway_Complete_Call {
	_c.Call.Return(s, err)
	return _c
}

func (_c *MockEmbeddingGateway_Complete_Call) RunAndReturn(run func(context.Context, string, string) (string, error)) *MockEmbeddingGateway_Complete_Call {
	_c.Call.Return(run)
	return _c
}

// Embed provides a mock function for the type MockEmbeddingGateway
func (_mock *MockEmbeddingGateway) Embed(ctx context.Context, text string) (domain.EmbeddingVector, error) {
	ret := _mock.Called(ctx, text)

	if len(ret) == 0 {
		panic("no return value specified for Embed")
	}

	var r0 domain.EmbeddingVector
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, string) (domain.EmbeddingVector, error)); ok {
		return returnFunc(ctx, text)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, string) domain.EmbeddingVector); ok {
		r0 = returnFunc(ctx, text)
	} else {
		r0 = ret.Get(0).(domain.EmbeddingVector)
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = returnFunc(ctx, text)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockEmbeddingGateway_Embed_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Embed'
type MockEmbeddingGateway_Embed_Call struct {
	*mock.Call
}

// Embed is a helper method to define mock.On call
//   - ctx context.Context
//   - text string
func (_e *MockEmbeddingGateway_Expecter) Embed(ctx interface{}, text interface{}) *MockEmbeddingGateway_Embed_Call {
	return &MockEmbeddingGateway_Embed_Call{Call: _e.mock.On("Embed", ctx, text)}
}

func (_c *MockEmbeddingGateway_Embed_Call) Run(run func(ctx context.Context, text string)) *MockEmbeddingGateway_Embed_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 string
		if args[1] != nil {
			arg1 = args[1].(string)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockEmbeddingGateway_Embed_Call) Return(embeddingVector domain.EmbeddingVector, err error) *MockEmbeddingGateway_Embed_Call {
	_c.Call.Return(embeddingVector, err)
	return _c
}

func (_c *MockEmbeddingGateway_Embed_Call) RunAndReturn(run func(context.Context, string) (domain.EmbeddingVector, error)) *MockEmbeddingGateway_Embed_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockGenerateEmbedding creates a new instance of MockGenerateEmbedding. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockGenerateEmbedding(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockGenerateEmbedding {
	mock := &MockGenerateEmbedding{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockGenerateEmbedding is an autogenerated mock type for the GenerateEmbedding type
type MockGenerateEmbedding struct {
	mock.Mock
}

type MockGenerateEmbedding_Expecter struct {
	mock *mock.Mock
}

func (_m *MockGenerateEmbedding) EXPECT() *MockGenerateEmbedding_Expecter {
	return &MockGenerateEmbedding_Expecter{mock: &_m.Mock}
}

// ForTodo provides a mock function for the type MockGenerateEmbedding
func (_mock *MockGenerateEmbedding) ForTodo(ctx context.Context, todo domain.Todo) ([]float64, error) {
	ret := _mock.Called(ctx, todo)

	if len(ret) == 0 {
		panic("no return value specified for ForTodo")
	}

	var r0 []float64
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, domain.Todo) ([]float64, error)); ok {
		return returnFunc(ctx, todo)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, domain.Todo) []float64); ok {
		r0 = returnFunc(ctx, todo)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]float64)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, domain.Todo) error); ok {
		r1 = returnFunc(ctx, todo)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockGenerateEmbedding_ForTodo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ForTodo'
type MockGenerateEmbedding_ForTodo_Call struct {
	*mock.Call
}

// ForTodo is a helper method to define mock.On call
//   - ctx context.Context
//   - todo domain.Todo
func (_e *MockGenerateEmbedding_Expecter) ForTodo(ctx interface{}, todo interface{}) *MockGenerateEmbedding_ForTodo_Call {
	return &MockGenerateEmbedding_ForTodo_Call{Call: _e.mock.On("ForTodo", ctx, todo)}
}

func (_c *MockGenerateEmbedding_ForTodo_Call) Run(run func(ctx context.Context, todo domain.Todo)) *MockGenerateEmbedding_ForTodo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 domain.Todo
		if args[1] != nil {
			arg1 = args[1].(domain.Todo)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockGenerateEmbedding_ForTodo_Call) Return(float64s []float64, err error) *MockGenerateEmbedding_ForTodo_Call {
	_c.Call.Return(float64s, err)
	return _c
}

func (_c *MockGenerateEmbedding_ForTodo_Call) RunAndReturn(run func(context.Context, domain.Todo) ([]float64, error)) *MockGenerateEmbedding_ForTodo_Call {
	_c.Call.Return(run)
	return _c
}

// FromText provides a mock function for the type MockGenerateEmbedding
func (_mock *MockGenerateEmbedding) FromText(ctx context.Context, text string) ([]float64, error) {
	ret := _mock.Called(ctx, text)

	if len(ret) == 0 {
		panic("no return value specified for FromText")
	}

	var r0 []float64
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, string) ([]float64, error)); ok {
		return returnFunc(ctx, text)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, string) []float64); ok {
		r0 = returnFunc(ctx, text)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]float64)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = returnFunc(ctx, text)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockGenerateEmbedding_FromText_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FromText'
type MockGenerateEmbedding_FromText_Call struct {
	*mock.Call
}

// FromText is a helper method to define mock.On call
//   - ctx context.Context
//   - text string
func (_e *MockGenerateEmbedding_Expecter) FromText(ctx interface{}, text interface{}) *MockGenerateEmbedding_FromText_Call {
	return &MockGenerateEmbedding_FromText_Call{Call: _e.mock.On("FromText", ctx, text)}
}

func (_c *MockGenerateEmbedding_FromText_Call) Run(run func(ctx context.Context, text string)) *MockGenerateEmbedding_FromText_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 string
		if args[1] != nil {
			arg1 = args[1].(string)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockGenerateEmbedding_FromText_Call) Return(float64s []float64, err error) *MockGenerateEmbedding_FromText_Call {
	_c.Call.Return(float64s, err)
	return _c
}

func (_c *MockGenerateEmbedding_FromText_Call) RunAndReturn(run func(context.Context, string) ([]float64, error)) *MockGenerateEmbedding_FromText_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockGetTodo creates a new instance of MockGetTodo. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockGetTodo(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockGetTodo {
	mock := &MockGetTodo{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockGetTodo is an autogenerated mock type for the GetTodo type
type MockGetTodo struct {
	mock.Mock
}

type MockGetTodo_Expecter struct {
	mock *mock.Mock
}

func (_m *MockGetTodo) EXPECT() *MockGetTodo_Expecter {
	return &MockGetTodo_Expecter{mock: &_m.Mock}
}

// Query provides a mock function for the type MockGetTodo
func (_mock *MockGetTodo) Query(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (domain.Todo, error) {
	ret := _mock.Called(ctx, id, ownerID)

	if len(ret) == 0 {
		panic("no return value specified for Query")
	}

	var r0 domain.Todo
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) (domain.Todo, error)); ok {
		return returnFunc(ctx, id, ownerID)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) domain.Todo); ok {
		r0 = returnFunc(ctx, id, ownerID)
	} else {
		r0 = ret.Get(0).(domain.Todo)
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, uuid.UUID, uuid.UUID) error); ok {
		r1 = returnFunc(ctx, id, ownerID)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockGetTodo_Query_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Query'
type MockGetTodo_Query_Call struct {
	*mock.Call
}

// Query is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
//   - ownerID uuid.UUID
func (_e *MockGetTodo_Expecter) Query(ctx interface{}, id interface{}, ownerID interface{}) *MockGetTodo_Query_Call {
	return &MockGetTodo_Query_Call{Call: _e.mock.On("Query", ctx, id, ownerID)}
}

func (_c *MockGetTodo_Query_Call) Run(run func(ctx context.Context, id uuid.UUID, ownerID uuid.UUID)) *MockGetTodo_Query_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 uuid.UUID
		if args[1] != nil {
			arg1 = args[1].(uuid.UUID)
		}
		var arg2 uuid.UUID
		if args[2] != nil {
			arg2 = args[2].(uuid.UUID)
		}
		run(arg0, arg1, arg2)
	})
	return _c
}

func (_c *MockGetTodo_Query_Call) Return(todo domain.Todo, err error) *MockGetTodo_Query_Call {
	_c.Call.Return(todo, err)
	return _c
}

func (_c *MockGetTodo_Query_Call) RunAndReturn(run func(context.Context, uuid.UUID, uuid.UUID) (domain.Todo, error)) *MockGetTodo_Query_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockListTodos creates a new instance of MockListTodos. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockListTodos(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockListTodos {
	mock := &MockListTodos{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockListTodos is an autogenerated mock type for the ListTodos type
type MockListTodos struct {
	mock.Mock
}

type MockListTodos_Expecter struct {
	mock *mock.Mock
}

func (_m *MockListTodos) EXPECT() *MockListTodos_Expecter {
	return &MockListTodos_Expecter{mock: &_m.Mock}
}

// Query provides a mock function for the type MockListTodos
func (_mock *MockListTodos) Query(ctx context.Context, ownerID uuid.UUID, page int, pageSize int) (usecases.TodoPage, error) {
	ret := _mock.Called(ctx, ownerID, page, pageSize)

	if len(ret) == 0 {
		panic("no return value specified for Query")
	}

	var r0 usecases.TodoPage
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, uuid.UUID, int, int) (usecases.TodoPage, error)); ok {
		return returnFunc(ctx, ownerID, page, pageSize)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, uuid.UUID, int, int) usecases.TodoPage); ok {
		r0 = returnFunc(ctx, ownerID, page, pageSize)
	} else {
		r0 = ret.Get(0).(usecases.TodoPage)
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, uuid.UUID, int, int) error); ok {
		r1 = returnFunc(ctx, ownerID, page, pageSize)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockListTodos_Query_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Query'
type MockListTodos_Query_Call struct {
	*mock.Call
}

// Query is a helper method to define mock.On call
//   - ctx context.Context
//   - ownerID uuid.UUID
//   - page int
//   - pageSize int
func (_e *MockListTodos_Expecter) Query(ctx interface{}, ownerID interface{}, page interface{}, pageSize interface{}) *MockListTodos_Query_Call {
	return &MockListTodos_Query_Call{Call: _e.mock.On("Query", ctx, ownerID, page, pageSize)}
}

func (_c *MockListTodos_Query_Call) Run(run func(ctx context.Context, ownerID uuid.UUID, page int, pageSize int)) *MockListTodos_Query_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 uuid.UUID
		if args[1] != nil {
			arg1 = args[1].(uuid.UUID)
		}
		var arg2 int
		if args[2] != nil {
			arg2 = args[2].(int)
		}
		var arg3 int
		if args[3] != nil {
			arg3 = args[3].(int)
		}
		run(arg0, arg1, arg2, arg3)
	})
	return _c
}

func (_c *MockListTodos_Query_Call) Return(todoPage usecases.TodoPage, err error) *MockListTodos_Query_Call {
	_c.Call.Return(todoPage, err)
	return _c
}

func (_c *MockListTodos_Query_Call) RunAndReturn(run func(context.Context, uuid.UUID, int, int) (usecases.TodoPage, error)) *MockListTodos_Query_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockRelayOutbox creates a new instance of MockRelayOutbox. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockRelayOutbox(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRelayOutbox {
	mock := &MockRelayOutbox{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockRelayOutbox is an autogenerated mock type for the RelayOutbox type
type MockRelayOutbox struct {
	mock.Mock
}

type MockRelayOutbox_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRelayOutbox) EXPECT() *MockRelayOutbox_Expecter {
	return &MockRelayOutbox_Expecter{mock: &_m.Mock}
}

// Execute provides a mock function for the type MockRelayOutbox
func (_mock *MockRelayOutbox) Execute(ctx context.Context) error {
	ret := _mock.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Execute")
	}

	var r0 error
	if returnFunc, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = returnFunc(ctx)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// MockRelayOutbox_Execute_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Execute'
type MockRelayOutbox_Execute_Call struct {
	*mock.Call
}

// Execute is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockRelayOutbox_Expecter) Execute(ctx interface{}) *MockRelayOutbox_Execute_Call {
	return &MockRelayOutbox_Execute_Call{Call: _e.mock.On("Execute", ctx)}
}

func (_c *MockRelayOutbox_Execute_Call) Run(run func(ctx context.Context)) *MockRelayOutbox_Execute_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		run(arg0)
	})
	return _c
}

func (_c *MockRelayOutbox_Execute_Call) Return(err error) *MockRelayOutbox_Execute_Call {
	_c.Call.Return(err)
	return _c
}

func (_c *MockRelayOutbox_Execute_Call) RunAndReturn(run func(context.Context) error) *MockRelayOutbox_Execute_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockSemanticSearch creates a new instance of MockSemanticSearch. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockSemanticSearch(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSemanticSearch {
	mock := &MockSemanticSearch{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockSemanticSearch is an autogenerated mock type for the SemanticSearch type
type MockSemanticSearch struct {
	mock.Mock
}

type MockSemanticSearch_Expecter struct {
	mock *mock.Mock
}

func (_m *MockSemanticSearch) EXPECT() *MockSemanticSearch_Expecter {
	return &MockSemanticSearch_Expecter{mock: &_m.Mock}
}

// Query provides a mock function for the type MockSemanticSearch
func (_mock *MockSemanticSearch) Query(ctx context.Context, query string, limit int, ownerID uuid.UUID) ([]domain.SearchResult, error) {
	ret := _mock.Called(ctx, query, limit, ownerID)

	if len(ret) == 0 {
		panic("no return value specified for Query")
	}

	var r0 []domain.SearchResult
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, string, int, uuid.UUID) ([]domain.SearchResult, error)); ok {
		return returnFunc(ctx, query, limit, ownerID)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, string, int, uuid.UUID) []domain.SearchResult); ok {
		r0 = returnFunc(ctx, query, limit, ownerID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.SearchResult)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, string, int, uuid.UUID) error); ok {
		r1 = returnFunc(ctx, query, limit, ownerID)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockSemanticSearch_Query_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Query'
type MockSemanticSearch_Query_Call struct {
	*mock.Call
}

// Query is a helper method to define mock.On call
//   - ctx context.Context
//   - query string
//   - limit int
//   - ownerID uuid.UUID
func (_e *MockSemanticSearch_Expecter) Query(ctx interface{}, query interface{}, limit interface{}, ownerID interface{}) *MockSemanticSearch_Query_Call {
	return &MockSemanticSearch_Query_Call{Call: _e.mock.On("Query", ctx, query, limit, ownerID)}
}

func (_c *MockSemanticSearch_Query_Call) Run(run func(ctx context.Context, query string, limit int, ownerID uuid.UUID)) *MockSemanticSearch_Query_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 string
		if args[1] != nil {
			arg1 = args[1].(string)
		}
		var arg2 int
		if args[2] != nil {
			arg2 = args[2].(int)
		}
		var arg3 uuid.UUID
		if args[3] != nil {
			arg3 = args[3].(uuid.UUID)
		}
		run(arg0, arg1, arg2, arg3)
	})
	return _c
}

func (_c *MockSemanticSearch_Query_Call) Return(searchResults []domain.SearchResult, err error) *MockSemanticSearch_Query_Call {
	_c.Call.Return(searchResults, err)
	return _c
}

func (_c *MockSemanticSearch_Query_Call) RunAndReturn(run func(context.Context, string, int, uuid.UUID) ([]domain.SearchResult, error)) *MockSemanticSearch_Query_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockTodoCreator creates a new instance of MockTodoCreator. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockTodoCreator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTodoCreator {
	mock := &MockTodoCreator{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockTodoCreator is an autogenerated mock type for the TodoCreator type
type MockTodoCreator struct {
	mock.Mock
}

type MockTodoCreator_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTodoCreator) EXPECT() *MockTodoCreator_Expecter {
	return &MockTodoCreator_Expecter{mock: &_m.Mock}
}

// Create provides a mock function for the type MockTodoCreator
func (_mock *MockTodoCreator) Create(ctx context.Context, uow domain.UnitOfWork, ownerID uuid.UUID, draft usecases.TodoDraft) (domain.Todo, error) {
	ret := _mock.Called(ctx, uow, ownerID, draft)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 domain.Todo
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, domain.UnitOfWork, uuid.UUID, usecases.TodoDraft) (domain.Todo, error)); ok {
		return returnFunc(ctx, uow, ownerID, draft)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, domain.UnitOfWork, uuid.UUID, usecases.TodoDraft) domain.Todo); ok {
		r0 = returnFunc(ctx, uow, ownerID, draft)
	} else {
		r0 = ret.Get(0).(domain.Todo)
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, domain.UnitOfWork, uuid.UUID, usecases.TodoDraft) error); ok {
		r1 = returnFunc(ctx, uow, ownerID, draft)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockTodoCreator_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type MockTodoCreator_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
//   - ctx context.Context
//   - uow domain.UnitOfWork
//   - ownerID uuid.UUID
//   - draft usecases.TodoDraft
func (_e *MockTodoCreator_Expecter) Create(ctx interface{}, uow interface{}, ownerID interface{}, draft interface{}) *MockTodoCreator_Create_Call {
	return &MockTodoCreator_Create_Call{Call: _e.mock.On("Create", ctx, uow, ownerID, draft)}
}

func (_c *MockTodoCreator_Create_Call) Run(run func(ctx context.Context, uow domain.UnitOfWork, ownerID uuid.UUID, draft usecases.TodoDraft)) *MockTodoCreator_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 domain.UnitOfWork
		if args[1] != nil {
			arg1 = args[1].(domain.UnitOfWork)
		}
		var arg2 uuid.UUID
		if args[2] != nil {
			arg2 = args[2].(uuid.UUID)
		}
		var arg3 usecases.TodoDraft
		if args[3] != nil {
			arg3 = args[3].(usecases.TodoDraft)
		}
		run(arg0, arg1, arg2, arg3)
	})
	return _c
}

func (_c *MockTodoCreator_Create_Call) Return(todo domain.Todo, err error) *MockTodoCreator_Create_Call {
	_c.Call.Return(todo, err)
	return _c
}

func (_c *MockTodoCreator_Create_Call) RunAndReturn(run func(context.Context, domain.UnitOfWork, uuid.UUID, usecases.TodoDraft) (domain.Todo, error)) *MockTodoCreator_Create_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockUpdateTodo creates a new instance of MockUpdateTodo. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockUpdateTodo(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUpdateTodo {
	mock := &MockUpdateTodo{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockUpdateTodo is an autogenerated mock type for the UpdateTodo type
type MockUpdateTodo struct {
	mock.Mock
}

type MockUpdateTodo_Expecter struct {
	mock *mock.Mock
}

func (_m *MockUpdateTodo) EXPECT() *MockUpdateTodo_Expecter {
	return &MockUpdateTodo_Expecter{mock: &_m.Mock}
}

// Execute provides a mock function for the type MockUpdateTodo
func (_mock *MockUpdateTodo) Execute(ctx context.Context, id uuid.UUID, ownerID uuid.UUID, params usecases.UpdateTodoParams) (domain.Todo, error) {
	ret := _mock.Called(ctx, id, ownerID, params)

	if len(ret) == 0 {
		panic("no return value specified for Execute")
	}

	var r0 domain.Todo
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID, usecases.UpdateTodoParams) (domain.Todo, error)); ok {
		return returnFunc(ctx, id, ownerID, params)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID, usecases.UpdateTodoParams) domain.Todo); ok {
		r0 = returnFunc(ctx, id, ownerID, params)
	} else {
		r0 = ret.Get(0).(domain.Todo)
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, uuid.UUID, uuid.UUID, usecases.UpdateTodoParams) error); ok {
		r1 = returnFunc(ctx, id, ownerID, params)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockUpdateTodo_Execute_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Execute'
type MockUpdateTodo_Execute_Call struct {
	*mock.Call
}

// Execute is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
//   - ownerID uuid.UUID
//   - params usecases.UpdateTodoParams
func (_e *MockUpdateTodo_Expecter) Execute(ctx interface{}, id interface{}, ownerID interface{}, params interface{}) *MockUpdateTodo_Execute_Call {
	return &MockUpdateTodo_Execute_Call{Call: _e.mock.On("Execute", ctx, id, ownerID, params)}
}

func (_c *MockUpdateTodo_Execute_Call) Run(run func(ctx context.Context, id uuid.UUID, ownerID uuid.UUID, params usecases.UpdateTodoParams)) *MockUpdateTodo_Execute_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 uuid.UUID
		if args[1] != nil {
			arg1 = args[1].(uuid.UUID)
		}
		var arg2 uuid.UUID
		if args[2] != nil {
			arg2 = args[2].(uuid.UUID)
		}
		var arg3 usecases.UpdateTodoParams
		if args[3] != nil {
			arg3 = args[3].(usecases.UpdateTodoParams)
		}
		run(arg0, arg1, arg2, arg3)
	})
	return _c
}

func (_c *MockUpdateTodo_Execute_Call) Return(todo domain.Todo, err error) *MockUpdateTodo_Execute_Call {
	_c.Call.Return(todo, err)
	return _c
}

func (_c *MockUpdateTodo_Execute_Call) RunAndReturn(run func(context.Context, uuid.UUID, uuid.UUID, usecases.UpdateTodoParams) (domain.Todo, error)) *MockUpdateTodo_Execute_Call {
	_c.Call.Return(run)
	return _c
}
