package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	mock "github.com/stretchr/testify/mock"
)

// NewMockAIProvider creates a new instance of MockAIProvider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockAIProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAIProvider {
	mock := &MockAIProvider{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockAIProvider is an autogenerated mock type for the AIProvider type
type MockAIProvider struct {
	mock.Mock
}

type MockAIProvider_Expecter struct {
	mock *mock.Mock
}

func (_m *MockAIProvider) EXPECT() *MockAIProvider_Expecter {
	return &MockAIProvider_Expecter{mock: &_m.Mock}
}

// GenerateCompletion provides a mock function for the type MockAIProvider
func (_mock *MockAIProvider) GenerateCompletion(ctx context.Context, req CompletionRequest) (Completion, error) {
	ret := _mock.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for GenerateCompletion")
	}

	var r0 Completion
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, CompletionRequest) (Completion, error)); ok {
		return returnFunc(ctx, req)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, CompletionRequest) Completion); ok {
		r0 = returnFunc(ctx, req)
	} else {
		r0 = ret.Get(0).(Completion)
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, CompletionRequest) error); ok {
		r1 = returnFunc(ctx, req)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockAIProvider_GenerateCompletion_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GenerateCompletion'
type MockAIProvider_GenerateCompletion_Call struct {
	*mock.Call
}

// GenerateCompletion is a helper method to define mock.On call
//   - ctx context.Context
//   - req CompletionRequest
func (_e *MockAIProvider_Expecter) GenerateCompletion(ctx interface{}, req interface{}) *MockAIProvider_GenerateCompletion_Call {
	return &MockAIProvider_GenerateCompletion_Call{Call: _e.mock.On("GenerateCompletion", ctx, req)}
}

func (_c *MockAIProvider_GenerateCompletion_Call) Run(run func(ctx context.Context, req CompletionRequest)) *MockAIProvider_GenerateCompletion_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 CompletionRequest
		if args[1] != nil {
			arg1 = args[1].(CompletionRequest)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockAIProvider_GenerateCompletion_Call) Return(completion Completion, err error) *MockAIProvider_GenerateCompletion_Call {
	_c.Call.Return(completion, err)
	return _c
}

func (_c *MockAIProvider_GenerateCompletion_Call) RunAndReturn(run func(context.Context, CompletionRequest) (Completion, error)) *MockAIProvider_GenerateCompletion_Call {
	_c.Call.Return(run)
	return _c
}

// GenerateEmbedding provides a mock function for the type MockAIProvider
func (_mock *MockAIProvider) GenerateEmbedding(ctx context.Context, text string) (EmbeddingVector, error) {
	ret := _mock.Called(ctx, text)

	if len(ret) == 0 {
		panic("no return value specified for GenerateEmbedding")
	}

	var r0 EmbeddingVector
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, string) (EmbeddingVector, error)); ok {
		return returnFunc(ctx, text)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, string) EmbeddingVector); ok {
		r0 = returnFunc(ctx, text)
	} else {
		r0 = ret.Get(0).(EmbeddingVector)
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = returnFunc(ctx, text)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockAIProvider_GenerateEmbedding_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GenerateEmbedding'
type MockAIProvider_GenerateEmbedding_Call struct {
	*mock.Call
}

// GenerateEmbedding is a helper method to define mock.On call
//   - ctx context.Context
//   - text string
func (_e *MockAIProvider_Expecter) GenerateEmbedding(ctx interface{}, text interface{}) *MockAIProvider_GenerateEmbedding_Call {
	return &MockAIProvider_GenerateEmbedding_Call{Call: _e.mock.On("GenerateEmbedding", ctx, text)}
}

func (_c *MockAIProvider_GenerateEmbedding_Call) Run(run func(ctx context.Context, text string)) *MockAIProvider_GenerateEmbedding_Call {
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

func (_c *MockAIProvider_GenerateEmbedding_Call) Return(embeddingVector EmbeddingVector, err error) *MockAIProvider_GenerateEmbedding_Call {
	_c.Call.Return(embeddingVector, err)
	return _c
}

func (_c *MockAIProvider_GenerateEmbedding_Call) RunAndReturn(run func(context.Context, string) (EmbeddingVector, error)) *MockAIProvider_GenerateEmbedding_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockCurrentTimeProvider creates a new instance of MockCurrentTimeProvider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockCurrentTimeProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCurrentTimeProvider {
	mock := &MockCurrentTimeProvider{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockCurrentTimeProvider is an autogenerated mock type for the CurrentTimeProvider type
type MockCurrentTimeProvider struct {
	mock.Mock
}

type MockCurrentTimeProvider_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCurrentTimeProvider) EXPECT() *MockCurrentTimeProvider_Expecter {
	return &MockCurrentTimeProvider_Expecter{mock: &_m.Mock}
}

// Now provides a mock function for the type MockCurrentTimeProvider
func (_mock *MockCurrentTimeProvider) Now() time.Time {
	ret := _mock.Called()

	if len(ret) == 0 {
		panic("no return value specified for Now")
	}

	var r0 time.Time
	if returnFunc, ok := ret.Get(0).(func() time.Time); ok {
		r0 = returnFunc()
	} else {
		r0 = ret.Get(0).(time.Time)
	}
	return r0
}

// MockCurrentTimeProvider_Now_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Now'
type MockCurrentTimeProvider_Now_Call struct {
	*mock.Call
}

// Now is a helper method to define mock.On call
func (_e *MockCurrentTimeProvider_Expecter) Now() *MockCurrentTimeProvider_Now_Call {
	return &MockCurrentTimeProvider_Now_Call{Call: _e.mock.On("Now")}
}

func (_c *MockCurrentTimeProvider_Now_Call) Run(run func()) *MockCurrentTimeProvider_Now_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockCurrentTimeProvider_Now_Call) Return(time1 time.Time) *MockCurrentTimeProvider_Now_Call {
	_c.Call.Return(time1)
	return _c
}

func (_c *MockCurrentTimeProvider_Now_Call) RunAndReturn(run func() time.Time) *MockCurrentTimeProvider_Now_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockEmbeddingCache creates a new instance of MockEmbeddingCache. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockEmbeddingCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEmbeddingCache {
	mock := &MockEmbeddingCache{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockEmbeddingCache is an autogenerated mock type for the EmbeddingCache type
type MockEmbeddingCache struct {
	mock.Mock
}

type MockEmbeddingCache_Expecter struct {
	mock *mock.Mock
}

func (_m *MockEmbeddingCache) EXPECT() *MockEmbeddingCache_Expecter {
	return &MockEmbeddingCache_Expecter{mock: &_m.Mock}
}

// Get provides a mock function for the type MockEmbeddingCache
func (_mock *MockEmbeddingCache) Get(ctx context.Context, text string) ([]float64, bool, error) {
	ret := _mock.Called(ctx, text)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	var r0 []float64
	var r1 bool
	var r2 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, string) ([]float64, bool, error)); ok {
		return returnFunc(ctx, text)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, string) []float64); ok {
		r0 = returnFunc(ctx, text)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]float64)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, string) bool); ok {
		r1 = returnFunc(ctx, text)
	} else {
		r1 = ret.Get(1).(bool)
	}
	if returnFunc, ok := ret.Get(2).(func(context.Context, string) error); ok {
		r2 = returnFunc(ctx, text)
	} else {
		r2 = ret.Error(2)
	}
	return r0, r1, r2
}

// MockEmbeddingCache_Get_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Get'
type MockEmbeddingCache_Get_Call struct {
	*mock.Call
}

// Get is a helper method to define mock.On call
//   - ctx context.Context
//   - text string
func (_e *MockEmbeddingCache_Expecter) Get(ctx interface{}, text interface{}) *MockEmbeddingCache_Get_Call {
	return &MockEmbeddingCache_Get_Call{Call: _e.mock.On("Get", ctx, text)}
}

func (_c *MockEmbeddingCache_Get_Call) Run(run func(ctx context.Context, text string)) *MockEmbeddingCache_Get_Call {
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

func (_c *MockEmbeddingCache_Get_Call) Return(float64s []float64, b bool, err error) *MockEmbeddingCache_Get_Call {
	_c.Call.Return(float64s, b, err)
	return _c
}

func (_c *MockEmbeddingCache_Get_Call) RunAndReturn(run func(context.Context, string) ([]float64, bool, error)) *MockEmbeddingCache_Get_Call {
	_c.Call.Return(run)
	return _c
}

// Set provides a mock function for the type MockEmbeddingCache
func (_mock *MockEmbeddingCache) Set(ctx context.Context, text string, vector []float64, ttl time.Duration) error {
	ret := _mock.Called(ctx, text, vector, ttl)

	if len(ret) == 0 {
		panic("no return value specified for Set")
	}

	var r0 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, string, []float64, time.Duration) error); ok {
		r0 = returnFunc(ctx, text, vector, ttl)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// MockEmbeddingCache_Set_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Set'
type MockEmbeddingCache_Set_Call struct {
	*mock.Call
}

// Set is a helper method to define mock.On call
//   - ctx context.Context
//   - text string
//   - vector []float64
//   - ttl time.Duration
func (_e *MockEmbeddingCache_Expecter) Set(ctx interface{}, text interface{}, vector interface{}, ttl interface{}) *MockEmbeddingCache_Set_Call {
	return &MockEmbeddingCache_Set_Call{Call: _e.mock.On("Set", ctx, text, vector, ttl)}
}

func (_c *MockEmbeddingCache_Set_Call) Run(run func(ctx context.Context, text string, vector []float64, ttl time.Duration)) *MockEmbeddingCache_Set_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 string
		if args[1] != nil {
			arg1 = args[1].(string)
		}
		var arg2 []float64
		if args[2] != nil {
			arg2 = args[2].([]float64)
		}
		var arg3 time.Duration
		if args[3] != nil {
			arg3 = args[3].(time.Duration)
		}
		run(arg0, arg1, arg2, arg3)
	})
	return _c
}

func (_c *MockEmbeddingCache_Set_Call) Return(err error) *MockEmbeddingCache_Set_Call {
	_c.Call.Return(err)
	return _c
}

func (_c *MockEmbeddingCache_Set_Call) RunAndReturn(run func(context.Context, string, []float64, time.Duration) error) *MockEmbeddingCache_Set_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockEventPublisher creates a new instance of MockEventPublisher. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEventPublisher {
	mock := &MockEventPublisher{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockEventPublisher is an autogenerated mock type for the EventPublisher type
type MockEventPublisher struct {
	mock.Mock
}

type MockEventPublisher_Expecter struct {
	mock *mock.Mock
}

func (_m *MockEventPublisher) EXPECT() *MockEventPublisher_Expecter {
	return &MockEventPublisher_Expecter{mock: &_m.Mock}
}

// PublishEvent provides a mock function for the type MockEventPublisher
func (_mock *MockEventPublisher) PublishEvent(ctx context.Context, event OutboxEvent) error {
	ret := _mock.Called(ctx, event)

	if len(ret) == 0 {
		panic("no return value specified for PublishEvent")
	}

	var r0 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, OutboxEvent) error); ok {
		r0 = returnFunc(ctx, event)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// MockEventPublisher_PublishEvent_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'PublishEvent'
type MockEventPublisher_PublishEvent_Call struct {
	*mock.Call
}

// PublishEvent is a helper method to define mock.On call
//   - ctx context.Context
//   - event OutboxEvent
func (_e *MockEventPublisher_Expecter) PublishEvent(ctx interface{}, event interface{}) *MockEventPublisher_PublishEvent_Call {
	return &MockEventPublisher_PublishEvent_Call{Call: _e.mock.On("PublishEvent", ctx, event)}
}

func (_c *MockEventPublisher_PublishEvent_Call) Run(run func(ctx context.Context, event OutboxEvent)) *MockEventPublisher_PublishEvent_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 OutboxEvent
		if args[1] != nil {
			arg1 = args[1].(OutboxEvent)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockEventPublisher_PublishEvent_Call) Return(err error) *MockEventPublisher_PublishEvent_Call {
	_c.Call.Return(err)
	return _c
}

func (_c *MockEventPublisher_PublishEvent_Call) RunAndReturn(run func(context.Context, OutboxEvent) error) *MockEventPublisher_PublishEvent_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockOutboxRepository creates a new instance of MockOutboxRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockOutboxRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOutboxRepository {
	mock := &MockOutboxRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockOutboxRepository is an autogenerated mock type for the OutboxRepository type
type MockOutboxRepository struct {
	mock.Mock
}

type MockOutboxRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockOutboxRepository) EXPECT() *MockOutboxRepository_Expecter {
	return &MockOutboxRepository_Expecter{mock: &_m.Mock}
}

// CreateTodoEvent provides a mock function for the type MockOutboxRepository
func (_mock *MockOutboxRepository) CreateTodoEvent(ctx context.Context, event TodoEvent) error {
	ret := _mock.Called(ctx, event)

	if len(ret) == 0 {
		panic("no return value specified for CreateTodoEvent")
	}

	var r0 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, TodoEvent) error); ok {
		r0 = returnFunc(ctx, event)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// MockOutboxRepository_CreateTodoEvent_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateTodoEvent'
type MockOutboxRepository_CreateTodoEvent_Call struct {
	*mock.Call
}

// CreateTodoEvent is a helper method to define mock.On call
//   - ctx context.Context
//   - event TodoEvent
func (_e *MockOutboxRepository_Expecter) CreateTodoEvent(ctx interface{}, event interface{}) *MockOutboxRepository_CreateTodoEvent_Call {
	return &MockOutboxRepository_CreateTodoEvent_Call{Call: _e.mock.On("CreateTodoEvent", ctx, event)}
}

func (_c *MockOutboxRepository_CreateTodoEvent_Call) Run(run func(ctx context.Context, event TodoEvent)) *MockOutboxRepository_CreateTodoEvent_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 TodoEvent
		if args[1] != nil {
			arg1 = args[1].(TodoEvent)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockOutboxRepository_CreateTodoEvent_Call) Return(err error) *MockOutboxRepository_CreateTodoEvent_Call {
	_c.Call.Return(err)
	return _c
}

func (_c *MockOutboxRepository_CreateTodoEvent_Call) RunAndReturn(run func(context.Context, TodoEvent) error) *MockOutboxRepository_CreateTodoEvent_Call {
	_c.Call.Return(run)
	return _c
}

// DeleteEvent provides a mock function for the type MockOutboxRepository
func (_mock *MockOutboxRepository) DeleteEvent(ctx context.Context, eventID uuid.UUID) error {
	ret := _mock.Called(ctx, eventID)

	if len(ret) == 0 {
		panic("no return value specified for DeleteEvent")
	}

	var r0 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, uuid.UUID) error); ok {
		r0 = returnFunc(ctx, eventID)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// MockOutboxRepository_DeleteEvent_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DeleteEvent'
type MockOutboxRepository_DeleteEvent_Call struct {
	*mock.Call
}

// DeleteEvent is a helper method to define mock.On call
//   - ctx context.Context
//   - eventID uuid.UUID
func (_e *MockOutboxRepository_Expecter) DeleteEvent(ctx interface{}, eventID interface{}) *MockOutboxRepository_DeleteEvent_Call {
	return &MockOutboxRepository_DeleteEvent_Call{Call: _e.mock.On("DeleteEvent", ctx, eventID)}
}

func (_c *MockOutboxRepository_DeleteEvent_Call) Run(run func(ctx context.Context, eventID uuid.UUID)) *MockOutboxRepository_DeleteEvent_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 uuid.UUID
		if args[1] != nil {
			arg1 = args[1].(uuid.UUID)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockOutboxRepository_DeleteEvent_Call) Return(err error) *MockOutboxRepository_DeleteEvent_Call {
	_c.Call.Return(err)
	return _c
}

func (_c *MockOutboxRepository_DeleteEvent_Call) RunAndReturn(run func(context.Context, uuid.UUID) error) *MockOutboxRepository_DeleteEvent_Call {
	_c.Call.Return(run)
	return _c
}

// FetchPendingEvents provides a mock function for the type MockOutboxRepository
func (_mock *MockOutboxRepository) FetchPendingEvents(ctx context.Context, limit int) ([]OutboxEvent, error) {
	ret := _mock.Called(ctx, limit)

	if len(ret) == 0 {
		panic("no return value specified for FetchPendingEvents")
	}

	var r0 []OutboxEvent
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, int) ([]OutboxEvent, error)); ok {
		return returnFunc(ctx, limit)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, int) []OutboxEvent); ok {
		r0 = returnFunc(ctx, limit)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]OutboxEvent)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = returnFunc(ctx, limit)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockOutboxRepository_FetchPendingEvents_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FetchPendingEvents'
type MockOutboxRepository_FetchPendingEvents_Call struct {
	*mock.Call
}

// FetchPendingEvents is a helper method to define mock.On call
//   - ctx context.Context
//   - limit int
func (_e *MockOutboxRepository_Expecter) FetchPendingEvents(ctx interface{}, limit interface{}) *MockOutboxRepository_FetchPendingEvents_Call {
	return &MockOutboxRepository_FetchPendingEvents_Call{Call: _e.mock.On("FetchPendingEvents", ctx, limit)}
}

func (_c *MockOutboxRepository_FetchPendingEvents_Call) Run(run func(ctx context.Context, limit int)) *MockOutboxRepository_FetchPendingEvents_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 int
		if args[1] != nil {
			arg1 = args[1].(int)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockOutboxRepository_FetchPendingEvents_Call) Return(outboxEvents []OutboxEvent, err error) *MockOutboxRepository_FetchPendingEvents_Call {
	_c.Call.Return(outboxEvents, err)
	return _c
}

func (_c *MockOutboxRepository_FetchPendingEvents_Call) RunAndReturn(run func(context.Context, int) ([]OutboxEvent, error)) *MockOutboxRepository_FetchPendingEvents_Call {
	_c.Call.Return(run)
	return _c
}

// UpdateEvent provides a mock function for the type MockOutboxRepository
func (_mock *MockOutboxRepository) UpdateEvent(ctx context.Context, eventID uuid.UUID, status OutboxStatus, retryCount int, lastError string) error {
	ret := _mock.Called(ctx, eventID, status, retryCount, lastError)

	if len(ret) == 0 {
		panic("no return value specified for UpdateEvent")
	}

	var r0 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, uuid.UUID, OutboxStatus, int, string) error); ok {
		r0 = returnFunc(ctx, eventID, status, retryCount, lastError)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// MockOutboxRepository_UpdateEvent_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpdateEvent'
type MockOutboxRepository_UpdateEvent_Call struct {
	*mock.Call
}

// UpdateEvent is a helper method to define mock.On call
//   - ctx context.Context
//   - eventID uuid.UUID
//   - status OutboxStatus
//   - retryCount int
//   - lastError string
func (_e *MockOutboxRepository_Expecter) UpdateEvent(ctx interface{}, eventID interface{}, status interface{}, retryCount interface{}, lastError interface{}) *MockOutboxRepository_UpdateEvent_Call {
	return &MockOutboxRepository_UpdateEvent_Call{Call: _e.mock.On("UpdateEvent", ctx, eventID, status, retryCount, lastError)}
}

func (_c *MockOutboxRepository_UpdateEvent_Call) Run(run func(ctx context.Context, eventID uuid.UUID, status OutboxStatus, retryCount int, lastError string)) *MockOutboxRepository_UpdateEvent_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 uuid.UUID
		if args[1] != nil {
			arg1 = args[1].(uuid.UUID)
		}
		var arg2 OutboxStatus
		if args[2] != nil {
			arg2 = args[2].(OutboxStatus)
		}
		var arg3 int
		if args[3] != nil {
			arg3 = args[3].(int)
		}
		var arg4 string
		if args[4] != nil {
			arg4 = args[4].(string)
		}
		run(arg0, arg1, arg2, arg3, arg4)
	})
	return _c
}

func (_c *MockOutboxRepository_UpdateEvent_Call) Return(err error) *MockOutboxRepository_UpdateEvent_Call {
	_c.Call.Return(err)
	return _c
}

func (_c *MockOutboxRepository_UpdateEvent_Call) RunAndReturn(run func(context.Context, uuid.UUID, OutboxStatus, int, string) error) *MockOutboxRepository_UpdateEvent_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockTodoRepository creates a new instance of MockTodoRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockTodoRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTodoRepository {
	mock := &MockTodoRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockTodoRepository is an autogenerated mock type for the TodoRepository type
type MockTodoRepository struct {
	mock.Mock
}

type MockTodoRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTodoRepository) EXPECT() *MockTodoRepository_Expecter {
	return &MockTodoRepository_Expecter{mock: &_m.Mock}
}

// CreateTodo provides a mock function for the type MockTodoRepository
func (_mock *MockTodoRepository) CreateTodo(ctx context.Context, todo Todo) error {
	ret := _mock.Called(ctx, todo)

	if len(ret) == 0 {
		panic("no return value specified for CreateTodo")
	}

	var r0 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, Todo) error); ok {
		r0 = returnFunc(ctx, todo)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// MockTodoRepository_CreateTodo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateTodo'
type MockTodoRepository_CreateTodo_Call struct {
	*mock.Call
}

// CreateTodo is a helper method to define mock.On call
//   - ctx context.Context
//   - todo Todo
func (_e *MockTodoRepository_Expecter) CreateTodo(ctx interface{}, todo interface{}) *MockTodoRepository_CreateTodo_Call {
	return &MockTodoRepository_CreateTodo_Call{Call: _e.mock.On("CreateTodo", ctx, todo)}
}

func (_c *MockTodoRepository_CreateTodo_Call) Run(run func(ctx context.Context, todo Todo)) *MockTodoRepository_CreateTodo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 Todo
		if args[1] != nil {
			arg1 = args[1].(Todo)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockTodoRepository_CreateTodo_Call) Return(err error) *MockTodoRepository_CreateTodo_Call {
	_c.Call.Return(err)
	return _c
}

func (_c *MockTodoRepository_CreateTodo_Call) RunAndReturn(run func(context.Context, Todo) error) *MockTodoRepository_CreateTodo_Call {
	_c.Call.Return(run)
	return _c
}

// DeleteTodo provides a mock function for the type MockTodoRepository
func (_mock *MockTodoRepository) DeleteTodo(ctx context.Context, id uuid.UUID) error {
	ret := _mock.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for DeleteTodo")
	}

	var r0 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, uuid.UUID) error); ok {
		r0 = returnFunc(ctx, id)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// MockTodoRepository_DeleteTodo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DeleteTodo'
type MockTodoRepository_DeleteTodo_Call struct {
	*mock.Call
}

// DeleteTodo is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
func (_e *MockTodoRepository_Expecter) DeleteTodo(ctx interface{}, id interface{}) *MockTodoRepository_DeleteTodo_Call {
	return &MockTodoRepository_DeleteTodo_Call{Call: _e.mock.On("DeleteTodo", ctx, id)}
}

func (_c *MockTodoRepository_DeleteTodo_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockTodoRepository_DeleteTodo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 uuid.UUID
		if args[1] != nil {
			arg1 = args[1].(uuid.UUID)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockTodoRepository_DeleteTodo_Call) Return(err error) *MockTodoRepository_DeleteTodo_Call {
	_c.Call.Return(err)
	return _c
}

func (_c *MockTodoRepository_DeleteTodo_Call) RunAndReturn(run func(context.Context, uuid.UUID) error) *MockTodoRepository_DeleteTodo_Call {
	_c.Call.Return(run)
	return _c
}

// GetTodo provides a mock function for the type MockTodoRepository
func (_mock *MockTodoRepository) GetTodo(ctx context.Context, id uuid.UUID) (Todo, bool, error) {
	ret := _mock.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for GetTodo")
	}

	var r0 Todo
	var r1 bool
	var r2 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, uuid.UUID) (Todo, bool, error)); ok {
		return returnFunc(ctx, id)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, uuid.UUID) Todo); ok {
		r0 = returnFunc(ctx, id)
	} else {
		r0 = ret.Get(0).(Todo)
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, uuid.UUID) bool); ok {
		r1 = returnFunc(ctx, id)
	} else {
		r1 = ret.Get(1).(bool)
	}
	if returnFunc, ok := ret.Get(2).(func(context.Context, uuid.UUID) error); ok {
		r2 = returnFunc(ctx, id)
	} else {
		r2 = ret.Error(2)
	}
	return r0, r1, r2
}

// MockTodoRepository_GetTodo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetTodo'
type MockTodoRepository_GetTodo_Call struct {
	*mock.Call
}

// GetTodo is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
func (_e *MockTodoRepository_Expecter) GetTodo(ctx interface{}, id interface{}) *MockTodoRepository_GetTodo_Call {
	return &MockTodoRepository_GetTodo_Call{Call: _e.mock.On("GetTodo", ctx, id)}
}

func (_c *MockTodoRepository_GetTodo_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockTodoRepository_GetTodo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 uuid.UUID
		if args[1] != nil {
			arg1 = args[1].(uuid.UUID)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockTodoRepository_GetTodo_Call) Return(todo Todo, b bool, err error) *MockTodoRepository_GetTodo_Call {
	_c.Call.Return(todo, b, err)
	return _c
}

func (_c *MockTodoRepository_GetTodo_Call) RunAndReturn(run func(context.Context, uuid.UUID) (Todo, bool, error)) *MockTodoRepository_GetTodo_Call {
	_c.Call.Return(run)
	return _c
}

// ListEmbeddedTodos provides a mock function for the type MockTodoRepository
func (_mock *MockTodoRepository) ListEmbeddedTodos(ctx context.Context, ownerID uuid.UUID) ([]Todo, error) {
	ret := _mock.Called(ctx, ownerID)

	if len(ret) == 0 {
		panic("no return value specified for ListEmbeddedTodos")
	}

	var r0 []Todo
	var r1 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, uuid.UUID) ([]Todo, error)); ok {
		return returnFunc(ctx, ownerID)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, uuid.UUID) []Todo); ok {
		r0 = returnFunc(ctx, ownerID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]Todo)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = returnFunc(ctx, ownerID)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

// MockTodoRepository_ListEmbeddedTodos_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListEmbeddedTodos'
type MockTodoRepository_ListEmbeddedTodos_Call struct {
	*mock.Call
}

// ListEmbeddedTodos is a helper method to define mock.On call
//   - ctx context.Context
//   - ownerID uuid.UUID
func (_e *MockTodoRepository_Expecter) ListEmbeddedTodos(ctx interface{}, ownerID interface{}) *MockTodoRepository_ListEmbeddedTodos_Call {
	return &MockTodoRepository_ListEmbeddedTodos_Call{Call: _e.mock.On("ListEmbeddedTodos", ctx, ownerID)}
}

func (_c *MockTodoRepository_ListEmbeddedTodos_Call) Run(run func(ctx context.Context, ownerID uuid.UUID)) *MockTodoRepository_ListEmbeddedTodos_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 uuid.UUID
		if args[1] != nil {
			arg1 = args[1].(uuid.UUID)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockTodoRepository_ListEmbeddedTodos_Call) Return(todos []Todo, err error) *MockTodoRepository_ListEmbeddedTodos_Call {
	_c.Call.Return(todos, err)
	return _c
}

func (_c *MockTodoRepository_ListEmbeddedTodos_Call) RunAndReturn(run func(context.Context, uuid.UUID) ([]Todo, error)) *MockTodoRepository_ListEmbeddedTodos_Call {
	_c.Call.Return(run)
	return _c
}

// ListTodos provides a mock function for the type MockTodoRepository
func (_mock *MockTodoRepository) ListTodos(ctx context.Context, page int, pageSize int, opts ...ListTodoOption) ([]Todo, int, error) {
	var _ca []interface{}
	_ca = append(_ca, ctx, page, pageSize)
	for _, _va := range opts {
		_ca = append(_ca, _va)
	}
	ret := _mock.Called(_ca...)

	if len(ret) == 0 {
		panic("no return value specified for ListTodos")
	}

	var r0 []Todo
	var r1 int
	var r2 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, int, int, ...ListTodoOption) ([]Todo, int, error)); ok {
		return returnFunc(ctx, page, pageSize, opts...)
	}
	if returnFunc, ok := ret.Get(0).(func(context.Context, int, int, ...ListTodoOption) []Todo); ok {
		r0 = returnFunc(ctx, page, pageSize, opts...)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]Todo)
		}
	}
	if returnFunc, ok := ret.Get(1).(func(context.Context, int, int, ...ListTodoOption) int); ok {
		r1 = returnFunc(ctx, page, pageSize, opts...)
	} else {
		r1 = ret.Get(1).(int)
	}
	if returnFunc, ok := ret.Get(2).(func(context.Context, int, int, ...ListTodoOption) error); ok {
		r2 = returnFunc(ctx, page, pageSize, opts...)
	} else {
		r2 = ret.Error(2)
	}
	return r0, r1, r2
}

// MockTodoRepository_ListTodos_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListTodos'
type MockTodoRepository_ListTodos_Call struct {
	*mock.Call
}

// ListTodos is a helper method to define mock.On call
//   - ctx context.Context
//   - page int
//   - pageSize int
//   - opts ...ListTodoOption
func (_e *MockTodoRepository_Expecter) ListTodos(ctx interface{}, page interface{}, pageSize interface{}, opts ...interface{}) *MockTodoRepository_ListTodos_Call {
	return &MockTodoRepository_ListTodos_Call{Call: _e.mock.On("ListTodos", append([]interface{}{ctx, page, pageSize}, opts...)...)}
}

func (_c *MockTodoRepository_ListTodos_Call) Run(run func(ctx context.Context, page int, pageSize int, opts ...ListTodoOption)) *MockTodoRepository_ListTodos_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 int
		if args[1] != nil {
			arg1 = args[1].(int)
		}
		var arg2 int
		if args[2] != nil {
			arg2 = args[2].(int)
		}
		variadicArgs := make([]ListTodoOption, len(args)-3)
		for i, a := range args[3:] {
			if a != nil {
				variadicArgs[i] = a.(ListTodoOption)
			}
		}
		run(arg0, arg1, arg2, variadicArgs...)
	})
	return _c
}

func (_c *MockTodoRepository_ListTodos_Call) Return(todos []Todo, n int, err error) *MockTodoRepository_ListTodos_Call {
	_c.Call.Return(todos, n, err)
	return _c
}

func (_c *MockTodoRepository_ListTodos_Call) RunAndReturn(run func(context.Context, int, int, ...ListTodoOption) ([]Todo, int, error)) *MockTodoRepository_ListTodos_Call {
	_c.Call.Return(run)
	return _c
}

// UpdateTodo provides a mock function for the type MockTodoRepository
func (_mock *MockTodoRepository) UpdateTodo(ctx context.Context, todo Todo) error {
	ret := _mock.Called(ctx, todo)

	if len(ret) == 0 {
		panic("no return value specified for UpdateTodo")
	}

	var r0 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, Todo) error); ok {
		r0 = returnFunc(ctx, todo)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// MockTodoRepository_UpdateTodo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpdateTodo'
type MockTodoRepository_UpdateTodo_Call struct {
	*mock.Call
}

// UpdateTodo is a helper method to define mock.On call
//   - ctx context.Context
//   - todo Todo
func (_e *MockTodoRepository_Expecter) UpdateTodo(ctx interface{}, todo interface{}) *MockTodoRepository_UpdateTodo_Call {
	return &MockTodoRepository_UpdateTodo_Call{Call: _e.mock.On("UpdateTodo", ctx, todo)}
}

func (_c *MockTodoRepository_UpdateTodo_Call) Run(run func(ctx context.Context, todo Todo)) *MockTodoRepository_UpdateTodo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 Todo
		if args[1] != nil {
			arg1 = args[1].(Todo)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockTodoRepository_UpdateTodo_Call) Return(err error) *MockTodoRepository_UpdateTodo_Call {
	_c.Call.Return(err)
	return _c
}

func (_c *MockTodoRepository_UpdateTodo_Call) RunAndReturn(run func(context.Context, Todo) error) *MockTodoRepository_UpdateTodo_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockUnitOfWork creates a new instance of MockUnitOfWork. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockUnitOfWork(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUnitOfWork {
	mock := &MockUnitOfWork{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}

// MockUnitOfWork is an autogenerated mock type for the UnitOfWork type
type MockUnitOfWork struct {
	mock.Mock
}

type MockUnitOfWork_Expecter struct {
	mock *mock.Mock
}

func (_m *MockUnitOfWork) EXPECT() *MockUnitOfWork_Expecter {
	return &MockUnitOfWork_Expecter{mock: &_m.Mock}
}

// Execute provides a mock function for the type MockUnitOfWork
func (_mock *MockUnitOfWork) Execute(ctx context.Context, fn func(uow UnitOfWork) error) error {
	ret := _mock.Called(ctx, fn)

	if len(ret) == 0 {
		panic("no return value specified for Execute")
	}

	var r0 error
	if returnFunc, ok := ret.Get(0).(func(context.Context, func(uow UnitOfWork) error) error); ok {
		r0 = returnFunc(ctx, fn)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

// MockUnitOfWork_Execute_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Execute'
type MockUnitOfWork_Execute_Call struct {
	*mock.Call
}

// Execute is a helper method to define mock.On call
//   - ctx context.Context
//   - fn func(uow UnitOfWork) error
func (_e *MockUnitOfWork_Expecter) Execute(ctx interface{}, fn interface{}) *MockUnitOfWork_Execute_Call {
	return &MockUnitOfWork_Execute_Call{Call: _e.mock.On("Execute", ctx, fn)}
}

func (_c *MockUnitOfWork_Execute_Call) Run(run func(ctx context.Context, fn func(uow UnitOfWork) error)) *MockUnitOfWork_Execute_Call {
	_c.Call.Run(func(args mock.Arguments) {
		var arg0 context.Context
		if args[0] != nil {
			arg0 = args[0].(context.Context)
		}
		var arg1 func(uow UnitOfWork) error
		if args[1] != nil {
			arg1 = args[1].(func(uow UnitOfWork) error)
		}
		run(arg0, arg1)
	})
	return _c
}

func (_c *MockUnitOfWork_Execute_Call) Return(err error) *MockUnitOfWork_Execute_Call {
	_c.Call.Return(err)
	return _c
}

func (_c *MockUnitOfWork_Execute_Call) RunAndReturn(run func(context.Context, func(uow UnitOfWork) error) error) *MockUnitOfWork_Execute_Call {
	_c.Call.Return(run)
	return _c
}

// Outbox provides a mock function for the type MockUnitOfWork
func (_mock *MockUnitOfWork) Outbox() OutboxRepository {
	ret := _mock.Called()

	if len(ret) == 0 {
		panic("no return value specified for Outbox")
	}

	var r0 OutboxRepository
	if returnFunc, ok := ret.Get(0).(func() OutboxRepository); ok {
		r0 = returnFunc()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(OutboxRepository)
		}
	}
	return r0
}

// MockUnitOfWork_Outbox_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Outbox'
type MockUnitOfWork_Outbox_Call struct {
	*mock.Call
}

// Outbox is a helper method to define mock.On call
func (_e *MockUnitOfWork_Expecter) Outbox() *MockUnitOfWork_Outbox_Call {
	return &MockUnitOfWork_Outbox_Call{Call: _e.mock.On("Outbox")}
}

func (_c *MockUnitOfWork_Outbox_Call) Run(run func()) *MockUnitOfWork_Outbox_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockUnitOfWork_Outbox_Call) Return(outboxRepository OutboxRepository) *MockUnitOfWork_Outbox_Call {
	_c.Call.Return(outboxRepository)
	return _c
}

func (_c *MockUnitOfWork_Outbox_Call) RunAndReturn(run func() OutboxRepository) *MockUnitOfWork_Outbox_Call {
	_c.Call.Return(run)
	return _c
}

// Todo provides a mock function for the type MockUnitOfWork
func (_mock *MockUnitOfWork) Todo() TodoRepository {
	ret := _mock.Called()

	if len(ret) == 0 {
		panic("no return value specified for Todo")
	}

	var r0 TodoRepository
	if returnFunc, ok := ret.Get(0).(func() TodoRepository); ok {
		r0 = returnFunc()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(TodoRepository)
		}
	}
	return r0
}

// MockUnitOfWork_Todo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Todo'
type MockUnitOfWork_Todo_Call struct {
	*mock.Call
}

// Todo is a helper method to define mock.On call
func (_e *MockUnitOfWork_Expecter) Todo() *MockUnitOfWork_Todo_Call {
	return &MockUnitOfWork_Todo_Call{Call: _e.mock.On("Todo")}
}

func (_c *MockUnitOfWork_Todo_Call) Run(run func()) *MockUnitOfWork_Todo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockUnitOfWork_Todo_Call) Return(todoRepository TodoRepository) *MockUnitOfWork_Todo_Call {
	_c.Call.Return(todoRepository)
	return _c
}

func (_c *MockUnitOfWork_Todo_Call) RunAndReturn(run func() TodoRepository) *MockUnitOfWork_Todo_Call {
	_c.Call.Return(run)
	return _c
}
