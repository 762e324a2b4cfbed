package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListTodosImpl_Query(t *testing.T) {
	todos := []domain.Todo{
		{ID: fixedTodoID, Title: "Comprar leite", Urgency: domain.TodoUrgency_LOW, OwnerID: fixedOwner, CreatedAt: fixedTime, UpdatedAt: fixedTime},
	}

	ownedBy := mock.MatchedBy(func(opt domain.ListTodoOption) bool {
		params := domain.ListTodosParams{}
		opt(&params)
		return params.OwnerID != nil && *params.OwnerID == fixedOwner
	})

	tests := map[string]struct {
		page            int
		pageSize        int
		setExpectations func(repo *domain.MockTodoRepository)
		expected        TodoPage
		expectedErr     error
	}{
		"success": {
			page:     2,
			pageSize: 10,
			setExpectations: func(repo *domain.MockTodoRepository) {
				repo.EXPECT().ListTodos(mock.Anything, 2, 10, ownedBy).Return(todos, 21, nil)
			},
			expected: TodoPage{Items: todos, Page: 2, PageSize: 10, Total: 21, Pages: 3},
		},
		"empty": {
			page:     1,
			pageSize: 10,
			setExpectations: func(repo *domain.MockTodoRepository) {
				repo.EXPECT().ListTodos(mock.Anything, 1, 10, ownedBy).Return([]domain.Todo{}, 0, nil)
			},
			expected: TodoPage{Items: []domain.Todo{}, Page: 1, PageSize: 10, Total: 0, Pages: 0},
		},
		"invalid-page": {
			page:        0,
			pageSize:    10,
			expectedErr: domain.NewValidationErr("page must be greater than or equal to 1"),
		},
		"page-size-too-large": {
			page:        1,
			pageSize:    MaxPageSize + 1,
			expectedErr: domain.NewValidationErr("pageSize must be between 1 and 100"),
		},
		"repository-error": {
			page:     1,
			pageSize: 10,
			setExpectations: func(repo *domain.MockTodoRepository) {
				repo.EXPECT().ListTodos(mock.Anything, 1, 10, ownedBy).Return(nil, 0, errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain.NewMockTodoRepository(t)
			if tt.setExpectations != nil {
				tt.setExpectations(repo)
			}

			got, err := NewListTodosImpl(repo).Query(context.Background(), fixedOwner, tt.page, tt.pageSize)
			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestInitListTodos_Initialize(t *testing.T) {
	ilt := InitListTodos{}

	ctx, err := ilt.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registeredListTodos, err := depend.Resolve[ListTodos]()
	assert.NoError(t, err)
	assert.NotNil(t, registeredListTodos)
}
