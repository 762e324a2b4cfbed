package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTodo_Validate(t *testing.T) {
	ownerID := uuid.MustParse("00000000-0000-0000-0000-0000000000aa")

	tests := map[string]struct {
		todo    Todo
		wantErr bool
		errMsg  string
	}{
		"valid-todo": {
			todo: Todo{Title: "Finish report", Urgency: TodoUrgency_LOW, OwnerID: ownerID},
		},
		"valid-todo-single-char-title": {
			todo: Todo{Title: "x", Urgency: TodoUrgency_URGENT, OwnerID: ownerID},
		},
		"valid-todo-200-multibyte-chars": {
			todo: Todo{Title: strings.Repeat("ç", 200), Urgency: TodoUrgency_HIGH, OwnerID: ownerID},
		},
		"empty-title": {
			todo:    Todo{Title: "", Urgency: TodoUrgency_LOW, OwnerID: ownerID},
			wantErr: true,
			errMsg:  "title cannot be empty",
		},
		"blank-title": {
			todo:    Todo{Title: "   ", Urgency: TodoUrgency_LOW, OwnerID: ownerID},
			wantErr: true,
			errMsg:  "title cannot be empty",
		},
		"title-too-long": {
			todo:    Todo{Title: strings.Repeat("a", 201), Urgency: TodoUrgency_LOW, OwnerID: ownerID},
			wantErr: true,
			errMsg:  "title must be between 1 and 200 characters",
		},
		"invalid-urgency": {
			todo:    Todo{Title: "Finish report", Urgency: "critical", OwnerID: ownerID},
			wantErr: true,
			errMsg:  "urgency must be one of low, medium, high or urgent",
		},
		"missing-owner": {
			todo:    Todo{Title: "Finish report", Urgency: TodoUrgency_MEDIUM},
			wantErr: true,
			errMsg:  "owner_id cannot be empty",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.todo.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.IsType(t, &ValidationErr{}, err)
				assert.Equal(t, tt.errMsg, err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTodoUrgency_IsValid(t *testing.T) {
	for _, u := range []TodoUrgency{TodoUrgency_LOW, TodoUrgency_MEDIUM, TodoUrgency_HIGH, TodoUrgency_URGENT} {
		assert.True(t, u.IsValid(), u)
	}
	for _, u := range []TodoUrgency{"", "LOW", "critical"} {
		assert.False(t, u.IsValid(), u)
	}
}

func TestTodo_EmbeddingSource(t *testing.T) {
	ownerID := uuid.MustParse("00000000-0000-0000-0000-0000000000aa")

	src := Todo{Title: "Buy milk", Description: "2 liters", Urgency: TodoUrgency_HIGH, OwnerID: ownerID}.EmbeddingSource()
	assert.Equal(t, "Buy milk", src.Title)
	assert.Equal(t, "2 liters", src.Description)
	assert.Equal(t, TodoUrgency_HIGH, src.Urgency)
	if assert.NotNil(t, src.OwnerID) {
		assert.Equal(t, ownerID, *src.OwnerID)
	}

	anonymous := Todo{Title: "Buy milk", Urgency: TodoUrgency_LOW}.EmbeddingSource()
	assert.Nil(t, anonymous.OwnerID)
}

func TestTodo_SemanticContentChanged(t *testing.T) {
	base := Todo{Title: "Buy milk", Description: "2 liters", Urgency: TodoUrgency_LOW, Embedding: []float64{1}}

	tests := map[string]struct {
		other Todo
		want  bool
	}{
		"same-content": {
			other: base,
			want:  false,
		},
		"different-embedding-only": {
			other: Todo{Title: base.Title, Description: base.Description, Urgency: base.Urgency, Embedding: []float64{2}},
			want:  false,
		},
		"title-changed": {
			other: Todo{Title: "Buy bread", Description: base.Description, Urgency: base.Urgency},
			want:  true,
		},
		"description-changed": {
			other: Todo{Title: base.Title, Description: "", Urgency: base.Urgency},
			want:  true,
		},
		"urgency-changed": {
			other: Todo{Title: base.Title, Description: base.Description, Urgency: TodoUrgency_URGENT},
			want:  true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.SemanticContentChanged(tt.other))
		})
	}
}

func TestWithOwner(t *testing.T) {
	ownerID := uuid.New()
	params := ListTodosParams{}
	WithOwner(ownerID)(&params)
	if assert.NotNil(t, params.OwnerID) {
		assert.Equal(t, ownerID, *params.OwnerID)
	}
}
