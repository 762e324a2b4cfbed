package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingInitializer struct {
	err error
}

func (f failingInitializer) Initialize(ctx context.Context) (context.Context, error) {
	return ctx, f.err
}

func TestNewTodoApp(t *testing.T) {
	app := NewTodoApp()
	require.NotNil(t, app)
}

func TestNewTodoApp_ExtraInitializersRunFirst(t *testing.T) {
	err := NewTodoApp(&failingInitializer{err: errors.New("secrets unavailable")}).Run()
	assert.ErrorContains(t, err, "secrets unavailable")
}
