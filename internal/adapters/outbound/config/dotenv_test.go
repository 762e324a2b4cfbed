package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("TODOAPP_TEST_MODEL=gpt-4.1-nano\nTODOAPP_TEST_PORT=9090\n"), 0o600))

	t.Setenv("TODOAPP_TEST_PORT", "8080")
	t.Cleanup(func() { _ = os.Unsetenv("TODOAPP_TEST_MODEL") })

	err := LoadDotEnv(filepath.Join(dir, "missing.env"), envFile)
	require.NoError(t, err)

	assert.Equal(t, "gpt-4.1-nano", os.Getenv("TODOAPP_TEST_MODEL"))
	assert.Equal(t, "8080", os.Getenv("TODOAPP_TEST_PORT"))
}

func TestLoadDotEnv_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("TODOAPP_TEST_BROKEN='unterminated\n"), 0o600))

	err := LoadDotEnv(envFile)
	assert.Error(t, err)
}
