package app

import (
	"context"
	"testing"

	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMermaidGraphIntrospector_Introspect(t *testing.T) {
	introspector := MermaidGraphIntrospector{}

	report := introspection.Report{
		Configs: []introspection.ConfigAccess{
			{
				Key:         "KEY1",
				UsedDefault: true,
			},
		},
	}
	ctx := context.Background()

	err := introspector.Introspect(ctx, report)
	require.NoError(t, err)
	mermaidGraph, err := depend.ResolveNamed[string](http.IntrospectionGraphName)
	require.NoError(t, err)
	require.NotEmpty(t, mermaidGraph, "Mermaid graph should be registered as a named dependency")
}

func TestReportLoggerIntrospector_Introspect(t *testing.T) {
	tests := map[string]struct {
		register  func(t *testing.T) *observer.ObservedLogs
		expectErr bool
		expected  int
	}{
		"logs-each-config": {
			register: func(t *testing.T) *observer.ObservedLogs {
				core, logs := observer.New(zap.InfoLevel)
				depend.Register(zap.New(core))
				t.Cleanup(depend.ClearContainer)
				return logs
			},
			expected: 3,
		},
		"logger-not-registered": {
			register: func(t *testing.T) *observer.ObservedLogs {
				t.Cleanup(depend.ClearContainer)
				return nil
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			logs := tt.register(t)

			err := ReportLoggerIntrospector{}.Introspect(context.Background(), introspection.Report{
				Configs: []introspection.ConfigAccess{
					{Key: "HTTP_PORT", UsedDefault: true},
					{Key: "LLM_MODEL", UsedDefault: false},
				},
			})
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, logs.Len())
			require.Equal(t, "HTTP_PORT", logs.All()[0].ContextMap()["key"])
		})
	}
}
