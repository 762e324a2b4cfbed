package telemetry

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSpanNameFormatter(t *testing.T) {
	tests := map[string]struct {
		pattern  string
		expected string
	}{
		"matched-pattern": {
			pattern:  "GET /api/v1/todos/{todoId}",
			expected: "GET /api/v1/todos/{todoId}",
		},
		"no-pattern": {
			expected: "GET /api/v1/todos/123e4567-e89b-12d3-a456-426614174000",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/todos/123e4567-e89b-12d3-a456-426614174000", nil)
			req.Pattern = tt.pattern
			assert.Equal(t, tt.expected, SpanNameFormatter("", req))
		})
	}
}

func TestMiddleware_RecordsServerSpan(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/todos/{todoId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	Middleware("todoapp-api")(mux).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/todos/abc", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.True(t, strings.HasPrefix(spans[0].Name, "GET /api/v1/todos/"), spans[0].Name)
}
