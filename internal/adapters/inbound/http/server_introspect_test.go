package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
)

func TestIntrospectHandler(t *testing.T) {
	const graph = "graph TD;\nInitDB-->TodoAppServer;"

	tests := map[string]struct {
		registerGraph bool
		target        string
		expectedCode  int
		expectedType  string
		contains      []string
	}{
		"html-page": {
			registerGraph: true,
			target:        "/introspect",
			expectedCode:  http.StatusOK,
			expectedType:  "text/html; charset=utf-8",
			contains: []string{
				"<title>Semantic TodoApp Introspection Graph</title>",
				"<h1>Semantic TodoApp Introspection Graph</h1>",
				`mermaid.render('mermaid-svg-id', "graph TD;\nInitDB--\u003eTodoAppServer;")`,
			},
		},
		"raw-mermaid": {
			registerGraph: true,
			target:        "/introspect?format=mermaid",
			expectedCode:  http.StatusOK,
			expectedType:  "text/plain; charset=utf-8",
			contains:      []string{graph},
		},
		"unknown-format": {
			registerGraph: true,
			target:        "/introspect?format=svg",
			expectedCode:  http.StatusBadRequest,
			expectedType:  "text/plain; charset=utf-8",
			contains:      []string{"format must be html or mermaid"},
		},
		"graph-not-registered": {
			target:       "/introspect",
			expectedCode: http.StatusInternalServerError,
			expectedType: "text/plain; charset=utf-8",
			contains:     []string{"Failed to resolve dependency graph"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Cleanup(depend.ClearContainer)
			if tt.registerGraph {
				depend.RegisterNamed(graph, IntrospectionGraphName)
			}

			w := httptest.NewRecorder()
			IntrospectHandler(w, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectedType, w.Header().Get("Content-Type"))
			for _, text := range tt.contains {
				assert.Contains(t, w.Body.String(), text)
			}
		})
	}
}
