package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/cleitonmarx/symbiont/depend"
)

// IntrospectionGraphName is the container name under which the Mermaid
// dependency graph of the running app is registered.
const IntrospectionGraphName = "introspection-graph-mermaid"

var (
	//go:embed templates/introspect.gohtml
	templateFS      embed.FS
	introspectPage  = template.Must(template.ParseFS(templateFS, "templates/introspect.gohtml"))
	introspectTitle = "Semantic TodoApp Introspection Graph"
)

// IntrospectHandler serves the dependency graph of the running app.
// It renders an HTML page by default and the raw Mermaid source with ?format=mermaid.
func IntrospectHandler(w http.ResponseWriter, r *http.Request) {
	graph, err := depend.ResolveNamed[string](IntrospectionGraphName)
	if err != nil {
		http.Error(w, "Failed to resolve dependency graph", http.StatusInternalServerError)
		return
	}

	switch r.URL.Query().Get("format") {
	case "", "html":
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		page := struct {
			Graph string
			Title string
		}{Graph: graph, Title: introspectTitle}
		if err := introspectPage.Execute(w, page); err != nil {
			http.Error(w, "Failed to render introspection page", http.StatusInternalServerError)
		}
	case "mermaid":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(graph))
	default:
		http.Error(w, "format must be html or mermaid", http.StatusBadRequest)
	}
}
