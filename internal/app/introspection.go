package app

import (
	"context"

	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/cleitonmarx/symbiont/introspection/mermaid"
	"go.uber.org/zap"
)

// MermaidGraphIntrospector is an implementation of the Introspector interface that generates a Mermaid graph
// representation of the application's configuration and dependencies, and registers it in the dependency container.
type MermaidGraphIntrospector struct {
}

// Introspect generates a Mermaid graph from the provided introspection report and registers it as a named dependency.
func (i MermaidGraphIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	mermaidGraph := mermaid.GenerateIntrospectionGraph(r)
	depend.RegisterNamed(mermaidGraph, http.IntrospectionGraphName)
	return nil
}

// ReportLoggerIntrospector logs which configuration keys were read at startup and whether they fell back to defaults.
type ReportLoggerIntrospector struct {
}

// Introspect writes one log entry per configuration key of r.
func (i ReportLoggerIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	logger, err := depend.Resolve[*zap.Logger]()
	if err != nil {
		return err
	}

	logger = logger.Named("introspection")
	for _, c := range r.Configs {
		logger.Info("configuration",
			zap.String("key", c.Key),
			zap.Bool("used_default", c.UsedDefault),
		)
	}
	logger.Info("configuration loaded", zap.Int("keys", len(r.Configs)))
	return nil
}
