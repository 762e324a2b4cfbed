package telemetry

import (
	"context"
	"runtime"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/cleitonmarx/symbiont-semantic-todoapp"

var (
	tracer = otel.Tracer(instrumentationName)
)

// Span attribute keys shared by use cases and adapters.
const (
	OwnerIDKey = attribute.Key("todo.owner_id")
	TodoIDKey  = attribute.Key("todo.id")
)

// Start opens a span named after the calling function, e.g. "usecases::SemanticSearchImpl::Query".
func Start(ctx context.Context, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return tracer.Start(ctx, callerName(2), opts...)
}

// WithOwner tags the span with the owner a request is scoped to.
func WithOwner(ownerID uuid.UUID) trace.SpanStartOption {
	return trace.WithAttributes(OwnerIDKey.String(ownerID.String()))
}

// WithTodo tags the span with the todo it operates on.
func WithTodo(todoID uuid.UUID) trace.SpanStartOption {
	return trace.WithAttributes(TodoIDKey.String(todoID.String()))
}

// RecordErrorAndStatus records err on span and marks it failed.
// A nil err marks the span Ok. Reports whether err was recorded.
func RecordErrorAndStatus(span trace.Span, err error) bool {
	if err == nil {
		span.SetStatus(codes.Ok, "OK")
		return false
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return true
}

func callerName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	name := fn.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	// Methods on pointer receivers show up as "pkg.(*Type).Method".
	name = strings.NewReplacer("(*", "", ")", "").Replace(name)
	return strings.ReplaceAll(name, ".", "::")
}
