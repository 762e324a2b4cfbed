package telemetry

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
)

// SpanNameFormatter names HTTP spans after the matched mux pattern, so every
// todo id lands on the same "GET /api/v1/todos/{todoId}" span name.
func SpanNameFormatter(_ string, r *http.Request) string {
	return route(r)
}

// Middleware instruments inbound handlers of the given server.
func Middleware(server string) func(http.Handler) http.Handler {
	return otelhttp.NewMiddleware(
		server,
		otelhttp.WithSpanNameFormatter(SpanNameFormatter),
		otelhttp.WithMetricAttributesFn(metricAttributes),
	)
}

// NewTransport instruments outbound requests made through base.
func NewTransport(base http.RoundTripper) http.RoundTripper {
	return otelhttp.NewTransport(base, otelhttp.WithSpanNameFormatter(SpanNameFormatter))
}

func metricAttributes(r *http.Request) []attribute.KeyValue {
	return []attribute.KeyValue{
		semconv.HTTPRoute(route(r)),
	}
}

func route(r *http.Request) string {
	if r.Pattern != "" {
		return r.Pattern
	}
	return r.Method + " " + r.URL.Path
}
