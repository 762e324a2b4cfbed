package telemetry

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type tracedRecorder struct{}

func (r *tracedRecorder) record(t *testing.T) {
	_, span := Start(t.Context())
	span.End()
}

func useInMemoryTracer(t *testing.T) *tracetest.InMemoryExporter {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	previous := tracer
	tracer = tp.Tracer("test")
	t.Cleanup(func() { tracer = previous })
	return exporter
}

func TestStart_SpanNames(t *testing.T) {
	tests := map[string]struct {
		run      func(t *testing.T)
		expected string
	}{
		"function": {
			run: func(t *testing.T) {
				_, span := Start(t.Context())
				span.End()
			},
			expected: "telemetry::TestStart_SpanNames::func1",
		},
		"pointer-method": {
			run:      (&tracedRecorder{}).record,
			expected: "telemetry::tracedRecorder::record",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			exporter := useInMemoryTracer(t)
			tt.run(t)

			spans := exporter.GetSpans()
			require.Len(t, spans, 1)
			assert.Equal(t, tt.expected, spans[0].Name)
		})
	}
}

func TestStart_DomainAttributes(t *testing.T) {
	exporter := useInMemoryTracer(t)
	ownerID := uuid.MustParse("223e4567-e89b-12d3-a456-426614174000")
	todoID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

	_, span := Start(t.Context(), WithOwner(ownerID), WithTodo(todoID))
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	attrs := map[string]string{}
	for _, kv := range spans[0].Attributes {
		attrs[string(kv.Key)] = kv.Value.AsString()
	}
	assert.Equal(t, ownerID.String(), attrs[string(OwnerIDKey)])
	assert.Equal(t, todoID.String(), attrs[string(TodoIDKey)])
}

func TestRecordErrorAndStatus(t *testing.T) {
	tests := map[string]struct {
		err          error
		expectRecord bool
		expectCode   codes.Code
		expectDesc   string
	}{
		"error": {
			err:          errors.New("embedding provider unavailable"),
			expectRecord: true,
			expectCode:   codes.Error,
			expectDesc:   "embedding provider unavailable",
		},
		"nil-error": {
			expectCode: codes.Ok,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			exporter := useInMemoryTracer(t)
			_, span := Start(t.Context())
			assert.Equal(t, tt.expectRecord, RecordErrorAndStatus(span, tt.err))
			span.End()

			spans := exporter.GetSpans()
			require.Len(t, spans, 1)
			assert.Equal(t, tt.expectCode, spans[0].Status.Code)
			assert.Equal(t, tt.expectDesc, spans[0].Status.Description)
			if tt.expectRecord {
				require.Len(t, spans[0].Events, 1)
				assert.Equal(t, "exception", spans[0].Events[0].Name)
			}
		})
	}
}
