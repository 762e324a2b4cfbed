package telemetry

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitOpenTelemetry_Disabled(t *testing.T) {
	init := &InitOpenTelemetry{
		Logger:          zap.NewNop(),
		ServiceName:     "semantic-todoapp-test",
		TracesEndpoint:  "-",
		MetricsEndpoint: "-",
	}
	ctx, err := init.Initialize(t.Context())
	require.NoError(t, err)
	assert.NotNil(t, ctx)
	assert.Nil(t, init.tp)
	assert.Nil(t, init.mp)
	init.Close()
}

func TestInitOpenTelemetry_Resource(t *testing.T) {
	init := &InitOpenTelemetry{ServiceVersion: "1.2.3"}
	res, err := init.resource(t.Context())
	require.NoError(t, err)

	attrs := map[string]string{}
	for _, kv := range res.Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, "semantic-todoapp", attrs["service.name"])
	assert.Equal(t, "1.2.3", attrs["service.version"])
}

func TestInitHttpClient_Initialize(t *testing.T) {
	init := InitHttpClient{Logger: zap.NewNop(), RetryMax: 1, RetryWaitMax: time.Millisecond}
	_, err := init.Initialize(t.Context())
	require.NoError(t, err)

	client, err := depend.Resolve[*http.Client]()
	require.NoError(t, err)
	assert.NotNil(t, client.Transport)
}

func TestProviderRetryPolicy(t *testing.T) {
	policy := providerRetryPolicy(retryablehttp.ErrorPropagatedRetryPolicy)
	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := map[string]struct {
		ctx         context.Context
		resp        *http.Response
		err         error
		expectRetry bool
	}{
		"internal-server-error": {
			ctx:  context.Background(),
			resp: &http.Response{StatusCode: http.StatusInternalServerError},
		},
		"too-many-requests": {
			ctx:         context.Background(),
			resp:        &http.Response{StatusCode: http.StatusTooManyRequests},
			expectRetry: true,
		},
		"service-unavailable": {
			ctx:         context.Background(),
			resp:        &http.Response{StatusCode: http.StatusServiceUnavailable},
			expectRetry: true,
		},
		"bad-request": {
			ctx:  context.Background(),
			resp: &http.Response{StatusCode: http.StatusBadRequest},
		},
		"ok": {
			ctx:  context.Background(),
			resp: &http.Response{StatusCode: http.StatusOK},
		},
		"connection-error": {
			ctx:         context.Background(),
			err:         errors.New("connection refused"),
			expectRetry: true,
		},
		"canceled-context": {
			ctx:  canceled,
			resp: &http.Response{StatusCode: http.StatusBadGateway},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			retry, _ := policy(tt.ctx, tt.resp, tt.err)
			assert.Equal(t, tt.expectRetry, retry)
		})
	}
}
