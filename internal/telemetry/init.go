package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
	"go.uber.org/zap"
)

// InitOpenTelemetry sets up the global tracer and meter providers.
// An endpoint of "-" leaves the matching signal on the no-op global provider.
type InitOpenTelemetry struct {
	Logger          *zap.Logger   `resolve:""`
	ServiceName     string        `config:"OTEL_SERVICE_NAME" default:"semantic-todoapp"`
	ServiceVersion  string        `config:"SERVICE_VERSION" default:"dev"`
	TracesEndpoint  string        `config:"OTEL_EXPORTER_OTLP_TRACES_ENDPOINT" default:"-"`
	MetricsEndpoint string        `config:"OTEL_EXPORTER_OTLP_METRICS_ENDPOINT" default:"-"`
	MetricsInterval time.Duration `config:"OTEL_METRIC_EXPORT_INTERVAL" default:"5s"`

	tp *sdktrace.TracerProvider
	se sdktrace.SpanExporter
	mp *sdkmetric.MeterProvider
	me sdkmetric.Exporter
}

// Initialize installs the propagator and whichever exporters are configured.
func (o *InitOpenTelemetry) Initialize(ctx context.Context) (context.Context, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	res, err := o.resource(ctx)
	if err != nil {
		return ctx, err
	}

	if o.TracesEndpoint != "-" {
		o.tp, o.se, err = newTracerProvider(ctx, res)
		if err != nil {
			return ctx, fmt.Errorf("failed to create tracer provider: %w", err)
		}
		otel.SetTracerProvider(o.tp)
		o.Logger.Info("trace export enabled", zap.String("endpoint", o.TracesEndpoint))
	}

	if o.MetricsEndpoint != "-" {
		interval := o.MetricsInterval
		if interval <= 0 {
			interval = 5 * time.Second
		}
		o.mp, o.me, err = newMeterProvider(ctx, res, interval)
		if err != nil {
			return ctx, fmt.Errorf("failed to create meter provider: %w", err)
		}
		otel.SetMeterProvider(o.mp)
		o.Logger.Info("metric export enabled", zap.String("endpoint", o.MetricsEndpoint))
	}

	return ctx, nil
}

// Close flushes and shuts down the providers that were started.
func (o *InitOpenTelemetry) Close() {
	if o.tp == nil && o.mp == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var errs []error
	if o.tp != nil {
		errs = append(errs, o.tp.Shutdown(ctx), o.se.Shutdown(ctx))
	}
	if o.mp != nil {
		errs = append(errs, o.mp.Shutdown(ctx), o.me.Shutdown(ctx))
	}
	if err := errors.Join(errs...); err != nil {
		o.Logger.Error("shutting down telemetry", zap.Error(err))
	}
}

func (o *InitOpenTelemetry) resource(ctx context.Context) (*resource.Resource, error) {
	name := o.ServiceName
	if name == "" {
		name = "semantic-todoapp"
	}
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(name),
			semconv.ServiceVersion(o.ServiceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}
	return res, nil
}

// InitHttpClient registers the *http.Client used for provider calls: traced,
// and retried on throttling and transient upstream failures.
type InitHttpClient struct {
	Logger       *zap.Logger   `resolve:""`
	RetryMax     int           `config:"HTTP_CLIENT_RETRY_MAX" default:"3"`
	RetryWaitMax time.Duration `config:"HTTP_CLIENT_RETRY_WAIT_MAX" default:"5s"`
}

// Initialize registers the instrumented client in the dependency container.
func (i InitHttpClient) Initialize(ctx context.Context) (context.Context, error) {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = i.RetryMax
	retryClient.RetryWaitMax = i.RetryWaitMax
	if retryClient.RetryWaitMax <= 0 {
		retryClient.RetryWaitMax = 5 * time.Second
	}
	retryClient.CheckRetry = providerRetryPolicy(retryablehttp.ErrorPropagatedRetryPolicy)
	retryClient.Logger = zap.NewStdLog(i.Logger.Named("http_client"))

	client := retryClient.StandardClient()
	client.Transport = NewTransport(client.Transport)

	depend.Register(client)
	return ctx, nil
}

// providerRetryPolicy wraps policy so that a canceled request and a plain 500
// from the provider are never retried.
func providerRetryPolicy(policy retryablehttp.CheckRetry) retryablehttp.CheckRetry {
	return func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		if resp != nil && resp.StatusCode == http.StatusInternalServerError {
			return false, err
		}
		return policy(ctx, resp, err)
	}
}
