// Package telemetry initializes OpenTelemetry logs, metrics and tracing with
// OTLP exporters over gRPC, and hands out the named tracers and meters used by
// the reconciliation services.
package telemetry

import (
	"context"
	"errors"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/metric"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationPrefix namespaces every tracer and meter created by this module.
const instrumentationPrefix = "github.com/gabapcia/walletsync/"

// loggerProvider holds the provider built by Init, nil until then.
var loggerProvider atomic.Pointer[sdklog.LoggerProvider]

// initLoggerProvider sets up an OTLP gRPC LoggerProvider with a batching
// processor and registers it globally.
func initLoggerProvider(ctx context.Context, res *sdkresource.Resource) (*sdklog.LoggerProvider, error) {
	exporter, err := otlploggrpc.New(ctx)
	if err != nil {
		return nil, err
	}

	lp := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
		sdklog.WithResource(res),
	)

	global.SetLoggerProvider(lp)
	return lp, nil
}

// LoggerProvider returns the provider registered by Init, or nil when
// telemetry is not initialized. The logger uses it to forward entries.
func LoggerProvider() otellog.LoggerProvider {
	lp := loggerProvider.Load()
	if lp == nil {
		return nil
	}

	return lp
}

// initMeterProvider sets up an OTLP gRPC MeterProvider using a periodic
// reader and registers it globally.
func initMeterProvider(ctx context.Context, res *sdkresource.Resource) (*sdkmetric.MeterProvider, error) {
	exporter, err := otlpmetricgrpc.New(ctx)
	if err != nil {
		return nil, err
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)
	return mp, nil
}

// initTracerProvider sets up an OTLP gRPC TracerProvider with a batching
// exporter and registers it globally.
func initTracerProvider(ctx context.Context, res *sdkresource.Resource) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracegrpc.New(ctx)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	return tp, nil
}

// newResource merges the default system resource with the service name and,
// when known, the service version.
func newResource(serviceName, serviceVersion string) (*sdkresource.Resource, error) {
	attrs := []sdkresource.Option{
		sdkresource.WithAttributes(semconv.ServiceName(serviceName)),
	}
	if serviceVersion != "" {
		attrs = append(attrs, sdkresource.WithAttributes(semconv.ServiceVersion(serviceVersion)))
	}

	custom, err := sdkresource.New(context.Background(), attrs...)
	if err != nil {
		return nil, err
	}

	return sdkresource.Merge(sdkresource.Default(), custom)
}

// ShutdownFunc flushes and stops all telemetry providers.
type ShutdownFunc func(ctx context.Context) error

// Init configures OpenTelemetry logs, metrics and traces exported over OTLP/gRPC.
// Exporter endpoints are taken from the standard OTEL_EXPORTER_OTLP_*
// environment variables.
//
// The returned ShutdownFunc must be called on application exit so that no
// buffered span or data point is lost.
func Init(ctx context.Context, serviceName, serviceVersion string) (ShutdownFunc, error) {
	res, err := newResource(serviceName, serviceVersion)
	if err != nil {
		return nil, err
	}

	lp, err := initLoggerProvider(ctx, res)
	if err != nil {
		return nil, err
	}

	mp, err := initMeterProvider(ctx, res)
	if err != nil {
		return nil, errors.Join(err, lp.Shutdown(ctx))
	}

	tp, err := initTracerProvider(ctx, res)
	if err != nil {
		return nil, errors.Join(err, mp.Shutdown(ctx), lp.Shutdown(ctx))
	}

	loggerProvider.Store(lp)

	return func(ctx context.Context) error {
		loggerProvider.Store(nil)
		return errors.Join(
			tp.Shutdown(ctx),
			mp.Shutdown(ctx),
			lp.Shutdown(ctx),
		)
	}, nil
}

// Tracer returns a tracer scoped to the given component of this module, e.g.
// Tracer("swapmatch"). It resolves through the global provider, so it is a
// no-op until Init succeeds.
func Tracer(component string) trace.Tracer {
	return otel.Tracer(instrumentationPrefix + component)
}

// Meter returns a meter scoped to the given component of this module.
func Meter(component string) metric.Meter {
	return otel.Meter(instrumentationPrefix + component)
}
