// Package telemetry wires OpenTelemetry logs, metrics and traces exported
// over OTLP/gRPC and registers the providers globally.
package telemetry

import (
	"context"
	"errors"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/log/global"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

// Config selects where telemetry is shipped.
type Config struct {
	// ServiceName identifies the relay in the observability backend.
	ServiceName string
	// Endpoint is the collector's host:port. Empty means the exporter
	// defaults, which honour the OTEL_EXPORTER_OTLP_* variables.
	Endpoint string
	// Insecure disables TLS towards the collector.
	Insecure bool
}

// loggerProvider is the provider installed by the last successful Init.
var loggerProvider atomic.Pointer[sdklog.LoggerProvider]

// LoggerProvider returns the log provider installed by Init, or nil when
// telemetry was not initialized.
func LoggerProvider() log.LoggerProvider {
	if lp := loggerProvider.Load(); lp != nil {
		return lp
	}
	return nil
}

// ShutdownFunc flushes and stops the providers created by Init.
type ShutdownFunc func(ctx context.Context) error

// Noop is returned when telemetry is disabled.
func Noop(context.Context) error { return nil }

func initLoggerProvider(ctx context.Context, cfg Config, res *sdkresource.Resource) (*sdklog.LoggerProvider, error) {
	var opts []otlploggrpc.Option
	if cfg.Endpoint != "" {
		opts = append(opts, otlploggrpc.WithEndpoint(cfg.Endpoint))
	}
	if cfg.Insecure {
		opts = append(opts, otlploggrpc.WithInsecure())
	}

	exporter, err := otlploggrpc.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	lp := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
		sdklog.WithResource(res),
	)

	global.SetLoggerProvider(lp)
	loggerProvider.Store(lp)
	return lp, nil
}

func initMeterProvider(ctx context.Context, cfg Config, res *sdkresource.Resource) (*sdkmetric.MeterProvider, error) {
	var opts []otlpmetricgrpc.Option
	if cfg.Endpoint != "" {
		opts = append(opts, otlpmetricgrpc.WithEndpoint(cfg.Endpoint))
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exporter, err := otlpmetricgrpc.New(ctx, opts...)
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

func initTracerProvider(ctx context.Context, cfg Config, res *sdkresource.Resource) (*sdktrace.TracerProvider, error) {
	var opts []otlptracegrpc.Option
	if cfg.Endpoint != "" {
		opts = append(opts, otlptracegrpc.WithEndpoint(cfg.Endpoint))
	}
	if cfg.Insecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}

	exporter, err := otlptracegrpc.New(ctx, opts...)
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

func newResource(serviceName string) (*sdkresource.Resource, error) {
	return sdkresource.Merge(
		sdkresource.Default(),
		sdkresource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
}

// Init installs global logger, meter and tracer providers.
//
// The returned ShutdownFunc must be called before exit so buffered records,
// spans and metric points reach the collector. Providers created before a
// failing pipeline are shut down before the error is returned.
func Init(ctx context.Context, cfg Config) (ShutdownFunc, error) {
	res, err := newResource(cfg.ServiceName)
	if err != nil {
		return nil, err
	}

	lp, err := initLoggerProvider(ctx, cfg, res)
	if err != nil {
		return nil, err
	}

	mp, err := initMeterProvider(ctx, cfg, res)
	if err != nil {
		return nil, errors.Join(err, lp.Shutdown(ctx))
	}

	tp, err := initTracerProvider(ctx, cfg, res)
	if err != nil {
		return nil, errors.Join(err, mp.Shutdown(ctx), lp.Shutdown(ctx))
	}

	return func(ctx context.Context) error {
		return errors.Join(
			lp.Shutdown(ctx),
			mp.Shutdown(ctx),
			tp.Shutdown(ctx),
		)
	}, nil
}
