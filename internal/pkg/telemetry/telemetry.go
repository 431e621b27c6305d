// Package telemetry installs the OpenTelemetry trace provider the server's spans are
// exported through.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// ShutdownFunc flushes pending spans and stops the provider
type ShutdownFunc func(context.Context) error

// Config holds the tracing settings
type Config struct {
	ServiceName string
	// Endpoint is the OTLP/HTTP collector URL. Empty disables export.
	Endpoint string
	Enabled  bool
}

// Validate validates the config
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ServiceName", c.ServiceName, vb)
	return vb.Build()
}

func noop(context.Context) error { return nil }

// Setup registers a global tracer provider exporting to cfg.Endpoint. When tracing is
// disabled or no endpoint is set nothing is registered and the returned shutdown does
// nothing.
func Setup(ctx context.Context, cfg *Config) (ShutdownFunc, error) {
	if err := cfg.Validate(); err != nil {
		return noop, errors.Wrap(err, "invalid telemetry config")
	}
	if !cfg.Enabled || cfg.Endpoint == "" {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(cfg.Endpoint))
	if err != nil {
		return noop, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to create trace exporter")
	}

	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)))
	if err != nil {
		return noop, errors.Wrap(err, "failed to build trace resource")
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}
