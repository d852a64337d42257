// Package trace sets up OpenTelemetry tracing for projectdeck. Store calls
// are recorded as spans and shipped over OTLP/HTTP when an endpoint is
// configured; otherwise a no-op provider is used.
package trace

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// DefaultServiceName is reported when no service name is configured.
const DefaultServiceName = "projectdeck"

// Config selects the OTLP endpoint. Endpoint falls back to
// OTEL_EXPORTER_OTLP_ENDPOINT when empty.
type Config struct {
	Endpoint    string
	ServiceName string
	Insecure    bool
}

// Provider owns the tracer provider and its shutdown.
type Provider struct {
	tp       oteltrace.TracerProvider
	shutdown func(context.Context) error
	enabled  bool
}

// NewProvider builds an OTLP-backed provider, or a no-op provider when no
// endpoint is configured.
func NewProvider(ctx context.Context, cfg Config) (*Provider, error) {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	}
	if endpoint == "" {
		return Disabled(), nil
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(trimScheme(endpoint))}
	if cfg.Insecure || strings.HasPrefix(endpoint, "http://") {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = DefaultServiceName
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	return &Provider{tp: tp, shutdown: tp.Shutdown, enabled: true}, nil
}

// Disabled returns a provider whose spans are discarded.
func Disabled() *Provider {
	return &Provider{
		tp:       noop.NewTracerProvider(),
		shutdown: func(context.Context) error { return nil },
	}
}

// TracerProvider returns the underlying provider.
func (p *Provider) TracerProvider() oteltrace.TracerProvider {
	if p == nil {
		return noop.NewTracerProvider()
	}
	return p.tp
}

// Enabled reports whether spans are exported anywhere.
func (p *Provider) Enabled() bool {
	return p != nil && p.enabled
}

// Shutdown flushes pending spans.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	return p.shutdown(ctx)
}

// trimScheme strips http:// or https://; otlptracehttp.WithEndpoint
// expects host:port.
func trimScheme(endpoint string) string {
	endpoint = strings.TrimPrefix(endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")
	return strings.TrimSuffix(endpoint, "/")
}
