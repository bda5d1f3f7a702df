// Package tracing installs the OpenTelemetry SDK behind the otel globals so
// spans started through otel.Tracer are sampled and exported.
package tracing

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"fleetdesk/cmd/internal/config"

	"github.com/labstack/gommon/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Setup registers the W3C propagators and, unless the exporter is none, a
// TracerProvider exporting to it. The returned func flushes pending spans.
func Setup(ctx context.Context, cfg config.Tracing, service string) (func(context.Context) error, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	exporter, err := newExporter(ctx, cfg, os.Stdout)
	if err != nil {
		return nil, err
	}

	if exporter == nil {
		log.Info("tracing is disabled")
		return func(context.Context) error { return nil }, nil
	}

	provider := NewProvider(exporter, cfg.SampleRatio, service)
	otel.SetTracerProvider(provider)

	log.Infof("exporting traces to %s", cfg.Exporter)
	return provider.Shutdown, nil
}

func NewProvider(exporter sdktrace.SpanExporter, sampleRatio float64, service string) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", service))),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(sampleRatio))),
	)
}

// newExporter returns a nil exporter when tracing is off.
func newExporter(ctx context.Context, cfg config.Tracing, w io.Writer) (sdktrace.SpanExporter, error) {
	switch strings.ToLower(cfg.Exporter) {
	case "", "none":
		return nil, nil

	case "stdout":
		return stdouttrace.New(stdouttrace.WithWriter(w))

	case "otlp":
		var opts []otlptracehttp.Option
		if cfg.Endpoint != "" {
			opts = append(opts, otlptracehttp.WithEndpointURL(cfg.Endpoint))
		}
		return otlptracehttp.New(ctx, opts...)

	default:
		return nil, fmt.Errorf("unknown tracing exporter %q", cfg.Exporter)
	}
}
