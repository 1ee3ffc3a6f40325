package tracing

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/skillcoder/kubenexus/internal/infra/shutdown"
)

// TracerName is the instrumentation scope of every span this service starts.
const TracerName = "github.com/skillcoder/kubenexus"

// Span attribute keys for cluster API calls.
const (
	SpanAttrOperation    = "k8s.operation"
	SpanAttrResourceType = "k8s.resource_type"
	SpanAttrNamespace    = "k8s.namespace"
	SpanAttrResourceName = "k8s.resource_name"
)

// Config selects and configures the span exporter.
type Config struct {
	Exporter       string
	OTLPEndpoint   string
	OTLPInsecure   bool
	ServiceName    string
	ServiceVersion string
}

// Provider owns the process-wide tracer provider.
type Provider struct {
	logger     *slog.Logger
	tp         *sdktrace.TracerProvider
	inShutdown atomic.Bool
}

// New installs a global tracer provider exporting to cfg.Exporter.
// With ExporterNone the global no-op provider is left in place.
func New(ctx context.Context, logger *slog.Logger, cfg Config) (*Provider, error) {
	exporter, err := newExporter(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if exporter == nil {
		logger.InfoContext(ctx, "tracing disabled")

		return &Provider{logger: logger}, nil
	}

	res, err := resource.New(ctx,
		resource.WithFromEnv(),
		resource.WithTelemetrySDK(),
		resource.WithAttributes(
			attribute.String("service.name", cfg.ServiceName),
			attribute.String("service.version", cfg.ServiceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("build trace resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logger.InfoContext(ctx, "tracing enabled", "exporter", cfg.Exporter)

	return &Provider{
		logger: logger,
		tp:     tp,
	}, nil
}

func newExporter(ctx context.Context, cfg Config) (sdktrace.SpanExporter, error) {
	switch cfg.Exporter {
	case ExporterNone, "":
		return nil, nil //nolint:nilnil // no exporter means tracing is off
	case ExporterStdout:
		exporter, err := stdouttrace.New()
		if err != nil {
			return nil, fmt.Errorf("create stdout trace exporter: %w", err)
		}

		return exporter, nil
	case ExporterOTLP:
		opts := []otlptracehttp.Option{
			otlptracehttp.WithEndpoint(cfg.OTLPEndpoint),
		}

		if cfg.OTLPInsecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}

		exporter, err := otlptracehttp.New(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("create otlp trace exporter: %w", err)
		}

		return exporter, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownExporter, cfg.Exporter)
	}
}

var _ shutdown.Shutdowner = (*Provider)(nil)

// Name returns the name of the tracing component
func (p *Provider) Name() string {
	return "tracer-provider"
}

// Shutdown flushes pending spans and stops the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if !p.inShutdown.CompareAndSwap(false, true) {
		return nil
	}

	if p.tp == nil {
		return nil
	}

	if err := p.tp.Shutdown(ctx); err != nil {
		return fmt.Errorf("tracer provider shutdown: %w", err)
	}

	return nil
}

// StartK8sSpan starts a client span for a cluster API call.
// The caller must end the span.
func StartK8sSpan(
	ctx context.Context,
	operation,
	resourceType,
	namespace,
	name string,
) (context.Context, trace.Span) {
	attrs := make([]attribute.KeyValue, 0, 4)
	attrs = append(attrs, attribute.String(SpanAttrOperation, operation))

	if resourceType != "" {
		attrs = append(attrs, attribute.String(SpanAttrResourceType, resourceType))
	}

	if namespace != "" {
		attrs = append(attrs, attribute.String(SpanAttrNamespace, namespace))
	}

	if name != "" {
		attrs = append(attrs, attribute.String(SpanAttrResourceName, name))
	}

	tracer := otel.GetTracerProvider().Tracer(TracerName)

	return tracer.Start(ctx, "k8s."+operation,
		trace.WithAttributes(attrs...),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

// EndSpan records err on span, if any, and ends it.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	span.End()
}
