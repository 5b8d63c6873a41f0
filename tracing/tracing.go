package tracing

import (
	"context"
	"io"
	"os"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/viant/scp"

var (
	providerOnce sync.Once
	providerErr  error
	provider     *sdktrace.TracerProvider
	output       io.Closer
)

// Init configures OpenTelemetry with the stdout exporter writing to
// outputFile, or os.Stderr when outputFile is empty. Stdout is never used
// since it carries the generated policy. The first call wins; later calls do
// not open outputFile.
func Init(serviceName, serviceVersion, outputFile string) error {
	return install(serviceName, serviceVersion, func() (sdktrace.SpanExporter, error) {
		var w io.Writer = os.Stderr
		if outputFile != "" {
			f, err := os.Create(outputFile)
			if err != nil {
				return nil, err
			}
			output = f
			w = f
		}
		return stdouttrace.New(stdouttrace.WithWriter(w))
	})
}

// InitWithExporter configures OpenTelemetry using the supplied exporter.
func InitWithExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) error {
	if exporter == nil {
		return nil
	}
	return install(serviceName, serviceVersion, func() (sdktrace.SpanExporter, error) {
		return exporter, nil
	})
}

func install(serviceName, serviceVersion string, newExporter func() (sdktrace.SpanExporter, error)) error {
	providerOnce.Do(func() {
		exporter, err := newExporter()
		if err != nil {
			providerErr = err
			return
		}
		res, err := resource.New(context.Background(),
			resource.WithAttributes(
				attribute.String("service.name", serviceName),
				attribute.String("service.version", serviceVersion),
			),
		)
		if err != nil {
			providerErr = err
			return
		}
		provider = sdktrace.NewTracerProvider(
			sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
			sdktrace.WithResource(res),
		)
		otel.SetTracerProvider(provider)
	})
	return providerErr
}

// Shutdown flushes and stops the provider installed by Init, then closes the
// trace file, if any.
func Shutdown(ctx context.Context) error {
	var err error
	if provider != nil {
		err = provider.Shutdown(ctx)
	}
	if output != nil {
		if closeErr := output.Close(); err == nil {
			err = closeErr
		}
		output = nil
	}
	return err
}

// Span wraps an OpenTelemetry span.
type Span struct {
	span trace.Span
}

// WithAttributes attaches attributes to the span.
func (s *Span) WithAttributes(attrs map[string]string) *Span {
	if s == nil || len(attrs) == 0 {
		return s
	}
	otelAttrs := make([]attribute.KeyValue, 0, len(attrs))
	for k, v := range attrs {
		otelAttrs = append(otelAttrs, attribute.String(k, v))
	}
	s.span.SetAttributes(otelAttrs...)
	return s
}

// SetStatus records err on the span, or an OK status when err is nil.
func (s *Span) SetStatus(err error) {
	if s == nil {
		return
	}
	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
		return
	}
	s.span.SetStatus(codes.Ok, "")
}

// StartSpan starts an internal child span of whatever span ctx carries.
func StartSpan(ctx context.Context, name string) (context.Context, *Span) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, name, trace.WithSpanKind(trace.SpanKindInternal))
	return ctx, &Span{span: span}
}

// EndSpan records the status derived from err and ends the span.
func EndSpan(sp *Span, err error) {
	if sp == nil {
		return
	}
	sp.SetStatus(err)
	sp.span.End()
}
