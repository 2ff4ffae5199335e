package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/rohanthewiz/urlresolve"
	"github.com/rohanthewiz/urlresolve/core/resolve"
)

const defaultTracerName = "urlresolve"

// Source hands out the URL configuration to use for each call.
type Source[T any] interface {
	URLs() *urlresolve.URLs[T]
}

// SourceFunc adapts a function to Source.
type SourceFunc[T any] func() *urlresolve.URLs[T]

func (f SourceFunc[T]) URLs() *urlresolve.URLs[T] { return f() }

// Fixed is a Source that always returns urls.
func Fixed[T any](urls *urlresolve.URLs[T]) Source[T] {
	return SourceFunc[T](func() *urlresolve.URLs[T] { return urls })
}

// TraceOption configures tracing of an Instrumented.
type TraceOption func(*traceConfig)

type traceConfig struct {
	name   string
	tracer trace.Tracer
}

// WithTracerName sets the tracer name used with the global provider.
func WithTracerName(name string) TraceOption {
	return func(c *traceConfig) {
		c.name = name
	}
}

// WithTracer sets the tracer directly, bypassing the global provider.
func WithTracer(tracer trace.Tracer) TraceOption {
	return func(c *traceConfig) {
		c.tracer = tracer
	}
}

// Instrumented wraps a Source with metrics and spans.
// Metrics may be nil.
type Instrumented[T any] struct {
	source  Source[T]
	metrics *Metrics
	tracer  trace.Tracer
}

// Instrument wraps source.
//
// The tracer comes from the global OpenTelemetry provider unless WithTracer
// is given; without a configured provider spans are no-ops.
func Instrument[T any](source Source[T], metrics *Metrics, opts ...TraceOption) *Instrumented[T] {
	config := traceConfig{name: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}
	if config.tracer == nil {
		config.tracer = otel.Tracer(config.name)
	}
	return &Instrumented[T]{source: source, metrics: metrics, tracer: config.tracer}
}

// URLs returns the configuration of the wrapped source.
func (i *Instrumented[T]) URLs() *urlresolve.URLs[T] {
	return i.source.URLs()
}

// Resolve resolves path within a "urlresolve.resolve" span.
func (i *Instrumented[T]) Resolve(ctx context.Context, path string) (*resolve.Match[T], error) {
	_, span := i.tracer.Start(ctx, "urlresolve.resolve",
		trace.WithAttributes(attribute.String("urlresolve.path", path)),
	)
	defer span.End()

	start := time.Now()
	m, err := i.source.URLs().Resolve(path)
	if i.metrics != nil {
		i.metrics.ObserveResolve(err, time.Since(start))
	}

	span.SetAttributes(attribute.String("urlresolve.outcome", Outcome(err)))
	if err != nil {
		record(span, err)
		return nil, err
	}

	span.SetAttributes(
		attribute.String("urlresolve.name", m.Name),
		attribute.StringSlice("urlresolve.args", m.Args),
	)
	span.SetStatus(codes.Ok, "")
	return m, nil
}

// Reverse reverses name within a "urlresolve.reverse" span.
func (i *Instrumented[T]) Reverse(ctx context.Context, name string, args ...string) (string, error) {
	_, span := i.tracer.Start(ctx, "urlresolve.reverse",
		trace.WithAttributes(
			attribute.String("urlresolve.name", name),
			attribute.StringSlice("urlresolve.args", args),
		),
	)
	defer span.End()

	path, err := i.source.URLs().Reverse(name, args...)
	if i.metrics != nil {
		i.metrics.ObserveReverse(err)
	}
	if err != nil {
		record(span, err)
		return "", err
	}

	span.SetAttributes(attribute.String("urlresolve.result", path))
	span.SetStatus(codes.Ok, "")
	return path, nil
}

// record marks the span failed. Misses are expected, so only other
// errors are recorded as span events.
func record(span trace.Span, err error) {
	switch Outcome(err) {
	case OutcomeNotFound, OutcomeNoMatch:
	default:
		span.RecordError(err)
	}
	span.SetStatus(codes.Error, err.Error())
}
