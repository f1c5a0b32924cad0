package observe

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/woby-dev/woby/pkg/reactive"
)

// Default tracer name for woby runtimes.
const defaultTracerName = "woby"

// TracerConfig configures the flush tracer.
type TracerConfig struct {
	// TracerName is the name of the tracer (default: "woby").
	TracerName string

	// Provider is the tracer provider.
	// Default: the global provider from otel.GetTracerProvider.
	Provider trace.TracerProvider

	// Attributes are added to every span, e.g. a session id.
	Attributes []attribute.KeyValue

	// MinPasses skips flushes that needed fewer passes. Zero traces all.
	MinPasses int
}

// TracerOption configures the flush tracer.
type TracerOption func(*TracerConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TracerOption {
	return func(c *TracerConfig) {
		c.TracerName = name
	}
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(provider trace.TracerProvider) TracerOption {
	return func(c *TracerConfig) {
		c.Provider = provider
	}
}

// WithAttributes adds attributes to every span.
func WithAttributes(attrs ...attribute.KeyValue) TracerOption {
	return func(c *TracerConfig) {
		c.Attributes = append(c.Attributes, attrs...)
	}
}

// WithMinPasses only traces flushes needing at least n passes.
func WithMinPasses(n int) TracerOption {
	return func(c *TracerConfig) {
		c.MinPasses = n
	}
}

// Tracer records one span per flush. Spans are backdated to the flush
// start, since the observer is only called once the flush is over.
type Tracer struct {
	tracer    trace.Tracer
	attrs     []attribute.KeyValue
	minPasses int
}

var _ reactive.Observer = (*Tracer)(nil)

// NewTracer creates a flush tracer.
//
// The tracer uses the global OpenTelemetry tracer provider unless one is
// passed. Configure it in main() before creating runtimes:
//
//	otel.SetTracerProvider(tp)
func NewTracer(opts ...TracerOption) *Tracer {
	config := TracerConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}
	if config.Provider == nil {
		config.Provider = otel.GetTracerProvider()
	}
	return &Tracer{
		tracer:    config.Provider.Tracer(config.TracerName),
		attrs:     config.Attributes,
		minPasses: config.MinPasses,
	}
}

// ObserveFlush implements reactive.Observer.
func (t *Tracer) ObserveFlush(stats reactive.FlushStats) {
	if stats.Passes < t.minPasses {
		return
	}
	attrs := append([]attribute.KeyValue{
		attribute.Int("woby.flush.passes", stats.Passes),
		attribute.Int("woby.flush.effect_runs", stats.EffectRuns),
		attribute.Int("woby.flush.skipped", stats.Skipped),
	}, t.attrs...)

	_, span := t.tracer.Start(context.Background(), "woby.flush",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
		trace.WithTimestamp(stats.Start),
	)
	if stats.Err != nil {
		span.RecordError(stats.Err)
		span.SetStatus(codes.Error, stats.Err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End(trace.WithTimestamp(stats.Start.Add(stats.Duration)))
}

// Multi fans flush statistics out to several observers. Nil observers are
// skipped.
func Multi(observers ...reactive.Observer) reactive.Observer {
	var list []reactive.Observer
	for _, o := range observers {
		if o != nil {
			list = append(list, o)
		}
	}
	return reactive.ObserverFunc(func(stats reactive.FlushStats) {
		for _, o := range list {
			o.ObserveFlush(stats)
		}
	})
}
