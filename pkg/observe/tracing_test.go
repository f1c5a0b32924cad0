package observe

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/woby-dev/woby/pkg/reactive"
)

type recordedSpan struct {
	noop.Span
	name   string
	attrs  []attribute.KeyValue
	start  time.Time
	end    time.Time
	status codes.Code
	errs   []error
}

func (s *recordedSpan) SetStatus(code codes.Code, _ string) { s.status = code }
func (s *recordedSpan) RecordError(err error, _ ...trace.EventOption) {
	s.errs = append(s.errs, err)
}
func (s *recordedSpan) End(opts ...trace.SpanEndOption) {
	cfg := trace.NewSpanEndConfig(opts...)
	s.end = cfg.Timestamp()
}

type recordingTracer struct {
	noop.Tracer
	spans []*recordedSpan
}

func (t *recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	cfg := trace.NewSpanStartConfig(opts...)
	s := &recordedSpan{name: name, attrs: cfg.Attributes(), start: cfg.Timestamp()}
	t.spans = append(t.spans, s)
	return ctx, s
}

type recordingProvider struct {
	noop.TracerProvider
	tracer *recordingTracer
}

func (p *recordingProvider) Tracer(string, ...trace.TracerOption) trace.Tracer { return p.tracer }

func attrValue(attrs []attribute.KeyValue, key string) (attribute.Value, bool) {
	for _, kv := range attrs {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestTracerRecordsFlushSpan(t *testing.T) {
	rec := &recordingTracer{}
	tr := NewTracer(
		WithTracerProvider(&recordingProvider{tracer: rec}),
		WithAttributes(attribute.String("woby.session_id", "s-1")),
	)

	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	tr.ObserveFlush(reactive.FlushStats{Start: start, Duration: 5 * time.Millisecond, Passes: 2, EffectRuns: 3})

	if len(rec.spans) != 1 {
		t.Fatalf("spans = %d, want 1", len(rec.spans))
	}
	span := rec.spans[0]
	if span.name != "woby.flush" {
		t.Errorf("name = %q", span.name)
	}
	if !span.start.Equal(start) || !span.end.Equal(start.Add(5*time.Millisecond)) {
		t.Errorf("span times = %v..%v", span.start, span.end)
	}
	if v, ok := attrValue(span.attrs, "woby.flush.effect_runs"); !ok || v.AsInt64() != 3 {
		t.Errorf("effect_runs attribute = %v %v", v, ok)
	}
	if v, ok := attrValue(span.attrs, "woby.session_id"); !ok || v.AsString() != "s-1" {
		t.Errorf("session attribute = %v %v", v, ok)
	}
	if span.status != codes.Ok {
		t.Errorf("status = %v, want Ok", span.status)
	}
}

func TestTracerRecordsErrorsAndFilters(t *testing.T) {
	rec := &recordingTracer{}
	tr := NewTracer(WithTracerProvider(&recordingProvider{tracer: rec}), WithMinPasses(2))

	tr.ObserveFlush(reactive.FlushStats{Start: time.Now(), Passes: 1})
	if len(rec.spans) != 0 {
		t.Fatal("single-pass flush should be skipped")
	}

	boom := errors.New("boom")
	tr.ObserveFlush(reactive.FlushStats{Start: time.Now(), Passes: 3, Err: boom})
	if len(rec.spans) != 1 {
		t.Fatalf("spans = %d, want 1", len(rec.spans))
	}
	if span := rec.spans[0]; span.status != codes.Error || len(span.errs) != 1 {
		t.Errorf("error span = %+v", span)
	}
}
