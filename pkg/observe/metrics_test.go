package observe

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/woby-dev/woby/pkg/reactive"
)

func metricCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	if m.Counter == nil {
		t.Fatal("expected counter metric to have Counter field")
	}
	return m.GetCounter().GetValue()
}

func metricGaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	if err := g.Write(&m); err != nil {
		t.Fatalf("gauge Write() error: %v", err)
	}
	return m.GetGauge().GetValue()
}

func metricHistogramCount(t *testing.T, h prometheus.Histogram) uint64 {
	t.Helper()
	var m dto.Metric
	if err := h.Write(&m); err != nil {
		t.Fatalf("histogram Write() error: %v", err)
	}
	if m.Histogram == nil {
		t.Fatal("expected histogram metric to have Histogram field")
	}
	return m.GetHistogram().GetSampleCount()
}

func TestPrometheusObservesRuntimeFlushes(t *testing.T) {
	p := NewPrometheus(WithRegistry(prometheus.NewRegistry()), WithNamespace("test"))
	rt := reactive.NewRuntime(reactive.WithObserver(p))

	s := reactive.NewSignal(rt, 0)
	if _, err := reactive.NewEffect(rt, func() reactive.Cleanup {
		s.Get()
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	_ = s.Set(1)
	_ = s.Set(2)

	if got := metricCounterValue(t, p.flushesTotal.WithLabelValues("success")); got < 2 {
		t.Errorf("successful flushes = %v, want at least 2", got)
	}
	if got := metricCounterValue(t, p.effectRuns); got < 2 {
		t.Errorf("effect runs = %v, want at least 2", got)
	}
	if metricHistogramCount(t, p.flushDuration) == 0 {
		t.Error("flush duration not observed")
	}
}

func TestPrometheusFlushStatus(t *testing.T) {
	p := NewPrometheus(WithRegistry(prometheus.NewRegistry()))

	p.ObserveFlush(reactive.FlushStats{Passes: 100, Err: reactive.ErrCyclicUpdate})
	p.ObserveFlush(reactive.FlushStats{Passes: 1, Err: errors.New("boom")})

	if got := metricCounterValue(t, p.flushesTotal.WithLabelValues("cyclic_update")); got != 1 {
		t.Errorf("cyclic_update = %v, want 1", got)
	}
	if got := metricCounterValue(t, p.flushesTotal.WithLabelValues("internal")); got != 1 {
		t.Errorf("internal = %v, want 1", got)
	}
	if got := metricHistogramCount(t, p.flushPasses); got != 2 {
		t.Errorf("passes samples = %v, want 2", got)
	}
}

func TestPrometheusSessionsAndDecodeErrors(t *testing.T) {
	p := NewPrometheus(WithRegistry(prometheus.NewRegistry()))

	p.SessionOpened()
	p.SessionOpened()
	p.SessionClosed()
	p.FramesSent(3)
	p.DecodeFailed("x-counter", "value", errors.New("bad"))

	if got := metricGaugeValue(t, p.activeSessions); got != 1 {
		t.Errorf("active sessions = %v, want 1", got)
	}
	if got := metricCounterValue(t, p.framesSent); got != 3 {
		t.Errorf("frames = %v, want 3", got)
	}
	if got := metricCounterValue(t, p.decodeErrors.WithLabelValues("x-counter")); got != 1 {
		t.Errorf("decode errors = %v, want 1", got)
	}
}

func TestMulti(t *testing.T) {
	var a, b int
	obs := Multi(
		reactive.ObserverFunc(func(reactive.FlushStats) { a++ }),
		nil,
		reactive.ObserverFunc(func(reactive.FlushStats) { b++ }),
	)
	obs.ObserveFlush(reactive.FlushStats{Start: time.Now()})
	if a != 1 || b != 1 {
		t.Errorf("a=%d b=%d, want 1 1", a, b)
	}
}
