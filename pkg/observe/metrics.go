package observe

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	werrors "github.com/woby-dev/woby/internal/errors"
	"github.com/woby-dev/woby/pkg/reactive"
)

// MetricsConfig configures the Prometheus collector.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "woby").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for flush duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus collector.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the flush duration histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "woby",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Prometheus collects runtime metrics:
//   - woby_flushes_total: Counter of flushes by status
//   - woby_flush_duration_seconds: Histogram of flush duration
//   - woby_flush_passes: Histogram of passes per flush
//   - woby_effect_runs_total: Counter of effect bodies run
//   - woby_effects_skipped_total: Counter of queued effects found clean
//   - woby_decode_errors_total: Counter of attribute decode failures by tag
//   - woby_active_sessions: Gauge of open dev server sessions
//   - woby_frames_sent_total: Counter of frames sent to dev server clients
type Prometheus struct {
	flushesTotal   *prometheus.CounterVec
	flushDuration  prometheus.Histogram
	flushPasses    prometheus.Histogram
	effectRuns     prometheus.Counter
	effectsSkipped prometheus.Counter
	decodeErrors   *prometheus.CounterVec
	activeSessions prometheus.Gauge
	framesSent     prometheus.Counter
}

var _ reactive.Observer = (*Prometheus)(nil)

// NewPrometheus registers the collectors. Registering twice on the same
// registry panics, like any duplicate Prometheus registration.
func NewPrometheus(opts ...MetricsOption) *Prometheus {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Prometheus{
		flushesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "flushes_total",
			Help:        "Total number of effect queue flushes",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),

		flushDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "flush_duration_seconds",
			Help:        "Effect queue flush duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		flushPasses: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "flush_passes",
			Help:        "Number of passes needed to drain the effect queue",
			ConstLabels: config.ConstLabels,
			Buckets:     []float64{1, 2, 3, 5, 10, 25, 50, 100},
		}),

		effectRuns: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "effect_runs_total",
			Help:        "Total number of effect bodies run",
			ConstLabels: config.ConstLabels,
		}),

		effectsSkipped: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "effects_skipped_total",
			Help:        "Total number of queued effects whose sources were unchanged",
			ConstLabels: config.ConstLabels,
		}),

		decodeErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "decode_errors_total",
			Help:        "Total number of attribute values that failed to decode",
			ConstLabels: config.ConstLabels,
		}, []string{"tag"}),

		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "active_sessions",
			Help:        "Number of open dev server sessions",
			ConstLabels: config.ConstLabels,
		}),

		framesSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "frames_sent_total",
			Help:        "Total number of frames sent to dev server clients",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// ObserveFlush implements reactive.Observer.
func (p *Prometheus) ObserveFlush(stats reactive.FlushStats) {
	p.flushesTotal.WithLabelValues(flushStatus(stats.Err)).Inc()
	p.flushDuration.Observe(stats.Duration.Seconds())
	p.flushPasses.Observe(float64(stats.Passes))
	p.effectRuns.Add(float64(stats.EffectRuns))
	p.effectsSkipped.Add(float64(stats.Skipped))
}

// DecodeFailed counts an attribute decode failure. Its signature matches
// element.OnDecodeError.
func (p *Prometheus) DecodeFailed(tag, _ string, _ error) {
	p.decodeErrors.WithLabelValues(tag).Inc()
}

// SessionOpened records a new dev server session.
func (p *Prometheus) SessionOpened() { p.activeSessions.Inc() }

// SessionClosed records a closed dev server session.
func (p *Prometheus) SessionClosed() { p.activeSessions.Dec() }

// FramesSent records frames written to a client.
func (p *Prometheus) FramesSent(n int) { p.framesSent.Add(float64(n)) }

// flushStatus returns a low-cardinality label for a flush result.
func flushStatus(err error) string {
	var werr *werrors.Error
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, reactive.ErrCyclicUpdate):
		return "cyclic_update"
	case errors.Is(err, reactive.ErrEffectPanic):
		return "effect_panic"
	case errors.As(err, &werr):
		return string(werr.Category)
	default:
		return "internal"
	}
}
