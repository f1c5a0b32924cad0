package devserver

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/woby-dev/woby/pkg/dom"
	"github.com/woby-dev/woby/pkg/observe"
	"github.com/woby-dev/woby/pkg/reactive"
)

// App builds the document and root of one session. It runs on the session
// goroutine and may install a custom element registry on the document it
// returns.
type App func(rt *reactive.Runtime) (doc *dom.Document, root any, err error)

// Config configures the dev server.
type Config struct {
	// Addr is the listen address (default: "localhost:3000").
	Addr string

	// Title is the page title.
	Title string

	// App builds each session.
	App App

	// Logger is used for request and session logs.
	// Default: slog.Default().
	Logger *slog.Logger

	// Metrics receives session and flush metrics. Nil disables them.
	Metrics *observe.Prometheus

	// Gatherer backs /metrics (default: prometheus.DefaultGatherer).
	Gatherer prometheus.Gatherer

	// Observer is notified of every flush in every session, next to
	// Metrics.
	Observer reactive.Observer

	// RuntimeOptions are applied to each session runtime.
	RuntimeOptions []reactive.Option

	// ReadTimeout bounds the time between two client messages
	// (default: 5m).
	ReadTimeout time.Duration

	// MaxMessageSize limits client messages in bytes (default: 64KiB).
	MaxMessageSize int64

	// ShutdownTimeout bounds graceful shutdown (default: 10s).
	ShutdownTimeout time.Duration
}

// DefaultConfig returns a Config with default values and no App.
func DefaultConfig() Config {
	return Config{
		Addr:            "localhost:3000",
		Title:           "woby",
		ReadTimeout:     5 * time.Minute,
		MaxMessageSize:  64 << 10,
		ShutdownTimeout: 10 * time.Second,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Addr == "" {
		c.Addr = d.Addr
	}
	if c.Title == "" {
		c.Title = d.Title
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.Gatherer == nil {
		c.Gatherer = prometheus.DefaultGatherer
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = d.ReadTimeout
	}
	if c.MaxMessageSize <= 0 {
		c.MaxMessageSize = d.MaxMessageSize
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = d.ShutdownTimeout
	}
	return c
}
