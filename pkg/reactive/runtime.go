package reactive

import (
	"log/slog"
	"sort"
	"time"
)

// DefaultMaxFlushPasses is the number of passes a single flush may take
// before it is reported as a cyclic update.
const DefaultMaxFlushPasses = 100

// Runtime holds the reactive state shared by a group of primitives: the
// current tracking listener, the current owner, the batch depth and the
// effect queue.
//
// A Runtime is not safe for concurrent use.
type Runtime struct {
	logger    *slog.Logger
	strict    bool
	maxPasses int
	observer  Observer

	// listener is what's currently tracking dependencies.
	// nil means reads don't create subscriptions.
	listener observer

	// owner will own newly created signals, memos and effects.
	owner *Owner

	// batchDepth tracks nested Batch calls. While > 0 writes only mark.
	batchDepth int

	// queue holds effects waiting for the next pass.
	queue []*Effect

	// flushing is set while the queue is being drained.
	flushing bool
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithLogger sets the logger used for diagnostics.
// Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(rt *Runtime) {
		if logger != nil {
			rt.logger = logger
		}
	}
}

// WithStrict makes writes to disposed signals fail with ErrUseAfterDispose
// instead of being silently dropped.
func WithStrict(strict bool) Option {
	return func(rt *Runtime) {
		rt.strict = strict
	}
}

// WithMaxFlushPasses sets the pass limit after which a flush fails with
// ErrCyclicUpdate. Values below 1 keep the default.
func WithMaxFlushPasses(n int) Option {
	return func(rt *Runtime) {
		if n > 0 {
			rt.maxPasses = n
		}
	}
}

// WithObserver installs an Observer notified after every flush.
func WithObserver(o Observer) Option {
	return func(rt *Runtime) {
		rt.observer = o
	}
}

// NewRuntime creates a Runtime.
func NewRuntime(opts ...Option) *Runtime {
	rt := &Runtime{
		logger:    slog.Default(),
		maxPasses: DefaultMaxFlushPasses,
	}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// Logger returns the runtime logger.
func (rt *Runtime) Logger() *slog.Logger {
	return rt.logger
}

// Strict reports whether the runtime runs in strict mode.
func (rt *Runtime) Strict() bool {
	return rt.strict
}

// Owner returns the current owner, or nil outside any owner scope.
func (rt *Runtime) Owner() *Owner {
	return rt.owner
}

// WithOwner runs fn with o as the current owner. Signals, memos, effects and
// child owners created inside fn belong to o.
func (rt *Runtime) WithOwner(o *Owner, fn func()) {
	old := rt.owner
	rt.owner = o
	defer func() { rt.owner = old }()
	fn()
}

// Untrack runs fn without tracking signal reads as dependencies.
func (rt *Runtime) Untrack(fn func()) {
	old := rt.listener
	rt.listener = nil
	defer func() { rt.listener = old }()
	fn()
}

// Untracked runs fn without tracking and returns its result.
func Untracked[T any](rt *Runtime, fn func() T) T {
	var v T
	rt.Untrack(func() { v = fn() })
	return v
}

// Tracking reports whether reads are currently being tracked.
func (rt *Runtime) Tracking() bool {
	return rt.listener != nil
}

// Batch groups multiple signal writes into one flush. Writes inside fn only
// mark their dependents; the queue is drained once, when the outermost Batch
// returns. Batches can be nested.
//
// The returned error is the error of that flush, so only the outermost
// Batch can return one.
func (rt *Runtime) Batch(fn func()) error {
	rt.batchDepth++
	func() {
		defer func() { rt.batchDepth-- }()
		fn()
	}()
	return rt.settle()
}

// Flush drains the effect queue now. It is a no-op inside a batch or a
// running flush.
func (rt *Runtime) Flush() error {
	return rt.settle()
}

// Pending returns the number of queued effects.
func (rt *Runtime) Pending() int {
	return len(rt.queue)
}

// track records a read of src by the current listener.
func (rt *Runtime) track(src source, version uint64) {
	l := rt.listener
	if l == nil {
		return
	}
	if l.trackSource(src, version) {
		src.addObserver(l)
	}
}

// enqueue schedules an effect for the next pass.
func (rt *Runtime) enqueue(e *Effect) {
	rt.queue = append(rt.queue, e)
}

// settle flushes the queue unless a batch or a flush is in progress.
func (rt *Runtime) settle() error {
	if rt.batchDepth > 0 || rt.flushing {
		return nil
	}
	if len(rt.queue) == 0 {
		return nil
	}
	return rt.flush()
}

// flush drains the queue pass by pass. Each pass runs the effects queued so
// far in creation order; effects queued while a pass runs go to the next one.
func (rt *Runtime) flush() error {
	rt.flushing = true
	defer func() { rt.flushing = false }()

	stats := FlushStats{Start: time.Now()}
	var err error

passes:
	for len(rt.queue) > 0 {
		if stats.Passes >= rt.maxPasses {
			err = ErrCyclicUpdate.Detailf("%d effects still queued after %d passes", len(rt.queue), stats.Passes)
			rt.dropQueue(rt.queue)
			break
		}
		stats.Passes++

		pass := rt.queue
		rt.queue = nil
		sort.SliceStable(pass, func(i, j int) bool { return pass[i].id < pass[j].id })

		for i, e := range pass {
			ran, runErr := e.update()
			if ran {
				stats.EffectRuns++
			} else {
				stats.Skipped++
			}
			if runErr != nil {
				err = runErr
				rt.dropQueue(pass[i+1:])
				rt.dropQueue(rt.queue)
				break passes
			}
		}
	}

	stats.Duration = time.Since(stats.Start)
	stats.Err = err

	if err != nil {
		rt.logger.Error("reactive flush failed",
			"error", err,
			"passes", stats.Passes,
			"effect_runs", stats.EffectRuns)
	}
	if rt.observer != nil {
		rt.observer.ObserveFlush(stats)
	}
	return err
}

// dropQueue clears the queued flag of effects that will not run.
func (rt *Runtime) dropQueue(effects []*Effect) {
	for _, e := range effects {
		e.queued = false
	}
	rt.queue = nil
}

// useAfterDispose reports a write to a disposed primitive.
func (rt *Runtime) useAfterDispose(what string, id uint64) error {
	if !rt.strict {
		rt.logger.Debug("write to disposed primitive ignored", "kind", what, "id", id)
		return nil
	}
	return ErrUseAfterDispose.Detailf("%s #%d", what, id)
}
