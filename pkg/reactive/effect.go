package reactive

// Effect represents a reactive side effect that runs when its dependencies
// change.
//
// Effects run immediately when created and are re-run by the flush whenever
// a signal or memo they read during their last run changed. The function can
// return a Cleanup that is called before the effect re-runs and when the
// effect is disposed.
//
// Every run gets a fresh child scope: owners, signals and effects created
// by the body belong to that scope and are disposed before the next run.
type Effect struct {
	id uint64
	rt *Runtime

	// fn is the effect function to run.
	fn func() Cleanup

	// cleanup is the cleanup function from the last run.
	cleanup Cleanup

	deps tracker

	// owner is the Owner that owns this effect.
	owner *Owner

	// scope owns what the current run created.
	scope *Owner

	// queued is set while the effect sits in the runtime queue.
	queued bool

	disposed bool

	name string
	runs int
}

// EffectOption is an option for configuring an Effect.
type EffectOption func(*Effect)

// EffectName names the effect for diagnostics.
func EffectName(name string) EffectOption {
	return func(e *Effect) {
		e.name = name
	}
}

// NewEffect creates and runs a new effect within the current owner.
//
// Writes performed by the first run are batched and flushed before NewEffect
// returns. The returned error is either the panic of the first run (the
// effect is disposed in that case) or the error of that flush.
//
// Example:
//
//	reactive.NewEffect(rt, func() reactive.Cleanup {
//	    fmt.Println("Count is:", count.Get())
//	    return func() { fmt.Println("Cleanup") }
//	})
func NewEffect(rt *Runtime, fn func() Cleanup, opts ...EffectOption) (*Effect, error) {
	e := &Effect{
		id:    nextID(),
		rt:    rt,
		fn:    fn,
		owner: rt.owner,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.owner != nil {
		e.owner.own(e)
	}

	var runErr error
	flushErr := rt.Batch(func() {
		runErr = e.execute()
	})
	if runErr != nil {
		e.Dispose()
		return e, runErr
	}
	return e, flushErr
}

// ID returns the unique identifier for this effect.
func (e *Effect) ID() uint64 {
	return e.id
}

// Name returns the diagnostic name of the effect.
func (e *Effect) Name() string {
	return e.name
}

// Runs returns how many times the effect body has executed.
func (e *Effect) Runs() int {
	return e.runs
}

// Disposed reports whether the effect has been disposed.
func (e *Effect) Disposed() bool {
	return e.disposed
}

// Dispose runs the last cleanup and unsubscribes from all sources.
// If the effect is queued, the flush skips it.
func (e *Effect) Dispose() {
	if e.disposed {
		return
	}
	e.disposed = true

	if e.scope != nil {
		e.scope.Dispose()
		e.scope = nil
	}
	if e.cleanup != nil {
		c := e.cleanup
		e.cleanup = nil
		c()
	}
	e.deps.release(e)
}

// markStale implements observer.
func (e *Effect) markStale() {
	if e.disposed || e.queued {
		return
	}
	e.queued = true
	e.rt.enqueue(e)
}

// trackSource implements observer.
func (e *Effect) trackSource(src source, version uint64) bool {
	return e.deps.record(src, version)
}

// update is called by the flush. It reports whether the body ran.
func (e *Effect) update() (bool, error) {
	e.queued = false
	if e.disposed {
		return false, nil
	}
	if e.deps.len() > 0 && !e.deps.changed() {
		return false, nil
	}
	return true, e.execute()
}

// execute runs the effect body with tracking.
func (e *Effect) execute() (err error) {
	if e.scope != nil {
		e.scope.Dispose()
	}
	if e.cleanup != nil {
		c := e.cleanup
		e.cleanup = nil
		c()
	}
	e.deps.release(e)

	rt := e.rt
	e.scope = NewOwner(e.owner)

	oldListener, oldOwner := rt.listener, rt.owner
	rt.listener, rt.owner = e, e.scope
	defer func() {
		rt.listener, rt.owner = oldListener, oldOwner
		if r := recover(); r != nil {
			err = panicError("effect", e.id, r)
		}
	}()

	e.runs++
	e.cleanup = e.fn()
	return nil
}
