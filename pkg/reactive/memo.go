package reactive

// memoState tracks whether the cached value can be trusted.
type memoState uint8

const (
	memoUninit memoState = iota // never computed
	memoClean                   // cached value is current
	memoStale                   // a source changed; recheck on next read
)

// Memo is a cached computation that automatically tracks its dependencies.
//
// Memos are lazy: a dependency write only marks the memo stale and tells its
// own observers to recheck. The body runs again on the next read, and only
// if a source version actually moved. If several sources change before a
// read, the memo recomputes once with all final values.
//
// A recomputation that produces an equal value does not change the memo's
// version, so observers whose sources are otherwise unchanged are skipped.
type Memo[T any] struct {
	signalBase

	compute func() T
	value   T
	state   memoState
	deps    tracker
	equal   func(T, T) bool

	// computing prevents infinite recursion in circular dependencies.
	computing bool

	// runs counts executions of compute.
	runs int
}

// NewMemo creates a new memo with the given computation function.
// The computation is not run immediately; it runs lazily on first Get().
func NewMemo[T any](rt *Runtime, compute func() T, opts ...SignalOption) *Memo[T] {
	o := applyOptions(opts)
	m := &Memo[T]{
		signalBase: signalBase{
			id:   nextID(),
			rt:   rt,
			name: o.name,
		},
		compute: compute,
	}
	if eq, ok := o.equal.(func(T, T) bool); ok {
		m.equal = eq
	}
	if owner := rt.owner; owner != nil {
		owner.own(m)
	}
	return m
}

// Get returns the memo's value, recomputing if necessary, and subscribes
// the current listener.
func (m *Memo[T]) Get() T {
	m.refresh()
	m.rt.track(m, m.version)
	return m.value
}

// Peek returns the memo's value without subscribing.
// Still recomputes if the value is stale.
func (m *Memo[T]) Peek() T {
	m.refresh()
	return m.value
}

// ID returns the unique identifier for this memo.
func (m *Memo[T]) ID() uint64 {
	return m.id
}

// Runs returns how many times the computation has executed.
func (m *Memo[T]) Runs() int {
	return m.runs
}

// Stale reports whether the next read has to check the memo's sources.
func (m *Memo[T]) Stale() bool {
	return m.state != memoClean
}

// Dispose unsubscribes the memo from its sources and drops its observers.
// A disposed memo keeps returning its last value.
func (m *Memo[T]) Dispose() {
	if m.disposed {
		return
	}
	m.disposed = true
	m.deps.release(m)
	m.observers = nil
}

// markStale implements observer. Only the clean → stale transition
// propagates, so a chain of memos is marked once per change.
func (m *Memo[T]) markStale() {
	if m.disposed || m.state != memoClean {
		return
	}
	m.state = memoStale
	m.notifyObservers()
}

// trackSource implements observer.
func (m *Memo[T]) trackSource(src source, version uint64) bool {
	return m.deps.record(src, version)
}

// latestVersion implements source.
func (m *Memo[T]) latestVersion() uint64 {
	m.refresh()
	return m.version
}

// refresh brings the cached value up to date.
func (m *Memo[T]) refresh() {
	if m.disposed {
		return
	}
	switch m.state {
	case memoClean:
		return
	case memoStale:
		if !m.deps.changed() {
			m.state = memoClean
			return
		}
	}
	m.recompute()
}

// recompute runs the computation and updates the cached value.
func (m *Memo[T]) recompute() {
	if m.computing {
		// Circular read: keep serving the cached value.
		return
	}
	m.computing = true
	defer func() { m.computing = false }()

	m.deps.release(m)

	rt := m.rt
	oldListener := rt.listener
	rt.listener = m
	defer func() { rt.listener = oldListener }()

	next := m.compute()
	m.runs++

	first := m.state == memoUninit
	if first || !m.equals(m.value, next) {
		m.value = next
		m.version++
	}
	m.state = memoClean
}

// equals checks if two values are equal.
func (m *Memo[T]) equals(a, b T) bool {
	if m.equal != nil {
		return m.equal(a, b)
	}
	return defaultEquals(a, b)
}
