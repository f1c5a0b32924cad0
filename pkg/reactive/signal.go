package reactive

// signalBase provides type-erased subscriber management.
// It is embedded in Signal[T] and Memo[T] to share subscription logic.
type signalBase struct {
	id   uint64
	rt   *Runtime
	name string

	// observers are the computations subscribed to this node.
	observers []observer

	// version increments every time the value changes.
	version uint64

	disposed bool
}

// addObserver adds an observer, deduplicating by ID.
func (s *signalBase) addObserver(o observer) {
	if o == nil || s.disposed {
		return
	}
	lid := o.ID()
	for _, existing := range s.observers {
		if existing.ID() == lid {
			return
		}
	}
	s.observers = append(s.observers, o)
}

// removeObserver removes an observer from this node.
func (s *signalBase) removeObserver(o observer) {
	if o == nil {
		return
	}
	lid := o.ID()
	for i, existing := range s.observers {
		if existing.ID() == lid {
			// Remove by swapping with last element (order doesn't matter)
			s.observers[i] = s.observers[len(s.observers)-1]
			s.observers[len(s.observers)-1] = nil
			s.observers = s.observers[:len(s.observers)-1]
			return
		}
	}
}

// notifyObservers marks every observer stale.
// Observers are copied first since marking may unsubscribe.
func (s *signalBase) notifyObservers() {
	if len(s.observers) == 0 {
		return
	}
	obs := make([]observer, len(s.observers))
	copy(obs, s.observers)
	for _, o := range obs {
		o.markStale()
	}
}

// observerCount returns the number of subscribed computations.
func (s *signalBase) observerCount() int {
	return len(s.observers)
}

// Signal is a reactive value container.
// Reading a Signal's value during a tracked computation (memo or effect)
// subscribes that computation to receive notifications when the value
// changes.
type Signal[T any] struct {
	signalBase

	// value is the current signal value.
	value T

	// equal decides whether a write changes the value.
	equal func(T, T) bool

	hint TypeHint
}

// NewSignal creates a new signal with the given initial value.
// If an owner is current, the signal is disposed together with it.
func NewSignal[T any](rt *Runtime, initial T, opts ...SignalOption) *Signal[T] {
	o := applyOptions(opts)
	s := &Signal[T]{
		signalBase: signalBase{
			id:   nextID(),
			rt:   rt,
			name: o.name,
		},
		value: initial,
		hint:  o.hint,
	}
	if eq, ok := o.equal.(func(T, T) bool); ok {
		s.equal = eq
	}
	if owner := rt.owner; owner != nil {
		owner.own(s)
	}
	return s
}

// Get returns the current value and subscribes the current listener.
func (s *Signal[T]) Get() T {
	s.rt.track(s, s.version)
	return s.value
}

// Peek returns the current value without subscribing.
func (s *Signal[T]) Peek() T {
	return s.value
}

// Set replaces the value and notifies subscribers if the value changed.
// Equal writes are no-ops. The returned error is the error of the flush this
// write started, if any.
func (s *Signal[T]) Set(value T) error {
	if s.disposed {
		return s.rt.useAfterDispose("signal", s.id)
	}
	if s.equals(s.value, value) {
		return nil
	}
	s.value = value
	s.version++
	s.notifyObservers()
	return s.rt.settle()
}

// Update reads the current value, passes it to fn and writes the result.
func (s *Signal[T]) Update(fn func(prev T) T) error {
	if s.disposed {
		return s.rt.useAfterDispose("signal", s.id)
	}
	return s.Set(fn(s.value))
}

// Dispose detaches the signal from all subscribers. Later writes are
// ignored, or fail with ErrUseAfterDispose in strict mode.
func (s *Signal[T]) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.observers = nil
}

// Disposed reports whether the signal has been disposed.
func (s *Signal[T]) Disposed() bool {
	return s.disposed
}

// ID returns the unique identifier for this signal.
func (s *Signal[T]) ID() uint64 {
	return s.id
}

// Name returns the diagnostic name given with WithName.
func (s *Signal[T]) Name() string {
	return s.name
}

// Version returns the number of changes the signal has seen.
func (s *Signal[T]) Version() uint64 {
	return s.version
}

// TypeHint returns the attribute decoding hint of the signal.
func (s *Signal[T]) TypeHint() TypeHint {
	return s.hint
}

// latestVersion implements source.
func (s *Signal[T]) latestVersion() uint64 {
	return s.version
}

// equals checks if two values are equal using the configured equality function.
func (s *Signal[T]) equals(a, b T) bool {
	if s.equal != nil {
		return s.equal(a, b)
	}
	return defaultEquals(a, b)
}
