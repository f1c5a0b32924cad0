package reactive

// Ref holds a handle that is only meaningful while something is attached,
// typically a DOM node between connect and disconnect.
//
// Ref is backed by a signal: reading it with Get inside a memo or effect
// subscribes to the attach/detach transitions.
type Ref[T any] struct {
	sig   *Signal[T]
	isSet bool
}

// NewRef creates an unset Ref.
func NewRef[T any](rt *Runtime) *Ref[T] {
	var zero T
	return &Ref[T]{
		sig: NewSignal(rt, zero),
	}
}

// Get returns the current value and tracks it.
func (r *Ref[T]) Get() T {
	return r.sig.Get()
}

// Peek returns the current value without tracking.
func (r *Ref[T]) Peek() T {
	return r.sig.Peek()
}

// Current is Peek under the name used for DOM refs.
func (r *Ref[T]) Current() T {
	return r.sig.Peek()
}

// GetAny returns the current value as an interface{} and tracks it.
func (r *Ref[T]) GetAny() any {
	return r.sig.Get()
}

// IsSet returns true while the ref is attached.
func (r *Ref[T]) IsSet() bool {
	return r.isSet
}

// Attach sets the ref. Subscribers are flushed before Attach returns unless
// a batch or flush is already running.
func (r *Ref[T]) Attach(value T) error {
	r.isSet = true
	return r.sig.Set(value)
}

// Detach resets the ref to the zero value.
func (r *Ref[T]) Detach() error {
	var zero T
	r.isSet = false
	return r.sig.Set(zero)
}

// OnChange calls fn with the ref value now and after every transition,
// until the returned function is called.
func (r *Ref[T]) OnChange(fn func(T)) (stop func(), err error) {
	rt := r.sig.rt
	var e *Effect
	rt.WithOwner(nil, func() {
		e, err = NewEffect(rt, func() Cleanup {
			v := r.sig.Get()
			rt.Untrack(func() { fn(v) })
			return nil
		})
	})
	return e.Dispose, err
}

// Dispose releases the underlying signal.
func (r *Ref[T]) Dispose() {
	r.sig.Dispose()
}

// Disposed reports whether the ref was disposed.
func (r *Ref[T]) Disposed() bool {
	return r.sig.Disposed()
}

var _ Accessor[int] = (*Ref[int])(nil)
