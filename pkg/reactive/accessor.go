package reactive

// Accessor is the read side shared by signals, memos, refs and constants.
// Components read props through accessors so they do not care whether a
// prop is reactive.
type Accessor[T any] interface {
	// Get returns the value and tracks it in the current computation.
	Get() T

	// Peek returns the value without tracking.
	Peek() T
}

// anyReader is implemented by every accessor in this package.
type anyReader interface {
	GetAny() any
}

// constant is an Accessor over a fixed value.
type constant[T any] struct {
	value T
}

func (c constant[T]) Get() T      { return c.value }
func (c constant[T]) Peek() T     { return c.value }
func (c constant[T]) GetAny() any { return c.value }

// Static wraps a plain value in an Accessor that never changes.
func Static[T any](value T) Accessor[T] {
	return constant[T]{value: value}
}

// accessorFunc adapts a getter function.
type accessorFunc[T any] struct {
	rt *Runtime
	fn func() T
}

func (a accessorFunc[T]) Get() T      { return a.fn() }
func (a accessorFunc[T]) Peek() T     { return Untracked(a.rt, a.fn) }
func (a accessorFunc[T]) GetAny() any { return a.fn() }

// FromFunc turns a getter into an Accessor without memoizing it.
// Every Get re-runs fn in the caller's tracking scope.
func FromFunc[T any](rt *Runtime, fn func() T) Accessor[T] {
	return accessorFunc[T]{rt: rt, fn: fn}
}

// IsAccessor reports whether v is a reactive or constant accessor from this
// package.
func IsAccessor(v any) bool {
	_, ok := v.(anyReader)
	return ok
}

// Read resolves v: accessors are read (and tracked), anything else is
// returned as is.
func Read(v any) any {
	if r, ok := v.(anyReader); ok {
		return r.GetAny()
	}
	return v
}

// ReadAs resolves v like Read and asserts the result to T.
func ReadAs[T any](v any) (T, bool) {
	if a, ok := v.(Accessor[T]); ok {
		return a.Get(), true
	}
	t, ok := Read(v).(T)
	return t, ok
}

// GetAny returns the value as an interface{} and tracks it.
func (s *Signal[T]) GetAny() any { return s.Get() }

// GetAny returns the value as an interface{} and tracks it.
func (m *Memo[T]) GetAny() any { return m.Get() }

var (
	_ Accessor[int] = (*Signal[int])(nil)
	_ Accessor[int] = (*Memo[int])(nil)
	_ Accessor[int] = constant[int]{}
)
