package reactive

// Owner represents a scope that owns reactive primitives.
// When an Owner is disposed, all signals, memos, effects and child owners it
// contains are disposed as well, and its cleanups run.
//
// Owners form a hierarchy that mirrors the component tree. Context values are
// stored on owners and resolved by walking the parent chain, so a value is
// visible to the subtree below the owner that set it and nowhere else.
type Owner struct {
	id uint64

	// parent is the parent Owner in the hierarchy.
	// nil for a root Owner.
	parent *Owner

	// children are child Owners (sub-components).
	children []*Owner

	// owned are the signals, memos and effects created under this owner.
	owned []disposable

	// cleanups are manual cleanup functions registered via OnCleanup.
	cleanups []func()

	// pending is work deferred until the owner's nodes are attached.
	pending []func()

	// values stores context values for this scope.
	values map[any]any

	disposed bool
}

// NewOwner creates a new Owner with the given parent.
// The new Owner is registered as a child of the parent.
// If parent is nil, creates a root Owner.
func NewOwner(parent *Owner) *Owner {
	o := &Owner{
		id:     nextID(),
		parent: parent,
	}
	if parent != nil && !parent.disposed {
		parent.children = append(parent.children, o)
	}
	return o
}

// ID returns the unique identifier for this Owner.
func (o *Owner) ID() uint64 {
	return o.id
}

// Parent returns the parent Owner, or nil if this is a root Owner.
func (o *Owner) Parent() *Owner {
	return o.parent
}

// Disposed returns true if this Owner has been disposed.
func (o *Owner) Disposed() bool {
	return o.disposed
}

// own registers a primitive to be disposed with this Owner. Primitives
// created under a disposed owner are disposed right away.
func (o *Owner) own(d disposable) {
	if o.disposed {
		d.Dispose()
		return
	}
	o.owned = append(o.owned, d)
}

// removeChild removes a child Owner from this Owner's children.
func (o *Owner) removeChild(child *Owner) {
	for i, c := range o.children {
		if c == child {
			o.children = append(o.children[:i], o.children[i+1:]...)
			return
		}
	}
}

// OnCleanup registers a cleanup function to run when this Owner is disposed.
// On a disposed owner the function runs immediately.
func (o *Owner) OnCleanup(fn func()) {
	if o.disposed {
		fn()
		return
	}
	o.cleanups = append(o.cleanups, fn)
}

// Defer queues fn until RunPending is called on this owner or an ancestor.
// The tree builder uses it to run mount effects after nodes are attached.
func (o *Owner) Defer(fn func()) {
	if o.disposed {
		return
	}
	o.pending = append(o.pending, fn)
}

// RunPending runs deferred work of this owner, then of its children, in
// creation order. Work deferred while running is picked up as well.
func (o *Owner) RunPending() {
	if o.disposed {
		return
	}
	for len(o.pending) > 0 {
		pending := o.pending
		o.pending = nil
		for _, fn := range pending {
			if o.disposed {
				return
			}
			fn()
		}
	}

	children := make([]*Owner, len(o.children))
	copy(children, o.children)
	for _, child := range children {
		child.RunPending()
	}
}

// HasPending returns true if this owner or any child has deferred work.
func (o *Owner) HasPending() bool {
	if o.disposed {
		return false
	}
	if len(o.pending) > 0 {
		return true
	}
	for _, child := range o.children {
		if child.HasPending() {
			return true
		}
	}
	return false
}

// Dispose disposes this Owner and all its children, primitives and cleanups.
// Children are disposed in reverse order (last created first), then owned
// primitives, then cleanups in reverse registration order.
func (o *Owner) Dispose() {
	if o.disposed {
		return
	}
	o.disposed = true

	if o.parent != nil {
		o.parent.removeChild(o)
	}

	children := o.children
	o.children = nil
	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}

	owned := o.owned
	o.owned = nil
	for i := len(owned) - 1; i >= 0; i-- {
		owned[i].Dispose()
	}

	cleanups := o.cleanups
	o.cleanups = nil
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}

	o.pending = nil
	o.values = nil
}

// SetValue sets a context value on this Owner.
func (o *Owner) SetValue(key, value any) {
	if o.disposed {
		return
	}
	if o.values == nil {
		o.values = make(map[any]any)
	}
	o.values[key] = value
}

// Lookup retrieves a value from this Owner or the nearest ancestor that has
// one.
func (o *Owner) Lookup(key any) (any, bool) {
	for cur := o; cur != nil; cur = cur.parent {
		if cur.values == nil {
			continue
		}
		if v, ok := cur.values[key]; ok {
			return v, true
		}
	}
	return nil, false
}

// GetValue is Lookup without the presence flag.
func (o *Owner) GetValue(key any) any {
	v, _ := o.Lookup(key)
	return v
}
