package woby

import (
	"github.com/woby-dev/woby/pkg/dom"
	"github.com/woby-dev/woby/pkg/reactive"
)

// UseEffect creates an effect once the component's nodes exist, have their
// props and are inserted. Its cleanup runs when the component is disposed,
// before the nodes are removed.
func UseEffect(c *Ctx, fn func() reactive.Cleanup) {
	owner := c.owner
	b := c.b
	owner.Defer(func() {
		b.rt.WithOwner(owner, func() {
			_, err := reactive.NewEffect(b.rt, fn, reactive.EffectName("UseEffect"))
			if err != nil && b.deferredErr == nil {
				b.deferredErr = err
			}
		})
	})
}

// OnMount runs fn once after the component is inserted. fn is not tracked.
func OnMount(c *Ctx, fn func()) {
	rt := c.b.rt
	UseEffect(c, func() reactive.Cleanup {
		rt.Untrack(fn)
		return nil
	})
}

// OnCleanup runs fn when the component is disposed.
func OnCleanup(c *Ctx, fn func()) {
	c.owner.OnCleanup(fn)
}

// MountedContext is a context read that waits for a node to be attached.
type MountedContext[T any] struct {
	// Ref must be passed to the element the context is resolved from.
	Ref *reactive.Ref[*dom.Element]

	// Context reads the default until Ref is attached, then the binding
	// visible from the attached node.
	Context reactive.Accessor[T]

	// Resolved reports whether Context reads a real binding.
	Resolved reactive.Accessor[bool]
}

type resolution[T any] struct {
	value T
	ok    bool
}

// UseMountedContext resolves ctx through the DOM ancestry of a node once
// it is attached. Nested custom elements use it to reach Providers that
// are only published when their host upgrades.
func UseMountedContext[T any](c *Ctx, ctx *Context[T]) MountedContext[T] {
	rt := c.b.rt
	var mc MountedContext[T]
	rt.WithOwner(c.owner, func() {
		ref := reactive.NewRef[*dom.Element](rt)
		res := reactive.NewMemo(rt, func() resolution[T] {
			n := ref.Get()
			if n == nil {
				return resolution[T]{value: ctx.def}
			}
			if acc, ok := ctx.lookupFrom(OwnerOf(n)); ok {
				return resolution[T]{value: acc.Get(), ok: true}
			}
			return resolution[T]{value: ctx.def}
		})
		mc = MountedContext[T]{
			Ref:      ref,
			Context:  reactive.FromFunc(rt, func() T { return res.Get().value }),
			Resolved: reactive.FromFunc(rt, func() bool { return res.Get().ok }),
		}
	})
	return mc
}
