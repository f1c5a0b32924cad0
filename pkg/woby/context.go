package woby

import (
	"fmt"

	"github.com/woby-dev/woby/pkg/dom"
	"github.com/woby-dev/woby/pkg/reactive"
)

// contextKey gives each Context a unique identity.
type contextKey struct {
	name string
}

// Context is a tree-scoped value. A Provider binds an accessor for its
// subtree; consumers resolve the nearest binding above them.
type Context[T any] struct {
	key *contextKey
	def T
}

// CreateContext creates a context whose consumers without a Provider read
// defaultValue.
func CreateContext[T any](defaultValue T) *Context[T] {
	return &Context[T]{
		key: &contextKey{name: fmt.Sprintf("Context[%T]", defaultValue)},
		def: defaultValue,
	}
}

// Default returns the default value.
func (ctx *Context[T]) Default() T {
	return ctx.def
}

// Provider binds value for the children. The binding lives on the
// provider's owner and disappears with it; consumers that already captured
// the accessor keep it.
func (ctx *Context[T]) Provider(value reactive.Accessor[T], children ...any) *VNode {
	def := &ComponentDef{
		name: ctx.key.name + ".Provider",
		render: func(c *Ctx, props Props) any {
			if value != nil {
				c.owner.SetValue(ctx.key, value)
			}
			return props.Children()
		},
	}
	return def.New(nil, children...)
}

// Use returns the nearest bound accessor, or a constant accessor over the
// default.
func (ctx *Context[T]) Use(c *Ctx) reactive.Accessor[T] {
	if acc, ok := ctx.Lookup(c); ok {
		return acc
	}
	return reactive.Static(ctx.def)
}

// Lookup returns the nearest bound accessor and whether one was found.
func (ctx *Context[T]) Lookup(c *Ctx) (reactive.Accessor[T], bool) {
	return ctx.lookupFrom(c.owner)
}

// Require is Lookup returning ErrMissingContext when nothing is bound.
func (ctx *Context[T]) Require(c *Ctx) (reactive.Accessor[T], error) {
	acc, ok := ctx.Lookup(c)
	if !ok {
		return nil, ErrMissingContext.Detailf("no provider for %s", ctx.key.name)
	}
	return acc, nil
}

func (ctx *Context[T]) lookupFrom(o *reactive.Owner) (reactive.Accessor[T], bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.Lookup(ctx.key)
	if !ok {
		return nil, false
	}
	acc, ok := v.(reactive.Accessor[T])
	return acc, ok
}

// ownerStamp is the node data key under which nodes record the owner they
// were built under.
type ownerStamp struct{}

func stamp(n dom.Node, o *reactive.Owner) {
	if o != nil {
		n.Store(ownerStamp{}, o)
	}
}

// Publish records o on n, so contexts resolved from n and the nodes below it
// go through o.
func Publish(n dom.Node, o *reactive.Owner) {
	stamp(n, o)
}

// OwnerOf returns the owner nodes at n resolve contexts through: the
// nearest live owner recorded on n or one of its ancestors.
func OwnerOf(n dom.Node) *reactive.Owner {
	for cur := n; cur != nil; {
		if v, ok := cur.Load(ownerStamp{}); ok {
			if o, ok := v.(*reactive.Owner); ok && !o.Disposed() {
				return o
			}
		}
		p := cur.Parent()
		if p == nil {
			return nil
		}
		cur = p
	}
	return nil
}
