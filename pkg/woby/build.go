package woby

import (
	"fmt"

	"github.com/woby-dev/woby/pkg/dom"
	"github.com/woby-dev/woby/pkg/reactive"
)

// builder turns VNodes into detached DOM nodes. Callers insert the result.
type builder struct {
	rt  *reactive.Runtime
	doc *dom.Document

	// deferredErr holds the first error of deferred mount work.
	deferredErr error
}

func (b *builder) build(c *Ctx, v *VNode) ([]dom.Node, error) {
	if v == nil {
		return nil, nil
	}
	switch v.Kind {
	case KindText:
		return []dom.Node{b.doc.CreateTextNode(v.Text)}, nil
	case KindElement:
		el, err := b.buildElement(c, v)
		if err != nil {
			return nil, err
		}
		return []dom.Node{el}, nil
	case KindFragment:
		return b.buildChildren(c, v.Children)
	case KindComponent:
		return b.buildComponent(c, v)
	case KindDynamic:
		return b.buildDynamic(c, v.Fn)
	case KindBound:
		return b.buildBound(c, v.Value)
	case KindAdopted:
		if v.Host != nil {
			Publish(v.Host, c.owner)
		}
		nodes := make([]dom.Node, 0, len(v.Nodes))
		for _, n := range v.Nodes {
			if n == nil {
				continue
			}
			stamp(n, c.owner)
			nodes = append(nodes, n)
		}
		return nodes, nil
	case KindBoundary:
		return b.buildBoundary(c, v)
	case kindCatch:
		return b.buildCatch(c, v)
	case kindError:
		return nil, v.err
	}
	return nil, fmt.Errorf("woby: cannot build %s node", v.Kind)
}

func (b *builder) buildChildren(c *Ctx, children []*VNode) ([]dom.Node, error) {
	var out []dom.Node
	for _, child := range children {
		nodes, err := b.build(c, child)
		if err != nil {
			return nil, err
		}
		out = append(out, nodes...)
	}
	return out, nil
}

// buildElement creates the element, applies its props and appends its
// children, in that order.
func (b *builder) buildElement(c *Ctx, v *VNode) (*dom.Element, error) {
	el := b.doc.CreateElement(v.Tag)
	stamp(el, c.owner)
	if err := b.applyProps(c, el, v.Props); err != nil {
		return nil, err
	}
	nodes, err := b.buildChildren(c, v.Children)
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		if err := el.AppendChild(n); err != nil {
			return nil, err
		}
	}
	return el, nil
}

// buildComponent mounts a component under a fresh owner. On failure the
// owner is disposed and nothing is returned.
func (b *builder) buildComponent(c *Ctx, v *VNode) (nodes []dom.Node, err error) {
	def := v.Def
	owner := reactive.NewOwner(c.owner)
	cc := c.with(owner)

	b.rt.WithOwner(owner, func() {
		b.rt.Untrack(func() {
			var out any
			out, err = def.call(cc, v.Props)
			if err == nil {
				nodes, err = b.build(cc, toVNode(out))
			}
		})
	})
	if err != nil {
		owner.Dispose()
		return nil, fmt.Errorf("%s: %w", def.Name(), err)
	}
	return nodes, nil
}

// buildBound renders an accessor as a text node rewritten on every change.
// Accessors holding node descriptions fall back to a dynamic range.
func (b *builder) buildBound(c *Ctx, acc any) ([]dom.Node, error) {
	current := reactive.Untracked(b.rt, func() any { return reactive.Read(acc) })
	if isNodeValue(current) {
		return b.buildDynamic(c, func() any { return reactive.Read(acc) })
	}

	t := b.doc.CreateTextNode("")
	var err error
	b.rt.WithOwner(c.owner, func() {
		_, err = reactive.NewEffect(b.rt, func() reactive.Cleanup {
			t.SetData(formatText(reactive.Read(acc)))
			return nil
		}, reactive.EffectName("text"))
	})
	if err != nil {
		return nil, err
	}
	return []dom.Node{t}, nil
}

func isNodeValue(v any) bool {
	switch v.(type) {
	case *VNode, []*VNode, []any, dom.Node, []dom.Node, Component, *ComponentDef, func() any:
		return true
	}
	return false
}

// dynRange is the live range between two marker comments.
type dynRange struct {
	start *dom.Comment
	end   *dom.Comment
	nodes []dom.Node
}

// buildDynamic renders fn inside an effect. The first run's nodes are
// returned between the markers; later runs replace the nodes in place.
// Each run builds under the effect's run scope, which the effect disposes
// before the next run.
func (b *builder) buildDynamic(c *Ctx, fn func() any) ([]dom.Node, error) {
	r := &dynRange{
		start: b.doc.CreateComment(""),
		end:   b.doc.CreateComment(""),
	}
	first := true
	var firstErr error

	var err error
	b.rt.WithOwner(c.owner, func() {
		_, err = reactive.NewEffect(b.rt, func() reactive.Cleanup {
			value, buildErr := callThunk(fn)
			scope := c.with(b.rt.Owner())
			var nodes []dom.Node
			if buildErr == nil {
				b.rt.Untrack(func() {
					nodes, buildErr = b.build(scope, toVNode(value))
				})
			}
			if first {
				first = false
				r.nodes, firstErr = nodes, buildErr
				return nil
			}
			b.rt.Untrack(func() {
				b.replace(scope, r, nodes, buildErr)
			})
			return nil
		}, reactive.EffectName("dynamic"))
	})
	if err == nil {
		err = firstErr
	}
	if err != nil {
		return nil, err
	}

	out := make([]dom.Node, 0, len(r.nodes)+2)
	out = append(out, r.start)
	out = append(out, r.nodes...)
	out = append(out, r.end)
	return out, nil
}

// replace swaps the nodes of a range and runs the deferred work of the new
// scope. Build errors leave the range empty and are reported.
func (b *builder) replace(c *Ctx, r *dynRange, nodes []dom.Node, err error) {
	parent := r.end.Parent()
	for _, n := range r.nodes {
		if parent != nil && n.Parent() == parent {
			dom.Remove(n)
		}
	}
	r.nodes = nil

	if err != nil {
		b.fail(c.owner, err)
		return
	}
	r.nodes = nodes
	if parent == nil {
		return
	}
	for _, n := range nodes {
		if err := parent.InsertBefore(n, r.end); err != nil {
			b.fail(c.owner, err)
			return
		}
	}
	b.runPending(c.owner)
	if err := b.takeDeferredErr(); err != nil {
		b.fail(c.owner, err)
	}
}

func callThunk(fn func() any) (v any, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = ErrComponentPanic.Wrap(e)
				return
			}
			err = ErrComponentPanic.Detailf("%v", r)
		}
	}()
	return fn(), nil
}

// runPending runs deferred mount work of owner and its descendants.
func (b *builder) runPending(owner *reactive.Owner) {
	b.rt.Untrack(owner.RunPending)
}

func (b *builder) takeDeferredErr() error {
	err := b.deferredErr
	b.deferredErr = nil
	return err
}

// fail reports an error raised after the initial build, when there is no
// caller left to return it to: the nearest error boundary switches to its
// fallback, otherwise the error is logged.
func (b *builder) fail(owner *reactive.Owner, err error) {
	if owner != nil {
		if v, ok := owner.Lookup(boundaryKey{}); ok {
			if failed, ok := v.(*reactive.Signal[error]); ok && !failed.Disposed() {
				if setErr := failed.Set(err); setErr == nil {
					return
				}
			}
		}
	}
	b.rt.Logger().Error("render failed", "error", err)
}
