package woby

import (
	"log/slog"

	"github.com/woby-dev/woby/pkg/dom"
	"github.com/woby-dev/woby/pkg/reactive"
)

// Component renders its output once per mount. The returned value is
// anything Normalize accepts; returning an error fails the mount.
type Component func(c *Ctx, props Props) any

// ComponentDef is a named component with optional defaults.
type ComponentDef struct {
	name     string
	defaults func() Props
	render   Component
}

// Define creates a component definition. defaults is called once per mount,
// inside the mount's owner, and overlaid with the explicit props using
// MergeProps.
func Define(name string, defaults func() Props, render Component) *ComponentDef {
	return &ComponentDef{name: name, defaults: defaults, render: render}
}

// Name returns the component name.
func (d *ComponentDef) Name() string {
	if d.name == "" {
		return "anonymous"
	}
	return d.name
}

// Defaults computes a fresh default prop bag.
func (d *ComponentDef) Defaults() Props {
	if d.defaults == nil {
		return Props{}
	}
	return d.defaults()
}

// Props computes the prop bag of one mount.
func (d *ComponentDef) Props(explicit Props) Props {
	return MergeProps(d.Defaults(), explicit)
}

// New describes a mount of the component. Children are passed as the
// "children" prop.
func (d *ComponentDef) New(props Props, children ...any) *VNode {
	p := make(Props, len(props)+1)
	for k, v := range props {
		p[k] = v
	}
	if len(children) > 0 {
		p["children"] = Normalize(children...)
	}
	return &VNode{Kind: KindComponent, Def: d, Props: p}
}

// Render runs the component body with already merged props.
func (d *ComponentDef) Render(c *Ctx, props Props) any {
	return d.render(c, props)
}

// C describes a mount of an anonymous component.
func C(comp Component, props Props, children ...any) *VNode {
	return (&ComponentDef{render: comp}).New(props, children...)
}

// call merges props and runs the body, converting panics and returned
// errors into errors.
func (d *ComponentDef) call(c *Ctx, explicit Props) (out any, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = ErrComponentPanic.Wrap(e)
				return
			}
			err = ErrComponentPanic.Detailf("%v", r)
		}
	}()
	out = d.render(c, d.Props(explicit))
	if e, ok := out.(error); ok {
		return nil, e
	}
	return out, nil
}

// Ctx is passed to component bodies. It carries the runtime and the owner
// the component's primitives belong to.
type Ctx struct {
	b     *builder
	owner *reactive.Owner
	host  *dom.Element
}

// Runtime returns the reactive runtime.
func (c *Ctx) Runtime() *reactive.Runtime { return c.b.rt }

// Document returns the document nodes are created in.
func (c *Ctx) Document() *dom.Document { return c.b.doc }

// Owner returns the owner of the current component.
func (c *Ctx) Owner() *reactive.Owner { return c.owner }

// Host returns the custom element the tree is mounted in, or nil.
func (c *Ctx) Host() *dom.Element { return c.host }

// Logger returns the runtime logger.
func (c *Ctx) Logger() *slog.Logger { return c.b.rt.Logger() }

func (c *Ctx) with(owner *reactive.Owner) *Ctx {
	return &Ctx{b: c.b, owner: owner, host: c.host}
}
