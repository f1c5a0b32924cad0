package element

import (
	"errors"
	"sort"

	"github.com/woby-dev/woby/pkg/dom"
	"github.com/woby-dev/woby/pkg/reactive"
	"github.com/woby-dev/woby/pkg/woby"
)

// State is the lifecycle state of a custom element.
type State uint8

const (
	Unattached State = iota // Not upgraded, or unmounted and released
	Upgraded                // Props built, component not rendered
	Mounted                 // Component rendered into the element
	Unmounted               // Torn down; the next access upgrades again
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Unattached:
		return "Unattached"
	case Upgraded:
		return "Upgraded"
	case Mounted:
		return "Mounted"
	case Unmounted:
		return "Unmounted"
	default:
		return "Unknown"
	}
}

// written is the attribute state last produced by mirroring.
type written struct {
	value   string
	present bool
}

func (w written) matches(raw *string) bool {
	if raw == nil {
		return !w.present
	}
	return w.present && w.value == *raw
}

// instance binds one element to one component mount.
type instance struct {
	reg   *Registry
	def   *definition
	host  *dom.Element
	state State

	// owner owns the prop signals and the mirroring effects.
	owner   *reactive.Owner
	props   woby.Props
	signals map[string]reactive.AnySignal
	initial map[string]any

	written      map[string]written
	fromProperty map[string]bool

	light  []dom.Node
	parent *reactive.Owner
	root   *woby.Root
}

func newInstance(r *Registry, d *definition, host *dom.Element) *instance {
	return &instance{
		reg:          r,
		def:          d,
		host:         host,
		owner:        reactive.NewOwner(nil),
		props:        make(woby.Props),
		signals:      make(map[string]reactive.AnySignal),
		initial:      make(map[string]any),
		written:      make(map[string]written),
		fromProperty: make(map[string]bool),
	}
}

// upgrade builds the prop bag: defaults, then observed attributes, then
// buffered properties. Mirroring starts once the bag is complete.
func (inst *instance) upgrade() {
	rt := inst.reg.rt
	rt.Untrack(func() {
		rt.WithOwner(inst.owner, func() {
			defaults := inst.def.comp.Defaults()
			for _, k := range defaults.Keys() {
				inst.adopt(k, defaults[k])
			}
			for _, name := range inst.def.exact {
				inst.signal(name)
			}
		})

		err := rt.Batch(func() {
			for _, a := range inst.host.Attributes() {
				prop, path, ok := inst.def.match(a.Name)
				if !ok {
					continue
				}
				v := a.Value
				inst.writeAttr(a.Name, prop, path, &v)
			}
			buffered := inst.host.BufferedProperties()
			names := make([]string, 0, len(buffered))
			for name := range buffered {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				inst.host.DeleteProperty(name)
				inst.setProperty(name, buffered[name])
			}
		})
		inst.reg.report("upgrade flush failed", inst.def.tag, err)

		inst.mirror()
	})
	inst.state = Upgraded
	inst.reg.logger.Debug("custom element upgraded", "tag", inst.def.tag, "node", inst.host.ID())
}

// adopt adds a default to the bag. Signals are used as they are, functions
// and other accessors are passed through read-only, and plain values are
// wrapped in a signal.
func (inst *instance) adopt(name string, v any) {
	if sig, ok := v.(reactive.AnySignal); ok {
		inst.signals[name] = sig
		inst.initial[name] = sig.PeekAny()
		inst.props[name] = sig
		return
	}
	if v == woby.UseDefault || isFunc(v) || reactive.IsAccessor(v) {
		inst.props[name] = v
		return
	}
	sig := reactive.NewSignal[any](inst.reg.rt, v, reactive.WithName(name))
	inst.signals[name] = sig
	inst.initial[name] = v
	inst.props[name] = sig
}

// signal returns the signal behind a prop, creating an untyped one for
// props the defaults do not declare. Read-only props have no signal.
func (inst *instance) signal(name string) (reactive.AnySignal, bool) {
	if sig, ok := inst.signals[name]; ok {
		return sig, true
	}
	if _, ok := inst.props[name]; ok {
		return nil, false
	}
	var sig *reactive.Signal[any]
	inst.reg.rt.WithOwner(inst.owner, func() {
		sig = reactive.NewSignal[any](inst.reg.rt, nil, reactive.WithName(name))
	})
	inst.signals[name] = sig
	inst.props[name] = sig
	return sig, true
}

// writeAttr decodes an attribute value into its prop. Removing an attribute
// restores the default, except for booleans, which become false.
func (inst *instance) writeAttr(attr, prop string, path []string, raw *string) {
	sig, ok := inst.signal(prop)
	if !ok {
		inst.reg.logger.Warn("attribute targets a read-only prop", "tag", inst.def.tag, "attribute", attr)
		return
	}
	hint := sig.TypeHint()
	v, err := DecodeAttribute(hint, raw)
	if err != nil {
		inst.reg.decodeFailed(inst.def.tag, attr, err)
		return
	}
	switch {
	case len(path) > 0:
		m, _ := sig.PeekAny().(map[string]any)
		v = setPath(m, path, v)
	case raw == nil && hint != reactive.TypeBoolean:
		v = inst.initial[prop]
	}
	if err := sig.SetAny(v); err != nil {
		if errors.Is(err, reactive.ErrTypeMismatch) {
			inst.reg.decodeFailed(inst.def.tag, attr, err)
			return
		}
		inst.reg.report("attribute write failed", inst.def.tag, err)
	}
}

// attributeChanged handles a mutation after upgrade. Mutations that echo
// the last mirrored value are ignored.
func (inst *instance) attributeChanged(attr, prop string, path []string, raw *string) {
	if w, ok := inst.written[attr]; ok && w.matches(raw) {
		return
	}
	delete(inst.written, attr)
	inst.reg.rt.Untrack(func() {
		inst.writeAttr(attr, prop, path, raw)
	})
}

// mirror reflects primitive props observed under a literal name to their
// attribute.
func (inst *instance) mirror() {
	rt := inst.reg.rt
	for _, name := range inst.def.exact {
		sig, ok := inst.signals[name]
		if !ok || !primitiveKind(sig.Kind()) {
			continue
		}
		attr := name
		rt.WithOwner(inst.owner, func() {
			_, err := reactive.NewEffect(rt, func() reactive.Cleanup {
				v := sig.GetAny()
				rt.Untrack(func() { inst.reflect(attr, sig.TypeHint(), v) })
				return nil
			}, reactive.EffectName("mirror:"+attr))
			inst.reg.report("mirror failed", inst.def.tag, err)
		})
	}
}

// reflect writes v to attr unless the attribute already holds it, and
// records the write so the echoed mutation is ignored.
func (inst *instance) reflect(attr string, hint reactive.TypeHint, v any) {
	if !isPrimitive(v) {
		return
	}
	want, present := EncodeAttribute(v)
	cur, has := inst.host.GetAttribute(attr)
	if has == present && (!present || canonical(hint, cur) == want) {
		return
	}
	inst.written[attr] = written{value: want, present: present}
	if present {
		inst.host.SetAttribute(attr, want)
	} else {
		inst.host.RemoveAttribute(attr)
	}
}

func (inst *instance) setProperty(name string, v any) {
	inst.fromProperty[name] = true
	sig, ok := inst.signal(name)
	if !ok {
		inst.reg.logger.Warn("property targets a read-only prop", "tag", inst.def.tag, "property", name)
		return
	}
	if err := sig.SetAny(v); err != nil {
		inst.reg.report("property write failed", inst.def.tag, err)
	}
}

func (inst *instance) property(name string) (any, bool) {
	if sig, ok := inst.signals[name]; ok {
		return sig.PeekAny(), true
	}
	v, ok := inst.props[name]
	return v, ok
}

// mount renders the component into the host. Light-DOM children are moved
// into the "children" prop as a slot; the host then resolves contexts
// through the owner the slot was built under.
func (inst *instance) mount() {
	host := inst.host
	inst.light = host.Children()
	for _, n := range inst.light {
		dom.Remove(n)
	}

	props := make(woby.Props, len(inst.props)+1)
	for k, v := range inst.props {
		props[k] = v
	}
	props["children"] = woby.Slot(host, inst.light...)

	// Defaults were computed at upgrade; the mount renders with the bag.
	comp := woby.Define(inst.def.comp.Name(), nil, inst.def.comp.Render)
	inst.parent = woby.OwnerOf(host)
	root, err := woby.Mount(inst.reg.rt, comp.New(props), host,
		woby.WithParent(inst.parent),
		woby.WithHost(host),
	)
	if err != nil {
		inst.reg.report("custom element mount failed", inst.def.tag, err)
		inst.restoreLight()
		return
	}
	inst.root = root
	inst.state = Mounted
	inst.reg.logger.Debug("custom element mounted", "tag", inst.def.tag, "node", host.ID())
}

// unmount disposes the mount and the prop signals. Properties set directly
// are buffered back on the element for the next upgrade.
func (inst *instance) unmount() {
	for name := range inst.fromProperty {
		if sig, ok := inst.signals[name]; ok {
			inst.host.BufferProperty(name, sig.PeekAny())
		}
	}
	inst.root.Dispose()
	inst.root = nil
	inst.restoreLight()
	if inst.parent != nil && !inst.parent.Disposed() {
		woby.Publish(inst.host, inst.parent)
	}
	inst.owner.Dispose()
	inst.state = Unmounted
	inst.reg.logger.Debug("custom element unmounted", "tag", inst.def.tag, "node", inst.host.ID())
}

func (inst *instance) restoreLight() {
	for _, n := range inst.light {
		if n.Parent() != inst.host && !n.IsConnected() {
			if err := inst.host.AppendChild(n); err != nil {
				inst.reg.report("restoring children failed", inst.def.tag, err)
			}
		}
	}
	inst.light = nil
}

func isFunc(v any) bool {
	switch v.(type) {
	case func(), func(*dom.Event):
		return true
	}
	return false
}
