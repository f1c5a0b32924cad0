package element

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/woby-dev/woby/pkg/dom"
	"github.com/woby-dev/woby/pkg/reactive"
	"github.com/woby-dev/woby/pkg/woby"
)

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger for decode failures and mount errors.
// Defaults to the runtime logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// OnDecodeError registers a hook called for every attribute that fails to
// decode, after the failure is logged.
func OnDecodeError(fn func(tag, attr string, err error)) Option {
	return func(r *Registry) {
		r.onDecodeError = fn
	}
}

// Registry maps custom element tags to components. It implements
// dom.CustomElements.
//
// Instances are stored on their element, not in the registry, so an element
// upgraded while detached is released together with the element.
type Registry struct {
	rt            *reactive.Runtime
	logger        *slog.Logger
	onDecodeError func(tag, attr string, err error)

	defs map[string]*definition
}

// instanceKey is the node data key of the instance a registry attached to
// an element.
type instanceKey struct {
	reg *Registry
}

var _ dom.CustomElements = (*Registry)(nil)

// NewRegistry creates an empty registry bound to rt.
func NewRegistry(rt *reactive.Runtime, opts ...Option) *Registry {
	r := &Registry{
		rt:   rt,
		defs: make(map[string]*definition),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = rt.Logger()
	}
	return r
}

// definition is a registered tag.
type definition struct {
	tag       string
	comp      *woby.ComponentDef
	exact     []string
	wildcards []wildcard
}

// wildcard is an observed prefix such as "style-" and the prop it feeds.
type wildcard struct {
	prefix string
	prop   string
}

// Register defines tag as a custom element rendering def. observed lists the
// attributes bridged to props: literal names, or prefixes ending in "*".
func (r *Registry) Register(tag string, def *woby.ComponentDef, observed ...string) error {
	if !validName(tag) {
		return ErrInvalidElementName.Detailf("%q", tag).
			WithSuggestion("Custom element names are lowercase and contain a hyphen, e.g. \"my-counter\".")
	}
	if def == nil {
		return fmt.Errorf("element: nil component for %s", tag)
	}
	if _, ok := r.defs[tag]; ok {
		return ErrDuplicateElement.Detailf("%s is already defined", tag)
	}

	d := &definition{tag: tag, comp: def}
	seen := make(map[string]bool)
	for _, name := range observed {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		if prefix, ok := strings.CutSuffix(name, "*"); ok {
			prop := strings.TrimSuffix(prefix, "-")
			if prop == "" {
				return fmt.Errorf("element: invalid wildcard %q for %s", name, tag)
			}
			d.wildcards = append(d.wildcards, wildcard{prefix: prefix, prop: prop})
			continue
		}
		d.exact = append(d.exact, name)
	}
	sort.Strings(d.exact)
	sort.Slice(d.wildcards, func(i, j int) bool {
		return len(d.wildcards[i].prefix) > len(d.wildcards[j].prefix)
	})

	r.defs[tag] = d
	r.logger.Debug("custom element defined", "tag", tag, "component", def.Name())
	return nil
}

// Define is Register under the browser's name.
func (r *Registry) Define(tag string, def *woby.ComponentDef, observed ...string) error {
	return r.Register(tag, def, observed...)
}

// Tags returns the registered tags in sorted order.
func (r *Registry) Tags() []string {
	tags := make([]string, 0, len(r.defs))
	for t := range r.defs {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

func validName(tag string) bool {
	if tag == "" || tag[0] < 'a' || tag[0] > 'z' || !strings.Contains(tag, "-") {
		return false
	}
	for _, c := range tag {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '-', c == '.', c == '_':
		default:
			return false
		}
	}
	return true
}

// match resolves an attribute to the prop it writes and, for wildcards, the
// key path inside that prop.
func (d *definition) match(attr string) (prop string, path []string, ok bool) {
	i := sort.SearchStrings(d.exact, attr)
	if i < len(d.exact) && d.exact[i] == attr {
		return attr, nil, true
	}
	for _, w := range d.wildcards {
		if p := KeyPath(attr, w.prefix); len(p) > 0 {
			return w.prop, p, true
		}
	}
	return "", nil, false
}

// Defined implements dom.CustomElements.
func (r *Registry) Defined(tag string) bool {
	_, ok := r.defs[tag]
	return ok
}

// State returns the lifecycle state of e.
func (r *Registry) State(e *dom.Element) State {
	if inst, ok := r.instance(e); ok {
		return inst.state
	}
	return Unattached
}

func (r *Registry) instance(e *dom.Element) (*instance, bool) {
	v, ok := e.Load(instanceKey{r})
	if !ok {
		return nil, false
	}
	inst, ok := v.(*instance)
	return inst, ok
}

// Upgrade upgrades e if it is a defined element that is not upgraded yet.
func (r *Registry) Upgrade(e *dom.Element) {
	r.ensure(e)
}

// ensure returns the live instance of e, upgrading it first when needed.
// fresh is true when this call performed the upgrade.
func (r *Registry) ensure(e *dom.Element) (inst *instance, fresh bool) {
	d, ok := r.defs[e.Tag()]
	if !ok {
		return nil, false
	}
	if inst, ok := r.instance(e); ok {
		return inst, false
	}
	inst = newInstance(r, d, e)
	e.Store(instanceKey{r}, inst)
	inst.upgrade()
	return inst, true
}

// Connected implements dom.CustomElements.
func (r *Registry) Connected(e *dom.Element) {
	if inst, _ := r.ensure(e); inst != nil && inst.state == Upgraded {
		inst.mount()
	}
}

// Disconnected implements dom.CustomElements.
func (r *Registry) Disconnected(e *dom.Element) {
	inst, ok := r.instance(e)
	if !ok || inst.state != Mounted {
		return
	}
	inst.unmount()
	e.Delete(instanceKey{r})
}

// AttributeChanged implements dom.CustomElements. Attributes that match no
// observed name are ignored and do not upgrade the element.
func (r *Registry) AttributeChanged(e *dom.Element, name string, _, newValue *string) {
	d, ok := r.defs[e.Tag()]
	if !ok {
		return
	}
	prop, path, ok := d.match(name)
	if !ok {
		return
	}
	inst, fresh := r.ensure(e)
	if fresh {
		return
	}
	inst.attributeChanged(name, prop, path, newValue)
}

// SetProperty implements dom.CustomElements.
func (r *Registry) SetProperty(e *dom.Element, name string, value any) bool {
	inst, _ := r.ensure(e)
	if inst == nil {
		return false
	}
	inst.setProperty(name, value)
	return true
}

// Property implements dom.CustomElements.
func (r *Registry) Property(e *dom.Element, name string) (any, bool) {
	inst, _ := r.ensure(e)
	if inst == nil {
		return nil, false
	}
	return inst.property(name)
}

// GetProperty reads a prop of an upgraded element, upgrading it if needed.
func (r *Registry) GetProperty(e *dom.Element, name string) (any, bool) {
	return r.Property(e, name)
}

// Props returns a copy of the prop bag of e, or nil if e is not upgraded.
func (r *Registry) Props(e *dom.Element) woby.Props {
	inst, ok := r.instance(e)
	if !ok {
		return nil
	}
	out := make(woby.Props, len(inst.props))
	for k, v := range inst.props {
		out[k] = v
	}
	return out
}

func (r *Registry) decodeFailed(tag, attr string, err error) {
	if !errors.Is(err, ErrInvalidAttributeDecode) {
		err = ErrInvalidAttributeDecode.Wrap(err)
	}
	r.logger.Warn("attribute decode failed", "tag", tag, "attribute", attr, "error", err)
	if r.onDecodeError != nil {
		r.onDecodeError(tag, attr, err)
	}
}

func (r *Registry) report(msg string, tag string, err error) {
	if err != nil {
		r.logger.Error(msg, "tag", tag, "error", err)
	}
}
