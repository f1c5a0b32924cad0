package woby

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/woby-dev/woby/pkg/dom"
	"github.com/woby-dev/woby/pkg/reactive"
)

// applyProps binds props to el in sorted key order.
//
//   - "children" and "key" are ignored
//   - "ref" takes a *reactive.Ref[*dom.Element] or a func(*dom.Element)
//   - "on*" props holding func() or func(*dom.Event), directly or through an
//     accessor, become event listeners
//   - accessors and func() any values are bound with an effect
//   - everything else is applied once
func (b *builder) applyProps(c *Ctx, el *dom.Element, props Props) error {
	for _, k := range props.Keys() {
		v := props[k]
		switch {
		case k == "children" || k == "key":
			continue
		case k == "ref":
			if err := b.bindRef(c, el, v); err != nil {
				return err
			}
		case b.isEventProp(k, v):
			b.bindEvent(el, strings.ToLower(k[2:]), v)
		default:
			if err := b.bindAttr(c, el, k, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *builder) isEventProp(k string, v any) bool {
	if len(k) <= 2 || !strings.EqualFold(k[:2], "on") {
		return false
	}
	if isHandler(v) {
		return true
	}
	if reactive.IsAccessor(v) {
		return isHandler(reactive.Untracked(b.rt, func() any { return reactive.Read(v) }))
	}
	return false
}

func isHandler(v any) bool {
	switch v.(type) {
	case func(), func(*dom.Event):
		return true
	}
	return false
}

// bindEvent adds a listener that runs the handler in a batch. Accessor
// handlers are read at dispatch time.
func (b *builder) bindEvent(el *dom.Element, typ string, v any) {
	el.AddEventListener(typ, func(ev *dom.Event) {
		h := v
		if reactive.IsAccessor(v) {
			h = reactive.Untracked(b.rt, func() any { return reactive.Read(v) })
		}
		err := b.rt.Batch(func() {
			switch fn := h.(type) {
			case func():
				fn()
			case func(*dom.Event):
				fn(ev)
			}
		})
		if err != nil {
			b.rt.Logger().Error("event handler flush failed", "event", typ, "error", err)
		}
	})
}

// bindRef attaches ref on connect and resets it on disconnect or when the
// owner is disposed.
func (b *builder) bindRef(c *Ctx, el *dom.Element, v any) error {
	switch ref := v.(type) {
	case nil:
		return nil
	case *reactive.Ref[*dom.Element]:
		stopConnect := el.OnConnect(func(e *dom.Element) {
			if !ref.Disposed() {
				b.report(ref.Attach(e))
			}
		})
		stopDisconnect := el.OnDisconnect(func(*dom.Element) {
			if !ref.Disposed() {
				b.report(ref.Detach())
			}
		})
		c.owner.OnCleanup(func() {
			stopConnect()
			stopDisconnect()
			if !ref.Disposed() && ref.Peek() == el {
				b.report(ref.Detach())
			}
		})
	case func(*dom.Element):
		c.owner.OnCleanup(el.OnConnect(ref))
	default:
		return fmt.Errorf("woby: unsupported ref type %T", v)
	}
	return nil
}

func (b *builder) report(err error) {
	if err != nil {
		b.rt.Logger().Error("ref update failed", "error", err)
	}
}

// bindAttr applies a prop once, or with an effect when it is reactive.
func (b *builder) bindAttr(c *Ctx, el *dom.Element, name string, v any) error {
	if !isReactiveProp(name, v) {
		setProp(el, name, v)
		return nil
	}
	var err error
	b.rt.WithOwner(c.owner, func() {
		_, err = reactive.NewEffect(b.rt, func() reactive.Cleanup {
			setProp(el, name, resolve(v))
			return nil
		}, reactive.EffectName("attr:"+name))
	})
	return err
}

func isReactiveProp(name string, v any) bool {
	if _, ok := v.(func() any); ok {
		return true
	}
	if reactive.IsAccessor(v) {
		return true
	}
	if m, ok := v.(map[string]any); ok && (name == "class" || name == "className" || name == "style") {
		for _, x := range m {
			if reactive.IsAccessor(x) {
				return true
			}
		}
	}
	return false
}

func resolve(v any) any {
	if fn, ok := v.(func() any); ok {
		return fn()
	}
	return reactive.Read(v)
}

// setProp writes a resolved value: primitives become attributes, nil and
// false remove the attribute, true sets it empty and anything else is set
// as a property.
func setProp(el *dom.Element, name string, v any) {
	switch name {
	case "className", "class":
		name = "class"
		v = classValue(v)
	case "style":
		v = styleValue(v)
	}

	switch x := v.(type) {
	case nil:
		el.RemoveAttribute(name)
	case bool:
		if x {
			writeAttr(el, name, "")
		} else {
			el.RemoveAttribute(name)
		}
	default:
		if s, ok := primitiveString(v); ok {
			writeAttr(el, name, s)
			return
		}
		el.SetProperty(name, v)
	}
}

// writeAttr skips writes of the current value.
func writeAttr(el *dom.Element, name, value string) {
	if cur, ok := el.GetAttribute(name); ok && cur == value {
		return
	}
	el.SetAttribute(name, value)
}

// primitiveString formats strings and numbers, including named types.
func primitiveString(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case int:
		return strconv.Itoa(x), true
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64), true
	}
	return "", false
}

// formatText converts a child value to text. nil and bools render empty.
func formatText(v any) string {
	switch x := v.(type) {
	case nil, bool:
		return ""
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	}
	if s, ok := primitiveString(v); ok {
		return s
	}
	return fmt.Sprint(v)
}

// classValue accepts a string, a []string or a map of class name to a
// (possibly reactive) condition. Empty results remove the attribute.
func classValue(v any) any {
	var s string
	switch x := v.(type) {
	case nil:
		return nil
	case string:
		s = x
	case []string:
		s = strings.Join(compactStrings(x), " ")
	case map[string]bool:
		var names []string
		for k, on := range x {
			if on {
				names = append(names, k)
			}
		}
		sort.Strings(names)
		s = strings.Join(names, " ")
	case map[string]any:
		var names []string
		for k, cond := range x {
			if truthy(reactive.Read(cond)) {
				names = append(names, k)
			}
		}
		sort.Strings(names)
		s = strings.Join(names, " ")
	default:
		return v
	}
	if s == "" {
		return nil
	}
	return s
}

// styleValue accepts a string or a map of property to (possibly reactive)
// value, rendered in sorted order. Nested maps name hyphenated properties:
// {"font": {"size": "2em"}} renders as "font-size: 2em".
func styleValue(v any) any {
	m, ok := v.(map[string]any)
	if !ok {
		if s, ok := v.(string); ok && s == "" {
			return nil
		}
		return v
	}
	decls := make(map[string]string)
	flattenStyle("", m, decls)
	if len(decls) == 0 {
		return nil
	}
	keys := make([]string, 0, len(decls))
	for k := range decls {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + decls[k]
	}
	return strings.Join(parts, "; ")
}

func flattenStyle(prefix string, m map[string]any, out map[string]string) {
	for k, raw := range m {
		name := k
		if prefix != "" {
			name = prefix + "-" + k
		}
		val := reactive.Read(raw)
		if nested, ok := val.(map[string]any); ok {
			flattenStyle(name, nested, out)
			continue
		}
		if val == nil || val == false {
			continue
		}
		s, ok := primitiveString(val)
		if !ok {
			s = fmt.Sprint(val)
		}
		out[name] = s
	}
}

func compactStrings(in []string) []string {
	out := in[:0:0]
	for _, s := range in {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case int:
		return x != 0
	}
	return true
}
