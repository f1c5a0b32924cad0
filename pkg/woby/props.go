package woby

import (
	"sort"

	"github.com/woby-dev/woby/pkg/reactive"
)

// Props holds attributes, properties, event handlers and component inputs.
// Values may be plain or accessors.
type Props map[string]any

type useDefault struct{}

// UseDefault passed as an explicit prop value keeps the component default.
var UseDefault = useDefault{}

// MergeProps overlays explicit props on defaults and returns a new bag.
// Neither argument is modified. Explicit values equal to UseDefault are
// skipped, so the default (if any) is kept.
func MergeProps(defaults, explicit Props) Props {
	out := make(Props, len(defaults)+len(explicit))
	for k, v := range defaults {
		out[k] = v
	}
	for k, v := range explicit {
		if v == UseDefault {
			continue
		}
		out[k] = v
	}
	return out
}

// SplitProps separates the named props from the rest. The rest is meant to
// be forwarded verbatim to a native element with el.Spread.
func SplitProps(props Props, names ...string) (known, rest Props) {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	known = make(Props, len(names))
	rest = make(Props, len(props))
	for k, v := range props {
		if want[k] {
			known[k] = v
		} else {
			rest[k] = v
		}
	}
	return known, rest
}

// Keys returns the prop names in sorted order.
func (p Props) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Children returns the children prop.
func (p Props) Children() any {
	return p["children"]
}

// Prop reads a prop as an accessor of T whether it was passed as a plain
// value, an accessor or a getter. Missing or mismatched props read as the
// zero value.
func Prop[T any](props Props, name string) reactive.Accessor[T] {
	raw, ok := props[name]
	if !ok {
		var zero T
		return reactive.Static(zero)
	}
	switch v := raw.(type) {
	case reactive.Accessor[T]:
		return v
	case T:
		return reactive.Static(v)
	case func() T:
		return getter[T](v)
	}
	if reactive.IsAccessor(raw) {
		return getter[T](func() T {
			t, _ := reactive.ReadAs[T](raw)
			return t
		})
	}
	var zero T
	return reactive.Static(zero)
}

// getter adapts a function to reactive.Accessor. Peek runs the function too,
// so it only avoids tracking if the function does.
type getter[T any] func() T

func (g getter[T]) Get() T      { return g() }
func (g getter[T]) Peek() T     { return g() }
func (g getter[T]) GetAny() any { return g() }
