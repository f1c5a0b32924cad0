package el

import (
	"github.com/woby-dev/woby/pkg/reactive"
	"github.com/woby-dev/woby/pkg/woby"
)

// Text creates a static text node.
func Text(content string) *VNode { return woby.Text(content) }

// Textf creates a static formatted text node.
func Textf(format string, args ...any) *VNode { return woby.Textf(format, args...) }

// Fragment groups children without a wrapper element.
func Fragment(children ...any) *VNode { return woby.Fragment(children...) }

// Dynamic rebuilds the output of fn whenever a signal it read changes.
func Dynamic(fn func() any) *VNode { return woby.Dynamic(fn) }

// Nothing renders nothing.
func Nothing() *VNode { return nil }

// If returns node if condition is true, nil otherwise. The condition is
// evaluated once; use Show for a reactive condition.
func If(condition bool, node any) any {
	if condition {
		return node
	}
	return nil
}

// IfElse returns ifTrue or ifFalse.
func IfElse(condition bool, ifTrue, ifFalse any) any {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// Show renders node while when is true. when is a bool, an accessor or a
// func() bool.
func Show(when any, node any) *VNode {
	return ShowElse(when, node, nil)
}

// ShowElse renders node while when is true and fallback otherwise.
func ShowElse(when any, node, fallback any) *VNode {
	return woby.Dynamic(func() any {
		if truth(when) {
			return node
		}
		return fallback
	})
}

func truth(v any) bool {
	if fn, ok := v.(func() bool); ok {
		return fn()
	}
	b, _ := reactive.Read(v).(bool)
	return b
}

// Case pairs a value with the output Switch renders for it.
type Case[T comparable] struct {
	Value     T
	Node      any
	isDefault bool
}

// When creates a Switch case.
func When[T comparable](value T, node any) Case[T] {
	return Case[T]{Value: value, Node: node}
}

// Default creates the Switch case used when no other case matches.
func Default[T comparable](node any) Case[T] {
	return Case[T]{Node: node, isDefault: true}
}

// Switch renders the first case matching value. value is read reactively.
func Switch[T comparable](value reactive.Accessor[T], cases ...Case[T]) *VNode {
	return woby.Dynamic(func() any {
		v := value.Get()
		var fallback any
		for _, c := range cases {
			if c.isDefault {
				fallback = c.Node
				continue
			}
			if c.Value == v {
				return c.Node
			}
		}
		return fallback
	})
}

// Range maps a static slice to nodes.
func Range[T any](items []T, fn func(item T, index int) any) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = fn(item, i)
	}
	return out
}

// Repeat calls fn n times.
func Repeat(n int, fn func(i int) any) []any {
	out := make([]any, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, fn(i))
	}
	return out
}

// For renders a list held by an accessor, rebuilding it when the list
// changes. Rows are not keyed.
func For[T any](items reactive.Accessor[[]T], fn func(item T, index int) any) *VNode {
	return woby.Dynamic(func() any {
		return Range(items.Get(), fn)
	})
}
