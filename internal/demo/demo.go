// Package demo holds the demo application served and rendered by the woby
// command: counters built three ways, a memo, and custom elements that
// share a context across element boundaries.
package demo

import (
	"strconv"

	"github.com/woby-dev/woby/el"
	"github.com/woby-dev/woby/pkg/dom"
	"github.com/woby-dev/woby/pkg/element"
	"github.com/woby-dev/woby/pkg/reactive"
	"github.com/woby-dev/woby/pkg/woby"
)

// Theme is provided by theme-provider and read by theme-label.
var Theme = woby.CreateContext("light")

// Hyperscript is the counter written with woby.H only.
func Hyperscript(c *woby.Ctx, _ woby.Props) any {
	value := reactive.NewSignal(c.Runtime(), 0)
	increment := func() { _ = value.Update(func(v int) int { return v + 1 }) }
	decrement := func() { _ = value.Update(func(v int) int { return v - 1 }) }

	return []any{
		woby.H("h1", nil, "Counter"),
		woby.H("p", nil, value),
		woby.H("button", woby.Props{"onClick": increment}, "+"),
		woby.H("button", woby.Props{"onClick": decrement}, "-"),
	}
}

// Counter returns the counter component. value defaults to a number signal;
// increment and decrement may be passed in, plain or as accessors of
// handlers, and otherwise step value.
func Counter(rt *reactive.Runtime) *woby.ComponentDef {
	return woby.Define("Counter",
		func() woby.Props {
			return woby.Props{
				"value":    reactive.NewSignal(rt, 0, reactive.WithType(reactive.TypeNumber), reactive.WithName("value")),
				"disabled": reactive.NewSignal(rt, false, reactive.WithType(reactive.TypeBoolean), reactive.WithName("disabled")),
			}
		},
		func(c *woby.Ctx, props woby.Props) any {
			value, _ := props["value"].(*reactive.Signal[int])
			if value == nil {
				value = reactive.NewSignal(c.Runtime(), 0)
			}
			increment := props["increment"]
			if increment == nil {
				increment = func() { _ = value.Update(func(v int) int { return v + 1 }) }
			}
			decrement := props["decrement"]
			if decrement == nil {
				decrement = func() { _ = value.Update(func(v int) int { return v - 1 }) }
			}

			return el.Fragment(
				el.H1("Counter"),
				el.P(value),
				el.Button(el.OnClick(increment), el.Disabled(props["disabled"]), "+"),
				el.Button(el.OnClick(decrement), el.Disabled(props["disabled"]), "-"),
			)
		},
	)
}

// MemoCounter owns its value and passes the handlers as signals, the way a
// parent hands observables to a child.
func MemoCounter(c *woby.Ctx, _ woby.Props) any {
	rt := c.Runtime()
	value := reactive.NewSignal(rt, 0)
	text := reactive.NewSignal(rt, "abc")
	label := reactive.NewMemo(rt, func() string {
		return strconv.Itoa(value.Get()) + text.Get()
	}, reactive.WithName("label"))

	increment := reactive.NewSignal(rt, func() { _ = value.Update(func(v int) int { return v + 1 }) })
	decrement := reactive.NewSignal(rt, func() { _ = value.Update(func(v int) int { return v - 1 }) })

	return el.Fragment(
		Counter(rt).New(woby.Props{"value": value, "increment": increment, "decrement": decrement}),
		el.P(el.Class("memo"), label),
	)
}

// ThemeProvider provides its theme prop to everything below it, custom
// elements included.
func ThemeProvider(rt *reactive.Runtime) *woby.ComponentDef {
	return woby.Define("ThemeProvider",
		func() woby.Props {
			return woby.Props{"theme": reactive.NewSignal(rt, "dark", reactive.WithType(reactive.TypeString))}
		},
		func(c *woby.Ctx, props woby.Props) any {
			return Theme.Provider(woby.Prop[string](props, "theme"), props.Children())
		},
	)
}

// ThemeLabel shows the nearest theme.
var ThemeLabel = woby.Define("ThemeLabel", nil, func(c *woby.Ctx, _ woby.Props) any {
	mc := woby.UseMountedContext(c, Theme)
	return el.Span(el.Ref(mc.Ref), el.Class("theme"), mc.Context)
})

// StyledBox renders its style-* attributes as inline style and the
// nested-label-text attribute as its label.
var StyledBox = woby.Define("StyledBox", nil, func(c *woby.Ctx, props woby.Props) any {
	label := func() any {
		nested, _ := reactive.Read(props["nested"]).(map[string]any)
		inner, _ := nested["label"].(map[string]any)
		if s, ok := inner["text"].(string); ok {
			return s
		}
		return "empty"
	}
	return el.Div(el.Style(props["style"]), el.Span(label))
})

// Register defines the demo custom elements on reg.
func Register(rt *reactive.Runtime, reg *element.Registry) error {
	defs := []struct {
		tag      string
		def      *woby.ComponentDef
		observed []string
	}{
		{"woby-counter", Counter(rt), []string{"value", "disabled"}},
		{"theme-provider", ThemeProvider(rt), []string{"theme"}},
		{"theme-label", ThemeLabel, nil},
		{"styled-box", StyledBox, []string{"style-*", "nested-*"}},
	}
	for _, d := range defs {
		if err := reg.Define(d.tag, d.def, d.observed...); err != nil {
			return err
		}
	}
	return nil
}

// Page is the demo tree.
func Page(rt *reactive.Runtime) *woby.VNode {
	return el.Div(el.ID("app"),
		el.Section(el.Class("hyperscript"), woby.C(Hyperscript, nil)),
		el.Section(el.Class("component"), Counter(rt).New(nil)),
		el.Section(el.Class("memo"), woby.C(MemoCounter, nil)),
		el.Section(el.Class("elements"),
			el.Tag("woby-counter", el.Attribute("value", "5")),
			el.Tag("theme-provider", el.Attribute("theme", "dark"),
				el.Tag("styled-box",
					el.Attribute("style-color", "teal"),
					el.Attribute("nested-label-text", "nested"),
				),
				el.Tag("theme-label"),
			),
			el.Tag("theme-label"),
		),
	)
}

// App returns a builder of the demo document: a registry with the demo
// elements installed on a new document, and the page as root.
func App(opts ...element.Option) func(rt *reactive.Runtime) (*dom.Document, any, error) {
	return func(rt *reactive.Runtime) (*dom.Document, any, error) {
		reg := element.NewRegistry(rt, opts...)
		if err := Register(rt, reg); err != nil {
			return nil, nil, err
		}
		return dom.NewDocument(dom.WithCustomElements(reg)), Page(rt), nil
	}
}
