package el

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/woby-dev/woby/pkg/dom"
	"github.com/woby-dev/woby/pkg/reactive"
	"github.com/woby-dev/woby/pkg/render"
	"github.com/woby-dev/woby/pkg/woby"
)

func mount(t *testing.T, rt *reactive.Runtime, tree any) *dom.Document {
	t.Helper()
	doc := dom.NewDocument()
	if _, err := woby.Render(rt, tree, doc.Body()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return doc
}

func html(doc *dom.Document) string {
	var sb strings.Builder
	_ = render.NewRenderer(render.RendererConfig{SkipComments: true}).RenderChildren(&sb, doc.Body())
	return sb.String()
}

func TestElementConstructors(t *testing.T) {
	node := Div(ID("root"), Class("one", "two"), Data("x", 1), "hello", Span("child"), nil)

	if node.Tag != "div" {
		t.Errorf("Tag = %q", node.Tag)
	}
	want := Props{"id": "root", "class": "one two", "data-x": 1}
	if diff := cmp.Diff(want, node.Props); diff != "" {
		t.Errorf("props mismatch (-want +got):\n%s", diff)
	}
	if got := node.String(); got != `div("hello", span("child"))` {
		t.Errorf("String() = %s", got)
	}
	if Tag("counter-button").Tag != "counter-button" {
		t.Error("Tag should keep the custom element name")
	}
	if LinkEl().Tag != "link" || TitleEl().Tag != "title" || StyleEl().Tag != "style" {
		t.Error("renamed constructors use the wrong tag")
	}
}

func TestEventsUseOnPrefix(t *testing.T) {
	h := func() {}
	if a := OnClick(h); a.Key != "onclick" {
		t.Errorf("OnClick key = %q", a.Key)
	}
	if a := On("toggle-theme", h); a.Key != "ontoggle-theme" {
		t.Errorf("On key = %q", a.Key)
	}
}

func TestSpreadDropsChildren(t *testing.T) {
	got := Spread(Props{"b": 2, "a": 1, "children": "x", "key": "k"})
	want := []Attr{{Key: "a", Value: 1}, {Key: "b", Value: 2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Spread mismatch (-want +got):\n%s", diff)
	}
}

func TestCounter(t *testing.T) {
	rt := reactive.NewRuntime()
	count := reactive.NewSignal(rt, 0)
	increment := func() { _ = count.Update(func(v int) int { return v + 1 }) }

	doc := mount(t, rt, Div(Class("counter"),
		P(count),
		Button(OnClick(increment), "+"),
	))
	doc.Body().ElementsByTag("button")[0].DispatchEvent(dom.NewEvent("click", nil))

	if got := html(doc); got != `<div class="counter"><p>1</p><button>+</button></div>` {
		t.Errorf("got %s", got)
	}
}

func TestShow(t *testing.T) {
	rt := reactive.NewRuntime()
	visible := reactive.NewSignal(rt, false)

	doc := mount(t, rt, Div(ShowElse(visible, Span("yes"), "no")))
	if got := html(doc); got != "<div>no</div>" {
		t.Fatalf("hidden: %s", got)
	}
	_ = visible.Set(true)
	if got := html(doc); got != "<div><span>yes</span></div>" {
		t.Errorf("shown: %s", got)
	}
}

func TestSwitch(t *testing.T) {
	rt := reactive.NewRuntime()
	tab := reactive.NewSignal(rt, "a")

	doc := mount(t, rt, Switch[string](tab,
		When("a", P("first")),
		When("b", P("second")),
		Default[string](P("none")),
	))
	if got := html(doc); got != "<p>first</p>" {
		t.Fatalf("got %s", got)
	}
	_ = tab.Set("b")
	if got := html(doc); got != "<p>second</p>" {
		t.Errorf("got %s", got)
	}
	_ = tab.Set("z")
	if got := html(doc); got != "<p>none</p>" {
		t.Errorf("got %s", got)
	}
}

func TestFor(t *testing.T) {
	rt := reactive.NewRuntime()
	items := reactive.NewSignal(rt, []string{"a", "b"})

	doc := mount(t, rt, Ul(For[string](items, func(s string, i int) any {
		return Li(Data("index", i), s)
	})))
	if got := html(doc); got != `<ul><li data-index="0">a</li><li data-index="1">b</li></ul>` {
		t.Fatalf("got %s", got)
	}
	_ = items.Set([]string{"c"})
	if got := html(doc); got != `<ul><li data-index="0">c</li></ul>` {
		t.Errorf("got %s", got)
	}
}

func TestReactiveAttributes(t *testing.T) {
	rt := reactive.NewRuntime()
	off := reactive.NewSignal(rt, true)
	active := reactive.NewSignal(rt, false)

	doc := mount(t, rt, Button(Disabled(off), Classes(map[string]any{"btn": true, "active": active}), "go"))
	if got := html(doc); got != `<button class="btn" disabled>go</button>` {
		t.Fatalf("got %s", got)
	}
	_ = rt.Batch(func() {
		_ = off.Set(false)
		_ = active.Set(true)
	})
	if got := html(doc); got != `<button class="active btn">go</button>` {
		t.Errorf("got %s", got)
	}
}
