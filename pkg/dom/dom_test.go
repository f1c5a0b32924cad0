package dom

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTreeOperations(t *testing.T) {
	doc := NewDocument()
	ul := doc.CreateElement("UL")
	a := doc.CreateTextNode("a")
	b := doc.CreateTextNode("b")
	c := doc.CreateTextNode("c")

	if ul.Tag() != "ul" {
		t.Errorf("Tag = %q, want lower-case", ul.Tag())
	}
	for _, step := range []error{
		ul.AppendChild(c),
		ul.InsertBefore(a, c),
		ul.InsertBefore(b, c),
	} {
		if step != nil {
			t.Fatal(step)
		}
	}
	if got := TextContent(ul); got != "abc" {
		t.Errorf("TextContent = %q, want abc", got)
	}
	if NextSibling(a) != b || PreviousSibling(c) != b || NextSibling(c) != nil {
		t.Error("sibling navigation mismatch")
	}

	// Re-inserting moves the node.
	if err := ul.AppendChild(a); err != nil {
		t.Fatal(err)
	}
	if got := TextContent(ul); got != "bca" {
		t.Errorf("after move TextContent = %q, want bca", got)
	}

	Remove(b)
	if b.Parent() != nil || ul.ChildCount() != 2 {
		t.Error("Remove should detach the node")
	}
}

func TestTreeErrors(t *testing.T) {
	doc := NewDocument()
	outer := doc.CreateElement("div")
	inner := doc.CreateElement("span")
	_ = outer.AppendChild(inner)

	if err := inner.AppendChild(outer); !errors.Is(err, ErrHierarchy) {
		t.Errorf("ancestor insertion: got %v, want ErrHierarchy", err)
	}
	if err := outer.AppendChild(outer); !errors.Is(err, ErrHierarchy) {
		t.Errorf("self insertion: got %v, want ErrHierarchy", err)
	}

	stray := doc.CreateTextNode("x")
	if err := outer.InsertBefore(doc.CreateTextNode("y"), stray); !errors.Is(err, ErrNotChild) {
		t.Errorf("foreign ref: got %v, want ErrNotChild", err)
	}
	if err := outer.RemoveChild(stray); !errors.Is(err, ErrNotChild) {
		t.Errorf("remove foreign: got %v, want ErrNotChild", err)
	}

	other := NewDocument()
	if err := outer.AppendChild(other.CreateTextNode("z")); !errors.Is(err, ErrWrongDocument) {
		t.Errorf("cross document: got %v, want ErrWrongDocument", err)
	}
}

func TestConnectHooksTreeOrder(t *testing.T) {
	doc := NewDocument()
	var log []string
	track := func(e *Element) {
		e.OnConnect(func(e *Element) { log = append(log, "+"+e.Tag()) })
		e.OnDisconnect(func(e *Element) { log = append(log, "-"+e.Tag()) })
	}

	section := doc.CreateElement("section")
	header := doc.CreateElement("header")
	p := doc.CreateElement("p")
	track(section)
	track(header)
	track(p)
	_ = section.AppendChild(header)
	_ = header.AppendChild(p)

	if len(log) != 0 {
		t.Fatalf("detached insertion fired hooks: %v", log)
	}
	if section.IsConnected() {
		t.Fatal("detached subtree should not be connected")
	}

	_ = doc.Body().AppendChild(section)
	if !p.IsConnected() {
		t.Error("descendants should be connected")
	}
	_ = doc.Body().RemoveChild(section)

	want := []string{"+section", "+header", "+p", "-section", "-header", "-p"}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Errorf("hook order mismatch (-want +got):\n%s", diff)
	}
}

func TestMoveInsideConnectHook(t *testing.T) {
	doc := NewDocument()
	parking := doc.CreateElement("template")
	outer := doc.CreateElement("div")
	inner := doc.CreateElement("span")
	_ = outer.AppendChild(inner)

	var log []string
	outer.OnConnect(func(e *Element) {
		log = append(log, "+div")
		_ = parking.AppendChild(inner)
	})
	inner.OnConnect(func(*Element) { log = append(log, "+span") })
	inner.OnDisconnect(func(*Element) { log = append(log, "-span") })

	_ = doc.Body().AppendChild(outer)

	// The span left the connected tree before its turn came, so it never
	// saw a connection and must not see a disconnection either.
	if diff := cmp.Diff([]string{"+div"}, log); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if inner.IsConnected() {
		t.Error("moved node should be disconnected")
	}
}

func TestHookRemoval(t *testing.T) {
	doc := NewDocument()
	div := doc.CreateElement("div")
	n := 0
	remove := div.OnConnect(func(*Element) { n++ })
	_ = doc.Body().AppendChild(div)
	remove()
	Remove(div)
	_ = doc.Body().AppendChild(div)
	if n != 1 {
		t.Errorf("hook ran %d times, want 1", n)
	}
}

type fakeRegistry struct {
	tags  map[string]bool
	log   []string
	props map[*Element]map[string]any
}

func newFakeRegistry(tags ...string) *fakeRegistry {
	r := &fakeRegistry{tags: map[string]bool{}, props: map[*Element]map[string]any{}}
	for _, tag := range tags {
		r.tags[tag] = true
	}
	return r
}

func (r *fakeRegistry) Defined(tag string) bool { return r.tags[tag] }
func (r *fakeRegistry) Connected(e *Element)    { r.log = append(r.log, "connected "+e.Tag()) }
func (r *fakeRegistry) Disconnected(e *Element) { r.log = append(r.log, "disconnected "+e.Tag()) }

func (r *fakeRegistry) AttributeChanged(e *Element, name string, oldValue, newValue *string) {
	r.log = append(r.log, fmt.Sprintf("attr %s %s -> %s", name, str(oldValue), str(newValue)))
}

func (r *fakeRegistry) SetProperty(e *Element, name string, value any) bool {
	if name == "buffered" {
		return false
	}
	if r.props[e] == nil {
		r.props[e] = map[string]any{}
	}
	r.props[e][name] = value
	return true
}

func (r *fakeRegistry) Property(e *Element, name string) (any, bool) {
	v, ok := r.props[e][name]
	return v, ok
}

func str(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}

func TestCustomElementCallbacks(t *testing.T) {
	reg := newFakeRegistry("my-counter")
	doc := NewDocument(WithCustomElements(reg))

	host := doc.CreateElement("my-counter")
	plain := doc.CreateElement("div")
	host.SetAttribute("value", "1")
	host.SetAttribute("value", "2")
	host.RemoveAttribute("value")
	host.RemoveAttribute("missing")
	plain.SetAttribute("value", "1")

	_ = plain.AppendChild(host)
	_ = doc.Body().AppendChild(plain)
	Remove(plain)

	want := []string{
		"attr value <nil> -> 1",
		"attr value 1 -> 2",
		"attr value 2 -> <nil>",
		"connected my-counter",
		"disconnected my-counter",
	}
	if diff := cmp.Diff(want, reg.log); diff != "" {
		t.Errorf("callbacks mismatch (-want +got):\n%s", diff)
	}
}

func TestCustomElementProperties(t *testing.T) {
	reg := newFakeRegistry("my-el")
	doc := NewDocument(WithCustomElements(reg))
	host := doc.CreateElement("my-el")

	host.SetProperty("handled", 1)
	host.SetProperty("buffered", 2)

	if v, ok := host.Property("handled"); !ok || v != 1 {
		t.Errorf("handled property = %v %v", v, ok)
	}
	if v, ok := host.Property("buffered"); !ok || v != 2 {
		t.Errorf("buffered property = %v %v", v, ok)
	}
	if diff := cmp.Diff(map[string]any{"buffered": 2}, host.BufferedProperties()); diff != "" {
		t.Errorf("buffer mismatch (-want +got):\n%s", diff)
	}
	host.DeleteProperty("buffered")
	if _, ok := host.Property("buffered"); ok {
		t.Error("deleted property still present")
	}
}

func TestEventBubbling(t *testing.T) {
	doc := NewDocument()
	outer := doc.CreateElement("div")
	btn := doc.CreateElement("button")
	_ = outer.AppendChild(btn)

	var log []string
	outer.AddEventListener("click", func(ev *Event) {
		log = append(log, "outer:"+ev.Target.Tag()+":"+ev.CurrentTarget.Tag())
	})
	remove := btn.AddEventListener("click", func(ev *Event) {
		log = append(log, "button")
		ev.PreventDefault()
	})

	if btn.DispatchEvent(NewEvent("click", nil)) {
		t.Error("DispatchEvent should report the prevented default")
	}
	remove()

	stopper := btn.AddEventListener("click", func(ev *Event) { ev.StopPropagation() })
	btn.DispatchEvent(NewEvent("click", nil))
	stopper()

	want := []string{"button", "outer:button:div"}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if btn.HasListeners("click") {
		t.Error("listeners should be removed")
	}
}

func TestMutationObserver(t *testing.T) {
	doc := NewDocument()
	obs := NewMutationObserver(doc)
	defer obs.Disconnect()

	detached := doc.CreateElement("div")
	detached.SetAttribute("id", "x")
	txt := doc.CreateTextNode("a")
	_ = detached.AppendChild(txt)
	if n := len(obs.TakeRecords()); n != 0 {
		t.Fatalf("detached mutations recorded: %d", n)
	}

	_ = doc.Body().AppendChild(detached)
	detached.SetAttribute("id", "y")
	txt.SetData("b")
	txt.SetData("b")

	var got []string
	for _, r := range obs.TakeRecords() {
		got = append(got, fmt.Sprintf("%s %d %s %s", r.Type, r.Target.ID(), r.AttributeName, str(r.OldValue)))
	}
	want := []string{
		fmt.Sprintf("childList %d  <nil>", doc.Body().ID()),
		fmt.Sprintf("attributes %d id x", detached.ID()),
		fmt.Sprintf("characterData %d  a", txt.ID()),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
	if doc.NodeByID(txt.ID()) != txt {
		t.Error("NodeByID should find connected nodes")
	}
}

func TestNodeStore(t *testing.T) {
	doc := NewDocument()
	n := doc.CreateComment("marker")
	n.Store("k", 1)
	if v, ok := n.Load("k"); !ok || v != 1 {
		t.Errorf("Load = %v %v", v, ok)
	}
	n.Delete("k")
	if _, ok := n.Load("k"); ok {
		t.Error("Delete should remove the value")
	}
	if n.Data() != "marker" || n.Type() != CommentNode {
		t.Error("comment accessors mismatch")
	}
}
