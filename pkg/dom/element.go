package dom

import "strings"

// Attribute is a name/value pair in document order.
type Attribute struct {
	Name  string
	Value string
}

// Element is an element node.
type Element struct {
	nodeBase
	tag      string
	attrs    []Attribute
	children []Node

	// props buffers properties written while no registry handles them.
	props map[string]any

	listeners    map[string][]*listener
	onConnect    []*hook
	onDisconnect []*hook

	// notified is true while the connect hooks of the current connection
	// have run and the disconnect hooks have not.
	notified bool
}

type hook struct {
	fn func(*Element)
}

// Type returns ElementNode.
func (e *Element) Type() NodeType { return ElementNode }

// Tag returns the lower-case tag name.
func (e *Element) Tag() string { return e.tag }

// Children returns a copy of the child list.
func (e *Element) Children() []Node {
	out := make([]Node, len(e.children))
	copy(out, e.children)
	return out
}

// ChildCount returns the number of children.
func (e *Element) ChildCount() int { return len(e.children) }

// FirstChild returns the first child or nil.
func (e *Element) FirstChild() Node {
	if len(e.children) == 0 {
		return nil
	}
	return e.children[0]
}

// LastChild returns the last child or nil.
func (e *Element) LastChild() Node {
	if len(e.children) == 0 {
		return nil
	}
	return e.children[len(e.children)-1]
}

func (e *Element) indexOf(n Node) int {
	for i, c := range e.children {
		if c == n {
			return i
		}
	}
	return -1
}

// walk visits e and its descendants in tree order.
func (e *Element) walk(fn func(Node)) {
	fn(e)
	for _, c := range e.children {
		if ce, ok := c.(*Element); ok {
			ce.walk(fn)
			continue
		}
		fn(c)
	}
}

// ElementsByTag returns the descendants of e with the given tag, in tree
// order.
func (e *Element) ElementsByTag(tag string) []*Element {
	tag = strings.ToLower(tag)
	var out []*Element
	for _, c := range e.children {
		ce, ok := c.(*Element)
		if !ok {
			continue
		}
		ce.walk(func(n Node) {
			if el, ok := n.(*Element); ok && el.tag == tag {
				out = append(out, el)
			}
		})
	}
	return out
}

// =============================================================================
// Attributes
// =============================================================================

// GetAttribute returns the attribute value and whether it is present.
func (e *Element) GetAttribute(name string) (string, bool) {
	name = strings.ToLower(name)
	for _, a := range e.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// HasAttribute reports whether the attribute is present.
func (e *Element) HasAttribute(name string) bool {
	_, ok := e.GetAttribute(name)
	return ok
}

// Attributes returns a copy of the attributes in document order.
func (e *Element) Attributes() []Attribute {
	out := make([]Attribute, len(e.attrs))
	copy(out, e.attrs)
	return out
}

// SetAttribute writes an attribute. Every write produces a mutation record
// and, on custom elements, an attribute-changed callback, even when the value
// is unchanged.
func (e *Element) SetAttribute(name, value string) {
	name = strings.ToLower(name)
	var old *string
	found := false
	for i := range e.attrs {
		if e.attrs[i].Name == name {
			prev := e.attrs[i].Value
			old = &prev
			e.attrs[i].Value = value
			found = true
			break
		}
	}
	if !found {
		e.attrs = append(e.attrs, Attribute{Name: name, Value: value})
	}

	e.doc.record(MutationRecord{Type: Attributes, Target: e, AttributeName: name, OldValue: old})
	if e.doc.isCustom(e) {
		v := value
		e.doc.custom.AttributeChanged(e, name, old, &v)
	}
}

// RemoveAttribute removes an attribute. Removing an absent attribute is a
// no-op.
func (e *Element) RemoveAttribute(name string) {
	name = strings.ToLower(name)
	for i, a := range e.attrs {
		if a.Name != name {
			continue
		}
		e.attrs = append(e.attrs[:i], e.attrs[i+1:]...)
		old := a.Value
		e.doc.record(MutationRecord{Type: Attributes, Target: e, AttributeName: name, OldValue: &old})
		if e.doc.isCustom(e) {
			e.doc.custom.AttributeChanged(e, name, &old, nil)
		}
		return
	}
}

// =============================================================================
// Properties
// =============================================================================

// SetProperty writes a property. On custom elements the registry handles
// the write; otherwise the value is buffered on the element.
func (e *Element) SetProperty(name string, value any) {
	if e.doc.isCustom(e) && e.doc.custom.SetProperty(e, name, value) {
		return
	}
	if e.props == nil {
		e.props = make(map[string]any)
	}
	e.props[name] = value
}

// BufferProperty stores a property on the element without going through
// the registry. Registries use it to hand values back to an element they
// no longer manage.
func (e *Element) BufferProperty(name string, value any) {
	if e.props == nil {
		e.props = make(map[string]any)
	}
	e.props[name] = value
}

// Property reads a property through the registry or the buffer.
func (e *Element) Property(name string) (any, bool) {
	if e.doc.isCustom(e) {
		if v, ok := e.doc.custom.Property(e, name); ok {
			return v, true
		}
	}
	v, ok := e.props[name]
	return v, ok
}

// BufferedProperties returns a copy of the buffered properties.
func (e *Element) BufferedProperties() map[string]any {
	out := make(map[string]any, len(e.props))
	for k, v := range e.props {
		out[k] = v
	}
	return out
}

// DeleteProperty drops a buffered property.
func (e *Element) DeleteProperty(name string) {
	delete(e.props, name)
}

// =============================================================================
// Lifecycle hooks
// =============================================================================

// OnConnect registers fn to run each time e becomes connected. If e is
// connected already, fn does not run until the next connection.
func (e *Element) OnConnect(fn func(*Element)) (remove func()) {
	h := &hook{fn: fn}
	e.onConnect = append(e.onConnect, h)
	return func() { e.onConnect = removeHook(e.onConnect, h) }
}

// OnDisconnect registers fn to run each time e becomes disconnected.
func (e *Element) OnDisconnect(fn func(*Element)) (remove func()) {
	h := &hook{fn: fn}
	e.onDisconnect = append(e.onDisconnect, h)
	return func() { e.onDisconnect = removeHook(e.onDisconnect, h) }
}

func removeHook(hooks []*hook, h *hook) []*hook {
	for i, x := range hooks {
		if x == h {
			return append(hooks[:i:i], hooks[i+1:]...)
		}
	}
	return hooks
}
