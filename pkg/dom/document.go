package dom

import "strings"

// CustomElements is the registry interface a Document consults for custom
// element tags. It is implemented by element.Registry.
type CustomElements interface {
	// Defined reports whether tag names a registered custom element.
	Defined(tag string) bool

	// Connected is called after a defined element became connected.
	Connected(e *Element)

	// Disconnected is called after a defined element became disconnected.
	Disconnected(e *Element)

	// AttributeChanged is called for every attribute write or removal on a
	// defined element. A nil value means the attribute is absent.
	AttributeChanged(e *Element, name string, oldValue, newValue *string)

	// SetProperty handles a property write. Returning false lets the
	// element buffer the value itself.
	SetProperty(e *Element, name string, value any) bool

	// Property handles a property read.
	Property(e *Element, name string) (any, bool)
}

// Document creates nodes and owns the connected tree rooted at its body.
type Document struct {
	lastID    uint64
	body      *Element
	custom    CustomElements
	observers []*MutationObserver
}

// Option configures a Document.
type Option func(*Document)

// WithCustomElements installs a custom element registry on the document.
func WithCustomElements(reg CustomElements) Option {
	return func(d *Document) {
		d.custom = reg
	}
}

// NewDocument creates an empty document.
func NewDocument(opts ...Option) *Document {
	d := &Document{}
	for _, opt := range opts {
		opt(d)
	}
	d.body = d.CreateElement("body")
	d.body.connected = true
	d.body.notified = true
	return d
}

// Body returns the root of the connected tree.
func (d *Document) Body() *Element {
	return d.body
}

// CustomElements returns the installed registry, or nil.
func (d *Document) CustomElements() CustomElements {
	return d.custom
}

func (d *Document) newBase() nodeBase {
	d.lastID++
	return nodeBase{id: d.lastID, doc: d}
}

// CreateElement creates a detached element. Tag names are lower-cased.
func (d *Document) CreateElement(tag string) *Element {
	return &Element{
		nodeBase: d.newBase(),
		tag:      strings.ToLower(tag),
	}
}

// CreateTextNode creates a detached text node.
func (d *Document) CreateTextNode(data string) *Text {
	return &Text{nodeBase: d.newBase(), data: data}
}

// CreateComment creates a detached comment node.
func (d *Document) CreateComment(data string) *Comment {
	return &Comment{nodeBase: d.newBase(), data: data}
}

// NodeByID finds a connected node by id.
func (d *Document) NodeByID(id uint64) Node {
	var found Node
	d.body.walk(func(n Node) {
		if found == nil && n.ID() == id {
			found = n
		}
	})
	return found
}

// isCustom reports whether e is handled by the installed registry.
func (d *Document) isCustom(e *Element) bool {
	return d.custom != nil && d.custom.Defined(e.tag)
}
