package dom

import "errors"

// NodeType is the node type discriminator.
type NodeType uint8

const (
	ElementNode NodeType = iota + 1
	TextNode
	CommentNode
)

// String returns the string representation of the NodeType.
func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	case CommentNode:
		return "Comment"
	default:
		return "Unknown"
	}
}

var (
	// ErrHierarchy is returned when an insertion would make a node its own
	// ancestor.
	ErrHierarchy = errors.New("dom: node cannot be inserted into its own subtree")

	// ErrNotChild is returned when a reference node is not a child of the
	// parent it is used with.
	ErrNotChild = errors.New("dom: node is not a child of this element")

	// ErrWrongDocument is returned when nodes of different documents are
	// combined.
	ErrWrongDocument = errors.New("dom: node belongs to another document")
)

// Node is implemented by *Element, *Text and *Comment.
type Node interface {
	// Type returns the node type.
	Type() NodeType

	// ID returns the document-unique node id.
	ID() uint64

	// Parent returns the parent element, or nil for detached roots.
	Parent() *Element

	// OwnerDocument returns the document that created the node.
	OwnerDocument() *Document

	// IsConnected reports whether the node is in the document body.
	IsConnected() bool

	// Store attaches a value to the node under key.
	Store(key, value any)

	// Load returns the value stored under key.
	Load(key any) (any, bool)

	// Delete removes the value stored under key.
	Delete(key any)

	base() *nodeBase
}

// nodeBase holds what every node type shares.
type nodeBase struct {
	id        uint64
	doc       *Document
	parent    *Element
	connected bool
	data      map[any]any
}

func (n *nodeBase) ID() uint64               { return n.id }
func (n *nodeBase) Parent() *Element         { return n.parent }
func (n *nodeBase) OwnerDocument() *Document { return n.doc }
func (n *nodeBase) IsConnected() bool        { return n.connected }
func (n *nodeBase) base() *nodeBase          { return n }

func (n *nodeBase) Store(key, value any) {
	if n.data == nil {
		n.data = make(map[any]any)
	}
	n.data[key] = value
}

func (n *nodeBase) Load(key any) (any, bool) {
	v, ok := n.data[key]
	return v, ok
}

func (n *nodeBase) Delete(key any) {
	delete(n.data, key)
}

// Text is a text node.
type Text struct {
	nodeBase
	data string
}

// Type returns TextNode.
func (t *Text) Type() NodeType { return TextNode }

// Data returns the text.
func (t *Text) Data() string { return t.data }

// SetData replaces the text. Writing the same text is a no-op.
func (t *Text) SetData(s string) {
	if t.data == s {
		return
	}
	old := t.data
	t.data = s
	t.doc.record(MutationRecord{Type: CharacterData, Target: t, OldValue: &old})
}

// Comment is a comment node. The tree builder uses comments as markers
// around dynamic ranges.
type Comment struct {
	nodeBase
	data string
}

// Type returns CommentNode.
func (c *Comment) Type() NodeType { return CommentNode }

// Data returns the comment text.
func (c *Comment) Data() string { return c.data }

// NextSibling returns the node after n in its parent, or nil.
func NextSibling(n Node) Node {
	p := n.Parent()
	if p == nil {
		return nil
	}
	i := p.indexOf(n)
	if i < 0 || i+1 >= len(p.children) {
		return nil
	}
	return p.children[i+1]
}

// PreviousSibling returns the node before n in its parent, or nil.
func PreviousSibling(n Node) Node {
	p := n.Parent()
	if p == nil {
		return nil
	}
	i := p.indexOf(n)
	if i <= 0 {
		return nil
	}
	return p.children[i-1]
}

// Remove detaches n from its parent. Detached nodes are left as is.
func Remove(n Node) {
	if p := n.Parent(); p != nil {
		_ = p.RemoveChild(n)
	}
}

// Contains reports whether other is n or a descendant of n.
func Contains(n Node, other Node) bool {
	for cur := other; cur != nil; {
		if cur == n {
			return true
		}
		p := cur.Parent()
		if p == nil {
			return false
		}
		cur = p
	}
	return false
}

// TextContent returns the concatenated text of n and its descendants.
// Comments contribute nothing.
func TextContent(n Node) string {
	switch v := n.(type) {
	case *Text:
		return v.data
	case *Element:
		var out []byte
		v.walk(func(c Node) {
			if t, ok := c.(*Text); ok {
				out = append(out, t.data...)
			}
		})
		return string(out)
	}
	return ""
}
