package woby

import (
	"fmt"
	"strings"

	"github.com/woby-dev/woby/pkg/dom"
	"github.com/woby-dev/woby/pkg/reactive"
)

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <button>, etc.
	KindText                   // Plain text node
	KindFragment               // Grouping without wrapper
	KindComponent              // Nested component
	KindDynamic                // Thunk rebuilt between markers
	KindBound                  // Accessor rendered as a text node
	KindAdopted                // Existing DOM nodes
	KindBoundary               // Error boundary

	kindCatch
	kindError
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	case KindDynamic:
		return "Dynamic"
	case KindBound:
		return "Bound"
	case KindAdopted:
		return "Adopted"
	case KindBoundary:
		return "Boundary"
	default:
		return "Unknown"
	}
}

// VNode describes a piece of output. VNodes are plain data: building one
// into the document is what creates nodes and subscriptions.
type VNode struct {
	Kind     VKind
	Tag      string     // Element tag name
	Props    Props      // Attributes, properties, event handlers, refs
	Children []*VNode   // Child descriptions
	Text     string     // For KindText
	Value    any        // Accessor for KindBound
	Fn       func() any // Thunk for KindDynamic
	Def      *ComponentDef
	Nodes    []dom.Node // For KindAdopted
	Host     dom.Node   // For KindAdopted: resolves contexts through the adopting owner

	// Fallback renders the output of a failed KindBoundary subtree.
	Fallback func(err error) any

	failed *reactive.Signal[error]
	err    error
}

// Attr is a single prop produced by the el helpers.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// H creates an element in hyperscript style. A "children" prop is used when
// no children are passed.
func H(tag string, props Props, children ...any) *VNode {
	node := &VNode{Kind: KindElement, Tag: tag, Props: make(Props, len(props))}
	for k, v := range props {
		node.Props[k] = v
	}
	if c, ok := node.Props["children"]; ok {
		if len(children) == 0 {
			children = []any{c}
		}
		delete(node.Props, "children")
	}
	node.Children = Normalize(children...)
	return node
}

// El creates an element from mixed arguments: Attr, []Attr and Props set
// props; everything else is a child (see Normalize).
func El(tag string, args ...any) *VNode {
	node := &VNode{Kind: KindElement, Tag: tag, Props: make(Props)}
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case Attr:
			if !v.IsEmpty() {
				node.Props[v.Key] = v.Value
			}
		case []Attr:
			for _, a := range v {
				if !a.IsEmpty() {
					node.Props[a.Key] = a.Value
				}
			}
		case Props:
			for k, val := range v {
				node.Props[k] = val
			}
		default:
			if child := toVNode(v); child != nil {
				node.Children = append(node.Children, child)
			}
		}
	}
	return node
}

// Text creates a static text node.
func Text(s string) *VNode {
	return &VNode{Kind: KindText, Text: s}
}

// Textf creates a static formatted text node.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

// Fragment groups children without a wrapper element.
func Fragment(children ...any) *VNode {
	return &VNode{Kind: KindFragment, Children: Normalize(children...)}
}

// Dynamic renders the result of fn and rebuilds it whenever a signal fn
// read changes.
func Dynamic(fn func() any) *VNode {
	return &VNode{Kind: KindDynamic, Fn: fn}
}

// Adopt inserts existing DOM nodes. The nodes are moved, not copied.
func Adopt(nodes ...dom.Node) *VNode {
	return &VNode{Kind: KindAdopted, Nodes: nodes}
}

// Slot adopts the light children of host. Wherever the slot is built, host
// publishes the owner it was built under, so nodes added to host later
// resolve the same contexts as the adopted ones.
func Slot(host dom.Node, nodes ...dom.Node) *VNode {
	return &VNode{Kind: KindAdopted, Nodes: nodes, Host: host}
}

// Normalize converts children arguments to VNodes, dropping nils.
func Normalize(children ...any) []*VNode {
	out := make([]*VNode, 0, len(children))
	for _, c := range children {
		if v := toVNode(c); v != nil {
			out = append(out, v)
		}
	}
	return out
}

// toVNode converts a child value.
//
// Accepted: nil and bools (render nothing), strings, numbers, *VNode,
// []*VNode, []any, dom nodes, thunks, components, component definitions,
// accessors (bound text) and errors (fail the build).
func toVNode(v any) *VNode {
	switch x := v.(type) {
	case nil, bool:
		return nil
	case *VNode:
		return x
	case []*VNode:
		return &VNode{Kind: KindFragment, Children: Normalize(anySlice(x)...)}
	case []any:
		return Fragment(x...)
	case string:
		return Text(x)
	case dom.Node:
		return Adopt(x)
	case []dom.Node:
		return Adopt(x...)
	case func() any:
		return Dynamic(x)
	case func() *VNode:
		return Dynamic(func() any { return x() })
	case Component:
		return C(x, nil)
	case func(*Ctx, Props) any:
		return C(x, nil)
	case *ComponentDef:
		return x.New(nil)
	case error:
		return &VNode{Kind: kindError, err: x}
	}
	if reactive.IsAccessor(v) {
		return &VNode{Kind: KindBound, Value: v}
	}
	return Text(formatText(v))
}

func anySlice(nodes []*VNode) []any {
	out := make([]any, len(nodes))
	for i, n := range nodes {
		out[i] = n
	}
	return out
}

// String renders a debug representation of the description.
func (v *VNode) String() string {
	var sb strings.Builder
	v.debug(&sb)
	return sb.String()
}

func (v *VNode) debug(sb *strings.Builder) {
	if v == nil {
		sb.WriteString("<nil>")
		return
	}
	switch v.Kind {
	case KindText:
		fmt.Fprintf(sb, "%q", v.Text)
		return
	case KindElement:
		sb.WriteString(v.Tag)
	case KindComponent:
		sb.WriteString(v.Def.Name())
	default:
		sb.WriteString(v.Kind.String())
	}
	if len(v.Children) == 0 {
		return
	}
	sb.WriteByte('(')
	for i, c := range v.Children {
		if i > 0 {
			sb.WriteString(", ")
		}
		c.debug(sb)
	}
	sb.WriteByte(')')
}
