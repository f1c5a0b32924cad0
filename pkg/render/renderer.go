package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/woby-dev/woby/pkg/dom"
)

// NodeIDAttr is the attribute carrying dom node ids when NodeIDs is set.
const NodeIDAttr = "data-wid"

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables indented output. Inline elements and text stay on the
	// line of their parent.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string

	// NodeIDs adds a data-wid attribute with the node id to every element.
	NodeIDs bool

	// SkipComments drops comment nodes, including dynamic range markers.
	SkipComments bool
}

// Renderer serializes dom trees.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// HTML renders n with the default configuration.
func HTML(n dom.Node) string {
	s, _ := NewRenderer(RendererConfig{}).RenderToString(n)
	return s
}

// InnerHTML renders the children of e with the default configuration.
func InnerHTML(e *dom.Element) string {
	var buf bytes.Buffer
	r := NewRenderer(RendererConfig{})
	for _, c := range e.Children() {
		_ = r.renderNode(&buf, c, 0)
	}
	return buf.String()
}

// RenderToString renders n and its descendants.
func (r *Renderer) RenderToString(n dom.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams n and its descendants to w.
func (r *Renderer) RenderToWriter(w io.Writer, n dom.Node) error {
	return r.renderNode(w, n, 0)
}

// RenderChildren streams the children of e to w.
func (r *Renderer) RenderChildren(w io.Writer, e *dom.Element) error {
	for _, c := range e.Children() {
		if err := r.renderNode(w, c, 0); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderNode(w io.Writer, n dom.Node, depth int) error {
	switch v := n.(type) {
	case nil:
		return nil
	case *dom.Element:
		return r.renderElement(w, v, depth)
	case *dom.Text:
		_, err := io.WriteString(w, escapeHTML(v.Data()))
		return err
	case *dom.Comment:
		if r.config.SkipComments {
			return nil
		}
		_, err := fmt.Fprintf(w, "<!--%s-->", escapeComment(v.Data()))
		return err
	default:
		return fmt.Errorf("render: unknown node type %s", n.Type())
	}
}

func (r *Renderer) renderElement(w io.Writer, e *dom.Element, depth int) error {
	tag := e.Tag()

	if r.config.Pretty && depth > 0 && !isInlineElement(tag) {
		r.writeIndent(w, depth)
	}

	if _, err := io.WriteString(w, "<"+tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, e); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	if isVoidElement(tag) {
		if r.config.Pretty {
			_, err := io.WriteString(w, "\n")
			return err
		}
		return nil
	}

	children := e.Children()
	block := r.config.Pretty && hasBlockChild(children)
	if block {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	for _, c := range children {
		if err := r.renderNode(w, c, depth+1); err != nil {
			return err
		}
	}
	if block {
		if !endsWithBlock(children) {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "</%s>", tag); err != nil {
		return err
	}
	if r.config.Pretty && !isInlineElement(tag) {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}

// renderAttributes writes attributes in document order. Empty values of
// boolean attributes are written as the bare name.
func (r *Renderer) renderAttributes(w io.Writer, e *dom.Element) error {
	if r.config.NodeIDs {
		if _, err := fmt.Fprintf(w, ` %s="%d"`, NodeIDAttr, e.ID()); err != nil {
			return err
		}
	}
	for _, a := range e.Attributes() {
		if a.Value == "" && isBooleanAttr(a.Name) {
			if _, err := io.WriteString(w, " "+a.Name); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, a.Name, escapeAttr(a.Value)); err != nil {
			return err
		}
	}
	return nil
}

func hasBlockChild(children []dom.Node) bool {
	for _, c := range children {
		if e, ok := c.(*dom.Element); ok && !isInlineElement(e.Tag()) {
			return true
		}
	}
	return false
}

func endsWithBlock(children []dom.Node) bool {
	if len(children) == 0 {
		return false
	}
	e, ok := children[len(children)-1].(*dom.Element)
	return ok && !isInlineElement(e.Tag())
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) {
	io.WriteString(w, strings.Repeat(r.config.Indent, depth))
}
