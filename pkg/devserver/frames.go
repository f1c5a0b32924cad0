package devserver

import (
	"sort"
	"strings"

	"github.com/woby-dev/woby/pkg/dom"
	"github.com/woby-dev/woby/pkg/render"
)

// Frame ops sent to the client.
const (
	OpHTML       = "html"
	OpText       = "text"
	OpAttr       = "attr"
	OpRemoveAttr = "remove-attr"
)

// Frame is one server to client instruction. ID is the node id the client
// finds through the data-wid attribute.
type Frame struct {
	Op      string `json:"op"`
	ID      uint64 `json:"id"`
	Name    string `json:"name,omitempty"`
	Value   string `json:"value,omitempty"`
	HTML    string `json:"html,omitempty"`
	Session string `json:"session,omitempty"`
}

// ClientMessage is one client to server message.
type ClientMessage struct {
	Type   string `json:"type"`
	ID     uint64 `json:"id"`
	Event  string `json:"event"`
	Detail any    `json:"detail,omitempty"`
}

// Differ turns mutation records into frames.
type Differ struct {
	renderer *render.Renderer
}

// NewDiffer creates a Differ rendering replaced subtrees with node ids.
func NewDiffer() *Differ {
	return &Differ{
		renderer: render.NewRenderer(render.RendererConfig{
			NodeIDs:      true,
			SkipComments: true,
		}),
	}
}

// Snapshot returns the html frame replacing the whole body of doc.
func (d *Differ) Snapshot(doc *dom.Document) Frame {
	body := doc.Body()
	return Frame{Op: OpHTML, ID: body.ID(), HTML: d.inner(body)}
}

// Diff collapses records into frames describing the current state of the
// changed nodes. Child list changes re-render their parent, and changes
// inside a re-rendered subtree are dropped.
func (d *Differ) Diff(records []dom.MutationRecord) []Frame {
	var rebuild []*dom.Element
	for _, r := range records {
		if !r.Target.IsConnected() {
			continue
		}
		switch r.Type {
		case dom.ChildList:
			if e, ok := r.Target.(*dom.Element); ok {
				rebuild = append(rebuild, e)
			}
		case dom.CharacterData:
			if p := r.Target.Parent(); p != nil && soleText(p) == nil {
				rebuild = append(rebuild, p)
			}
		}
	}
	rebuild = outermost(rebuild)

	covered := func(n dom.Node) bool {
		for _, e := range rebuild {
			if dom.Contains(e, n) {
				return true
			}
		}
		return false
	}

	type attrKey struct {
		id   uint64
		name string
	}
	var frames []Frame
	attrs := make(map[attrKey]bool)
	texts := make(map[uint64]bool)
	for _, r := range records {
		if !r.Target.IsConnected() {
			continue
		}
		switch r.Type {
		case dom.Attributes:
			e, ok := r.Target.(*dom.Element)
			if !ok || covered(e) {
				continue
			}
			key := attrKey{e.ID(), r.AttributeName}
			if attrs[key] {
				continue
			}
			attrs[key] = true
			if v, ok := e.GetAttribute(r.AttributeName); ok {
				frames = append(frames, Frame{Op: OpAttr, ID: e.ID(), Name: r.AttributeName, Value: v})
			} else {
				frames = append(frames, Frame{Op: OpRemoveAttr, ID: e.ID(), Name: r.AttributeName})
			}
		case dom.CharacterData:
			p := r.Target.Parent()
			if p == nil || covered(p) {
				continue
			}
			if texts[p.ID()] {
				continue
			}
			texts[p.ID()] = true
			frames = append(frames, Frame{Op: OpText, ID: p.ID(), Value: dom.TextContent(p)})
		}
	}

	for _, e := range rebuild {
		frames = append(frames, Frame{Op: OpHTML, ID: e.ID(), HTML: d.inner(e)})
	}
	return frames
}

func (d *Differ) inner(e *dom.Element) string {
	var sb strings.Builder
	_ = d.renderer.RenderChildren(&sb, e)
	return sb.String()
}

// soleText returns nil unless e has exactly one non-comment child and it is
// a text node. Browsers merge adjacent text, so only then can a text frame
// address it through its parent.
func soleText(e *dom.Element) *dom.Text {
	var text *dom.Text
	for _, c := range e.Children() {
		switch v := c.(type) {
		case *dom.Comment:
		case *dom.Text:
			if text != nil {
				return nil
			}
			text = v
		default:
			return nil
		}
	}
	return text
}

// outermost drops duplicates and elements contained in another one, in id
// order.
func outermost(elems []*dom.Element) []*dom.Element {
	sort.Slice(elems, func(i, j int) bool { return elems[i].ID() < elems[j].ID() })
	var out []*dom.Element
	for i, e := range elems {
		if i > 0 && elems[i-1] == e {
			continue
		}
		inside := false
		for _, o := range elems {
			if o != e && dom.Contains(o, e) {
				inside = true
				break
			}
		}
		if !inside {
			out = append(out, e)
		}
	}
	return out
}
