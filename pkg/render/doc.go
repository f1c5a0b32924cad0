// Package render serializes a live dom.Document to HTML.
//
// The renderer walks the current state of the tree: bound text and
// attributes are written with the values they hold at that moment. Text and
// attribute values are escaped; void elements have no closing tag.
//
//	r := render.NewRenderer(render.RendererConfig{Pretty: true})
//	html, err := r.RenderToString(doc.Body())
//
// # Node IDs
//
// With NodeIDs set, every element carries a data-wid attribute holding its
// dom node id. The dev server uses it to address elements in update frames
// and to route browser events back to the document.
//
// # Pages
//
// RenderPage wraps a body in a complete HTML document with a title,
// stylesheets and an optional bootstrap script.
package render
