package render

import (
	"fmt"
	"io"

	"github.com/woby-dev/woby/pkg/dom"
)

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Title is the page title
	Title string

	// Body is rendered as the content of the body element; its own tag is
	// not written.
	Body *dom.Element

	// StyleSheets contains paths to external stylesheets
	StyleSheets []string

	// Script is inline JavaScript appended to the body.
	Script string

	// Lang is the language attribute for the html element
	// Defaults to "en" if not specified
	Lang string
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html lang=\"%s\">\n<head>\n", escapeAttr(lang)); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "  <meta charset=\"utf-8\">\n"); err != nil {
		return err
	}
	if page.Title != "" {
		if _, err := fmt.Fprintf(w, "  <title>%s</title>\n", escapeHTML(page.Title)); err != nil {
			return err
		}
	}
	for _, href := range page.StyleSheets {
		if _, err := fmt.Fprintf(w, "  <link rel=\"stylesheet\" href=\"%s\">\n", escapeAttr(href)); err != nil {
			return err
		}
	}

	bodyOpen := "<body>"
	if r.config.NodeIDs && page.Body != nil {
		bodyOpen = fmt.Sprintf(`<body %s="%d">`, NodeIDAttr, page.Body.ID())
	}
	if _, err := io.WriteString(w, "</head>\n"+bodyOpen+"\n"); err != nil {
		return err
	}
	if page.Body != nil {
		if err := r.RenderChildren(w, page.Body); err != nil {
			return err
		}
	}
	if page.Script != "" {
		if _, err := fmt.Fprintf(w, "\n<script>%s</script>", page.Script); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n</body>\n</html>\n")
	return err
}
