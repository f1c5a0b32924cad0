package el

import (
	"strings"

	"github.com/woby-dev/woby/pkg/dom"
	"github.com/woby-dev/woby/pkg/reactive"
)

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Generic attributes

// Attribute sets an arbitrary attribute or property. value may be an
// accessor.
func Attribute(name string, value any) Attr { return attr(name, value) }

// Prop is Attribute under the name used for custom element properties.
func Prop(name string, value any) Attr { return attr(name, value) }

// Spread forwards a prop bag, typically the rest of woby.SplitProps.
// Children and keys are dropped.
func Spread(props Props) []Attr {
	out := make([]Attr, 0, len(props))
	for _, k := range props.Keys() {
		if k == "children" || k == "key" {
			continue
		}
		out = append(out, attr(k, props[k]))
	}
	return out
}

// Identity attributes

// ID sets the id attribute.
func ID(id any) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// ClassFrom binds the class attribute to an accessor or thunk.
func ClassFrom(v any) Attr { return attr("class", v) }

// Classes sets classes by condition. Conditions may be accessors.
func Classes(m map[string]any) Attr { return attr("class", m) }

// Style sets the style attribute from a string or an accessor.
func Style(style any) Attr { return attr("style", style) }

// Styles sets style properties by name. Values may be accessors.
func Styles(m map[string]any) Attr { return attr("style", m) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key string, value any) Attr { return attr("data-"+key, value) }

// TitleAttr sets the title attribute (named to avoid conflict with TitleEl).
func TitleAttr(title any) Attr { return attr("title", title) }

// SlotAttr assigns the element to a named slot.
func SlotAttr(name string) Attr { return attr("slot", name) }

// Key identifies a child among its siblings. It is not rendered.
func Key(key any) Attr { return attr("key", key) }

// Ref binds a ref that is set while the element is connected.
func Ref(ref *reactive.Ref[*dom.Element]) Attr { return attr("ref", ref) }

// RefFunc calls fn each time the element is connected.
func RefFunc(fn func(*dom.Element)) Attr { return attr("ref", fn) }

// Links and media

// Href sets the href attribute.
func Href(url any) Attr { return attr("href", url) }

// Src sets the src attribute.
func Src(url any) Attr { return attr("src", url) }

// Alt sets the alt attribute.
func Alt(text any) Attr { return attr("alt", text) }

// Target sets the target attribute.
func Target(target string) Attr { return attr("target", target) }

// Rel sets the rel attribute.
func Rel(rel string) Attr { return attr("rel", rel) }

// Form attributes

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Value sets the value attribute.
func Value(value any) Attr { return attr("value", value) }

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Placeholder sets the placeholder attribute.
func Placeholder(text any) Attr { return attr("placeholder", text) }

// HTMLFor sets the for attribute of a label.
func HTMLFor(id string) Attr { return attr("for", id) }

// Min sets the min attribute.
func Min(v any) Attr { return attr("min", v) }

// Max sets the max attribute.
func Max(v any) Attr { return attr("max", v) }

// Step sets the step attribute.
func Step(v any) Attr { return attr("step", v) }

// Boolean attributes. Each accepts a bool or an accessor of bool.

// Disabled sets the disabled attribute.
func Disabled(v any) Attr { return attr("disabled", v) }

// Checked sets the checked attribute.
func Checked(v any) Attr { return attr("checked", v) }

// Hidden sets the hidden attribute.
func Hidden(v any) Attr { return attr("hidden", v) }

// Required sets the required attribute.
func Required(v any) Attr { return attr("required", v) }

// Readonly sets the readonly attribute.
func Readonly(v any) Attr { return attr("readonly", v) }

// Open sets the open attribute of details and dialog.
func Open(v any) Attr { return attr("open", v) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label any) Attr { return attr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attr { return attr("aria-hidden", boolString(hidden)) }

// AriaExpanded sets the aria-expanded attribute.
func AriaExpanded(expanded bool) Attr { return attr("aria-expanded", boolString(expanded)) }

// AriaLive sets the aria-live attribute.
func AriaLive(mode string) Attr { return attr("aria-live", mode) }

// aria-* values are enumerated strings, not boolean attributes.
func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

