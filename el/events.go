package el

// event creates an Attr for the handler. The key is prefixed with "on"
// (e.g., "click" becomes "onclick").
//
// handler is a func(), a func(*dom.Event), or an accessor holding one; the
// accessor is read at dispatch time.
func event(name string, handler any) Attr {
	return Attr{Key: "on" + name, Value: handler}
}

// On handles an arbitrary event type, including custom events dispatched
// by custom elements.
func On(name string, handler any) Attr { return event(name, handler) }

// Mouse events

// OnClick handles click events.
func OnClick(handler any) Attr { return event("click", handler) }

// OnDblClick handles double-click events.
func OnDblClick(handler any) Attr { return event("dblclick", handler) }

// OnMouseDown handles mousedown events.
func OnMouseDown(handler any) Attr { return event("mousedown", handler) }

// OnMouseUp handles mouseup events.
func OnMouseUp(handler any) Attr { return event("mouseup", handler) }

// OnMouseEnter handles mouseenter events.
func OnMouseEnter(handler any) Attr { return event("mouseenter", handler) }

// OnMouseLeave handles mouseleave events.
func OnMouseLeave(handler any) Attr { return event("mouseleave", handler) }

// Keyboard events

// OnKeyDown handles keydown events.
func OnKeyDown(handler any) Attr { return event("keydown", handler) }

// OnKeyUp handles keyup events.
func OnKeyUp(handler any) Attr { return event("keyup", handler) }

// Form events

// OnInput handles input events.
func OnInput(handler any) Attr { return event("input", handler) }

// OnChange handles change events.
func OnChange(handler any) Attr { return event("change", handler) }

// OnSubmit handles submit events.
func OnSubmit(handler any) Attr { return event("submit", handler) }

// OnFocus handles focus events.
func OnFocus(handler any) Attr { return event("focus", handler) }

// OnBlur handles blur events.
func OnBlur(handler any) Attr { return event("blur", handler) }

// Lifecycle events

// OnToggle handles toggle events of details elements.
func OnToggle(handler any) Attr { return event("toggle", handler) }
