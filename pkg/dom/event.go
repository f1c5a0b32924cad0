package dom

// Event is dispatched on an element and bubbles to its ancestors.
type Event struct {
	Type          string
	Target        *Element
	CurrentTarget *Element

	// Detail carries event data, for example the value of an input event.
	Detail any

	Bubbles bool

	stopped   bool
	prevented bool
}

// NewEvent creates a bubbling event.
func NewEvent(typ string, detail any) *Event {
	return &Event{Type: typ, Detail: detail, Bubbles: true}
}

// StopPropagation stops the event from reaching further ancestors.
func (ev *Event) StopPropagation() { ev.stopped = true }

// PreventDefault marks the event as canceled.
func (ev *Event) PreventDefault() { ev.prevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (ev *Event) DefaultPrevented() bool { return ev.prevented }

type listener struct {
	fn func(*Event)
}

// AddEventListener registers fn for events of type typ.
func (e *Element) AddEventListener(typ string, fn func(*Event)) (remove func()) {
	if e.listeners == nil {
		e.listeners = make(map[string][]*listener)
	}
	l := &listener{fn: fn}
	e.listeners[typ] = append(e.listeners[typ], l)
	return func() {
		ls := e.listeners[typ]
		for i, x := range ls {
			if x == l {
				e.listeners[typ] = append(ls[:i:i], ls[i+1:]...)
				return
			}
		}
	}
}

// HasListeners reports whether e has listeners for typ.
func (e *Element) HasListeners(typ string) bool {
	return len(e.listeners[typ]) > 0
}

// DispatchEvent runs the listeners of e and, for bubbling events, of its
// ancestors. It returns false if a listener called PreventDefault.
func (e *Element) DispatchEvent(ev *Event) bool {
	ev.Target = e
	for cur := e; cur != nil; cur = cur.parent {
		ev.CurrentTarget = cur
		for _, l := range append([]*listener(nil), cur.listeners[ev.Type]...) {
			l.fn(ev)
		}
		if ev.stopped || !ev.Bubbles {
			break
		}
	}
	ev.CurrentTarget = nil
	return !ev.prevented
}
