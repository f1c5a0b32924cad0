// Package woby builds reactive component trees into a dom.Document.
//
// A component is a plain function that runs once per mount. It reads props,
// creates signals and returns a description of its output. The builder turns
// that description into DOM nodes and binds every reactive value it meets to
// the single node that depends on it: a signal child becomes a text node that
// is rewritten on every write, a signal attribute is re-set on every write and
// a thunk child is rebuilt between two marker comments. Nothing is diffed.
//
//	Counter := func(c *woby.Ctx, props woby.Props) any {
//	    value := reactive.NewSignal(c.Runtime(), 0)
//	    return el.Fragment(
//	        el.H1("Counter"),
//	        el.P(value),
//	        el.Button(el.OnClick(func() { value.Update(func(v int) int { return v + 1 }) }), "+"),
//	    )
//	}
//	dispose, err := woby.Render(rt, Counter, doc.Body())
//
// # Ownership
//
// Every component mount gets a reactive.Owner. Signals, memos, effects and
// child components created while it renders belong to it and are disposed
// with it. Contexts are stored on owners, so a Provider is visible to its
// subtree only.
//
// # Lifecycle
//
// UseEffect and OnMount defer their work until the built nodes are inserted
// into the container. Refs given through the "ref" prop are attached when
// the element connects to the document and reset when it disconnects.
//
// # Errors
//
// A component that panics or returns an error aborts the construction of its
// subtree: its owner is disposed and the error travels up to the nearest
// ErrorBoundary, or out of Render.
package woby
