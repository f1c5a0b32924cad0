// Package el provides the element DSL for woby.
//
// Element constructors take mixed arguments: attributes (Attr, []Attr,
// Props), event handlers and children. Attribute and child values may be
// accessors, in which case the builder keeps them in sync.
//
// Typical usage:
//
//	import (
//	    "github.com/woby-dev/woby/pkg/woby"
//	    . "github.com/woby-dev/woby/el"
//	)
//
//	Div(Class("counter"),
//	    P(count),
//	    Button(OnClick(increment), "+"),
//	)
//
// This keeps the DSL in a dedicated package while the runtime lives in woby.
package el
