// Package element adapts woby components to custom elements.
//
// A Registry maps tag names to component definitions and is installed on a
// document:
//
//	reg := element.NewRegistry(rt)
//	reg.Register("counter-button", Counter, "value", "style-*")
//	doc := dom.NewDocument(dom.WithCustomElements(reg))
//
// Each element goes through Unattached → Upgraded → Mounted → Unmounted.
// Upgrade happens on the first observed attribute change, property access or
// insertion; it builds the prop bag from the component defaults, the
// observed attributes and the properties buffered on the element. Mounting
// renders the component into the element and publishes its owner on the
// element, so Providers inside it are visible to nested custom elements.
// Unmounting disposes everything and returns the element to Unattached; a
// later insertion upgrades it again from its attributes.
//
// Observed names are literal ("value") or wildcard prefixes ending in "*"
// ("style-*"). A wildcard attribute writes one key path of a map prop:
// nested-nested-text="xyz" on "nested-*" sets prop nested to
// {"nested": {"text": "xyz"}}.
//
// Attribute values are decoded with the type hint of the prop signal (see
// reactive.WithType). Primitive props observed under a literal name are
// mirrored back to their attribute.
package element
