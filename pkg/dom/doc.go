// Package dom is an in-memory document model with the observable behavior a
// custom element runtime relies on.
//
// Nodes are created by a Document and form a tree under the document body.
// A node is connected while its root is the body. Inserting a subtree into a
// connected parent connects every node of the subtree in tree order and runs
// the connect hooks of its elements; removing it runs the disconnect hooks.
//
// # Custom Elements
//
// A Document can carry a CustomElements registry (see WithCustomElements).
// Elements whose tag the registry defines receive connected, disconnected
// and attribute-changed callbacks, and their property reads and writes are
// routed through the registry:
//
//	doc := dom.NewDocument(dom.WithCustomElements(reg))
//	host := doc.CreateElement("counter-button")
//	host.SetAttribute("value", "5")
//	doc.Body().AppendChild(host) // reg.Connected(host)
//
// Callbacks run after the tree mutation that triggered them is complete and
// re-check the node's actual connection state, so a callback may move or
// remove nodes freely.
//
// # Mutation Records
//
// MutationObserver collects attribute, child list and character data
// records for the connected part of the document. The dev server uses them
// to stream updates to a browser.
package dom
