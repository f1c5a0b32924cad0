package dom

// AppendChild inserts n as the last child of e.
func (e *Element) AppendChild(n Node) error {
	return e.InsertBefore(n, nil)
}

// InsertBefore inserts n before ref, or last when ref is nil. A node that
// already has a parent is removed from it first; that removal completes,
// including its disconnect callbacks, before the insertion starts.
func (e *Element) InsertBefore(n, ref Node) error {
	if n.OwnerDocument() != e.doc {
		return ErrWrongDocument
	}
	if Contains(n, e) {
		return ErrHierarchy
	}
	if ref != nil && ref.Parent() != e {
		return ErrNotChild
	}
	if ref == n {
		ref = NextSibling(n)
	}

	if old := n.Parent(); old != nil {
		if err := old.RemoveChild(n); err != nil {
			return err
		}
		// Callbacks of the removal may have moved ref.
		if ref != nil && ref.Parent() != e {
			return ErrNotChild
		}
	}

	idx := len(e.children)
	if ref != nil {
		idx = e.indexOf(ref)
	}
	e.children = append(e.children, nil)
	copy(e.children[idx+1:], e.children[idx:])
	e.children[idx] = n
	n.base().parent = e

	if !e.connected {
		return nil
	}
	e.doc.record(MutationRecord{Type: ChildList, Target: e, Added: []Node{n}})
	notifyConnected(setConnected(n, true))
	return nil
}

// RemoveChild detaches n from e.
func (e *Element) RemoveChild(n Node) error {
	if n.Parent() != e {
		return ErrNotChild
	}
	idx := e.indexOf(n)
	e.children = append(e.children[:idx], e.children[idx+1:]...)
	n.base().parent = nil

	if !e.connected {
		return nil
	}
	e.doc.record(MutationRecord{Type: ChildList, Target: e, Removed: []Node{n}})
	notifyDisconnected(setConnected(n, false))
	return nil
}

// ReplaceChildren removes all children of e and appends nodes.
func (e *Element) ReplaceChildren(nodes ...Node) error {
	for len(e.children) > 0 {
		if err := e.RemoveChild(e.children[len(e.children)-1]); err != nil {
			return err
		}
	}
	for _, n := range nodes {
		if err := e.AppendChild(n); err != nil {
			return err
		}
	}
	return nil
}

// setConnected flips the connection flag on the subtree rooted at n and
// returns its elements in tree order.
func setConnected(n Node, connected bool) []*Element {
	var elems []*Element
	visit := func(c Node) {
		c.base().connected = connected
		if el, ok := c.(*Element); ok {
			elems = append(elems, el)
		}
	}
	if el, ok := n.(*Element); ok {
		el.walk(visit)
	} else {
		visit(n)
	}
	return elems
}

// notifyConnected runs connect hooks for elements that are still connected
// and have not been notified.
func notifyConnected(elems []*Element) {
	for _, el := range elems {
		if !el.connected || el.notified {
			continue
		}
		el.notified = true
		for _, h := range append([]*hook(nil), el.onConnect...) {
			h.fn(el)
		}
		if el.doc.isCustom(el) && el.connected {
			el.doc.custom.Connected(el)
		}
	}
}

// notifyDisconnected runs disconnect hooks for elements that are still
// disconnected and were notified of their connection.
func notifyDisconnected(elems []*Element) {
	for _, el := range elems {
		if el.connected || !el.notified {
			continue
		}
		el.notified = false
		for _, h := range append([]*hook(nil), el.onDisconnect...) {
			h.fn(el)
		}
		if el.doc.isCustom(el) && !el.connected {
			el.doc.custom.Disconnected(el)
		}
	}
}
