package reactive

import (
	"testing"
)

func TestOwnerDisposesOwnedPrimitives(t *testing.T) {
	rt := NewRuntime()
	external := NewSignal(rt, 0)
	owner := NewOwner(nil)

	var local *Signal[int]
	runs := 0
	rt.WithOwner(owner, func() {
		local = NewSignal(rt, 1)
		_, _ = NewEffect(rt, func() Cleanup {
			_ = external.Get()
			runs++
			return nil
		})
	})

	owner.Dispose()

	if !local.Disposed() {
		t.Error("signal created under the owner should be disposed")
	}
	_ = external.Set(1)
	if runs != 1 {
		t.Errorf("effect of disposed owner re-ran, runs = %d", runs)
	}
}

func TestOwnerDisposeOrder(t *testing.T) {
	root := NewOwner(nil)
	childA := NewOwner(root)
	childB := NewOwner(root)
	var order []string

	childA.OnCleanup(func() { order = append(order, "A") })
	childB.OnCleanup(func() { order = append(order, "B") })
	root.OnCleanup(func() { order = append(order, "root1") })
	root.OnCleanup(func() { order = append(order, "root2") })

	root.Dispose()

	want := []string{"B", "A", "root2", "root1"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %s, want %s", i, order[i], want[i])
		}
	}
	if !childA.Disposed() || !childB.Disposed() {
		t.Error("children should be disposed")
	}
}

func TestOwnerDisposeDetachesFromParent(t *testing.T) {
	root := NewOwner(nil)
	child := NewOwner(root)
	child.Dispose()

	if len(root.children) != 0 {
		t.Errorf("disposed child still attached, %d children", len(root.children))
	}
}

func TestOwnerCleanupAfterDisposeRunsImmediately(t *testing.T) {
	o := NewOwner(nil)
	o.Dispose()
	ran := false
	o.OnCleanup(func() { ran = true })
	if !ran {
		t.Error("cleanup on disposed owner should run immediately")
	}
}

func TestOwnerValuesScope(t *testing.T) {
	root := NewOwner(nil)
	provider := NewOwner(root)
	inside := NewOwner(provider)
	sibling := NewOwner(root)

	provider.SetValue("theme", "dark")

	if v, ok := inside.Lookup("theme"); !ok || v != "dark" {
		t.Errorf("descendant should see provider value, got %v %v", v, ok)
	}
	if _, ok := sibling.Lookup("theme"); ok {
		t.Error("sibling subtree must not see the provider value")
	}
	if _, ok := root.Lookup("theme"); ok {
		t.Error("ancestor must not see the provider value")
	}

	// Nearest binding wins.
	inside.SetValue("theme", "light")
	if inside.GetValue("theme") != "light" {
		t.Error("nearest binding should shadow outer binding")
	}

	provider.Dispose()
	if _, ok := provider.Lookup("theme"); ok {
		t.Error("disposed owner should drop its bindings")
	}
}

func TestOwnerRunPending(t *testing.T) {
	root := NewOwner(nil)
	child := NewOwner(root)
	var order []string

	root.Defer(func() {
		order = append(order, "root")
		root.Defer(func() { order = append(order, "root-late") })
	})
	child.Defer(func() { order = append(order, "child") })

	if !root.HasPending() {
		t.Error("expected pending work")
	}
	root.RunPending()

	want := []string{"root", "root-late", "child"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %s, want %s", i, order[i], want[i])
		}
	}
	if root.HasPending() {
		t.Error("pending work should be drained")
	}
}

func TestOwnDisposedOwner(t *testing.T) {
	rt := NewRuntime()
	o := NewOwner(nil)
	o.Dispose()

	var s *Signal[int]
	rt.WithOwner(o, func() {
		s = NewSignal(rt, 0)
	})
	if !s.Disposed() {
		t.Error("signal created under a disposed owner should be disposed")
	}
}
