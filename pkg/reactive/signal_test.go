package reactive

import (
	"errors"
	"testing"
)

func TestSignalGetSet(t *testing.T) {
	rt := NewRuntime()
	s := NewSignal(rt, 10)

	if s.Get() != 10 {
		t.Errorf("expected 10, got %d", s.Get())
	}

	if err := s.Set(20); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if s.Get() != 20 {
		t.Errorf("expected 20, got %d", s.Get())
	}
	if s.Version() != 1 {
		t.Errorf("expected version 1, got %d", s.Version())
	}
}

func TestSignalUpdate(t *testing.T) {
	rt := NewRuntime()
	value := NewSignal(rt, 0)
	increment := func() { _ = value.Update(func(prev int) int { return prev + 1 }) }

	increment()
	increment()

	if value.Get() != 2 {
		t.Errorf("expected 2, got %d", value.Get())
	}
}

func TestSignalEqualWriteIsNoop(t *testing.T) {
	rt := NewRuntime()
	s := NewSignal(rt, "abc")
	runs := 0
	if _, err := NewEffect(rt, func() Cleanup {
		_ = s.Get()
		runs++
		return nil
	}); err != nil {
		t.Fatal(err)
	}

	_ = s.Set("abc")
	if runs != 1 {
		t.Errorf("equal write re-ran effect: runs = %d", runs)
	}
	if s.Version() != 0 {
		t.Errorf("equal write bumped version to %d", s.Version())
	}
}

func TestSignalCustomEquals(t *testing.T) {
	rt := NewRuntime()
	type point struct{ X, Y int }
	s := NewSignal(rt, point{1, 2}, WithEquals(func(a, b point) bool { return a.X == b.X }))

	_ = s.Set(point{1, 99})
	if s.Version() != 0 {
		t.Error("custom equality should treat same X as equal")
	}
	if s.Peek().Y != 2 {
		t.Errorf("value should be unchanged, got %+v", s.Peek())
	}

	_ = s.Set(point{2, 0})
	if s.Version() != 1 {
		t.Error("different X should be a change")
	}
}

func TestSignalPeekDoesNotTrack(t *testing.T) {
	rt := NewRuntime()
	s := NewSignal(rt, 1)
	runs := 0
	_, _ = NewEffect(rt, func() Cleanup {
		_ = s.Peek()
		runs++
		return nil
	})

	_ = s.Set(2)
	if runs != 1 {
		t.Errorf("Peek should not subscribe, runs = %d", runs)
	}
}

func TestSignalDisposedWrite(t *testing.T) {
	rt := NewRuntime()
	s := NewSignal(rt, 1)
	s.Dispose()

	if err := s.Set(2); err != nil {
		t.Errorf("non-strict write to disposed signal should be a no-op, got %v", err)
	}
	if s.Peek() != 1 {
		t.Errorf("disposed signal changed to %d", s.Peek())
	}

	strict := NewRuntime(WithStrict(true))
	s2 := NewSignal(strict, 1)
	s2.Dispose()
	if err := s2.Set(2); !errors.Is(err, ErrUseAfterDispose) {
		t.Errorf("strict write should fail with ErrUseAfterDispose, got %v", err)
	}
	if err := s2.Update(func(v int) int { return v + 1 }); !errors.Is(err, ErrUseAfterDispose) {
		t.Errorf("strict update should fail with ErrUseAfterDispose, got %v", err)
	}
}

func TestSignalSubscribesOncePerPass(t *testing.T) {
	rt := NewRuntime()
	s := NewSignal(rt, 1)
	_, _ = NewEffect(rt, func() Cleanup {
		_ = s.Get()
		_ = s.Get()
		_ = s.Get()
		return nil
	})

	if n := s.observerCount(); n != 1 {
		t.Errorf("expected 1 observer, got %d", n)
	}
}

func TestSignalOptions(t *testing.T) {
	rt := NewRuntime()
	s := NewSignal(rt, 0, WithType(TypeNumber), WithName("count"))
	if s.TypeHint() != TypeNumber {
		t.Errorf("TypeHint = %v", s.TypeHint())
	}
	if s.Name() != "count" {
		t.Errorf("Name = %q", s.Name())
	}
	if TypeBoolean.String() != "boolean" || TypeString.String() != "string" || TypeNumber.String() != "number" {
		t.Error("unexpected TypeHint names")
	}
}

func TestDefaultEquals(t *testing.T) {
	p1, p2 := new(int), new(int)
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"same int", 1, 1, true},
		{"different int", 1, 2, false},
		{"mixed dynamic types", 1, "1", false},
		{"same pointer", p1, p1, true},
		{"different pointer same value", p1, p2, false},
		{"equal maps", map[string]any{"a": 1}, map[string]any{"a": 1}, true},
		{"different maps", map[string]any{"a": 1}, map[string]any{"a": 2}, false},
		{"nil and nil", nil, nil, true},
		{"nil and value", nil, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := defaultEquals[any](tt.a, tt.b); got != tt.want {
				t.Errorf("defaultEquals(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}

	f := func() {}
	if defaultEquals(f, f) {
		t.Error("functions should never compare equal")
	}
}
