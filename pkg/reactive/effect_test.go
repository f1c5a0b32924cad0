package reactive

import (
	"errors"
	"testing"
)

func TestEffectRunsImmediately(t *testing.T) {
	rt := NewRuntime()
	ran := false
	if _, err := NewEffect(rt, func() Cleanup {
		ran = true
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	if !ran {
		t.Error("effect should run on creation")
	}
}

func TestEffectRerunsOnChange(t *testing.T) {
	rt := NewRuntime()
	count := NewSignal(rt, 0)
	var seen []int

	_, _ = NewEffect(rt, func() Cleanup {
		seen = append(seen, count.Get())
		return nil
	})

	_ = count.Set(1)
	_ = count.Set(2)

	want := []int{0, 1, 2}
	if len(seen) != len(want) {
		t.Fatalf("seen = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("seen[%d] = %d, want %d", i, seen[i], want[i])
		}
	}
}

func TestEffectCleanup(t *testing.T) {
	rt := NewRuntime()
	count := NewSignal(rt, 0)
	cleanups := 0

	e, _ := NewEffect(rt, func() Cleanup {
		_ = count.Get()
		return func() { cleanups++ }
	})

	_ = count.Set(1)
	if cleanups != 1 {
		t.Errorf("cleanup should run before re-run, got %d", cleanups)
	}

	e.Dispose()
	if cleanups != 2 {
		t.Errorf("cleanup should run on dispose, got %d", cleanups)
	}
}

func TestEffectDisposeStopsReruns(t *testing.T) {
	rt := NewRuntime()
	count := NewSignal(rt, 0)
	runs := 0

	e, _ := NewEffect(rt, func() Cleanup {
		_ = count.Get()
		runs++
		return nil
	})
	e.Dispose()

	_ = count.Set(1)
	_ = count.Set(2)
	if runs != 1 {
		t.Errorf("disposed effect re-ran, runs = %d", runs)
	}
	if count.observerCount() != 0 {
		t.Errorf("disposed effect still subscribed")
	}
}

func TestEffectDisposedWhileQueuedIsSkipped(t *testing.T) {
	rt := NewRuntime()
	trigger := NewSignal(rt, 0)
	runsB := 0

	var b *Effect
	_, _ = NewEffect(rt, func() Cleanup {
		if trigger.Get() > 0 && b != nil {
			b.Dispose()
		}
		return nil
	})
	b, _ = NewEffect(rt, func() Cleanup {
		_ = trigger.Get()
		runsB++
		return nil
	})

	_ = trigger.Set(1)
	if runsB != 1 {
		t.Errorf("effect disposed before its turn should be skipped, runs = %d", runsB)
	}
}

func TestEffectWritesRunInLaterPass(t *testing.T) {
	rt := NewRuntime()
	source := NewSignal(rt, 1)
	derived := NewSignal(rt, 0)
	var order []string

	_, _ = NewEffect(rt, func() Cleanup {
		order = append(order, "reader")
		_ = derived.Get()
		return nil
	})
	_, _ = NewEffect(rt, func() Cleanup {
		order = append(order, "writer")
		_ = derived.Set(source.Get() * 10)
		return nil
	})

	order = nil
	var passes int
	rt.observer = ObserverFunc(func(s FlushStats) { passes = s.Passes })

	if err := source.Set(2); err != nil {
		t.Fatal(err)
	}
	if derived.Peek() != 20 {
		t.Errorf("derived = %d, want 20", derived.Peek())
	}
	if len(order) != 2 || order[0] != "writer" || order[1] != "reader" {
		t.Errorf("order = %v, want [writer reader]", order)
	}
	if passes != 2 {
		t.Errorf("passes = %d, want 2", passes)
	}
}

func TestEffectCyclicUpdate(t *testing.T) {
	rt := NewRuntime(WithMaxFlushPasses(10))
	a := NewSignal(rt, 0)

	_, err := NewEffect(rt, func() Cleanup {
		_ = a.Set(a.Get() + 1)
		return nil
	})
	if !errors.Is(err, ErrCyclicUpdate) {
		t.Fatalf("expected ErrCyclicUpdate, got %v", err)
	}
	if rt.Pending() != 0 {
		t.Errorf("queue should be dropped after a cyclic update, %d pending", rt.Pending())
	}

	// The error reaches the caller whose write started the flush.
	err = a.Set(-100)
	if !errors.Is(err, ErrCyclicUpdate) {
		t.Errorf("expected ErrCyclicUpdate from Set, got %v", err)
	}
}

func TestEffectConvergingWrites(t *testing.T) {
	rt := NewRuntime()
	a := NewSignal(rt, 0)

	_, err := NewEffect(rt, func() Cleanup {
		if v := a.Get(); v < 5 {
			_ = a.Set(v + 1)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("converging cycle should not fail: %v", err)
	}
	if a.Peek() != 5 {
		t.Errorf("a = %d, want 5", a.Peek())
	}
}

func TestEffectPanicIsReturned(t *testing.T) {
	rt := NewRuntime()
	boom := NewSignal(rt, false)
	other := 0

	_, err := NewEffect(rt, func() Cleanup {
		if boom.Get() {
			panic("boom")
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	_, _ = NewEffect(rt, func() Cleanup {
		_ = boom.Get()
		other++
		return nil
	})

	err = boom.Set(true)
	if !errors.Is(err, ErrEffectPanic) {
		t.Fatalf("expected ErrEffectPanic, got %v", err)
	}
	if other != 1 {
		t.Errorf("effects after the failing one must not run in the aborted flush, other = %d", other)
	}
	if rt.listener != nil || rt.flushing {
		t.Error("runtime state not restored after panic")
	}
}

func TestEffectFirstRunPanicDisposes(t *testing.T) {
	rt := NewRuntime()
	s := NewSignal(rt, 0)
	e, err := NewEffect(rt, func() Cleanup {
		_ = s.Get()
		panic(errors.New("bad"))
	})
	if !errors.Is(err, ErrEffectPanic) {
		t.Fatalf("expected ErrEffectPanic, got %v", err)
	}
	if !e.Disposed() {
		t.Error("effect should be disposed after a failed first run")
	}
	if s.observerCount() != 0 {
		t.Error("failed effect still subscribed")
	}
}

func TestEffectScopeDisposedBetweenRuns(t *testing.T) {
	rt := NewRuntime()
	outer := NewSignal(rt, 0)
	inner := NewSignal(rt, 0)
	innerRuns := 0

	_, _ = NewEffect(rt, func() Cleanup {
		_ = outer.Get()
		_, _ = NewEffect(rt, func() Cleanup {
			_ = inner.Get()
			innerRuns++
			return nil
		})
		return nil
	})

	_ = outer.Set(1) // disposes the first inner effect, creates a second
	innerRuns = 0
	_ = inner.Set(1)
	if innerRuns != 1 {
		t.Errorf("only the live inner effect should run, runs = %d", innerRuns)
	}
}

func TestEffectSkipsWhenSourcesUnchanged(t *testing.T) {
	rt := NewRuntime()
	s := NewSignal(rt, 1)
	runs := 0
	e, _ := NewEffect(rt, func() Cleanup {
		_ = s.Get()
		runs++
		return nil
	})

	// Write and restore inside one batch: the version moved, so it re-runs.
	_ = rt.Batch(func() {
		_ = s.Set(2)
		_ = s.Set(1)
	})
	if runs != 2 {
		t.Errorf("runs = %d, want 2", runs)
	}
	if e.Runs() != runs {
		t.Errorf("Runs() = %d, want %d", e.Runs(), runs)
	}
}
