// Package reactive provides the fine-grained reactive core of woby.
//
// The reactive system tracks dependencies automatically at runtime. Reading a
// signal inside a tracked computation (a memo body or an effect body)
// subscribes that computation; writing the signal schedules it.
//
// # Primitives
//
//   - Signal: a mutable reactive cell with a version counter
//   - Memo: a cached, lazily recomputed derivation
//   - Effect: a side effect re-run when its dependencies change
//   - Owner: a disposal scope that owns signals, memos, effects and
//     context values
//   - Ref: a signal-backed handle that is set while a node is attached
//
// All primitives belong to a Runtime. A Runtime is single-threaded: every
// write propagates synchronously on the calling goroutine, and callers that
// share a Runtime across goroutines must serialize access themselves.
//
// # Propagation
//
// A write marks memos stale and queues effects. Nothing recomputes during the
// marking pass. When the outermost write (or Batch) returns, the queue is
// flushed: each queued effect first pulls its sources, which recomputes stale
// memos at most once, and only re-runs if a source version actually changed.
// Effects that write signals queue more work for a later pass of the same
// flush. A flush that needs more than MaxFlushPasses passes fails with
// ErrCyclicUpdate, and that error is returned to the caller whose write
// started the flush.
//
// # Example
//
//	rt := reactive.NewRuntime()
//	count := reactive.NewSignal(rt, 0)
//	doubled := reactive.NewMemo(rt, func() int { return count.Get() * 2 })
//
//	reactive.NewEffect(rt, func() reactive.Cleanup {
//	    fmt.Println("doubled is", doubled.Get())
//	    return nil
//	})
//
//	count.Set(5) // prints "doubled is 10"
package reactive
