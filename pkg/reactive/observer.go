package reactive

import "time"

// FlushStats describes one drained effect queue.
type FlushStats struct {
	// Start is when the flush began.
	Start time.Time

	// Duration is how long the flush took.
	Duration time.Duration

	// Passes is the number of passes the flush needed.
	Passes int

	// EffectRuns counts effects whose body ran.
	EffectRuns int

	// Skipped counts queued effects whose sources turned out unchanged.
	Skipped int

	// Err is the error that ended the flush, if any.
	Err error
}

// Observer receives flush statistics. Implementations must not write
// signals of the runtime they observe.
type Observer interface {
	ObserveFlush(stats FlushStats)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(FlushStats)

// ObserveFlush implements Observer.
func (f ObserverFunc) ObserveFlush(stats FlushStats) { f(stats) }
