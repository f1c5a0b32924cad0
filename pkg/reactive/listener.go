package reactive

// Cleanup is a function returned by effects to clean up resources.
// It is called before the effect re-runs and when the effect is disposed.
type Cleanup func()

// source is anything a computation can depend on: signals and memos.
type source interface {
	addObserver(o observer)
	removeObserver(o observer)

	// latestVersion brings the source up to date and returns its version.
	// For memos this is where lazy recomputation happens.
	latestVersion() uint64
}

// observer is anything that tracks sources: memos and effects.
type observer interface {
	ID() uint64

	// markStale notifies the observer that one of its sources changed.
	// It must not recompute anything.
	markStale()

	// trackSource records a read of src at version. It returns false when
	// src was already recorded during the current pass.
	trackSource(src source, version uint64) bool
}

// disposable is owned by an Owner and torn down with it.
type disposable interface {
	Dispose()
}

// dep is a recorded read: the source and the version that was observed.
type dep struct {
	src     source
	version uint64
}

// tracker collects the sources read during one pass of a computation.
type tracker struct {
	deps []dep
	seen map[source]int
}

// record adds src unless it was already read during this pass.
func (t *tracker) record(src source, version uint64) bool {
	if t.seen == nil {
		t.seen = make(map[source]int)
	}
	if _, ok := t.seen[src]; ok {
		return false
	}
	t.seen[src] = len(t.deps)
	t.deps = append(t.deps, dep{src: src, version: version})
	return true
}

// changed pulls every source and reports whether any version moved since it
// was recorded. Sources are checked in read order and the scan stops at the
// first change, so memos behind a changed source are not refreshed needlessly.
func (t *tracker) changed() bool {
	for _, d := range t.deps {
		if d.src.latestVersion() != d.version {
			return true
		}
	}
	return false
}

// release unsubscribes o from every recorded source and resets the tracker.
func (t *tracker) release(o observer) {
	for _, d := range t.deps {
		d.src.removeObserver(o)
	}
	t.deps = t.deps[:0]
	t.seen = nil
}

// len returns the number of recorded sources.
func (t *tracker) len() int {
	return len(t.deps)
}
