package reactive

import (
	"errors"

	werrors "github.com/woby-dev/woby/internal/errors"
)

// ErrUseAfterDispose is returned by writes to a disposed signal when the
// runtime runs in strict mode. Outside strict mode such writes are no-ops.
var ErrUseAfterDispose = werrors.New(werrors.CodeUseAfterDispose)

// ErrCyclicUpdate is returned when a flush does not converge: effects keep
// writing signals that re-queue effects for more than MaxFlushPasses passes.
var ErrCyclicUpdate = werrors.New(werrors.CodeCyclicUpdate)

// ErrEffectPanic is returned when an effect body panics. The flush that ran
// the effect stops and the remaining queue is dropped.
var ErrEffectPanic = werrors.New(werrors.CodeComponentPanic)

// ErrTypeMismatch is returned by SetAny when a value cannot be converted to
// the signal's element type.
var ErrTypeMismatch = errors.New("reactive: value type does not match signal type")

// panicError converts a recovered panic value into an error that matches
// ErrEffectPanic.
func panicError(what string, id uint64, r any) error {
	if err, ok := r.(error); ok {
		return ErrEffectPanic.Detailf("%s #%d panicked", what, id).Wrap(err)
	}
	return ErrEffectPanic.Detailf("%s #%d panicked: %v", what, id, r)
}
