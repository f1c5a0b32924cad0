package woby

import (
	werrors "github.com/woby-dev/woby/internal/errors"
)

// ErrMissingContext is returned by Context.Require when no Provider is
// bound above the caller.
var ErrMissingContext = werrors.New(werrors.CodeMissingContext)

// ErrComponentPanic is returned when a component body panics.
var ErrComponentPanic = werrors.New(werrors.CodeComponentPanic)
