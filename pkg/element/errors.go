package element

import (
	werrors "github.com/woby-dev/woby/internal/errors"
)

var (
	// ErrInvalidAttributeDecode is reported when an attribute value does not
	// decode under the prop's type hint.
	ErrInvalidAttributeDecode = werrors.New(werrors.CodeInvalidAttributeDecode)

	// ErrDuplicateElement is returned when a tag is registered twice.
	ErrDuplicateElement = werrors.New(werrors.CodeDuplicateElement)

	// ErrInvalidElementName is returned for tags that are not valid custom
	// element names.
	ErrInvalidElementName = werrors.New(werrors.CodeInvalidElementName)
)
