package reactive

// TypeHint tells attribute bridges how to decode a string into the signal's
// value. Signals without a hint are treated as strings.
type TypeHint uint8

const (
	// TypeString keeps attribute values as strings.
	TypeString TypeHint = iota

	// TypeNumber parses attribute values as decimal numbers.
	TypeNumber

	// TypeBoolean treats attribute presence as true and "false" or
	// removal as false.
	TypeBoolean
)

// String returns the hint name as used in configuration.
func (h TypeHint) String() string {
	switch h {
	case TypeNumber:
		return "number"
	case TypeBoolean:
		return "boolean"
	default:
		return "string"
	}
}

// SignalOption is a functional option for configuring signals.
type SignalOption func(*signalOptions)

// signalOptions holds configuration for signal behavior.
type signalOptions struct {
	hint  TypeHint
	name  string
	equal any
}

// WithType sets the attribute decoding hint of a signal.
//
// Example:
//
//	value := reactive.NewSignal(rt, 0, reactive.WithType(reactive.TypeNumber))
func WithType(hint TypeHint) SignalOption {
	return func(o *signalOptions) {
		o.hint = hint
	}
}

// WithName names a signal for diagnostics.
func WithName(name string) SignalOption {
	return func(o *signalOptions) {
		o.name = name
	}
}

// WithEquals sets the equality function used to detect no-op writes.
// The function type must match the signal's element type, otherwise the
// option is ignored.
func WithEquals[T any](fn func(a, b T) bool) SignalOption {
	return func(o *signalOptions) {
		o.equal = fn
	}
}

// applyOptions applies the given options and returns the resulting config.
func applyOptions(opts []SignalOption) signalOptions {
	var options signalOptions
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
