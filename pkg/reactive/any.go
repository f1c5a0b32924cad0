package reactive

import (
	"fmt"
	"math"
	"reflect"
)

// AnySignal is the type-erased view of a Signal used by attribute bridges,
// which only know prop names and decoded values.
type AnySignal interface {
	ID() uint64

	// GetAny returns the current value and tracks it.
	GetAny() any

	// PeekAny returns the current value without tracking.
	PeekAny() any

	// SetAny converts value to the signal's type and writes it.
	// Returns ErrTypeMismatch if the value cannot be converted.
	SetAny(value any) error

	// TypeHint returns the attribute decoding hint.
	TypeHint() TypeHint

	// Kind returns the reflect kind of the signal's element type.
	Kind() reflect.Kind

	Dispose()
}

// PeekAny returns the value as an interface{} without tracking.
func (s *Signal[T]) PeekAny() any { return s.value }

// Kind returns the reflect kind of T. Interface-typed signals report the
// kind of the value they hold.
func (s *Signal[T]) Kind() reflect.Kind {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() == reflect.Interface {
		v := reflect.ValueOf(any(s.value))
		if !v.IsValid() {
			return reflect.Invalid
		}
		return v.Kind()
	}
	return t.Kind()
}

// SetAny sets the value from an interface{}.
func (s *Signal[T]) SetAny(value any) error {
	v, err := convertTo[T](value)
	if err != nil {
		return fmt.Errorf("signal #%d: %w", s.id, err)
	}
	return s.Set(v)
}

// convertTo converts value to T. Assignable values pass through; numbers
// convert between numeric kinds when no precision is lost; strings convert
// to string-kinded types.
func convertTo[T any](value any) (T, error) {
	var zero T
	if v, ok := value.(T); ok {
		return v, nil
	}

	target := reflect.TypeOf((*T)(nil)).Elem()
	if value == nil {
		switch target.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return zero, nil
		}
		return zero, ErrTypeMismatch
	}

	rv := reflect.ValueOf(value)
	switch {
	case isNumberKind(rv.Kind()) && isNumberKind(target.Kind()):
		f := toFloat(rv)
		if isIntKind(target.Kind()) || isUintKind(target.Kind()) {
			if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
				return zero, fmt.Errorf("%w: %v is not an integer", ErrTypeMismatch, value)
			}
			if isUintKind(target.Kind()) && f < 0 {
				return zero, fmt.Errorf("%w: %v is negative", ErrTypeMismatch, value)
			}
		}
		out := reflect.New(target).Elem()
		switch {
		case isIntKind(target.Kind()):
			out.SetInt(int64(f))
		case isUintKind(target.Kind()):
			out.SetUint(uint64(f))
		default:
			out.SetFloat(f)
		}
		return out.Interface().(T), nil

	case rv.Type().ConvertibleTo(target) && rv.Kind() == target.Kind():
		return rv.Convert(target).Interface().(T), nil
	}

	return zero, fmt.Errorf("%w: cannot use %T as %s", ErrTypeMismatch, value, target)
}

func isIntKind(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUintKind(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uintptr
}

func isNumberKind(k reflect.Kind) bool {
	return isIntKind(k) || isUintKind(k) || k == reflect.Float32 || k == reflect.Float64
}

func toFloat(v reflect.Value) float64 {
	switch {
	case isIntKind(v.Kind()):
		return float64(v.Int())
	case isUintKind(v.Kind()):
		return float64(v.Uint())
	default:
		return v.Float()
	}
}

var _ AnySignal = (*Signal[int])(nil)
