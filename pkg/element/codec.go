package element

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/woby-dev/woby/pkg/reactive"
)

// DecodeAttribute converts an attribute value according to hint. A nil raw
// value means the attribute is absent: booleans decode to false and the
// other hints to nil.
//
// Booleans accept "", "true" and "false". Numbers decode to int when the
// text is an integer and to float64 otherwise; NaN and infinities are
// rejected.
func DecodeAttribute(hint reactive.TypeHint, raw *string) (any, error) {
	switch hint {
	case reactive.TypeBoolean:
		if raw == nil {
			return false, nil
		}
		switch strings.TrimSpace(*raw) {
		case "", "true":
			return true, nil
		case "false":
			return false, nil
		}
		return nil, ErrInvalidAttributeDecode.Detailf("%q is not a boolean", *raw)

	case reactive.TypeNumber:
		if raw == nil {
			return nil, nil
		}
		s := strings.TrimSpace(*raw)
		if i, err := strconv.Atoi(s); err == nil {
			return i, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, ErrInvalidAttributeDecode.Detailf("%q is not a number", *raw)
		}
		return f, nil

	default:
		if raw == nil {
			return nil, nil
		}
		return *raw, nil
	}
}

// EncodeAttribute converts a primitive value to attribute text. The boolean
// result is false when the attribute should be absent: for nil, false and
// values that are not primitives.
func EncodeAttribute(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case bool:
		if x {
			return "true", true
		}
		return "", false
	case string:
		return x, true
	case int:
		return strconv.Itoa(x), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		if rv.Bool() {
			return "true", true
		}
		return "", false
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	}
	return "", false
}

// isPrimitive reports whether v is mirrored to an attribute. nil counts as
// primitive and removes the attribute.
func isPrimitive(v any) bool {
	if v == nil {
		return true
	}
	return primitiveKind(reflect.ValueOf(v).Kind())
}

func primitiveKind(k reflect.Kind) bool {
	switch k {
	case reflect.Invalid, reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// canonical decodes and re-encodes raw so that spellings of the same value
// compare equal ("" and "true" for booleans, " 5" and "5" for numbers).
func canonical(hint reactive.TypeHint, raw string) string {
	v, err := DecodeAttribute(hint, &raw)
	if err != nil {
		return raw
	}
	s, _ := EncodeAttribute(v)
	return s
}

// KeyPath returns the key path an attribute addresses below a wildcard
// prefix: KeyPath("nested-nested-text", "nested-") is [nested text]. It
// returns nil when attr does not extend prefix.
func KeyPath(attr, prefix string) []string {
	if !strings.HasPrefix(attr, prefix) || len(attr) == len(prefix) {
		return nil
	}
	var path []string
	for _, seg := range strings.Split(attr[len(prefix):], "-") {
		if seg != "" {
			path = append(path, seg)
		}
	}
	return path
}

// setPath returns a copy of m with path set to v, creating intermediate
// maps. A nil v deletes the leaf and prunes maps left empty. m is not
// modified.
func setPath(m map[string]any, path []string, v any) map[string]any {
	out := make(map[string]any, len(m)+1)
	for k, x := range m {
		out[k] = x
	}
	if len(path) == 0 {
		return out
	}
	if len(path) == 1 {
		if v == nil {
			delete(out, path[0])
		} else {
			out[path[0]] = v
		}
		return out
	}
	child, _ := out[path[0]].(map[string]any)
	next := setPath(child, path[1:], v)
	if len(next) == 0 {
		delete(out, path[0])
	} else {
		out[path[0]] = next
	}
	return out
}
