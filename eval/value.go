package eval

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Len returns the broadcast length of an evaluation result: the element
// count for slice and array values, 1 for every scalar. Strings and byte
// slices are scalars. A nil result has length 1 (it renders as the NA
// marker).
func Len(v any) int {
	if v == nil {
		return 1
	}

	if _, ok := v.([]byte); ok {
		return 1
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Len()
	default:
		return 1
	}
}

// Index returns element i of a vector value, or the value itself for
// scalars. Callers index modulo [Len] when recycling.
func Index(v any, i int) any {
	if !IsVector(v) {
		return v
	}

	rv := reflect.ValueOf(v)
	if rv.Len() == 0 {
		return nil
	}

	return rv.Index(i % rv.Len()).Interface()
}

// IsVector reports whether v broadcasts as a sequence. Single-element and
// empty slices are still vectors.
func IsVector(v any) bool {
	if v == nil {
		return false
	}

	if _, ok := v.([]byte); ok {
		return false
	}

	k := reflect.ValueOf(v).Kind()

	return k == reflect.Slice || k == reflect.Array
}

// Stringify converts one scalar value to its interpolated text. A nil value
// renders as the na marker. Floats use the shortest representation that
// round-trips.
func Stringify(v any, na string) string {
	switch val := v.(type) {
	case nil:
		return na

	case string:
		return val

	case []byte:
		return string(val)

	case bool:
		return strconv.FormatBool(val)

	case int:
		return strconv.Itoa(val)

	case int64:
		return strconv.FormatInt(val, 10)

	case uint64:
		return strconv.FormatUint(val, 10)

	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)

	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)

	case fmt.Stringer:
		return val.String()

	default:
		return fmt.Sprintf("%v", val)
	}
}

// StringifyAll converts every element of a possibly-vector value.
func StringifyAll(v any, na string) []string {
	n := Len(v)
	out := make([]string, n)

	for i := 0; i < n; i++ {
		out[i] = Stringify(Index(v, i), na)
	}

	return out
}

// Join collapses a possibly-vector value into one string. Elements are
// separated by sep, except that last (when non-empty) separates the final
// pair.
func Join(v any, sep, last string, na string) string {
	parts := StringifyAll(v, na)

	if last == "" || len(parts) < 2 {
		return strings.Join(parts, sep)
	}

	head := strings.Join(parts[:len(parts)-1], sep)

	return head + last + parts[len(parts)-1]
}
