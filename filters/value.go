package filters

import (
	"fmt"
	"reflect"

	"github.com/spf13/cast"
)

// stringify renders an arbitrary template value the way it would appear in
// page output. nil renders as the empty string.
func stringify(v any) string {
	if v == nil {
		return ""
	}
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// toSlice normalizes slice and array values to []any. The second return
// value reports whether v was a sequence at all; strings and maps are not
// sequences here.
func toSlice(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	if items, ok := v.([]any); ok {
		return items, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return items, true
	}
	return nil, false
}

// equal compares two template values with ==, treating a panic on
// uncomparable operands (slices, maps) as not equal.
func equal(a, b any) (eq bool) {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}
