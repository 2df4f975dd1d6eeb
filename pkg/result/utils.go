package result

import (
	"reflect"
)

// isAbsent reports whether v is nil or a typed nil of a nilable kind.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func,
		reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// equal prefers the payload's own Equal method. Otherwise comparable
// values, including the dynamic value behind an interface, use ==, so
// pointers and errors compare by identity. Only values == cannot handle,
// such as slices and maps, fall back to reflect.DeepEqual.
func equal[T any](a, b T) bool {
	if eq, ok := any(a).(interface{ Equal(T) bool }); ok {
		return eq.Equal(b)
	}
	va, vb := any(a), any(b)
	if va == nil || vb == nil {
		return va == vb
	}
	if reflect.ValueOf(va).Comparable() && reflect.ValueOf(vb).Comparable() {
		return va == vb
	}
	return reflect.DeepEqual(va, vb)
}
