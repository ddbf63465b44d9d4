package util

import (
	"reflect"
	"strings"
	"unicode"
)

// IsNotDefined reports whether v is absent: nil, a nil pointer/map/slice, or the empty string
func IsNotDefined(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return s == ""
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}

	return false
}

func IsNotString(v any) bool {
	_, ok := v.(string)
	return !ok
}

func IsNotBoolean(v any) bool {
	_, ok := v.(bool)
	return !ok
}

// IsNotFunction reports whether v is not a non-nil function value of any signature
func IsNotFunction(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)

	return rv.Kind() != reflect.Func || rv.IsNil()
}

// IsArray reports whether v is a slice or an array. Strings are not arrays.
func IsArray(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}

	return false
}

func IsNotArray(v any) bool {
	return !IsArray(v)
}

// IsNotEmptyArray reports whether v is an array holding at least one element
func IsNotEmptyArray(v any) bool {
	return IsArray(v) && reflect.ValueOf(v).Len() > 0
}

// Elements copies the elements of a slice or array into a []any. Anything else yields nil.
func Elements(v any) []any {
	if IsNotArray(v) {
		return nil
	}
	rv := reflect.ValueOf(v)
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}

	return out
}

// IsNumber reports whether v holds any Go integer or floating point kind
func IsNumber(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}

	return false
}

// ToFloat converts any number accepted by IsNumber to float64
func ToFloat(v any) (float64, bool) {
	if !IsNumber(v) {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch {
	case rv.CanInt():
		return float64(rv.Int()), true
	case rv.CanUint():
		return float64(rv.Uint()), true
	}

	return rv.Float(), true
}

func isNotArrayOf(v any, accept func(any) bool) bool {
	if IsNotArray(v) {
		return true
	}
	for _, elem := range Elements(v) {
		if !accept(elem) {
			return true
		}
	}

	return false
}

// IsNotArrayOfStrings reports whether v is not an array made only of strings. Empty arrays qualify.
func IsNotArrayOfStrings(v any) bool {
	return isNotArrayOf(v, func(elem any) bool { return !IsNotString(elem) })
}

// IsNotArrayOfNumbers reports whether v is not an array made only of numbers. Empty arrays qualify.
func IsNotArrayOfNumbers(v any) bool {
	return isNotArrayOf(v, IsNumber)
}

// IsNotArrayOfBooleans reports whether v is not an array made only of booleans. Empty arrays qualify.
func IsNotArrayOfBooleans(v any) bool {
	return isNotArrayOf(v, func(elem any) bool { return !IsNotBoolean(elem) })
}

// StringContainsSpaces reports whether s holds any whitespace rune
func StringContainsSpaces(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}

// ArrayOfStringsHasEntriesWithSpaces reports whether any string element of v contains whitespace
func ArrayOfStringsHasEntriesWithSpaces(v any) bool {
	for _, elem := range Elements(v) {
		if s, ok := elem.(string); ok && StringContainsSpaces(s) {
			return true
		}
	}

	return false
}

// IsNotAllowedStringValue reports whether v is not exactly one of allowed
func IsNotAllowedStringValue(v any, allowed []string) bool {
	s, ok := v.(string)
	if !ok {
		return true
	}
	for _, a := range allowed {
		if a == s {
			return false
		}
	}

	return true
}
