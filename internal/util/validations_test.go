package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type named string

func TestIsNotDefined(t *testing.T) {
	var nilMap map[string]any
	var nilSlice []string
	var nilPtr *int
	var nilFunc func()

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, true},
		{"empty string", "", true},
		{"nil map", nilMap, true},
		{"nil slice", nilSlice, true},
		{"nil pointer", nilPtr, true},
		{"nil func", nilFunc, true},
		{"string", "x", false},
		{"zero int", 0, false},
		{"false", false, false},
		{"empty slice", []string{}, false},
		{"named empty string", named(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNotDefined(tt.value))
		})
	}
}

func TestScalarPredicates(t *testing.T) {
	assert.False(t, IsNotString("a"))
	assert.True(t, IsNotString(named("a")))
	assert.True(t, IsNotString(nil))

	assert.False(t, IsNotBoolean(false))
	assert.True(t, IsNotBoolean("true"))
	assert.True(t, IsNotBoolean(nil))

	var nilFunc func(int) int
	assert.False(t, IsNotFunction(func() {}))
	assert.False(t, IsNotFunction(TestScalarPredicates))
	assert.True(t, IsNotFunction(nilFunc))
	assert.True(t, IsNotFunction(nil))
	assert.True(t, IsNotFunction("func"))
}

func TestArrayPredicates(t *testing.T) {
	assert.True(t, IsArray([]any{}))
	assert.True(t, IsArray([3]int{}))
	assert.False(t, IsArray("abc"))
	assert.False(t, IsArray(map[string]any{}))
	assert.False(t, IsArray(nil))
	assert.True(t, IsNotArray(1))

	assert.False(t, IsNotEmptyArray([]any{}))
	assert.False(t, IsNotEmptyArray(nil))
	assert.True(t, IsNotEmptyArray([]int{1}))

	assert.Equal(t, []any{1, 2}, Elements([]int{1, 2}))
	assert.Equal(t, []any{"a"}, Elements([1]string{"a"}))
	assert.Nil(t, Elements("a"))
}

func TestHomogeneousArrays(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		strings  bool
		numbers  bool
		booleans bool
	}{
		{"empty", []any{}, false, false, false},
		{"strings", []any{"a", "b"}, false, true, true},
		{"typed strings", []string{"a"}, false, true, true},
		{"numbers", []any{1, int64(2), 3.5, uint(4), float32(1)}, true, false, true},
		{"booleans", []bool{true, false}, true, true, false},
		{"mixed", []any{"a", 1}, true, true, true},
		{"nil element", []any{nil}, true, true, true},
		{"not an array", "a", true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.strings, IsNotArrayOfStrings(tt.value))
			assert.Equal(t, tt.numbers, IsNotArrayOfNumbers(tt.value))
			assert.Equal(t, tt.booleans, IsNotArrayOfBooleans(tt.value))
		})
	}
}

func TestNumbers(t *testing.T) {
	for _, v := range []any{1, int8(-1), uint16(7), uintptr(1), 2.5, float32(0.5)} {
		assert.True(t, IsNumber(v), "%T", v)
	}
	for _, v := range []any{"1", true, nil, []int{1}} {
		assert.False(t, IsNumber(v), "%T", v)
	}

	f, ok := ToFloat(uint8(200))
	assert.True(t, ok)
	assert.Equal(t, 200.0, f)

	f, ok = ToFloat(int64(-3))
	assert.True(t, ok)
	assert.Equal(t, -3.0, f)

	_, ok = ToFloat("3")
	assert.False(t, ok)
}

func TestSpaces(t *testing.T) {
	assert.False(t, StringContainsSpaces("plain"))
	assert.True(t, StringContainsSpaces("two words"))
	assert.True(t, StringContainsSpaces("tab\there"))
	assert.True(t, StringContainsSpaces("nbsp here"))
	assert.False(t, StringContainsSpaces(""))

	assert.False(t, ArrayOfStringsHasEntriesWithSpaces([]string{"a", "b"}))
	assert.True(t, ArrayOfStringsHasEntriesWithSpaces([]any{"a", "b c"}))
	assert.False(t, ArrayOfStringsHasEntriesWithSpaces(nil))
}

func TestIsNotAllowedStringValue(t *testing.T) {
	allowed := []string{"value", "boolean"}
	assert.False(t, IsNotAllowedStringValue("value", allowed))
	assert.True(t, IsNotAllowedStringValue("Value", allowed))
	assert.True(t, IsNotAllowedStringValue(" value", allowed))
	assert.True(t, IsNotAllowedStringValue(1, allowed))
	assert.True(t, IsNotAllowedStringValue(nil, allowed))
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "4", FormatValue(4))
	assert.Equal(t, "abc", FormatValue("abc"))
	assert.Equal(t, `["a",1,true]`, FormatValue([]any{"a", 1, true}))
	assert.Equal(t, "[]", FormatValue([]string{}))
	assert.Equal(t, "<nil>", FormatValue(nil))
	assert.Equal(t, `["<a>","b&c"]`, FormatValue([]string{"<a>", "b&c"}))
	assert.Equal(t, "<b>", FormatValue("<b>"))
}
