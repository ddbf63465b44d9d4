package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariant(t *testing.T) {
	for i, spelling := range Variants {
		v, ok := ParseVariant(spelling)
		require.True(t, ok)
		assert.Equal(t, Variant(i), v)
		assert.Equal(t, spelling, v.String())
	}

	_, ok := ParseVariant("Boolean")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Variant(9).String())
}

func TestValueType(t *testing.T) {
	tests := []struct {
		spelling string
		isArray  bool
		elem     ValueType
	}{
		{"string", false, TypeString},
		{"number", false, TypeNumber},
		{"boolean", false, TypeBoolean},
		{"string[]", true, TypeString},
		{"number[]", true, TypeNumber},
		{"boolean[]", true, TypeBoolean},
	}

	for _, tt := range tests {
		t.Run(tt.spelling, func(t *testing.T) {
			vt, ok := ParseValueType(tt.spelling)
			require.True(t, ok)
			assert.Equal(t, tt.spelling, vt.String())
			assert.Equal(t, tt.isArray, vt.IsArray())
			assert.Equal(t, tt.elem, vt.Elem())
		})
	}

	_, ok := ParseValueType("[]string")
	assert.False(t, ok)
}

func TestTextMarshalling(t *testing.T) {
	data, err := json.Marshal(struct {
		Variant Variant   `json:"variant"`
		Type    ValueType `json:"type"`
	}{VariantVariadic, TypeNumberArray})
	require.NoError(t, err)
	assert.JSONEq(t, `{"variant":"variadic","type":"number[]"}`, string(data))

	var v Variant
	require.NoError(t, v.UnmarshalText([]byte("boolean")))
	assert.Equal(t, VariantBoolean, v)
	assert.Error(t, v.UnmarshalText([]byte("flag")))

	var vt ValueType
	require.NoError(t, vt.UnmarshalText([]byte("boolean[]")))
	assert.Equal(t, TypeBooleanArray, vt)
	assert.Error(t, vt.UnmarshalText([]byte("int")))
}

func TestEntity_Lower(t *testing.T) {
	assert.Equal(t, "argument", EntityArgument.Lower())
	assert.Equal(t, "flag", EntityFlag.Lower())
	assert.Equal(t, "positionalflag", Entity("PositionalFlag").Lower())
}

func TestDefaultCallbacks(t *testing.T) {
	parsed, err := DefaultParser(ValueProperties{OriginalValue: "1", CoercedValue: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, parsed)

	ok, err := DefaultValidator(ValueProperties{})
	require.NoError(t, err)
	assert.True(t, ok)
}
