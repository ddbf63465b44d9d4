package types

import (
	"fmt"
	"strings"
)

// Variant describes how an argument consumes input tokens
type Variant int

const (
	VariantValue    Variant = iota // VariantValue takes exactly one value
	VariantBoolean                 // VariantBoolean is a flag which takes no value
	VariantVariadic                // VariantVariadic consumes a sequence of values
)

// Variants lists the literal spellings accepted in definitions
var Variants = []string{"value", "boolean", "variadic"}

// String returns the literal spelling of a Variant
func (v Variant) String() string {
	switch v {
	case VariantValue:
		return "value"
	case VariantBoolean:
		return "boolean"
	case VariantVariadic:
		return "variadic"
	}

	return "unknown"
}

// MarshalText implements encoding.TextMarshaler
func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (v *Variant) UnmarshalText(text []byte) error {
	parsed, ok := ParseVariant(string(text))
	if !ok {
		return fmt.Errorf("unknown variant %q", string(text))
	}
	*v = parsed

	return nil
}

// ParseVariant maps a literal spelling to a Variant. Matching is case-sensitive.
func ParseVariant(s string) (Variant, bool) {
	switch s {
	case "value":
		return VariantValue, true
	case "boolean":
		return VariantBoolean, true
	case "variadic":
		return VariantVariadic, true
	}

	return 0, false
}

// ValueType describes the shape of an argument value
type ValueType int

const (
	TypeString ValueType = iota
	TypeNumber
	TypeBoolean
	TypeStringArray
	TypeNumberArray
	TypeBooleanArray
)

// ArrayMarker is the suffix which marks array-shaped types
const ArrayMarker = "[]"

// ValueTypes lists the literal spellings accepted in definitions
var ValueTypes = []string{"string", "number", "boolean", "string[]", "number[]", "boolean[]"}

// String returns the literal spelling of a ValueType
func (t ValueType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeNumber:
		return "number"
	case TypeBoolean:
		return "boolean"
	case TypeStringArray:
		return "string" + ArrayMarker
	case TypeNumberArray:
		return "number" + ArrayMarker
	case TypeBooleanArray:
		return "boolean" + ArrayMarker
	}

	return "unknown"
}

// MarshalText implements encoding.TextMarshaler
func (t ValueType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *ValueType) UnmarshalText(text []byte) error {
	parsed, ok := ParseValueType(string(text))
	if !ok {
		return fmt.Errorf("unknown type %q", string(text))
	}
	*t = parsed

	return nil
}

// ParseValueType maps a literal spelling to a ValueType. Matching is case-sensitive.
func ParseValueType(s string) (ValueType, bool) {
	for i, spelling := range ValueTypes {
		if spelling == s {
			return ValueType(i), true
		}
	}

	return 0, false
}

// IsArray reports whether the type spelling carries the array marker
func (t ValueType) IsArray() bool {
	return strings.Contains(t.String(), ArrayMarker)
}

// Elem returns the scalar element kind of a type: string[] yields string, scalars yield themselves
func (t ValueType) Elem() ValueType {
	switch t {
	case TypeStringArray:
		return TypeString
	case TypeNumberArray:
		return TypeNumber
	case TypeBooleanArray:
		return TypeBoolean
	}

	return t
}

// Entity names the kind of definition owning a wrapped callback. It only affects error messages.
type Entity string

const (
	EntityArgument Entity = "Argument"
	EntityFlag     Entity = "Flag"
)

// Lower returns the lower-case spelling used inside messages ("argument", "flag")
func (e Entity) Lower() string {
	return strings.ToLower(string(e))
}

// KeyValue denotes Key Value pairs
type KeyValue[K, V any] struct {
	Key   K
	Value V
}
