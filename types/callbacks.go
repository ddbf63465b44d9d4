package types

// ValueProperties is the pair handed to parser and validator callbacks for each matched value.
// OriginalValue is the value as it was read from the command line, CoercedValue is the same value
// after conversion to the argument's ValueType.
type ValueProperties struct {
	OriginalValue any
	CoercedValue  any
}

// Parser turns a matched value into the value exposed to the program
type Parser func(props ValueProperties) (any, error)

// Validator accepts or rejects a matched value. Returning false without an error rejects the value.
type Validator func(props ValueProperties) (bool, error)

// DefaultParser returns the coerced value unchanged
func DefaultParser(props ValueProperties) (any, error) {
	return props.CoercedValue, nil
}

// DefaultValidator accepts every value
func DefaultValidator(ValueProperties) (bool, error) {
	return true, nil
}
