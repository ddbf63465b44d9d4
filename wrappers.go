package rotini

import (
	"fmt"

	"github.com/napalu/rotini/errs"
	"github.com/napalu/rotini/internal/util"
	"github.com/napalu/rotini/types"
)

// WrapParser adapts parser so that every failure surfaces as an *errs.ParseError naming entity,
// name and the offending original value. A nil parser falls back to types.DefaultParser.
//
// The callback's own error (or panic value) is dropped: only the normalized message survives.
func WrapParser(entity types.Entity, name string, parser types.Parser) types.Parser {
	if parser == nil {
		parser = types.DefaultParser
	}

	return func(props types.ValueProperties) (parsed any, err error) {
		defer func() {
			if r := recover(); r != nil {
				parsed, err = nil, notParsedError(entity, name, props.OriginalValue)
			}
		}()

		parsed, err = parser(props)
		if err != nil {
			return nil, notParsedError(entity, name, props.OriginalValue)
		}

		return parsed, nil
	}
}

// WrapValidator adapts validator so that a rejected value surfaces as an *errs.ParseError.
// A nil validator falls back to types.DefaultValidator.
//
// Returning false without an error yields the fixed "is invalid" message. Returning an error, or
// panicking, keeps the callback's message and exposes the cause through errors.Unwrap.
func WrapValidator(entity types.Entity, name string, validator types.Validator) types.Validator {
	if validator == nil {
		validator = types.DefaultValidator
	}

	return func(props types.ValueProperties) (valid bool, err error) {
		defer func() {
			if r := recover(); r != nil {
				cause, ok := r.(error)
				if !ok {
					cause = fmt.Errorf("%v", r)
				}
				valid, err = false, errs.NewParseError(entity, name, util.FormatValue(props.OriginalValue), cause)
			}
		}()

		ok, verr := validator(props)
		if verr != nil {
			return false, errs.NewParseError(entity, name, util.FormatValue(props.OriginalValue), verr)
		}
		if !ok {
			value := util.FormatValue(props.OriginalValue)
			return false, errs.NewParseError(entity, name, value,
				errs.ErrValueInvalid.WithArgs(string(entity), value, entity.Lower(), name))
		}

		return true, nil
	}
}

// ArgumentParser wraps parser for the argument called name
func ArgumentParser(name string, parser types.Parser) types.Parser {
	return WrapParser(types.EntityArgument, name, parser)
}

// ArgumentValidator wraps validator for the argument called name
func ArgumentValidator(name string, validator types.Validator) types.Validator {
	return WrapValidator(types.EntityArgument, name, validator)
}

// FlagParser wraps parser for the flag called name
func FlagParser(name string, parser types.Parser) types.Parser {
	return WrapParser(types.EntityFlag, name, parser)
}

// FlagValidator wraps validator for the flag called name
func FlagValidator(name string, validator types.Validator) types.Validator {
	return WrapValidator(types.EntityFlag, name, validator)
}

func notParsedError(entity types.Entity, name string, original any) *errs.ParseError {
	value := util.FormatValue(original)
	return errs.NewParseError(entity, name, value,
		errs.ErrValueNotParsed.WithArgs(string(entity), value, entity.Lower(), name))
}

// toParser converts the function shapes accepted in definitions to a types.Parser
func toParser(v any) (types.Parser, bool) {
	switch fn := v.(type) {
	case types.Parser:
		return fn, fn != nil
	case func(types.ValueProperties) (any, error):
		return fn, fn != nil
	case func(types.ValueProperties) any:
		if fn == nil {
			return nil, false
		}
		return func(props types.ValueProperties) (any, error) {
			return fn(props), nil
		}, true
	}

	return nil, false
}

// toValidator converts the function shapes accepted in definitions to a types.Validator.
// Shapes without a boolean result accept every value they do not return an error for.
func toValidator(v any) (types.Validator, bool) {
	switch fn := v.(type) {
	case types.Validator:
		return fn, fn != nil
	case func(types.ValueProperties) (bool, error):
		return fn, fn != nil
	case func(types.ValueProperties) bool:
		if fn == nil {
			return nil, false
		}
		return func(props types.ValueProperties) (bool, error) {
			return fn(props), nil
		}, true
	case func(types.ValueProperties) error:
		if fn == nil {
			return nil, false
		}
		return func(props types.ValueProperties) (bool, error) {
			if err := fn(props); err != nil {
				return false, err
			}
			return true, nil
		}, true
	}

	return nil, false
}
