// Package validation provides ready-made argument validators. Each returns a types.Validator which
// can be placed in an argument definition's "validator" property:
//
//	rotini.Definition{
//		"name": "level", "description": "log level", "variant": "value", "type": "string",
//		"values":    []any{"debug", "info"},
//		"validator": validation.All(validation.NoWhitespace(), validation.MaxLength(5)),
//	}
//
// Validators check the coerced value. When the coerced value is an array every element is checked.
package validation

import (
	"reflect"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/napalu/rotini/errs"
	"github.com/napalu/rotini/internal/util"
	"github.com/napalu/rotini/types"
)

// All combines multiple validators - all must pass
func All(validators ...types.Validator) types.Validator {
	return func(props types.ValueProperties) (bool, error) {
		for _, validator := range validators {
			if ok, err := validator(props); err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	}
}

// Any combines multiple validators - at least one must pass
func Any(validators ...types.Validator) types.Validator {
	if len(validators) == 0 {
		return types.DefaultValidator
	}

	return func(props types.ValueProperties) (bool, error) {
		var messages []string
		for _, validator := range validators {
			ok, err := validator(props)
			if err == nil && ok {
				return true, nil
			}
			if err != nil {
				messages = append(messages, err.Error())
			}
		}
		if len(messages) == 0 {
			return false, nil
		}
		return false, errs.ErrCombinedFailed.WithArgs(strings.Join(messages, "; "))
	}
}

// Not passes only when validator rejects the value
func Not(validator types.Validator) types.Validator {
	return func(props types.ValueProperties) (bool, error) {
		if ok, err := validator(props); err == nil && ok {
			return false, errs.ErrValueCannotBe.WithArgs(util.FormatValue(props.CoercedValue))
		}
		return true, nil
	}
}

// OneOf accepts values equal to one of allowed. Numbers compare by value regardless of their Go
// kind. Rejected values yield false without an error so the wrapping adapter reports its fixed
// "is invalid" message.
func OneOf(allowed ...any) types.Validator {
	return func(props types.ValueProperties) (bool, error) {
		return every(props.CoercedValue, func(value any) bool {
			for _, candidate := range allowed {
				if equalValues(candidate, value) {
					return true
				}
			}
			return false
		}), nil
	}
}

// InValues restricts values to an argument's declared Values. An empty set accepts everything.
func InValues(values []any) types.Validator {
	if len(values) == 0 {
		return types.DefaultValidator
	}

	return OneOf(values...)
}

// Range validates numeric values are within range (inclusive)
func Range(min, max float64) types.Validator {
	return numeric(func(num float64, value string) error {
		if num < min || num > max {
			return errs.ErrValueBetween.WithArgs(value, min, max)
		}
		return nil
	})
}

// Min validates numeric minimum
func Min(min float64) types.Validator {
	return numeric(func(num float64, value string) error {
		if num < min {
			return errs.ErrValueAtLeast.WithArgs(value, min)
		}
		return nil
	})
}

// Max validates numeric maximum
func Max(max float64) types.Validator {
	return numeric(func(num float64, value string) error {
		if num > max {
			return errs.ErrValueAtMost.WithArgs(value, max)
		}
		return nil
	})
}

// MinLength validates minimum string length in characters
func MinLength(min int) types.Validator {
	return text(func(s string) error {
		if utf8.RuneCountInString(s) < min {
			return errs.ErrMinLength.WithArgs(s, min)
		}
		return nil
	})
}

// MaxLength validates maximum string length in characters
func MaxLength(max int) types.Validator {
	return text(func(s string) error {
		if utf8.RuneCountInString(s) > max {
			return errs.ErrMaxLength.WithArgs(s, max)
		}
		return nil
	})
}

// NoWhitespace ensures value has no whitespace
func NoWhitespace() types.Validator {
	return text(func(s string) error {
		if strings.IndexFunc(s, unicode.IsSpace) >= 0 {
			return errs.ErrWhitespace.WithArgs(s)
		}
		return nil
	})
}

// Pattern validates string values against a regular expression
func Pattern(expr string) (types.Validator, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}

	return text(func(s string) error {
		if !re.MatchString(s) {
			return errs.ErrPatternMismatch.WithArgs(s, expr)
		}
		return nil
	}), nil
}

// every applies accept to v, or to each element when v is an array
func every(v any, accept func(any) bool) bool {
	if util.IsNotArray(v) {
		return accept(v)
	}
	for _, elem := range util.Elements(v) {
		if !accept(elem) {
			return false
		}
	}
	return true
}

// check is every for checks returning errors; the first error wins
func check(v any, fn func(any) error) error {
	var err error
	every(v, func(elem any) bool {
		err = fn(elem)
		return err == nil
	})
	return err
}

func numeric(fn func(num float64, value string) error) types.Validator {
	return func(props types.ValueProperties) (bool, error) {
		err := check(props.CoercedValue, func(elem any) error {
			num, ok := util.ToFloat(elem)
			if !ok {
				return errs.ErrValueMustBeNumber.WithArgs(util.FormatValue(elem))
			}
			return fn(num, util.FormatValue(elem))
		})
		return err == nil, err
	}
}

func text(fn func(s string) error) types.Validator {
	return func(props types.ValueProperties) (bool, error) {
		err := check(props.CoercedValue, func(elem any) error {
			s, ok := elem.(string)
			if !ok {
				return errs.ErrValueMustBeString.WithArgs(util.FormatValue(elem))
			}
			return fn(s)
		})
		return err == nil, err
	}
}

func equalValues(a, b any) bool {
	if fa, ok := util.ToFloat(a); ok {
		fb, ok := util.ToFloat(b)
		return ok && fa == fb
	}

	return reflect.DeepEqual(a, b)
}
