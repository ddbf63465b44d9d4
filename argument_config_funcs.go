package rotini

import (
	"github.com/napalu/rotini/errs"
	"github.com/napalu/rotini/internal/util"
	"github.com/napalu/rotini/types"
)

// isNotArrayOfType maps the scalar element kind of a type to its homogeneity check
var isNotArrayOfType = map[types.ValueType]func(any) bool{
	types.TypeString:  util.IsNotArrayOfStrings,
	types.TypeNumber:  util.IsNotArrayOfNumbers,
	types.TypeBoolean: util.IsNotArrayOfBooleans,
}

func setArgumentName(argument *Argument, def Definition, context []string) error {
	name := def[propName]
	if util.IsNotDefined(name) || util.IsNotString(name) || util.StringContainsSpaces(name.(string)) {
		return errs.NewDefinitionError(errs.ErrArgumentName, context)
	}
	argument.Name = name.(string)

	return nil
}

func setArgumentDescription(argument *Argument, def Definition, context []string) error {
	description := def[propDescription]
	if util.IsNotDefined(description) || util.IsNotString(description) {
		return errs.NewDefinitionError(errs.ErrArgumentDescription, context)
	}
	argument.Description = description.(string)

	return nil
}

func setArgumentVariant(argument *Argument, def Definition, context []string) error {
	variant := def[propVariant]
	if util.IsNotString(variant) || util.IsNotAllowedStringValue(variant, types.Variants) {
		return errs.NewDefinitionError(errs.ErrArgumentVariant, context)
	}
	argument.Variant, _ = types.ParseVariant(variant.(string))

	return nil
}

// setArgumentType depends on the variant already being set
func setArgumentType(argument *Argument, def Definition, context []string) error {
	typeOf := def[propType]
	if util.IsNotString(typeOf) || util.IsNotAllowedStringValue(typeOf, types.ValueTypes) {
		return errs.NewDefinitionError(errs.ErrArgumentType, context)
	}
	valueType, _ := types.ParseValueType(typeOf.(string))

	switch argument.Variant {
	case types.VariantBoolean:
		if valueType != types.TypeBoolean {
			return errs.NewDefinitionError(errs.ErrArgumentTypeBoolean, context)
		}
	case types.VariantVariadic:
		if !valueType.IsArray() {
			return errs.NewDefinitionError(errs.ErrArgumentTypeArray, context)
		}
	case types.VariantValue:
	}
	argument.Type = valueType

	return nil
}

// setArgumentValues depends on the type already being set: array types constrain values by their
// scalar element kind
func setArgumentValues(argument *Argument, def Definition, context []string) error {
	values, ok := def[propValues]
	if !ok || values == nil {
		argument.Values = []any{}
		return nil
	}

	elem := argument.Type.Elem()
	if util.IsNotArray(values) || isNotArrayOfType[elem](values) {
		return errs.NewDefinitionError(errs.ErrArgumentValues.WithArgs(elem.String()), context)
	}
	argument.Values = util.Elements(values)

	return nil
}

func setArgumentValidator(argument *Argument, def Definition, context []string) error {
	var validator types.Validator
	if raw := def[propValidator]; raw != nil {
		var ok bool
		if util.IsNotFunction(raw) {
			return errs.NewDefinitionError(errs.ErrArgumentValidator, context)
		}
		if validator, ok = toValidator(raw); !ok {
			return errs.NewDefinitionError(errs.ErrArgumentValidator, context)
		}
	}
	argument.Validator = ArgumentValidator(argument.Name, validator)

	return nil
}

func setArgumentParser(argument *Argument, def Definition, context []string) error {
	var parser types.Parser
	if raw := def[propParser]; raw != nil {
		var ok bool
		if util.IsNotFunction(raw) {
			return errs.NewDefinitionError(errs.ErrArgumentParser, context)
		}
		if parser, ok = toParser(raw); !ok {
			return errs.NewDefinitionError(errs.ErrArgumentParser, context)
		}
	}
	argument.Parser = ArgumentParser(argument.Name, parser)

	return nil
}
