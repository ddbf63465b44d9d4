// Package errs declares the translation keys and error values rotini reports.
package errs

// Prefix for all rotini translation keys
const (
	prefixKey = "rotini"
)

const (
	ErrorPrefixKey      = prefixKey + ".error"
	DefinitionPrefixKey = ErrorPrefixKey + ".definition"
	ParsePrefixKey      = ErrorPrefixKey + ".parse"
	ValidationPrefixKey = ErrorPrefixKey + ".validation"
	MessagePrefixKey    = prefixKey + ".msg"
)

// Command definition errors
const (
	ErrCommandNameKey        = DefinitionPrefixKey + ".command.name"
	ErrCommandDescriptionKey = DefinitionPrefixKey + ".command.description"
	ErrCommandAliasesKey     = DefinitionPrefixKey + ".command.aliases"
	ErrCommandDeprecatedKey  = DefinitionPrefixKey + ".command.deprecated"
	ErrCommandArgumentsKey   = DefinitionPrefixKey + ".command.arguments"
	ErrCommandCommandsKey    = DefinitionPrefixKey + ".command.commands"
	ErrCommandExamplesKey    = DefinitionPrefixKey + ".command.examples"
)

// Argument definition errors
const (
	ErrArgumentNameKey        = DefinitionPrefixKey + ".argument.name"
	ErrArgumentDescriptionKey = DefinitionPrefixKey + ".argument.description"
	ErrArgumentVariantKey     = DefinitionPrefixKey + ".argument.variant"
	ErrArgumentTypeKey        = DefinitionPrefixKey + ".argument.type"
	ErrArgumentTypeBooleanKey = DefinitionPrefixKey + ".argument.type_boolean"
	ErrArgumentTypeArrayKey   = DefinitionPrefixKey + ".argument.type_variadic"
	ErrArgumentValuesKey      = DefinitionPrefixKey + ".argument.values"
	ErrArgumentValidatorKey   = DefinitionPrefixKey + ".argument.validator"
	ErrArgumentParserKey      = DefinitionPrefixKey + ".argument.parser"
)

// Example definition errors
const (
	ErrExampleDescriptionKey = DefinitionPrefixKey + ".example.description"
	ErrExampleUsageKey       = DefinitionPrefixKey + ".example.usage"
)

// Decoding errors
const (
	ErrDecodeDefinitionKey = DefinitionPrefixKey + ".decode"
	ErrDefinitionNotMapKey = DefinitionPrefixKey + ".not_a_mapping"
)

// Runtime parse errors
const (
	ErrValueNotParsedKey = ParsePrefixKey + ".value_not_parsed"
	ErrValueInvalidKey   = ParsePrefixKey + ".value_invalid"
)

// Ready-made validator errors
const (
	ErrValueMustBeNumberKey = ValidationPrefixKey + ".value_must_be_number"
	ErrValueMustBeStringKey = ValidationPrefixKey + ".value_must_be_string"
	ErrValueBetweenKey      = ValidationPrefixKey + ".value_between"
	ErrValueAtLeastKey      = ValidationPrefixKey + ".value_at_least"
	ErrValueAtMostKey       = ValidationPrefixKey + ".value_at_most"
	ErrMinLengthKey         = ValidationPrefixKey + ".min_length"
	ErrMaxLengthKey         = ValidationPrefixKey + ".max_length"
	ErrWhitespaceKey        = ValidationPrefixKey + ".whitespace"
	ErrPatternMismatchKey   = ValidationPrefixKey + ".pattern_mismatch"
	ErrValueCannotBeKey     = ValidationPrefixKey + ".value_cannot_be"
	ErrCombinedFailedKey    = ValidationPrefixKey + ".combined_failed"
)

// Messages
const (
	MsgContextKey = MessagePrefixKey + ".context"
)
