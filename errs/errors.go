package errs

import (
	"fmt"
	"strings"

	"github.com/napalu/rotini/i18n"
	"github.com/napalu/rotini/types"
)

// Definition errors
var (
	ErrCommandName        = i18n.NewError(ErrCommandNameKey)
	ErrCommandDescription = i18n.NewError(ErrCommandDescriptionKey)
	ErrCommandAliases     = i18n.NewError(ErrCommandAliasesKey)
	ErrCommandDeprecated  = i18n.NewError(ErrCommandDeprecatedKey)
	ErrCommandArguments   = i18n.NewError(ErrCommandArgumentsKey)
	ErrCommandCommands    = i18n.NewError(ErrCommandCommandsKey)
	ErrCommandExamples    = i18n.NewError(ErrCommandExamplesKey)

	ErrArgumentName        = i18n.NewError(ErrArgumentNameKey)
	ErrArgumentDescription = i18n.NewError(ErrArgumentDescriptionKey)
	ErrArgumentVariant     = i18n.NewError(ErrArgumentVariantKey)
	ErrArgumentType        = i18n.NewError(ErrArgumentTypeKey)
	ErrArgumentTypeBoolean = i18n.NewError(ErrArgumentTypeBooleanKey)
	ErrArgumentTypeArray   = i18n.NewError(ErrArgumentTypeArrayKey)
	ErrArgumentValues      = i18n.NewError(ErrArgumentValuesKey)
	ErrArgumentValidator   = i18n.NewError(ErrArgumentValidatorKey)
	ErrArgumentParser      = i18n.NewError(ErrArgumentParserKey)

	ErrExampleDescription = i18n.NewError(ErrExampleDescriptionKey)
	ErrExampleUsage       = i18n.NewError(ErrExampleUsageKey)

	ErrDecodeDefinition = i18n.NewError(ErrDecodeDefinitionKey)
	ErrDefinitionNotMap = i18n.NewError(ErrDefinitionNotMapKey)
)

// Parse errors
var (
	ErrValueNotParsed = i18n.NewError(ErrValueNotParsedKey)
	ErrValueInvalid   = i18n.NewError(ErrValueInvalidKey)
)

// Validation errors raised by the validation package
var (
	ErrValueMustBeNumber = i18n.NewError(ErrValueMustBeNumberKey)
	ErrValueMustBeString = i18n.NewError(ErrValueMustBeStringKey)
	ErrValueBetween      = i18n.NewError(ErrValueBetweenKey)
	ErrValueAtLeast      = i18n.NewError(ErrValueAtLeastKey)
	ErrValueAtMost       = i18n.NewError(ErrValueAtMostKey)
	ErrMinLength         = i18n.NewError(ErrMinLengthKey)
	ErrMaxLength         = i18n.NewError(ErrMaxLengthKey)
	ErrWhitespace        = i18n.NewError(ErrWhitespaceKey)
	ErrPatternMismatch   = i18n.NewError(ErrPatternMismatchKey)
	ErrValueCannotBe     = i18n.NewError(ErrValueCannotBeKey)
	ErrCombinedFailed    = i18n.NewError(ErrCombinedFailedKey)
)

// DefinitionError reports a command, argument or example definition with an invalid shape.
// It is returned while a tree is being built and always aborts the build.
type DefinitionError struct {
	err i18n.TranslatableError
	// Context holds the command names from the root down to the offending node
	Context []string
}

// NewDefinitionError ties a definition error value to the context path it was raised in
func NewDefinitionError(err i18n.TranslatableError, context []string) *DefinitionError {
	return &DefinitionError{
		err:     err,
		Context: append([]string(nil), context...),
	}
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf("%s\n%s: %s", e.err.Error(), i18n.Message(MsgContextKey), strings.Join(e.Context, " "))
}

// Unwrap returns the translatable error, so errors.Is matches the sentinels above
func (e *DefinitionError) Unwrap() error {
	return e.err
}

// ParseError reports a value which a wrapped parser or validator could not accept at runtime
type ParseError struct {
	// Entity is the kind of definition owning the callback
	Entity types.Entity
	// Name is the owning definition's name
	Name string
	// Value is the textual form of the offending original value
	Value string
	err   error
}

// NewParseError builds a ParseError whose message comes from err
func NewParseError(entity types.Entity, name, value string, err error) *ParseError {
	return &ParseError{
		Entity: entity,
		Name:   name,
		Value:  value,
		err:    err,
	}
}

func (e *ParseError) Error() string {
	return e.err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.err
}
