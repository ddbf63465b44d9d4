package rotini

import (
	"fmt"

	"github.com/napalu/rotini/types"
)

// Argument is a validated command argument. Parser and Validator always hold wrapped callbacks,
// so their failures are *errs.ParseError values.
type Argument struct {
	Name        string          `json:"name" yaml:"name"`
	Description string          `json:"description" yaml:"description"`
	Variant     types.Variant   `json:"variant" yaml:"variant"`
	Type        types.ValueType `json:"type" yaml:"type"`
	Values      []any           `json:"values" yaml:"values"`
	Validator   types.Validator `json:"-" yaml:"-"`
	Parser      types.Parser    `json:"-" yaml:"-"`
}

var argumentConfig = []configureArgumentFunc{
	setArgumentName,
	setArgumentDescription,
	setArgumentVariant,
	setArgumentType,
	setArgumentValues,
	setArgumentValidator,
	setArgumentParser,
}

// NewArgument validates def and returns the resulting Argument. Properties are checked in the order
// name, description, variant, type, values, validator, parser; the first invalid one is returned as
// an *errs.DefinitionError carrying context.
func NewArgument(def Definition, context []string) (*Argument, error) {
	argument := &Argument{}
	for _, configure := range argumentConfig {
		if err := configure(argument, def, context); err != nil {
			return nil, err
		}
	}

	return argument, nil
}

// String returns a short description such as `count (value number)`
func (a *Argument) String() string {
	return fmt.Sprintf("%s (%s %s)", a.Name, a.Variant, a.Type)
}
