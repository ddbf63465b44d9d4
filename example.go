package rotini

import (
	"github.com/google/shlex"

	"github.com/napalu/rotini/errs"
	"github.com/napalu/rotini/internal/util"
)

// ExamplePrefix is prepended to every example description
const ExamplePrefix = "# "

// Example is a validated usage illustration of a command
type Example struct {
	// Description carries ExamplePrefix
	Description string `json:"description" yaml:"description"`
	Usage       string `json:"usage" yaml:"usage"`
}

var exampleConfig = []configureExampleFunc{
	setExampleDescription,
	setExampleUsage,
}

// NewExample validates def and returns the resulting Example, or an *errs.DefinitionError
// carrying context
func NewExample(def Definition, context []string) (*Example, error) {
	example := &Example{}
	for _, configure := range exampleConfig {
		if err := configure(example, def, context); err != nil {
			return nil, err
		}
	}

	return example, nil
}

// Argv splits Usage into words following shell quoting rules
func (e *Example) Argv() ([]string, error) {
	return shlex.Split(e.Usage)
}

func setExampleDescription(example *Example, def Definition, context []string) error {
	description := def[propDescription]
	if util.IsNotDefined(description) || util.IsNotString(description) {
		return errs.NewDefinitionError(errs.ErrExampleDescription, context)
	}
	example.Description = ExamplePrefix + description.(string)

	return nil
}

func setExampleUsage(example *Example, def Definition, context []string) error {
	usage := def[propUsage]
	if util.IsNotDefined(usage) || util.IsNotString(usage) {
		return errs.NewDefinitionError(errs.ErrExampleUsage, context)
	}
	example.Usage = usage.(string)

	return nil
}
