package rotini

import "errors"

// Command is a validated node of a command tree. The root exclusively owns its subtree and nothing
// is modified after construction.
type Command struct {
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description" yaml:"description"`
	Aliases     []string    `json:"aliases" yaml:"aliases"`
	Deprecated  bool        `json:"deprecated" yaml:"deprecated"`
	Arguments   []*Argument `json:"arguments" yaml:"arguments"`
	Commands    []*Command  `json:"commands" yaml:"commands"`
	Examples    []*Example  `json:"examples" yaml:"examples"`
	// HasSubcommands is true when the definition declared at least one subcommand
	HasSubcommands bool `json:"has_subcommands" yaml:"has_subcommands"`
	// SubcommandIdentifiers holds the names of all direct subcommands followed by all of their
	// aliases, in declaration order. Duplicates are kept.
	SubcommandIdentifiers []string `json:"subcommand_identifiers" yaml:"subcommand_identifiers"`
}

// SkipChildren can be returned from a WalkFunc to skip the subcommands of the current command
var SkipChildren = errors.New("skip children")

// WalkFunc is called by Walk for every command. path holds the command names from the root down to
// and including command.
type WalkFunc func(path []string, command *Command) error

// commandConfig is filled in init: setCommandCommands recurses through NewCommand, which reads it
var commandConfig []configureCommandFunc

func init() {
	commandConfig = []configureCommandFunc{
		setCommandName,
		setCommandDescription,
		setCommandAliases,
		setCommandDeprecated,
		setCommandArguments,
		setCommandCommands,
		setCommandExamples,
		setSubcommandIdentifiers,
	}
}

// New builds a command tree from a root definition
func New(def Definition) (*Command, error) {
	return NewCommand(def, nil)
}

// NewCommand validates def and, recursively, its arguments, subcommands and examples. context is
// the path of command names leading to def (nil for a root) and only feeds error messages.
//
// Construction stops at the first invalid property anywhere in the tree and returns it as an
// *errs.DefinitionError; no partial tree is returned.
func NewCommand(def Definition, context []string) (*Command, error) {
	// the name joins the context before it is validated so that it shows up in its own error
	context = extendContext(context, def[propName])

	command := &Command{}
	for _, configure := range commandConfig {
		if err := configure(command, def, context); err != nil {
			return nil, err
		}
	}

	return command, nil
}

// Walk calls fn for c and every command below it, depth-first, parents before children.
// Returning SkipChildren skips the subcommands of the current command; any other error stops
// the walk and is returned.
func (c *Command) Walk(fn WalkFunc) error {
	err := c.walk(nil, fn)
	if errors.Is(err, SkipChildren) {
		return nil
	}

	return err
}

func (c *Command) walk(parent []string, fn WalkFunc) error {
	path := make([]string, len(parent), len(parent)+1)
	copy(path, parent)
	path = append(path, c.Name)

	if err := fn(path, c); err != nil {
		return err
	}

	for _, sub := range c.Commands {
		if err := sub.walk(path, fn); err != nil && !errors.Is(err, SkipChildren) {
			return err
		}
	}

	return nil
}

// FindSubcommand returns the direct subcommand identified by token. Names take precedence over
// aliases; within each, the first declared match wins.
func (c *Command) FindSubcommand(token string) (*Command, bool) {
	for _, sub := range c.Commands {
		if sub.Name == token {
			return sub, true
		}
	}
	for _, sub := range c.Commands {
		for _, alias := range sub.Aliases {
			if alias == token {
				return sub, true
			}
		}
	}

	return nil, false
}
