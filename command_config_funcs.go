package rotini

import (
	"github.com/napalu/rotini/errs"
	"github.com/napalu/rotini/internal/util"
)

func setCommandName(command *Command, def Definition, context []string) error {
	name := def[propName]
	if util.IsNotDefined(name) || util.IsNotString(name) || util.StringContainsSpaces(name.(string)) {
		return errs.NewDefinitionError(errs.ErrCommandName, context)
	}
	command.Name = name.(string)

	return nil
}

func setCommandDescription(command *Command, def Definition, context []string) error {
	description := def[propDescription]
	if util.IsNotDefined(description) || util.IsNotString(description) {
		return errs.NewDefinitionError(errs.ErrCommandDescription, context)
	}
	command.Description = description.(string)

	return nil
}

func setCommandAliases(command *Command, def Definition, context []string) error {
	aliases := def[propAliases]
	if aliases == nil {
		command.Aliases = []string{}
		return nil
	}

	if util.IsNotArray(aliases) || util.IsNotArrayOfStrings(aliases) || util.ArrayOfStringsHasEntriesWithSpaces(aliases) {
		return errs.NewDefinitionError(errs.ErrCommandAliases, context)
	}

	elems := util.Elements(aliases)
	command.Aliases = make([]string, len(elems))
	for i, alias := range elems {
		command.Aliases[i] = alias.(string)
	}

	return nil
}

// setCommandDeprecated stores the flag; nothing else in the tree depends on it
func setCommandDeprecated(command *Command, def Definition, context []string) error {
	deprecated := def[propDeprecated]
	if deprecated == nil {
		command.Deprecated = false
		return nil
	}

	if util.IsNotBoolean(deprecated) {
		return errs.NewDefinitionError(errs.ErrCommandDeprecated, context)
	}
	command.Deprecated = deprecated.(bool)

	return nil
}

func setCommandArguments(command *Command, def Definition, context []string) error {
	args := def[propArguments]
	if args != nil && util.IsNotArray(args) {
		return errs.NewDefinitionError(errs.ErrCommandArguments, context)
	}

	elems := util.Elements(args)
	command.Arguments = make([]*Argument, 0, len(elems))
	for _, elem := range elems {
		argument, err := NewArgument(asDefinition(elem), context)
		if err != nil {
			return err
		}
		command.Arguments = append(command.Arguments, argument)
	}

	return nil
}

// setCommandCommands derives HasSubcommands from the raw input, not from the built children
func setCommandCommands(command *Command, def Definition, context []string) error {
	commands := def[propCommands]
	if commands != nil && util.IsNotArray(commands) {
		return errs.NewDefinitionError(errs.ErrCommandCommands, context)
	}

	elems := util.Elements(commands)
	command.Commands = make([]*Command, 0, len(elems))
	for _, elem := range elems {
		sub, err := NewCommand(asDefinition(elem), context)
		if err != nil {
			return err
		}
		command.Commands = append(command.Commands, sub)
	}
	command.HasSubcommands = util.IsNotEmptyArray(commands)

	return nil
}

func setCommandExamples(command *Command, def Definition, context []string) error {
	examples := def[propExamples]
	if examples != nil && util.IsNotArray(examples) {
		return errs.NewDefinitionError(errs.ErrCommandExamples, context)
	}

	elems := util.Elements(examples)
	command.Examples = make([]*Example, 0, len(elems))
	for _, elem := range elems {
		example, err := NewExample(asDefinition(elem), context)
		if err != nil {
			return err
		}
		command.Examples = append(command.Examples, example)
	}

	return nil
}

// setSubcommandIdentifiers reads the built children so only validated names and aliases end up in
// the list
func setSubcommandIdentifiers(command *Command, _ Definition, _ []string) error {
	identifiers := make([]string, 0, len(command.Commands))
	for _, sub := range command.Commands {
		identifiers = append(identifiers, sub.Name)
	}
	for _, sub := range command.Commands {
		identifiers = append(identifiers, sub.Aliases...)
	}
	command.SubcommandIdentifiers = identifiers

	return nil
}
