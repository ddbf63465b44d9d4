package rotini

import (
	"fmt"
	"reflect"
)

// Definition is the raw, plain-data description of a command, argument or example, as produced by
// DecodeDefinition or written by hand:
//
//	rotini.Definition{
//		"name":        "app",
//		"description": "does things",
//		"commands": []any{
//			rotini.Definition{"name": "list", "description": "list things", "aliases": []string{"ls"}},
//		},
//	}
type Definition = map[string]any

// Definition property names
const (
	propName        = "name"
	propDescription = "description"
	propAliases     = "aliases"
	propDeprecated  = "deprecated"
	propArguments   = "arguments"
	propCommands    = "commands"
	propExamples    = "examples"
	propVariant     = "variant"
	propType        = "type"
	propValues      = "values"
	propValidator   = "validator"
	propParser      = "parser"
	propUsage       = "usage"
)

// configureArgumentFunc validates one argument property and stores it
type configureArgumentFunc func(argument *Argument, def Definition, context []string) error

// configureCommandFunc validates one command property and stores it
type configureCommandFunc func(command *Command, def Definition, context []string) error

// configureExampleFunc validates one example property and stores it
type configureExampleFunc func(example *Example, def Definition, context []string) error

// asDefinition returns v as a Definition. Values which are not string-keyed maps yield an empty
// Definition, leaving the element's own constructor to report the missing properties.
func asDefinition(v any) Definition {
	switch d := v.(type) {
	case map[string]any:
		return d
	case nil:
		return Definition{}
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return Definition{}
	}

	def := make(Definition, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		def[iter.Key().String()] = iter.Value().Interface()
	}

	return def
}

// extendContext returns a new context path made of context followed by name. The name is appended
// before it has been validated, so non-string names are rendered with their default format.
func extendContext(context []string, name any) []string {
	extended := make([]string, len(context), len(context)+1)
	copy(extended, context)

	switch n := name.(type) {
	case string:
		return append(extended, n)
	case nil:
		return append(extended, "")
	}

	return append(extended, fmt.Sprint(name))
}
