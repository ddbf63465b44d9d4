package rotini

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napalu/rotini/errs"
)

func TestSetCommandAliases(t *testing.T) {
	tests := []struct {
		name    string
		aliases any
		want    []string
		wantErr bool
	}{
		{"nil", nil, []string{}, false},
		{"empty", []string{}, []string{}, false},
		{"any slice", []any{"ls", "l"}, []string{"ls", "l"}, false},
		{"string slice", []string{"rm"}, []string{"rm"}, false},
		{"array", [2]string{"a", "b"}, []string{"a", "b"}, false},
		{"newline", []string{"a\nb"}, nil, true},
		{"mixed", []any{"a", true}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			command := &Command{}
			err := setCommandAliases(command, Definition{"aliases": tt.aliases}, nil)
			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrCommandAliases)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, command.Aliases)
		})
	}
}

func TestSetCommandDeprecated(t *testing.T) {
	command := &Command{}
	require.NoError(t, setCommandDeprecated(command, Definition{"deprecated": true}, nil))
	assert.True(t, command.Deprecated)

	require.NoError(t, setCommandDeprecated(command, Definition{}, nil))
	assert.False(t, command.Deprecated)

	assert.ErrorIs(t, setCommandDeprecated(command, Definition{"deprecated": 1}, nil), errs.ErrCommandDeprecated)
}

func TestSetSubcommandIdentifiers_ReadsBuiltChildren(t *testing.T) {
	command := &Command{Commands: []*Command{
		{Name: "a", Aliases: []string{"x", "y"}},
		{Name: "b", Aliases: []string{}},
		{Name: "c", Aliases: []string{"z"}},
	}}

	require.NoError(t, setSubcommandIdentifiers(command, Definition{"commands": "ignored"}, nil))
	assert.Equal(t, []string{"a", "b", "c", "x", "y", "z"}, command.SubcommandIdentifiers)
}

func TestAsDefinition(t *testing.T) {
	assert.Equal(t, Definition{"name": "x"}, asDefinition(Definition{"name": "x"}))
	assert.Equal(t, Definition{"name": "x"}, asDefinition(map[string]string{"name": "x"}))
	assert.Equal(t, Definition{}, asDefinition(nil))
	assert.Equal(t, Definition{}, asDefinition("x"))
	assert.Equal(t, Definition{}, asDefinition(map[int]any{1: "x"}))
}

func TestExtendContext(t *testing.T) {
	base := []string{"app"}
	assert.Equal(t, []string{"app", "serve"}, extendContext(base, "serve"))
	assert.Equal(t, []string{"app", ""}, extendContext(base, nil))
	assert.Equal(t, []string{"app", "3.5"}, extendContext(base, 3.5))
	assert.Equal(t, []string{"root"}, extendContext(nil, "root"))
	assert.Equal(t, []string{"app"}, base)
}

func TestCommandConfig_OrderAndRecursion(t *testing.T) {
	want := []configureCommandFunc{
		setCommandName,
		setCommandDescription,
		setCommandAliases,
		setCommandDeprecated,
		setCommandArguments,
		setCommandCommands,
		setCommandExamples,
		setSubcommandIdentifiers,
	}
	require.Len(t, commandConfig, len(want))
	for i := range want {
		assert.Equal(t, reflect.ValueOf(want[i]).Pointer(), reflect.ValueOf(commandConfig[i]).Pointer(), "step %d", i)
	}

	root, err := NewCommand(Definition{
		"name":        "a",
		"description": "a",
		"commands": []any{Definition{"name": "b", "description": "b", "aliases": []any{"bee"},
			"commands": []any{Definition{"name": "c", "description": "c"}}}},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "bee"}, root.SubcommandIdentifiers)
	assert.True(t, root.HasSubcommands)
	assert.Equal(t, []string{"c"}, root.Commands[0].SubcommandIdentifiers)
}
