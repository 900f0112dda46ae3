package glap

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/napalu/glap/errs"
	"github.com/napalu/glap/resolve"
	"github.com/napalu/glap/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func command1() *Command {
	return NewCommand("command1",
		WithCommandShort('t'),
		WithParameters(
			NewFlag("flag", WithShort('f')),
			NewValue("arg", WithShort('c')),
			NewInput()))
}

func command2() *Command {
	return NewCommand("command2",
		WithParameters(
			NewFlag("flag", WithShort('f')),
			NewValue("arg", WithShort('a'), WithValidator(resolve.OneOf("hello", "world"))),
			NewValues("args", WithShort('b')),
			NewInputs()))
}

func command3() *Command {
	return NewCommand("command3",
		WithParameters(
			NewValues("float", WithResolver(resolve.Float(64))),
			NewValues("int", WithResolver(resolve.Int(0))),
			NewValues("point", WithResolver(resolve.PointResolver())),
			NewInputs(WithMax(3))))
}

func newTestProgram(t *testing.T, configs ...ConfigureProgramFunc) *Program {
	t.Helper()
	configs = append([]ConfigureProgramFunc{WithCommands(command1(), command2(), command3())}, configs...)
	p, err := NewProgramWith("glap", configs...)
	require.NoError(t, err)
	return p
}

func newArchiver(t *testing.T) *Program {
	t.Helper()
	p, err := NewProgramWith("prog",
		WithCommand(NewCommand("compress",
			WithCommandShort('c'),
			WithParameters(
				NewFlag("verbose", WithShort('v')),
				NewFlag("force", WithShort('f'), WithMax(1)),
				NewValue("output", WithShort('o'), SetRequired(true)),
				NewValue("level", WithShort('l'), WithResolver(resolve.Int(0)), WithDefaultValue("6")),
				NewValues("exclude", WithShort('x'), WithMax(2)),
				NewInputs()))),
		WithCommand(NewCommand("extract",
			WithCommandShort('x'),
			WithParameters(
				NewValue("into", WithShort('i'), SetRequired(true)),
				NewInput()))),
		WithFirstCommandAsDefault(),
		WithRequiredCheck())
	require.NoError(t, err)
	return p
}

func requirePositioned(t *testing.T, err error, kind errs.Kind, position int) *errs.PositionedError {
	t.Helper()
	require.Error(t, err)
	pe, ok := errs.As(err)
	require.True(t, ok, "expected *errs.PositionedError, got %T", err)
	assert.Equal(t, kind, pe.Kind, pe.Error())
	assert.Equal(t, position, pe.Position, pe.Error())
	return pe
}

func TestProgram_ProgramName(t *testing.T) {
	p := newTestProgram(t, WithFirstCommandAsDefault())

	res, err := p.Parse([]string{"glap"})
	require.NoError(t, err)
	assert.Equal(t, "glap", res.Program)
}

func TestProgram_NoArgument(t *testing.T) {
	p := newTestProgram(t, WithFirstCommandAsDefault())

	_, err := p.Parse(nil)
	pe := requirePositioned(t, err, errs.NoArgument, 0)
	assert.Equal(t, errs.None, pe.Type)
	assert.ErrorIs(t, err, errs.ErrNoArgument)
}

func TestProgram_CommandSelection(t *testing.T) {
	withDefault := newTestProgram(t, WithFirstCommandAsDefault())
	noDefault := newTestProgram(t)

	tests := []struct {
		name          string
		program       *Program
		args          []string
		wantCommand   string
		wantByDefault bool
		wantKind      errs.Kind
		wantPos       int
		wantErr       bool
	}{
		{name: "long name", program: withDefault, args: []string{"glap", "command1"}, wantCommand: "command1"},
		{name: "second command", program: withDefault, args: []string{"glap", "command2"}, wantCommand: "command2"},
		{name: "short name", program: withDefault, args: []string{"glap", "t"}, wantCommand: "command1"},
		{name: "default when empty", program: withDefault, args: []string{"glap"}, wantCommand: "command1", wantByDefault: true},
		{name: "default before option", program: withDefault, args: []string{"glap", "--flag"}, wantCommand: "command1", wantByDefault: true},
		{name: "bad long name", program: withDefault, args: []string{"glap", "command_none"}, wantErr: true, wantKind: errs.BadCommand, wantPos: 1},
		{name: "bad short name", program: withDefault, args: []string{"glap", "a"}, wantErr: true, wantKind: errs.BadCommand, wantPos: 1},
		{name: "no default", program: noDefault, args: []string{"glap"}, wantErr: true, wantKind: errs.NoGlobalCommand, wantPos: 1},
		{name: "no default before flag", program: noDefault, args: []string{"glap", "--flag"}, wantErr: true, wantKind: errs.NoGlobalCommand, wantPos: 1},
		{name: "no default before value", program: noDefault, args: []string{"glap", "--arg=value"}, wantErr: true, wantKind: errs.NoGlobalCommand, wantPos: 1},
		{name: "invalid utf-8", program: withDefault, args: []string{"glap", "\xff"}, wantErr: true, wantKind: errs.BadString, wantPos: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tt.program.Parse(tt.args)
			if tt.wantErr {
				requirePositioned(t, err, tt.wantKind, tt.wantPos)
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCommand, res.Command.Name)
			assert.Equal(t, tt.wantByDefault, res.Command.ByDefault)
		})
	}
}

func TestProgram_Flags(t *testing.T) {
	p := newTestProgram(t, WithFirstCommandAsDefault())

	tests := []struct {
		name    string
		args    []string
		want    int
		wantErr bool
	}{
		{name: "long", args: []string{"glap", "command1", "--flag"}, want: 1},
		{name: "long on second command", args: []string{"glap", "command2", "--flag"}, want: 1},
		{name: "short", args: []string{"glap", "command1", "-f"}, want: 1},
		{name: "repeated long", args: []string{"glap", "command1", "--flag", "--flag"}, want: 2},
		{name: "repeated short", args: []string{"glap", "command1", "-f", "-f"}, want: 2},
		{name: "cluster", args: []string{"glap", "command1", "-fff"}, want: 3},
		{name: "default command", args: []string{"glap", "--flag"}, want: 1},
		{name: "unknown long", args: []string{"glap", "command1", "--flag_none"}, wantErr: true},
		{name: "unknown short", args: []string{"glap", "command1", "-a"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := p.Parse(tt.args)
			if tt.wantErr {
				pe := requirePositioned(t, err, errs.UnknownArgument, 2)
				assert.Equal(t, errs.Unknown, pe.Type)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Command.Flag("flag").Occurrences)
			assert.Equal(t, tt.want, res.Command.Occurrences("flag"))
		})
	}
}

func TestProgram_Values(t *testing.T) {
	p := newTestProgram(t, WithFirstCommandAsDefault())

	tests := []struct {
		name     string
		args     []string
		wantArg  string
		wantArgs []string
	}{
		{name: "long inline", args: []string{"glap", "command2", "--arg=hello"}, wantArg: "hello"},
		{name: "long separate", args: []string{"glap", "command2", "--arg", "hello"}, wantArg: "hello"},
		{name: "short", args: []string{"glap", "command2", "-a", "hello"}, wantArg: "hello"},
		{name: "values inline", args: []string{"glap", "command2", "--args=value2"}, wantArgs: []string{"value2"}},
		{name: "values repeated long", args: []string{"glap", "command2", "--args=value1", "--args=value2"}, wantArgs: []string{"value1", "value2"}},
		{name: "values repeated short", args: []string{"glap", "command2", "-b", "value1", "-b", "value2"}, wantArgs: []string{"value1", "value2"}},
		{name: "values cluster", args: []string{"glap", "command2", "-bb", "value1", "value2"}, wantArgs: []string{"value1", "value2"}},
		{name: "combined long", args: []string{"glap", "command2", "--arg=hello", "--args=value2"}, wantArg: "hello", wantArgs: []string{"value2"}},
		{name: "combined short", args: []string{"glap", "command2", "-a", "hello", "-b", "value2"}, wantArg: "hello", wantArgs: []string{"value2"}},
		{name: "combined cluster", args: []string{"glap", "command2", "-ab", "hello", "value2"}, wantArg: "hello", wantArgs: []string{"value2"}},
		{name: "empty inline value", args: []string{"glap", "command2", "--args="}, wantArgs: []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := p.Parse(tt.args)
			require.NoError(t, err)
			got, ok := res.Command.Get("arg")
			assert.Equal(t, tt.wantArg != "", ok)
			assert.Equal(t, tt.wantArg, got)
			if len(tt.wantArgs) == 0 {
				assert.Zero(t, res.Command.Values("args").Len())
				return
			}
			assert.Equal(t, tt.wantArgs, res.Command.Values("args").Raw())
		})
	}
}

func TestProgram_InlineEquivalentToSeparate(t *testing.T) {
	p := newArchiver(t)

	inline, err := p.Parse([]string{"prog", "compress", "--output=out.bin"})
	require.NoError(t, err)
	separate, err := p.Parse([]string{"prog", "compress", "--output", "out.bin"})
	require.NoError(t, err)

	assert.Equal(t, inline.Command.Value("output").Raw, separate.Command.Value("output").Raw)
	assert.Equal(t, 2, inline.Command.Value("output").Position)
	assert.Equal(t, 3, separate.Command.Value("output").Position)
}

func TestProgram_ValueDefaultCommand(t *testing.T) {
	p := newTestProgram(t, WithFirstCommandAsDefault())

	res, err := p.Parse([]string{"glap", "-c", "value", "--flag"})
	require.NoError(t, err)
	assert.Equal(t, "command1", res.Command.Name)
	assert.True(t, res.Command.ByDefault)
	assert.Equal(t, "value", res.Command.Value("arg").Raw)
	assert.Equal(t, 1, res.Command.Flag("flag").Occurrences)
}

func TestProgram_ClusterClaimsInOrder(t *testing.T) {
	p := newTestProgram(t, WithFirstCommandAsDefault())

	res, err := p.Parse([]string{"glap", "command2", "-bbfbf", "v1", "v2", "v3"})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Command.Flag("flag").Occurrences)
	args := res.Command.Values("args")
	assert.Equal(t, []string{"v1", "v2", "v3"}, args.Raw())
	for i, item := range args.Items {
		assert.Equal(t, 3+i, item.Position)
	}
	assert.Equal(t, 0, res.Command.Inputs().Len())
}

func TestProgram_ClusterMissingValue(t *testing.T) {
	p := newTestProgram(t, WithFirstCommandAsDefault())

	_, err := p.Parse([]string{"glap", "command2", "-ab", "hello"})
	pe := requirePositioned(t, err, errs.MissingValue, 2)
	assert.Equal(t, "args", pe.Name)
	assert.Equal(t, "-ab", pe.Token)
}

func TestProgram_Errors(t *testing.T) {
	p := newTestProgram(t, WithFirstCommandAsDefault())
	a := newArchiver(t)

	tests := []struct {
		name     string
		program  *Program
		args     []string
		wantKind errs.Kind
		wantPos  int
		wantType errs.ParamType
		wantName string
	}{
		{name: "already set", program: p, args: []string{"glap", "command2", "--arg=hello", "--arg=world"}, wantKind: errs.DuplicateParameter, wantPos: 3, wantType: errs.Parameter, wantName: "arg"},
		{name: "already set in cluster", program: p, args: []string{"glap", "command2", "-aa", "hello", "world"}, wantKind: errs.DuplicateParameter, wantPos: 2, wantType: errs.Parameter, wantName: "arg"},
		{name: "bad validation", program: p, args: []string{"glap", "command2", "--arg=not_hello"}, wantKind: errs.BadValidation, wantPos: 2, wantType: errs.Parameter, wantName: "arg"},
		{name: "bad validation separate", program: p, args: []string{"glap", "command2", "-a", "not_hello"}, wantKind: errs.BadValidation, wantPos: 3, wantType: errs.Parameter, wantName: "arg"},
		{name: "missing value", program: a, args: []string{"prog", "compress", "--output"}, wantKind: errs.MissingValue, wantPos: 2, wantType: errs.Parameter, wantName: "output"},
		{name: "bad command", program: a, args: []string{"prog", "unknown"}, wantKind: errs.BadCommand, wantPos: 1, wantType: errs.Command, wantName: "unknown"},
		{name: "flag with value", program: a, args: []string{"prog", "compress", "--verbose=yes"}, wantKind: errs.FlagWithValue, wantPos: 2, wantType: errs.Flag, wantName: "verbose"},
		{name: "too many flags", program: a, args: []string{"prog", "compress", "-ff"}, wantKind: errs.TooManyFlags, wantPos: 2, wantType: errs.Flag, wantName: "force"},
		{name: "too many values", program: a, args: []string{"prog", "compress", "-x", "a", "-x", "b", "-x", "c"}, wantKind: errs.TooManyParameters, wantPos: 6, wantType: errs.Parameter, wantName: "exclude"},
		{name: "too many values in cluster", program: a, args: []string{"prog", "compress", "-xxx", "a", "b", "c"}, wantKind: errs.TooManyParameters, wantPos: 2, wantType: errs.Parameter, wantName: "exclude"},
		{name: "too many inputs", program: p, args: []string{"glap", "command3", "a", "b", "c", "d"}, wantKind: errs.TooManyParameters, wantPos: 5, wantType: errs.Input, wantName: "inputs"},
		{name: "second input", program: p, args: []string{"glap", "command1", "a", "b"}, wantKind: errs.DuplicateParameter, wantPos: 3, wantType: errs.Input, wantName: "input"},
		{name: "bad resolution", program: p, args: []string{"glap", "command3", "--int", "x"}, wantKind: errs.BadResolution, wantPos: 3, wantType: errs.Parameter, wantName: "int"},
		{name: "syntax error", program: p, args: []string{"glap", "command1", "---flag"}, wantKind: errs.SyntaxError, wantPos: 2, wantType: errs.None, wantName: "---flag"},
		{name: "empty long name", program: p, args: []string{"glap", "command1", "--=x"}, wantKind: errs.SyntaxError, wantPos: 2, wantType: errs.None, wantName: "--=x"},
		{name: "bad string", program: p, args: []string{"glap", "command1", "-\xff"}, wantKind: errs.BadString, wantPos: 2, wantType: errs.None, wantName: "-\xff"},
		{name: "unknown after positional", program: p, args: []string{"glap", "command2", "--flag", "-b", "v", "x", "--nope"}, wantKind: errs.UnknownArgument, wantPos: 6, wantType: errs.Unknown, wantName: "nope"},
		{name: "stops at bad validation", program: p, args: []string{"glap", "command2", "--arg=not_hello", "--nope"}, wantKind: errs.BadValidation, wantPos: 2, wantType: errs.Parameter, wantName: "arg"},
		{name: "stops at bad resolution", program: p, args: []string{"glap", "command3", "--int=x", "--float=y", "stray", "a", "b", "c"}, wantKind: errs.BadResolution, wantPos: 2, wantType: errs.Parameter, wantName: "int"},
		{name: "missing required output", program: a, args: []string{"prog", "compress", "-v", "file1"}, wantKind: errs.MissingRequired, wantPos: 4, wantType: errs.Parameter, wantName: "output"},
		{name: "missing required", program: a, args: []string{"prog", "extract", "archive.tar"}, wantKind: errs.MissingRequired, wantPos: 3, wantType: errs.Parameter, wantName: "into"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tt.program.Parse(tt.args)
			assert.Nil(t, res)
			pe := requirePositioned(t, err, tt.wantKind, tt.wantPos)
			assert.Equal(t, tt.wantType, pe.Type)
			assert.Equal(t, tt.wantName, pe.Name)
			assert.ErrorIs(t, err, tt.wantKind.Sentinel())
		})
	}
}

func TestProgram_PositionalWithoutInput(t *testing.T) {
	p, err := NewProgramWith("prog", WithCommand(NewCommand("run", WithParameter(NewFlag("flag")))))
	require.NoError(t, err)

	_, err = p.Parse([]string{"prog", "run", "stray"})
	pe := requirePositioned(t, err, errs.UnknownArgument, 2)
	assert.Equal(t, errs.Input, pe.Type)
	assert.Equal(t, "stray", pe.Value)
}

func TestProgram_BadResolutionCause(t *testing.T) {
	p := newTestProgram(t)

	_, err := p.Parse([]string{"glap", "command3", "--point=1;2"})
	pe := requirePositioned(t, err, errs.BadResolution, 2)
	assert.True(t, errors.Is(err, errs.ErrParsePoint))
	assert.Equal(t, "1;2", pe.Value)
	assert.Contains(t, err.Error(), `"point" (value: "1;2") (type: parameter)`)
}

func TestProgram_Resolvers(t *testing.T) {
	p := newTestProgram(t)

	res, err := p.Parse([]string{"glap", "command3",
		"--float=1.5", "--float", "-2",
		"--int=42",
		"--point=12,34",
		"in1", "in2"})
	require.NoError(t, err)

	assert.Equal(t, []any{1.5, -2.0}, res.Command.Values("float").Resolved())
	assert.Equal(t, []any{42}, res.Command.Values("int").Resolved())
	assert.Equal(t, []any{resolve.Point{X: 12, Y: 34}}, res.Command.Values("point").Resolved())
	assert.Equal(t, []string{"in1", "in2"}, res.Command.Inputs().Raw())

	pt, ok := As[resolve.Point](res.Command.Values("point").Items[0])
	require.True(t, ok)
	assert.Equal(t, 12, pt.X)
	assert.Equal(t, 34, pt.Y)
}

func TestProgram_CompressScenario(t *testing.T) {
	p := newArchiver(t)

	res, err := p.Parse([]string{"prog", "compress", "-vvv", "--output=out.bin", "file1", "file2"})
	require.NoError(t, err)

	cmd := res.Command
	assert.Equal(t, "compress", cmd.Name)
	assert.False(t, cmd.ByDefault)
	assert.Equal(t, 3, cmd.Flag("verbose").Occurrences)
	assert.Equal(t, 0, cmd.Flag("force").Occurrences)
	assert.Equal(t, "out.bin", cmd.Value("output").Raw)
	assert.Equal(t, 3, cmd.Value("output").Position)
	assert.Equal(t, []string{"file1", "file2"}, cmd.Inputs().Raw())
	assert.Equal(t, []string{"verbose", "force", "output", "level", "exclude", "inputs"}, cmd.Names())
	assert.Equal(t, 6, cmd.Len())

	level, ok := As[int](cmd.Value("level"))
	require.True(t, ok)
	assert.Equal(t, 6, level)
	assert.True(t, cmd.Value("level").IsDefault)
	assert.False(t, cmd.Value("level").IsSet)
	assert.Equal(t, -1, cmd.Value("level").Position)
}

func TestProgram_ResultShape(t *testing.T) {
	p := newArchiver(t)

	res, err := p.Parse([]string{"prog", "c", "-v", "-l", "9", "-x", "*.tmp", "a", "-o", "o.bin"})
	require.NoError(t, err)

	want := map[string]any{
		"verbose": &ParsedFlag{Occurrences: 1},
		"force":   &ParsedFlag{},
		"output":  &ParsedValue{Raw: "o.bin", Resolved: "o.bin", Position: 9, IsSet: true, kind: types.Value},
		"level":   &ParsedValue{Raw: "9", Resolved: 9, Position: 4, IsSet: true, kind: types.Value},
		"exclude": &ParsedValues{kind: types.Values, Items: []*ParsedValue{
			{Raw: "*.tmp", Resolved: "*.tmp", Position: 6, IsSet: true, kind: types.Values},
		}},
		"inputs": &ParsedValues{kind: types.Inputs, Items: []*ParsedValue{
			{Raw: "a", Resolved: "a", Position: 7, IsSet: true, kind: types.Inputs},
		}},
	}
	got := make(map[string]any)
	res.Command.Each(func(name string, p ParsedParameter) {
		got[name] = p
	})

	opts := cmp.Options{
		cmp.AllowUnexported(ParsedValue{}, ParsedValues{}),
		cmpopts.EquateEmpty(),
	}
	if diff := cmp.Diff(want, got, opts); diff != "" {
		t.Errorf("parsed command mismatch (-want +got):\n%s", diff)
	}
}

func TestProgram_RequiredSatisfied(t *testing.T) {
	p := newArchiver(t)

	res, err := p.Parse([]string{"prog", "extract", "-i", "/tmp", "archive.tar"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp", res.Command.Value("into").Raw)
	assert.Equal(t, "archive.tar", res.Command.Input().Raw)
	assert.Nil(t, res.Command.Inputs())

	res, err = p.Parse([]string{"prog", "-o", "out.bin", "file1"})
	require.NoError(t, err)
	assert.True(t, res.Command.ByDefault)
	assert.True(t, res.Command.Value("output").Seen())
	assert.Equal(t, []string{"file1"}, res.Command.Inputs().Raw())
}

func TestProgram_FrozenSchema(t *testing.T) {
	dup := NewValue("dup")
	p, err := NewProgramWith("prog", WithCommand(NewCommand("run", WithParameter(dup))))
	require.NoError(t, err)

	cmd, ok := p.Command("run")
	require.True(t, ok)
	err = cmd.Set(WithParameter(NewFlag("dup")))
	assert.ErrorIs(t, err, errs.ErrSchemaFrozen)
	assert.Len(t, cmd.Parameters(), 1)

	err = dup.Set(WithMax(3))
	assert.ErrorIs(t, err, errs.ErrSchemaFrozen)
	assert.Zero(t, dup.Max)

	res, err := p.Parse([]string{"prog", "run", "--dup", "x"})
	require.NoError(t, err)
	assert.Equal(t, "x", res.Command.Value("dup").Raw)

	// a frozen command can still be shared with another program
	other, err := NewProgramWith("other", WithCommand(cmd))
	require.NoError(t, err)
	_, err = other.Parse([]string{"other", "run", "--dup", "y"})
	assert.NoError(t, err)
}

func TestProgram_RequiredIgnoredWithoutCheck(t *testing.T) {
	p, err := NewProgramWith("prog",
		WithCommand(NewCommand("extract", WithParameter(NewValue("into", SetRequired(true))))))
	require.NoError(t, err)

	res, err := p.Parse([]string{"prog", "extract"})
	require.NoError(t, err)
	assert.False(t, res.Command.Value("into").Seen())
}

func TestProgram_DefaultCommandByName(t *testing.T) {
	p := newTestProgram(t, WithDefaultCommand("command2"))

	res, err := p.Parse([]string{"glap", "-b", "x"})
	require.NoError(t, err)
	assert.Equal(t, "command2", res.Command.Name)
	assert.Equal(t, []string{"x"}, res.Command.GetAll("args"))
	assert.Equal(t, "command2", p.DefaultCommand().Name)
}

func TestProgram_Accessors(t *testing.T) {
	p := newTestProgram(t)

	assert.Equal(t, "glap", p.Name())
	assert.Nil(t, p.DefaultCommand())
	cmds := p.Commands()
	require.Len(t, cmds, 3)
	assert.Equal(t, "command1", cmds[0].Name)
	c, ok := p.Command("command3")
	require.True(t, ok)
	assert.Len(t, c.Parameters(), 4)
	_, ok = p.Command("command4")
	assert.False(t, ok)
}

func TestProgram_ParseString(t *testing.T) {
	p := newArchiver(t)

	res, err := p.ParseString(`compress -v --output "my file.bin" 'a b' c`)
	require.NoError(t, err)
	assert.Equal(t, "prog", res.Program)
	assert.Equal(t, "my file.bin", res.Command.Value("output").Raw)
	assert.Equal(t, []string{"a b", "c"}, res.Command.Inputs().Raw())

	_, err = p.ParseString(`compress "unterminated`)
	assert.Error(t, err)
}

func TestNewProgramWith_SchemaErrors(t *testing.T) {
	tests := []struct {
		name    string
		configs []ConfigureProgramFunc
		wantErr error
	}{
		{
			name:    "no commands",
			wantErr: errs.ErrNoCommands,
		},
		{
			name:    "duplicate command",
			configs: []ConfigureProgramFunc{WithCommands(NewCommand("a"), NewCommand("a"))},
			wantErr: errs.ErrDuplicateLongName,
		},
		{
			name:    "duplicate command short",
			configs: []ConfigureProgramFunc{WithCommands(NewCommand("a", WithCommandShort('x')), NewCommand("b", WithCommandShort('x')))},
			wantErr: errs.ErrDuplicateShortName,
		},
		{
			name:    "empty command name",
			configs: []ConfigureProgramFunc{WithCommand(NewCommand(""))},
			wantErr: errs.ErrEmptyName,
		},
		{
			name:    "unknown default",
			configs: []ConfigureProgramFunc{WithCommand(NewCommand("a")), WithDefaultCommand("b")},
			wantErr: errs.ErrUnknownDefaultCommand,
		},
		{
			name: "duplicate parameter",
			configs: []ConfigureProgramFunc{WithCommand(NewCommand("a",
				WithParameters(NewFlag("v"), NewValue("v"))))},
			wantErr: errs.ErrDuplicateLongName,
		},
		{
			name: "duplicate parameter short",
			configs: []ConfigureProgramFunc{WithCommand(NewCommand("a",
				WithParameters(NewFlag("v", WithShort('v')), NewValue("verbose", WithShort('v')))))},
			wantErr: errs.ErrDuplicateShortName,
		},
		{
			name: "invalid short",
			configs: []ConfigureProgramFunc{WithCommand(NewCommand("a",
				WithParameter(NewFlag("v", WithShort('-')))))},
			wantErr: errs.ErrInvalidShortName,
		},
		{
			name: "two inputs",
			configs: []ConfigureProgramFunc{WithCommand(NewCommand("a",
				WithParameters(NewInput(), NewInputs())))},
			wantErr: errs.ErrMultipleInputs,
		},
		{
			name: "max on value",
			configs: []ConfigureProgramFunc{WithCommand(NewCommand("a",
				WithParameter(NewValue("v", WithMax(2)))))},
			wantErr: errs.ErrInvalidCardinality,
		},
		{
			name: "default on flag",
			configs: []ConfigureProgramFunc{WithCommand(NewCommand("a",
				WithParameter(NewFlag("v", WithDefaultValue("1")))))},
			wantErr: errs.ErrInvalidDefaultValue,
		},
		{
			name: "default failing resolver",
			configs: []ConfigureProgramFunc{WithCommand(NewCommand("a",
				WithParameter(NewValue("n", WithResolver(resolve.Int(0)), WithDefaultValue("ten")))))},
			wantErr: errs.ErrInvalidDefaultValue,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProgramWith("prog", tt.configs...)
			assert.Nil(t, p)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProgram_ConcurrentParse(t *testing.T) {
	p := newArchiver(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := p.Parse([]string{"prog", "compress", "-vv", "-x", "a", "f", "-o", "out"})
			if assert.NoError(t, err) {
				assert.Equal(t, 2, res.Command.Flag("verbose").Occurrences)
				assert.Equal(t, []string{"f"}, res.Command.Inputs().Raw())
			}
		}()
	}
	wg.Wait()
}
