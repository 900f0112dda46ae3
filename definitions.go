package glap

import (
	"github.com/napalu/glap/types"
)

// ConfigureProgramFunc is used when defining Program options
type ConfigureProgramFunc func(program *Program, err *error)

// ConfigureCommandFunc is used when defining Command options
type ConfigureCommandFunc func(command *Command, err *error)

// ConfigureParameterFunc is used when defining Parameter options
type ConfigureParameterFunc func(parameter *Parameter, err *error)

// Program is a validated, immutable schema. A Program may be shared by
// goroutines; every Parse call owns its result.
type Program struct {
	name           string
	commands       []*Command
	byName         map[string]*Command
	byShort        map[rune]*Command
	defaultPolicy  types.DefaultCommandPolicy
	defaultName    string
	defaultCommand *Command
	requiredCheck  bool
}

// Command groups the parameters accepted after a command name. Once a Program
// accepts the command, Set fails and the fields must be treated as read-only.
type Command struct {
	Name        string
	Short       rune // 0 when the command has no short name
	Description string
	parameters  []*Parameter
	byName      map[string]*Parameter
	byShort     map[rune]*Parameter
	input       *Parameter
	err         error
	frozen      bool
}

// Parameter describes one Flag, Value, Values, Input or Inputs of a Command.
//
// For Input and Inputs, Name is only the key under which the positional values
// are found in the result; it defaults to "input" and "inputs".
type Parameter struct {
	Kind         types.ParameterKind
	Name         string
	Short        rune // 0 when the parameter has no short name
	Max          int  // 0 means unbounded; occurrences for Flag, values for Values and Inputs
	Required     bool // Value only, enforced with WithRequiredCheck
	Validator    types.Validator
	Resolver     types.Resolver
	Description  string
	Metavar      string // placeholder for help generators, e.g. FILE
	DefaultValue string // Value only, applied when the value is not given
	hasDefault   bool
	resolvedDef  any
	err          error
	frozen       bool
}

// HasDefault reports whether WithDefaultValue was used
func (p *Parameter) HasDefault() bool {
	return p.hasDefault
}
