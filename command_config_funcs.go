package glap

import (
	"fmt"

	"github.com/napalu/glap/errs"
)

// NewCommand creates a Command named name. Configuration errors are kept and
// reported by NewProgramWith.
//
//	compress := NewCommand("compress",
//	    WithCommandShort('c'),
//	    WithParameter(NewFlag("verbose", WithShort('v'))),
//	    WithParameter(NewInputs()))
func NewCommand(name string, configs ...ConfigureCommandFunc) *Command {
	cmd := &Command{Name: name}
	if err := cmd.Set(configs...); err != nil {
		cmd.err = err
	}

	return cmd
}

// Set applies configs to the command and stops at the first error. It returns
// errs.ErrSchemaFrozen once the command belongs to a Program.
func (c *Command) Set(configs ...ConfigureCommandFunc) error {
	if c.frozen {
		return fmt.Errorf("%w: command %q", errs.ErrSchemaFrozen, c.Name)
	}
	var err error
	for _, config := range configs {
		config(c, &err)
		if err != nil {
			return err
		}
	}
	return nil
}

// WithCommandShort sets the single code point which selects the command, e.g. c for compress
func WithCommandShort(short rune) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		if !isValidShort(short) {
			*err = fmt.Errorf("%w: %q on command %q", errs.ErrInvalidShortName, short, command.Name)
			return
		}
		command.Short = short
	}
}

// WithCommandDescription sets the command description
func WithCommandDescription(description string) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		command.Description = description
	}
}

// WithParameter appends a parameter. Declaration order is kept in parse results.
func WithParameter(parameter *Parameter) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		if parameter == nil {
			*err = fmt.Errorf("%w: nil parameter on command %q", errs.ErrEmptyName, command.Name)
			return
		}
		if parameter.err != nil {
			*err = parameter.err
			return
		}
		command.parameters = append(command.parameters, parameter)
	}
}

// WithParameters appends several parameters
func WithParameters(parameters ...*Parameter) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		for _, p := range parameters {
			WithParameter(p)(command, err)
			if *err != nil {
				return
			}
		}
	}
}

// Parameters returns the declared parameters in declaration order
func (c *Command) Parameters() []*Parameter {
	out := make([]*Parameter, len(c.parameters))
	copy(out, c.parameters)
	return out
}

// Parameter returns the parameter with the given long name or result key
func (c *Command) Parameter(name string) (*Parameter, bool) {
	for _, p := range c.parameters {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}
