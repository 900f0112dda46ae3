package glap

import (
	"fmt"

	"github.com/napalu/glap/errs"
	"github.com/napalu/glap/types"
)

// NewProgramWith builds and validates a Program using option functions. The caller should
// always test for error on return because Program will be nil when the schema is invalid.
//
// Configuration example:
//
//	program, err := NewProgramWith("archiver",
//	    WithCommand(NewCommand("compress",
//	        WithCommandShort('c'),
//	        WithParameters(
//	            NewFlag("verbose", WithShort('v')),
//	            NewValue("level", WithShort('l'), WithResolver(resolve.Int(0))),
//	            NewInputs()))),
//	    WithCommand(NewCommand("extract",
//	        WithParameter(NewInput()))),
//	    WithFirstCommandAsDefault())
func NewProgramWith(name string, configs ...ConfigureProgramFunc) (*Program, error) {
	program := &Program{
		name:    name,
		byName:  make(map[string]*Command),
		byShort: make(map[rune]*Command),
	}

	var err error
	for _, config := range configs {
		config(program, &err)
		if err != nil {
			return nil, err
		}
	}

	if err = program.validate(); err != nil {
		return nil, err
	}

	return program, nil
}

// WithCommand declares a command. The first declared command is the default for
// WithFirstCommandAsDefault.
func WithCommand(command *Command) ConfigureProgramFunc {
	return func(program *Program, err *error) {
		*err = program.addCommand(command)
	}
}

// WithCommands declares several commands in order
func WithCommands(commands ...*Command) ConfigureProgramFunc {
	return func(program *Program, err *error) {
		for _, c := range commands {
			if *err = program.addCommand(c); *err != nil {
				return
			}
		}
	}
}

// WithDefaultCommand selects the command used when the first argument is missing or
// is an option. name must be declared, in any order relative to this option.
func WithDefaultCommand(name string) ConfigureProgramFunc {
	return func(program *Program, err *error) {
		if name == "" {
			*err = fmt.Errorf("%w: default command", errs.ErrEmptyName)
			return
		}
		program.defaultPolicy = types.Named
		program.defaultName = name
	}
}

// WithFirstCommandAsDefault uses the first declared command as the default command
func WithFirstCommandAsDefault() ConfigureProgramFunc {
	return func(program *Program, err *error) {
		program.defaultPolicy = types.FirstDefined
		program.defaultName = ""
	}
}

// WithRequiredCheck makes Parse fail with errs.MissingRequired when a required Value
// of the selected command is absent after all arguments were consumed
func WithRequiredCheck() ConfigureProgramFunc {
	return func(program *Program, err *error) {
		program.requiredCheck = true
	}
}
