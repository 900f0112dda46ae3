package glap

import (
	"fmt"

	"github.com/napalu/glap/errs"
	"github.com/napalu/glap/types"
)

// NewFlag declares a switch counted by occurrences, e.g. -v or --verbose
func NewFlag(name string, configs ...ConfigureParameterFunc) *Parameter {
	return newParameter(types.Flag, name, configs)
}

// NewValue declares an option carrying exactly one string, e.g. --level 9 or --level=9
func NewValue(name string, configs ...ConfigureParameterFunc) *Parameter {
	return newParameter(types.Value, name, configs)
}

// NewValues declares a repeatable option, each occurrence appending a string
func NewValues(name string, configs ...ConfigureParameterFunc) *Parameter {
	return newParameter(types.Values, name, configs)
}

// NewInput declares a single positional value. Use WithName to change its result key.
func NewInput(configs ...ConfigureParameterFunc) *Parameter {
	return newParameter(types.Input, "input", configs)
}

// NewInputs declares repeatable positional values. Use WithName to change their result key.
func NewInputs(configs ...ConfigureParameterFunc) *Parameter {
	return newParameter(types.Inputs, "inputs", configs)
}

func newParameter(kind types.ParameterKind, name string, configs []ConfigureParameterFunc) *Parameter {
	p := &Parameter{Kind: kind, Name: name}
	if err := p.Set(configs...); err != nil {
		p.err = err
	}

	return p
}

// Set configures the Parameter with the provided ConfigureParameterFunc(s),
// and returns an error if a configuration results in an error.
//
// Usage example:
//
//	p := NewValue("level")
//	err := p.Set(
//	    WithShort('l'),
//	    WithResolver(resolve.Int(0)),
//	    SetRequired(true),
//	)
//	if err != nil {
//	    // handle error
//	}
//
// Parameters of a built Program are frozen: Set then returns errs.ErrSchemaFrozen.
func (p *Parameter) Set(configs ...ConfigureParameterFunc) error {
	if p.frozen {
		return fmt.Errorf("%w: %s %q", errs.ErrSchemaFrozen, p.Kind, p.Name)
	}
	var err error
	for _, config := range configs {
		config(p, &err)
		if err != nil {
			return err
		}
	}
	return nil
}

// WithShort sets the single code point usable as -s, alone or in a cluster such as -vs
func WithShort(short rune) ConfigureParameterFunc {
	return func(p *Parameter, err *error) {
		if !isValidShort(short) || p.Kind.IsPositional() {
			*err = fmt.Errorf("%w: %q on %s %q", errs.ErrInvalidShortName, short, p.Kind, p.Name)
			return
		}
		p.Short = short
	}
}

// WithMax limits how often a Flag may occur or how many strings Values and Inputs
// may collect. 0 means unbounded.
func WithMax(limit int) ConfigureParameterFunc {
	return func(p *Parameter, err *error) {
		if limit < 0 || (limit > 0 && !p.Kind.IsRepeatable() && p.Kind != types.Flag) {
			*err = fmt.Errorf("%w: max %d on %s %q", errs.ErrInvalidCardinality, limit, p.Kind, p.Name)
			return
		}
		p.Max = limit
	}
}

// SetRequired marks a Value as required. Programs built WithRequiredCheck fail with
// errs.MissingRequired when it is absent and has no default.
func SetRequired(required bool) ConfigureParameterFunc {
	return func(p *Parameter, err *error) {
		p.Required = required
	}
}

// WithValidator sets the predicate run on every raw string before resolution
func WithValidator(validator types.Validator) ConfigureParameterFunc {
	return func(p *Parameter, err *error) {
		p.Validator = validator
	}
}

// WithResolver sets the conversion of raw strings into typed values
func WithResolver(resolver types.Resolver) ConfigureParameterFunc {
	return func(p *Parameter, err *error) {
		p.Resolver = resolver
	}
}

// WithDescription sets the parameter description
func WithDescription(description string) ConfigureParameterFunc {
	return func(p *Parameter, err *error) {
		p.Description = description
	}
}

// WithMetavar sets the placeholder shown for the value by help generators
func WithMetavar(metavar string) ConfigureParameterFunc {
	return func(p *Parameter, err *error) {
		p.Metavar = metavar
	}
}

// WithDefaultValue sets the value used when a Value is not given. The default goes
// through the validator and resolver when the Program is built.
func WithDefaultValue(value string) ConfigureParameterFunc {
	return func(p *Parameter, err *error) {
		if p.Kind != types.Value {
			*err = fmt.Errorf("%w: %s %q cannot have a default", errs.ErrInvalidDefaultValue, p.Kind, p.Name)
			return
		}
		p.DefaultValue = value
		p.hasDefault = true
	}
}

// WithName overrides the result key of an Input or Inputs
func WithName(name string) ConfigureParameterFunc {
	return func(p *Parameter, err *error) {
		if name == "" {
			*err = fmt.Errorf("%w: %s", errs.ErrEmptyName, p.Kind)
			return
		}
		p.Name = name
	}
}
