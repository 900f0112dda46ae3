package glap

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/napalu/glap/errs"
	"github.com/napalu/glap/types"
)

func (p *Program) addCommand(command *Command) error {
	if command == nil {
		return fmt.Errorf("%w: nil command", errs.ErrEmptyName)
	}
	if command.err != nil {
		return command.err
	}
	if command.Name == "" {
		return fmt.Errorf("%w: command #%d", errs.ErrEmptyName, len(p.commands)+1)
	}
	if _, found := p.byName[command.Name]; found {
		return fmt.Errorf("%w: command %q", errs.ErrDuplicateLongName, command.Name)
	}
	if command.Short != 0 {
		if !isValidShort(command.Short) {
			return fmt.Errorf("%w: %q on command %q", errs.ErrInvalidShortName, command.Short, command.Name)
		}
		if other, found := p.byShort[command.Short]; found {
			return fmt.Errorf("%w: %q on commands %q and %q", errs.ErrDuplicateShortName, command.Short, other.Name, command.Name)
		}
	}
	if err := command.index(); err != nil {
		return err
	}
	command.freeze()

	p.commands = append(p.commands, command)
	p.byName[command.Name] = command
	if command.Short != 0 {
		p.byShort[command.Short] = command
	}

	return nil
}

func (p *Program) validate() error {
	if len(p.commands) == 0 {
		return fmt.Errorf("%w: %q", errs.ErrNoCommands, p.name)
	}

	switch p.defaultPolicy {
	case types.FirstDefined:
		p.defaultCommand = p.commands[0]
	case types.Named:
		c, found := p.byName[p.defaultName]
		if !found {
			return fmt.Errorf("%w: %q", errs.ErrUnknownDefaultCommand, p.defaultName)
		}
		p.defaultCommand = c
	}

	return nil
}

// index validates the parameters of c and builds its lookup tables
func (c *Command) index() error {
	seen := make(map[string]struct{}, len(c.parameters))
	byName := make(map[string]*Parameter, len(c.parameters))
	byShort := make(map[rune]*Parameter)
	var input *Parameter

	for _, p := range c.parameters {
		if p.Kind < types.Flag || p.Kind > types.Inputs {
			return fmt.Errorf("%w: unknown parameter kind %d on command %q", errs.ErrInvalidCardinality, int(p.Kind), c.Name)
		}
		if p.Name == "" {
			return fmt.Errorf("%w: %s parameter on command %q", errs.ErrEmptyName, p.Kind, c.Name)
		}
		if _, found := seen[p.Name]; found {
			return fmt.Errorf("%w: %q on command %q", errs.ErrDuplicateLongName, p.Name, c.Name)
		}
		seen[p.Name] = struct{}{}

		if p.Max < 0 || (p.Max > 0 && (p.Kind == types.Value || p.Kind == types.Input)) {
			return fmt.Errorf("%w: max %d on %s %q", errs.ErrInvalidCardinality, p.Max, p.Kind, p.Name)
		}

		if p.Kind.IsPositional() {
			if p.Short != 0 {
				return fmt.Errorf("%w: %q on %s %q", errs.ErrInvalidShortName, p.Short, p.Kind, p.Name)
			}
			if input != nil {
				return fmt.Errorf("%w: %q and %q on command %q", errs.ErrMultipleInputs, input.Name, p.Name, c.Name)
			}
			input = p
		} else {
			byName[p.Name] = p
			if p.Short != 0 {
				if !isValidShort(p.Short) {
					return fmt.Errorf("%w: %q on %s %q", errs.ErrInvalidShortName, p.Short, p.Kind, p.Name)
				}
				if other, found := byShort[p.Short]; found {
					return fmt.Errorf("%w: %q on %q and %q", errs.ErrDuplicateShortName, p.Short, other.Name, p.Name)
				}
				byShort[p.Short] = p
			}
		}

		if err := p.compileDefault(); err != nil {
			return err
		}
	}

	c.byName = byName
	c.byShort = byShort
	c.input = input

	return nil
}

// freeze rejects further Set calls on c and its parameters
func (c *Command) freeze() {
	c.frozen = true
	for _, p := range c.parameters {
		p.frozen = true
	}
}

// compileDefault checks the default value against the validator and resolves it once
func (p *Parameter) compileDefault() error {
	if p.DefaultValue != "" {
		p.hasDefault = true
	}
	if !p.hasDefault {
		return nil
	}
	if p.Kind != types.Value {
		return fmt.Errorf("%w: %s %q cannot have a default", errs.ErrInvalidDefaultValue, p.Kind, p.Name)
	}
	if p.Validator != nil && !p.Validator(p.DefaultValue) {
		return fmt.Errorf("%w: %q for %q", errs.ErrInvalidDefaultValue, p.DefaultValue, p.Name)
	}

	p.resolvedDef = p.DefaultValue
	if p.Resolver != nil {
		v, err := p.Resolver(p.DefaultValue)
		if err != nil {
			return fmt.Errorf("%w: %q for %q: %w", errs.ErrInvalidDefaultValue, p.DefaultValue, p.Name, err)
		}
		p.resolvedDef = v
	}

	return nil
}

// resolveCommand picks the command from args[1]. It returns the command and the index
// of the first argument left for the matcher.
func (p *Program) resolveCommand(args []string) (*Command, int, bool, error) {
	if len(args) == 0 {
		return nil, 0, false, errs.New(errs.NoArgument, errs.None, "", 0)
	}

	if len(args) == 1 || strings.HasPrefix(args[1], "-") {
		if p.defaultCommand != nil {
			return p.defaultCommand, 1, true, nil
		}
		name := ""
		if len(args) > 1 {
			name = args[1]
		}
		return nil, 0, false, errs.New(errs.NoGlobalCommand, errs.Command, name, 1).WithToken(name)
	}

	token := args[1]
	if !utf8.ValidString(token) {
		return nil, 0, false, errs.New(errs.BadString, errs.None, token, 1).WithToken(token)
	}
	if c, found := p.byName[token]; found {
		return c, 2, false, nil
	}
	if utf8.RuneCountInString(token) == 1 {
		r, _ := utf8.DecodeRuneInString(token)
		if c, found := p.byShort[r]; found {
			return c, 2, false, nil
		}
	}

	return nil, 0, false, errs.New(errs.BadCommand, errs.Command, token, 1).WithToken(token)
}

// isValidShort accepts printable, non-space code points other than '-' and '='
func isValidShort(r rune) bool {
	return r > 0 &&
		r != '-' &&
		r != '=' &&
		r != utf8.RuneError &&
		utf8.ValidRune(r) &&
		unicode.IsPrint(r) &&
		!unicode.IsSpace(r)
}

func errorType(kind types.ParameterKind) errs.ParamType {
	switch kind {
	case types.Flag:
		return errs.Flag
	case types.Value, types.Values:
		return errs.Parameter
	case types.Input, types.Inputs:
		return errs.Input
	default:
		return errs.Unknown
	}
}
