package glap

import (
	"errors"

	"github.com/ef-ds/deque"
	"github.com/napalu/glap/errs"
	"github.com/napalu/glap/parse"
	"github.com/napalu/glap/types"
)

// claim is a value-taking short name seen in a cluster, waiting for its value token
type claim struct {
	param    *Parameter
	position int
}

// matcher consumes the arguments following the command, strictly left to right
type matcher struct {
	program *Program
	cmd     *Command
	state   parse.State
	result  *ParsedCommand
	pending *deque.Deque
	claimed map[*Parameter]int
}

func newMatcher(program *Program, cmd *Command, args []string, start int, byDefault bool) *matcher {
	return &matcher{
		program: program,
		cmd:     cmd,
		state:   parse.NewState(args, start),
		result:  newParsedCommand(cmd, byDefault),
		pending: deque.New(),
		claimed: make(map[*Parameter]int),
	}
}

func (m *matcher) run() (*ParsedCommand, error) {
	for m.state.Advance() {
		if err := m.step(); err != nil {
			return nil, err
		}
	}
	if err := m.finish(); err != nil {
		return nil, err
	}

	return m.result, nil
}

func (m *matcher) step() error {
	pos := m.state.Pos()
	arg := m.state.CurrentArg()

	tok, err := parse.Classify(arg)
	if err != nil {
		kind := errs.SyntaxError
		if errors.Is(err, errs.ErrBadString) {
			kind = errs.BadString
		}
		return m.fail(kind, errs.None, arg, pos)
	}

	switch tok.Kind {
	case parse.LongOption:
		return m.long(tok, pos)
	case parse.ShortCluster:
		return m.cluster(tok, pos)
	default:
		return m.positional(tok, pos)
	}
}

func (m *matcher) long(tok parse.Token, pos int) error {
	p, found := m.cmd.byName[tok.Name]
	if !found {
		e := m.fail(errs.UnknownArgument, errs.Unknown, tok.Name, pos)
		if tok.HasValue {
			e.WithValue(tok.Value)
		}
		return e
	}

	if p.Kind == types.Flag {
		if tok.HasValue {
			return m.fail(errs.FlagWithValue, errs.Flag, p.Name, pos).WithValue(tok.Value)
		}
		return m.countFlag(p, pos)
	}

	if err := m.checkCapacity(p, pos, 0); err != nil {
		return err
	}
	if tok.HasValue {
		return m.store(p, tok.Value, pos)
	}
	raw, ok := m.state.Next()
	if !ok {
		return m.fail(errs.MissingValue, errs.Parameter, p.Name, pos)
	}

	return m.store(p, raw, m.state.Pos())
}

// cluster handles -abc. Flags are counted in place; every value-taking name claims
// the next unconsumed argument, in the order the names appear.
func (m *matcher) cluster(tok parse.Token, pos int) error {
	clear(m.claimed)
	for _, r := range tok.Shorts {
		p, found := m.cmd.byShort[r]
		if !found {
			return m.fail(errs.UnknownArgument, errs.Unknown, string(r), pos)
		}
		if p.Kind == types.Flag {
			if err := m.countFlag(p, pos); err != nil {
				return err
			}
			continue
		}
		if err := m.checkCapacity(p, pos, m.claimed[p]); err != nil {
			return err
		}
		m.claimed[p]++
		m.pending.PushBack(claim{param: p, position: pos})
	}

	for m.pending.Len() > 0 {
		v, _ := m.pending.PopFront()
		c := v.(claim)
		raw, ok := m.state.Next()
		if !ok {
			return m.fail(errs.MissingValue, errs.Parameter, c.param.Name, c.position)
		}
		if err := m.store(c.param, raw, m.state.Pos()); err != nil {
			return err
		}
	}

	return nil
}

func (m *matcher) positional(tok parse.Token, pos int) error {
	p := m.cmd.input
	if p == nil {
		return m.fail(errs.UnknownArgument, errs.Input, tok.Value, pos).WithValue(tok.Value)
	}
	if err := m.checkCapacity(p, pos, 0); err != nil {
		return err.WithValue(tok.Value)
	}

	return m.store(p, tok.Value, pos)
}

func (m *matcher) countFlag(p *Parameter, pos int) error {
	f := m.result.Flag(p.Name)
	if p.Max > 0 && f.Occurrences >= p.Max {
		return m.fail(errs.TooManyFlags, errs.Flag, p.Name, pos)
	}
	f.Occurrences++

	return nil
}

// checkCapacity reports whether p can take one more value, counting pending
// claims from the current cluster
func (m *matcher) checkCapacity(p *Parameter, pos int, pending int) *errs.PositionedError {
	switch p.Kind {
	case types.Value, types.Input:
		if m.result.Value(p.Name).IsSet || pending > 0 {
			return m.fail(errs.DuplicateParameter, errorType(p.Kind), p.Name, pos)
		}
	case types.Values, types.Inputs:
		if p.Max > 0 && m.result.Values(p.Name).Len()+pending >= p.Max {
			return m.fail(errs.TooManyParameters, errorType(p.Kind), p.Name, pos)
		}
	}

	return nil
}

// store validates, resolves and records raw, which was read from args[pos]
func (m *matcher) store(p *Parameter, raw string, pos int) error {
	if p.Validator != nil && !p.Validator(raw) {
		return m.fail(errs.BadValidation, errorType(p.Kind), p.Name, pos).WithValue(raw)
	}

	var resolved any = raw
	if p.Resolver != nil {
		v, err := p.Resolver(raw)
		if err != nil {
			return m.fail(errs.BadResolution, errorType(p.Kind), p.Name, pos).WithValue(raw).WithCause(err)
		}
		resolved = v
	}

	switch p.Kind {
	case types.Value, types.Input:
		v := m.result.Value(p.Name)
		v.Raw = raw
		v.Resolved = resolved
		v.Position = pos
		v.IsSet = true
	case types.Values, types.Inputs:
		vs := m.result.Values(p.Name)
		vs.Items = append(vs.Items, &ParsedValue{
			Raw:      raw,
			Resolved: resolved,
			Position: pos,
			IsSet:    true,
			kind:     p.Kind,
		})
	}

	return nil
}

// finish applies defaults, then enforces required values when the program asks for it
func (m *matcher) finish() error {
	for _, p := range m.cmd.parameters {
		if p.Kind != types.Value || !p.hasDefault {
			continue
		}
		v := m.result.Value(p.Name)
		if v.IsSet {
			continue
		}
		v.Raw = p.DefaultValue
		v.Resolved = p.resolvedDef
		v.IsDefault = true
	}

	if !m.program.requiredCheck {
		return nil
	}
	for _, p := range m.cmd.parameters {
		if p.Kind != types.Value || !p.Required {
			continue
		}
		if v := m.result.Value(p.Name); !v.IsSet && !v.IsDefault {
			return m.fail(errs.MissingRequired, errs.Parameter, p.Name, m.state.Len())
		}
	}

	return nil
}

func (m *matcher) fail(kind errs.Kind, typ errs.ParamType, name string, pos int) *errs.PositionedError {
	e := errs.New(kind, typ, name, pos)
	if tok, err := m.state.ArgAt(pos); err == nil {
		e.WithToken(tok)
	}
	return e
}
