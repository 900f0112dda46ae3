// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package glap parses command lines against a declarative schema.
//
// A Program declares commands; each Command declares its parameters:
//
//	Flag   - a switch counted by occurrences (-v, -vvv, --verbose)
//	Value  - an option carrying exactly one string (--level 9, --level=9, -l 9)
//	Values - a repeatable option, each occurrence appending a string
//	Input  - a single positional value
//	Inputs - repeatable positional values
//
// Argument 0 is the program name and argument 1 names the command, by long name or by
// short code point. When argument 1 is missing or starts with '-', the default command
// is used if one was configured.
//
// Parsing is fail-fast: the first problem is reported as an *errs.PositionedError carrying
// the index of the offending argument. Short names may be packed (-vvf); every
// value-taking name in a pack consumes one of the following arguments, in order.
package glap

import (
	"github.com/napalu/glap/parse"
)

// Parse matches args against the program schema. args[0] is the program name.
// On failure the returned error is an *errs.PositionedError.
func (p *Program) Parse(args []string) (*ParsedProgram, error) {
	cmd, start, byDefault, err := p.resolveCommand(args)
	if err != nil {
		return nil, err
	}

	parsed, err := newMatcher(p, cmd, args, start, byDefault).run()
	if err != nil {
		return nil, err
	}

	return &ParsedProgram{Program: args[0], Command: parsed}, nil
}

// ParseString splits line with shell quoting rules and parses the result, using the
// program name as argument 0
func (p *Program) ParseString(line string) (*ParsedProgram, error) {
	args, err := parse.Split(line)
	if err != nil {
		return nil, err
	}

	return p.Parse(append([]string{p.name}, args...))
}

// Name returns the program name
func (p *Program) Name() string {
	return p.name
}

// Commands returns the declared commands in declaration order
func (p *Program) Commands() []*Command {
	out := make([]*Command, len(p.commands))
	copy(out, p.commands)
	return out
}

// Command returns the command with the given long name
func (p *Program) Command(name string) (*Command, bool) {
	c, found := p.byName[name]
	return c, found
}

// DefaultCommand returns the command used when none is named, or nil
func (p *Program) DefaultCommand() *Command {
	return p.defaultCommand
}
