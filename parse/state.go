package parse

import (
	"errors"
)

// State is a forward-only cursor over the argument list. Positions are absolute
// indices into the list handed to NewState.
type State interface {
	Pos() int                      // Get the current position
	CurrentArg() string            // Get the current argument
	ArgAt(pos int) (string, error) // Get the argument at a specific position
	Advance() bool                 // Advance to the next argument
	Next() (string, bool)          // Advance and return the new current argument
	Len() int                      // Gets the length of the argument list
}

// ErrInvalidPosition is an error that occurs when an invalid position is accessed
var ErrInvalidPosition = errors.New("invalid position")

// DefaultState is the default implementation of the State interface
type DefaultState struct {
	pos  int
	args []string
}

// NewState creates a State positioned just before start, so that the first
// Advance lands on args[start].
func NewState(args []string, start int) State {
	return &DefaultState{
		pos:  start - 1,
		args: args,
	}
}

// Pos returns the current position in the argument list
func (s *DefaultState) Pos() int {
	return s.pos
}

// CurrentArg returns the current argument
func (s *DefaultState) CurrentArg() string {
	if s.pos < 0 || s.pos >= len(s.args) {
		return ""
	}
	return s.args[s.pos]
}

// Advance advances to the next argument, returning true if successful
func (s *DefaultState) Advance() bool {
	if s.pos+1 < len(s.args) {
		s.pos++
		return true
	}
	return false
}

// Next advances and returns the argument now under the cursor
func (s *DefaultState) Next() (string, bool) {
	if !s.Advance() {
		return "", false
	}
	return s.args[s.pos], true
}

// ArgAt returns the argument at a specific position
func (s *DefaultState) ArgAt(pos int) (string, error) {
	if pos < 0 || pos >= len(s.args) {
		return "", ErrInvalidPosition
	}

	return s.args[pos], nil
}

// Len returns the length of the argument list
func (s *DefaultState) Len() int {
	return len(s.args)
}
