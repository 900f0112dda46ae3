package errs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/napalu/glap/i18n"
)

// PositionedError is the single error reported by a failed parse. Position is the
// index, in the full argument list, of the token responsible for the failure.
type PositionedError struct {
	Kind     Kind
	Type     ParamType
	Name     string // parameter or command name as written by the user, or the raw token
	Token    string // raw token at Position, empty when Position is past the end
	Value    string
	HasValue bool
	Position int
	Cause    error
}

// New returns a PositionedError without a value
func New(kind Kind, typ ParamType, name string, position int) *PositionedError {
	return &PositionedError{Kind: kind, Type: typ, Name: name, Position: position}
}

// WithValue attaches the offending value
func (e *PositionedError) WithValue(v string) *PositionedError {
	e.Value = v
	e.HasValue = true
	return e
}

// WithToken records the raw token at the error position
func (e *PositionedError) WithToken(tok string) *PositionedError {
	e.Token = tok
	return e
}

// WithCause records the error returned by a resolver
func (e *PositionedError) WithCause(err error) *PositionedError {
	e.Cause = err
	return e
}

// Error renders the error with the message provider of the built-in errors,
// e.g. `at argument 2: "flag" (type: flag) : too many flags`
func (e *PositionedError) Error() string {
	return e.Format(currentProvider())
}

// Format renders the error with p
func (e *PositionedError) Format(p i18n.MessageProvider) string {
	return fmt.Sprintf(p.GetMessage(PositionedKey), e.Position, e.Detail(p))
}

// Detail renders the part following the position
func (e *PositionedError) Detail(p i18n.MessageProvider) string {
	var sb strings.Builder
	sb.WriteString(`"`)
	sb.WriteString(e.Name)
	sb.WriteString(`"`)
	if e.HasValue {
		fmt.Fprintf(&sb, ` (%s: "%s")`, p.GetMessage(MsgValueKey), e.Value)
	}
	if key := e.Type.Key(); key != "" {
		fmt.Fprintf(&sb, " (%s: %s)", p.GetMessage(MsgTypeKey), p.GetMessage(key))
	}
	sb.WriteString(" : ")
	sb.WriteString(p.GetMessage(e.Kind.Key()))
	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}

	return sb.String()
}

// Is matches the sentinel of the error's kind, or another PositionedError of the same kind
func (e *PositionedError) Is(target error) bool {
	if t, ok := target.(*PositionedError); ok {
		return t.Kind == e.Kind
	}
	if s := e.Kind.Sentinel(); s != nil {
		return s.Is(target)
	}
	return false
}

// Unwrap returns the resolver error, if any
func (e *PositionedError) Unwrap() error {
	return e.Cause
}

// As returns the PositionedError contained in err
func As(err error) (*PositionedError, bool) {
	var pe *PositionedError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
