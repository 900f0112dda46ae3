package glap

import (
	"github.com/napalu/glap/types"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ParsedProgram is the result of a successful Parse
type ParsedProgram struct {
	Program string // argument 0, as given
	Command *ParsedCommand
}

// ParsedParameter is implemented by *ParsedFlag, *ParsedValue and *ParsedValues
type ParsedParameter interface {
	Kind() types.ParameterKind
	// Seen reports whether the parameter occurred on the command line
	Seen() bool
}

// ParsedFlag holds the number of times a flag occurred
type ParsedFlag struct {
	Occurrences int
}

// Kind returns types.Flag
func (f *ParsedFlag) Kind() types.ParameterKind { return types.Flag }

// Seen reports whether the flag occurred at least once
func (f *ParsedFlag) Seen() bool { return f.Occurrences > 0 }

// ParsedValue is the slot of a Value or Input, or one item of a Values or Inputs.
// Resolved holds the raw string when the parameter has no resolver.
type ParsedValue struct {
	Raw       string
	Resolved  any
	Position  int // index of the argument carrying Raw, -1 when unset or defaulted
	IsSet     bool
	IsDefault bool
	kind      types.ParameterKind
}

// Kind returns types.Value or types.Input
func (v *ParsedValue) Kind() types.ParameterKind { return v.kind }

// Seen reports whether the value was given on the command line
func (v *ParsedValue) Seen() bool { return v.IsSet }

// ParsedValues holds the strings collected by a Values or Inputs, in order
type ParsedValues struct {
	Items []*ParsedValue
	kind  types.ParameterKind
}

// Kind returns types.Values or types.Inputs
func (v *ParsedValues) Kind() types.ParameterKind { return v.kind }

// Seen reports whether at least one value was collected
func (v *ParsedValues) Seen() bool { return len(v.Items) > 0 }

// Len returns the number of collected values
func (v *ParsedValues) Len() int {
	if v == nil {
		return 0
	}
	return len(v.Items)
}

// Raw returns the collected strings
func (v *ParsedValues) Raw() []string {
	if v == nil {
		return nil
	}
	out := make([]string, len(v.Items))
	for i, item := range v.Items {
		out[i] = item.Raw
	}
	return out
}

// Resolved returns the resolved values
func (v *ParsedValues) Resolved() []any {
	if v == nil {
		return nil
	}
	out := make([]any, len(v.Items))
	for i, item := range v.Items {
		out[i] = item.Resolved
	}
	return out
}

// ParsedCommand holds one entry per declared parameter, in declaration order,
// whether or not the parameter occurred.
type ParsedCommand struct {
	Name      string
	ByDefault bool // the command was not named on the command line
	inputKey  string
	params    *orderedmap.OrderedMap[string, ParsedParameter]
}

func newParsedCommand(c *Command, byDefault bool) *ParsedCommand {
	pc := &ParsedCommand{
		Name:      c.Name,
		ByDefault: byDefault,
		params:    orderedmap.New[string, ParsedParameter](len(c.parameters)),
	}
	for _, p := range c.parameters {
		var entry ParsedParameter
		switch p.Kind {
		case types.Flag:
			entry = &ParsedFlag{}
		case types.Value, types.Input:
			entry = &ParsedValue{kind: p.Kind, Position: -1}
		default:
			entry = &ParsedValues{kind: p.Kind}
		}
		pc.params.Set(p.Name, entry)
	}
	if c.input != nil {
		pc.inputKey = c.input.Name
	}

	return pc
}

// Parameter returns the entry of the parameter with the given name or result key
func (c *ParsedCommand) Parameter(name string) (ParsedParameter, bool) {
	return c.params.Get(name)
}

// Flag returns the flag entry, or nil if name is not a flag of the command
func (c *ParsedCommand) Flag(name string) *ParsedFlag {
	p, _ := c.params.Get(name)
	f, _ := p.(*ParsedFlag)
	return f
}

// Value returns the entry of a Value or Input, or nil
func (c *ParsedCommand) Value(name string) *ParsedValue {
	p, _ := c.params.Get(name)
	v, _ := p.(*ParsedValue)
	return v
}

// Values returns the entry of a Values or Inputs, or nil
func (c *ParsedCommand) Values(name string) *ParsedValues {
	p, _ := c.params.Get(name)
	v, _ := p.(*ParsedValues)
	return v
}

// Input returns the positional slot of a command declaring an Input, or nil
func (c *ParsedCommand) Input() *ParsedValue {
	if c.inputKey == "" {
		return nil
	}
	return c.Value(c.inputKey)
}

// Inputs returns the positional values of a command declaring Inputs, or nil
func (c *ParsedCommand) Inputs() *ParsedValues {
	if c.inputKey == "" {
		return nil
	}
	return c.Values(c.inputKey)
}

// Occurrences returns how many times name was given: flag occurrences, the number of
// collected values, or 1 for a set single value
func (c *ParsedCommand) Occurrences(name string) int {
	p, found := c.params.Get(name)
	if !found {
		return 0
	}
	switch v := p.(type) {
	case *ParsedFlag:
		return v.Occurrences
	case *ParsedValue:
		if v.IsSet {
			return 1
		}
	case *ParsedValues:
		return v.Len()
	}
	return 0
}

// Get returns the raw string of a single value (given or defaulted), or the first
// collected string of a repeatable parameter
func (c *ParsedCommand) Get(name string) (string, bool) {
	p, found := c.params.Get(name)
	if !found {
		return "", false
	}
	switch v := p.(type) {
	case *ParsedValue:
		if v.IsSet || v.IsDefault {
			return v.Raw, true
		}
	case *ParsedValues:
		if len(v.Items) > 0 {
			return v.Items[0].Raw, true
		}
	}
	return "", false
}

// GetAll returns every raw string of name, in order
func (c *ParsedCommand) GetAll(name string) []string {
	p, found := c.params.Get(name)
	if !found {
		return nil
	}
	switch v := p.(type) {
	case *ParsedValue:
		if v.IsSet || v.IsDefault {
			return []string{v.Raw}
		}
	case *ParsedValues:
		return v.Raw()
	}
	return nil
}

// Each calls fn for every declared parameter in declaration order
func (c *ParsedCommand) Each(fn func(name string, p ParsedParameter)) {
	for pair := c.params.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// Names returns the parameter names in declaration order
func (c *ParsedCommand) Names() []string {
	names := make([]string, 0, c.params.Len())
	c.Each(func(name string, _ ParsedParameter) {
		names = append(names, name)
	})
	return names
}

// Len returns the number of declared parameters
func (c *ParsedCommand) Len() int {
	return c.params.Len()
}

// As returns the resolved value of v as a T
func As[T any](v *ParsedValue) (T, bool) {
	var zero T
	if v == nil || !(v.IsSet || v.IsDefault) {
		return zero, false
	}
	t, ok := v.Resolved.(T)
	return t, ok
}
