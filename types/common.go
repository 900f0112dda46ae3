package types

// ParameterKind used to define Parameter kinds (such as Flag, Value, Inputs)
type ParameterKind int

// String returns the string representation of a ParameterKind
func (k ParameterKind) String() string {
	switch k {
	case Flag:
		return "flag"
	case Value:
		return "value"
	case Values:
		return "values"
	case Input:
		return "input"
	case Inputs:
		return "inputs"
	default:
		return "unknown"
	}
}

const (
	Flag   ParameterKind = iota // Flag denotes a named switch counted by occurrences, never carrying a value
	Value                       // Value denotes a named option carrying exactly one string
	Values                      // Values denotes a named option which may be repeated, each occurrence appending a string
	Input                       // Input denotes a single unnamed positional value
	Inputs                      // Inputs denotes a repeatable unnamed positional value
)

// IsNamed reports whether parameters of this kind are addressed by --long or -s names
func (k ParameterKind) IsNamed() bool {
	return k == Flag || k == Value || k == Values
}

// TakesValue reports whether parameters of this kind consume a string
func (k ParameterKind) TakesValue() bool {
	return k != Flag
}

// IsRepeatable reports whether a parameter of this kind may receive more than one value
func (k ParameterKind) IsRepeatable() bool {
	return k == Values || k == Inputs
}

// IsPositional reports whether parameters of this kind are bound to bare tokens
func (k ParameterKind) IsPositional() bool {
	return k == Input || k == Inputs
}

// Validator is a caller-supplied predicate run on a raw string before resolution.
// Returning false rejects the value and aborts parsing.
type Validator func(raw string) bool

// Resolver converts a raw string into a typed value. A non-nil error aborts parsing.
type Resolver func(raw string) (any, error)

// DefaultCommandPolicy decides which command is used when no command name is given
type DefaultCommandPolicy int

const (
	NoDefault    DefaultCommandPolicy = iota // NoDefault requires a command name on the command line
	FirstDefined                             // FirstDefined selects the first declared command
	Named                                    // Named selects an explicitly named command
)

// String returns the string representation of a DefaultCommandPolicy
func (p DefaultCommandPolicy) String() string {
	switch p {
	case FirstDefined:
		return "first"
	case Named:
		return "named"
	default:
		return "none"
	}
}

// KeyValue denotes Key Value pairs
type KeyValue[K, V any] struct {
	Key   K
	Value V
}
