package errs

import (
	"sync"

	"github.com/iancoleman/strcase"
	"github.com/napalu/glap/i18n"
)

// Kind classifies a parse failure
type Kind int

const (
	NoArgument         Kind = iota // NoArgument means the argument list was empty
	NoGlobalCommand                // NoGlobalCommand means no command was named and no default exists
	BadCommand                     // BadCommand means token 1 names no declared command
	UnknownArgument                // UnknownArgument means an option or positional has no matching parameter
	MissingValue                   // MissingValue means a value-taking option had no value token left
	DuplicateParameter             // DuplicateParameter means a single-value slot was written twice
	TooManyParameters              // TooManyParameters means a repeatable slot exceeded its maximum
	TooManyFlags                   // TooManyFlags means a flag occurred more often than allowed
	FlagWithValue                  // FlagWithValue means a flag was given an inline value
	BadValidation                  // BadValidation means a validator rejected a raw value
	BadResolution                  // BadResolution means a resolver returned an error
	SyntaxError                    // SyntaxError means a token is malformed
	BadString                      // BadString means a name fragment is not valid UTF-8
	MissingRequired                // MissingRequired means a required value was never given
)

// Aliases kept for callers used to the older names
const (
	AlreadySet   = DuplicateParameter
	InvalidValue = BadValidation
)

var kindNames = [...]string{
	NoArgument:         "NoArgument",
	NoGlobalCommand:    "NoGlobalCommand",
	BadCommand:         "BadCommand",
	UnknownArgument:    "UnknownArgument",
	MissingValue:       "MissingValue",
	DuplicateParameter: "DuplicateParameter",
	TooManyParameters:  "TooManyParameters",
	TooManyFlags:       "TooManyFlags",
	FlagWithValue:      "FlagWithValue",
	BadValidation:      "BadValidation",
	BadResolution:      "BadResolution",
	SyntaxError:        "SyntaxError",
	BadString:          "BadString",
	MissingRequired:    "MissingRequired",
}

// String returns the Go name of the kind
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// Key returns the translation key of the kind, e.g. glap.error.too_many_flags
func (k Kind) Key() string {
	return ErrorPrefixKey + "." + strcase.ToSnake(k.String())
}

// Sentinel returns the error matched by errors.Is for this kind
func (k Kind) Sentinel() i18n.TranslatableError {
	if k < 0 || int(k) >= len(kindSentinels) {
		return nil
	}
	return kindSentinels[k]
}

// ParamType describes what the offending token was taken for
type ParamType int

const (
	Command   ParamType = iota // Command is a command token
	Parameter                  // Parameter is a value-taking option
	Flag                       // Flag is a flag option
	Input                      // Input is a positional value
	None                       // None is used when no parameter is involved
	Unknown                    // Unknown is an option that could not be attributed
)

// String returns the lower-case name of the type, or "" for None
func (t ParamType) String() string {
	switch t {
	case Command:
		return "command"
	case Parameter:
		return "parameter"
	case Flag:
		return "flag"
	case Input:
		return "input"
	case None:
		return ""
	default:
		return "unknown"
	}
}

// Key returns the translation key of the type name, or "" for None
func (t ParamType) Key() string {
	if t == None {
		return ""
	}
	return TypePrefixKey + "." + t.String()
}

// Parse errors, one per Kind
var (
	ErrNoArgument         = i18n.NewError(NoArgument.Key())
	ErrNoGlobalCommand    = i18n.NewError(NoGlobalCommand.Key())
	ErrBadCommand         = i18n.NewError(BadCommand.Key())
	ErrUnknownArgument    = i18n.NewError(UnknownArgument.Key())
	ErrMissingValue       = i18n.NewError(MissingValue.Key())
	ErrDuplicateParameter = i18n.NewError(DuplicateParameter.Key())
	ErrTooManyParameters  = i18n.NewError(TooManyParameters.Key())
	ErrTooManyFlags       = i18n.NewError(TooManyFlags.Key())
	ErrFlagWithValue      = i18n.NewError(FlagWithValue.Key())
	ErrBadValidation      = i18n.NewError(BadValidation.Key())
	ErrBadResolution      = i18n.NewError(BadResolution.Key())
	ErrSyntaxError        = i18n.NewError(SyntaxError.Key())
	ErrBadString          = i18n.NewError(BadString.Key())
	ErrMissingRequired    = i18n.NewError(MissingRequired.Key())

	ErrAlreadySet   = ErrDuplicateParameter
	ErrInvalidValue = ErrBadValidation
)

// Schema errors
var (
	ErrEmptyName             = i18n.NewError(ErrEmptyNameKey)
	ErrDuplicateLongName     = i18n.NewError(ErrDuplicateLongNameKey)
	ErrDuplicateShortName    = i18n.NewError(ErrDuplicateShortNameKey)
	ErrInvalidShortName      = i18n.NewError(ErrInvalidShortNameKey)
	ErrMultipleInputs        = i18n.NewError(ErrMultipleInputsKey)
	ErrInvalidCardinality    = i18n.NewError(ErrInvalidCardinalityKey)
	ErrUnknownDefaultCommand = i18n.NewError(ErrUnknownDefaultCommandKey)
	ErrNoCommands            = i18n.NewError(ErrNoCommandsKey)
	ErrInvalidDefaultValue   = i18n.NewError(ErrInvalidDefaultValueKey)
	ErrSchemaFrozen          = i18n.NewError(ErrSchemaFrozenKey)
)

// Resolver errors
var (
	ErrParseInt      = i18n.NewError(ErrParseIntKey)
	ErrParseUint     = i18n.NewError(ErrParseUintKey)
	ErrParseFloat    = i18n.NewError(ErrParseFloatKey)
	ErrParseBool     = i18n.NewError(ErrParseBoolKey)
	ErrParseDuration = i18n.NewError(ErrParseDurationKey)
	ErrParseTime     = i18n.NewError(ErrParseTimeKey)
	ErrParseUUID     = i18n.NewError(ErrParseUUIDKey)
	ErrParsePoint    = i18n.NewError(ErrParsePointKey)
)

var kindSentinels = [...]i18n.TranslatableError{
	NoArgument:         ErrNoArgument,
	NoGlobalCommand:    ErrNoGlobalCommand,
	BadCommand:         ErrBadCommand,
	UnknownArgument:    ErrUnknownArgument,
	MissingValue:       ErrMissingValue,
	DuplicateParameter: ErrDuplicateParameter,
	TooManyParameters:  ErrTooManyParameters,
	TooManyFlags:       ErrTooManyFlags,
	FlagWithValue:      ErrFlagWithValue,
	BadValidation:      ErrBadValidation,
	BadResolution:      ErrBadResolution,
	SyntaxError:        ErrSyntaxError,
	BadString:          ErrBadString,
	MissingRequired:    ErrMissingRequired,
}

type builtInErrors struct {
	mu       sync.Mutex
	provider i18n.MessageProvider
	All      []i18n.TranslatableError
}

var sysErrors = &builtInErrors{
	All: append(kindSentinels[:],
		ErrEmptyName,
		ErrDuplicateLongName,
		ErrDuplicateShortName,
		ErrInvalidShortName,
		ErrMultipleInputs,
		ErrInvalidCardinality,
		ErrUnknownDefaultCommand,
		ErrNoCommands,
		ErrInvalidDefaultValue,
		ErrSchemaFrozen,
		ErrParseInt,
		ErrParseUint,
		ErrParseFloat,
		ErrParseBool,
		ErrParseDuration,
		ErrParseTime,
		ErrParseUUID,
		ErrParsePoint,
	),
}

// UpdateMessageProvider replaces the message provider of every built-in error.
// Positioned errors created afterwards render their frame with the same provider.
func UpdateMessageProvider(provider i18n.MessageProvider) {
	sysErrors.mu.Lock()
	defer sysErrors.mu.Unlock()
	sysErrors.provider = provider
	for _, err := range sysErrors.All {
		err.SetProvider(provider)
	}
}

func currentProvider() i18n.MessageProvider {
	sysErrors.mu.Lock()
	defer sysErrors.mu.Unlock()
	if sysErrors.provider != nil {
		return sysErrors.provider
	}
	return i18n.DefaultMessageProvider()
}
