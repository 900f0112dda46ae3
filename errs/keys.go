// Package errs defines the errors reported by glap and their translation keys.
package errs

// Prefix for all glap translation keys
const (
	prefixKey = "glap"
)

// Key groups
const (
	ErrorPrefixKey   = prefixKey + ".error"
	SchemaPrefixKey  = ErrorPrefixKey + ".schema"
	ResolvePrefixKey = ErrorPrefixKey + ".resolve"
	TypePrefixKey    = prefixKey + ".type"
	MsgPrefixKey     = prefixKey + ".msg"
)

// PositionedKey formats "at argument %d: %s"
const PositionedKey = ErrorPrefixKey + ".positioned"

// Schema errors, reported while a Program is built
const (
	ErrEmptyNameKey             = SchemaPrefixKey + ".empty_name"
	ErrDuplicateLongNameKey     = SchemaPrefixKey + ".duplicate_long_name"
	ErrDuplicateShortNameKey    = SchemaPrefixKey + ".duplicate_short_name"
	ErrInvalidShortNameKey      = SchemaPrefixKey + ".invalid_short_name"
	ErrMultipleInputsKey        = SchemaPrefixKey + ".multiple_inputs"
	ErrInvalidCardinalityKey    = SchemaPrefixKey + ".invalid_cardinality"
	ErrUnknownDefaultCommandKey = SchemaPrefixKey + ".unknown_default_command"
	ErrNoCommandsKey            = SchemaPrefixKey + ".no_commands"
	ErrInvalidDefaultValueKey   = SchemaPrefixKey + ".invalid_default_value"
	ErrSchemaFrozenKey          = SchemaPrefixKey + ".frozen"
)

// Built-in resolver errors
const (
	ErrParseIntKey      = ResolvePrefixKey + ".int"
	ErrParseUintKey     = ResolvePrefixKey + ".uint"
	ErrParseFloatKey    = ResolvePrefixKey + ".float"
	ErrParseBoolKey     = ResolvePrefixKey + ".bool"
	ErrParseDurationKey = ResolvePrefixKey + ".duration"
	ErrParseTimeKey     = ResolvePrefixKey + ".time"
	ErrParseUUIDKey     = ResolvePrefixKey + ".uuid"
	ErrParsePointKey    = ResolvePrefixKey + ".point"
)

// Labels used when rendering a PositionedError
const (
	MsgValueKey = MsgPrefixKey + ".value"
	MsgTypeKey  = MsgPrefixKey + ".type"
)
