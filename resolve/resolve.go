// Package resolve provides ready-made resolvers and validators for glap parameters.
//
// A resolver turns the raw string of a parameter into a typed value; its error
// aborts the parse with errs.BadResolution. A validator only accepts or rejects
// the raw string and runs before the resolver.
package resolve

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"
	"github.com/napalu/glap/errs"
	"github.com/napalu/glap/types"
)

// Int resolves a base-10 signed integer. The resolved value has the Go type
// matching bitSize: int for 0, int8, int16, int32 or int64 otherwise.
func Int(bitSize int) types.Resolver {
	return func(raw string) (any, error) {
		n, err := strconv.ParseInt(raw, 10, bitSize)
		if err != nil {
			return nil, errs.ErrParseInt.WithArgs(raw)
		}
		switch bitSize {
		case 8:
			return int8(n), nil
		case 16:
			return int16(n), nil
		case 32:
			return int32(n), nil
		case 64:
			return n, nil
		default:
			return int(n), nil
		}
	}
}

// Uint resolves a base-10 unsigned integer, typed like Int
func Uint(bitSize int) types.Resolver {
	return func(raw string) (any, error) {
		n, err := strconv.ParseUint(raw, 10, bitSize)
		if err != nil {
			return nil, errs.ErrParseUint.WithArgs(raw)
		}
		switch bitSize {
		case 8:
			return uint8(n), nil
		case 16:
			return uint16(n), nil
		case 32:
			return uint32(n), nil
		case 64:
			return n, nil
		default:
			return uint(n), nil
		}
	}
}

// Float resolves a floating point number: float32 when bitSize is 32, float64 otherwise
func Float(bitSize int) types.Resolver {
	return func(raw string) (any, error) {
		if bitSize == 32 {
			f, err := strconv.ParseFloat(raw, 32)
			if err != nil {
				return nil, errs.ErrParseFloat.WithArgs(raw)
			}
			return float32(f), nil
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errs.ErrParseFloat.WithArgs(raw)
		}
		return f, nil
	}
}

// Bool resolves the spellings accepted by strconv.ParseBool
func Bool() types.Resolver {
	return func(raw string) (any, error) {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, errs.ErrParseBool.WithArgs(raw)
		}
		return b, nil
	}
}

// Duration resolves a time.Duration such as "1h30m"
func Duration() types.Resolver {
	return func(raw string) (any, error) {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, errs.ErrParseDuration.WithArgs(raw)
		}
		return d, nil
	}
}

// Time resolves a date or timestamp in any layout understood by dateparse
func Time() types.Resolver {
	return func(raw string) (any, error) {
		t, err := dateparse.ParseAny(raw)
		if err != nil {
			return nil, errs.ErrParseTime.WithArgs(raw)
		}
		return t, nil
	}
}

// UUID resolves a uuid.UUID
func UUID() types.Resolver {
	return func(raw string) (any, error) {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, errs.ErrParseUUID.WithArgs(raw)
		}
		return id, nil
	}
}

// Point is a pair of integer coordinates written "x,y"
type Point struct {
	X, Y int
}

// PointResolver resolves "x,y" into a Point
func PointResolver() types.Resolver {
	return func(raw string) (any, error) {
		xs, ys, ok := strings.Cut(raw, ",")
		if !ok {
			return nil, errs.ErrParsePoint.WithArgs(raw)
		}
		x, err := strconv.Atoi(xs)
		if err != nil {
			return nil, errs.ErrParsePoint.WithArgs(raw)
		}
		y, err := strconv.Atoi(ys)
		if err != nil {
			return nil, errs.ErrParsePoint.WithArgs(raw)
		}
		return Point{X: x, Y: y}, nil
	}
}

// List splits raw on sep and resolves every part with item. The resolved value is
// []string when item is nil, []any otherwise. An empty raw string yields an empty list.
func List(sep string, item types.Resolver) types.Resolver {
	return func(raw string) (any, error) {
		var parts []string
		if raw != "" {
			parts = strings.Split(raw, sep)
		}
		if item == nil {
			if parts == nil {
				return []string{}, nil
			}
			return parts, nil
		}
		out := make([]any, 0, len(parts))
		for _, p := range parts {
			v, err := item(p)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}
}
