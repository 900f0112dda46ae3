package resolve

import (
	"regexp"
	"slices"

	"github.com/iancoleman/strcase"
	"github.com/napalu/glap/types"
)

// OneOf accepts exactly one of values
func OneOf(values ...string) types.Validator {
	return func(raw string) bool {
		return slices.Contains(values, raw)
	}
}

// Pattern accepts values matching expr in full. It panics if expr does not compile,
// so it is meant for expressions known at build time.
func Pattern(expr string) types.Validator {
	re := regexp.MustCompile(`^(?:` + expr + `)$`)
	return re.MatchString
}

// Enum accepts values equal to one of values after case and separator folding,
// so "DryRun", "dry_run" and "DRY-RUN" all match "dry-run".
func Enum(values ...string) types.Validator {
	folded := foldAll(values)
	return func(raw string) bool {
		_, ok := folded[strcase.ToKebab(raw)]
		return ok
	}
}

// EnumValue resolves a value accepted by Enum to its declared spelling
func EnumValue(values ...string) types.Resolver {
	folded := foldAll(values)
	return func(raw string) (any, error) {
		if v, ok := folded[strcase.ToKebab(raw)]; ok {
			return v, nil
		}
		return raw, nil
	}
}

// NotEmpty rejects the empty string
func NotEmpty() types.Validator {
	return func(raw string) bool {
		return raw != ""
	}
}

// All accepts a value only if every validator does. Nil validators are skipped.
func All(validators ...types.Validator) types.Validator {
	return func(raw string) bool {
		for _, v := range validators {
			if v != nil && !v(raw) {
				return false
			}
		}
		return true
	}
}

func foldAll(values []string) map[string]string {
	folded := make(map[string]string, len(values))
	for _, v := range values {
		folded[strcase.ToKebab(v)] = v
	}
	return folded
}
