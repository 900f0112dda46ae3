package parse

import (
	"strings"
	"unicode/utf8"

	"github.com/napalu/glap/errs"
)

// TokenKind is the syntactic category of a single argument
type TokenKind int

const (
	Positional   TokenKind = iota // Positional is a bare value, possibly empty
	LongOption                    // LongOption is --name or --name=value
	ShortCluster                  // ShortCluster is -abc, one or more short names
)

// String returns the string representation of a TokenKind
func (k TokenKind) String() string {
	switch k {
	case LongOption:
		return "long"
	case ShortCluster:
		return "short"
	default:
		return "positional"
	}
}

// Token is a classified argument
type Token struct {
	Kind     TokenKind
	Raw      string
	Name     string // LongOption name, without dashes
	Value    string // inline value of a LongOption, or the whole Positional
	HasValue bool   // LongOption was written with '='
	Shorts   []rune // ShortCluster code points, left to right
}

// Classify categorises a single argument. Positional and inline values are kept
// byte-exact; names must be valid UTF-8.
//
// The returned error is errs.ErrSyntaxError for "--", "--=x", "-" and anything
// starting with three or more dashes, or errs.ErrBadString for a name fragment
// that is not valid UTF-8.
func Classify(arg string) (Token, error) {
	tok := Token{Raw: arg}

	switch {
	case strings.HasPrefix(arg, "---"):
		return tok, errs.ErrSyntaxError
	case strings.HasPrefix(arg, "--"):
		tok.Kind = LongOption
		name, value, found := strings.Cut(arg[2:], "=")
		if name == "" {
			return tok, errs.ErrSyntaxError
		}
		if !utf8.ValidString(name) {
			return tok, errs.ErrBadString
		}
		tok.Name = name
		tok.Value = value
		tok.HasValue = found
	case strings.HasPrefix(arg, "-"):
		tok.Kind = ShortCluster
		cluster := arg[1:]
		if cluster == "" {
			return tok, errs.ErrSyntaxError
		}
		if !utf8.ValidString(cluster) {
			return tok, errs.ErrBadString
		}
		tok.Shorts = []rune(cluster)
	default:
		tok.Kind = Positional
		tok.Value = arg
	}

	return tok, nil
}
