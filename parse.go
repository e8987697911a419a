package declflag

import (
	"os"
	"slices"
	"strconv"
	"strings"
)

const flagPrefix = "-"

// Parse scans argv, the raw argument vector of a program invocation,
// and assigns a value to every registered flag it matches. The first
// element of argv (the program name) is discarded. Results are
// observable through the *Flag handles returned at registration; Parse
// itself returns nil on success, or a *ParseError describing the first
// failure.
//
// Tokens are consumed left to right. A token beginning with "-" names
// a flag: the first remaining descriptor, in registration order, whose
// name equals the token with its dash stripped is selected and removed
// from the working list, so one flag matches at most once per pass.
// Boolean flags flip to true and consume no value; all other kinds
// consume the following token and coerce it. A token without the dash
// prefix is offered to the remaining regex flags in registration
// order; the first whose pattern matches takes the token verbatim.
//
// On any failure the pass aborts immediately. Flags matched before the
// failing token keep their coerced values; there is no rollback.
//
// Each call takes a fresh working copy of the full registry, so a
// second Parse can match, and overwrite, flags already populated by an
// earlier call.
func (r *Registry) Parse(argv []string) error {
	pending := slices.Clone(r.flags)
	for _, f := range pending {
		f.matched = false
	}

	var tokens []string
	if len(argv) > 0 {
		tokens = argv[1:]
	}

	for len(tokens) > 0 {
		tok := tokens[0]
		tokens = tokens[1:]

		if !strings.HasPrefix(tok, flagPrefix) {
			i := indexPatternMatch(pending, tok)
			if i < 0 {
				return &ParseError{Kind: UnexpectedToken, Token: tok}
			}
			f := pending[i]
			pending = slices.Delete(pending, i, i+1)
			f.value = tok
			f.matched = true
			continue
		}

		name := strings.TrimPrefix(tok, flagPrefix)
		i := indexNamed(pending, name)
		if i < 0 {
			return &ParseError{Kind: UnknownFlag, Token: tok}
		}
		f := pending[i]
		pending = slices.Delete(pending, i, i+1)

		if f.kind == KindBool {
			f.value = true
			f.matched = true
			continue
		}

		if len(tokens) == 0 {
			return &ParseError{Kind: MissingValue, Flag: f.name}
		}
		raw := tokens[0]
		tokens = tokens[1:]

		switch f.kind {
		case KindInt:
			n, err := strconv.Atoi(raw)
			if err != nil {
				return &ParseError{
					Kind: TypeMismatch, Flag: f.name, Token: raw, Want: KindInt,
				}
			}
			f.value = n

		case KindFloat:
			x, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return &ParseError{
					Kind: TypeMismatch, Flag: f.name, Token: raw, Want: KindFloat,
				}
			}
			f.value = x

		default:
			// KindString, and KindRegex matched via its "-name" form.
			// The regex pattern is not consulted on this path.
			f.value = raw
		}
		f.matched = true
	}

	for _, f := range pending {
		if f.required {
			return &ParseError{Kind: RequiredFlagMissing, Flag: f.name}
		}
	}

	return nil
}

// ParseCommandLine parses the process's own command line, os.Args.
func (r *Registry) ParseCommandLine() error {
	return r.Parse(os.Args)
}

// Parse scans argv against the Default registry.
func Parse(argv []string) error {
	return Default.Parse(argv)
}

// ParseCommandLine parses os.Args against the Default registry.
func ParseCommandLine() error {
	return Default.ParseCommandLine()
}

// IndexNamed returns the position of the first flag with the given
// name, or -1. Registration order is match priority; duplicate names
// resolve to the earliest remaining entry.
func indexNamed(flags []*Flag, name string) int {
	for i, f := range flags {
		if f.name == name {
			return i
		}
	}
	return -1
}

// IndexPatternMatch returns the position of the first regex flag whose
// pattern matches the token, or -1.
func indexPatternMatch(flags []*Flag, tok string) int {
	for i, f := range flags {
		if f.kind == KindRegex && f.pattern.MatchString(tok) {
			return i
		}
	}
	return -1
}
