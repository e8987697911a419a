package declflag

import "fmt"

// ErrorKind identifies the failure mode of a parse pass.
type ErrorKind int

const (
	// UnexpectedToken: an unprefixed token matched no regex flag.
	UnexpectedToken ErrorKind = iota

	// UnknownFlag: a "-name" token matched no remaining flag.
	UnknownFlag

	// MissingValue: a non-boolean flag was named but no token was left
	// to supply its value.
	MissingValue

	// TypeMismatch: the supplied value could not be coerced to the
	// flag's declared type.
	TypeMismatch

	// RequiredFlagMissing: a required flag was never matched.
	RequiredFlagMissing
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "unexpected token"
	case UnknownFlag:
		return "unknown flag"
	case MissingValue:
		return "missing value"
	case TypeMismatch:
		return "type mismatch"
	case RequiredFlagMissing:
		return "required flag missing"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ParseError is the error returned by Parse. Callers branch on Kind
// rather than matching message text.
type ParseError struct {
	Kind  ErrorKind
	Token string // the offending raw token, when one exists
	Flag  string // the flag name (no dash), when one is known
	Want  Kind   // the expected kind, for TypeMismatch
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnexpectedToken:
		return fmt.Sprintf("expected a flag, got %q", e.Token)
	case UnknownFlag:
		return fmt.Sprintf("unknown flag: %s", e.Token)
	case MissingValue:
		return fmt.Sprintf("no value supplied for the -%s flag", e.Flag)
	case TypeMismatch:
		article := "a"
		if e.Want == KindInt {
			article = "an"
		}
		return fmt.Sprintf("type mismatch: the -%s flag expects %s %s",
			e.Flag, article, e.Want)
	case RequiredFlagMissing:
		return fmt.Sprintf("the -%s flag is required", e.Flag)
	default:
		return e.Kind.String()
	}
}
