package declflag

import (
	"fmt"
	"regexp"
)

// Kind identifies the data type of a flag, and thereby the coercion
// and matching rules that apply to it.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindString
	KindBool
	KindRegex
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindRegex:
		return "regex"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Flag describes one registered flag: its name, kind, default, and the
// value assigned by the most recent parse. Callers hold the *Flag
// returned at registration and read the value after parsing.
type Flag struct {
	name        string
	description string
	kind        Kind
	required    bool
	pattern     *regexp.Regexp // KindRegex only; anchored at the start
	def         any
	value       any
	matched     bool
}

// Name returns the flag name, without the leading dash.
func (f *Flag) Name() string { return f.name }

// Description returns the help text supplied at registration.
func (f *Flag) Description() string { return f.description }

// Kind returns the flag's type tag.
func (f *Flag) Kind() Kind { return f.kind }

// Required reports whether the flag must be matched during a parse.
// Always false for boolean flags.
func (f *Flag) Required() bool { return f.required }

// Default returns the value the flag holds when it is not matched.
func (f *Flag) Default() any { return f.def }

// Value returns the current value as an untyped any. For typed access
// use Int, Float, String, or Bool.
func (f *Flag) Value() any { return f.value }

// Matched reports whether the most recent parse assigned a value to
// this flag. It distinguishes an explicit match from a retained
// default, which Value alone cannot.
func (f *Flag) Matched() bool { return f.matched }

func (f *Flag) mustKind(want Kind) {
	if f.kind != want {
		panic(fmt.Sprintf("declflag: flag -%s is %s, not %s",
			f.name, f.kind, want))
	}
}

// Int returns the current value of an integer flag.
// Panics if the flag is not of KindInt.
func (f *Flag) Int() int {
	f.mustKind(KindInt)
	return f.value.(int)
}

// Float returns the current value of a float flag.
// Panics if the flag is not of KindFloat.
func (f *Flag) Float() float64 {
	f.mustKind(KindFloat)
	return f.value.(float64)
}

// String returns the current value of a string or regex flag.
// Panics for any other kind.
func (f *Flag) String() string {
	if f.kind != KindString && f.kind != KindRegex {
		panic(fmt.Sprintf("declflag: flag -%s is %s, not string",
			f.name, f.kind))
	}
	return f.value.(string)
}

// Bool returns the current value of a boolean flag.
// Panics if the flag is not of KindBool.
func (f *Flag) Bool() bool {
	f.mustKind(KindBool)
	return f.value.(bool)
}

// -----

// Registry is an ordered collection of flag descriptors. It is
// append-only: flags are registered before parsing, and there is no
// removal operation. Registration order determines match priority, for
// name lookup and for regex-pattern scanning alike.
//
// Registry performs no locking; registration and parsing must be
// serialized by the caller.
type Registry struct {
	flags []*Flag
}

// NewRegistry returns an empty Registry. Independent registries may
// coexist in one process; tests in particular should create their own
// rather than populate Default.
func NewRegistry() *Registry {
	return &Registry{}
}

// Flags returns the registered descriptors in registration order.
// The returned slice is the registry's own backing; callers must not
// modify it.
func (r *Registry) Flags() []*Flag {
	return r.flags
}

func (r *Registry) add(f *Flag) *Flag {
	r.flags = append(r.flags, f)
	return f
}

// Int registers an integer flag, matched as "-name value" with the
// value parsed as a base-10 integer.
func (r *Registry) Int(name string, def int, description string, required bool) *Flag {
	return r.add(&Flag{
		name:        name,
		description: description,
		kind:        KindInt,
		required:    required,
		def:         def,
		value:       def,
	})
}

// Float registers a floating-point flag, matched as "-name value".
func (r *Registry) Float(name string, def float64, description string, required bool) *Flag {
	return r.add(&Flag{
		name:        name,
		description: description,
		kind:        KindFloat,
		required:    required,
		def:         def,
		value:       def,
	})
}

// String registers a string flag, matched as "-name value". The value
// is taken verbatim.
func (r *Registry) String(name, def, description string, required bool) *Flag {
	return r.add(&Flag{
		name:        name,
		description: description,
		kind:        KindString,
		required:    required,
		def:         def,
		value:       def,
	})
}

// Bool registers a boolean flag. It takes no value on the command
// line: presence of "-name" sets it to true. Boolean flags cannot be
// required, since absence already means false.
func (r *Registry) Bool(name, description string) *Flag {
	return r.add(&Flag{
		name:        name,
		description: description,
		kind:        KindBool,
		def:         false,
		value:       false,
	})
}

// Regex registers a string flag constrained by a regular expression.
// During parsing, an argument that does not begin with a dash is
// tested against the pattern, anchored at the start of the token;
// trailing content after the match is permitted. The flag can also be
// set explicitly as "-name value", in which case the pattern is NOT
// consulted.
//
// Regex panics if the pattern does not compile. Registration has no
// error path; a malformed pattern is a programming error.
func (r *Registry) Regex(name, pattern, def, description string, required bool) *Flag {
	return r.add(&Flag{
		name:        name,
		description: description,
		kind:        KindRegex,
		required:    required,
		pattern:     regexp.MustCompile("^(?:" + pattern + ")"),
		def:         def,
		value:       def,
	})
}

// -----

// Default is the process-wide registry used by the package-level
// registration and parsing functions.
var Default = NewRegistry()

// Int registers an integer flag in the Default registry.
func Int(name string, def int, description string, required bool) *Flag {
	return Default.Int(name, def, description, required)
}

// Float registers a floating-point flag in the Default registry.
func Float(name string, def float64, description string, required bool) *Flag {
	return Default.Float(name, def, description, required)
}

// String registers a string flag in the Default registry.
func String(name, def, description string, required bool) *Flag {
	return Default.String(name, def, description, required)
}

// Bool registers a boolean flag in the Default registry.
func Bool(name, description string) *Flag {
	return Default.Bool(name, description)
}

// Regex registers a regex-constrained string flag in the Default
// registry.
func Regex(name, pattern, def, description string, required bool) *Flag {
	return Default.Regex(name, pattern, def, description, required)
}

// -----

// HasFlag reports whether the token "-name" occurs anywhere in argv,
// by exact match. It does not consult any registry; it is a raw scan
// of the token list.
func HasFlag(argv []string, name string) bool {
	for _, arg := range argv {
		if arg == "-"+name {
			return true
		}
	}
	return false
}

// HelpRequested reports whether the literal token "-help" occurs
// anywhere in argv. Programs typically check this before calling
// Parse, so that a help request can short-circuit to PrintHelp without
// tripping over missing required flags.
func HelpRequested(argv []string) bool {
	return HasFlag(argv, "help")
}
