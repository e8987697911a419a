/*
Package declflag implements a small declarative command-line flag
parser. Flags are registered by name ahead of time; a subsequent parse
pass scans the program's argument vector, matches tokens against the
registered flags, coerces values to the declared types, and enforces
required-flag constraints.

# Flag Kinds

Five kinds of flag are supported:

	Int    : "-name value", value parsed as a base-10 integer
	Float  : "-name value", value parsed as a floating-point number
	String : "-name value", value taken verbatim
	Bool   : "-name" alone, presence means true
	Regex  : a bare token matching the pattern, or "-name value"

Registration returns a *Flag handle; after parsing, the populated
value is read back through the handle's typed accessors.

	reg := declflag.NewRegistry()
	port := reg.Int("port", 8080, "Port to listen on.", true)
	verbose := reg.Bool("verbose", "Enable verbose output.")

	if err := reg.Parse(os.Args); err != nil {
		reg.PrintHelp("myprog does things.")
		os.Exit(1)
	}
	listen(port.Int(), verbose.Bool())

A package-level Default registry and matching top-level functions are
provided for programs that do not need an explicit registry.

# Matching Rules

Tokens are processed left to right. Registration order is match
priority: a "-name" token selects the first registered flag with that
exact name, and a bare token is offered to the regex flags in
registration order, first match wins. Within one parse pass each flag
matches at most once; a second occurrence of the same name is an
unknown flag.

Boolean flags never consume a following token. All other kinds consume
exactly one value token; a missing or uncoercible value aborts the
pass. An aborted pass performs no rollback: flags matched before the
failing token keep their values.

Two properties of the parse pass are worth knowing. First, a Regex
flag set explicitly via its "-name value" form is assigned the value
verbatim; the pattern gates only the bare-token path. Second, every
Parse call snapshots the full registry afresh, so parsing twice in one
process is possible and the second pass may overwrite values assigned
by the first.

# Errors and Help

Parse returns a *ParseError carrying an ErrorKind tag; callers branch
on the tag. The library never logs and never terminates the process.
The usual pattern is to check HelpRequested(os.Args) before parsing,
so that "-help" short-circuits to PrintHelp without triggering
required-flag failures.

The registry is not safe for concurrent use. Register flags during
program startup and parse once the registry is complete.
*/
package declflag
