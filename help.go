package declflag

import (
	"fmt"
	"io"
	"os"
)

// WriteHelp writes a help listing to w: the program description,
// followed by one entry per registered flag, in registration order.
//
// Each entry shows the flag's display form ("-name" for value-taking
// flags, "-name:" for booleans, "[name]:" for regex flags), its
// description, and its default value. The default line is omitted for
// boolean and regex flags; string defaults are quoted.
func (r *Registry) WriteHelp(w io.Writer, description string) {
	fmt.Fprintln(w, description)

	for _, f := range r.flags {
		switch f.kind {
		case KindBool:
			fmt.Fprintf(w, "    -%s:\n", f.name)
		case KindRegex:
			fmt.Fprintf(w, "    [%s]:\n", f.name)
		default:
			fmt.Fprintf(w, "    -%s\n", f.name)
		}

		fmt.Fprintf(w, "        %s\n", f.description)

		switch f.kind {
		case KindBool, KindRegex:
			// no default line
		case KindString:
			fmt.Fprintf(w, "        Default: %q\n", f.def)
		default:
			fmt.Fprintf(w, "        Default: %v\n", f.def)
		}
	}
}

// PrintHelp writes the help listing to standard error.
func (r *Registry) PrintHelp(description string) {
	r.WriteHelp(os.Stderr, description)
}

// WriteHelp writes the Default registry's help listing to w.
func WriteHelp(w io.Writer, description string) {
	Default.WriteHelp(w, description)
}

// PrintHelp writes the Default registry's help listing to standard
// error.
func PrintHelp(description string) {
	Default.PrintHelp(description)
}
