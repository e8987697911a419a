// Command fileindex is a small demonstration of the declflag package:
// typed flags, a required flag, a regex-matched bare argument, and the
// -help short-circuit.
//
// Try:
//
//	fileindex -help
//	fileindex -port 9090 notes.txt -verbose
//	fileindex -port 9090 -rate x
package main

import (
	"fmt"
	"os"

	"github.com/declflag/declflag"
	"github.com/fatih/color"
)

const description = "fileindex builds a searchable index of matching files."

func main() {
	port := declflag.Int("port", 8080, "Port to serve the index on.", true)
	rate := declflag.Float("rate", 1.0, "Fraction of files to sample.", false)
	out := declflag.String("out", "index.out", "Output file for the index.", false)
	verbose := declflag.Bool("verbose", "Enable verbose output.")
	target := declflag.Regex("target", `[a-z]+\.txt`,
		"notes.txt", "File to index, given as a bare argument.", false)

	if declflag.HelpRequested(os.Args) {
		declflag.PrintHelp(description)
		return
	}

	if err := declflag.Parse(os.Args); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "fileindex: %v\n", err)
		declflag.PrintHelp(description)
		os.Exit(1)
	}

	if verbose.Bool() {
		color.New(color.FgYellow).Fprintf(os.Stderr,
			"indexing %s at rate %.2f\n", target.String(), rate.Float())
	}

	fmt.Printf("serving index of %s on :%d, writing to %s\n",
		target.String(), port.Int(), out.String())
}
