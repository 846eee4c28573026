// Package config defines the process-wide, read-only configuration
// built once at startup and handed to collaborators at construction
// time (§9 design note: "a single process-wide configuration is
// initialized at startup from CLI and thereafter read-only").
package config

import "flag"

// Config is an immutable record of the options a run of chc-check or
// chc-solve was invoked with. Nothing in the core ever mutates a
// Config after New returns it.
type Config struct {
	// InputPath is the .hc file to read.
	InputPath string
	// SolutionPath is the .sol file to validate against, if any
	// (chc-check only; empty for chc-solve).
	SolutionPath string
	// Color forces ANSI color in error/report output even when stdout
	// is not a terminal, mirroring the teacher's CLI color flag.
	Color bool
	// Verbose enables the plain-text instance/clause dump alongside
	// the pass/fail verdict.
	Verbose bool
}

// New parses args (typically os.Args[1:]) into a Config, using a fresh
// flag.FlagSet named after the binary on every call, so repeated calls
// (one per test case) never collide on global flag registration.
func New(name string, args []string) (Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	color := fs.Bool("color", false, "force colored output even when stdout is not a terminal")
	verbose := fs.Bool("v", false, "print a plain-text dump of the parsed instance")
	solution := fs.String("sol", "", "path to the .sol solution file to validate (chc-check only)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	var input string
	if fs.NArg() > 0 {
		input = fs.Arg(0)
	}

	return Config{
		InputPath:    input,
		SolutionPath: *solution,
		Color:        *color,
		Verbose:      *verbose,
	}, nil
}
