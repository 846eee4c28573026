// SPDX-License-Identifier: Apache-2.0
package main

import (
	stderrs "errors"
	"fmt"
	"os"

	"github.com/fatih/color"

	"chc/internal/check"
	"chc/internal/config"
	"chc/internal/errors"
	"chc/internal/idx"
	"chc/internal/instance"
	"chc/internal/learn"
	"chc/internal/op"
)

// chc-solve builds an Instance from a .hc file and prints it back out,
// demonstrating the construction side of the core API (pushing
// predicates and clauses) that a teacher/learner loop starts from. It
// does not force candidate terms or generate SMT obligations. Driving
// an actual SMT solver or a CEGAR loop around this instance is an
// external collaborator's job, out of scope here.
func main() {
	cfg, err := config.New("chc-solve", os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if cfg.InputPath == "" {
		fmt.Println("Usage: chc-solve [-color] <file.hc>")
		os.Exit(1)
	}
	if cfg.Color {
		color.NoColor = false
	}

	source, err := os.ReadFile(cfg.InputPath)
	if err != nil {
		color.Red("Failed to read file: %s", err)
		os.Exit(1)
	}

	in, err := check.ParseInput(cfg.InputPath, string(source))
	if err != nil {
		if pos, ok := check.PositionOf(err); ok {
			color.Red("❌ syntax error in %s at line %d, column %d: %s", cfg.InputPath, pos.Line, pos.Column, err)
		} else {
			color.Red("❌ %s: %s", cfg.InputPath, err)
		}
		os.Exit(1)
	}

	inst, err := check.Build(in)
	if err != nil {
		reportRuntimeError(cfg.InputPath, string(source), nil, err)
		os.Exit(1)
	}

	fmt.Print(inst.String())
	color.Green("✅ built instance: %d predicate(s), %d clause(s), %d constant(s) mined",
		inst.NumPreds(), inst.NumClauses(), inst.Consts().Len())
}

// reportRuntimeError converts one of §7's typed post-parse error kinds
// into the caret-style reporter before printing, falling back to a
// plain message for anything else. These errors carry no source
// position, so the caret display renders the message/notes/help
// without a source snippet. inst resolves a predicate index to its
// declared name when available; it may be nil.
func reportRuntimeError(filename, src string, inst *instance.Instance, err error) {
	predName := func(p idx.Pred) string {
		if inst != nil {
			return inst.PredInfo(p).Name
		}
		return p.String()
	}

	reporter := errors.NewErrorReporter(filename, src)

	var opErr *op.Error
	var forceErr *instance.IncoherentForceError
	var partialErr *instance.PartialForcedTermError
	var groundErr *learn.UnsafeGroundError

	switch {
	case stderrs.As(err, &opErr):
		fmt.Print(reporter.FormatError(errors.EvalErr(opErr.Op.String(), opErr.Cause, errors.Position{})))
	case stderrs.As(err, &forceErr):
		fmt.Print(reporter.FormatError(errors.IncoherentForceErr(predName(forceErr.Pred), errors.Position{})))
	case stderrs.As(err, &partialErr):
		fmt.Print(reporter.FormatError(errors.PartialForcedTermErr(predName(partialErr.Pred), errors.Position{})))
	case stderrs.As(err, &groundErr):
		fmt.Print(reporter.FormatError(errors.UnsafeGroundErr(errors.Position{})))
	default:
		color.Red("❌ %s: %s", filename, err)
	}
}
