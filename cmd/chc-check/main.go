// SPDX-License-Identifier: Apache-2.0
package main

import (
	stderrs "errors"
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"

	"chc/internal/check"
	"chc/internal/config"
	"chc/internal/errors"
	"chc/internal/idx"
	"chc/internal/instance"
	"chc/internal/learn"
	"chc/internal/op"
)

func main() {
	cfg, err := config.New("chc-check", os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if cfg.InputPath == "" {
		fmt.Println("Usage: chc-check [-color] [-v] [-sol <file.sol>] <file.hc>")
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
		reportParseError(cfg.InputPath, string(source), err)
		os.Exit(1)
	}

	inst, err := check.Build(in)
	if err != nil {
		reportRuntimeError(cfg.InputPath, string(source), nil, err)
		os.Exit(1)
	}

	if cfg.Verbose {
		fmt.Println("Parsed instance:")
		fmt.Print(inst.String())
	}

	if cfg.SolutionPath == "" {
		color.Green("✅ Parsed %d predicate(s), %d clause(s) in %s", inst.NumPreds(), inst.NumClauses(), cfg.InputPath)
		return
	}

	solSource, err := os.ReadFile(cfg.SolutionPath)
	if err != nil {
		color.Red("Failed to read solution file: %s", err)
		os.Exit(1)
	}

	out, err := check.ParseOutput(cfg.SolutionPath, string(solSource))
	if err != nil {
		reportParseError(cfg.SolutionPath, string(solSource), err)
		os.Exit(1)
	}

	if err := check.AttachCandidates(inst, out); err != nil {
		reportRuntimeError(cfg.SolutionPath, string(solSource), inst, err)
		os.Exit(1)
	}

	obligations, err := check.SMTObligations(inst)
	if err != nil {
		reportRuntimeError(cfg.InputPath, string(source), inst, err)
		os.Exit(1)
	}

	if cfg.Verbose {
		fmt.Println("SMT obligations (each must be unsatisfiable):")
		for _, o := range obligations {
			fmt.Println("  " + o)
		}
	}

	color.Green("✅ %s is well-formed for %s (%d obligation(s) rendered; not sent to a solver)", cfg.SolutionPath, cfg.InputPath, len(obligations))
}

// reportParseError bridges a participle parse error into the caret-style
// CompilerError reporter, the way the teacher's cmd/kanso-cli does with
// a hand-rolled caret but routed through internal/errors here.
func reportParseError(filename, src string, err error) {
	pos, ok := check.PositionOf(err)
	if !ok {
		color.Red("Unexpected error: %s", err)
		return
	}

	pe, _ := err.(participle.Error)
	found := "unexpected token"
	if pe != nil {
		found = pe.Message()
	}

	reporter := errors.NewErrorReporter(filename, src)
	ce := errors.ParseErr("a valid token", found, pos)
	fmt.Print(reporter.FormatError(ce))
}

// reportRuntimeError converts one of §7's typed post-parse error kinds
// into the caret-style reporter before printing, falling back to a
// plain message for anything else. None of these carry a source
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
