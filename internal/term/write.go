package term

import (
	"fmt"
	"io"

	"chc/internal/idx"
)

// WriteVar renders a single variable during printing. Callers inject
// this so the term layer never has to know how to name variables
// (clause printing uses the clause's own names; SMT printing uses
// `v<idx>`).
type WriteVar func(w io.Writer, v idx.Var) error

// writeTask is one pending write while walking a term with an
// explicit stack, mirroring the structure used by Eval: terms
// generated by preprocessing can be pathologically deep, so printing
// must not recurse on the Go call stack either.
type writeTask struct {
	todo []Term
	sep  string
	end  string
}

// Write renders the term textually, deferring to writeVar for Var
// leaves. Operator applications print as `(op arg1 arg2 ...)`.
func (t Term) Write(w io.Writer, writeVar WriteVar) error {
	stack := []writeTask{{todo: []Term{t}}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if len(top.todo) == 0 {
			if _, err := io.WriteString(w, top.end); err != nil {
				return err
			}
			stack = stack[:len(stack)-1]
			continue
		}
		cur := top.todo[0]
		top.todo = top.todo[1:]
		sep := top.sep

		switch cur.n.kind {
		case KindVar:
			if _, err := io.WriteString(w, sep); err != nil {
				return err
			}
			if err := writeVar(w, cur.n.v); err != nil {
				return err
			}
		case KindInt:
			if _, err := fmt.Fprintf(w, "%s%s", sep, cur.n.i.String()); err != nil {
				return err
			}
		case KindBool:
			if _, err := fmt.Fprintf(w, "%s%t", sep, cur.n.b); err != nil {
				return err
			}
		case KindApp:
			if _, err := fmt.Fprintf(w, "%s(%s", sep, cur.n.op); err != nil {
				return err
			}
			stack = append(stack, writeTask{todo: cur.n.args, sep: " ", end: ")"})
		}
	}
	return nil
}
