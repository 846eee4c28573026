package term

import (
	"fmt"
	"math/big"

	"chc/internal/op"
	"chc/internal/value"
)

// frame is one pending operator application while walking down into
// its arguments and back up with their evaluated values.
type frame struct {
	op      op.Op
	pending []Term // remaining arguments not yet evaluated
	values  []value.Value
}

// Eval evaluates a term under a variable assignment. It never recurses
// on the Go call stack: terms produced by preprocessing can be
// pathologically deep, so the walk uses an explicit work stack bounded
// only by heap, per §4.3/§9.
func (t Term) Eval(model []value.Value) (value.Value, error) {
	current := t
	var stack []frame

	for {
		var evaled value.Value
		switch current.n.kind {
		case KindApp:
			if len(current.n.args) == 0 {
				res, err := current.n.op.Eval(nil)
				if err != nil {
					return value.Value{}, err
				}
				evaled = res
				break
			}
			stack = append(stack, frame{
				op:      current.n.op,
				pending: current.n.args[1:],
				values:  make([]value.Value, 0, len(current.n.args)),
			})
			current = current.n.args[0]
			continue
		case KindVar:
			if int(current.n.v) < 0 || int(current.n.v) >= len(model) {
				return value.Value{}, fmt.Errorf("term: variable %s out of range for model of length %d", current.n.v, len(model))
			}
			evaled = model[current.n.v]
		case KindInt:
			evaled = value.I(current.n.i)
		case KindBool:
			evaled = value.B(current.n.b)
		}

		// Go back up, resolving finished frames.
		for {
			if len(stack) == 0 {
				return evaled, nil
			}
			top := &stack[len(stack)-1]
			if len(top.pending) == 0 {
				top.values = append(top.values, evaled)
				res, err := top.op.Eval(top.values)
				if err != nil {
					return value.Value{}, err
				}
				evaled = res
				stack = stack[:len(stack)-1]
				continue
			}
			top.values = append(top.values, evaled)
			current = top.pending[0]
			top.pending = top.pending[1:]
			break
		}
	}
}

// IntEval evaluates the term and projects the result to an integer.
// Projecting a Bool is a typed error; projecting an unknown value
// yields (nil, false, nil).
func (t Term) IntEval(model []value.Value) (*big.Int, bool, error) {
	v, err := t.Eval(model)
	if err != nil {
		return nil, false, err
	}
	return v.ToInt()
}

// BoolEval evaluates the term and projects the result to a boolean.
func (t Term) BoolEval(model []value.Value) (bool, bool, error) {
	v, err := t.Eval(model)
	if err != nil {
		return false, false, err
	}
	return v.ToBool()
}
