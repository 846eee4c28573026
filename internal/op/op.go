// Package op implements the arithmetic/boolean operator algebra: the
// fixed token set, its textual form, and evaluation under already
// resolved argument values.
package op

import (
	"fmt"
	"math/big"

	"chc/internal/value"
)

// Op is one of the fixed arithmetic/relational/boolean operators.
type Op int

const (
	Add Op = iota
	Sub
	Mul
	Div
	Mod
	Gt
	Ge
	Le
	Lt
	Impl
	Eql
	Not
	And
	Or
)

var tokens = map[Op]string{
	Add: "+", Sub: "-", Mul: "*", Div: "/", Mod: "mod",
	Gt: ">", Ge: ">=", Le: "<=", Lt: "<", Impl: "=>", Eql: "=",
	Not: "not", And: "and", Or: "or",
}

// String renders the operator's fixed single-token textual form.
func (o Op) String() string {
	if s, ok := tokens[o]; ok {
		return s
	}
	return fmt.Sprintf("op(%d)", int(o))
}

var byToken = func() map[string]Op {
	m := make(map[string]Op, len(tokens))
	for o, s := range tokens {
		m[s] = o
	}
	return m
}()

// Parse recognizes one of the fixed operator tokens. Order matters for
// callers tokenizing greedily (e.g. `<=` before `<`) but Parse itself
// only does an exact lookup.
func Parse(tok string) (Op, bool) {
	o, ok := byToken[tok]
	return o, ok
}

// Error wraps a failure that occurred while evaluating this operator,
// per §7's EvalError kind.
type Error struct {
	Op    Op
	Cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("while evaluating operator `%s`: %v", e.Op, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

func arityErr(o Op, n int) error {
	return &Error{Op: o, Cause: fmt.Errorf("applied to %d arguments", n)}
}

func wrap(o Op, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: o, Cause: err}
}

func asInt(o Op, v value.Value) (*big.Int, bool, error) {
	i, ok, err := v.ToInt()
	if err != nil {
		return nil, false, wrap(o, err)
	}
	return i, ok, nil
}

func asBool(o Op, v value.Value) (bool, bool, error) {
	b, ok, err := v.ToBool()
	if err != nil {
		return false, false, wrap(o, err)
	}
	return b, ok, nil
}

// floorMod implements mod_floor: the result's sign matches the
// divisor's, unlike Go's Euclidean big.Int.Mod which is always
// non-negative.
func floorMod(a, b *big.Int) *big.Int {
	m := new(big.Int).Mod(a, b)
	if m.Sign() != 0 && b.Sign() < 0 {
		m.Add(m, b)
	}
	return m
}

// Eval applies the operator to already-evaluated argument values.
// Evaluating a 0-ary application, a wrong arity, or a wrong-typed
// operand is a fatal error for that call (§4.2, §7).
func (o Op) Eval(args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return value.Value{}, &Error{Op: o, Cause: fmt.Errorf("evaluating operator on 0 elements")}
	}
	switch o {
	case Add:
		return foldInt(o, args, func(acc, x *big.Int) *big.Int { return new(big.Int).Add(acc, x) })
	case Sub:
		if len(args) == 1 {
			i, ok, err := asInt(o, args[0])
			if err != nil {
				return value.Value{}, err
			}
			if !ok {
				return value.N(), nil
			}
			return value.I(new(big.Int).Neg(i)), nil
		}
		return foldInt(o, args, func(acc, x *big.Int) *big.Int { return new(big.Int).Sub(acc, x) })
	case Mul:
		return foldInt(o, args, func(acc, x *big.Int) *big.Int { return new(big.Int).Mul(acc, x) })
	case Div:
		return foldInt(o, args, func(acc, x *big.Int) *big.Int { return new(big.Int).Quo(acc, x) })
	case Mod:
		if len(args) != 2 {
			return value.Value{}, arityErr(o, len(args))
		}
		a, aok, err := asInt(o, args[0])
		if err != nil {
			return value.Value{}, err
		}
		b, bok, err := asInt(o, args[1])
		if err != nil {
			return value.Value{}, err
		}
		if !aok || !bok {
			return value.N(), nil
		}
		return value.I(floorMod(a, b)), nil
	case Gt:
		return chain(o, args, func(last, next *big.Int) bool { return last.Cmp(next) > 0 })
	case Ge:
		return chain(o, args, func(last, next *big.Int) bool { return last.Cmp(next) >= 0 })
	case Le:
		return chain(o, args, func(last, next *big.Int) bool { return last.Cmp(next) <= 0 })
	case Lt:
		return chain(o, args, func(last, next *big.Int) bool { return last.Cmp(next) < 0 })
	case Eql:
		first := args[0]
		for _, next := range args[1:] {
			if !first.Equal(next) {
				return value.B(false), nil
			}
		}
		return value.B(true), nil
	case Not:
		if len(args) != 1 {
			return value.Value{}, arityErr(o, len(args))
		}
		b, ok, err := asBool(o, args[0])
		if err != nil {
			return value.Value{}, err
		}
		if !ok {
			return value.N(), nil
		}
		return value.B(!b), nil
	case And:
		unknown := false
		for _, a := range args {
			b, ok, err := asBool(o, a)
			if err != nil {
				return value.Value{}, err
			}
			if ok && !b {
				return value.B(false), nil
			}
			if !ok {
				unknown = true
			}
		}
		if unknown {
			return value.N(), nil
		}
		return value.B(true), nil
	case Or:
		unknown := false
		for _, a := range args {
			b, ok, err := asBool(o, a)
			if err != nil {
				return value.Value{}, err
			}
			if ok && b {
				return value.B(true), nil
			}
			if !ok {
				unknown = true
			}
		}
		if unknown {
			return value.N(), nil
		}
		return value.B(false), nil
	case Impl:
		if len(args) != 2 {
			return value.Value{}, arityErr(o, len(args))
		}
		lhs, lok, err := asBool(o, args[0])
		if err != nil {
			return value.Value{}, err
		}
		rhs, rok, err := asBool(o, args[1])
		if err != nil {
			return value.Value{}, err
		}
		switch {
		case rok && rhs:
			return value.B(true), nil
		case lok && !lhs:
			return value.B(true), nil
		case lok && rok:
			return value.B(rhs || !lhs), nil
		default:
			return value.N(), nil
		}
	default:
		return value.Value{}, &Error{Op: o, Cause: fmt.Errorf("unknown operator")}
	}
}

// foldInt implements the shared n-ary left-fold arithmetic operators.
// Any unknown operand makes the whole fold unknown.
func foldInt(o Op, args []value.Value, step func(acc, x *big.Int) *big.Int) (value.Value, error) {
	acc, ok, err := asInt(o, args[0])
	if err != nil {
		return value.Value{}, err
	}
	if !ok {
		return value.N(), nil
	}
	for _, a := range args[1:] {
		x, ok, err := asInt(o, a)
		if err != nil {
			return value.Value{}, err
		}
		if !ok {
			return value.N(), nil
		}
		acc = step(acc, x)
	}
	return value.I(acc), nil
}

// chain implements the n-ary monotone-chain relational operators:
// true iff every consecutive pair satisfies cmp. The first operand
// that turns out unknown aborts evaluation with N immediately, even if
// a later pair would have made the result false.
func chain(o Op, args []value.Value, cmp func(last, next *big.Int) bool) (value.Value, error) {
	last, ok, err := asInt(o, args[0])
	if err != nil {
		return value.Value{}, err
	}
	if !ok {
		return value.N(), nil
	}
	for _, a := range args[1:] {
		next, ok, err := asInt(o, a)
		if err != nil {
			return value.Value{}, err
		}
		if !ok {
			return value.N(), nil
		}
		if !cmp(last, next) {
			return value.B(false), nil
		}
		last = next
	}
	return value.B(true), nil
}
