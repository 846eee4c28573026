package term

import (
	"math/big"

	"github.com/sasha-s/go-deadlock"

	"chc/internal/idx"
	"chc/internal/op"
)

// Factory is the canonical owner of terms: the unique source through
// which Var/Int/Bool/App nodes are constructed and interned. All
// access is guarded by a writer lock held only for the duration of a
// single lookup-or-insert; recursive construction (nested op calls)
// acquires the lock repeatedly rather than holding it across
// recursion, since each nested call to Var/Int/Bool/Op returns before
// its result is passed to the next one.
type Factory struct {
	mu deadlock.RWMutex

	nextID uint64

	vars  map[idx.Var]*node
	ints  map[string]*node
	bools [2]*node
	// apps is keyed by a combined hash of the operator and the
	// already-hash-consed identities of its children — an FNV-style
	// mix over keys that are themselves stable dense integers, used
	// only for this one table. Collisions are resolved by an exact
	// check against the bucket's candidates.
	apps map[uint64][]*node
}

// NewFactory creates an empty term factory.
func NewFactory() *Factory {
	return &Factory{
		vars: make(map[idx.Var]*node),
		ints: make(map[string]*node),
		apps: make(map[uint64][]*node),
	}
}

func (f *Factory) allocID() uint64 {
	f.nextID++
	return f.nextID
}

// Var interns a clause-variable term.
func (f *Factory) Var(v idx.Var) Term {
	f.mu.Lock()
	defer f.mu.Unlock()
	if n, ok := f.vars[v]; ok {
		return Term{n}
	}
	n := &node{id: f.allocID(), kind: KindVar, v: v}
	f.vars[v] = n
	return Term{n}
}

// Int interns an integer constant.
func (f *Factory) Int(i *big.Int) Term {
	key := i.String()
	f.mu.Lock()
	defer f.mu.Unlock()
	if n, ok := f.ints[key]; ok {
		return Term{n}
	}
	n := &node{id: f.allocID(), kind: KindInt, i: new(big.Int).Set(i)}
	f.ints[key] = n
	return Term{n}
}

// IntN is sugar over Int for small constants.
func (f *Factory) IntN(i int64) Term { return f.Int(big.NewInt(i)) }

// Zero is the constant 0.
func (f *Factory) Zero() Term { return f.IntN(0) }

// One is the constant 1.
func (f *Factory) One() Term { return f.IntN(1) }

// Bool interns a boolean constant.
func (f *Factory) Bool(b bool) Term {
	f.mu.Lock()
	defer f.mu.Unlock()
	idx := 0
	if b {
		idx = 1
	}
	if f.bools[idx] != nil {
		return Term{f.bools[idx]}
	}
	n := &node{id: f.allocID(), kind: KindBool, b: b}
	f.bools[idx] = n
	return Term{n}
}

// appHash combines an operator and its children's stable identities
// into a single bucket key. Not a cryptographic hash — collisions are
// expected and resolved by exact comparison.
func appHash(o op.Op, args []Term) uint64 {
	h := uint64(14695981039346656037) // FNV offset basis
	mix := func(x uint64) {
		h ^= x
		h *= 1099511628211 // FNV prime
	}
	mix(uint64(o) + 1)
	for _, a := range args {
		mix(a.ID())
	}
	return h
}

func sameArgs(a, b []Term) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].n != b[i].n {
			return false
		}
	}
	return true
}

// mkApp interns a raw App node, bypassing simplification. Used by Op
// once simplification has decided the term really is an application.
func (f *Factory) mkApp(o op.Op, args []Term) Term {
	h := appHash(o, args)
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, n := range f.apps[h] {
		if n.op == o && sameArgs(n.args, args) {
			return Term{n}
		}
	}
	n := &node{id: f.allocID(), kind: KindApp, op: o, args: args}
	f.apps[h] = append(f.apps[h], n)
	return Term{n}
}

// Op constructs an operator application, simplifying at construction
// time per §4.1's semantic contract: `and []` is `false`, `or []` is
// `true`, `and [x]`/`or [x]` is `x`. These are the only simplifications
// performed; anything else is reserved for a future extension and must
// not be introduced silently.
func (f *Factory) Op(o op.Op, args []Term) Term {
	switch o {
	case op.And:
		switch len(args) {
		case 0:
			return f.Bool(false)
		case 1:
			return args[0]
		}
	case op.Or:
		switch len(args) {
		case 0:
			return f.Bool(true)
		case 1:
			return args[0]
		}
	}
	return f.mkApp(o, args)
}

// Le, Lt, Gt, Ge, Eq are sugar over Op for the binary relational
// operators, mirroring the instance builders in §4.5.
func (f *Factory) Le(lhs, rhs Term) Term { return f.Op(op.Le, []Term{lhs, rhs}) }
func (f *Factory) Lt(lhs, rhs Term) Term { return f.Op(op.Lt, []Term{lhs, rhs}) }
func (f *Factory) Gt(lhs, rhs Term) Term { return f.Op(op.Gt, []Term{lhs, rhs}) }
func (f *Factory) Ge(lhs, rhs Term) Term { return f.Op(op.Ge, []Term{lhs, rhs}) }
func (f *Factory) Eq(lhs, rhs Term) Term { return f.Op(op.Eql, []Term{lhs, rhs}) }
