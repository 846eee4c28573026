// Package idx defines the dense, newtyped indices used to thread
// variables, predicates and clauses through parallel arrays without
// pointer graphs.
package idx

import "fmt"

// Var indexes a clause's variable context.
type Var int

// Pred indexes an instance's predicate table.
type Pred int

// Cls indexes an instance's clause pool.
type Cls int

func (v Var) String() string  { return fmt.Sprintf("v%d", int(v)) }
func (p Pred) String() string { return fmt.Sprintf("p%d", int(p)) }
func (c Cls) String() string  { return fmt.Sprintf("c%d", int(c)) }
