// Package check implements the checker front-end: a participle grammar
// for the `.hc` input format and `.sol` solution format (§4.7, §6), and
// the semantic check that substitutes predicate definitions into
// clause bodies for external SMT validation.
package check

// Input is a conforming .hc file: zero or more predicate declarations,
// zero or more clauses, then the terminating `(infer)` marker that
// signals "begin solving".
type Input struct {
	Preds   []*PredDecl `@@*`
	Clauses []*Clause   `@@*`
	Infer   bool        `"(" @"infer" ")"`
}

// PredDecl is `(declare-pred ident (type*))`.
type PredDecl struct {
	Name string   `"(" "declare-pred" @(Ident|QuotedIdent)`
	Sig  []string `"(" @Ident* ")" ")"`
}

// VarDecl is one `(ident type)` pair in a clause's variable context or
// a pred_def's argument list.
type VarDecl struct {
	Name string `"(" @(Ident|QuotedIdent)`
	Typ  string `@Ident ")"`
}

// Clause is `(clause ((v T)*) (s_expr*) s_expr)`.
type Clause struct {
	Vars []*VarDecl `"(" "clause" "(" @@* ")"`
	Lhs  []*SExpr   `"(" @@* ")"`
	Rhs  *SExpr     `@@ ")"`
}

// SExpr is a flat, re-parenthesizable s-expression: an identifier, an
// integer literal, or a parenthesized list of one or more s_exprs. The
// checker never interprets an s_expr's structure beyond what it needs
// to classify top terms and resolve variables/predicates — anything
// destined for the solver is re-serialized through String(), not
// reconstructed from a parsed meaning.
type SExpr struct {
	Ident string   `  @(Ident|QuotedIdent)`
	Num   string   `| @Integer`
	Op    string   `| @Operator`
	List  []*SExpr `| "(" @@+ ")"`
}

// Output is a conforming .sol file: `(safe pred_def*)`.
type Output struct {
	Defs []*PredDef `"(" "safe" @@* ")"`
}

// PredDef is `(define-pred ident ((v T)*) s_expr)`.
type PredDef struct {
	Name string     `"(" "define-pred" @(Ident|QuotedIdent)`
	Args []*VarDecl `"(" @@* ")"`
	Body *SExpr     `@@ ")"`
}
