package check

import "strings"

// String re-serializes the s-expression as a flat string, re-
// parenthesized with single spaces between elements — the checker
// preserves s-expressions this way rather than reconstructing the
// original byte-for-byte text, since only whitespace/comment
// normalization is promised (§8 property 5).
func (e *SExpr) String() string {
	switch {
	case e == nil:
		return ""
	case e.Ident != "":
		return e.Ident
	case e.Num != "":
		return e.Num
	case e.Op != "":
		return e.Op
	default:
		parts := make([]string, len(e.List))
		for i, el := range e.List {
			parts[i] = el.String()
		}
		return "(" + strings.Join(parts, " ") + ")"
	}
}

// head returns the leading token of a list-form s_expr: the operator
// or predicate name that determines how the rest of the list is
// interpreted. ok is false for a leaf s_expr (no head to speak of).
func (e *SExpr) head() (string, bool) {
	if len(e.List) == 0 {
		return "", false
	}
	first := e.List[0]
	if first.Ident != "" {
		return first.Ident, true
	}
	if first.Op != "" {
		return first.Op, true
	}
	return "", false
}
