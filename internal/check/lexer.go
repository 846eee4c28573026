package check

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// HcLexer tokenizes the .hc/.sol s-expression-flavored text format
// (§4.7/§6): comments run to end of line, identifiers may contain the
// hyphens the reserved keywords use (`declare-pred`, `define-pred`),
// and operator tokens are lexed greedily so two-character operators
// (`=>`, `<=`, `>=`) are never split into two single-character ones.
var HcLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Comment", `;[^\n]*`, nil},
		{"QuotedIdent", `\|[^|]*\|`, nil},
		{"Ident", `[A-Za-z_][A-Za-z0-9_-]*`, nil},
		{"Integer", `[0-9]+`, nil},
		{"Operator", `=>|<=|>=|[-+*/<>=]`, nil},
		{"Punctuation", `[()]`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
