package errors

import "fmt"

// Position locates a point in a source file by 1-based line and column,
// matching the positions participle attaches to lexer tokens.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
