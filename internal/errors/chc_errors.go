package errors

import (
	"fmt"
	"strings"
)

// errorBuilder provides a fluent interface for building a CompilerError
// with suggestions and notes attached.
type errorBuilder struct {
	err CompilerError
}

func newError(code, message string, pos Position) *errorBuilder {
	return &errorBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

func (b *errorBuilder) WithLength(length int) *errorBuilder {
	b.err.Length = length
	return b
}

func (b *errorBuilder) WithSuggestion(message string) *errorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

func (b *errorBuilder) WithNote(note string) *errorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

func (b *errorBuilder) WithHelp(help string) *errorBuilder {
	b.err.HelpText = help
	return b
}

func (b *errorBuilder) Build() CompilerError { return b.err }

// ParseErr reports malformed .hc/.sol input text (§7 Parse).
func ParseErr(expected, found string, pos Position) CompilerError {
	return newError(ErrorParse, fmt.Sprintf("expected %s, found %s", expected, found), pos).
		WithHelp("check the grammar in the reserved-keyword and operator-token reference").
		Build()
}

// EvalErr wraps a child error with the operator being evaluated (§7 EvalError).
func EvalErr(op string, cause error, pos Position) CompilerError {
	return newError(ErrorEval, fmt.Sprintf("while evaluating operator '%s': %v", op, cause), pos).
		Build()
}

// IncoherentForceErr reports two conflicting force_pred calls (§7 IncoherentForce).
func IncoherentForceErr(pred string, pos Position) CompilerError {
	return newError(ErrorIncoherentForce, fmt.Sprintf("predicate '%s' force-defined with two different terms", pred), pos).
		WithNote("a predicate's forced term must be set at most once, or re-set to an identical term").
		Build()
}

// PartialForcedTermErr reports a forced term evaluating to N under a
// supposedly complete model (§7 PartialForcedTerm).
func PartialForcedTermErr(pred string, pos Position) CompilerError {
	return newError(ErrorPartialForcedTerm, fmt.Sprintf("forced term for predicate '%s' evaluated to an unknown value under a complete model", pred), pos).
		WithHelp("every variable the forced term reads from the model must be assigned").
		Build()
}

// UnsafeGroundErr reports a ground clause invalidated by the teacher
// with no antecedent or consequent to translate (§7 UnsafeGround).
func UnsafeGroundErr(pos Position) CompilerError {
	return newError(ErrorUnsafeGround, "ground clause reduced to an unsatisfied formula with no predicate to learn from", pos).
		WithNote("this clause is a genuine unsatisfiability witness, not a sample").
		Build()
}

// UndefinedPredicateErr reports a reference to a predicate that was
// never declared, with "did you mean" suggestions drawn from the
// declared predicate names.
func UndefinedPredicateErr(name string, pos Position, declared []string) CompilerError {
	builder := newError(ErrorParse, fmt.Sprintf("undefined predicate '%s'", name), pos).
		WithLength(len(name))

	similar := findSimilarNames(name, declared)
	if len(similar) == 1 {
		builder = builder.WithSuggestion(fmt.Sprintf("did you mean '%s'?", similar[0]))
	} else if len(similar) > 1 {
		builder = builder.WithSuggestion(fmt.Sprintf("did you mean one of: '%s'?", strings.Join(similar, "', '")))
	}

	return builder.WithHelp("every predicate must appear in a declare-pred before use").Build()
}

func findSimilarNames(target string, candidates []string) []string {
	var similar []string
	for _, candidate := range candidates {
		if levenshteinDistance(target, candidate) <= 2 {
			similar = append(similar, candidate)
		}
	}
	return similar
}

// levenshteinDistance is a simple edit-distance implementation used to
// suggest a likely-intended predicate name.
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
	}
	for i := 0; i <= len(a); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			matrix[i][j] = min3(
				matrix[i-1][j]+1,
				matrix[i][j-1]+1,
				matrix[i-1][j-1]+cost,
			)
		}
	}
	return matrix[len(a)][len(b)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
