package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorReporter(t *testing.T) {
	source := `(declare-pred p (Int Int))
(clause ((x Int)(y Int)) ((> x unknownVar)) (p x y))
(infer)`

	reporter := NewErrorReporter("test.hc", source)

	err := UndefinedPredicateErr("q", Position{Line: 2, Column: 17}, []string{"p", "r"})
	formatted := reporter.FormatError(err)

	assert.Contains(t, formatted, "error["+ErrorParse+"]")
	assert.Contains(t, formatted, "undefined predicate")
	assert.Contains(t, formatted, "q")
	assert.Contains(t, formatted, "test.hc:2:17")
}

func TestUndefinedPredicateError(t *testing.T) {
	pos := Position{Line: 1, Column: 5}

	err := UndefinedPredicateErr("pp", pos, []string{"p"})
	assert.Equal(t, ErrorParse, err.Code)
	assert.Contains(t, err.Message, "pp")
	assert.Len(t, err.Suggestions, 1)
	assert.Contains(t, err.Suggestions[0].Message, "did you mean 'p'")

	err = UndefinedPredicateErr("xyz", pos, []string{})
	assert.Empty(t, err.Suggestions)
}

func TestIncoherentForceError(t *testing.T) {
	pos := Position{Line: 1, Column: 1}

	err := IncoherentForceErr("p0", pos)
	assert.Equal(t, ErrorIncoherentForce, err.Code)
	assert.Contains(t, err.Message, "p0")
	assert.Len(t, err.Notes, 1)
}

func TestEvalError(t *testing.T) {
	pos := Position{Line: 1, Column: 1}

	err := EvalErr("mod", assert.AnError, pos)
	assert.Equal(t, ErrorEval, err.Code)
	assert.Contains(t, err.Message, "mod")
	assert.Contains(t, err.Message, assert.AnError.Error())
}

func TestUnsafeGroundError(t *testing.T) {
	pos := Position{Line: 3, Column: 1}

	err := UnsafeGroundErr(pos)
	assert.Equal(t, ErrorUnsafeGround, err.Code)
	assert.Contains(t, err.Message, "unsatisfied formula")
}

func TestErrorMarkerCreation(t *testing.T) {
	source := `let variable = value;`
	reporter := NewErrorReporter("test.hc", source)

	marker := reporter.createMarker(5, 8, Error)

	spaces := strings.Count(marker, " ")
	assert.Equal(t, 4, spaces)
	carets := strings.Count(marker, "^")
	assert.Equal(t, 8, carets)
}

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 0, levenshteinDistance("hello", "hello"))
	assert.Equal(t, 1, levenshteinDistance("hello", "hallo"))
	assert.Equal(t, 1, levenshteinDistance("hello", "helo"))
	assert.Equal(t, 5, levenshteinDistance("hello", ""))
	assert.Equal(t, 3, levenshteinDistance("kitten", "sitting"))
}

func TestSimilarNameFinding(t *testing.T) {
	candidates := []string{"balance", "amount", "total", "balanceOf", "xyz"}

	similar := findSimilarNames("balace", candidates)
	assert.Contains(t, similar, "balance")
	assert.NotContains(t, similar, "xyz")

	similar = findSimilarNames("verydifferent", candidates)
	assert.Empty(t, similar)
}

func TestErrorLevels(t *testing.T) {
	source := `test`
	reporter := NewErrorReporter("test.hc", source)
	pos := Position{Line: 1, Column: 1}

	errorErr := CompilerError{Level: Error, Message: "test error", Position: pos}
	warningErr := CompilerError{Level: Warning, Message: "test warning", Position: pos}

	errorFormatted := reporter.FormatError(errorErr)
	warningFormatted := reporter.FormatError(warningErr)

	assert.Contains(t, errorFormatted, "error:")
	assert.Contains(t, warningFormatted, "warning:")
}
