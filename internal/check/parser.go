package check

import (
	"fmt"
	"sync"

	"github.com/alecthomas/participle/v2"

	"chc/internal/errors"
)

var (
	inputParserOnce  sync.Once
	inputParser      *participle.Parser[Input]
	inputParserErr   error
	outputParserOnce sync.Once
	outputParser     *participle.Parser[Output]
	outputParserErr  error
)

func buildInputParser() (*participle.Parser[Input], error) {
	inputParserOnce.Do(func() {
		inputParser, inputParserErr = participle.Build[Input](
			participle.Lexer(HcLexer),
			participle.Elide("Whitespace", "Comment"),
			participle.UseLookahead(2),
		)
	})
	return inputParser, inputParserErr
}

func buildOutputParser() (*participle.Parser[Output], error) {
	outputParserOnce.Do(func() {
		outputParser, outputParserErr = participle.Build[Output](
			participle.Lexer(HcLexer),
			participle.Elide("Whitespace", "Comment"),
			participle.UseLookahead(2),
		)
	})
	return outputParser, outputParserErr
}

// ParseInput parses a conforming .hc source string (§4.7, §6).
func ParseInput(filename, source string) (*Input, error) {
	p, err := buildInputParser()
	if err != nil {
		return nil, fmt.Errorf("check: building input parser: %w", err)
	}
	return p.ParseString(filename, source)
}

// ParseOutput parses a conforming .sol source string.
func ParseOutput(filename, source string) (*Output, error) {
	p, err := buildOutputParser()
	if err != nil {
		return nil, fmt.Errorf("check: building output parser: %w", err)
	}
	return p.ParseString(filename, source)
}

// PositionOf extracts a reportable Position from a parse error, if
// err came from participle. Front ends use this to render a
// CompilerError through internal/errors rather than printing the raw
// participle error text.
func PositionOf(err error) (errors.Position, bool) {
	pe, ok := err.(participle.Error)
	if !ok {
		return errors.Position{}, false
	}
	pos := pe.Position()
	return errors.Position{Line: pos.Line, Column: pos.Column}, true
}
