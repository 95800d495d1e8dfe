// Package equation parses and formats slope-intercept line equations.
package equation

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/verte-zerg/linequiz/internal/model"
)

// ErrSyntax is the sentinel every ParseError unwraps to.
var ErrSyntax = errors.New("not a slope-intercept equation")

// ParseError describes why an answer could not be read as y=mx+b.
// Pos is a byte offset into Input, which has whitespace already removed.
type ParseError struct {
	Input  string
	Pos    int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q at %d: %s", e.Input, e.Pos, e.Reason)
}

// Unwrap returns ErrSyntax.
func (e *ParseError) Unwrap() error {
	return ErrSyntax
}

// Parse reads text of the form y=mx+b. Whitespace is ignored anywhere.
// The slope coefficient may be omitted or be a bare sign (meaning 1 or -1);
// the intercept is optional and its sign may be omitted.
func Parse(text string) (model.Line, error) {
	input := stripSpace(text)
	tokens, err := tokenize(input)
	if err != nil {
		return model.Line{}, err
	}
	r := recognizer{input: input, tokens: tokens}
	return r.line()
}

type recognizer struct {
	input  string
	tokens []token
	pos    int
}

func (r *recognizer) peek() token {
	return r.tokens[r.pos]
}

func (r *recognizer) next() token {
	tok := r.tokens[r.pos]
	if tok.kind != tokEOF {
		r.pos++
	}
	return tok
}

func (r *recognizer) expect(kind tokenKind) (token, error) {
	tok := r.next()
	if tok.kind != kind {
		return tok, r.errorf(tok, "expected %s, found %s", kind, describe(tok))
	}
	return tok, nil
}

func (r *recognizer) errorf(tok token, format string, args ...any) error {
	return &ParseError{Input: r.input, Pos: tok.pos, Reason: fmt.Sprintf(format, args...)}
}

func (r *recognizer) line() (model.Line, error) {
	if _, err := r.expect(tokY); err != nil {
		return model.Line{}, err
	}
	if _, err := r.expect(tokEquals); err != nil {
		return model.Line{}, err
	}
	m, err := r.coefficient()
	if err != nil {
		return model.Line{}, err
	}
	if _, err := r.expect(tokX); err != nil {
		return model.Line{}, err
	}
	b, err := r.intercept()
	if err != nil {
		return model.Line{}, err
	}
	if _, err := r.expect(tokEOF); err != nil {
		return model.Line{}, err
	}
	return model.Line{M: m, B: b}, nil
}

// coefficient reads [sign][number] ahead of x. An absent number means magnitude 1.
func (r *recognizer) coefficient() (float64, error) {
	sign := ""
	if tok := r.peek(); tok.kind == tokSign {
		sign = r.next().text
	}
	tok := r.peek()
	if tok.kind != tokNumber {
		if sign == "-" {
			return -1, nil
		}
		return 1, nil
	}
	r.next()
	return r.number(sign, tok)
}

// intercept reads an optional constant after x. Its sign may be omitted.
func (r *recognizer) intercept() (float64, error) {
	tok := r.peek()
	switch tok.kind {
	case tokEOF:
		return 0, nil
	case tokNumber:
		r.next()
		return r.number("", tok)
	case tokSign:
	default:
		return 0, r.errorf(tok, "expected constant, found %s", describe(tok))
	}
	sign := r.next().text
	num, err := r.expect(tokNumber)
	if err != nil {
		return 0, err
	}
	return r.number(sign, num)
}

func (r *recognizer) number(sign string, tok token) (float64, error) {
	v, err := strconv.ParseFloat(sign+tok.text, 64)
	if err != nil {
		return 0, r.errorf(tok, "invalid number %q", tok.text)
	}
	return v, nil
}

func describe(tok token) string {
	if tok.kind == tokEOF || tok.text == "" {
		return tok.kind.String()
	}
	return fmt.Sprintf("%q", tok.text)
}
