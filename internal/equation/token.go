package equation

import (
	"strings"
	"unicode"
)

type tokenKind int

const (
	tokY tokenKind = iota
	tokEquals
	tokX
	tokSign
	tokNumber
	tokEOF
)

func (k tokenKind) String() string {
	switch k {
	case tokY:
		return `"y"`
	case tokEquals:
		return `"="`
	case tokX:
		return `"x"`
	case tokSign:
		return "sign"
	case tokNumber:
		return "number"
	case tokEOF:
		return "end of input"
	default:
		return "unknown"
	}
}

type token struct {
	kind tokenKind
	text string
	pos  int
}

// stripSpace removes every whitespace rune.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// tokenize splits whitespace-free input. Numbers are digit runs with at most one dot;
// a second dot ends the number and is reported as unexpected by the recognizer.
func tokenize(input string) ([]token, error) {
	tokens := make([]token, 0, 8)
	for i := 0; i < len(input); {
		ch := input[i]
		switch {
		case ch == 'y':
			tokens = append(tokens, token{kind: tokY, text: "y", pos: i})
			i++
		case ch == 'x':
			tokens = append(tokens, token{kind: tokX, text: "x", pos: i})
			i++
		case ch == '=':
			tokens = append(tokens, token{kind: tokEquals, text: "=", pos: i})
			i++
		case ch == '+' || ch == '-':
			tokens = append(tokens, token{kind: tokSign, text: string(ch), pos: i})
			i++
		case isDigit(ch) || ch == '.':
			start := i
			dot := false
			for i < len(input) && (isDigit(input[i]) || (input[i] == '.' && !dot)) {
				if input[i] == '.' {
					dot = true
				}
				i++
			}
			tokens = append(tokens, token{kind: tokNumber, text: input[start:i], pos: start})
		default:
			r := []rune(input[i:])[0]
			return nil, &ParseError{Input: input, Pos: i, Reason: "unexpected character " + quoteRune(r)}
		}
	}
	tokens = append(tokens, token{kind: tokEOF, pos: len(input)})
	return tokens, nil
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func quoteRune(r rune) string {
	return "'" + string(r) + "'"
}
