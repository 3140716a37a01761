package parser

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned for a zero-length expression.
var ErrEmptyInput = errors.New("empty expression")

// LexicalError reports a character that is neither a configured literal nor
// an operator or bracket.
type LexicalError struct {
	Pos  int // byte offset in the raw expression
	Char rune
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("unsupported character %q at offset %d", e.Char, e.Pos)
}

// SyntaxError reports unbalanced brackets or an operator without its operands.
type SyntaxError struct {
	Pos int // byte offset in the raw expression
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Pos, e.Msg)
}
