package parser

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
)

// exprLexer splits an expression into operator runes and single-rune
// characters. Whether a character is an accepted literal is decided later
// against the Config.
var exprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Operator", Pattern: `[()|.*]`},
	{Name: "Char", Pattern: `[^()|.*]`},
})

var (
	operatorType = exprLexer.Symbols()["Operator"]
	charType     = exprLexer.Symbols()["Char"]
)

// tokenize lexes expr into tokens, rejecting characters cfg does not accept.
func tokenize(cfg Config, expr string) ([]Token, error) {
	lex, err := exprLexer.Lex("", strings.NewReader(expr))
	if err != nil {
		return nil, fmt.Errorf("failed to start lexer: %w", err)
	}
	raw, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, lexerError(expr, err)
	}

	tokens := make([]Token, 0, len(raw))
	for _, tok := range raw {
		if tok.EOF() {
			break
		}
		r, _ := utf8.DecodeRuneInString(tok.Value)
		pos := tok.Pos.Offset

		switch tok.Type {
		case operatorType:
			op, _ := operatorToken(r, pos)
			tokens = append(tokens, op)
		case charType:
			if r == utf8.RuneError || !cfg.IsLiteral(r) {
				return nil, &LexicalError{Pos: pos, Char: r}
			}
			tokens = append(tokens, Token{Kind: Literal, Value: r, Pos: pos})
		default:
			return nil, &LexicalError{Pos: pos, Char: r}
		}
	}
	return tokens, nil
}

// lexerError converts a failure of the underlying lexer into a LexicalError
// pointing at the offending character.
func lexerError(expr string, err error) error {
	var lerr *lexer.Error
	if !errors.As(err, &lerr) || lerr.Pos.Offset >= len(expr) {
		return fmt.Errorf("failed to tokenize expression: %w", err)
	}
	r, _ := utf8.DecodeRuneInString(expr[lerr.Pos.Offset:])
	return &LexicalError{Pos: lerr.Pos.Offset, Char: r}
}
