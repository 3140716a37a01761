package parser

import "strings"

// Kind classifies a token.
type Kind int

const (
	Literal Kind = iota
	Union
	Concat
	Star
	OpenParen
	CloseParen
)

var kindNames = [...]string{
	Literal:    "Literal",
	Union:      "Union",
	Concat:     "Concat",
	Star:       "Star",
	OpenParen:  "OpenParen",
	CloseParen: "CloseParen",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Precedence returns the binding strength of an operator. Brackets and
// literals have precedence 0.
func (k Kind) Precedence() int {
	switch k {
	case Union:
		return 10
	case Concat:
		return 20
	case Star:
		return 30
	default:
		return 0
	}
}

// IsOperator reports whether the kind is union, concatenation or star.
func (k Kind) IsOperator() bool {
	return k == Union || k == Concat || k == Star
}

// Token is one lexical element of an expression.
type Token struct {
	Kind  Kind
	Value rune // the literal character; the operator character otherwise
	Pos   int  // byte offset in the raw expression
}

func (t Token) String() string {
	return string(t.Value)
}

// operatorToken returns the token for an operator or bracket character.
func operatorToken(r rune, pos int) (Token, bool) {
	var kind Kind
	switch r {
	case LeftParen:
		kind = OpenParen
	case RightParen:
		kind = CloseParen
	case UnionOp:
		kind = Union
	case ConcatOp:
		kind = Concat
	case StarOp:
		kind = Star
	default:
		return Token{}, false
	}
	return Token{Kind: kind, Value: r, Pos: pos}, true
}

// FormatTokens renders a token stream as an expression string.
func FormatTokens(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteRune(t.Value)
	}
	return b.String()
}
