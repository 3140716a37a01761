package parser

import "slices"

// Preprocessed is an expression with concatenation made explicit.
type Preprocessed struct {
	Tokens   []Token
	Alphabet []rune // distinct literals, ascending
}

// Expression renders the concatenation-explicit expression, e.g. "a*.b" for
// the input "a*b".
func (p *Preprocessed) Expression() string {
	return FormatTokens(p.Tokens)
}

// Preprocess tokenizes expr, inserts a concatenation token between every two
// adjacent value-producing tokens, and collects the literal alphabet.
//
// A concatenation is inserted before a literal or an opening bracket when the
// previous token was a literal, a closing bracket or a star.
func Preprocess(cfg Config, expr string) (*Preprocessed, error) {
	if expr == "" {
		return nil, ErrEmptyInput
	}

	tokens, err := tokenize(cfg, expr)
	if err != nil {
		return nil, err
	}

	out := make([]Token, 0, 2*len(tokens))
	seen := map[rune]struct{}{}
	var alphabet []rune

	for i, tok := range tokens {
		if tok.Kind == Literal {
			if _, ok := seen[tok.Value]; !ok {
				seen[tok.Value] = struct{}{}
				alphabet = append(alphabet, tok.Value)
			}
		}
		if i > 0 && startsValue(tok.Kind) && endsValue(tokens[i-1].Kind) {
			out = append(out, Token{Kind: Concat, Value: ConcatOp, Pos: tok.Pos})
		}
		out = append(out, tok)
	}

	slices.Sort(alphabet)
	return &Preprocessed{Tokens: out, Alphabet: alphabet}, nil
}

func startsValue(k Kind) bool {
	return k == Literal || k == OpenParen
}

func endsValue(k Kind) bool {
	return k == Literal || k == CloseParen || k == Star
}
