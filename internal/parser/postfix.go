package parser

// ToPostfix reorders an infix token stream (concatenation already explicit)
// into postfix order using one operator stack.
//
// Precedence ascends union < concatenation < star. Operators of equal
// precedence are popped before pushing, which makes the binary operators
// left-associative.
func ToPostfix(tokens []Token) ([]Token, error) {
	out := make([]Token, 0, len(tokens))
	var stack []Token

	for _, tok := range tokens {
		switch {
		case tok.Kind == Literal:
			out = append(out, tok)

		case tok.Kind == OpenParen:
			stack = append(stack, tok)

		case tok.Kind == CloseParen:
			for {
				if len(stack) == 0 {
					return nil, &SyntaxError{Pos: tok.Pos, Msg: "unmatched ')'"}
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == OpenParen {
					break
				}
				out = append(out, top)
			}

		case tok.Kind.IsOperator():
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if !top.Kind.IsOperator() || top.Kind.Precedence() < tok.Kind.Precedence() {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)

		default:
			return nil, &SyntaxError{Pos: tok.Pos, Msg: "unexpected token " + tok.Kind.String()}
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == OpenParen {
			return nil, &SyntaxError{Pos: top.Pos, Msg: "unclosed '('"}
		}
		out = append(out, top)
	}
	return out, nil
}
