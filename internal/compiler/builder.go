package compiler

import (
	"fmt"

	"github.com/KromDaniel/regnfa/internal/automaton"
	"github.com/KromDaniel/regnfa/internal/parser"
)

// epsilon is the label set of every edge the construction adds.
func epsilon() automaton.SymbolSet {
	return automaton.NewSymbolSet(automaton.Epsilon)
}

// builder applies Thompson's rules to a postfix token stream. It owns every
// fragment on its stack; pop hands a fragment over and forgets it.
type builder struct {
	stack  []*automaton.Automaton
	logger *Logger
}

func (b *builder) push(f *automaton.Automaton) {
	b.stack = append(b.stack, f)
}

func (b *builder) pop(op parser.Token) (*automaton.Automaton, error) {
	if len(b.stack) == 0 {
		return nil, &parser.SyntaxError{
			Pos: op.Pos,
			Msg: fmt.Sprintf("operator '%c' is missing an operand", op.Value),
		}
	}
	last := len(b.stack) - 1
	f := b.stack[last]
	b.stack[last] = nil
	b.stack = b.stack[:last]
	return f, nil
}

// Build runs the construction over postfix and returns the single remaining
// fragment with its alphabet set to alphabet.
func Build(postfix []parser.Token, alphabet []rune) (*automaton.Automaton, error) {
	return build(postfix, alphabet, NewLogger(false))
}

func build(postfix []parser.Token, alphabet []rune, logger *Logger) (*automaton.Automaton, error) {
	if len(postfix) == 0 {
		return nil, &parser.SyntaxError{Msg: "expression has no operands"}
	}

	b := &builder{logger: logger}
	for _, tok := range postfix {
		if err := b.apply(tok); err != nil {
			return nil, err
		}
	}

	if len(b.stack) != 1 {
		return nil, &parser.SyntaxError{
			Pos: postfix[len(postfix)-1].Pos,
			Msg: fmt.Sprintf("%d operands are not joined by an operator", len(b.stack)),
		}
	}
	nfa := b.stack[0]

	syms := automaton.NewSymbolSet()
	for _, r := range alphabet {
		syms.Add(automaton.Symbol(r))
	}
	nfa.SetAlphabet(syms)
	return nfa, nil
}

// apply consumes one postfix token.
func (b *builder) apply(tok parser.Token) error {
	var (
		result *automaton.Automaton
		err    error
	)

	switch tok.Kind {
	case parser.Literal:
		result = literalFragment(automaton.Symbol(tok.Value))

	case parser.Star:
		f, perr := b.pop(tok)
		if perr != nil {
			return perr
		}
		result, err = starFragment(f)

	case parser.Concat, parser.Union:
		right, perr := b.pop(tok)
		if perr != nil {
			return perr
		}
		left, perr := b.pop(tok)
		if perr != nil {
			return perr
		}
		if tok.Kind == parser.Concat {
			result, err = concatFragment(left, right)
		} else {
			result, err = unionFragment(left, right)
		}

	default:
		return &parser.SyntaxError{Pos: tok.Pos, Msg: "unexpected " + tok.Kind.String() + " in postfix stream"}
	}

	if err != nil {
		return fmt.Errorf("failed to apply %s rule at offset %d: %w", tok.Kind, tok.Pos, err)
	}
	b.logger.Rule(tok.Kind.String(), tok.Pos, result.NumStates(), result.NumTransitions())
	b.push(result)
	return nil
}

// literalFragment builds 1 -c-> 2.
func literalFragment(c automaton.Symbol) *automaton.Automaton {
	f := automaton.New()
	f.SetStart(FirstState)
	f.AddFinal(LiteralFinalState)
	f.AddTransition(FirstState, LiteralFinalState, automaton.NewSymbolSet(c))
	return f
}

// ends returns the start and single final state of a fragment.
func ends(f *automaton.Automaton) (automaton.State, automaton.State, error) {
	start, ok := f.Start()
	if !ok {
		return 0, 0, automaton.ErrNoStart
	}
	final, err := f.Final()
	if err != nil {
		return 0, 0, err
	}
	return start, final, nil
}

// starFragment wraps f between a new start state and a new final state one
// past f's range. The start -> final edge skips f entirely; the f.final ->
// f.start edge repeats it.
func starFragment(f *automaton.Automaton) (*automaton.Automaton, error) {
	inner, next := f.Renumber(WrappedOperandStart)
	innerStart, innerFinal, err := ends(inner)
	if err != nil {
		return nil, err
	}

	out := automaton.New()
	out.SetStart(FirstState)
	out.AddFinal(next)
	out.AddTransition(FirstState, innerStart, epsilon())
	out.AddTransition(FirstState, next, epsilon())
	out.AddTransition(innerFinal, next, epsilon())
	out.AddTransition(innerFinal, innerStart, epsilon())
	out.ImportTransitions(inner.Transitions())
	return out, nil
}

// concatFragment joins the final state of a to the start state of b.
func concatFragment(a, b *automaton.Automaton) (*automaton.Automaton, error) {
	left, m1 := a.Renumber(FirstState)
	right, _ := b.Renumber(m1)

	leftStart, leftFinal, err := ends(left)
	if err != nil {
		return nil, err
	}
	rightStart, rightFinal, err := ends(right)
	if err != nil {
		return nil, err
	}

	out := automaton.New()
	out.SetStart(leftStart)
	out.AddFinal(rightFinal)
	out.AddTransition(leftFinal, rightStart, epsilon())
	out.ImportTransitions(left.Transitions())
	out.ImportTransitions(right.Transitions())
	return out, nil
}

// unionFragment runs a and b in parallel between a new start state and a new
// final state one past b's range.
func unionFragment(a, b *automaton.Automaton) (*automaton.Automaton, error) {
	left, m1 := a.Renumber(WrappedOperandStart)
	right, m2 := b.Renumber(m1)

	leftStart, leftFinal, err := ends(left)
	if err != nil {
		return nil, err
	}
	rightStart, rightFinal, err := ends(right)
	if err != nil {
		return nil, err
	}

	out := automaton.New()
	out.SetStart(FirstState)
	out.AddFinal(m2)
	out.AddTransition(FirstState, leftStart, epsilon())
	out.AddTransition(FirstState, rightStart, epsilon())
	out.AddTransition(leftFinal, m2, epsilon())
	out.AddTransition(rightFinal, m2, epsilon())
	out.ImportTransitions(left.Transitions())
	out.ImportTransitions(right.Transitions())
	return out, nil
}
