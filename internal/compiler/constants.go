package compiler

import "github.com/KromDaniel/regnfa/internal/automaton"

// State numbering used by the construction rules. Every fragment occupies a
// contiguous range starting at FirstState, with its start state lowest and its
// final state highest.
const (
	// FirstState is the id of the start state of every fragment.
	FirstState automaton.State = 1

	// LiteralFinalState is the final state of a single-literal fragment.
	LiteralFinalState automaton.State = 2

	// WrappedOperandStart is where the operands of star and union are
	// renumbered to, leaving FirstState free for the new start state.
	WrappedOperandStart automaton.State = 2
)
