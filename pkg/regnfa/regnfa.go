// Package regnfa converts regular expressions over literals, concatenation,
// union, Kleene star and grouping into nondeterministic finite automata using
// Thompson's construction.
package regnfa

import (
	"errors"
	"fmt"
	"io"

	"github.com/KromDaniel/regnfa/internal/automaton"
	"github.com/KromDaniel/regnfa/internal/compiler"
	"github.com/KromDaniel/regnfa/internal/dot"
	"github.com/KromDaniel/regnfa/internal/parser"
)

// NFA is a constructed automaton. It exposes EpsilonClosure and Move along
// with its states, transitions, start state, final states and alphabet.
type NFA = automaton.Automaton

// State identifies a state of an NFA.
type State = automaton.State

// Symbol is a transition label.
type Symbol = automaton.Symbol

// StateSet is a set of states, as used by EpsilonClosure and Move.
type StateSet = automaton.StateSet

// Edge is one transition with its sorted label set.
type Edge = automaton.Edge

// Result holds a built NFA and the intermediate forms of its pattern.
type Result = compiler.Result

// Epsilon labels transitions that consume no input.
const Epsilon = automaton.Epsilon

// Error kinds. Match them with errors.Is and errors.As.
type (
	// LexicalError reports a character outside the accepted alphabet.
	LexicalError = parser.LexicalError

	// SyntaxError reports unbalanced brackets or missing operands.
	SyntaxError = parser.SyntaxError
)

var (
	// ErrEmptyInput is returned for a zero-length pattern.
	ErrEmptyInput = parser.ErrEmptyInput

	// ErrEpsilonMove is returned by Move when given Epsilon.
	ErrEpsilonMove = automaton.ErrEpsilonMove
)

// Options configures the compilation process.
type Options struct {
	// Pattern is the regular expression to compile
	Pattern string

	// Literals overrides the accepted literal characters. Empty means ASCII
	// letters, digits and +:;=!#$%^{}[]/&-_~<>
	Literals string

	// Verbose traces every stage of the pipeline
	Verbose bool

	// LogOutput receives the verbose trace (stderr when nil)
	LogOutput io.Writer
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	if o.Pattern == "" {
		return ErrEmptyInput
	}
	if o.Literals != "" {
		if _, err := parser.NewConfig(o.Literals); err != nil {
			return fmt.Errorf("invalid literals: %w", err)
		}
	}
	return nil
}

// Compile builds the NFA for pattern with the default literal alphabet.
func Compile(pattern string) (*NFA, error) {
	res, err := CompileWithOptions(Options{Pattern: pattern})
	if err != nil {
		return nil, err
	}
	return res.NFA, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(pattern string) *NFA {
	nfa, err := Compile(pattern)
	if err != nil {
		panic(fmt.Sprintf("regnfa: Compile(%q): %v", pattern, err))
	}
	return nfa
}

// CompileWithOptions builds an NFA and returns it with the preprocessed and
// postfix forms of the pattern.
func CompileWithOptions(opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		if errors.Is(err, ErrEmptyInput) {
			return nil, err
		}
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	cfg := parser.DefaultConfig()
	if opts.Literals != "" {
		cfg, _ = parser.NewConfig(opts.Literals)
	}

	return compiler.New(compiler.Config{
		Pattern:   opts.Pattern,
		Syntax:    cfg,
		Verbose:   opts.Verbose,
		LogOutput: opts.LogOutput,
	}).Compile()
}

// WriteDOT writes nfa as a Graphviz digraph named name.
func WriteDOT(w io.Writer, nfa *NFA, name string) error {
	return dot.Write(w, nfa, dot.Options{Name: name})
}
