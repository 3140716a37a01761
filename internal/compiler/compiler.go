// Package compiler implements the regex-to-NFA pipeline: preprocessing,
// precedence rewriting and Thompson's construction.
package compiler

import (
	"fmt"
	"io"

	"github.com/KromDaniel/regnfa/internal/automaton"
	"github.com/KromDaniel/regnfa/internal/parser"
)

// Config holds the configuration for one compilation.
type Config struct {
	Pattern   string
	Syntax    parser.Config // accepted literals; DefaultConfig when zero
	Verbose   bool          // trace every stage through the Logger
	LogOutput io.Writer     // where the trace goes; stderr when nil
}

// Result is a built automaton together with the intermediate forms of the
// pattern.
type Result struct {
	Pattern    string               // the raw expression
	Expression string               // the expression with explicit concatenation
	Postfix    string               // the postfix form fed to the builder
	NFA        *automaton.Automaton // the constructed automaton
}

// Compiler converts one pattern into an NFA.
type Compiler struct {
	config Config
	logger *Logger
}

// New creates a new compiler instance.
func New(config Config) *Compiler {
	if config.Syntax.Literals() == "" {
		config.Syntax = parser.DefaultConfig()
	}
	logger := NewLogger(config.Verbose)
	if config.LogOutput != nil {
		logger.SetOutput(config.LogOutput)
	}
	return &Compiler{
		config: config,
		logger: logger,
	}
}

// Compile runs the pipeline. On error no automaton is returned.
func (c *Compiler) Compile() (*Result, error) {
	c.logger.Section("Preprocessing")
	c.logger.Log("Pattern: %s", c.config.Pattern)

	pre, err := parser.Preprocess(c.config.Syntax, c.config.Pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to preprocess pattern: %w", err)
	}
	c.logger.Log("Explicit concatenation: %s", pre.Expression())
	c.logger.Log("Alphabet: %q", string(pre.Alphabet))

	c.logger.Section("Postfix")
	postfix, err := parser.ToPostfix(pre.Tokens)
	if err != nil {
		return nil, fmt.Errorf("failed to rewrite pattern: %w", err)
	}
	c.logger.Log("Postfix: %s", parser.FormatTokens(postfix))

	c.logger.Section("Construction")
	nfa, err := build(postfix, pre.Alphabet, c.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build automaton: %w", err)
	}
	if err := nfa.ValidateFragment(); err != nil {
		return nil, fmt.Errorf("constructed automaton is invalid: %w", err)
	}
	start, _ := nfa.Start()
	c.logger.Log("NFA: %d states, %d transitions, start %d, finals %v",
		nfa.NumStates(), nfa.NumTransitions(), start, nfa.Finals())

	return &Result{
		Pattern:    c.config.Pattern,
		Expression: pre.Expression(),
		Postfix:    parser.FormatTokens(postfix),
		NFA:        nfa,
	}, nil
}

// Compile builds the NFA for pattern with the default syntax.
func Compile(pattern string) (*automaton.Automaton, error) {
	res, err := New(Config{Pattern: pattern}).Compile()
	if err != nil {
		return nil, err
	}
	return res.NFA, nil
}
