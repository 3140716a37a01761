// Package parser turns a raw regular expression into a postfix token stream:
// it tokenizes the input, makes concatenation explicit, collects the literal
// alphabet and reorders operators by precedence.
package parser

import (
	"fmt"
	"slices"
	"strings"
)

// Operator and bracket characters. They can never be literals.
const (
	LeftParen  = '('
	RightParen = ')'
	UnionOp    = '|'
	ConcatOp   = '.'
	StarOp     = '*'

	// EpsilonGlyph is how epsilon is printed. It is rejected as input.
	EpsilonGlyph = 'ε'
)

// specialChars lists every character with syntactic meaning.
const specialChars = "()|.*"

// defaultLiterals is the literal alphabet accepted by DefaultConfig.
const defaultLiterals = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789" +
	"+:;=!#$%^{}[]/&-_~<>"

// Config is the immutable syntax configuration shared by the preprocessor,
// the rewriter and the builder. The zero value accepts no literals; use
// DefaultConfig or NewConfig.
type Config struct {
	literals map[rune]struct{}
}

// DefaultConfig returns the configuration accepting ASCII letters, digits and
// a fixed set of punctuation as literals.
func DefaultConfig() Config {
	cfg, err := NewConfig(defaultLiterals)
	if err != nil {
		panic(fmt.Sprintf("invalid default literals: %v", err))
	}
	return cfg
}

// NewConfig returns a configuration accepting exactly the runes of literals.
func NewConfig(literals string) (Config, error) {
	if literals == "" {
		return Config{}, fmt.Errorf("literal alphabet cannot be empty")
	}
	set := make(map[rune]struct{}, len(literals))
	for _, r := range literals {
		if strings.ContainsRune(specialChars, r) {
			return Config{}, fmt.Errorf("operator %q cannot be a literal", r)
		}
		if r == EpsilonGlyph {
			return Config{}, fmt.Errorf("epsilon %q cannot be a literal", r)
		}
		set[r] = struct{}{}
	}
	return Config{literals: set}, nil
}

// IsLiteral reports whether r is an accepted literal.
func (c Config) IsLiteral(r rune) bool {
	_, ok := c.literals[r]
	return ok
}

// Literals returns the accepted literals in ascending order.
func (c Config) Literals() string {
	runes := make([]rune, 0, len(c.literals))
	for r := range c.literals {
		runes = append(runes, r)
	}
	slices.Sort(runes)
	return string(runes)
}
