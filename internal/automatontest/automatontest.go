// Package automatontest provides helpers for tests that need to run an
// automaton over an input string.
package automatontest

import (
	"testing"

	"github.com/KromDaniel/regnfa/internal/automaton"
)

// Accepts reports whether a accepts input, simulating it with EpsilonClosure
// and Move. Runes outside the alphabet simply lead to the empty set.
func Accepts(t testing.TB, a *automaton.Automaton, input string) bool {
	t.Helper()

	start, ok := a.Start()
	if !ok {
		t.Fatalf("automaton has no start state")
	}
	current := a.EpsilonClosure(start)
	for _, r := range input {
		next, err := a.Step(current, automaton.Symbol(r))
		if err != nil {
			t.Fatalf("step on %q: %v", r, err)
		}
		current = next
		if len(current) == 0 {
			return false
		}
	}
	return current.Intersects(automaton.NewStateSet(a.Finals()...))
}

// Words returns every string over alphabet with length at most maxLen,
// shortest first, including the empty string.
func Words(alphabet string, maxLen int) []string {
	words := []string{""}
	layer := []string{""}
	for n := 0; n < maxLen; n++ {
		var next []string
		for _, w := range layer {
			for _, r := range alphabet {
				next = append(next, w+string(r))
			}
		}
		words = append(words, next...)
		layer = next
	}
	return words
}
