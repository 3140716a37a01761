package automaton

import "fmt"

// EpsilonClosure returns every state reachable from s through zero or more
// epsilon edges. The result always contains s.
func (a *Automaton) EpsilonClosure(s State) StateSet {
	return a.EpsilonClosureOf(NewStateSet(s))
}

// EpsilonClosureOf returns the union of the epsilon closures of states.
func (a *Automaton) EpsilonClosureOf(states StateSet) StateSet {
	closure := make(StateSet, len(states))
	frontier := make([]State, 0, len(states))
	for s := range states {
		closure.Add(s)
		frontier = append(frontier, s)
	}

	for len(frontier) > 0 {
		s := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		for to, labels := range a.transitions[s] {
			if labels.Has(Epsilon) && !closure.Has(to) {
				closure.Add(to)
				frontier = append(frontier, to)
			}
		}
	}
	return closure
}

// Move returns every state reachable from a state in states by exactly one
// edge labeled sym. Epsilon edges are not followed; asking for them is an
// error.
func (a *Automaton) Move(states StateSet, sym Symbol) (StateSet, error) {
	if sym == Epsilon {
		return nil, ErrEpsilonMove
	}
	out := StateSet{}
	for s := range states {
		for to, labels := range a.transitions[s] {
			if labels.Has(sym) {
				out.Add(to)
			}
		}
	}
	return out, nil
}

// Step is Move followed by the epsilon closure of the result.
func (a *Automaton) Step(states StateSet, sym Symbol) (StateSet, error) {
	moved, err := a.Move(states, sym)
	if err != nil {
		return nil, fmt.Errorf("failed to step on %q: %w", sym, err)
	}
	return a.EpsilonClosureOf(moved), nil
}
