// Package automaton implements the nondeterministic finite automaton used by
// Thompson's construction: states, symbol-set labeled transitions, and the
// epsilon-closure and move queries a simulator is built from.
package automaton

import (
	"errors"
	"fmt"
	"slices"
)

// State identifies a state within one automaton.
type State int

// Symbol is a transition label: a literal character or Epsilon.
type Symbol rune

// Epsilon labels a transition that consumes no input.
const Epsilon Symbol = -1

// String returns the printable form of the symbol.
func (s Symbol) String() string {
	if s == Epsilon {
		return "ε"
	}
	return string(rune(s))
}

var (
	// ErrEpsilonMove is returned by Move when asked to follow epsilon edges.
	ErrEpsilonMove = errors.New("move on epsilon is not allowed")

	// ErrFinalCount is returned when a fragment does not have exactly one final state.
	ErrFinalCount = errors.New("fragment must have exactly one final state")

	// ErrNoStart is returned when an automaton has no start state.
	ErrNoStart = errors.New("automaton has no start state")
)

// Transitions maps a source state to its targets and the labels of each edge.
type Transitions map[State]map[State]SymbolSet

// Automaton is a nondeterministic finite automaton.
//
// There is at most one edge per ordered pair of states; adding another label to
// an existing pair unions the label sets.
type Automaton struct {
	states      StateSet
	transitions Transitions
	start       State
	hasStart    bool
	finals      []State
	alphabet    SymbolSet
}

// New creates an empty automaton.
func New() *Automaton {
	return &Automaton{
		states:      StateSet{},
		transitions: Transitions{},
		alphabet:    SymbolSet{},
	}
}

// SetStart sets the start state and registers it as a state.
func (a *Automaton) SetStart(s State) {
	a.start = s
	a.hasStart = true
	a.states.Add(s)
}

// AddFinal marks states as final. Repeated states are ignored and the
// first-seen order is kept.
func (a *Automaton) AddFinal(states ...State) {
	for _, s := range states {
		a.states.Add(s)
		if !slices.Contains(a.finals, s) {
			a.finals = append(a.finals, s)
		}
	}
}

// AddTransition adds an edge from -> to labeled with syms, merging with any
// existing edge between the same pair. An empty label set adds nothing.
func (a *Automaton) AddTransition(from, to State, syms SymbolSet) {
	if len(syms) == 0 {
		return
	}
	a.states.Add(from)
	a.states.Add(to)

	targets, ok := a.transitions[from]
	if !ok {
		targets = map[State]SymbolSet{}
		a.transitions[from] = targets
	}
	labels, ok := targets[to]
	if !ok {
		labels = SymbolSet{}
		targets[to] = labels
	}
	labels.Union(syms)
}

// ImportTransitions copies every edge of t into the automaton. The caller is
// responsible for the state ids of t being disjoint from, or intentionally
// shared with, the ids already in use.
func (a *Automaton) ImportTransitions(t Transitions) {
	for from, targets := range t {
		for to, labels := range targets {
			a.AddTransition(from, to, labels)
		}
	}
}

// Renumber returns an isomorphic copy whose states occupy the contiguous range
// [startID, startID+NumStates()) together with the next free id.
//
// States are visited in ascending order of their current id, so the i-th
// smallest state becomes startID+i. Identical input always yields identical
// output.
func (a *Automaton) Renumber(startID State) (*Automaton, State) {
	translations := make(map[State]State, len(a.states))
	next := startID
	for _, s := range a.states.Sorted() {
		translations[s] = next
		next++
	}

	out := New()
	for _, s := range a.states.Sorted() {
		out.states.Add(translations[s])
	}
	if a.hasStart {
		out.SetStart(translations[a.start])
	}
	for _, f := range a.finals {
		out.AddFinal(translations[f])
	}
	for from, targets := range a.transitions {
		for to, labels := range targets {
			out.AddTransition(translations[from], translations[to], labels)
		}
	}
	out.alphabet = a.alphabet.Clone()
	return out, next
}

// Start returns the start state and whether one has been set.
func (a *Automaton) Start() (State, bool) {
	return a.start, a.hasStart
}

// Finals returns the final states in the order they were added.
func (a *Automaton) Finals() []State {
	return slices.Clone(a.finals)
}

// Final returns the single final state of a fragment. It fails with
// ErrFinalCount when there is not exactly one.
func (a *Automaton) Final() (State, error) {
	if len(a.finals) != 1 {
		return 0, fmt.Errorf("%w: found %d", ErrFinalCount, len(a.finals))
	}
	return a.finals[0], nil
}

// IsFinal reports whether s is a final state.
func (a *Automaton) IsFinal(s State) bool {
	return slices.Contains(a.finals, s)
}

// States returns every state in ascending order.
func (a *Automaton) States() []State {
	return a.states.Sorted()
}

// NumStates returns the number of states.
func (a *Automaton) NumStates() int {
	return len(a.states)
}

// HasState reports whether s belongs to the automaton.
func (a *Automaton) HasState(s State) bool {
	return a.states.Has(s)
}

// Alphabet returns the literal symbols of the automaton in ascending order.
func (a *Automaton) Alphabet() []Symbol {
	return a.alphabet.Sorted()
}

// SetAlphabet replaces the alphabet. Epsilon is never part of an alphabet and
// is dropped.
func (a *Automaton) SetAlphabet(syms SymbolSet) {
	a.alphabet = syms.Clone()
	delete(a.alphabet, Epsilon)
}

// Labels returns a copy of the labels on the edge from -> to, or nil if there
// is no such edge.
func (a *Automaton) Labels(from, to State) SymbolSet {
	labels, ok := a.transitions[from][to]
	if !ok {
		return nil
	}
	return labels.Clone()
}

// Transitions returns a deep copy of the transition mapping.
func (a *Automaton) Transitions() Transitions {
	out := make(Transitions, len(a.transitions))
	for from, targets := range a.transitions {
		copied := make(map[State]SymbolSet, len(targets))
		for to, labels := range targets {
			copied[to] = labels.Clone()
		}
		out[from] = copied
	}
	return out
}

// NumTransitions returns the number of edges (state pairs), not labels.
func (a *Automaton) NumTransitions() int {
	n := 0
	for _, targets := range a.transitions {
		n += len(targets)
	}
	return n
}

// Validate checks that the start state, every final state, and every edge
// endpoint belong to the automaton.
func (a *Automaton) Validate() error {
	if !a.hasStart {
		return ErrNoStart
	}
	if !a.states.Has(a.start) {
		return fmt.Errorf("start state %d is not a state of the automaton", a.start)
	}
	for _, f := range a.finals {
		if !a.states.Has(f) {
			return fmt.Errorf("final state %d is not a state of the automaton", f)
		}
	}
	for from, targets := range a.transitions {
		if !a.states.Has(from) {
			return fmt.Errorf("transition source %d is not a state of the automaton", from)
		}
		for to := range targets {
			if !a.states.Has(to) {
				return fmt.Errorf("transition target %d is not a state of the automaton", to)
			}
		}
	}
	return nil
}

// ValidateFragment runs Validate and additionally checks the shape of a
// construction fragment: one final state, no edge into the start state and no
// edge out of the final state.
func (a *Automaton) ValidateFragment() error {
	if err := a.Validate(); err != nil {
		return err
	}
	final, err := a.Final()
	if err != nil {
		return err
	}
	if len(a.transitions[final]) > 0 {
		return fmt.Errorf("final state %d has outgoing transitions", final)
	}
	for from, targets := range a.transitions {
		if _, ok := targets[a.start]; ok {
			return fmt.Errorf("start state %d has an incoming transition from %d", a.start, from)
		}
	}
	return nil
}
