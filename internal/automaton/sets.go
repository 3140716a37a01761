package automaton

import (
	"maps"
	"slices"
)

// SymbolSet is a set of transition labels.
type SymbolSet map[Symbol]struct{}

// NewSymbolSet returns a set holding syms.
func NewSymbolSet(syms ...Symbol) SymbolSet {
	s := make(SymbolSet, len(syms))
	for _, sym := range syms {
		s[sym] = struct{}{}
	}
	return s
}

// Add inserts sym into the set.
func (s SymbolSet) Add(sym Symbol) {
	s[sym] = struct{}{}
}

// Has reports whether sym is in the set.
func (s SymbolSet) Has(sym Symbol) bool {
	_, ok := s[sym]
	return ok
}

// Union adds every symbol of other to s.
func (s SymbolSet) Union(other SymbolSet) {
	for sym := range other {
		s[sym] = struct{}{}
	}
}

// Clone returns a copy of the set. Cloning nil gives an empty set.
func (s SymbolSet) Clone() SymbolSet {
	out := make(SymbolSet, len(s))
	maps.Copy(out, s)
	return out
}

// Sorted returns the symbols in ascending order, Epsilon first.
func (s SymbolSet) Sorted() []Symbol {
	return slices.Sorted(maps.Keys(s))
}

// StateSet is a set of states.
type StateSet map[State]struct{}

// NewStateSet returns a set holding states.
func NewStateSet(states ...State) StateSet {
	s := make(StateSet, len(states))
	for _, st := range states {
		s[st] = struct{}{}
	}
	return s
}

// Add inserts st into the set.
func (s StateSet) Add(st State) {
	s[st] = struct{}{}
}

// Has reports whether st is in the set.
func (s StateSet) Has(st State) bool {
	_, ok := s[st]
	return ok
}

// Sorted returns the states in ascending order.
func (s StateSet) Sorted() []State {
	return slices.Sorted(maps.Keys(s))
}

// Intersects reports whether s and other share a state.
func (s StateSet) Intersects(other StateSet) bool {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}
	for st := range small {
		if large.Has(st) {
			return true
		}
	}
	return false
}
