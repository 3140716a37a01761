package automaton

import (
	"maps"
	"slices"
)

// Edge is one transition as seen by a renderer: both endpoints and the label
// set, sorted.
type Edge struct {
	From   State
	To     State
	Labels []Symbol
}

// Edges returns every transition ordered by source state, then target state.
func (a *Automaton) Edges() []Edge {
	edges := make([]Edge, 0, a.NumTransitions())
	for _, from := range slices.Sorted(maps.Keys(a.transitions)) {
		targets := a.transitions[from]
		for _, to := range slices.Sorted(maps.Keys(targets)) {
			edges = append(edges, Edge{
				From:   from,
				To:     to,
				Labels: targets[to].Sorted(),
			})
		}
	}
	return edges
}
