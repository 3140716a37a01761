// Package dot writes automata in the Graphviz DOT language.
package dot

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KromDaniel/regnfa/internal/automaton"
)

// Options configures the generated graph.
type Options struct {
	Name string // graph name; "NFA" when empty
}

// Write prints a as a left-to-right digraph: final states are double
// circles, a point marks the start, and each edge carries its sorted labels.
func Write(w io.Writer, a *automaton.Automaton, opts Options) error {
	start, ok := a.Start()
	if !ok {
		return automaton.ErrNoStart
	}
	name := opts.Name
	if name == "" {
		name = "NFA"
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "digraph %s {\n", strconv.Quote(name))
	fmt.Fprintln(bw, "    rankdir=LR;")

	finals := a.Finals()
	if len(finals) > 0 {
		ids := make([]string, len(finals))
		for i, f := range finals {
			ids[i] = nodeID(f)
		}
		fmt.Fprintf(bw, "    node [shape=doublecircle]; %s;\n", strings.Join(ids, "; "))
	}

	fmt.Fprintln(bw, "    node [shape=circle];")
	for _, s := range a.States() {
		if !a.IsFinal(s) {
			fmt.Fprintf(bw, "    %s;\n", nodeID(s))
		}
	}
	for _, e := range a.Edges() {
		fmt.Fprintf(bw, "    %s -> %s [label=%s];\n", nodeID(e.From), nodeID(e.To), strconv.Quote(Label(e.Labels)))
	}

	fmt.Fprintf(bw, "    _start [shape=point]; _start -> %s;\n", nodeID(start))
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

// Label joins edge symbols with commas, epsilon printed as ε.
func Label(syms []automaton.Symbol) string {
	parts := make([]string, len(syms))
	for i, s := range syms {
		parts[i] = s.String()
	}
	return strings.Join(parts, ",")
}

func nodeID(s automaton.State) string {
	return "s" + strconv.Itoa(int(s))
}
