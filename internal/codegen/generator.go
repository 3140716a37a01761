package codegen

import (
	"fmt"
	"io"

	"github.com/KromDaniel/regnfa/internal/automaton"
	"github.com/dave/jennifer/jen"
)

// Entry is one automaton to emit.
type Entry struct {
	Name    string // exported variable name
	Pattern string // source expression, kept in the table and the doc comment
	NFA     *automaton.Automaton
}

// Generator accumulates automata into one Go file.
type Generator struct {
	file  *jen.File
	names map[string]bool
}

// New creates a generator for package pkg. The shared types are declared up
// front.
func New(pkg string) *Generator {
	g := &Generator{
		file:  jen.NewFile(pkg),
		names: map[string]bool{},
	}
	g.file.HeaderComment("Code generated by regnfa. DO NOT EDIT.")
	g.declareTypes()
	return g
}

func (g *Generator) declareTypes() {
	g.file.Comment(EpsilonName + " labels a transition that consumes no input.")
	g.file.Const().Id(EpsilonName).Rune().Op("=").Lit(int(automaton.Epsilon))
	g.file.Line()

	g.file.Comment(EdgeTypeName + " is a transition labeled with a set of symbols.")
	g.file.Type().Id(EdgeTypeName).Struct(
		jen.Id(FromField).Int(),
		jen.Id(ToField).Int(),
		jen.Id(LabelsField).Index().Rune(),
	)
	g.file.Line()

	g.file.Comment(TableTypeName + " is an NFA built by Thompson's construction.")
	g.file.Type().Id(TableTypeName).Struct(
		jen.Id(PatternField).String(),
		jen.Id(StartField).Int(),
		jen.Id(FinalsField).Index().Int(),
		jen.Id(StatesField).Index().Int(),
		jen.Id(AlphabetField).Index().Rune(),
		jen.Id(EdgesField).Index().Id(EdgeTypeName),
	)
}

// Add emits a variable holding e.NFA.
func (g *Generator) Add(e Entry) error {
	if err := ValidName(e.Name); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}
	if g.names[e.Name] {
		return fmt.Errorf("duplicate name %q", e.Name)
	}
	if e.NFA == nil {
		return fmt.Errorf("%s: automaton is nil", e.Name)
	}
	start, ok := e.NFA.Start()
	if !ok {
		return fmt.Errorf("%s: %w", e.Name, automaton.ErrNoStart)
	}
	final, err := e.NFA.Final()
	if err != nil {
		return fmt.Errorf("%s: %w", e.Name, err)
	}

	states := make([]jen.Code, 0, e.NFA.NumStates())
	for _, s := range e.NFA.States() {
		states = append(states, jen.Lit(int(s)))
	}
	alphabet := make([]jen.Code, 0, len(e.NFA.Alphabet()))
	for _, s := range e.NFA.Alphabet() {
		alphabet = append(alphabet, symbolCode(s))
	}
	edges := make([]jen.Code, 0, e.NFA.NumTransitions())
	for _, edge := range e.NFA.Edges() {
		edges = append(edges, edgeCode(edge))
	}

	g.file.Line()
	g.file.Commentf("%s was built from the pattern %q (%s start, %s final).",
		e.Name, e.Pattern, StateName(int(start)), StateName(int(final)))
	g.file.Var().Id(e.Name).Op("=").Id(TableTypeName).Values(jen.Dict{
		jen.Id(PatternField):  jen.Lit(e.Pattern),
		jen.Id(StartField):    jen.Lit(int(start)),
		jen.Id(FinalsField):   jen.Index().Int().Values(jen.Lit(int(final))),
		jen.Id(StatesField):   jen.Index().Int().Values(states...),
		jen.Id(AlphabetField): jen.Index().Rune().Values(alphabet...),
		jen.Id(EdgesField):    jen.Index().Id(EdgeTypeName).Values(edges...),
	})

	g.names[e.Name] = true
	return nil
}

func edgeCode(e automaton.Edge) jen.Code {
	labels := make([]jen.Code, 0, len(e.Labels))
	for _, s := range e.Labels {
		labels = append(labels, symbolCode(s))
	}
	return jen.Values(jen.Dict{
		jen.Id(FromField):   jen.Lit(int(e.From)),
		jen.Id(ToField):     jen.Lit(int(e.To)),
		jen.Id(LabelsField): jen.Index().Rune().Values(labels...),
	})
}

func symbolCode(s automaton.Symbol) jen.Code {
	if s == automaton.Epsilon {
		return jen.Id(EpsilonName)
	}
	return jen.LitRune(rune(s))
}

// Len returns the number of automata added so far.
func (g *Generator) Len() int {
	return len(g.names)
}

// Render writes the formatted file to w.
func (g *Generator) Render(w io.Writer) error {
	if err := g.file.Render(w); err != nil {
		return fmt.Errorf("failed to render file: %w", err)
	}
	return nil
}

// Save writes the formatted file to path.
func (g *Generator) Save(path string) error {
	if err := g.file.Save(path); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	return nil
}
