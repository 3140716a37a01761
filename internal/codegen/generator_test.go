package codegen

import (
	"bytes"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KromDaniel/regnfa/internal/automaton"
	"github.com/KromDaniel/regnfa/internal/compiler"
)

func compile(t *testing.T, pattern string) *automaton.Automaton {
	t.Helper()
	nfa, err := compiler.Compile(pattern)
	if err != nil {
		t.Fatalf("Compile(%q) error: %v", pattern, err)
	}
	return nfa
}

func TestGeneratorRender(t *testing.T) {
	g := New("nfas")
	if err := g.Add(Entry{Name: "AStar", Pattern: "a*", NFA: compile(t, "a*")}); err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if err := g.Add(Entry{Name: "Choice", Pattern: "(a|b)*c", NFA: compile(t, "(a|b)*c")}); err != nil {
		t.Fatalf("Add error: %v", err)
	}

	var buf bytes.Buffer
	if err := g.Render(&buf); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	src := buf.String()

	if _, err := parser.ParseFile(token.NewFileSet(), "nfas.go", src, 0); err != nil {
		t.Fatalf("generated code does not parse: %v\n%s", err, src)
	}

	for _, want := range []string{
		"// Code generated by regnfa. DO NOT EDIT.",
		"package nfas",
		"const Epsilon rune = -1",
		"type Edge struct",
		"type Automaton struct",
		"var AStar = Automaton{",
		"var Choice = Automaton{",
		`"(a|b)*c"`,
		"'a'",
		"'c'",
		"Epsilon",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated code missing %q:\n%s", want, src)
		}
	}
	if g.Len() != 2 {
		t.Errorf("Len() = %d, want 2", g.Len())
	}
}

func TestGeneratorAddRejects(t *testing.T) {
	twoFinals := compile(t, "a")
	twoFinals.AddFinal(1)

	tests := []struct {
		name  string
		entry Entry
	}{
		{"unexported", Entry{Name: "lower", NFA: compile(t, "a")}},
		{"reserved", Entry{Name: EdgeTypeName, NFA: compile(t, "a")}},
		{"duplicate", Entry{Name: "Taken", NFA: compile(t, "a")}},
		{"nil automaton", Entry{Name: "Empty"}},
		{"no start", Entry{Name: "NoStart", NFA: automaton.New()}},
		{"two finals", Entry{Name: "Two", NFA: twoFinals}},
	}

	g := New("nfas")
	if err := g.Add(Entry{Name: "Taken", NFA: compile(t, "b")}); err != nil {
		t.Fatalf("Add error: %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := g.Add(tt.entry); err == nil {
				t.Errorf("Add(%s) succeeded, want error", tt.entry.Name)
			}
		})
	}
	if g.Len() != 1 {
		t.Errorf("rejected entries were recorded: Len() = %d", g.Len())
	}
}

func TestGeneratorSave(t *testing.T) {
	g := New("nfas")
	if err := g.Add(Entry{Name: "AB", Pattern: "ab", NFA: compile(t, "ab")}); err != nil {
		t.Fatalf("Add error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "nfas.go")
	if err := g.Save(path); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read generated file: %v", err)
	}
	if !strings.Contains(string(data), "var AB = Automaton{") {
		t.Errorf("saved file missing variable:\n%s", data)
	}
}
