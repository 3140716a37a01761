package regnfa

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// accepts simulates nfa over input with EpsilonClosure and Move.
func accepts(t *testing.T, nfa *NFA, input string) bool {
	t.Helper()
	start, _ := nfa.Start()
	current := nfa.EpsilonClosure(start)
	for _, r := range input {
		moved, err := nfa.Move(current, Symbol(r))
		if err != nil {
			t.Fatalf("Move error: %v", err)
		}
		current = nfa.EpsilonClosureOf(moved)
	}
	for _, f := range nfa.Finals() {
		if current.Has(f) {
			return true
		}
	}
	return false
}

func TestCompile(t *testing.T) {
	nfa, err := Compile("(a|b)*c")
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	for _, in := range []string{"c", "ac", "bc", "abc", "bac"} {
		if !accepts(t, nfa, in) {
			t.Errorf("should accept %q", in)
		}
	}
	for _, in := range []string{"ab", "ca"} {
		if accepts(t, nfa, in) {
			t.Errorf("should reject %q", in)
		}
	}
}

func TestCompileErrorKinds(t *testing.T) {
	tests := []struct {
		pattern string
		check   func(error) bool
	}{
		{"(", func(err error) bool { var e *SyntaxError; return errors.As(err, &e) }},
		{")", func(err error) bool { var e *SyntaxError; return errors.As(err, &e) }},
		{"*", func(err error) bool { var e *SyntaxError; return errors.As(err, &e) }},
		{"a|", func(err error) bool { var e *SyntaxError; return errors.As(err, &e) }},
		{"", func(err error) bool { return errors.Is(err, ErrEmptyInput) }},
		{"a@", func(err error) bool { var e *LexicalError; return errors.As(err, &e) }},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			nfa, err := Compile(tt.pattern)
			if nfa != nil || !tt.check(err) {
				t.Errorf("Compile(%q) = %v, %v", tt.pattern, nfa, err)
			}
		})
	}
}

func TestMustCompilePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustCompile did not panic on an invalid pattern")
		}
	}()
	MustCompile("(a")
}

func TestMoveEpsilon(t *testing.T) {
	nfa := MustCompile("a")
	if _, err := nfa.Move(StateSet{1: {}}, Epsilon); !errors.Is(err, ErrEpsilonMove) {
		t.Errorf("Move(Epsilon) error = %v, want ErrEpsilonMove", err)
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"default literals", Options{Pattern: "ab"}, false},
		{"custom literals", Options{Pattern: "01", Literals: "01"}, false},
		{"empty pattern", Options{}, true},
		{"operator literal", Options{Pattern: "a", Literals: "a*"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCompileWithOptions(t *testing.T) {
	var log bytes.Buffer
	res, err := CompileWithOptions(Options{Pattern: "0(0|1)*", Literals: "01", Verbose: true, LogOutput: &log})
	if err != nil {
		t.Fatalf("CompileWithOptions error: %v", err)
	}
	if res.Expression != "0.(0|1)*" || res.Postfix != "001|*." {
		t.Errorf("Expression = %q, Postfix = %q", res.Expression, res.Postfix)
	}
	if !accepts(t, res.NFA, "0110") || accepts(t, res.NFA, "10") {
		t.Error("binary language mismatch")
	}
	if !strings.Contains(log.String(), "[regnfa]") {
		t.Errorf("verbose trace missing:\n%s", log.String())
	}

	if _, err := CompileWithOptions(Options{Pattern: "a", Literals: "("}); err == nil {
		t.Error("invalid literals accepted")
	}
}

func TestWriteDOT(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDOT(&buf, MustCompile("a|b"), "choice"); err != nil {
		t.Fatalf("WriteDOT error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`digraph "choice" {`, "node [shape=doublecircle]; s6;", `s2 -> s3 [label="a"];`, "_start -> s1;"} {
		if !strings.Contains(out, want) {
			t.Errorf("DOT output missing %q:\n%s", want, out)
		}
	}
}

func TestGenerateGo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.go")
	err := GenerateGo(GenerateOptions{
		Package:    "tables",
		OutputFile: path,
		Tables: []Table{
			{Name: "Digits", Pattern: "(0|1)*", NFA: MustCompile("(0|1)*")},
			{Name: "Word", Pattern: "ab", NFA: MustCompile("ab")},
		},
	})
	if err != nil {
		t.Fatalf("GenerateGo error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	for _, want := range []string{"package tables", "var Digits = Automaton{", "var Word = Automaton{"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("generated file missing %q", want)
		}
	}
}

func TestGenerateOptionsValidate(t *testing.T) {
	nfa := MustCompile("a")
	tests := []struct {
		name string
		opts GenerateOptions
	}{
		{"no package", GenerateOptions{OutputFile: "x.go", Tables: []Table{{Name: "A", NFA: nfa}}}},
		{"no tables", GenerateOptions{Package: "p", OutputFile: "x.go"}},
		{"no output", GenerateOptions{Package: "p", Tables: []Table{{Name: "A", NFA: nfa}}}},
		{"bad name", GenerateOptions{Package: "p", OutputFile: filepath.Join(t.TempDir(), "x.go"), Tables: []Table{{Name: "a", NFA: nfa}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := GenerateGo(tt.opts); err == nil {
				t.Error("GenerateGo succeeded, want error")
			}
		})
	}
}

func TestRenderGo(t *testing.T) {
	var buf bytes.Buffer
	err := RenderGo(&buf, GenerateOptions{Package: "p", Tables: []Table{{Name: "A", Pattern: "a", NFA: MustCompile("a")}}})
	if err != nil {
		t.Fatalf("RenderGo error: %v", err)
	}
	if !strings.Contains(buf.String(), "var A = Automaton{") {
		t.Errorf("rendered code missing variable:\n%s", buf.String())
	}
}
