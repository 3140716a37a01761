package e2e

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/KromDaniel/regnfa/internal/automatontest"
	"github.com/KromDaniel/regnfa/pkg/regnfa"
)

// maxWordLen bounds the exhaustive comparison; every string over the case
// alphabet up to this length is checked.
const maxWordLen = 5

// TestCase represents a test case with a pattern and the alphabet its
// inputs are drawn from
type TestCase struct {
	Pattern  string `json:"pattern"`
	Alphabet string `json:"alphabet"`
}

// stdlibPattern rewrites an expression for the regexp package: explicit
// concatenation dots are dropped and the match is anchored.
func stdlibPattern(p string) string {
	return "^(?:" + strings.ReplaceAll(p, ".", "") + ")$"
}

// TestE2E checks that every constructed NFA accepts exactly the language
// the regexp package assigns to the same expression.
func TestE2E(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata.json"))
	if err != nil {
		t.Fatalf("Failed to read test data: %v", err)
	}

	var testCases []TestCase
	if err := json.Unmarshal(data, &testCases); err != nil {
		t.Fatalf("Failed to parse test data: %v", err)
	}
	if len(testCases) == 0 {
		t.Fatal("No test cases found in testdata.json")
	}

	t.Logf("Running %d e2e test cases", len(testCases))

	for i, tc := range testCases {
		testName := fmt.Sprintf("Pattern%02d", i+1)

		t.Run(testName, func(t *testing.T) {
			nfa, err := regnfa.Compile(tc.Pattern)
			if err != nil {
				t.Fatalf("Compile(%q) error: %v", tc.Pattern, err)
			}
			std := regexp.MustCompile(stdlibPattern(tc.Pattern))

			words := automatontest.Words(tc.Alphabet, maxWordLen)
			accepted := 0
			for _, w := range words {
				want := std.MatchString(w)
				got := automatontest.Accepts(t, nfa, w)
				if got != want {
					t.Fatalf("pattern %q on %q: nfa=%v regexp=%v", tc.Pattern, w, got, want)
				}
				if got {
					accepted++
				}
			}
			t.Logf("%q: %d/%d words accepted", tc.Pattern, accepted, len(words))
		})
	}
}

// TestE2EAlphabet checks that the alphabet of each NFA is exactly the set of
// literal characters in its pattern.
func TestE2EAlphabet(t *testing.T) {
	for _, p := range []string{"a", "(a|b)*c", "x.y.z|z", "0(0|1)*1", "{[]}<>"} {
		nfa, err := regnfa.Compile(p)
		if err != nil {
			t.Fatalf("Compile(%q) error: %v", p, err)
		}

		want := map[rune]bool{}
		for _, r := range p {
			if !strings.ContainsRune("().|*", r) {
				want[r] = true
			}
		}
		got := nfa.Alphabet()
		if len(got) != len(want) {
			t.Errorf("%q: Alphabet() = %v, want %d symbols", p, got, len(want))
		}
		for _, s := range got {
			if !want[rune(s)] {
				t.Errorf("%q: unexpected symbol %q in alphabet", p, s)
			}
		}
	}
}
