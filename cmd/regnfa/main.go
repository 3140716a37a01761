// Command regnfa builds Thompson NFAs from regular expressions and prints
// them as Graphviz DOT, Go source tables, or a pretty-printed dump.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/KromDaniel/regnfa/internal/dot"
	"github.com/KromDaniel/regnfa/pkg/regnfa"
	"github.com/k0kubun/pp/v3"
)

// arrayFlags collects a repeatable string flag.
type arrayFlags []string

func (a *arrayFlags) String() string {
	return strings.Join(*a, ", ")
}

func (a *arrayFlags) Set(value string) error {
	*a = append(*a, value)
	return nil
}

const usage = "usage: regnfa -re <pattern> [-re <pattern>...] [-format dot|go|dump] [-o file] [-png] [-pkg name] [-name Name] [-literals chars] [-v]"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	patterns arrayFlags
	format   string
	output   string
	png      bool
	pkg      string
	name     string
	literals string
	verbose  bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("regnfa", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Var(&opts.patterns, "re", "pattern to compile (repeatable)")
	fs.StringVar(&opts.format, "format", "dot", "output format: dot, go or dump")
	fs.StringVar(&opts.output, "o", "-", "output file (- for stdout)")
	fs.BoolVar(&opts.png, "png", false, "render PNG via dot -Tpng (dot format only, needs -o)")
	fs.StringVar(&opts.pkg, "pkg", "nfas", "package name for -format go")
	fs.StringVar(&opts.name, "name", "NFA", "variable name (prefix when several patterns) for -format go")
	fs.StringVar(&opts.literals, "literals", "", "accepted literal characters (default: ASCII letters, digits and +:;=!#$%^{}[]/&-_~<>)")
	fs.BoolVar(&opts.verbose, "v", false, "trace each pipeline stage on stderr")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if len(opts.patterns) == 0 {
		return nil, fmt.Errorf("at least one -re is required")
	}
	switch opts.format {
	case "dot", "go", "dump":
	default:
		return nil, fmt.Errorf("unknown format %q", opts.format)
	}
	if opts.png && (opts.format != "dot" || opts.output == "-") {
		return nil, fmt.Errorf("-png needs -format dot and an -o file")
	}
	return opts, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stderr, err)
			fmt.Fprintln(stderr, usage)
		}
		return 2
	}

	results := make([]*regnfa.Result, 0, len(opts.patterns))
	for _, p := range opts.patterns {
		res, err := regnfa.CompileWithOptions(regnfa.Options{
			Pattern:   p,
			Literals:  opts.literals,
			Verbose:   opts.verbose,
			LogOutput: stderr,
		})
		if err != nil {
			fmt.Fprintf(stderr, "pattern %q: %v\n", p, err)
			return 1
		}
		results = append(results, res)
	}

	var buf bytes.Buffer
	switch opts.format {
	case "dot":
		err = writeDOT(&buf, results)
	case "go":
		err = regnfa.RenderGo(&buf, generateOptions(opts, results))
	case "dump":
		err = writeDump(&buf, results)
	}
	if err != nil {
		fmt.Fprintf(stderr, "failed to write %s output: %v\n", opts.format, err)
		return 1
	}

	if opts.png {
		if err := renderPNG(buf.Bytes(), opts.output, stderr); err != nil {
			fmt.Fprintf(stderr, "dot failed: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "PNG written to %s\n", opts.output)
		return 0
	}

	if opts.output == "-" {
		if _, err := stdout.Write(buf.Bytes()); err != nil {
			fmt.Fprintf(stderr, "failed to write output: %v\n", err)
			return 1
		}
		return 0
	}
	if err := os.WriteFile(opts.output, buf.Bytes(), 0644); err != nil {
		fmt.Fprintf(stderr, "cannot create %s: %v\n", opts.output, err)
		return 1
	}
	fmt.Fprintf(stdout, "%s written to %s\n", strings.ToUpper(opts.format), opts.output)
	return 0
}

func writeDOT(w io.Writer, results []*regnfa.Result) error {
	for _, res := range results {
		if err := regnfa.WriteDOT(w, res.NFA, res.Pattern); err != nil {
			return err
		}
	}
	return nil
}

// tableNames returns name for a single pattern, name1..nameN otherwise.
func tableNames(name string, n int) []string {
	if n == 1 {
		return []string{name}
	}
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("%s%d", name, i+1)
	}
	return names
}

func generateOptions(opts *options, results []*regnfa.Result) regnfa.GenerateOptions {
	names := tableNames(opts.name, len(results))
	tables := make([]regnfa.Table, len(results))
	for i, res := range results {
		tables[i] = regnfa.Table{Name: names[i], Pattern: res.Pattern, NFA: res.NFA}
	}
	return regnfa.GenerateOptions{Package: opts.pkg, Tables: tables}
}

// dumpEdge and dumpNFA are what -format dump prints; labels are strings so
// the dump reads like the pattern.
type dumpEdge struct {
	From   int
	To     int
	Labels string
}

type dumpNFA struct {
	Pattern    string
	Expression string
	Postfix    string
	Start      int
	Finals     []int
	States     int
	Alphabet   string
	Edges      []dumpEdge
}

func snapshot(res *regnfa.Result) dumpNFA {
	start, _ := res.NFA.Start()
	d := dumpNFA{
		Pattern:    res.Pattern,
		Expression: res.Expression,
		Postfix:    res.Postfix,
		Start:      int(start),
		States:     res.NFA.NumStates(),
	}
	for _, f := range res.NFA.Finals() {
		d.Finals = append(d.Finals, int(f))
	}
	var alpha strings.Builder
	for _, s := range res.NFA.Alphabet() {
		alpha.WriteString(s.String())
	}
	d.Alphabet = alpha.String()
	for _, e := range res.NFA.Edges() {
		d.Edges = append(d.Edges, dumpEdge{From: int(e.From), To: int(e.To), Labels: dot.Label(e.Labels)})
	}
	return d
}

func writeDump(w io.Writer, results []*regnfa.Result) error {
	printer := pp.New()
	printer.SetColoringEnabled(false)
	for _, res := range results {
		if _, err := printer.Fprintln(w, snapshot(res)); err != nil {
			return err
		}
	}
	return nil
}

func renderPNG(src []byte, output string, stderr io.Writer) error {
	cmd := exec.Command("dot", "-Tpng", "-o", output)
	cmd.Stdin = bytes.NewReader(src)
	cmd.Stderr = stderr
	return cmd.Run()
}
