package regnfa

import (
	"fmt"
	"io"

	"github.com/KromDaniel/regnfa/internal/codegen"
)

// Table names one NFA to include in generated Go source.
type Table struct {
	Name    string
	Pattern string
	NFA     *NFA
}

// GenerateOptions configures Go source generation.
type GenerateOptions struct {
	// Package is the Go package name for the generated code
	Package string

	// OutputFile is where the code is written; ignored by RenderGo
	OutputFile string

	// Tables are emitted as exported variables in order
	Tables []Table
}

// Validate checks if the options are valid.
func (o GenerateOptions) Validate() error {
	if o.Package == "" {
		return fmt.Errorf("package cannot be empty")
	}
	if len(o.Tables) == 0 {
		return fmt.Errorf("at least one table is required")
	}
	return nil
}

func (o GenerateOptions) generator() (*codegen.Generator, error) {
	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	g := codegen.New(o.Package)
	for _, t := range o.Tables {
		if err := g.Add(codegen.Entry{Name: t.Name, Pattern: t.Pattern, NFA: t.NFA}); err != nil {
			return nil, fmt.Errorf("failed to generate %s: %w", t.Name, err)
		}
	}
	return g, nil
}

// GenerateGo writes gofmt'ed Go source declaring every table to
// opts.OutputFile.
func GenerateGo(opts GenerateOptions) error {
	if opts.OutputFile == "" {
		return fmt.Errorf("invalid options: output file cannot be empty")
	}
	g, err := opts.generator()
	if err != nil {
		return err
	}
	return g.Save(opts.OutputFile)
}

// RenderGo writes the same source as GenerateGo to w.
func RenderGo(w io.Writer, opts GenerateOptions) error {
	g, err := opts.generator()
	if err != nil {
		return err
	}
	return g.Render(w)
}
