package compiler

import (
	"fmt"
	"io"
	"os"
)

// Logger writes a trace of the pipeline when verbose mode is enabled.
type Logger struct {
	enabled bool
	out     io.Writer
}

// NewLogger creates a logger writing to stderr.
func NewLogger(enabled bool) *Logger {
	return &Logger{
		enabled: enabled,
		out:     os.Stderr,
	}
}

// SetOutput sets the output writer for the logger.
func (l *Logger) SetOutput(w io.Writer) {
	l.out = w
}

// Log prints a formatted message if verbose mode is enabled.
func (l *Logger) Log(format string, args ...interface{}) {
	if l.enabled {
		fmt.Fprintf(l.out, "[regnfa] "+format+"\n", args...)
	}
}

// Section prints a section header if verbose mode is enabled.
func (l *Logger) Section(name string) {
	if l.enabled {
		fmt.Fprintf(l.out, "\n[regnfa] === %s ===\n", name)
	}
}

// Rule records the application of a construction rule and the size of the
// fragment it produced.
func (l *Logger) Rule(rule string, tokenPos int, states, transitions int) {
	if l.enabled {
		fmt.Fprintf(l.out, "[regnfa]   %-7s @%-3d -> %d states, %d transitions\n",
			rule, tokenPos, states, transitions)
	}
}
