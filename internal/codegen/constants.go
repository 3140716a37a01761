// Package codegen emits Go source holding constructed automata as static
// tables.
package codegen

import (
	"fmt"
	"go/token"
)

// Identifiers used in generated code
const (
	EpsilonName   = "Epsilon"
	EdgeTypeName  = "Edge"
	TableTypeName = "Automaton"
	PatternField  = "Pattern"
	StartField    = "Start"
	FinalsField   = "Finals"
	StatesField   = "States"
	AlphabetField = "Alphabet"
	EdgesField    = "Edges"
	FromField     = "From"
	ToField       = "To"
	LabelsField   = "Labels"
)

// reservedNames are the identifiers every generated file declares itself.
var reservedNames = map[string]bool{
	EpsilonName:   true,
	EdgeTypeName:  true,
	TableTypeName: true,
}

// StateName returns a readable name for a state, as used in comments.
func StateName(id int) string {
	return fmt.Sprintf("s%d", id)
}

// ValidName reports whether name can be used as an exported variable in a
// generated file.
func ValidName(name string) error {
	if !token.IsIdentifier(name) {
		return fmt.Errorf("%q is not a Go identifier", name)
	}
	if !token.IsExported(name) {
		return fmt.Errorf("%q must be exported", name)
	}
	if reservedNames[name] {
		return fmt.Errorf("%q is reserved by the generated file", name)
	}
	return nil
}
