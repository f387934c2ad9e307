// Package docs turns parsed Java structural facts into documentation
// artifacts: per-type Markdown pages, per-package summaries, and Mermaid
// dependency diagrams, with an optional delegated rendering mode that
// hands the page body to an external text-generation service.
package docs

import "github.com/eternity-tn/eldocs/internal/parser"

// Stereotype is the architectural role of a type, derived from its annotations.
type Stereotype string

// The closed set of stereotypes.
const (
	StereotypeRepository     Stereotype = "Repository"
	StereotypeService        Stereotype = "Service"
	StereotypeRestController Stereotype = "Rest Controller"
	StereotypeController     Stereotype = "Controller"
	StereotypeGeneric        Stereotype = "Generic"
)

// SourceUnit is the structural record of one source file's primary type.
// It is immutable once extracted and discarded after rendering.
type SourceUnit struct {
	Package      string
	Name         string
	Kind         string
	Doc          string
	Annotations  []string
	Methods      []MethodFact
	Fields       []parser.Field
	Constructors []parser.Constructor
}

// MethodFact is one declared method and its doc text, in declaration order.
type MethodFact struct {
	Name string
	Doc  string
}

// TypeDoc is the render-ready view of a type: everything the local template
// and the prompt builder need, and nothing else.
type TypeDoc struct {
	Name         string
	Package      string
	Doc          string
	Stereotype   Stereotype
	Methods      []MethodFact
	Dependencies []string
}
