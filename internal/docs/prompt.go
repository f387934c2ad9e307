package docs

import (
	"fmt"
	"strings"
)

// Prompt fragments. The wording and order are load-bearing: delegated-mode
// golden tests compare against these literals.
const (
	promptHeader     = "Generate documentation in Markdown format for the following Java class.\n"
	promptDepTree    = "\nDependencies (tree):\n"
	promptDrawTree   = "\nDraw a dependency tree showing how this class depends on these objects.\n"
	promptRepository = "\nThis is a Spring Data Repository. Document its purpose, main queries, and usage examples."
	promptService    = "\nThis is a Service class. Document its business logic, main responsibilities, and how it interacts with other layers."
	promptController = "\nThis is a REST Controller. Document its endpoints, request/response models, and example usages."
	promptGeneric    = "\nProvide a general overview, usage, and responsibilities."
	promptDiagrams   = "\nInclude diagrams and summary overview where appropriate."
)

// BuildPrompt assembles the delegated-mode request text for a type: identity
// block, method enumeration, optional dependency-tree block, a
// stereotype-specific narrative instruction, and the diagrams trailer.
// Pure function of its input.
func BuildPrompt(doc TypeDoc) string {
	var b strings.Builder
	b.WriteString(promptHeader)
	fmt.Fprintf(&b, "Class: %s\n", doc.Name)
	fmt.Fprintf(&b, "Type: %s\n", doc.Stereotype)
	fmt.Fprintf(&b, "Description: %s\n", doc.Doc)
	b.WriteString("Methods:\n")
	for _, m := range doc.Methods {
		fmt.Fprintf(&b, "- %s(): %s\n", m.Name, m.Doc)
	}

	if len(doc.Dependencies) > 0 {
		b.WriteString(promptDepTree)
		for _, dep := range doc.Dependencies {
			fmt.Fprintf(&b, "- %s\n", dep)
		}
		b.WriteString(promptDrawTree)
	}

	switch doc.Stereotype {
	case StereotypeRepository:
		b.WriteString(promptRepository)
	case StereotypeService:
		b.WriteString(promptService)
	case StereotypeRestController, StereotypeController:
		b.WriteString(promptController)
	default:
		b.WriteString(promptGeneric)
	}

	b.WriteString(promptDiagrams)
	return b.String()
}
