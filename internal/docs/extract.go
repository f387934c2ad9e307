package docs

import "github.com/eternity-tn/eldocs/internal/parser"

// noDescription is the placeholder used when a type carries no Javadoc.
// Method docs stay empty instead.
const noDescription = "No description."

// Extract builds the structural record for a unit's primary type: the first
// class or interface declared in the file. Returns nil when the unit declares
// no type at all; callers treat that as a non-fatal skip.
func Extract(unit *parser.Unit) *SourceUnit {
	if unit == nil || len(unit.Types) == 0 {
		return nil
	}
	primary := unit.Types[0]

	doc := primary.Doc
	if doc == "" {
		doc = noDescription
	}

	methods := make([]MethodFact, 0, len(primary.Methods))
	for _, m := range primary.Methods {
		methods = append(methods, MethodFact{Name: m.Name, Doc: m.Doc})
	}

	return &SourceUnit{
		Package:      unit.Package,
		Name:         primary.Name,
		Kind:         primary.Kind,
		Doc:          doc,
		Annotations:  primary.Annotations,
		Methods:      methods,
		Fields:       primary.Fields,
		Constructors: primary.Constructors,
	}
}
