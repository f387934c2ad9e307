package docs

import "github.com/eternity-tn/eldocs/internal/parser"

// injectionMarker tags fields populated by the dependency-injection
// container; only such fields contribute to the dependency set.
const injectionMarker = "Autowired"

// Dependencies derives the distinct simple type names the unit depends on:
// injected fields first, then the parameters of every constructor, each in
// declaration order. The order is deterministic across runs; duplicates are
// dropped on first sight. An empty result is valid.
func Dependencies(unit *SourceUnit) []string {
	seen := make(map[string]bool)
	var deps []string
	add := func(ref parser.TypeRef) {
		if !ref.Simple || seen[ref.Name] {
			return
		}
		seen[ref.Name] = true
		deps = append(deps, ref.Name)
	}

	for _, f := range unit.Fields {
		if hasAnnotation(f.Annotations, injectionMarker) {
			add(f.Type)
		}
	}
	for _, c := range unit.Constructors {
		for _, p := range c.Params {
			add(p.Type)
		}
	}
	return deps
}

func hasAnnotation(annotations []string, name string) bool {
	for _, a := range annotations {
		if a == name {
			return true
		}
	}
	return false
}
