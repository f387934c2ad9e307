package docs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rule maps an annotation name to a stereotype. Rules are evaluated in
// order; the first rule whose annotation appears on the type wins.
type Rule struct {
	Annotation string     `yaml:"annotation"`
	Stereotype Stereotype `yaml:"stereotype"`
}

// DefaultRules returns the built-in classification table. The order is the
// priority: a type annotated with both @Controller and @Repository
// classifies as Repository.
func DefaultRules() []Rule {
	return []Rule{
		{Annotation: "Repository", Stereotype: StereotypeRepository},
		{Annotation: "Service", Stereotype: StereotypeService},
		{Annotation: "RestController", Stereotype: StereotypeRestController},
		{Annotation: "Controller", Stereotype: StereotypeController},
	}
}

// Classify returns the stereotype of the first rule whose annotation appears
// in the type's annotation list, or Generic when none matches.
func Classify(annotations []string, rules []Rule) Stereotype {
	for _, rule := range rules {
		for _, ann := range annotations {
			if ann == rule.Annotation {
				return rule.Stereotype
			}
		}
	}
	return StereotypeGeneric
}

// RulesFileName is the optional project-level classification override file,
// looked up in the source root.
const RulesFileName = ".eldocs.yaml"

type rulesFile struct {
	Rules []Rule `yaml:"rules"`
}

var knownStereotypes = map[Stereotype]bool{
	StereotypeRepository:     true,
	StereotypeService:        true,
	StereotypeRestController: true,
	StereotypeController:     true,
	StereotypeGeneric:        true,
}

// LoadRules reads the classification table from dir's rules file. Returns
// nil when the file does not exist or is empty, in which case callers fall
// back to DefaultRules.
func LoadRules(dir string) ([]Rule, error) {
	data, err := os.ReadFile(filepath.Join(dir, RulesFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", RulesFileName, err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil, nil
	}

	var rf rulesFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", RulesFileName, err)
	}

	for i, rule := range rf.Rules {
		if rule.Annotation == "" {
			return nil, fmt.Errorf("%s: rule %d has no annotation", RulesFileName, i)
		}
		if !knownStereotypes[rule.Stereotype] {
			return nil, fmt.Errorf("%s: rule %d has unknown stereotype %q", RulesFileName, i, rule.Stereotype)
		}
	}
	return rf.Rules, nil
}
