package docs

import (
	"fmt"
	"sort"
	"strings"
)

// The default (empty) package renders under a reserved identifier so the
// diagram never contains an empty node name.
const (
	defaultPackageNode  = "default"
	defaultPackageLabel = "(default)"
)

// nodeID converts a package path into a Mermaid-safe node identifier.
func nodeID(pkg string) string {
	if pkg == "" {
		return defaultPackageNode
	}
	return strings.ReplaceAll(pkg, ".", "_")
}

// subpackagesOf returns the packages exactly one level below pkg, sorted.
func subpackagesOf(pkg string, snapshot map[string][]string) []string {
	prefix := ""
	if pkg != "" {
		prefix = pkg + "."
	}

	var subs []string
	for other := range snapshot {
		if other == pkg || !strings.HasPrefix(other, prefix) {
			continue
		}
		rest := strings.TrimPrefix(other, prefix)
		if rest != "" && !strings.Contains(rest, ".") {
			subs = append(subs, other)
		}
	}
	sort.Strings(subs)
	return subs
}

// BuildPackageSummary renders one package's summary page: its direct types,
// its immediate subpackages, and a Mermaid diagram connecting the package
// node to both.
func BuildPackageSummary(pkg string, snapshot map[string][]string) string {
	label := pkg
	if pkg == "" {
		label = defaultPackageLabel
	}
	subs := subpackagesOf(pkg, snapshot)
	node := nodeID(pkg)

	var b strings.Builder
	fmt.Fprintf(&b, "# Package: %s\n\n", label)

	b.WriteString("## Classes and Interfaces\n")
	for _, name := range snapshot[pkg] {
		fmt.Fprintf(&b, "- %s\n", name)
	}

	b.WriteString("\n## Subpackages\n")
	for _, sub := range subs {
		fmt.Fprintf(&b, "- %s\n", sub)
	}

	b.WriteString("\n## Mermaid Package Diagram (with subpackages)\n")
	b.WriteString("```mermaid\ngraph TD\n")
	for _, name := range snapshot[pkg] {
		fmt.Fprintf(&b, "    %s --> %s\n", node, name)
	}
	for _, sub := range subs {
		fmt.Fprintf(&b, "    %s --> %s\n", node, nodeID(sub))
	}
	b.WriteString("```\n")
	return b.String()
}

// BuildGlobalDiagram renders the whole-project containment diagram: every
// package with edges to its immediate subpackages and to its own types.
// Packages are iterated in sorted order for stable output.
func BuildGlobalDiagram(snapshot map[string][]string) string {
	pkgs := make([]string, 0, len(snapshot))
	for pkg := range snapshot {
		pkgs = append(pkgs, pkg)
	}
	sort.Strings(pkgs)

	var b strings.Builder
	b.WriteString("# Project Package Diagram\n\n")
	b.WriteString("```mermaid\ngraph TD\n")
	for _, pkg := range pkgs {
		node := nodeID(pkg)
		for _, sub := range subpackagesOf(pkg, snapshot) {
			fmt.Fprintf(&b, "    %s --> %s\n", node, nodeID(sub))
		}
		for _, name := range snapshot[pkg] {
			fmt.Fprintf(&b, "    %s --> %s\n", node, name)
		}
	}
	b.WriteString("```\n")
	return b.String()
}
