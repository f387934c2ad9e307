package docs

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/eternity-tn/eldocs/internal/parser"
)

// Config holds all pipeline configuration, regardless of which host surface
// (CLI flags, config file) produced it.
type Config struct {
	SourceDir   string
	OutputDir   string
	ChangedOnly bool
	Delegate    bool // render via the enricher instead of the local template
	Concurrency int  // parallel units; 1 processes sequentially
}

const (
	summaryFileName       = "package-summary.md"
	globalDiagramFileName = "project-package-diagram.md"
)

// Run executes the full pipeline: list sources, process each unit
// (parse -> extract -> classify -> render -> write -> register), then emit
// per-package summaries and the project diagram from the registry snapshot.
// Per-unit failures are logged and skipped; only the inability to enumerate
// inputs fails the run.
func Run(ctx context.Context, cfg Config, enricher Enricher) error {
	files, err := ListSources(ctx, cfg.SourceDir, cfg.ChangedOnly)
	if err != nil {
		return fmt.Errorf("listing sources in %s: %w", cfg.SourceDir, err)
	}

	rules, err := LoadRules(cfg.SourceDir)
	if err != nil {
		return fmt.Errorf("loading stereotype rules: %w", err)
	}
	if rules == nil {
		rules = DefaultRules()
	}

	fmt.Fprintf(os.Stderr, "eldocs: processing %d files from %s...\n", len(files), cfg.SourceDir)

	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	registry := NewRegistry()
	p := pool.New().WithMaxGoroutines(concurrency)
	for _, rel := range files {
		rel := rel
		p.Go(func() {
			processUnit(ctx, cfg, rel, rules, enricher, registry)
		})
	}
	p.Wait()

	snapshot := registry.Snapshot()
	pkgs := make([]string, 0, len(snapshot))
	for pkg := range snapshot {
		pkgs = append(pkgs, pkg)
	}
	sort.Strings(pkgs)

	fmt.Fprintf(os.Stderr, "eldocs: writing summaries for %d packages...\n", len(pkgs))
	for _, pkg := range pkgs {
		path := filepath.Join(packageDir(cfg.OutputDir, pkg), summaryFileName)
		if err := WriteArtifact(path, BuildPackageSummary(pkg, snapshot)); err != nil {
			return fmt.Errorf("package summary for %q: %w", pkg, err)
		}
	}

	diagramPath := filepath.Join(cfg.OutputDir, globalDiagramFileName)
	if err := WriteArtifact(diagramPath, BuildGlobalDiagram(snapshot)); err != nil {
		return fmt.Errorf("project diagram: %w", err)
	}

	fmt.Fprintf(os.Stderr, "eldocs: done.\n")
	return nil
}

// processUnit handles one source file end to end. All failures are
// non-fatal: they log a diagnostic and leave the rest of the run alone.
// Each call creates its own parser because tree-sitter parsers are not
// safe for concurrent use.
func processUnit(ctx context.Context, cfg Config, rel string, rules []Rule, enricher Enricher, registry *Registry) {
	source, err := os.ReadFile(filepath.Join(cfg.SourceDir, rel))
	if err != nil {
		log.Printf("WARNING: reading %s: %v", rel, err)
		return
	}

	unit, err := parser.NewParser().ParseUnit(rel, source)
	if err != nil {
		log.Printf("WARNING: parsing %s failed: %v", rel, err)
		return
	}

	su := Extract(unit)
	if su == nil {
		log.Printf("WARNING: no class or interface found in %s, skipping", rel)
		return
	}

	doc := TypeDoc{
		Name:         su.Name,
		Package:      su.Package,
		Doc:          su.Doc,
		Stereotype:   Classify(su.Annotations, rules),
		Methods:      su.Methods,
		Dependencies: Dependencies(su),
	}

	var body string
	if cfg.Delegate {
		body = RenderDelegated(ctx, doc, enricher)
	} else {
		body, err = RenderLocal(doc)
		if err != nil {
			log.Printf("WARNING: %v", err)
			return
		}
	}

	out := filepath.Join(packageDir(cfg.OutputDir, su.Package), su.Name+".md")
	if err := WriteArtifact(out, body); err != nil {
		log.Printf("WARNING: %v", err)
		return
	}

	registry.Register(su.Package, su.Name)
}

// packageDir maps a dot-separated package path onto a directory under root.
func packageDir(root, pkg string) string {
	if pkg == "" {
		return root
	}
	return filepath.Join(root, filepath.Join(strings.Split(pkg, ".")...))
}
