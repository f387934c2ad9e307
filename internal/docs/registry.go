package docs

import "sync"

// Registry accumulates the type names discovered per package during one
// run. It is constructed fresh per invocation and passed explicitly into
// each processing step; there is deliberately no package-level instance.
type Registry struct {
	mu       sync.Mutex
	packages map[string][]string
}

// NewRegistry returns an empty, run-scoped registry.
func NewRegistry() *Registry {
	return &Registry{packages: make(map[string][]string)}
}

// Register appends typeName to the package's list, creating the entry if
// absent. Registration never deduplicates: each unit is expected to be
// processed exactly once per run.
func (r *Registry) Register(pkg, typeName string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.packages[pkg] = append(r.packages[pkg], typeName)
}

// Snapshot returns a copy of the registry contents for the summary and
// diagram passes, safe to read after all units are processed.
func (r *Registry) Snapshot() map[string][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	snapshot := make(map[string][]string, len(r.packages))
	for pkg, names := range r.packages {
		snapshot[pkg] = append([]string(nil), names...)
	}
	return snapshot
}
