package docs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const widgetSource = `package com.example;

import org.springframework.stereotype.Service;

@Service
public class Widget {
    public Widget(Logger logger) {
        this.logger = logger;
    }

    private Logger logger;

    /** Renders the widget. */
    public void render() {
    }
}
`

func readArtifact(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err, "expected artifact at %s", path)
	return string(data)
}

func TestRunLocalEndToEnd(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()
	writeSource(t, src, "com/example/Widget.java", widgetSource)

	cfg := Config{SourceDir: src, OutputDir: out, Concurrency: 1}
	require.NoError(t, Run(context.Background(), cfg, nil))

	page := readArtifact(t, filepath.Join(out, "com", "example", "Widget.md"))
	assert.Contains(t, page, "**Type:** Service")
	assert.Contains(t, page, "No description.")
	assert.Contains(t, page, "- render(): Renders the widget.")
	assert.Contains(t, page, "- Logger")

	summary := readArtifact(t, filepath.Join(out, "com", "example", summaryFileName))
	assert.Contains(t, summary, "# Package: com.example")
	assert.Contains(t, summary, "- Widget")

	diagram := readArtifact(t, filepath.Join(out, globalDiagramFileName))
	assert.Contains(t, diagram, "    com_example --> Widget")
}

func TestRunDefaultPackage(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()
	writeSource(t, src, "Standalone.java", "public class Standalone {}\n")

	cfg := Config{SourceDir: src, OutputDir: out}
	require.NoError(t, Run(context.Background(), cfg, nil))

	page := readArtifact(t, filepath.Join(out, "Standalone.md"))
	assert.Contains(t, page, "**Type:** Generic")

	summary := readArtifact(t, filepath.Join(out, summaryFileName))
	assert.Contains(t, summary, "# Package: (default)")

	diagram := readArtifact(t, filepath.Join(out, globalDiagramFileName))
	assert.Contains(t, diagram, "    default --> Standalone")
}

func TestRunDelegated(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()
	writeSource(t, src, "com/example/Widget.java", widgetSource)

	m := &mockEnricher{response: "Enriched Widget docs."}
	cfg := Config{SourceDir: src, OutputDir: out, Delegate: true}
	require.NoError(t, Run(context.Background(), cfg, m))

	page := readArtifact(t, filepath.Join(out, "com", "example", "Widget.md"))
	assert.Equal(t, "Enriched Widget docs.", page)
	require.Len(t, m.calls, 1)
	assert.Contains(t, m.calls[0], "Class: Widget")
}

func TestRunDelegatedFailureDoesNotStopRun(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()
	writeSource(t, src, "com/example/Widget.java", widgetSource)
	writeSource(t, src, "com/example/Gadget.java", "package com.example;\npublic class Gadget {}\n")

	m := &mockEnricher{err: errors.New("backend down")}
	cfg := Config{SourceDir: src, OutputDir: out, Delegate: true}
	require.NoError(t, Run(context.Background(), cfg, m))

	// Failed enrichment still produces a page carrying the error marker,
	// and the type still appears in the summaries.
	widget := readArtifact(t, filepath.Join(out, "com", "example", "Widget.md"))
	assert.Equal(t, "[ERROR] Documentation request failed.", widget)

	gadget := readArtifact(t, filepath.Join(out, "com", "example", "Gadget.md"))
	assert.Equal(t, "[ERROR] Documentation request failed.", gadget)

	summary := readArtifact(t, filepath.Join(out, "com", "example", summaryFileName))
	assert.Contains(t, summary, "- Widget")
	assert.Contains(t, summary, "- Gadget")
}

func TestRunSkipsUnparseableAndEmptyUnits(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()
	writeSource(t, src, "com/example/Widget.java", widgetSource)
	writeSource(t, src, "com/example/package-info.java", "package com.example;\n")

	cfg := Config{SourceDir: src, OutputDir: out}
	require.NoError(t, Run(context.Background(), cfg, nil))

	assert.FileExists(t, filepath.Join(out, "com", "example", "Widget.md"))
	assert.NoFileExists(t, filepath.Join(out, "com", "example", "package-info.md"))
}

func TestRunHonorsRulesFile(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()
	writeSource(t, src, "com/example/Widget.java", widgetSource)
	writeSource(t, src, RulesFileName, "rules:\n  - annotation: Service\n    stereotype: Repository\n")

	cfg := Config{SourceDir: src, OutputDir: out}
	require.NoError(t, Run(context.Background(), cfg, nil))

	page := readArtifact(t, filepath.Join(out, "com", "example", "Widget.md"))
	assert.Contains(t, page, "**Type:** Repository")
}

func TestRunConcurrent(t *testing.T) {
	src := t.TempDir()
	writeSource(t, src, "a/b/X.java", "package a.b;\npublic class X {}\n")
	writeSource(t, src, "a/b/c/Y.java", "package a.b.c;\npublic class Y {}\n")
	writeSource(t, src, "a/b/c/Z.java", "package a.b.c;\npublic class Z {}\n")

	run := func() string {
		out := t.TempDir()
		cfg := Config{SourceDir: src, OutputDir: out, Concurrency: 4}
		require.NoError(t, Run(context.Background(), cfg, nil))
		return readArtifact(t, filepath.Join(out, globalDiagramFileName))
	}

	first := run()
	assert.Contains(t, first, "    a_b --> a_b_c")
	assert.Contains(t, first, "    a_b --> X")
}
