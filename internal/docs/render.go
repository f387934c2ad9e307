package docs

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"text/template"

	"github.com/eternity-tn/eldocs/internal/enrich"
)

// Enricher abstracts the external text-generation call for testability.
type Enricher interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Deterministic artifact bodies for delegated-mode failures. A failed
// enrichment never aborts the run; the marker is written instead.
const (
	errBodyMissingConfig = "[ERROR] API config missing."
	errBodyNoContent     = "[ERROR] No content returned."
	errBodyRequestFailed = "[ERROR] Documentation request failed."
)

var localDocTmpl = template.Must(template.New("typedoc").Parse(`---
id: {{.Name}}
title: {{.Name}}
sidebar_label: {{.Name}}
---

# {{.Name}}

**Type:** {{.Stereotype}}

## Description
{{.Doc}}

## Methods
{{range .Methods}}- {{.Name}}(): {{.Doc}}
{{end}}{{if .Dependencies}}
## Dependencies
{{range .Dependencies}}- {{.}}
{{end}}{{end}}
---
`))

// RenderLocal renders the fixed-section Markdown page for a type with no
// external calls. Identical input always produces byte-identical output.
func RenderLocal(doc TypeDoc) (string, error) {
	var b strings.Builder
	if err := localDocTmpl.Execute(&b, doc); err != nil {
		return "", fmt.Errorf("rendering %s: %w", doc.Name, err)
	}
	return b.String(), nil
}

// RenderDelegated builds the prompt for a type and uses the enricher's
// response verbatim as the artifact body. Every failure collapses to one of
// the deterministic inline error markers so the per-unit loop continues.
func RenderDelegated(ctx context.Context, doc TypeDoc, enricher Enricher) string {
	prompt := BuildPrompt(doc)
	if enricher == nil {
		return errBodyMissingConfig
	}

	text, err := enricher.Complete(ctx, prompt)
	switch {
	case err == nil:
		return text
	case errors.Is(err, enrich.ErrMissingConfig):
		log.Printf("WARNING: enrichment for %s skipped: %v", doc.Name, err)
		return errBodyMissingConfig
	case errors.Is(err, enrich.ErrNoContent):
		log.Printf("WARNING: enrichment for %s returned no content", doc.Name)
		return errBodyNoContent
	default:
		log.Printf("WARNING: enrichment for %s failed: %v", doc.Name, err)
		return errBodyRequestFailed
	}
}
