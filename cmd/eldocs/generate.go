// cmd/eldocs/generate.go
package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/eternity-tn/eldocs/internal/config"
	"github.com/eternity-tn/eldocs/internal/docs"
	"github.com/eternity-tn/eldocs/internal/enrich"
)

func generateCmd() *cobra.Command {
	var (
		configPath      string
		outputFlag      string
		endpointFlag    string
		apiKeyFlag      string
		modelFlag       string
		changedOnlyFlag bool
		localFlag       bool
		debugFlag       bool
		concurrencyFlag int
	)

	cmd := &cobra.Command{
		Use:   "generate [path]",
		Short: "Generate documentation for a Java source tree",
		Long: `Scan a Java source tree, classify each type by its annotations, extract
its dependencies, and write per-type Markdown pages, package summaries,
and a project-wide Mermaid diagram.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			if len(args) > 0 {
				cfg.Source.Dir = args[0]
			}
			if cmd.Flags().Changed("output") {
				cfg.Output.Dir = outputFlag
			}
			if cmd.Flags().Changed("changed-only") {
				cfg.Source.ChangedOnly = changedOnlyFlag
			}
			if cmd.Flags().Changed("concurrency") {
				cfg.Output.Concurrency = concurrencyFlag
			}
			if cmd.Flags().Changed("api-url") {
				cfg.Enrich.Endpoint = endpointFlag
			}
			if cmd.Flags().Changed("model") {
				cfg.Enrich.Model = modelFlag
			}

			delegate := cfg.Enrich.Enabled && !localFlag

			var enricher docs.Enricher
			if delegate {
				key := apiKeyFlag
				if key == "" && !debugFlag {
					key, err = config.ResolveAPIKey(cfg.Enrich.APIKeySource, cfg.Enrich.APIKey, config.APIKeyEnvVar)
					if err != nil {
						// Not fatal: each page gets a deterministic
						// error body instead of enriched text.
						log.Printf("WARNING: API key not resolved: %v", err)
						key = ""
					}
				}
				enricher = enrich.NewClient(enrich.Config{
					Endpoint:          cfg.Enrich.Endpoint,
					APIKey:            key,
					Model:             cfg.Enrich.Model,
					Debug:             debugFlag,
					RequestsPerSecond: cfg.Enrich.RequestsPerSecond,
				})
			}

			return docs.Run(cmd.Context(), docs.Config{
				SourceDir:   cfg.Source.Dir,
				OutputDir:   cfg.Output.Dir,
				ChangedOnly: cfg.Source.ChangedOnly,
				Delegate:    delegate,
				Concurrency: cfg.Output.Concurrency,
			}, enricher)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to config file")
	cmd.Flags().StringVar(&outputFlag, "output", "docs", "output directory")
	cmd.Flags().BoolVar(&changedOnlyFlag, "changed-only", false, "only process files changed in the last commit")
	cmd.Flags().BoolVar(&localFlag, "local", false, "force local template rendering, skipping enrichment")
	cmd.Flags().BoolVar(&debugFlag, "debug", false, "write the built prompts instead of calling the API")
	cmd.Flags().StringVar(&endpointFlag, "api-url", "", "chat-completions endpoint for delegated rendering")
	cmd.Flags().StringVar(&apiKeyFlag, "api-key", "", "API key (overrides config and environment)")
	cmd.Flags().StringVar(&modelFlag, "model", "", "model name for delegated rendering")
	cmd.Flags().IntVar(&concurrencyFlag, "concurrency", 1, "max files processed in parallel")

	return cmd
}
