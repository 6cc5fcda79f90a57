package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/internship-matcher/internal/config"
	"github.com/jonathan/internship-matcher/internal/docai"
	"github.com/jonathan/internship-matcher/internal/listings"
	"github.com/jonathan/internship-matcher/internal/logger"
	"github.com/jonathan/internship-matcher/internal/observability"
	"github.com/jonathan/internship-matcher/internal/pipeline"
	"github.com/jonathan/internship-matcher/internal/types"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full matching flow with document analysis",
	Long:  "Analyzes supporting documents with Gemini, reconciles the extracted claims with the self-reported profile, evaluates eligibility and ranks the listing catalog. Documents are text files named <kind>.txt (id, education, income, address, resume) in the --docs directory.",
	RunE:  runRun,
}

var (
	runConfigPath string
	runProfile    string
	runDocsDir    string
	runCatalog    string
	runCatalogURL string
	runCriteria   string
	runLimit      int
	runOutput     string
	runVerbose    bool
)

func init() {
	runCmd.Flags().StringVar(&runConfigPath, "config", "", "Path to JSON config file with defaults for these flags")
	runCmd.Flags().StringVarP(&runProfile, "profile", "p", "", "Path to student profile JSON file")
	runCmd.Flags().StringVarP(&runDocsDir, "docs", "d", "", "Directory of supporting document text files")
	runCmd.Flags().StringVar(&runCatalog, "catalog", "", "Path to listing catalog JSON file")
	runCmd.Flags().StringVar(&runCatalogURL, "catalog-url", "", "URL of an HTML listing catalog page")
	runCmd.Flags().StringVar(&runCriteria, "criteria", "", "Path to eligibility criteria JSON file")
	runCmd.Flags().IntVarP(&runLimit, "limit", "l", 0, "Maximum results to return (default: from criteria)")
	runCmd.Flags().StringVarP(&runOutput, "out", "o", "", "Path to output JSON file (default: stdout)")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print a formatted match report")

	rootCmd.AddCommand(runCmd)
}

func runRun(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Profile:    runProfile,
		Catalog:    runCatalog,
		CatalogURL: runCatalogURL,
		Criteria:   runCriteria,
		Limit:      runLimit,
		Verbose:    runVerbose,
	}
	if runConfigPath != "" {
		fileCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Profile == "" {
		return fmt.Errorf("--profile is required")
	}
	if cfg.Catalog == "" && cfg.CatalogURL == "" {
		return fmt.Errorf("either --catalog or --catalog-url is required")
	}

	log, err := logger.New(cfg.JSONLogs, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck // stdout sync errors are not actionable

	profile, err := loadProfile(cfg.Profile)
	if err != nil {
		return err
	}

	criteria, err := loadCriteria(cfg.Criteria)
	if err != nil {
		return err
	}

	var source listings.Source
	if cfg.Catalog != "" {
		pool, err := loadCatalog(cfg.Catalog)
		if err != nil {
			return err
		}
		source = listings.Static(pool)
	} else {
		source = listings.NewHTMLSource(cfg.CatalogURL)
	}

	opts := pipeline.RunOptions{
		Profile:  profile,
		Source:   source,
		Criteria: criteria,
		Limit:    cfg.Limit,
		Logger:   log,
	}

	ctx := context.Background()
	if runDocsDir != "" {
		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		if apiKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when --docs is set")
		}

		analyzer, err := docai.NewGeminiAnalyzer(ctx, apiKey, cfg.Model)
		if err != nil {
			return err
		}
		defer analyzer.Close() //nolint:errcheck // best-effort cleanup

		docs, err := loadDocuments(runDocsDir)
		if err != nil {
			return err
		}
		opts.Analyzer = analyzer
		opts.Documents = docs
	}

	result, err := pipeline.Run(ctx, opts)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintVerdict(result.Verdict)
		printer.PrintResults(result.Results)
	}

	return writeJSONOutput(runOutput, result)
}

// loadDocuments reads <kind>.txt files from dir. Files that do not map to a
// known document kind are skipped with a warning.
func loadDocuments(dir string) ([]docai.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read documents directory %s: %w", dir, err)
	}

	var docs []docai.Document
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		kind := types.DocumentKind(strings.TrimSuffix(entry.Name(), ".txt"))
		if !knownDocumentKind(kind) {
			fmt.Fprintf(os.Stderr, "Warning: skipping %s: unknown document kind\n", entry.Name())
			continue
		}

		text, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read document %s: %w", entry.Name(), err)
		}
		docs = append(docs, docai.Document{Kind: kind, Text: string(text)})
	}
	return docs, nil
}

func knownDocumentKind(kind types.DocumentKind) bool {
	for _, k := range types.DocumentKinds {
		if k == kind {
			return true
		}
	}
	return false
}
