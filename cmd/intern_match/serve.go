package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/internship-matcher/internal/db"
	"github.com/jonathan/internship-matcher/internal/docai"
	"github.com/jonathan/internship-matcher/internal/eligibility"
	"github.com/jonathan/internship-matcher/internal/listings"
	"github.com/jonathan/internship-matcher/internal/logger"
	"github.com/jonathan/internship-matcher/internal/server"
)

var (
	servePort       int
	serveCatalog    string
	serveCatalogURL string
	serveCriteria   string
	serveJSONLogs   bool
	serveDebug      bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes REST endpoints for eligibility checks
and listing matching. Set DATABASE_URL to enable profile storage and
GEMINI_API_KEY to enable document analysis; both are optional.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveCatalog, "catalog", "", "Path to listing catalog JSON file used as the default listing source")
	serveCmd.Flags().StringVar(&serveCatalogURL, "catalog-url", "", "URL of an HTML listing catalog page used as the default listing source")
	serveCmd.Flags().StringVar(&serveCriteria, "criteria", "", "Path to eligibility criteria JSON file")
	serveCmd.Flags().BoolVar(&serveJSONLogs, "json-logs", false, "Emit JSON-encoded logs")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	if serveCatalog != "" && serveCatalogURL != "" {
		return fmt.Errorf("--catalog and --catalog-url are mutually exclusive")
	}

	log, err := logger.New(serveJSONLogs, serveDebug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck // stdout sync errors are not actionable

	criteria := eligibility.DefaultCriteria()
	if serveCriteria != "" {
		criteria, err = eligibility.LoadCriteria(serveCriteria)
		if err != nil {
			return err
		}
	}

	ctx := context.Background()

	var database *db.DB
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		database, err = db.Connect(ctx, databaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()
		if err := database.EnsureSchema(ctx); err != nil {
			return err
		}
		log.Info("connected to database")
	}

	var analyzer docai.Analyzer
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		gemini, err := docai.NewGeminiAnalyzer(ctx, apiKey, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			return fmt.Errorf("failed to create analyzer: %w", err)
		}
		defer gemini.Close() //nolint:errcheck // best-effort cleanup
		analyzer = gemini
		log.Info("document analysis enabled")
	}

	var source listings.Source
	switch {
	case serveCatalog != "":
		pool, err := loadCatalog(serveCatalog)
		if err != nil {
			return err
		}
		source = listings.Static(pool)
		log.Info("using static listing catalog", zap.Int("listings", len(pool)))
	case serveCatalogURL != "":
		source = listings.NewHTMLSource(serveCatalogURL)
	case database != nil:
		source = database
	}

	srv := server.New(server.Config{
		Port:     servePort,
		Database: database,
		Analyzer: analyzer,
		Source:   source,
		Criteria: criteria,
		Logger:   log,
	})

	return srv.Start()
}
