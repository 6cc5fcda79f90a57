package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/internship-matcher/internal/db"
	"github.com/jonathan/internship-matcher/internal/listings"
	"github.com/jonathan/internship-matcher/internal/types"
)

var (
	importCatalogFile string
	importCatalogURL  string
)

var importCatalogCmd = &cobra.Command{
	Use:   "import-catalog",
	Short: "Load a listing catalog into the database",
	Long:  "Replaces the stored listing catalog with the contents of a JSON file or an HTML catalog page. Requires DATABASE_URL.",
	RunE:  runImportCatalog,
}

func init() {
	importCatalogCmd.Flags().StringVar(&importCatalogFile, "catalog", "", "Path to listing catalog JSON file")
	importCatalogCmd.Flags().StringVar(&importCatalogURL, "catalog-url", "", "URL of an HTML listing catalog page")
	rootCmd.AddCommand(importCatalogCmd)
}

func runImportCatalog(_ *cobra.Command, _ []string) error {
	if (importCatalogFile == "") == (importCatalogURL == "") {
		return fmt.Errorf("exactly one of --catalog or --catalog-url is required")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	ctx := context.Background()

	var pool []types.InternshipListing
	var err error
	if importCatalogFile != "" {
		pool, err = loadCatalog(importCatalogFile)
	} else {
		pool, err = listings.NewHTMLSource(importCatalogURL).FetchCandidates(ctx, types.StudentProfile{})
	}
	if err != nil {
		return err
	}
	pool = listings.Dedupe(pool)

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}
	if err := database.ReplaceCatalog(ctx, pool); err != nil {
		return err
	}

	fmt.Printf("Imported %d listings\n", len(pool))
	return nil
}
