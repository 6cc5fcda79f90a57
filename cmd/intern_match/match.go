package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/internship-matcher/internal/listings"
	"github.com/jonathan/internship-matcher/internal/observability"
	"github.com/jonathan/internship-matcher/internal/pipeline"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Evaluate eligibility and rank internship listings",
	Long:  "Runs the full flow against file inputs: evaluates the applicant's eligibility and, only when eligible, scores and ranks the listing catalog against their skills, interests and location preference.",
	RunE:  runMatch,
}

var (
	matchProfile    string
	matchClaims     string
	matchCatalog    string
	matchCatalogURL string
	matchCriteria   string
	matchLimit      int
	matchOutput     string
	matchVerbose    bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchProfile, "profile", "p", "", "Path to student profile JSON file (required)")
	matchCmd.Flags().StringVarP(&matchClaims, "claims", "c", "", "Path to document claims JSON file")
	matchCmd.Flags().StringVar(&matchCatalog, "catalog", "", "Path to listing catalog JSON file")
	matchCmd.Flags().StringVar(&matchCatalogURL, "catalog-url", "", "URL of an HTML listing catalog page")
	matchCmd.Flags().StringVar(&matchCriteria, "criteria", "", "Path to eligibility criteria JSON file")
	matchCmd.Flags().IntVarP(&matchLimit, "limit", "l", 0, "Maximum results to return (default: from criteria)")
	matchCmd.Flags().StringVarP(&matchOutput, "out", "o", "", "Path to output results JSON file (default: stdout)")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print a formatted match report")

	if err := matchCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	if matchCatalog == "" && matchCatalogURL == "" {
		return fmt.Errorf("either --catalog or --catalog-url is required")
	}
	if matchCatalog != "" && matchCatalogURL != "" {
		return fmt.Errorf("--catalog and --catalog-url are mutually exclusive")
	}

	profile, err := loadProfile(matchProfile)
	if err != nil {
		return err
	}

	claimSet, err := loadClaims(matchClaims)
	if err != nil {
		return err
	}

	criteria, err := loadCriteria(matchCriteria)
	if err != nil {
		return err
	}

	var source listings.Source
	if matchCatalog != "" {
		pool, err := loadCatalog(matchCatalog)
		if err != nil {
			return err
		}
		source = listings.Static(pool)
	} else {
		source = listings.NewHTMLSource(matchCatalogURL)
	}

	result, err := pipeline.Run(context.Background(), pipeline.RunOptions{
		Profile:  profile,
		Claims:   claimSet,
		Source:   source,
		Criteria: criteria,
		Limit:    matchLimit,
	})
	if err != nil {
		return err
	}

	if matchVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintVerdict(result.Verdict)
		printer.PrintResults(result.Results)
	}

	return writeJSONOutput(matchOutput, result)
}
