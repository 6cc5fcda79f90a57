package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/internship-matcher/internal/eligibility"
	"github.com/jonathan/internship-matcher/internal/observability"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate an applicant's eligibility",
	Long:  "Reconciles a student profile with its document claims and applies the scheme's admission rules, producing an eligibility verdict JSON. Ineligibility is a normal outcome, not an error.",
	RunE:  runEvaluate,
}

var (
	evaluateProfile  string
	evaluateClaims   string
	evaluateCriteria string
	evaluateOutput   string
	evaluateVerbose  bool
)

func init() {
	evaluateCmd.Flags().StringVarP(&evaluateProfile, "profile", "p", "", "Path to student profile JSON file (required)")
	evaluateCmd.Flags().StringVarP(&evaluateClaims, "claims", "c", "", "Path to document claims JSON file")
	evaluateCmd.Flags().StringVar(&evaluateCriteria, "criteria", "", "Path to eligibility criteria JSON file")
	evaluateCmd.Flags().StringVarP(&evaluateOutput, "out", "o", "", "Path to output verdict JSON file (default: stdout)")
	evaluateCmd.Flags().BoolVarP(&evaluateVerbose, "verbose", "v", false, "Print a formatted verdict report")

	if err := evaluateCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(_ *cobra.Command, _ []string) error {
	profile, err := loadProfile(evaluateProfile)
	if err != nil {
		return err
	}
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}

	claimSet, err := loadClaims(evaluateClaims)
	if err != nil {
		return err
	}

	criteria, err := loadCriteria(evaluateCriteria)
	if err != nil {
		return err
	}

	verdict := eligibility.Evaluate(profile, claimSet, criteria)

	if evaluateVerbose {
		observability.NewPrinter(os.Stdout).PrintVerdict(verdict)
	}

	return writeJSONOutput(evaluateOutput, verdict)
}
