// Package main provides the entry point for the internship matcher CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "intern_match",
	Short: "Internship eligibility and matching engine",
	Long:  "intern_match evaluates applicants against the internship scheme's admission rules and, for eligible applicants, ranks internship listings against their skills, interests and location preference.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
