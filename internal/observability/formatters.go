// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/internship-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxSkillsToShow is the number of required skills displayed per listing
	maxSkillsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintVerdict outputs a human-readable summary of an eligibility verdict.
func (p *Printer) PrintVerdict(verdict types.EligibilityVerdict) {
	var sb strings.Builder

	if verdict.Eligible {
		sb.WriteString("Eligible: yes\n")
		sb.WriteString("All admission rules passed")
	} else {
		sb.WriteString("Eligible: no\n")
		sb.WriteString(fmt.Sprintf("Violated rules (%d):\n", len(verdict.ViolatedRules)))
		for _, rule := range verdict.ViolatedRules {
			sb.WriteString(fmt.Sprintf("  - %s\n", rule))
		}
	}

	p.printBox("Eligibility Verdict", strings.TrimRight(sb.String(), "\n"))
}

// PrintResults outputs a ranked listing summary.
func (p *Printer) PrintResults(results []types.MatchResult) {
	if len(results) == 0 {
		p.printBox("Matches", "No listings matched")
		return
	}

	var sb strings.Builder
	for i, result := range results {
		sb.WriteString(fmt.Sprintf("%d. [%3d] %s - %s\n",
			i+1, result.Score, result.Listing.CompanyName, result.Listing.Title))
		sb.WriteString(fmt.Sprintf("   %s", result.Listing.Location))
		if skills := summarizeSkills(result.Listing.RequiredSkills); skills != "" {
			sb.WriteString(" | " + skills)
		}
		sb.WriteString("\n")
	}

	p.printBox(fmt.Sprintf("Matches (%d)", len(results)), strings.TrimRight(sb.String(), "\n"))
}

func summarizeSkills(skills []string) string {
	if len(skills) == 0 {
		return ""
	}
	shown := skills
	suffix := ""
	if len(shown) > maxSkillsToShow {
		shown = shown[:maxSkillsToShow]
		suffix = fmt.Sprintf(" (+%d more)", len(skills)-maxSkillsToShow)
	}
	return strings.Join(shown, ", ") + suffix
}
