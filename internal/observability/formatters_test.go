package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/internship-matcher/internal/types"
)

func TestPrintVerdict_Eligible(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintVerdict(types.EligibilityVerdict{Eligible: true})

	out := buf.String()
	assert.Contains(t, out, "Eligibility Verdict")
	assert.Contains(t, out, "Eligible: yes")
}

func TestPrintVerdict_ListsViolatedRules(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintVerdict(types.EligibilityVerdict{
		Eligible:      false,
		ViolatedRules: []types.RuleID{types.RuleAgeRange, types.RuleIncomeCeiling},
	})

	out := buf.String()
	assert.Contains(t, out, "Eligible: no")
	assert.Contains(t, out, "age-range")
	assert.Contains(t, out, "income-ceiling")
}

func TestPrintResults_RankedListings(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintResults([]types.MatchResult{
		{
			Listing: types.InternshipListing{
				CompanyName:    "Acme Analytics",
				Title:          "Data Analyst Intern",
				Location:       "Bangalore",
				RequiredSkills: []string{"Python", "SQL"},
			},
			Score: 87,
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Matches (1)")
	assert.Contains(t, out, "Acme Analytics")
	assert.Contains(t, out, "87")
}

func TestPrintResults_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintResults(nil)

	assert.Contains(t, buf.String(), "No listings matched")
}

func TestSummarizeSkills_TruncatesLongLists(t *testing.T) {
	skills := []string{"a", "b", "c", "d", "e", "f", "g"}

	out := summarizeSkills(skills)

	assert.Contains(t, out, "(+2 more)")
	assert.NotContains(t, out, "f")
}

func TestSummarizeSkills_Empty(t *testing.T) {
	assert.Empty(t, summarizeSkills(nil))
}
