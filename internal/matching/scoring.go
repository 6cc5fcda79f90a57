// Package matching computes relevance scores and rankings for internship listings.
package matching

import (
	"strings"
)

// Weights for the scoring components.
const (
	skillWeight    = 0.5
	interestWeight = 0.3
	locationWeight = 0.2
)

// partialLocationScore is awarded when listing and preference are not equal
// but share a region token (same city or state).
const partialLocationScore = 0.3

// remoteLocation is the sentinel location that matches any preference.
const remoteLocation = "remote"

// computeSkillScore calculates the fraction of the listing's required skills
// covered by the profile's skills, case-insensitive, clamped to [0,1].
func computeSkillScore(profileSkills map[string]bool, requiredSkills []string) float64 {
	required := normalizeSet(requiredSkills)
	if len(required) == 0 {
		return 0.0
	}

	matched := 0
	for skill := range required {
		if profileSkills[skill] {
			matched++
		}
	}

	score := float64(matched) / float64(len(required))
	return clamp01(score)
}

// computeInterestScore calculates the fraction of the profile's interests
// that appear as a substring of the listing title or description.
func computeInterestScore(interests map[string]bool, title, description string) float64 {
	if len(interests) == 0 {
		return 0.0
	}

	haystack := strings.ToLower(title + " " + description)
	matched := 0
	for interest := range interests {
		if strings.Contains(haystack, interest) {
			matched++
		}
	}

	score := float64(matched) / float64(len(interests))
	return clamp01(score)
}

// computeLocationScore scores the listing location against the preference:
// 1.0 for an exact match or when either side is remote, partial credit when
// the two share a region token, 0 otherwise.
func computeLocationScore(preference, location string) float64 {
	pref := strings.ToLower(strings.TrimSpace(preference))
	loc := strings.ToLower(strings.TrimSpace(location))
	if pref == "" || loc == "" {
		return 0.0
	}

	if pref == loc || pref == remoteLocation || loc == remoteLocation {
		return 1.0
	}

	if sharesRegionToken(pref, loc) {
		return partialLocationScore
	}
	return 0.0
}

// sharesRegionToken reports whether the two location strings share a token,
// e.g. "Bangalore, Karnataka" and "bangalore". Short tokens are ignored to
// avoid spurious matches on connectives.
func sharesRegionToken(a, b string) bool {
	tokensA := regionTokens(a)
	for tok := range regionTokens(b) {
		if len(tok) < 3 {
			continue
		}
		if tokensA[tok] {
			return true
		}
	}
	return false
}

func regionTokens(s string) map[string]bool {
	tokens := make(map[string]bool)
	for _, tok := range strings.FieldsFunc(s, func(r rune) bool {
		return !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'))
	}) {
		tokens[tok] = true
	}
	return tokens
}

// normalizeSet lowercases, trims and deduplicates a list of terms.
func normalizeSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		normalized := strings.ToLower(strings.TrimSpace(v))
		if normalized != "" {
			set[normalized] = true
		}
	}
	return set
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
