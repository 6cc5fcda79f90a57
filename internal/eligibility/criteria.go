// Package eligibility implements the internship scheme's admission rule set.
package eligibility

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Criteria is the scheme's admission rule configuration. The thresholds and
// tier lists mirror the published scheme guidelines but are configuration
// data, not code: deployments load them from a JSON file and may adjust them
// without touching the evaluator.
type Criteria struct {
	MinAge               int      `json:"min_age,omitempty"`
	MaxAge               int      `json:"max_age,omitempty"`
	IncomeCeiling        float64  `json:"income_ceiling,omitempty"`
	QualificationFloor   []string `json:"qualification_floor,omitempty"`
	QualificationCeiling []string `json:"qualification_ceiling,omitempty"`
	PremierInstitutes    []string `json:"premier_institutes,omitempty"`
	MatchLimit           int      `json:"match_limit,omitempty"`
}

// DefaultCriteria returns the compiled-in rule configuration for the scheme:
// ages 21-24, family income at most 8,00,000 per year, Class 10 through
// graduate degrees accepted, professional and postgraduate tiers excluded.
func DefaultCriteria() *Criteria {
	return &Criteria{
		MinAge:        21,
		MaxAge:        24,
		IncomeCeiling: 800000,
		QualificationFloor: []string{
			"class 10", "10th", "iti", "polytechnic", "diploma",
			"graduate", "bachelor", "ba", "bsc", "bcom", "btech", "be", "bba", "bca",
		},
		QualificationCeiling: []string{
			"mba", "phd", "doctorate", "ca", "cs", "mbbs",
			"master", "mtech", "ma", "msc", "mcom", "llm", "pgdm",
		},
		PremierInstitutes: []string{
			"iit", "iim", "nid", "iiser", "nit", "nlu", "aiims", "iisc",
		},
		MatchLimit: 10,
	}
}

// LoadCriteria reads criteria from a JSON file, filling unset fields from the
// compiled-in defaults.
func LoadCriteria(path string) (*Criteria, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read criteria file %s: %w", path, err)
	}

	var c Criteria
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse criteria JSON: %w", err)
	}

	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// applyDefaults fills zero-valued fields from DefaultCriteria.
func (c *Criteria) applyDefaults() {
	defaults := DefaultCriteria()
	if c.MinAge == 0 {
		c.MinAge = defaults.MinAge
	}
	if c.MaxAge == 0 {
		c.MaxAge = defaults.MaxAge
	}
	if c.IncomeCeiling == 0 {
		c.IncomeCeiling = defaults.IncomeCeiling
	}
	if len(c.QualificationFloor) == 0 {
		c.QualificationFloor = defaults.QualificationFloor
	}
	if len(c.QualificationCeiling) == 0 {
		c.QualificationCeiling = defaults.QualificationCeiling
	}
	if len(c.PremierInstitutes) == 0 {
		c.PremierInstitutes = defaults.PremierInstitutes
	}
	if c.MatchLimit == 0 {
		c.MatchLimit = defaults.MatchLimit
	}
}

// Validate checks that the criteria values are coherent.
func (c *Criteria) Validate() error {
	if c.MinAge < 0 || c.MaxAge < c.MinAge {
		return fmt.Errorf("criteria error: invalid age range %d-%d", c.MinAge, c.MaxAge)
	}
	if c.IncomeCeiling < 0 {
		return fmt.Errorf("criteria error: income ceiling must be non-negative")
	}
	if c.MatchLimit < 1 {
		return fmt.Errorf("criteria error: match limit must be at least 1")
	}
	return nil
}

// MatchesTier reports whether free-text qualification matches any of the tier
// keywords. Single-word keywords must match a whole token of the text so that
// e.g. "ca" does not fire on "BCA"; multi-word keywords match on normalized
// substrings.
func MatchesTier(qualification string, tiers []string) bool {
	normalized := normalizeText(qualification)
	if normalized == "" {
		return false
	}
	tokens := make(map[string]bool)
	for _, tok := range strings.Fields(normalized) {
		tokens[tok] = true
	}

	for _, tier := range tiers {
		keyword := normalizeText(tier)
		if keyword == "" {
			continue
		}
		if strings.Contains(keyword, " ") {
			if strings.Contains(normalized, keyword) {
				return true
			}
			continue
		}
		if tokens[keyword] {
			return true
		}
	}
	return false
}

// IsPremierInstitute reports whether the institute name matches the configured
// premier-institute list.
func (c *Criteria) IsPremierInstitute(institute string) bool {
	return MatchesTier(institute, c.PremierInstitutes)
}

// normalizeText lowercases and strips punctuation so "B.Tech" and "btech"
// compare equal.
func normalizeText(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '\t':
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
