package matching

import (
	"math"
	"sort"

	"github.com/jonathan/internship-matcher/internal/eligibility"
	"github.com/jonathan/internship-matcher/internal/types"
)

// DefaultLimit is the number of results returned when no limit is configured.
const DefaultLimit = 10

// Match scores the candidate listings against an eligible reconciled profile
// and returns a ranked, size-bounded result. Callers must only invoke it for
// profiles that passed eligibility; the orchestrator enforces that invariant.
//
// Ordering is fully deterministic: descending composite score, then descending
// raw skill score, then ascending company name. Listings scoring zero on all
// three components are excluded regardless of limit. An empty listing input
// yields an empty result, not an error.
func Match(profile eligibility.ReconciledProfile, listings []types.InternshipListing, limit int) []types.MatchResult {
	if limit <= 0 {
		limit = DefaultLimit
	}

	profileSkills := normalizeSet(profile.Skills)
	interests := normalizeSet(profile.Interests)

	results := make([]types.MatchResult, 0, len(listings))
	for _, listing := range listings {
		skillScore := computeSkillScore(profileSkills, listing.RequiredSkills)
		interestScore := computeInterestScore(interests, listing.Title, listing.Description)
		locationScore := computeLocationScore(profile.LocationPreference, listing.Location)

		if skillScore == 0 && interestScore == 0 && locationScore == 0 {
			continue
		}

		composite := skillWeight*skillScore +
			interestWeight*interestScore +
			locationWeight*locationScore

		results = append(results, types.MatchResult{
			Listing:       listing,
			Score:         int(math.Round(100 * composite)),
			SkillScore:    skillScore,
			InterestScore: interestScore,
			LocationScore: locationScore,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		if results[i].SkillScore != results[j].SkillScore {
			return results[i].SkillScore > results[j].SkillScore
		}
		return results[i].Listing.CompanyName < results[j].Listing.CompanyName
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}
