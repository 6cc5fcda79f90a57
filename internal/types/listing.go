package types

// InternshipListing is one opportunity from the external listing pool.
// Listings are read-only inputs; the engine never creates or stores them.
type InternshipListing struct {
	CompanyName    string   `json:"company_name"`
	Title          string   `json:"title"`
	Location       string   `json:"location"`
	Description    string   `json:"description,omitempty"`
	RequiredSkills []string `json:"required_skills,omitempty"`
	Compensation   string   `json:"compensation,omitempty"`
}

// MatchResult pairs a listing with its relevance score for one request.
// Score is the rounded 0-100 composite; the component scores are kept for
// reporting and for deterministic tie-breaking.
type MatchResult struct {
	Listing       InternshipListing `json:"listing"`
	Score         int               `json:"score"`
	SkillScore    float64           `json:"skill_score"`
	InterestScore float64           `json:"interest_score"`
	LocationScore float64           `json:"location_score"`
}
