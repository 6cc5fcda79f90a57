package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/internship-matcher/internal/types"
)

// ProfileRecord is a stored student profile with its identity and timestamps.
type ProfileRecord struct {
	ID        uuid.UUID            `json:"id"`
	Profile   types.StudentProfile `json:"profile"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// MatchRun is a persisted record of one orchestrated matching request: the
// verdict and the ranked results, stored as JSON for auditability.
type MatchRun struct {
	ID        uuid.UUID                `json:"id"`
	ProfileID uuid.UUID                `json:"profile_id"`
	Verdict   types.EligibilityVerdict `json:"verdict"`
	Results   []types.MatchResult      `json:"results"`
	CreatedAt time.Time                `json:"created_at"`
}
