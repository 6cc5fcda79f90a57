package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/internship-matcher/internal/types"
)

// SaveMatchRun persists the verdict and results of one matching request for
// audit. Results are stored as JSON; ineligible runs store an empty array.
func (db *DB) SaveMatchRun(ctx context.Context, profileID uuid.UUID, verdict types.EligibilityVerdict, results []types.MatchResult) (uuid.UUID, error) {
	verdictJSON, err := json.Marshal(verdict)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal verdict: %w", err)
	}
	if results == nil {
		results = []types.MatchResult{}
	}
	resultsJSON, err := json.Marshal(results)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal results: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO match_runs (profile_id, verdict, results)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		profileID, verdictJSON, resultsJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save match run: %w", err)
	}
	return id, nil
}

// ListMatchRuns returns the stored runs for a profile, newest first.
func (db *DB) ListMatchRuns(ctx context.Context, profileID uuid.UUID) ([]MatchRun, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, profile_id, verdict, results, created_at
		 FROM match_runs
		 WHERE profile_id = $1
		 ORDER BY created_at DESC`,
		profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query match runs: %w", err)
	}
	defer rows.Close()

	var runs []MatchRun
	for rows.Next() {
		var run MatchRun
		var verdictJSON, resultsJSON []byte
		if err := rows.Scan(&run.ID, &run.ProfileID, &verdictJSON, &resultsJSON, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match run: %w", err)
		}
		if err := json.Unmarshal(verdictJSON, &run.Verdict); err != nil {
			return nil, fmt.Errorf("failed to unmarshal verdict: %w", err)
		}
		if err := json.Unmarshal(resultsJSON, &run.Results); err != nil {
			return nil, fmt.Errorf("failed to unmarshal results: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read match runs: %w", err)
	}
	return runs, nil
}
