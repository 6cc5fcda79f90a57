package db

import (
	"context"
	"fmt"
)

// schemaStatements creates the tables used by the engine. Idempotent, so it
// runs on every service start.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS student_profiles (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		profile JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS listings (
		id BIGSERIAL PRIMARY KEY,
		company_name TEXT NOT NULL,
		title TEXT NOT NULL,
		location TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		required_skills TEXT[] NOT NULL DEFAULT '{}',
		compensation TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS match_runs (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		profile_id UUID NOT NULL REFERENCES student_profiles(id) ON DELETE CASCADE,
		verdict JSONB NOT NULL,
		results JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_match_runs_profile ON match_runs(profile_id, created_at DESC)`,
}

// EnsureSchema creates the engine's tables if they do not exist yet.
func (db *DB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
