package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/internship-matcher/internal/types"
)

// CreateProfile stores a new student profile and returns its record.
func (db *DB) CreateProfile(ctx context.Context, profile types.StudentProfile) (*ProfileRecord, error) {
	data, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal profile: %w", err)
	}

	var rec ProfileRecord
	var stored []byte
	err = db.pool.QueryRow(ctx,
		`INSERT INTO student_profiles (profile)
		 VALUES ($1)
		 RETURNING id, profile, created_at, updated_at`,
		data,
	).Scan(&rec.ID, &stored, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	if err := json.Unmarshal(stored, &rec.Profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stored profile: %w", err)
	}
	return &rec, nil
}

// GetProfile retrieves a stored profile by ID. Returns nil when not found.
func (db *DB) GetProfile(ctx context.Context, id uuid.UUID) (*ProfileRecord, error) {
	var rec ProfileRecord
	var stored []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, profile, created_at, updated_at
		 FROM student_profiles WHERE id = $1`,
		id,
	).Scan(&rec.ID, &stored, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	if err := json.Unmarshal(stored, &rec.Profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stored profile: %w", err)
	}
	return &rec, nil
}

// UpdateProfile replaces a stored profile. Returns nil when not found.
func (db *DB) UpdateProfile(ctx context.Context, id uuid.UUID, profile types.StudentProfile) (*ProfileRecord, error) {
	data, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal profile: %w", err)
	}

	var rec ProfileRecord
	var stored []byte
	err = db.pool.QueryRow(ctx,
		`UPDATE student_profiles SET profile = $1, updated_at = NOW()
		 WHERE id = $2
		 RETURNING id, profile, created_at, updated_at`,
		data, id,
	).Scan(&rec.ID, &stored, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	if err := json.Unmarshal(stored, &rec.Profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stored profile: %w", err)
	}
	return &rec, nil
}

// DeleteProfile removes a stored profile. Returns false when not found.
func (db *DB) DeleteProfile(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM student_profiles WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete profile: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
