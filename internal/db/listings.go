package db

import (
	"context"
	"fmt"

	"github.com/jonathan/internship-matcher/internal/types"
)

// ReplaceCatalog atomically replaces the stored listing catalog. Used by
// catalog import jobs.
func (db *DB) ReplaceCatalog(ctx context.Context, pool []types.InternshipListing) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin catalog transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.Exec(ctx, `DELETE FROM listings`); err != nil {
		return fmt.Errorf("failed to clear catalog: %w", err)
	}

	for _, listing := range pool {
		_, err := tx.Exec(ctx,
			`INSERT INTO listings (company_name, title, location, description, required_skills, compensation)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			listing.CompanyName, listing.Title, listing.Location,
			listing.Description, listing.RequiredSkills, listing.Compensation,
		)
		if err != nil {
			return fmt.Errorf("failed to insert listing %s/%s: %w", listing.CompanyName, listing.Title, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit catalog: %w", err)
	}
	return nil
}

// FetchCandidates returns the stored listing catalog, ordered by company name
// and title so the pool is deterministic. Satisfies listings.Source.
func (db *DB) FetchCandidates(ctx context.Context, _ types.StudentProfile) ([]types.InternshipListing, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT company_name, title, location, description, required_skills, compensation
		 FROM listings
		 ORDER BY company_name, title`)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer rows.Close()

	var pool []types.InternshipListing
	for rows.Next() {
		var listing types.InternshipListing
		if err := rows.Scan(
			&listing.CompanyName, &listing.Title, &listing.Location,
			&listing.Description, &listing.RequiredSkills, &listing.Compensation,
		); err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		pool = append(pool, listing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read listings: %w", err)
	}
	return pool, nil
}
