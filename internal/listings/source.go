// Package listings provides access to external internship listing pools.
package listings

import (
	"context"

	"github.com/jonathan/internship-matcher/internal/types"
)

// Source is a read-only listing pool. Implementations return an opaque,
// already-deduplicated sequence of listings to be scored; the matching engine
// never creates or stores listings itself.
type Source interface {
	FetchCandidates(ctx context.Context, profile types.StudentProfile) ([]types.InternshipListing, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context, profile types.StudentProfile) ([]types.InternshipListing, error)

// FetchCandidates calls f.
func (f SourceFunc) FetchCandidates(ctx context.Context, profile types.StudentProfile) ([]types.InternshipListing, error) {
	return f(ctx, profile)
}

// Static returns a Source that serves a fixed listing slice regardless of
// profile. Used for catalog files and tests.
func Static(pool []types.InternshipListing) Source {
	return SourceFunc(func(context.Context, types.StudentProfile) ([]types.InternshipListing, error) {
		return pool, nil
	})
}
