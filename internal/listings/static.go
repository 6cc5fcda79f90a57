package listings

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/jonathan/internship-matcher/internal/types"
)

// Catalog is the JSON shape of a listing catalog file.
type Catalog struct {
	Listings []types.InternshipListing `json:"listings"`
}

// LoadCatalog reads a listing catalog from a JSON file. Both a bare array and
// a {"listings": [...]} wrapper are accepted. Duplicate entries (same company
// name and title, case-insensitive) are dropped so downstream consumers get an
// already-deduplicated pool.
func LoadCatalog(path string) ([]types.InternshipListing, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &CatalogError{Message: "failed to read catalog file " + path, Cause: err}
	}
	return ParseCatalog(data)
}

// ParseCatalog parses catalog JSON bytes.
func ParseCatalog(data []byte) ([]types.InternshipListing, error) {
	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		// Fall back to a bare array.
		var pool []types.InternshipListing
		if arrErr := json.Unmarshal(data, &pool); arrErr != nil {
			return nil, &CatalogError{Message: "failed to parse catalog JSON", Cause: err}
		}
		catalog.Listings = pool
	}
	return Dedupe(catalog.Listings), nil
}

// Dedupe removes listings that repeat an earlier company name and title pair.
func Dedupe(pool []types.InternshipListing) []types.InternshipListing {
	seen := make(map[string]bool, len(pool))
	out := make([]types.InternshipListing, 0, len(pool))
	for _, listing := range pool {
		key := strings.ToLower(strings.TrimSpace(listing.CompanyName)) + "|" +
			strings.ToLower(strings.TrimSpace(listing.Title))
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, listing)
	}
	return out
}
