package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/internship-matcher/internal/claims"
	"github.com/jonathan/internship-matcher/internal/eligibility"
	"github.com/jonathan/internship-matcher/internal/listings"
	"github.com/jonathan/internship-matcher/internal/schemas"
	"github.com/jonathan/internship-matcher/internal/types"
)

// loadProfile reads and schema-validates a student profile JSON file.
func loadProfile(path string) (types.StudentProfile, error) {
	var profile types.StudentProfile

	data, err := os.ReadFile(path)
	if err != nil {
		return profile, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}

	if schemaPath := schemas.ResolveSchemaPath("schemas/student_profile.schema.json"); schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, data); err != nil {
			return profile, fmt.Errorf("profile failed schema validation: %w", err)
		}
	}

	if err := json.Unmarshal(data, &profile); err != nil {
		return profile, fmt.Errorf("failed to unmarshal profile JSON: %w", err)
	}
	return profile, nil
}

// loadClaims reads a document-claims JSON file (an array of raw extractions)
// and normalizes it into a claim set. Per-document parse failures are
// reported on stderr and the affected claims treated as absent.
func loadClaims(path string) (types.ClaimSet, error) {
	if path == "" {
		return types.ClaimSet{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read claims file %s: %w", path, err)
	}

	if schemaPath := schemas.ResolveSchemaPath("schemas/document_claims.schema.json"); schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, data); err != nil {
			return nil, fmt.Errorf("claims failed schema validation: %w", err)
		}
	}

	var raws []claims.RawExtraction
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("failed to unmarshal claims JSON: %w", err)
	}

	set, errs := claims.NormalizeAll(raws)
	for _, cerr := range errs {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", cerr)
	}
	return set, nil
}

// loadCriteria loads eligibility criteria from a file, or the defaults.
func loadCriteria(path string) (*eligibility.Criteria, error) {
	if path == "" {
		return eligibility.DefaultCriteria(), nil
	}
	if schemaPath := schemas.ResolveSchemaPath("schemas/criteria.schema.json"); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			return nil, fmt.Errorf("criteria failed schema validation: %w", err)
		}
	}
	return eligibility.LoadCriteria(path)
}

// loadCatalog reads and schema-validates a listing catalog JSON file.
func loadCatalog(path string) ([]types.InternshipListing, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	if schemaPath := schemas.ResolveSchemaPath("schemas/listing_catalog.schema.json"); schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, data); err != nil {
			return nil, fmt.Errorf("catalog failed schema validation: %w", err)
		}
	}

	return listings.ParseCatalog(data)
}

// writeJSONOutput marshals v with indentation and writes it to path, or to
// stdout when path is empty.
func writeJSONOutput(path string, v any) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	if path == "" {
		_, err := fmt.Fprintln(os.Stdout, string(jsonOutput))
		return err
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
