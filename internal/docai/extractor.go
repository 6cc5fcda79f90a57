package docai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/internship-matcher/internal/claims"
	"github.com/jonathan/internship-matcher/internal/types"
)

// extractionPrompt builds the strict-JSON extraction instruction for one
// document. The field vocabulary matches the claim normalizer's known fields.
func extractionPrompt(doc Document) string {
	return fmt.Sprintf(`You are a document analysis service for an internship scheme.
Extract verifiable facts from the following %s document text.

Return ONLY a JSON object, no markdown, of the shape:
{"kind": %q, "fields": {...}}

Allowed field names and types:
- "age": number (years, from date of birth if needed)
- "citizenship": boolean (true if the document establishes citizenship)
- "qualification": string (highest qualification stated, verbatim)
- "institute": string (issuing or attended institute name)
- "annual_income": number (annual family income in rupees)
- "employment_status": string (one of: unemployed, part-time, full-time, full-time-student)
- "guardian_employment": string (one of: none, contractual, permanent-govt)
- "other_scheme": boolean (true if enrolled in another government scheme)
- "skills": array of strings (from a resume)
- "location": string (city and state from an address proof)

Include only fields the document actually substantiates. Do not guess.

Document text:
%s`, doc.Kind, doc.Kind, doc.Text)
}

// stripFences removes a markdown code fence wrapping the model output.
// Despite the no-markdown instruction, models regularly return
// ```json ... ``` around the payload.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	// Drop the opening fence line, including any language tag on it.
	if idx := strings.Index(text, "\n"); idx >= 0 {
		text = text[idx+1:]
	} else {
		text = strings.TrimPrefix(text, "```")
	}
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}

// decodeExtraction parses the cleaned model output into a RawExtraction.
func decodeExtraction(kind types.DocumentKind, payload string) (claims.RawExtraction, error) {
	var raw claims.RawExtraction
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return claims.RawExtraction{}, &claims.DocumentParseError{
			Kind:    string(kind),
			Message: "analysis output is not valid JSON",
			Cause:   err,
		}
	}
	if raw.Kind == "" {
		raw.Kind = string(kind)
	}
	return raw, nil
}

// AnalyzeAll runs the analyzer over a batch of documents, returning the raw
// extractions that succeeded plus the per-document errors. A failed document
// is reported and skipped; it never aborts the batch.
func AnalyzeAll(ctx context.Context, analyzer Analyzer, docs []Document) ([]claims.RawExtraction, []error) {
	raws := make([]claims.RawExtraction, 0, len(docs))
	var errs []error
	for _, doc := range docs {
		raw, err := analyzer.Analyze(ctx, doc)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		raws = append(raws, raw)
	}
	return raws, errs
}
