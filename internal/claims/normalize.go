// Package claims converts raw document-analysis output into typed document claims.
package claims

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/internship-matcher/internal/types"
)

// RawExtraction is the loose payload produced by the document analysis
// collaborator for a single document: a document kind plus untyped field values.
type RawExtraction struct {
	Kind   string         `json:"kind"`
	Fields map[string]any `json:"fields"`
}

// kindSet holds the known document kinds for input validation.
var kindSet = func() map[types.DocumentKind]bool {
	m := make(map[types.DocumentKind]bool, len(types.DocumentKinds))
	for _, k := range types.DocumentKinds {
		m[k] = true
	}
	return m
}()

// fieldKind describes the expected value shape of a claim field.
type fieldKind int

const (
	fieldText fieldKind = iota
	fieldNumber
	fieldBool
	fieldList
)

// knownFields maps analyzer field names to their claim field and expected shape.
// Unknown field names are skipped, not rejected, so analyzer output can grow
// without breaking older engines.
var knownFields = map[string]struct {
	field types.ClaimField
	kind  fieldKind
}{
	"age":                 {types.FieldAge, fieldNumber},
	"citizenship":         {types.FieldCitizenship, fieldBool},
	"qualification":       {types.FieldQualification, fieldText},
	"institute":           {types.FieldInstitute, fieldText},
	"premier_institute":   {types.FieldPremierInstitute, fieldBool},
	"annual_income":       {types.FieldAnnualIncome, fieldNumber},
	"employment_status":   {types.FieldEmploymentStatus, fieldText},
	"guardian_employment": {types.FieldGuardianEmployment, fieldText},
	"other_scheme":        {types.FieldOtherScheme, fieldBool},
	"skills":              {types.FieldSkills, fieldList},
	"location":            {types.FieldLocation, fieldText},
}

// Normalize converts one raw extraction into a typed DocumentClaim.
// An unknown document kind or a nil field map is a DocumentParseError; a field
// whose value cannot be coerced to the expected shape is dropped silently,
// since a partial claim is still useful for reconciliation.
func Normalize(raw RawExtraction) (types.DocumentClaim, error) {
	kind := types.DocumentKind(strings.ToLower(strings.TrimSpace(raw.Kind)))
	if !kindSet[kind] {
		return types.DocumentClaim{}, &DocumentParseError{
			Kind:    raw.Kind,
			Message: "unknown document kind",
		}
	}
	if raw.Fields == nil {
		return types.DocumentClaim{}, &DocumentParseError{
			Kind:    string(kind),
			Message: "extraction has no fields",
		}
	}

	claim := types.DocumentClaim{Kind: kind, Present: true}

	// Iterate known fields in a fixed order so the fact slice is reproducible.
	for _, name := range fieldOrder {
		value, ok := raw.Fields[name]
		if !ok || value == nil {
			continue
		}
		spec := knownFields[name]
		fact := types.ClaimFact{Field: spec.field}
		switch spec.kind {
		case fieldNumber:
			n, ok := coerceNumber(value)
			if !ok {
				continue
			}
			fact.Number = &n
		case fieldBool:
			b, ok := coerceBool(value)
			if !ok {
				continue
			}
			fact.Bool = &b
		case fieldList:
			list := coerceList(value)
			if len(list) == 0 {
				continue
			}
			fact.List = list
		default:
			s := coerceText(value)
			if s == "" {
				continue
			}
			fact.Text = s
		}
		claim.Facts = append(claim.Facts, fact)
	}

	return claim, nil
}

// NormalizeAll converts a batch of raw extractions into a ClaimSet.
// Extractions that fail to parse are reported in the returned error slice and
// left absent from the set; callers log them and continue.
func NormalizeAll(raws []RawExtraction) (types.ClaimSet, []error) {
	set := make(types.ClaimSet, len(raws))
	var errs []error
	for _, raw := range raws {
		claim, err := Normalize(raw)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if _, dup := set[claim.Kind]; dup {
			errs = append(errs, &DocumentParseError{
				Kind:    string(claim.Kind),
				Message: fmt.Sprintf("duplicate %s document ignored", claim.Kind),
			})
			continue
		}
		set[claim.Kind] = claim
	}
	return set, errs
}

// fieldOrder lists analyzer field names in a stable iteration order.
var fieldOrder = []string{
	"age",
	"citizenship",
	"qualification",
	"institute",
	"premier_institute",
	"annual_income",
	"employment_status",
	"guardian_employment",
	"other_scheme",
	"skills",
	"location",
}

func coerceNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func coerceBool(value any) (bool, bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes":
			return true, true
		case "false", "no":
			return false, true
		}
		return false, false
	default:
		return false, false
	}
}

func coerceText(value any) string {
	s, ok := value.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

func coerceList(value any) []string {
	switch v := value.(type) {
	case []string:
		return trimmed(v)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out
	case string:
		// Analyzer sometimes returns a comma-separated string.
		return trimmed(strings.Split(v, ","))
	default:
		return nil
	}
}

func trimmed(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
