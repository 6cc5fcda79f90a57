package types

// DocumentKind identifies the supporting document a claim was extracted from.
type DocumentKind string

const (
	DocumentID        DocumentKind = "id"
	DocumentEducation DocumentKind = "education"
	DocumentIncome    DocumentKind = "income"
	DocumentAddress   DocumentKind = "address"
	DocumentResume    DocumentKind = "resume"
)

// DocumentKinds lists all supported document kinds in reconciliation precedence
// order: when two documents claim the same field, the earlier kind wins.
var DocumentKinds = []DocumentKind{
	DocumentID,
	DocumentEducation,
	DocumentIncome,
	DocumentAddress,
	DocumentResume,
}

// ClaimField names a profile field a document can substantiate.
type ClaimField string

const (
	FieldAge                ClaimField = "age"
	FieldCitizenship        ClaimField = "citizenship"
	FieldQualification      ClaimField = "qualification"
	FieldInstitute          ClaimField = "institute"
	FieldPremierInstitute   ClaimField = "premier_institute"
	FieldAnnualIncome       ClaimField = "annual_income"
	FieldEmploymentStatus   ClaimField = "employment_status"
	FieldGuardianEmployment ClaimField = "guardian_employment"
	FieldOtherScheme        ClaimField = "other_scheme"
	FieldSkills             ClaimField = "skills"
	FieldLocation           ClaimField = "location"
)

// ClaimFact is one typed fact extracted from a document. Exactly one of the
// value fields is set, matching the expected type of Field.
type ClaimFact struct {
	Field  ClaimField `json:"field"`
	Text   string     `json:"text,omitempty"`
	Number *float64   `json:"number,omitempty"`
	Bool   *bool      `json:"bool,omitempty"`
	List   []string   `json:"list,omitempty"`
}

// DocumentClaim is the set of typed facts extracted from one document kind.
// Present is false when the document was not supplied or could not be parsed;
// an absent document never disqualifies by itself.
type DocumentClaim struct {
	Kind    DocumentKind `json:"kind"`
	Present bool         `json:"present"`
	Facts   []ClaimFact  `json:"facts,omitempty"`
}

// ClaimSet maps document kinds to their extracted claims for one request.
type ClaimSet map[DocumentKind]DocumentClaim

// Number returns the numeric fact for field, or nil when the claim is absent
// or carries no such fact.
func (c DocumentClaim) Number(field ClaimField) *float64 {
	if !c.Present {
		return nil
	}
	for _, f := range c.Facts {
		if f.Field == field && f.Number != nil {
			return f.Number
		}
	}
	return nil
}

// Text returns the text fact for field, or empty string when not claimed.
func (c DocumentClaim) Text(field ClaimField) string {
	if !c.Present {
		return ""
	}
	for _, f := range c.Facts {
		if f.Field == field && f.Text != "" {
			return f.Text
		}
	}
	return ""
}

// Flag returns the boolean fact for field, or nil when not claimed.
func (c DocumentClaim) Flag(field ClaimField) *bool {
	if !c.Present {
		return nil
	}
	for _, f := range c.Facts {
		if f.Field == field && f.Bool != nil {
			return f.Bool
		}
	}
	return nil
}

// Strings returns the list fact for field, or nil when not claimed.
func (c DocumentClaim) Strings(field ClaimField) []string {
	if !c.Present {
		return nil
	}
	for _, f := range c.Facts {
		if f.Field == field && len(f.List) > 0 {
			return f.List
		}
	}
	return nil
}
