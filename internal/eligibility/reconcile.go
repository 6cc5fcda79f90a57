package eligibility

import (
	"math"
	"strings"

	"github.com/jonathan/internship-matcher/internal/types"
)

// ReconciledProfile is a student profile with every field for which a document
// claim exists overwritten by the claim's value. Documents are the source of
// truth; fields with no claim keep the self-reported value, unverified.
// Derived per request, never persisted.
type ReconciledProfile struct {
	Name                  string
	Age                   *int
	Citizen               bool
	Qualification         string
	EmploymentStatus      types.EmploymentStatus
	Skills                []string
	Interests             []string
	LocationPreference    string
	FamilyIncomeAnnual    *float64
	GuardianEmployment    types.GuardianEmployment
	EnrolledInOtherScheme bool
	PremierInstitute      bool
}

// Reconcile merges the self-reported profile with document claims. When more
// than one document claims the same field, the document kinds are consulted in
// types.DocumentKinds order and the first claimed value wins, so the result is
// deterministic for identical inputs.
func Reconcile(profile types.StudentProfile, claims types.ClaimSet, criteria *Criteria) ReconciledProfile {
	r := ReconciledProfile{
		Name:                  profile.Name,
		Age:                   profile.Age,
		Citizen:               profile.IsCitizen(),
		Qualification:         profile.Qualification,
		EmploymentStatus:      profile.Employment(),
		Skills:                profile.Skills,
		Interests:             profile.Interests,
		LocationPreference:    profile.LocationPreference,
		FamilyIncomeAnnual:    profile.FamilyIncomeAnnual,
		GuardianEmployment:    profile.Guardian(),
		EnrolledInOtherScheme: profile.EnrolledInOtherScheme,
		PremierInstitute:      profile.PremierInstitute,
	}

	if n := claimNumber(claims, types.FieldAge); n != nil {
		age := int(math.Round(*n))
		r.Age = &age
	}
	if b := claimFlag(claims, types.FieldCitizenship); b != nil {
		r.Citizen = *b
	}
	if s := claimText(claims, types.FieldQualification); s != "" {
		r.Qualification = s
	}
	if n := claimNumber(claims, types.FieldAnnualIncome); n != nil {
		income := *n
		r.FamilyIncomeAnnual = &income
	}
	if s := claimText(claims, types.FieldEmploymentStatus); s != "" {
		if status, ok := parseEmployment(s); ok {
			r.EmploymentStatus = status
		}
	}
	if s := claimText(claims, types.FieldGuardianEmployment); s != "" {
		if g, ok := parseGuardian(s); ok {
			r.GuardianEmployment = g
		}
	}
	if b := claimFlag(claims, types.FieldOtherScheme); b != nil {
		r.EnrolledInOtherScheme = *b
	}
	if list := claimStrings(claims, types.FieldSkills); len(list) > 0 {
		r.Skills = list
	}

	// Premier-institute standing: an explicit flag in a document wins; failing
	// that, a claimed institute name is checked against the configured list.
	if b := claimFlag(claims, types.FieldPremierInstitute); b != nil {
		r.PremierInstitute = *b
	} else if institute := claimText(claims, types.FieldInstitute); institute != "" && criteria != nil {
		if criteria.IsPremierInstitute(institute) {
			r.PremierInstitute = true
		}
	}

	return r
}

func claimNumber(claims types.ClaimSet, field types.ClaimField) *float64 {
	for _, kind := range types.DocumentKinds {
		if n := claims[kind].Number(field); n != nil {
			return n
		}
	}
	return nil
}

func claimText(claims types.ClaimSet, field types.ClaimField) string {
	for _, kind := range types.DocumentKinds {
		if s := claims[kind].Text(field); s != "" {
			return s
		}
	}
	return ""
}

func claimFlag(claims types.ClaimSet, field types.ClaimField) *bool {
	for _, kind := range types.DocumentKinds {
		if b := claims[kind].Flag(field); b != nil {
			return b
		}
	}
	return nil
}

func claimStrings(claims types.ClaimSet, field types.ClaimField) []string {
	for _, kind := range types.DocumentKinds {
		if list := claims[kind].Strings(field); len(list) > 0 {
			return list
		}
	}
	return nil
}

func parseEmployment(s string) (types.EmploymentStatus, bool) {
	switch types.EmploymentStatus(strings.ToLower(strings.TrimSpace(s))) {
	case types.EmploymentUnemployed:
		return types.EmploymentUnemployed, true
	case types.EmploymentPartTime:
		return types.EmploymentPartTime, true
	case types.EmploymentFullTime:
		return types.EmploymentFullTime, true
	case types.EmploymentFullTimeStudent:
		return types.EmploymentFullTimeStudent, true
	}
	return "", false
}

func parseGuardian(s string) (types.GuardianEmployment, bool) {
	switch types.GuardianEmployment(strings.ToLower(strings.TrimSpace(s))) {
	case types.GuardianNone:
		return types.GuardianNone, true
	case types.GuardianContractual:
		return types.GuardianContractual, true
	case types.GuardianPermanentGovt:
		return types.GuardianPermanentGovt, true
	}
	return "", false
}
