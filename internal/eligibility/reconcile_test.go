package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/internship-matcher/internal/types"
)

func claimWith(kind types.DocumentKind, facts ...types.ClaimFact) types.DocumentClaim {
	return types.DocumentClaim{Kind: kind, Present: true, Facts: facts}
}

func TestReconcile_NoClaimsKeepsSelfReport(t *testing.T) {
	profile := types.StudentProfile{
		Name:               "Ravi",
		Age:                intPtr(22),
		Qualification:      "BCom",
		FamilyIncomeAnnual: floatPtr(300000),
	}

	r := Reconcile(profile, nil, DefaultCriteria())

	require.NotNil(t, r.Age)
	assert.Equal(t, 22, *r.Age)
	assert.Equal(t, "BCom", r.Qualification)
	require.NotNil(t, r.FamilyIncomeAnnual)
	assert.Equal(t, 300000.0, *r.FamilyIncomeAnnual)
}

func TestReconcile_AppliesDefaults(t *testing.T) {
	r := Reconcile(types.StudentProfile{}, nil, DefaultCriteria())

	assert.True(t, r.Citizen)
	assert.Equal(t, types.EmploymentUnemployed, r.EmploymentStatus)
	assert.Equal(t, types.GuardianNone, r.GuardianEmployment)
}

func TestReconcile_ClaimOverridesField(t *testing.T) {
	profile := types.StudentProfile{
		Age:           intPtr(22),
		Qualification: "BSc",
	}
	claimSet := types.ClaimSet{
		types.DocumentEducation: claimWith(types.DocumentEducation,
			types.ClaimFact{Field: types.FieldQualification, Text: "MBA"},
		),
	}

	r := Reconcile(profile, claimSet, DefaultCriteria())

	assert.Equal(t, "MBA", r.Qualification)
}

func TestReconcile_DocumentPrecedenceOrder(t *testing.T) {
	// Both the ID document and the resume claim an age; the ID wins because
	// it comes first in the document precedence order.
	claimSet := types.ClaimSet{
		types.DocumentResume: claimWith(types.DocumentResume,
			types.ClaimFact{Field: types.FieldAge, Number: floatPtr(30)},
		),
		types.DocumentID: claimWith(types.DocumentID,
			types.ClaimFact{Field: types.FieldAge, Number: floatPtr(23)},
		),
	}

	r := Reconcile(types.StudentProfile{}, claimSet, DefaultCriteria())

	require.NotNil(t, r.Age)
	assert.Equal(t, 23, *r.Age)
}

func TestReconcile_InstituteNameSetsPremierStanding(t *testing.T) {
	claimSet := types.ClaimSet{
		types.DocumentEducation: claimWith(types.DocumentEducation,
			types.ClaimFact{Field: types.FieldInstitute, Text: "IIT Delhi"},
		),
	}

	r := Reconcile(types.StudentProfile{}, claimSet, DefaultCriteria())

	assert.True(t, r.PremierInstitute)
}

func TestReconcile_ExplicitPremierFlagWinsOverInstituteName(t *testing.T) {
	claimSet := types.ClaimSet{
		types.DocumentEducation: claimWith(types.DocumentEducation,
			types.ClaimFact{Field: types.FieldPremierInstitute, Bool: boolPtr(false)},
			types.ClaimFact{Field: types.FieldInstitute, Text: "IIT Madras"},
		),
	}

	r := Reconcile(types.StudentProfile{}, claimSet, DefaultCriteria())

	assert.False(t, r.PremierInstitute)
}

func TestReconcile_OrdinaryInstituteKeepsStanding(t *testing.T) {
	claimSet := types.ClaimSet{
		types.DocumentEducation: claimWith(types.DocumentEducation,
			types.ClaimFact{Field: types.FieldInstitute, Text: "Christ University"},
		),
	}

	r := Reconcile(types.StudentProfile{}, claimSet, DefaultCriteria())

	assert.False(t, r.PremierInstitute)
}

func TestReconcile_EmploymentStatusFromClaim(t *testing.T) {
	claimSet := types.ClaimSet{
		types.DocumentResume: claimWith(types.DocumentResume,
			types.ClaimFact{Field: types.FieldEmploymentStatus, Text: "part-time"},
		),
	}

	r := Reconcile(types.StudentProfile{}, claimSet, DefaultCriteria())

	assert.Equal(t, types.EmploymentPartTime, r.EmploymentStatus)
}

func TestReconcile_UnparseableEmploymentClaimIgnored(t *testing.T) {
	profile := types.StudentProfile{EmploymentStatus: types.EmploymentPartTime}
	claimSet := types.ClaimSet{
		types.DocumentResume: claimWith(types.DocumentResume,
			types.ClaimFact{Field: types.FieldEmploymentStatus, Text: "freelancing"},
		),
	}

	r := Reconcile(profile, claimSet, DefaultCriteria())

	assert.Equal(t, types.EmploymentPartTime, r.EmploymentStatus)
}

func TestReconcile_SkillsFromResumeClaim(t *testing.T) {
	profile := types.StudentProfile{Skills: []string{"Excel"}}
	claimSet := types.ClaimSet{
		types.DocumentResume: claimWith(types.DocumentResume,
			types.ClaimFact{Field: types.FieldSkills, List: []string{"Go", "SQL"}},
		),
	}

	r := Reconcile(profile, claimSet, DefaultCriteria())

	assert.Equal(t, []string{"Go", "SQL"}, r.Skills)
}

func TestReconcile_AddressClaimDoesNotChangeLocationPreference(t *testing.T) {
	// The address proof states where the applicant lives, not where they want
	// to intern.
	profile := types.StudentProfile{LocationPreference: "Bangalore"}
	claimSet := types.ClaimSet{
		types.DocumentAddress: claimWith(types.DocumentAddress,
			types.ClaimFact{Field: types.FieldLocation, Text: "Patna"},
		),
	}

	r := Reconcile(profile, claimSet, DefaultCriteria())

	assert.Equal(t, "Bangalore", r.LocationPreference)
}

func TestReconcile_AgeClaimRounded(t *testing.T) {
	claimSet := types.ClaimSet{
		types.DocumentID: claimWith(types.DocumentID,
			types.ClaimFact{Field: types.FieldAge, Number: floatPtr(21.7)},
		),
	}

	r := Reconcile(types.StudentProfile{}, claimSet, DefaultCriteria())

	require.NotNil(t, r.Age)
	assert.Equal(t, 22, *r.Age)
}
