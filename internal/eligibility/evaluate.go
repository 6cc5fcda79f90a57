package eligibility

import (
	"github.com/jonathan/internship-matcher/internal/types"
)

// Evaluate reconciles the profile with its document claims and applies the
// scheme's admission rules. Every failing rule is recorded, in canonical rule
// order, not just the first. Pure and deterministic for identical inputs.
//
// Missing inputs pass their rule (an applicant is not penalized for omitting a
// proof that would only disqualify them), with two exceptions: age and minimum
// qualification are mandatory facts, so age-range and qualification-floor fail
// when the value is entirely absent.
func Evaluate(profile types.StudentProfile, claims types.ClaimSet, criteria *Criteria) types.EligibilityVerdict {
	if criteria == nil {
		criteria = DefaultCriteria()
	}
	reconciled := Reconcile(profile, claims, criteria)
	return EvaluateReconciled(reconciled, criteria)
}

// EvaluateReconciled applies the rule set to an already-reconciled profile.
func EvaluateReconciled(r ReconciledProfile, criteria *Criteria) types.EligibilityVerdict {
	if criteria == nil {
		criteria = DefaultCriteria()
	}

	var violated []types.RuleID
	for _, rule := range types.RuleOrder {
		if !rulePasses(rule, r, criteria) {
			violated = append(violated, rule)
		}
	}

	return types.EligibilityVerdict{
		Eligible:      len(violated) == 0,
		ViolatedRules: violated,
	}
}

func rulePasses(rule types.RuleID, r ReconciledProfile, criteria *Criteria) bool {
	switch rule {
	case types.RuleCitizenship:
		return r.Citizen
	case types.RuleAgeRange:
		if r.Age == nil {
			return false
		}
		return *r.Age >= criteria.MinAge && *r.Age <= criteria.MaxAge
	case types.RuleQualificationFloor:
		// A qualification that maps to no known tier cannot establish the
		// minimum, so it fails the same way an absent one does. A ceiling-tier
		// qualification still satisfies the floor: an MBA holder necessarily
		// holds a graduate degree, and only the ceiling rule is violated.
		return MatchesTier(r.Qualification, criteria.QualificationFloor) ||
			MatchesTier(r.Qualification, criteria.QualificationCeiling)
	case types.RuleQualificationCeiling:
		return !MatchesTier(r.Qualification, criteria.QualificationCeiling)
	case types.RuleEmployment:
		return r.EmploymentStatus == types.EmploymentUnemployed ||
			r.EmploymentStatus == types.EmploymentPartTime
	case types.RuleInstitute:
		return !r.PremierInstitute
	case types.RuleOtherScheme:
		return !r.EnrolledInOtherScheme
	case types.RuleIncomeCeiling:
		if r.FamilyIncomeAnnual == nil {
			return true
		}
		return *r.FamilyIncomeAnnual <= criteria.IncomeCeiling
	case types.RuleGuardianEmployment:
		return r.GuardianEmployment == types.GuardianNone ||
			r.GuardianEmployment == types.GuardianContractual
	default:
		return true
	}
}
