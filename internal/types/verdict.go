package types

// RuleID identifies one admission rule of the internship scheme.
type RuleID string

const (
	RuleCitizenship          RuleID = "citizenship"
	RuleAgeRange             RuleID = "age-range"
	RuleQualificationFloor   RuleID = "qualification-floor"
	RuleQualificationCeiling RuleID = "qualification-ceiling"
	RuleEmployment           RuleID = "employment"
	RuleInstitute            RuleID = "institute"
	RuleOtherScheme          RuleID = "other-scheme"
	RuleIncomeCeiling        RuleID = "income-ceiling"
	RuleGuardianEmployment   RuleID = "guardian-employment"
)

// RuleOrder is the canonical rule evaluation and reporting order. ViolatedRules
// always follows this order regardless of which rule failed first.
var RuleOrder = []RuleID{
	RuleCitizenship,
	RuleAgeRange,
	RuleQualificationFloor,
	RuleQualificationCeiling,
	RuleEmployment,
	RuleInstitute,
	RuleOtherScheme,
	RuleIncomeCeiling,
	RuleGuardianEmployment,
}

// EligibilityVerdict is the outcome of evaluating a reconciled profile against
// the scheme's admission rules. ViolatedRules is empty iff Eligible is true.
// Ineligibility is a normal terminal outcome, not an error.
type EligibilityVerdict struct {
	Eligible      bool     `json:"eligible"`
	ViolatedRules []RuleID `json:"violated_rules"`
}
