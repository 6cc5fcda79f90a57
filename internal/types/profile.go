// Package types provides type definitions for structured data used throughout the internship-matcher system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// EmploymentStatus describes the applicant's own employment situation.
type EmploymentStatus string

const (
	EmploymentUnemployed      EmploymentStatus = "unemployed"
	EmploymentPartTime        EmploymentStatus = "part-time"
	EmploymentFullTime        EmploymentStatus = "full-time"
	EmploymentFullTimeStudent EmploymentStatus = "full-time-student"
)

// GuardianEmployment describes the employment type of the applicant's parent or guardian.
type GuardianEmployment string

const (
	GuardianNone          GuardianEmployment = "none"
	GuardianContractual   GuardianEmployment = "contractual"
	GuardianPermanentGovt GuardianEmployment = "permanent-govt"
)

// StudentProfile holds the self-reported applicant data for one matching request.
// Pointer fields distinguish "not provided" from a zero value; unset fields fall
// back to the scheme defaults during reconciliation (citizen: true, employment
// status: unemployed, guardian employment: none).
type StudentProfile struct {
	Name                  string             `json:"name,omitempty"`
	Age                   *int               `json:"age,omitempty" validate:"omitempty,gte=0"`
	Citizen               *bool              `json:"citizen,omitempty"`
	Qualification         string             `json:"qualification,omitempty"`
	EmploymentStatus      EmploymentStatus   `json:"employment_status,omitempty" validate:"omitempty,oneof=unemployed part-time full-time full-time-student"`
	Skills                []string           `json:"skills,omitempty"`
	Interests             []string           `json:"interests,omitempty"`
	LocationPreference    string             `json:"location_preference,omitempty"`
	FamilyIncomeAnnual    *float64           `json:"family_income_annual,omitempty" validate:"omitempty,gte=0"`
	GuardianEmployment    GuardianEmployment `json:"guardian_employment,omitempty" validate:"omitempty,oneof=none contractual permanent-govt"`
	EnrolledInOtherScheme bool               `json:"enrolled_in_other_scheme,omitempty"`
	PremierInstitute      bool               `json:"premier_institute,omitempty"`
}

// Validate performs structural validation of the profile using the validator.
// A failure here maps to an InvalidProfileError at the orchestration layer.
func (p *StudentProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// IsCitizen returns the citizenship value, defaulting to true when unspecified.
func (p *StudentProfile) IsCitizen() bool {
	if p.Citizen == nil {
		return true
	}
	return *p.Citizen
}

// Employment returns the employment status, defaulting to unemployed when unspecified.
func (p *StudentProfile) Employment() EmploymentStatus {
	if p.EmploymentStatus == "" {
		return EmploymentUnemployed
	}
	return p.EmploymentStatus
}

// Guardian returns the guardian employment type, defaulting to none when unspecified.
func (p *StudentProfile) Guardian() GuardianEmployment {
	if p.GuardianEmployment == "" {
		return GuardianNone
	}
	return p.GuardianEmployment
}
