package model

import "time"

// AssessmentType identifies one of the self-assessment flows.
type AssessmentType string

const (
	AssessmentESG        AssessmentType = "esg"
	AssessmentUnified    AssessmentType = "unified"
	AssessmentActionPlan AssessmentType = "action-plan"
)

// Valid reports whether t is a known assessment type.
func (t AssessmentType) Valid() bool {
	switch t {
	case AssessmentESG, AssessmentUnified, AssessmentActionPlan:
		return true
	}
	return false
}

// AssessmentStatus is the lifecycle status of an assessment draft.
type AssessmentStatus string

const (
	StatusNotStarted      AssessmentStatus = "not-started"
	StatusInProgress      AssessmentStatus = "in-progress"
	StatusCompleted       AssessmentStatus = "completed"
	StatusWaitingApproval AssessmentStatus = "waiting-for-approval"
)

// FormValues is the flat field set captured by the assessment wizard.
// Industry and EmployeeCount are the only mandatory fields; everything
// else may stay empty through the whole flow.
type FormValues struct {
	CompanyName            string `json:"companyName" bson:"companyName"`
	Industry               string `json:"industry" bson:"industry"`
	EmployeeCount          string `json:"employeeCount" bson:"employeeCount"`
	ExistingInitiatives    string `json:"existingInitiatives" bson:"existingInitiatives"`
	MainGoals              string `json:"mainGoals" bson:"mainGoals"`
	EnvironmentalPractices string `json:"environmentalPractices" bson:"environmentalPractices"`
	SocialResponsibility   string `json:"socialResponsibility" bson:"socialResponsibility"`
	Governance             string `json:"governance" bson:"governance"`
}

// Canonical field names, in wizard order.
const (
	FieldCompanyName            = "companyName"
	FieldIndustry               = "industry"
	FieldEmployeeCount          = "employeeCount"
	FieldExistingInitiatives    = "existingInitiatives"
	FieldMainGoals              = "mainGoals"
	FieldEnvironmentalPractices = "environmentalPractices"
	FieldSocialResponsibility   = "socialResponsibility"
	FieldGovernance             = "governance"
)

// FieldNames returns all recognized field names in canonical order.
func FieldNames() []string {
	return []string{
		FieldCompanyName,
		FieldIndustry,
		FieldEmployeeCount,
		FieldExistingInitiatives,
		FieldMainGoals,
		FieldEnvironmentalPractices,
		FieldSocialResponsibility,
		FieldGovernance,
	}
}

// Field returns the value of a named field and whether the name is recognized.
func (v *FormValues) Field(name string) (string, bool) {
	switch name {
	case FieldCompanyName:
		return v.CompanyName, true
	case FieldIndustry:
		return v.Industry, true
	case FieldEmployeeCount:
		return v.EmployeeCount, true
	case FieldExistingInitiatives:
		return v.ExistingInitiatives, true
	case FieldMainGoals:
		return v.MainGoals, true
	case FieldEnvironmentalPractices:
		return v.EnvironmentalPractices, true
	case FieldSocialResponsibility:
		return v.SocialResponsibility, true
	case FieldGovernance:
		return v.Governance, true
	}
	return "", false
}

// SetField sets a named field and reports whether the name is recognized.
func (v *FormValues) SetField(name, value string) bool {
	switch name {
	case FieldCompanyName:
		v.CompanyName = value
	case FieldIndustry:
		v.Industry = value
	case FieldEmployeeCount:
		v.EmployeeCount = value
	case FieldExistingInitiatives:
		v.ExistingInitiatives = value
	case FieldMainGoals:
		v.MainGoals = value
	case FieldEnvironmentalPractices:
		v.EnvironmentalPractices = value
	case FieldSocialResponsibility:
		v.SocialResponsibility = value
	case FieldGovernance:
		v.Governance = value
	default:
		return false
	}
	return true
}

// FieldMap renders the values as a flat map keyed by canonical field names.
func (v *FormValues) FieldMap() map[string]string {
	m := make(map[string]string, len(FieldNames()))
	for _, name := range FieldNames() {
		val, _ := v.Field(name)
		m[name] = val
	}
	return m
}

// MergeMap copies recognized keys from data into v. Unknown keys are
// ignored so stale drafts with retired fields rehydrate cleanly.
func (v *FormValues) MergeMap(data map[string]string) {
	for name, value := range data {
		v.SetField(name, value)
	}
}

// ProgressRecord is the persisted snapshot of one user's draft for one
// assessment type. One record per (userId, assessmentType); saves replace
// the previous snapshot.
type ProgressRecord struct {
	ID             string            `json:"id" bson:"_id,omitempty"`
	UserID         string            `json:"userId" bson:"userId"`
	AssessmentType AssessmentType    `json:"assessmentType" bson:"assessmentType"`
	Status         AssessmentStatus  `json:"status" bson:"status"`
	Progress       int               `json:"progress" bson:"progress"`
	FormData       map[string]string `json:"formData" bson:"formData"`
	CreatedAt      time.Time         `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt" bson:"updatedAt"`
}
