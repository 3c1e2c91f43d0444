package model

import "time"

// Company is the profile attached to a user, used to pre-fill the first
// wizard step. A user without a company cannot start an assessment.
type Company struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	UserID        string    `json:"userId" bson:"userId"`
	Name          string    `json:"name" bson:"name"`
	Industry      string    `json:"industry" bson:"industry"`
	EmployeeCount string    `json:"employeeCount" bson:"employeeCount"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt" bson:"updatedAt"`
}
