package model

import "time"

// AnalysisReport is the narrative produced by the remote analysis function
// for one submitted assessment, kept together with the form snapshot that
// generated it. The narrative is only meaningful alongside that snapshot.
type AnalysisReport struct {
	ID             string         `json:"id" bson:"_id,omitempty"`
	UserID         string         `json:"userId" bson:"userId"`
	AssessmentType AssessmentType `json:"assessmentType" bson:"assessmentType"`
	AnalysisType   string         `json:"analysisType,omitempty" bson:"analysisType,omitempty"`
	Narrative      string         `json:"narrative" bson:"narrative"`
	FormData       FormValues     `json:"formData" bson:"formData"`
	CreatedAt      time.Time      `json:"createdAt" bson:"createdAt"`
}

// ReviewRequestStatus tracks the lifecycle of an expert review request.
type ReviewRequestStatus string

const (
	ReviewReceived ReviewRequestStatus = "received"
)

// ReviewRequest records that a user asked a human consultant to review
// their generated report. No outbound notification is sent; consultants
// poll the queue.
type ReviewRequest struct {
	ID             string              `json:"id" bson:"_id,omitempty"`
	UserID         string              `json:"userId" bson:"userId"`
	AssessmentType AssessmentType      `json:"assessmentType" bson:"assessmentType"`
	Status         ReviewRequestStatus `json:"status" bson:"status"`
	RequestedAt    time.Time           `json:"requestedAt" bson:"requestedAt"`
}
