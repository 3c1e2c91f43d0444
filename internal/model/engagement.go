package model

// Engagement event kinds. One-time kinds award points at most once per
// user and assessment type.
const (
	EventAssessmentStarted   = "assessment_started"
	EventAssessmentCompleted = "assessment_completed"
	EventAnalysisGenerated   = "analysis_generated"
)

// EventPoints maps event kinds to the points they award.
var EventPoints = map[string]int{
	EventAssessmentStarted:   10,
	EventAssessmentCompleted: 50,
	EventAnalysisGenerated:   25,
}

// LeaderboardEntry is one row of the engagement leaderboard.
type LeaderboardEntry struct {
	UserID string `json:"userId"`
	Points int    `json:"points"`
	Rank   int    `json:"rank"`
}
