package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"esgcompass/internal/analysis"
	"esgcompass/internal/form"
	"esgcompass/internal/metrics"
	"esgcompass/internal/model"
	"esgcompass/internal/repository"
)

// ErrNoReport is returned when a user asks for a report that was never
// generated.
var ErrNoReport = errors.New("no analysis report available")

// AnalysisService runs the analysis pipeline for a submitted assessment:
// format, invoke, persist, and build exports. No automatic retry; a
// retry is the client calling Analyze again with the same draft.
type AnalysisService struct {
	narrator   analysis.Narrator
	reports    repository.ReportRepo
	engagement *EngagementService
	mtr        *metrics.Metrics
	log        *zap.Logger
}

// NewAnalysisService creates a new analysis service.
func NewAnalysisService(narrator analysis.Narrator, reports repository.ReportRepo, engagement *EngagementService, mtr *metrics.Metrics, log *zap.Logger) *AnalysisService {
	return &AnalysisService{
		narrator:   narrator,
		reports:    reports,
		engagement: engagement,
		mtr:        mtr,
		log:        log,
	}
}

// Analyze formats the validated form values, invokes the remote analysis
// function and persists the resulting narrative with its snapshot.
func (s *AnalysisService) Analyze(ctx context.Context, userID string, t model.AssessmentType, analysisType string, values model.FormValues) (*model.AnalysisReport, error) {
	if res := form.Validate(values); !res.Valid() {
		return nil, errors.New("form is not valid for analysis")
	}

	content := analysis.FormatForAnalysis(values)
	narrative, err := s.narrator.Invoke(ctx, string(t), content, analysisType)
	s.count(err)
	if err != nil {
		s.log.Warn("analysis invocation failed",
			zap.String("userId", userID),
			zap.String("assessmentType", string(t)),
			zap.Error(err))
		return nil, err
	}

	report := &model.AnalysisReport{
		UserID:         userID,
		AssessmentType: t,
		AnalysisType:   analysisType,
		Narrative:      narrative,
		FormData:       values,
		CreatedAt:      time.Now(),
	}
	if err := s.reports.SaveReport(ctx, report); err != nil {
		// The narrative is still returned; only its persistence failed.
		s.log.Warn("report save failed", zap.String("userId", userID), zap.Error(err))
	}

	s.trackDetached(userID, t, model.EventAnalysisGenerated)
	return report, nil
}

// GetReport returns the latest persisted report for the assessment.
func (s *AnalysisService) GetReport(ctx context.Context, userID string, t model.AssessmentType) (*model.AnalysisReport, error) {
	report, err := s.reports.GetReport(ctx, userID, t)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, ErrNoReport
	}
	return report, nil
}

// Export builds the downloadable text artifact for the latest report.
func (s *AnalysisService) Export(ctx context.Context, userID string, t model.AssessmentType) (string, []byte, error) {
	report, err := s.GetReport(ctx, userID, t)
	if err != nil {
		return "", nil, err
	}
	filename, body := analysis.BuildExport(report)
	return filename, body, nil
}

// RequestReview records that the user asked for a human expert review of
// their report. The request is queued for consultants; no notification
// is sent.
func (s *AnalysisService) RequestReview(ctx context.Context, userID string, t model.AssessmentType) (*model.ReviewRequest, error) {
	if _, err := s.GetReport(ctx, userID, t); err != nil {
		return nil, err
	}

	request := &model.ReviewRequest{
		UserID:         userID,
		AssessmentType: t,
		Status:         model.ReviewReceived,
		RequestedAt:    time.Now(),
	}
	if err := s.reports.SaveReviewRequest(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

func (s *AnalysisService) count(err error) {
	if s.mtr == nil {
		return
	}
	outcome := metrics.OutcomeSuccess
	switch {
	case err == nil:
	case errors.Is(err, analysis.ErrServiceUnavailable):
		outcome = metrics.OutcomeUnavailable
	case errors.Is(err, analysis.ErrUpstreamModel):
		outcome = metrics.OutcomeUpstream
	case errors.Is(err, analysis.ErrMalformedResponse):
		outcome = metrics.OutcomeMalformed
	default:
		outcome = metrics.OutcomeOther
	}
	s.mtr.AnalysisRequests.WithLabelValues(outcome).Inc()
}

func (s *AnalysisService) trackDetached(userID string, t model.AssessmentType, kind string) {
	if s.engagement == nil {
		return
	}
	go func() {
		if err := s.engagement.TrackEvent(context.Background(), userID, t, kind); err != nil {
			s.log.Warn("engagement event failed",
				zap.String("userId", userID),
				zap.String("event", kind),
				zap.Error(err))
		}
	}()
}
