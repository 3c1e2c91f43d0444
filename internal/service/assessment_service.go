package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"esgcompass/internal/model"
	"esgcompass/internal/repository"
	"esgcompass/internal/wizard"
)

// ErrNoCompany is returned when a user without a company profile tries
// to start an assessment. The handler maps it to a blocking, remediable
// message.
var ErrNoCompany = errors.New("no company attached to profile")

// WizardState is the draft view returned to clients: current values,
// lifecycle status and percentage.
type WizardState struct {
	AssessmentType model.AssessmentType   `json:"assessmentType"`
	Status         model.AssessmentStatus `json:"status"`
	Progress       int                    `json:"progress"`
	Step           wizard.Step            `json:"step"`
	Values         model.FormValues       `json:"values"`
}

// AssessmentService orchestrates the wizard flows: resuming drafts,
// step transitions and final submission.
type AssessmentService struct {
	progress   *ProgressService
	engagement *EngagementService
	companies  repository.CompanyRepo
	log        *zap.Logger
}

// NewAssessmentService creates a new assessment service.
func NewAssessmentService(progress *ProgressService, engagement *EngagementService, companies repository.CompanyRepo, log *zap.Logger) *AssessmentService {
	return &AssessmentService{
		progress:   progress,
		engagement: engagement,
		companies:  companies,
		log:        log,
	}
}

// StartOrResume loads the user's draft. Fresh drafts get the first step
// pre-filled from the company profile; a user without a company cannot
// proceed. Load failures on an existing draft degrade to empty defaults
// rather than blocking the wizard.
func (s *AssessmentService) StartOrResume(ctx context.Context, userID string, t model.AssessmentType) (*WizardState, error) {
	company, err := s.companies.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrNoCompany
	}

	record, values, err := s.progress.Load(ctx, userID, t)
	if err != nil {
		s.log.Warn("draft load failed, starting from defaults",
			zap.String("userId", userID),
			zap.String("assessmentType", string(t)),
			zap.Error(err))
		record = &model.ProgressRecord{
			UserID:         userID,
			AssessmentType: t,
			Status:         model.StatusNotStarted,
		}
		values = model.FormValues{}
	}

	if record.Status == model.StatusNotStarted {
		if values.CompanyName == "" {
			values.CompanyName = company.Name
		}
		if values.Industry == "" {
			values.Industry = company.Industry
		}
		if values.EmployeeCount == "" {
			values.EmployeeCount = company.EmployeeCount
		}
	}

	return &WizardState{
		AssessmentType: t,
		Status:         record.Status,
		Progress:       record.Progress,
		Step:           stepForProgress(record.Progress),
		Values:         values,
	}, nil
}

// Transition applies a navigation to the given step with the submitted
// values, persisting the new snapshot and firing milestone events.
func (s *AssessmentService) Transition(ctx context.Context, userID string, t model.AssessmentType, target wizard.Step, values model.FormValues) (*WizardState, error) {
	record, _, err := s.progress.Load(ctx, userID, t)
	if err != nil {
		s.log.Warn("draft load failed before transition",
			zap.String("userId", userID),
			zap.Error(err))
		record = &model.ProgressRecord{Status: model.StatusNotStarted}
	}

	ctrl := wizard.New(userID, t, values, record.Status, stepForProgress(record.Progress), s.progress, s.engagement, s.log)
	if err := ctrl.GoToStep(ctx, target); err != nil {
		return nil, err
	}

	return &WizardState{
		AssessmentType: t,
		Status:         ctrl.Status(),
		Progress:       ctrl.Progress(),
		Step:           ctrl.Current(),
		Values:         ctrl.Values(),
	}, nil
}

// Complete validates the full form and marks the draft completed. The
// action-plan flow then moves to waiting-for-approval; the diagnostic
// flows stop at completed and hand over to analysis.
func (s *AssessmentService) Complete(ctx context.Context, userID string, t model.AssessmentType, values model.FormValues) (*WizardState, error) {
	record, _, err := s.progress.Load(ctx, userID, t)
	if err != nil {
		record = &model.ProgressRecord{Status: model.StatusInProgress}
	}

	ctrl := wizard.New(userID, t, values, record.Status, stepForProgress(record.Progress), s.progress, s.engagement, s.log)
	validated, err := ctrl.Complete(ctx)
	if err != nil {
		return nil, err
	}

	status := ctrl.Status()
	if t == model.AssessmentActionPlan {
		status = model.StatusWaitingApproval
		if err := s.progress.SaveProgress(ctx, userID, t, status, 100, validated); err != nil {
			s.log.Warn("approval status save failed", zap.String("userId", userID), zap.Error(err))
		}
	}

	return &WizardState{
		AssessmentType: t,
		Status:         status,
		Progress:       100,
		Step:           wizard.StepGoals,
		Values:         validated,
	}, nil
}

// stepForProgress inverts the index-based progress formula to resume the
// wizard on the step a percentage was saved from.
func stepForProgress(progress int) wizard.Step {
	if progress <= 0 {
		return wizard.StepCompany
	}
	idx := progress*len(wizard.Steps)/100 - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(wizard.Steps) {
		idx = len(wizard.Steps) - 1
	}
	return wizard.Steps[idx]
}
