// Package wizard owns the multi-step assessment flow: which step is
// active, how far along the user is, and the status transitions that
// navigation drives. It is UI-agnostic; the REST layer rebuilds a
// controller from the persisted draft on each request.
package wizard

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"esgcompass/internal/form"
	"esgcompass/internal/model"
)

// Step is one tab of the assessment wizard.
type Step string

const (
	StepCompany       Step = "company"
	StepEnvironmental Step = "environmental"
	StepSocial        Step = "social"
	StepGovernance    Step = "governance"
	StepGoals         Step = "goals"
)

// Steps is the fixed wizard order. Progress is the index-based step
// fraction over this list.
var Steps = []Step{StepCompany, StepEnvironmental, StepSocial, StepGovernance, StepGoals}

// StepIndex returns the position of s in the wizard order, or -1.
func StepIndex(s Step) int {
	for i, step := range Steps {
		if step == s {
			return i
		}
	}
	return -1
}

// ProgressFor computes the completion percentage for a step:
// (index+1)/len(Steps)*100. Applied uniformly across all flows.
func ProgressFor(s Step) int {
	idx := StepIndex(s)
	if idx < 0 {
		return 0
	}
	return (idx + 1) * 100 / len(Steps)
}

// Saver persists the current draft. Save failures must not block
// navigation; the controller logs them and moves on.
type Saver interface {
	SaveProgress(ctx context.Context, userID string, t model.AssessmentType, status model.AssessmentStatus, progress int, values model.FormValues) error
}

// EventSink records engagement events. Calls are detached from the main
// flow: failures are logged, never surfaced.
type EventSink interface {
	TrackEvent(ctx context.Context, userID string, t model.AssessmentType, kind string) error
}

// ValidationError is returned when forward navigation is blocked by
// missing mandatory fields.
type ValidationError struct {
	Errors []form.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("form validation failed on %d field(s)", len(e.Errors))
}

// Controller tracks the active step for one user's draft of one
// assessment type.
type Controller struct {
	userID         string
	assessmentType model.AssessmentType
	values         model.FormValues
	current        Step
	status         model.AssessmentStatus
	saver          Saver
	events         EventSink
	log            *zap.Logger
}

// New builds a controller resuming from a loaded draft. status and step
// default to not-started / company for fresh drafts.
func New(userID string, t model.AssessmentType, values model.FormValues, status model.AssessmentStatus, current Step, saver Saver, events EventSink, log *zap.Logger) *Controller {
	if status == "" {
		status = model.StatusNotStarted
	}
	if StepIndex(current) < 0 {
		current = StepCompany
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		userID:         userID,
		assessmentType: t,
		values:         values,
		current:        current,
		status:         status,
		saver:          saver,
		events:         events,
		log:            log,
	}
}

// Current returns the active step.
func (c *Controller) Current() Step { return c.current }

// Status returns the draft lifecycle status.
func (c *Controller) Status() model.AssessmentStatus { return c.status }

// Values returns the current form snapshot.
func (c *Controller) Values() model.FormValues { return c.values }

// Progress returns the completion percentage for the active step.
func (c *Controller) Progress() int { return ProgressFor(c.current) }

// SetValues replaces the form snapshot, typically with the request body
// accompanying a navigation.
func (c *Controller) SetValues(values model.FormValues) { c.values = values }

// GoToStep activates the given step. Backward and lateral moves are
// unconditional; moving forward past the company step requires the two
// mandatory fields to validate. Every transition triggers a save tagged
// with the destination step's percentage, and the first move away from
// the initial step flips the draft to in-progress and reports a one-time
// started event.
func (c *Controller) GoToStep(ctx context.Context, target Step) error {
	targetIdx := StepIndex(target)
	if targetIdx < 0 {
		return fmt.Errorf("unknown step %q", target)
	}

	if targetIdx > StepIndex(StepCompany) && c.current == StepCompany {
		if res := form.Validate(c.values); !res.Valid() {
			return &ValidationError{Errors: res.Errors}
		}
	}

	firstLeave := c.status == model.StatusNotStarted && target != StepCompany
	if firstLeave {
		c.status = model.StatusInProgress
	}
	c.current = target

	c.save(ctx)

	if firstLeave {
		c.trackDetached(model.EventAssessmentStarted)
	}
	return nil
}

// Advance moves to the next step in order.
func (c *Controller) Advance(ctx context.Context) error {
	idx := StepIndex(c.current)
	if idx >= len(Steps)-1 {
		return fmt.Errorf("already on final step %q", c.current)
	}
	return c.GoToStep(ctx, Steps[idx+1])
}

// Retreat moves to the previous step in order.
func (c *Controller) Retreat(ctx context.Context) error {
	idx := StepIndex(c.current)
	if idx <= 0 {
		return fmt.Errorf("already on first step %q", c.current)
	}
	return c.GoToStep(ctx, Steps[idx-1])
}

// Complete validates the full form and marks the draft completed. The
// caller decides what happens next (analysis for the diagnostic flow,
// waiting-for-approval for action plans).
func (c *Controller) Complete(ctx context.Context) (model.FormValues, error) {
	res := form.Validate(c.values)
	if !res.Valid() {
		return model.FormValues{}, &ValidationError{Errors: res.Errors}
	}

	c.status = model.StatusCompleted
	c.current = Steps[len(Steps)-1]
	c.save(ctx)
	c.trackDetached(model.EventAssessmentCompleted)
	return c.values, nil
}

func (c *Controller) save(ctx context.Context) {
	if c.saver == nil {
		return
	}
	if err := c.saver.SaveProgress(ctx, c.userID, c.assessmentType, c.status, c.Progress(), c.values); err != nil {
		c.log.Warn("progress save failed",
			zap.String("userId", c.userID),
			zap.String("assessmentType", string(c.assessmentType)),
			zap.Error(err))
	}
}

func (c *Controller) trackDetached(kind string) {
	if c.events == nil {
		return
	}
	go func() {
		if err := c.events.TrackEvent(context.Background(), c.userID, c.assessmentType, kind); err != nil {
			c.log.Warn("engagement event failed",
				zap.String("userId", c.userID),
				zap.String("event", kind),
				zap.Error(err))
		}
	}()
}
