package service

import (
	"context"
	"errors"
	"sync"

	"esgcompass/internal/model"
)

// In-memory doubles for the mongo repositories and the redis cache,
// shared by the service tests.

type memProgressRepo struct {
	mu      sync.Mutex
	records map[string]*model.ProgressRecord
	upserts int
	getErr  error
	saveErr error
}

func newMemProgressRepo() *memProgressRepo {
	return &memProgressRepo{records: make(map[string]*model.ProgressRecord)}
}

func progressKey(userID string, t model.AssessmentType) string {
	return userID + "|" + string(t)
}

func (r *memProgressRepo) Upsert(_ context.Context, record *model.ProgressRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.upserts++
	if r.saveErr != nil {
		return r.saveErr
	}
	stored := *record
	r.records[progressKey(record.UserID, record.AssessmentType)] = &stored
	return nil
}

func (r *memProgressRepo) GetByUser(_ context.Context, userID string, t model.AssessmentType) (*model.ProgressRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getErr != nil {
		return nil, r.getErr
	}
	record, ok := r.records[progressKey(userID, t)]
	if !ok {
		return nil, nil
	}
	copied := *record
	return &copied, nil
}

type memCompanyRepo struct {
	companies map[string]*model.Company
}

func newMemCompanyRepo() *memCompanyRepo {
	return &memCompanyRepo{companies: make(map[string]*model.Company)}
}

func (r *memCompanyRepo) Upsert(_ context.Context, company *model.Company) error {
	stored := *company
	r.companies[company.UserID] = &stored
	return nil
}

func (r *memCompanyRepo) GetByUserID(_ context.Context, userID string) (*model.Company, error) {
	company, ok := r.companies[userID]
	if !ok {
		return nil, nil
	}
	copied := *company
	return &copied, nil
}

type memReportRepo struct {
	reports  map[string]*model.AnalysisReport
	reviews  []*model.ReviewRequest
	saveErr  error
	getErr   error
	savedCnt int
}

func newMemReportRepo() *memReportRepo {
	return &memReportRepo{reports: make(map[string]*model.AnalysisReport)}
}

func (r *memReportRepo) SaveReport(_ context.Context, report *model.AnalysisReport) error {
	r.savedCnt++
	if r.saveErr != nil {
		return r.saveErr
	}
	stored := *report
	r.reports[progressKey(report.UserID, report.AssessmentType)] = &stored
	return nil
}

func (r *memReportRepo) GetReport(_ context.Context, userID string, t model.AssessmentType) (*model.AnalysisReport, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	report, ok := r.reports[progressKey(userID, t)]
	if !ok {
		return nil, nil
	}
	copied := *report
	return &copied, nil
}

func (r *memReportRepo) SaveReviewRequest(_ context.Context, request *model.ReviewRequest) error {
	request.ID = "rev1"
	stored := *request
	r.reviews = append(r.reviews, &stored)
	return nil
}

func (r *memReportRepo) ListReviewRequests(_ context.Context, status model.ReviewRequestStatus) ([]*model.ReviewRequest, error) {
	var out []*model.ReviewRequest
	for _, req := range r.reviews {
		if req.Status == status {
			out = append(out, req)
		}
	}
	return out, nil
}

type memEngagementCache struct {
	mu      sync.Mutex
	markers map[string]bool
	points  map[string]int
}

func newMemEngagementCache() *memEngagementCache {
	return &memEngagementCache{markers: make(map[string]bool), points: make(map[string]int)}
}

func (c *memEngagementCache) MarkOnce(_ context.Context, userID, marker string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := userID + "|" + marker
	if c.markers[key] {
		return false, nil
	}
	c.markers[key] = true
	return true, nil
}

func (c *memEngagementCache) AddPoints(_ context.Context, userID string, points int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.points[userID] += points
	return nil
}

func (c *memEngagementCache) GetPoints(_ context.Context, userID string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.points[userID], nil
}

func (c *memEngagementCache) GetTop(_ context.Context, limit int) ([]model.LeaderboardEntry, error) {
	return nil, errors.New("not implemented in fake")
}

type fakeNarrator struct {
	narrative string
	err       error
	calls     int
	lastKind  string
	lastBody  string
}

func (f *fakeNarrator) Invoke(_ context.Context, kind, content, _ string) (string, error) {
	f.calls++
	f.lastKind = kind
	f.lastBody = content
	if f.err != nil {
		return "", f.err
	}
	return f.narrative, nil
}
