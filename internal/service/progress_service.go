package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"esgcompass/internal/metrics"
	"esgcompass/internal/model"
	"esgcompass/internal/repository"
)

// ProgressService syncs in-memory form state with the per-user,
// per-assessment-type draft record. Saves for the same draft are
// serialized with a keyed mutex so a slow earlier save cannot overwrite
// a faster later one.
type ProgressService struct {
	repo repository.ProgressRepo
	mtr  *metrics.Metrics
	log  *zap.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewProgressService creates a new progress service.
func NewProgressService(repo repository.ProgressRepo, mtr *metrics.Metrics, log *zap.Logger) *ProgressService {
	return &ProgressService{
		repo:  repo,
		mtr:   mtr,
		log:   log,
		locks: make(map[string]*sync.Mutex),
	}
}

// Load fetches the user's draft for the given assessment type. A missing
// draft yields a fresh not-started record; only schema-recognized fields
// from the stored snapshot are rehydrated.
func (s *ProgressService) Load(ctx context.Context, userID string, t model.AssessmentType) (*model.ProgressRecord, model.FormValues, error) {
	record, err := s.repo.GetByUser(ctx, userID, t)
	if err != nil {
		return nil, model.FormValues{}, err
	}
	if record == nil {
		fresh := &model.ProgressRecord{
			UserID:         userID,
			AssessmentType: t,
			Status:         model.StatusNotStarted,
			Progress:       0,
		}
		return fresh, model.FormValues{}, nil
	}

	var values model.FormValues
	values.MergeMap(record.FormData)
	return record, values, nil
}

// SaveProgress upserts the draft snapshot. Idempotent: saving identical
// arguments twice leaves the stored record unchanged apart from its
// update timestamp. Implements wizard.Saver.
func (s *ProgressService) SaveProgress(ctx context.Context, userID string, t model.AssessmentType, status model.AssessmentStatus, progress int, values model.FormValues) error {
	lock := s.lockFor(userID, t)
	lock.Lock()
	defer lock.Unlock()

	record := &model.ProgressRecord{
		UserID:         userID,
		AssessmentType: t,
		Status:         status,
		Progress:       progress,
		FormData:       values.FieldMap(),
	}

	err := s.repo.Upsert(ctx, record)
	if s.mtr != nil {
		result := "ok"
		if err != nil {
			result = "error"
		}
		s.mtr.ProgressSaves.WithLabelValues(result).Inc()
	}
	if err != nil {
		s.log.Warn("draft save failed",
			zap.String("userId", userID),
			zap.String("assessmentType", string(t)),
			zap.Error(err))
	}
	return err
}

func (s *ProgressService) lockFor(userID string, t model.AssessmentType) *sync.Mutex {
	key := userID + "|" + string(t)
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	return lock
}
