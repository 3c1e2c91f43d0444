package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"esgcompass/internal/cache"
	"esgcompass/internal/metrics"
	"esgcompass/internal/model"
)

// EngagementService awards gamified points for assessment milestones.
// It sits strictly off the main flow: callers fire events and ignore
// failures. Implements wizard.EventSink.
type EngagementService struct {
	cache cache.EngagementCache
	mtr   *metrics.Metrics
	log   *zap.Logger
}

// NewEngagementService creates a new engagement service.
func NewEngagementService(cache cache.EngagementCache, mtr *metrics.Metrics, log *zap.Logger) *EngagementService {
	return &EngagementService{cache: cache, mtr: mtr, log: log}
}

// TrackEvent awards points for an event kind, at most once per user,
// assessment type and kind. Unknown kinds are rejected.
func (s *EngagementService) TrackEvent(ctx context.Context, userID string, t model.AssessmentType, kind string) error {
	points, ok := model.EventPoints[kind]
	if !ok {
		return fmt.Errorf("unknown engagement event %q", kind)
	}

	first, err := s.cache.MarkOnce(ctx, userID, string(t)+":"+kind)
	if err != nil {
		return err
	}
	if !first {
		return nil
	}

	if err := s.cache.AddPoints(ctx, userID, points); err != nil {
		return err
	}

	if s.mtr != nil {
		s.mtr.EngagementEvents.WithLabelValues(kind).Inc()
	}
	s.log.Info("engagement event",
		zap.String("userId", userID),
		zap.String("event", kind),
		zap.Int("points", points))
	return nil
}

// Points returns the user's current total.
func (s *EngagementService) Points(ctx context.Context, userID string) (int, error) {
	return s.cache.GetPoints(ctx, userID)
}

// Leaderboard returns the top scorers.
func (s *EngagementService) Leaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	return s.cache.GetTop(ctx, limit)
}
