package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"esgcompass/internal/model"
)

func TestTrackEvent_AwardsOnce(t *testing.T) {
	cache := newMemEngagementCache()
	svc := NewEngagementService(cache, nil, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, svc.TrackEvent(ctx, "u1", model.AssessmentESG, model.EventAssessmentStarted))
	require.NoError(t, svc.TrackEvent(ctx, "u1", model.AssessmentESG, model.EventAssessmentStarted))

	pts, err := svc.Points(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 10, pts)
}

func TestTrackEvent_PerAssessmentType(t *testing.T) {
	svc := NewEngagementService(newMemEngagementCache(), nil, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, svc.TrackEvent(ctx, "u1", model.AssessmentESG, model.EventAssessmentStarted))
	require.NoError(t, svc.TrackEvent(ctx, "u1", model.AssessmentUnified, model.EventAssessmentStarted))

	pts, err := svc.Points(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 20, pts)
}

func TestTrackEvent_FullJourneyTotal(t *testing.T) {
	svc := NewEngagementService(newMemEngagementCache(), nil, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, svc.TrackEvent(ctx, "u1", model.AssessmentESG, model.EventAssessmentStarted))
	require.NoError(t, svc.TrackEvent(ctx, "u1", model.AssessmentESG, model.EventAssessmentCompleted))
	require.NoError(t, svc.TrackEvent(ctx, "u1", model.AssessmentESG, model.EventAnalysisGenerated))

	pts, err := svc.Points(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 85, pts)
}

func TestTrackEvent_UnknownKind(t *testing.T) {
	svc := NewEngagementService(newMemEngagementCache(), nil, zap.NewNop())
	err := svc.TrackEvent(context.Background(), "u1", model.AssessmentESG, "logged_in")
	assert.Error(t, err)
}
