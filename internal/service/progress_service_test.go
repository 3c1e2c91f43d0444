package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"esgcompass/internal/model"
)

func TestProgressService_LoadFresh(t *testing.T) {
	svc := NewProgressService(newMemProgressRepo(), nil, zap.NewNop())

	record, values, err := svc.Load(context.Background(), "u1", model.AssessmentESG)
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, model.StatusNotStarted, record.Status)
	assert.Equal(t, 0, record.Progress)
	assert.Equal(t, model.FormValues{}, values)
}

func TestProgressService_SaveThenLoadRoundTrip(t *testing.T) {
	svc := NewProgressService(newMemProgressRepo(), nil, zap.NewNop())
	ctx := context.Background()

	values := model.FormValues{
		CompanyName:            "Acme Corp",
		Industry:               "Manufacturing",
		EmployeeCount:          "11-50",
		EnvironmentalPractices: "solar on all sites",
	}
	require.NoError(t, svc.SaveProgress(ctx, "u1", model.AssessmentESG, model.StatusInProgress, 40, values))

	record, loaded, err := svc.Load(ctx, "u1", model.AssessmentESG)
	require.NoError(t, err)
	assert.Equal(t, model.StatusInProgress, record.Status)
	assert.Equal(t, 40, record.Progress)
	assert.Equal(t, values, loaded)
}

func TestProgressService_DraftsKeyedByAssessmentType(t *testing.T) {
	svc := NewProgressService(newMemProgressRepo(), nil, zap.NewNop())
	ctx := context.Background()

	esg := model.FormValues{Industry: "Retail", EmployeeCount: "1-10"}
	unified := model.FormValues{Industry: "Energy", EmployeeCount: "500+"}
	require.NoError(t, svc.SaveProgress(ctx, "u1", model.AssessmentESG, model.StatusInProgress, 40, esg))
	require.NoError(t, svc.SaveProgress(ctx, "u1", model.AssessmentUnified, model.StatusInProgress, 80, unified))

	_, got, err := svc.Load(ctx, "u1", model.AssessmentESG)
	require.NoError(t, err)
	assert.Equal(t, esg, got)

	record, got, err := svc.Load(ctx, "u1", model.AssessmentUnified)
	require.NoError(t, err)
	assert.Equal(t, unified, got)
	assert.Equal(t, 80, record.Progress)
}

func TestProgressService_SaveIdempotent(t *testing.T) {
	repo := newMemProgressRepo()
	svc := NewProgressService(repo, nil, zap.NewNop())
	ctx := context.Background()

	values := model.FormValues{Industry: "IT", EmployeeCount: "51-200"}
	require.NoError(t, svc.SaveProgress(ctx, "u1", model.AssessmentESG, model.StatusInProgress, 60, values))
	first, _, err := svc.Load(ctx, "u1", model.AssessmentESG)
	require.NoError(t, err)

	require.NoError(t, svc.SaveProgress(ctx, "u1", model.AssessmentESG, model.StatusInProgress, 60, values))
	second, loaded, err := svc.Load(ctx, "u1", model.AssessmentESG)
	require.NoError(t, err)

	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.Progress, second.Progress)
	assert.Equal(t, first.FormData, second.FormData)
	assert.Equal(t, values, loaded)
	assert.Equal(t, 2, repo.upserts)
}

func TestProgressService_UnrecognizedStoredFieldsDropped(t *testing.T) {
	repo := newMemProgressRepo()
	repo.records[progressKey("u1", model.AssessmentESG)] = &model.ProgressRecord{
		UserID:         "u1",
		AssessmentType: model.AssessmentESG,
		Status:         model.StatusInProgress,
		Progress:       40,
		FormData: map[string]string{
			"industry":     "Retail",
			"legacy_field": "should vanish",
		},
	}
	svc := NewProgressService(repo, nil, zap.NewNop())

	_, values, err := svc.Load(context.Background(), "u1", model.AssessmentESG)
	require.NoError(t, err)
	assert.Equal(t, model.FormValues{Industry: "Retail"}, values)
}

func TestProgressService_SaveErrorSurfaced(t *testing.T) {
	repo := newMemProgressRepo()
	repo.saveErr = errors.New("mongo down")
	svc := NewProgressService(repo, nil, zap.NewNop())

	err := svc.SaveProgress(context.Background(), "u1", model.AssessmentESG, model.StatusInProgress, 40, model.FormValues{})
	assert.Error(t, err)
}
