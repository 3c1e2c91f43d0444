package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"esgcompass/internal/model"
)

// ReportRepo handles MongoDB operations for analysis reports and expert
// review requests.
type ReportRepo interface {
	SaveReport(ctx context.Context, report *model.AnalysisReport) error
	GetReport(ctx context.Context, userID string, t model.AssessmentType) (*model.AnalysisReport, error)
	SaveReviewRequest(ctx context.Context, request *model.ReviewRequest) error
	ListReviewRequests(ctx context.Context, status model.ReviewRequestStatus) ([]*model.ReviewRequest, error)
}

type reportRepo struct {
	reports *mongo.Collection
	reviews *mongo.Collection
}

// NewReportRepo creates a new report repository.
func NewReportRepo(db *mongo.Database) ReportRepo {
	return &reportRepo{
		reports: db.Collection("analysis_reports"),
		reviews: db.Collection("review_requests"),
	}
}

// SaveReport keeps the latest report per (userId, assessmentType); a new
// analysis for the same assessment supersedes the previous narrative.
func (r *reportRepo) SaveReport(ctx context.Context, report *model.AnalysisReport) error {
	opts := options.Replace().SetUpsert(true)
	filter := bson.M{"userId": report.UserID, "assessmentType": report.AssessmentType}
	_, err := r.reports.ReplaceOne(ctx, filter, report, opts)
	return err
}

func (r *reportRepo) GetReport(ctx context.Context, userID string, t model.AssessmentType) (*model.AnalysisReport, error) {
	var report model.AnalysisReport
	err := r.reports.FindOne(ctx, bson.M{"userId": userID, "assessmentType": t}).Decode(&report)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportRepo) SaveReviewRequest(ctx context.Context, request *model.ReviewRequest) error {
	result, err := r.reviews.InsertOne(ctx, request)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		request.ID = oid.Hex()
	}
	return nil
}

func (r *reportRepo) ListReviewRequests(ctx context.Context, status model.ReviewRequestStatus) ([]*model.ReviewRequest, error) {
	cursor, err := r.reviews.Find(ctx, bson.M{"status": status})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var requests []*model.ReviewRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}
