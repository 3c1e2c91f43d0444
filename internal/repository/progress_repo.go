package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"esgcompass/internal/model"
)

// ProgressRepo handles MongoDB operations for assessment drafts.
type ProgressRepo interface {
	Upsert(ctx context.Context, record *model.ProgressRecord) error
	GetByUser(ctx context.Context, userID string, t model.AssessmentType) (*model.ProgressRecord, error)
}

type progressRepo struct {
	collection *mongo.Collection
}

// NewProgressRepo creates a new progress repository.
func NewProgressRepo(db *mongo.Database) ProgressRepo {
	return &progressRepo{
		collection: db.Collection("assessment_progress"),
	}
}

// Upsert replaces the record keyed by (userId, assessmentType). The
// replace is atomic server-side, so concurrent saves cannot interleave
// partial snapshots.
func (r *progressRepo) Upsert(ctx context.Context, record *model.ProgressRecord) error {
	record.UpdatedAt = time.Now()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = record.UpdatedAt
	}

	opts := options.Replace().SetUpsert(true)
	filter := bson.M{"userId": record.UserID, "assessmentType": record.AssessmentType}
	_, err := r.collection.ReplaceOne(ctx, filter, record, opts)
	return err
}

func (r *progressRepo) GetByUser(ctx context.Context, userID string, t model.AssessmentType) (*model.ProgressRecord, error) {
	var record model.ProgressRecord
	err := r.collection.FindOne(ctx, bson.M{"userId": userID, "assessmentType": t}).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}
