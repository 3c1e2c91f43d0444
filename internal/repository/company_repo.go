package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"esgcompass/internal/model"
)

// CompanyRepo handles MongoDB operations for company profiles.
type CompanyRepo interface {
	Upsert(ctx context.Context, company *model.Company) error
	GetByUserID(ctx context.Context, userID string) (*model.Company, error)
}

type companyRepo struct {
	collection *mongo.Collection
}

// NewCompanyRepo creates a new company repository.
func NewCompanyRepo(db *mongo.Database) CompanyRepo {
	return &companyRepo{
		collection: db.Collection("companies"),
	}
}

func (r *companyRepo) Upsert(ctx context.Context, company *model.Company) error {
	company.UpdatedAt = time.Now()
	if company.CreatedAt.IsZero() {
		company.CreatedAt = company.UpdatedAt
	}

	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"userId": company.UserID}, company, opts)
	return err
}

func (r *companyRepo) GetByUserID(ctx context.Context, userID string) (*model.Company, error) {
	var company model.Company
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&company)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}
