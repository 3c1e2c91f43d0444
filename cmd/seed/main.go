package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"esgcompass/internal/model"
	"esgcompass/internal/repository"
	"esgcompass/internal/service"
)

// Seeds a demo company profile and a mid-flow ESG draft so the wizard
// has something to resume against a fresh database.
func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGO_DATABASE")
	if dbName == "" {
		dbName = "esgcompass"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(dbName)

	email := "demo@esgcompass.local"
	userID := service.UserIDForEmail(email)

	companies := repository.NewCompanyRepo(db)
	if err := companies.Upsert(ctx, &model.Company{
		UserID:        userID,
		Name:          "Demo Industries",
		Industry:      "Manufacturing",
		EmployeeCount: "51-200",
	}); err != nil {
		log.Fatalf("Failed to seed company: %v", err)
	}

	drafts := repository.NewProgressRepo(db)
	if err := drafts.Upsert(ctx, &model.ProgressRecord{
		UserID:         userID,
		AssessmentType: model.AssessmentESG,
		Status:         model.StatusInProgress,
		Progress:       40,
		FormData: map[string]string{
			model.FieldCompanyName:            "Demo Industries",
			model.FieldIndustry:               "Manufacturing",
			model.FieldEmployeeCount:          "51-200",
			model.FieldEnvironmentalPractices: "LED retrofit across both plants, waste sorting since 2024",
		},
	}); err != nil {
		log.Fatalf("Failed to seed draft: %v", err)
	}

	fmt.Printf("Seeded company and ESG draft for %s (user %s)\n", email, userID)
}
