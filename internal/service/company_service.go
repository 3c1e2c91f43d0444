package service

import (
	"context"

	"esgcompass/internal/form"
	"esgcompass/internal/model"
	"esgcompass/internal/repository"
)

// CompanyService manages the company profile used to pre-fill the first
// wizard step.
type CompanyService struct {
	repo repository.CompanyRepo
}

// NewCompanyService creates a new company service.
func NewCompanyService(repo repository.CompanyRepo) *CompanyService {
	return &CompanyService{repo: repo}
}

// Get returns the user's company, or nil when none exists yet.
func (s *CompanyService) Get(ctx context.Context, userID string) (*model.Company, error) {
	return s.repo.GetByUserID(ctx, userID)
}

// Save validates and upserts the user's company profile. The same field
// rules apply as on the wizard's first step.
func (s *CompanyService) Save(ctx context.Context, userID string, company *model.Company) (*model.Company, error) {
	res := form.Validate(model.FormValues{
		CompanyName:   company.Name,
		Industry:      company.Industry,
		EmployeeCount: company.EmployeeCount,
	})
	if !res.Valid() {
		return nil, &CompanyValidationError{Errors: res.Errors}
	}

	company.UserID = userID
	if err := s.repo.Upsert(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// CompanyValidationError carries the field errors from a rejected
// company profile.
type CompanyValidationError struct {
	Errors []form.FieldError
}

func (e *CompanyValidationError) Error() string {
	return "company profile validation failed"
}
