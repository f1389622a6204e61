package port

import (
	"context"

	"docugen/internal/domain"
)

// CompanyRegistry resolves a company profile by name from the external
// registration data source. Returns domain.ErrCompanyNotFound when the
// name has no match.
type CompanyRegistry interface {
	Resolve(ctx context.Context, name string) (*domain.CompanyProfile, error)
}
