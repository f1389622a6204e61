package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docugen/internal/domain"
)

// MockCompanyRegistry is a mock implementation of port.CompanyRegistry.
type MockCompanyRegistry struct {
	mock.Mock
}

func (m *MockCompanyRegistry) Resolve(ctx context.Context, name string) (*domain.CompanyProfile, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyProfile), args.Error(1)
}
