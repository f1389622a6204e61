package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docugen/internal/domain"
	"docugen/internal/service"
)

// MockGenerationService is a mock implementation of service.GenerationService.
type MockGenerationService struct {
	mock.Mock
}

func (m *MockGenerationService) Generate(ctx context.Context, username string, req *domain.GenerateRequest) (*service.GenerateOutput, error) {
	args := m.Called(ctx, username, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GenerateOutput), args.Error(1)
}
