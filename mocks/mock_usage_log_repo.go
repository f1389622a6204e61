package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docugen/internal/domain"
)

// MockUsageLogRepo is a mock implementation of port.UsageLogRepository.
type MockUsageLogRepo struct {
	mock.Mock
}

func (m *MockUsageLogRepo) Append(ctx context.Context, entry *domain.UsageEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockUsageLogRepo) List(ctx context.Context, limit int) ([]domain.UsageEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UsageEntry), args.Error(1)
}
