package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockReportService is a mock implementation of service.ReportService.
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) UsageReport(ctx context.Context, limit int) ([]byte, string, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}
