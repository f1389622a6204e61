package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockTemplateStore is a mock implementation of port.TemplateStore.
type MockTemplateStore struct {
	mock.Mock
}

func (m *MockTemplateStore) Load(ctx context.Context, templateID string) ([]byte, error) {
	args := m.Called(ctx, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockTemplateStore) Save(ctx context.Context, templateID string, data []byte) error {
	args := m.Called(ctx, templateID, data)
	return args.Error(0)
}

func (m *MockTemplateStore) List(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
