package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docflow/internal/domain"
)

// MockTextSaver is a mock implementation of service.TextSaver.
type MockTextSaver struct {
	mock.Mock
}

func (m *MockTextSaver) Save(ctx context.Context, note domain.JobNotification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

// MockExpenseSaver is a mock implementation of service.ExpenseSaver.
type MockExpenseSaver struct {
	mock.Mock
}

func (m *MockExpenseSaver) Save(ctx context.Context, note domain.JobNotification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

// MockPleadingSaver is a mock implementation of service.PleadingSaver.
type MockPleadingSaver struct {
	mock.Mock
}

func (m *MockPleadingSaver) Save(ctx context.Context, note domain.JobNotification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

// MockCorrespondenceService is a mock implementation of
// service.CorrespondenceService.
type MockCorrespondenceService struct {
	mock.Mock
}

func (m *MockCorrespondenceService) ProcessEmail(ctx context.Context, event domain.TriggerEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockCorrespondenceService) ProcessTranscript(ctx context.Context, event domain.TriggerEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
