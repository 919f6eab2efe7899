package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docflow/internal/domain"
)

// MockOrchestrator is a mock implementation of service.Orchestrator.
type MockOrchestrator struct {
	mock.Mock
}

func (m *MockOrchestrator) Run(ctx context.Context, docID string, input domain.Location) error {
	args := m.Called(ctx, docID, input)
	return args.Error(0)
}
