package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docflow/internal/domain"
	"docflow/internal/port"
)

// MockOntologyClient is a mock implementation of port.OntologyClient.
type MockOntologyClient struct {
	mock.Mock
}

func (m *MockOntologyClient) StartInference(ctx context.Context, kind domain.OntologyKind, input, output domain.Location, jobName string) (string, error) {
	args := m.Called(ctx, kind, input, output, jobName)
	return args.String(0), args.Error(1)
}

func (m *MockOntologyClient) DescribeJob(ctx context.Context, kind domain.OntologyKind, jobID string) (port.OntologyJob, error) {
	args := m.Called(ctx, kind, jobID)
	return args.Get(0).(port.OntologyJob), args.Error(1)
}
