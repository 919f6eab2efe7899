package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docflow/internal/domain"
)

// MockOntologySaver is a mock implementation of service.OntologySaver.
type MockOntologySaver struct {
	mock.Mock
}

func (m *MockOntologySaver) Save(ctx context.Context, kind domain.OntologyKind, docID string, output domain.Location) error {
	args := m.Called(ctx, kind, docID, output)
	return args.Error(0)
}
