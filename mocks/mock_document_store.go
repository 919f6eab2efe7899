package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockDocumentStore is a mock implementation of port.DocumentStore.
type MockDocumentStore struct {
	mock.Mock
}

func (m *MockDocumentStore) Insert(ctx context.Context, docID string, fields map[string]any) error {
	args := m.Called(ctx, docID, fields)
	return args.Error(0)
}

func (m *MockDocumentStore) Update(ctx context.Context, docID string, fields map[string]any) error {
	args := m.Called(ctx, docID, fields)
	return args.Error(0)
}

func (m *MockDocumentStore) Get(ctx context.Context, docID string) (map[string]any, error) {
	args := m.Called(ctx, docID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}
