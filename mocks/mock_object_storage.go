package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docflow/internal/domain"
)

// MockObjectStorage is a mock implementation of port.ObjectStorage.
type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) SaveText(ctx context.Context, key, contents string) (domain.Location, error) {
	args := m.Called(ctx, key, contents)
	return args.Get(0).(domain.Location), args.Error(1)
}

func (m *MockObjectStorage) Read(ctx context.Context, bucket, key string) ([]byte, error) {
	args := m.Called(ctx, bucket, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockObjectStorage) FilesForPrefix(ctx context.Context, bucket, prefix string, keep func(key string) bool) ([][]byte, error) {
	args := m.Called(ctx, bucket, prefix, keep)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([][]byte), args.Error(1)
}
