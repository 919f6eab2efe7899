package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docflow/internal/port"
)

// MockMessageQueue is a mock implementation of port.MessageQueue.
type MockMessageQueue struct {
	mock.Mock
}

func (m *MockMessageQueue) Receive(ctx context.Context, max int) ([]port.QueueMessage, error) {
	args := m.Called(ctx, max)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]port.QueueMessage), args.Error(1)
}

func (m *MockMessageQueue) Delete(ctx context.Context, receiptHandle string) error {
	args := m.Called(ctx, receiptHandle)
	return args.Error(0)
}
