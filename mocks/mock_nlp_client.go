package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docflow/internal/domain"
)

// MockNLPClient is a mock implementation of port.NLPClient.
type MockNLPClient struct {
	mock.Mock
}

func (m *MockNLPClient) DetectEntities(ctx context.Context, text string) ([]domain.NLPEntity, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NLPEntity), args.Error(1)
}

func (m *MockNLPClient) DetectSentiment(ctx context.Context, text string) (string, error) {
	args := m.Called(ctx, text)
	return args.String(0), args.Error(1)
}

func (m *MockNLPClient) DetectKeyPhrases(ctx context.Context, text string) ([]domain.KeyPhrase, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.KeyPhrase), args.Error(1)
}
