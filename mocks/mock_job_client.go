package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docflow/internal/domain"
)

// MockJobClient is a mock implementation of port.JobClient.
type MockJobClient struct {
	mock.Mock
}

func (m *MockJobClient) StartTextDetection(ctx context.Context, bucket, key, jobTag string) (string, error) {
	args := m.Called(ctx, bucket, key, jobTag)
	return args.String(0), args.Error(1)
}

func (m *MockJobClient) StartExpenseAnalysis(ctx context.Context, bucket, key, jobTag string) (string, error) {
	args := m.Called(ctx, bucket, key, jobTag)
	return args.String(0), args.Error(1)
}

func (m *MockJobClient) StartDocumentAnalysis(ctx context.Context, bucket, key, jobTag string, queries []domain.Query) (string, error) {
	args := m.Called(ctx, bucket, key, jobTag, queries)
	return args.String(0), args.Error(1)
}

func (m *MockJobClient) TextDetectionPage(ctx context.Context, jobID string, token *string) ([]domain.Block, *string, error) {
	args := m.Called(ctx, jobID, token)
	var blocks []domain.Block
	if args.Get(0) != nil {
		blocks = args.Get(0).([]domain.Block)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return blocks, next, args.Error(2)
}

func (m *MockJobClient) ExpenseAnalysisPage(ctx context.Context, jobID string, token *string) ([]domain.ExpenseDoc, *string, error) {
	args := m.Called(ctx, jobID, token)
	var docs []domain.ExpenseDoc
	if args.Get(0) != nil {
		docs = args.Get(0).([]domain.ExpenseDoc)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return docs, next, args.Error(2)
}

func (m *MockJobClient) DocumentAnalysisPage(ctx context.Context, jobID string, token *string) ([]domain.Block, *string, error) {
	args := m.Called(ctx, jobID, token)
	var blocks []domain.Block
	if args.Get(0) != nil {
		blocks = args.Get(0).([]domain.Block)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return blocks, next, args.Error(2)
}
