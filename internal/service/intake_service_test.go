package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"docflow/internal/config"
	"docflow/internal/domain"
	"docflow/internal/extract"
	"docflow/mocks"
)

var intakeCfg = config.IntakeConfig{
	PleadingPrefix: "pleadings/",
	ExpensePrefix:  "expenses/",
}

func TestHandleTriggerUnsupportedFileType(t *testing.T) {
	svc := NewIntakeService(new(mocks.MockDocumentStore), new(mocks.MockJobClient), new(mocks.MockCorrespondenceService), intakeCfg)

	err := svc.HandleTrigger(context.Background(), domain.TriggerEvent{Bucket: "in", Key: "notes.txt"})
	require.ErrorIs(t, err, domain.ErrUnsupportedFileType)
	assert.True(t, domain.IsFatal(err))
}

func TestHandleTriggerRoutesEmail(t *testing.T) {
	correspondence := new(mocks.MockCorrespondenceService)
	event := domain.TriggerEvent{Bucket: "in", Key: "mail/claim.eml"}
	correspondence.On("ProcessEmail", mock.Anything, event).Return(nil)

	svc := NewIntakeService(new(mocks.MockDocumentStore), new(mocks.MockJobClient), correspondence, intakeCfg)
	require.NoError(t, svc.HandleTrigger(context.Background(), event))
	correspondence.AssertExpectations(t)
}

func TestHandleTriggerRoutesTranscript(t *testing.T) {
	correspondence := new(mocks.MockCorrespondenceService)
	event := domain.TriggerEvent{Bucket: "in", Key: "calls/call.json"}
	correspondence.On("ProcessTranscript", mock.Anything, event).Return(nil)

	svc := NewIntakeService(new(mocks.MockDocumentStore), new(mocks.MockJobClient), correspondence, intakeCfg)
	require.NoError(t, svc.HandleTrigger(context.Background(), event))
	correspondence.AssertExpectations(t)
}

func TestHandleTriggerMedicalStartsBothJobs(t *testing.T) {
	store := new(mocks.MockDocumentStore)
	jobs := new(mocks.MockJobClient)
	event := domain.TriggerEvent{Bucket: "in", Key: "records/visit.pdf"}
	docID := domain.DocumentID(event.Key)

	store.On("Insert", mock.Anything, docID, map[string]any{
		"originalFile": event.Key,
		"type":         "medical",
	}).Return(nil)
	jobs.On("StartTextDetection", mock.Anything, "in", event.Key, docID).Return("text-job", nil)
	jobs.On("StartExpenseAnalysis", mock.Anything, "in", event.Key, docID).Return("expense-job", nil)

	svc := NewIntakeService(store, jobs, new(mocks.MockCorrespondenceService), intakeCfg)
	require.NoError(t, svc.HandleTrigger(context.Background(), event))
	store.AssertExpectations(t)
	jobs.AssertExpectations(t)
}

func TestHandleTriggerMedicalAttemptsBothOnFailure(t *testing.T) {
	store := new(mocks.MockDocumentStore)
	jobs := new(mocks.MockJobClient)
	event := domain.TriggerEvent{Bucket: "in", Key: "records/visit.pdf"}
	boom := errors.New("throttled")

	store.On("Insert", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	jobs.On("StartTextDetection", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", boom)
	jobs.On("StartExpenseAnalysis", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("expense-job", nil)

	svc := NewIntakeService(store, jobs, new(mocks.MockCorrespondenceService), intakeCfg)
	err := svc.HandleTrigger(context.Background(), event)
	require.ErrorIs(t, err, boom)
	jobs.AssertCalled(t, "StartExpenseAnalysis", mock.Anything, "in", event.Key, domain.DocumentID(event.Key))
}

func TestHandleTriggerPleadingPrefix(t *testing.T) {
	store := new(mocks.MockDocumentStore)
	jobs := new(mocks.MockJobClient)
	event := domain.TriggerEvent{Bucket: "in", Key: "pleadings/petition.pdf"}
	docID := domain.DocumentID(event.Key)

	store.On("Insert", mock.Anything, docID, map[string]any{
		"originalFile": event.Key,
		"type":         "pleading",
	}).Return(nil)
	jobs.On("StartDocumentAnalysis", mock.Anything, "in", event.Key, docID, extract.PleadingQueries).Return("analysis-job", nil)

	svc := NewIntakeService(store, jobs, new(mocks.MockCorrespondenceService), intakeCfg)
	require.NoError(t, svc.HandleTrigger(context.Background(), event))
	jobs.AssertExpectations(t)
	jobs.AssertNotCalled(t, "StartTextDetection", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleTriggerExpensePrefix(t *testing.T) {
	store := new(mocks.MockDocumentStore)
	jobs := new(mocks.MockJobClient)
	event := domain.TriggerEvent{Bucket: "in", Key: "expenses/invoice.pdf"}
	docID := domain.DocumentID(event.Key)

	store.On("Insert", mock.Anything, docID, map[string]any{
		"originalFile": event.Key,
		"type":         "expense",
	}).Return(nil)
	jobs.On("StartExpenseAnalysis", mock.Anything, "in", event.Key, docID).Return("expense-job", nil)

	svc := NewIntakeService(store, jobs, new(mocks.MockCorrespondenceService), intakeCfg)
	require.NoError(t, svc.HandleTrigger(context.Background(), event))
	jobs.AssertExpectations(t)
	jobs.AssertNotCalled(t, "StartTextDetection", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
