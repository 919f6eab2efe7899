package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"docflow/internal/config"
	"docflow/internal/domain"
	"docflow/internal/port"
	"docflow/mocks"
)

func orchestratorConfig() *config.Config {
	return &config.Config{
		Storage:      config.StorageConfig{Bucket: "out"},
		Orchestrator: config.OrchestratorConfig{PollInterval: time.Millisecond},
	}
}

func TestOrchestratorAllBranchesComplete(t *testing.T) {
	inference := new(mocks.MockOntologyClient)
	saver := new(mocks.MockOntologySaver)
	notifier := new(mocks.MockNotifier)

	input := domain.Location{Bucket: "out", Prefix: "doc-1/textract/"}
	for _, kind := range domain.AllOntologies {
		output := domain.Location{Bucket: "out", Prefix: fmt.Sprintf("doc-1/comprehendmedical/%s", kind)}
		jobName := fmt.Sprintf("%s_doc-1", strings.ToUpper(string(kind)))
		jobID := "job-" + string(kind)

		inference.On("StartInference", mock.Anything, kind, input, output, jobName).Return(jobID, nil)
		inference.On("DescribeJob", mock.Anything, kind, jobID).
			Return(port.OntologyJob{JobID: jobID, Status: domain.JobStatusCompleted, Output: output}, nil)
		saver.On("Save", mock.Anything, kind, "doc-1", output).Return(nil)
	}
	notifier.On("Publish", mock.Anything, mock.MatchedBy(func(msg port.ResultMessage) bool {
		return msg.Subject == "Medical Ontology Extraction Complete" && msg.DocumentID == "doc-1"
	})).Return(nil)

	o := NewOrchestrator(inference, saver, notifier, orchestratorConfig())
	require.NoError(t, o.Run(context.Background(), "doc-1", input))

	saver.AssertNumberOfCalls(t, "Save", len(domain.AllOntologies))
	notifier.AssertExpectations(t)
}

func TestOrchestratorBranchFailurePublishesFailure(t *testing.T) {
	inference := new(mocks.MockOntologyClient)
	saver := new(mocks.MockOntologySaver)
	notifier := new(mocks.MockNotifier)

	input := domain.Location{Bucket: "out", Prefix: "doc-1/textract/"}
	for _, kind := range domain.AllOntologies {
		jobID := "job-" + string(kind)
		inference.On("StartInference", mock.Anything, kind, mock.Anything, mock.Anything, mock.Anything).
			Return(jobID, nil)
		status := domain.JobStatusCompleted
		if kind == domain.OntologyRxNorm {
			status = domain.JobStatusFailed
		}
		inference.On("DescribeJob", mock.Anything, kind, jobID).
			Return(port.OntologyJob{JobID: jobID, Status: status}, nil)
	}
	saver.On("Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	notifier.On("Publish", mock.Anything, mock.MatchedBy(func(msg port.ResultMessage) bool {
		return msg.Subject == "Medical Ontology Extraction Failed" && msg.DocumentID == "doc-1"
	})).Return(nil)

	o := NewOrchestrator(inference, saver, notifier, orchestratorConfig())
	err := o.Run(context.Background(), "doc-1", input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rxnorm branch")

	saver.AssertNotCalled(t, "Save", mock.Anything, domain.OntologyRxNorm, mock.Anything, mock.Anything)
	notifier.AssertExpectations(t)
}

func TestOrchestratorPollsUntilTerminal(t *testing.T) {
	inference := new(mocks.MockOntologyClient)
	saver := new(mocks.MockOntologySaver)
	notifier := new(mocks.MockNotifier)

	input := domain.Location{Bucket: "out", Prefix: "doc-1/textract/"}
	for _, kind := range domain.AllOntologies {
		jobID := "job-" + string(kind)
		inference.On("StartInference", mock.Anything, kind, mock.Anything, mock.Anything, mock.Anything).
			Return(jobID, nil)
		inference.On("DescribeJob", mock.Anything, kind, jobID).
			Return(port.OntologyJob{JobID: jobID, Status: domain.JobStatusInProgress}, nil).Twice()
		inference.On("DescribeJob", mock.Anything, kind, jobID).
			Return(port.OntologyJob{JobID: jobID, Status: domain.JobStatusCompleted}, nil)
	}
	saver.On("Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	notifier.On("Publish", mock.Anything, mock.Anything).Return(nil)

	o := NewOrchestrator(inference, saver, notifier, orchestratorConfig())
	require.NoError(t, o.Run(context.Background(), "doc-1", input))
	inference.AssertNumberOfCalls(t, "DescribeJob", 3*len(domain.AllOntologies))
}

func TestOrchestratorContextCancellation(t *testing.T) {
	inference := new(mocks.MockOntologyClient)
	saver := new(mocks.MockOntologySaver)
	notifier := new(mocks.MockNotifier)

	inference.On("StartInference", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("job", nil)
	inference.On("DescribeJob", mock.Anything, mock.Anything, "job").
		Return(port.OntologyJob{JobID: "job", Status: domain.JobStatusInProgress}, nil)
	notifier.On("Publish", mock.Anything, mock.Anything).Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	o := NewOrchestrator(inference, saver, notifier, orchestratorConfig())
	err := o.Run(ctx, "doc-1", domain.Location{Bucket: "out", Prefix: "doc-1/textract/"})
	require.ErrorIs(t, err, context.Canceled)
	saver.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestOrchestratorStartFailureStopsBranch(t *testing.T) {
	inference := new(mocks.MockOntologyClient)
	saver := new(mocks.MockOntologySaver)
	notifier := new(mocks.MockNotifier)
	boom := errors.New("quota exceeded")

	for _, kind := range domain.AllOntologies {
		if kind == domain.OntologyICD10 {
			inference.On("StartInference", mock.Anything, kind, mock.Anything, mock.Anything, mock.Anything).
				Return("", boom)
			continue
		}
		jobID := "job-" + string(kind)
		inference.On("StartInference", mock.Anything, kind, mock.Anything, mock.Anything, mock.Anything).
			Return(jobID, nil)
		inference.On("DescribeJob", mock.Anything, kind, jobID).
			Return(port.OntologyJob{JobID: jobID, Status: domain.JobStatusCompleted}, nil)
	}
	saver.On("Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	notifier.On("Publish", mock.Anything, mock.Anything).Return(nil)

	o := NewOrchestrator(inference, saver, notifier, orchestratorConfig())
	err := o.Run(context.Background(), "doc-1", domain.Location{Bucket: "out", Prefix: "doc-1/textract/"})
	require.ErrorIs(t, err, boom)
	saver.AssertNumberOfCalls(t, "Save", len(domain.AllOntologies)-1)
}
