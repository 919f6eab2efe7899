package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"docflow/internal/config"
	"docflow/internal/domain"
	"docflow/internal/port"
)

// Orchestrator runs the ontology inference state machine for one document:
// one branch per ontology kind, each branch submit → wait → poll → branch,
// with a fan-in that aggregates success or failure and notifies downstream.
type Orchestrator interface {
	Run(ctx context.Context, docID string, input domain.Location) error
}

type orchestrator struct {
	inference port.OntologyClient
	saver     OntologySaver
	notifier  port.Notifier
	bucket    string
	cfg       config.OrchestratorConfig
}

// NewOrchestrator creates a new Orchestrator implementation.
func NewOrchestrator(inference port.OntologyClient, saver OntologySaver, notifier port.Notifier, cfg *config.Config) Orchestrator {
	return &orchestrator{
		inference: inference,
		saver:     saver,
		notifier:  notifier,
		bucket:    cfg.Storage.Bucket,
		cfg:       cfg.Orchestrator,
	}
}

// Run blocks until every branch reaches a terminal state or ctx expires.
// Branch results are not collected beyond success/failure: each branch's
// saver already persisted its output as a side effect. The execution
// reference in the notification lets an operator find this run in the logs.
func (o *orchestrator) Run(ctx context.Context, docID string, input domain.Location) error {
	execution := uuid.NewString()
	log.Printf("orchestrator: execution %s started for document %s", execution, docID)

	results := make(chan error, len(domain.AllOntologies))
	for _, kind := range domain.AllOntologies {
		go func(kind domain.OntologyKind) {
			results <- o.runBranch(ctx, kind, docID, input)
		}(kind)
	}

	var failures []error
	for range domain.AllOntologies {
		if err := <-results; err != nil {
			failures = append(failures, err)
		}
	}

	if len(failures) > 0 {
		err := errors.Join(failures...)
		notifyErr := o.notifier.Publish(ctx, port.ResultMessage{
			Subject: "Medical Ontology Extraction Failed",
			Message: fmt.Sprintf("Ontology extraction failed for document %q.\nExecution reference: %s\n%v\n", docID, execution, err),
			DocumentID: docID,
			JobID:      execution,
		})
		if notifyErr != nil {
			log.Printf("orchestrator: execution %s failure notification failed: %v", execution, notifyErr)
		}
		return err
	}

	log.Printf("orchestrator: execution %s completed for document %s", execution, docID)
	return o.notifier.Publish(ctx, port.ResultMessage{
		Subject: "Medical Ontology Extraction Complete",
		Message: fmt.Sprintf("All ontology codes have been extracted for document %q.\nExecution reference: %s\n", docID, execution),
		DocumentID: docID,
		JobID:      execution,
	})
}

// runBranch drives one ontology kind to a terminal state. Transitions are
// observed, never driven: the external service owns the job lifecycle.
func (o *orchestrator) runBranch(ctx context.Context, kind domain.OntologyKind, docID string, input domain.Location) error {
	output := domain.Location{
		Bucket: o.bucket,
		Prefix: fmt.Sprintf("%s/comprehendmedical/%s", docID, kind),
	}
	jobName := fmt.Sprintf("%s_%s", strings.ToUpper(string(kind)), docID)

	jobID, err := o.inference.StartInference(ctx, kind, input, output, jobName)
	if err != nil {
		return fmt.Errorf("%s branch: %w", kind, err)
	}
	log.Printf("orchestrator: %s inference job %s started for document %s", kind, jobID, docID)

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("%s branch: %w", kind, ctx.Err())
		case <-time.After(o.cfg.PollInterval):
		}

		job, err := o.inference.DescribeJob(ctx, kind, jobID)
		if err != nil {
			return fmt.Errorf("%s branch: %w", kind, err)
		}
		switch {
		case job.Status == domain.JobStatusCompleted:
			if err := o.saver.Save(ctx, kind, docID, job.Output); err != nil {
				return fmt.Errorf("%s branch: %w", kind, err)
			}
			return nil
		case job.Status.Failure():
			return fmt.Errorf("%s branch: job %s ended as %s", kind, jobID, job.Status)
		}
	}
}
