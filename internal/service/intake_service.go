package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path"
	"strings"

	"docflow/internal/config"
	"docflow/internal/domain"
	"docflow/internal/extract"
	"docflow/internal/port"
)

// IntakeService routes a newly landed document to its pipeline and submits
// the initial OCR jobs.
type IntakeService interface {
	HandleTrigger(ctx context.Context, event domain.TriggerEvent) error
}

type intakeService struct {
	store          port.DocumentStore
	jobs           port.JobClient
	correspondence CorrespondenceService
	cfg            config.IntakeConfig
}

// NewIntakeService creates a new IntakeService implementation.
func NewIntakeService(store port.DocumentStore, jobs port.JobClient, correspondence CorrespondenceService, cfg config.IntakeConfig) IntakeService {
	return &intakeService{
		store:          store,
		jobs:           jobs,
		correspondence: correspondence,
		cfg:            cfg,
	}
}

// HandleTrigger dispatches by file type: .eml and .json documents are
// extracted inline, .pdf documents start asynchronous OCR jobs routed by key
// prefix. Anything else is rejected as unsupported.
func (s *intakeService) HandleTrigger(ctx context.Context, event domain.TriggerEvent) error {
	switch strings.ToLower(path.Ext(event.Key)) {
	case ".eml":
		return s.correspondence.ProcessEmail(ctx, event)
	case ".json":
		return s.correspondence.ProcessTranscript(ctx, event)
	case ".pdf":
		return s.handlePDF(ctx, event)
	}
	return fmt.Errorf("%w: %q", domain.ErrUnsupportedFileType, event.Key)
}

func (s *intakeService) handlePDF(ctx context.Context, event domain.TriggerEvent) error {
	switch {
	case strings.HasPrefix(event.Key, s.cfg.PleadingPrefix):
		return s.startPleading(ctx, event)
	case strings.HasPrefix(event.Key, s.cfg.ExpensePrefix):
		return s.startExpense(ctx, event)
	}
	return s.startMedical(ctx, event)
}

func (s *intakeService) insert(ctx context.Context, event domain.TriggerEvent, docType domain.DocumentType) (string, error) {
	docID := domain.DocumentID(event.Key)
	err := s.store.Insert(ctx, docID, map[string]any{
		"originalFile": event.Key,
		"type":         string(docType),
	})
	if err != nil {
		return "", err
	}
	return docID, nil
}

// startMedical submits both OCR jobs for a medical document. Both
// submissions are attempted even when one fails, and the failures are
// reported together.
func (s *intakeService) startMedical(ctx context.Context, event domain.TriggerEvent) error {
	docID, err := s.insert(ctx, event, domain.DocumentTypeMedical)
	if err != nil {
		return err
	}

	textErr := make(chan error, 1)
	go func() {
		jobID, err := s.jobs.StartTextDetection(ctx, event.Bucket, event.Key, docID)
		if err == nil {
			log.Printf("intake: text detection job %s started for document %s", jobID, docID)
		}
		textErr <- err
	}()

	expenseJobID, expenseErr := s.jobs.StartExpenseAnalysis(ctx, event.Bucket, event.Key, docID)
	if expenseErr == nil {
		log.Printf("intake: expense analysis job %s started for document %s", expenseJobID, docID)
	}
	return errors.Join(<-textErr, expenseErr)
}

func (s *intakeService) startExpense(ctx context.Context, event domain.TriggerEvent) error {
	docID, err := s.insert(ctx, event, domain.DocumentTypeExpense)
	if err != nil {
		return err
	}
	jobID, err := s.jobs.StartExpenseAnalysis(ctx, event.Bucket, event.Key, docID)
	if err != nil {
		return err
	}
	log.Printf("intake: expense analysis job %s started for document %s", jobID, docID)
	return nil
}

func (s *intakeService) startPleading(ctx context.Context, event domain.TriggerEvent) error {
	docID, err := s.insert(ctx, event, domain.DocumentTypePleading)
	if err != nil {
		return err
	}
	jobID, err := s.jobs.StartDocumentAnalysis(ctx, event.Bucket, event.Key, docID, extract.PleadingQueries)
	if err != nil {
		return err
	}
	log.Printf("intake: document analysis job %s started for pleading %s", jobID, docID)
	return nil
}
