package service

import (
	"context"
	"fmt"
	"log"

	"docflow/internal/domain"
)

// CompletionService dispatches job-completion notifications to the saver
// that owns the job's API.
type CompletionService interface {
	HandleNotification(ctx context.Context, body []byte) error
}

type completionService struct {
	text     TextSaver
	expense  ExpenseSaver
	pleading PleadingSaver
}

// NewCompletionService creates a new CompletionService implementation.
func NewCompletionService(text TextSaver, expense ExpenseSaver, pleading PleadingSaver) CompletionService {
	return &completionService{
		text:     text,
		expense:  expense,
		pleading: pleading,
	}
}

func (s *completionService) HandleNotification(ctx context.Context, body []byte) error {
	note, err := domain.ParseJobNotification(body)
	if err != nil {
		return err
	}
	log.Printf("completion: job %s (%s) for document %s", note.JobID, note.API, note.JobTag)

	switch note.API {
	case domain.JobKindTextDetection:
		return s.text.Save(ctx, note)
	case domain.JobKindExpenseAnalysis:
		return s.expense.Save(ctx, note)
	case domain.JobKindDocumentAnalysis:
		return s.pleading.Save(ctx, note)
	}
	return fmt.Errorf("%w: %q", domain.ErrUnknownJobKind, note.API)
}
