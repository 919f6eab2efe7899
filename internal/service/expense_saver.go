package service

import (
	"context"
	"fmt"
	"log"

	"docflow/internal/domain"
	"docflow/internal/extract"
	"docflow/internal/paginate"
	"docflow/internal/port"
)

// ExpenseSaver persists the output of a completed expense-analysis job and
// reports the finished extraction downstream.
type ExpenseSaver interface {
	Save(ctx context.Context, note domain.JobNotification) error
}

type expenseSaver struct {
	jobs     port.JobClient
	store    port.DocumentStore
	notifier port.Notifier
	mail     port.EmailSender
}

// NewExpenseSaver creates a new ExpenseSaver implementation.
func NewExpenseSaver(jobs port.JobClient, store port.DocumentStore, notifier port.Notifier, mail port.EmailSender) ExpenseSaver {
	return &expenseSaver{
		jobs:     jobs,
		store:    store,
		notifier: notifier,
		mail:     mail,
	}
}

func (s *expenseSaver) Save(ctx context.Context, note domain.JobNotification) error {
	docID := note.JobTag

	docs, err := paginate.Drain(ctx, func(ctx context.Context, token *string) ([]domain.ExpenseDoc, *string, error) {
		return s.jobs.ExpenseAnalysisPage(ctx, note.JobID, token)
	})
	if err != nil {
		return fmt.Errorf("draining expense output for %s: %w", docID, err)
	}

	pages := make([]map[string]any, 0, len(docs))
	for _, doc := range docs {
		pages = append(pages, extract.ParseExpensePage(doc).Fields())
	}
	log.Printf("expenseSaver: document %s yielded %d expense pages", docID, len(pages))

	// The record type was set at intake; only this saver's field is written.
	if err := s.store.Update(ctx, docID, map[string]any{"expensesByPage": pages}); err != nil {
		return err
	}

	subject := "Finished Extracting Medical Expenses"
	message := fmt.Sprintf("Medical Expenses have been extracted for document %q.\nThe document has the following id: %s\nThe extraction job id is: %s\n",
		note.DocumentLocation.S3ObjectName, docID, note.JobID)
	err = s.notifier.Publish(ctx, port.ResultMessage{
		Subject:    subject,
		Message:    message,
		DocumentID: docID,
		JobID:      note.JobID,
	})
	if err != nil {
		return err
	}

	// Operator mail is best effort and never fails the save.
	if err := s.mail.SendExtractionResult(ctx, subject, message); err != nil {
		log.Printf("expenseSaver: result mail for %s failed: %v", docID, err)
	}
	return nil
}
