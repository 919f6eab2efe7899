package noop

import (
	"context"
	"log"

	"docflow/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs outcomes to stdout.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendExtractionResult(_ context.Context, subject, body string) error {
	log.Printf("[NOOP EMAIL] %s: %s", subject, body)
	return nil
}
