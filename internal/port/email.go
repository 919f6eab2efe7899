package port

import "context"

// EmailSender delivers operator-facing mail about extraction outcomes.
type EmailSender interface {
	SendExtractionResult(ctx context.Context, subject, body string) error
}
