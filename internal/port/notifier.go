package port

import "context"

// ResultMessage is a terminal-status message for one document's extraction.
type ResultMessage struct {
	Subject    string
	Message    string
	DocumentID string
	JobID      string
}

// Notifier publishes extraction results to the downstream topic. DocumentID
// and JobID travel as message attributes so subscribers can filter without
// parsing the body.
type Notifier interface {
	Publish(ctx context.Context, msg ResultMessage) error
}
