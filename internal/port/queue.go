package port

import "context"

// QueueMessage is one message received from an event queue.
type QueueMessage struct {
	ID            string
	ReceiptHandle string
	Body          []byte
}

// MessageQueue abstracts the at-least-once event-delivery substrate. A
// message that is not deleted becomes visible again and is redelivered.
type MessageQueue interface {
	Receive(ctx context.Context, max int) ([]QueueMessage, error)
	Delete(ctx context.Context, receiptHandle string) error
}
