// Package worker runs the long-polling queue consumers that feed the intake
// and completion services.
package worker

import (
	"context"
	"log"
	"sync"
	"time"

	"docflow/internal/domain"
	"docflow/internal/port"
)

// Handler processes one queue message body.
type Handler func(ctx context.Context, body []byte) error

// Config holds settings for a queue worker.
type Config struct {
	Concurrency    int
	HandlerTimeout time.Duration
}

// QueueWorker polls a message queue and dispatches each message to its
// handler. Delivery is at-least-once: a message is deleted after a
// successful handle or a fatal error, and left for redelivery otherwise.
type QueueWorker struct {
	name   string
	queue  port.MessageQueue
	handle Handler
	cfg    Config
	wg     sync.WaitGroup
}

// NewQueueWorker creates a new QueueWorker.
func NewQueueWorker(name string, queue port.MessageQueue, handle Handler, cfg Config) *QueueWorker {
	return &QueueWorker{
		name:   name,
		queue:  queue,
		handle: handle,
		cfg:    cfg,
	}
}

// Start runs the polling loop until ctx is canceled. It blocks until all
// in-flight handlers have finished.
func (w *QueueWorker) Start(ctx context.Context) {
	sem := make(chan struct{}, w.cfg.Concurrency)

	log.Printf("%s: started (concurrency=%d, timeout=%s)", w.name, w.cfg.Concurrency, w.cfg.HandlerTimeout)

	for {
		if ctx.Err() != nil {
			log.Printf("%s: shutting down, waiting for in-flight handlers...", w.name)
			w.wg.Wait()
			log.Printf("%s: shutdown complete", w.name)
			return
		}

		// Receive long-polls, so this loop spins only when messages flow.
		messages, err := w.queue.Receive(ctx, w.cfg.Concurrency)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			log.Printf("%s: receive error: %v", w.name, err)
			continue
		}

		for i := range messages {
			msg := messages[i]

			sem <- struct{}{} // acquire
			w.wg.Add(1)
			go func() {
				defer w.wg.Done()
				defer func() { <-sem }() // release

				// Use a fresh context independent of the poll context so
				// in-flight handlers complete even during shutdown.
				handleCtx, cancel := context.WithTimeout(context.Background(), w.cfg.HandlerTimeout)
				defer cancel()

				w.process(handleCtx, msg)
			}()
		}
	}
}

func (w *QueueWorker) process(ctx context.Context, msg port.QueueMessage) {
	err := w.handle(ctx, msg.Body)
	switch {
	case err == nil:
	case domain.IsFatal(err):
		// Redelivering a poison message can never succeed.
		log.Printf("%s: dropping message %s: %v", w.name, msg.ID, err)
	default:
		log.Printf("%s: message %s failed, leaving for redelivery: %v", w.name, msg.ID, err)
		return
	}

	if err := w.queue.Delete(ctx, msg.ReceiptHandle); err != nil {
		log.Printf("%s: delete of message %s failed: %v", w.name, msg.ID, err)
	}
}
