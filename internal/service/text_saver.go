package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"docflow/internal/config"
	"docflow/internal/domain"
	"docflow/internal/extract"
	"docflow/internal/paginate"
	"docflow/internal/port"
)

// TextSaver persists the output of a completed text-detection job and hands
// the stored text to the ontology orchestrator.
type TextSaver interface {
	Save(ctx context.Context, note domain.JobNotification) error
}

type textSaver struct {
	jobs         port.JobClient
	objects      port.ObjectStorage
	store        port.DocumentStore
	orchestrator Orchestrator
	bucket       string
	chunkLimit   int
	timeout      time.Duration
}

// NewTextSaver creates a new TextSaver implementation. The chunk limit is the
// per-document character ceiling accepted by the ontology inference service;
// extracted text is re-paged under it.
func NewTextSaver(jobs port.JobClient, objects port.ObjectStorage, store port.DocumentStore, orchestrator Orchestrator, cfg *config.Config) TextSaver {
	return &textSaver{
		jobs:         jobs,
		objects:      objects,
		store:        store,
		orchestrator: orchestrator,
		bucket:       cfg.Storage.Bucket,
		chunkLimit:   cfg.Orchestrator.SubmitLimit,
		timeout:      cfg.Orchestrator.Timeout,
	}
}

func (s *textSaver) Save(ctx context.Context, note domain.JobNotification) error {
	docID := note.JobTag

	blocks, err := paginate.Drain(ctx, func(ctx context.Context, token *string) ([]domain.Block, *string, error) {
		return s.jobs.TextDetectionPage(ctx, note.JobID, token)
	})
	if err != nil {
		return fmt.Errorf("draining text detection output for %s: %w", docID, err)
	}

	lines := extract.LineTexts(blocks)
	chunks := extract.Chunks(lines, s.chunkLimit)
	log.Printf("textSaver: document %s yielded %d lines in %d chunks", docID, len(lines), len(chunks))

	// The record update and every chunk save run concurrently and all are
	// attempted regardless of sibling failures.
	prefix := docID + "/textract/"
	locations := make([]domain.Location, len(chunks))
	saveErrs := make([]error, len(chunks)+1)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		saveErrs[0] = s.store.Update(ctx, docID, map[string]any{
			"rawText": domain.Location{Bucket: s.bucket, Prefix: prefix},
		})
	}()
	for i := range chunks {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("%s/textract/extracted%d.txt", docID, i)
			locations[i], saveErrs[i+1] = s.objects.SaveText(ctx, key, chunks[i])
		}(i)
	}
	wg.Wait()

	if err := errors.Join(saveErrs...); err != nil {
		return fmt.Errorf("saving extracted text for %s: %w", docID, err)
	}
	if len(chunks) == 0 {
		log.Printf("textSaver: document %s produced no text, skipping ontology inference", docID)
		return domain.ErrNoTextSaved
	}

	// Orchestration outlives this notification: run it on a fresh context so
	// in-flight inference survives queue-handler shutdown.
	input := domain.Location{Bucket: locations[0].Bucket, Prefix: locations[0].Prefix}
	go func() {
		runCtx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		if err := s.orchestrator.Run(runCtx, docID, input); err != nil {
			log.Printf("textSaver: ontology orchestration for %s failed: %v", docID, err)
		}
	}()
	return nil
}
