package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"docflow/internal/config"
	"docflow/internal/domain"
	"docflow/internal/extract"
	"docflow/internal/paginate"
	"docflow/internal/port"
)

// PleadingSaver persists the output of a completed document-analysis job for
// a legal pleading: raw page text, the caption header and the numbered body
// paragraphs.
type PleadingSaver interface {
	Save(ctx context.Context, note domain.JobNotification) error
}

type pleadingSaver struct {
	jobs    port.JobClient
	objects port.ObjectStorage
	store   port.DocumentStore
	bucket  string
}

// NewPleadingSaver creates a new PleadingSaver implementation.
func NewPleadingSaver(jobs port.JobClient, objects port.ObjectStorage, store port.DocumentStore, cfg *config.Config) PleadingSaver {
	return &pleadingSaver{
		jobs:    jobs,
		objects: objects,
		store:   store,
		bucket:  cfg.Storage.Bucket,
	}
}

// headerFields merges the heuristic caption fields with the query answers.
// Query answers are the more reliable source and supersede heuristics under
// the same name; both mechanisms' fields are stored.
func headerFields(header domain.PleadingHeader, ok bool, answers map[string][]string) map[string]any {
	fields := map[string]any{}
	if ok {
		fields["plaintiff"] = header.Plaintiff
		fields["caseNumber"] = header.CaseNumber
		fields["division"] = header.Division
		fields["defendants"] = header.Defendants
	}
	for alias, texts := range answers {
		if len(texts) > 0 {
			fields[alias] = texts
		}
	}
	return fields
}

func (s *pleadingSaver) Save(ctx context.Context, note domain.JobNotification) error {
	docID := note.JobTag

	blocks, err := paginate.Drain(ctx, func(ctx context.Context, token *string) ([]domain.Block, *string, error) {
		return s.jobs.DocumentAnalysisPage(ctx, note.JobID, token)
	})
	if err != nil {
		return fmt.Errorf("draining document analysis output for %s: %w", docID, err)
	}

	pages := extract.PageTexts(blocks)
	answers := extract.QueryAnswers(blocks)

	// A malformed caption fails only this document's header enrichment. The
	// query answers and page text are persisted regardless.
	header, headerErr := extract.PleadingHeaderFromBlocks(blocks)
	if headerErr != nil {
		log.Printf("pleadingSaver: header heuristics failed for %s: %v", docID, headerErr)
	}

	paragraphs, paraErr := extract.NumberedParagraphs(extract.LineTexts(blocks))
	if paraErr != nil {
		log.Printf("pleadingSaver: paragraph segmentation failed for %s: %v", docID, paraErr)
	}

	fields := map[string]any{
		"rawText": domain.Location{Bucket: s.bucket, Prefix: docID + "/textract/"},
		"header":  headerFields(header, headerErr == nil, answers),
	}
	if len(paragraphs) > 0 {
		fields["paragraphs"] = paragraphs
	}

	saveErrs := make([]error, len(pages)+1)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		saveErrs[0] = s.store.Update(ctx, docID, fields)
	}()
	for i := range pages {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("%s/textract/extracted%d.txt", docID, i)
			_, saveErrs[i+1] = s.objects.SaveText(ctx, key, pages[i])
		}(i)
	}
	wg.Wait()

	if err := errors.Join(saveErrs...); err != nil {
		return fmt.Errorf("saving pleading output for %s: %w", docID, err)
	}
	return nil
}
