package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"docflow/internal/domain"
	"docflow/internal/extract"
	"docflow/internal/filter"
	"docflow/internal/port"
)

// CorrespondenceService extracts email and call-transcript documents inline:
// no OCR jobs, one synchronous NLP enrichment pass, one record insert.
type CorrespondenceService interface {
	ProcessEmail(ctx context.Context, event domain.TriggerEvent) error
	ProcessTranscript(ctx context.Context, event domain.TriggerEvent) error
}

type correspondenceService struct {
	objects port.ObjectStorage
	store   port.DocumentStore
	nlp     port.NLPClient
}

// NewCorrespondenceService creates a new CorrespondenceService
// implementation.
func NewCorrespondenceService(objects port.ObjectStorage, store port.DocumentStore, nlp port.NLPClient) CorrespondenceService {
	return &correspondenceService{objects: objects, store: store, nlp: nlp}
}

// enrich runs entity and key-phrase detection over the text, returning the
// distinct entity types and distinct phrases in detection order.
func (s *correspondenceService) enrich(ctx context.Context, text string) ([]string, []string, error) {
	if text == "" {
		return nil, nil, nil
	}

	entities, err := s.nlp.DetectEntities(ctx, text)
	if err != nil {
		return nil, nil, err
	}
	types := make([]string, 0, len(entities))
	for _, e := range entities {
		if e.Type != "" {
			types = append(types, e.Type)
		}
	}

	phrases, err := s.nlp.DetectKeyPhrases(ctx, text)
	if err != nil {
		return nil, nil, err
	}
	texts := make([]string, 0, len(phrases))
	for _, p := range phrases {
		if p.Text != "" {
			texts = append(texts, p.Text)
		}
	}

	dedupString := func(v string) string { return v }
	return filter.Dedup(types, dedupString), filter.Dedup(texts, dedupString), nil
}

func (s *correspondenceService) ProcessEmail(ctx context.Context, event domain.TriggerEvent) error {
	raw, err := s.objects.Read(ctx, event.Bucket, event.Key)
	if err != nil {
		return err
	}
	extraction, err := extract.ParseEmail(raw)
	if err != nil {
		return err
	}
	docID := domain.DocumentID(event.Key)

	entities, phrases, err := s.enrich(ctx, extraction.Body)
	if err != nil {
		return err
	}
	var sentiments []string
	if extraction.Body != "" {
		sentiment, err := s.nlp.DetectSentiment(ctx, extraction.Body)
		if err != nil {
			return err
		}
		sentiments = []string{sentiment}
	}

	err = s.store.Insert(ctx, docID, map[string]any{
		"originalFile": event.Key,
		"type":         string(domain.DocumentTypeCorrespondence),
		"subtype":      string(domain.SubtypeEmail),
		"extraction":   extraction.Fields(),
		"entities":     entities,
		"sentiments":   sentiments,
		"keyPhrases":   phrases,
	})
	if err != nil {
		return err
	}

	// Attachment contents live in object storage, not on the record. Each
	// save is attempted even when a sibling fails.
	var saveErrs []error
	for _, attachment := range extraction.Attachments {
		key := fmt.Sprintf("%s/attachments/%s", docID, attachment.Filename)
		if _, err := s.objects.SaveText(ctx, key, string(attachment.Content)); err != nil {
			saveErrs = append(saveErrs, err)
		}
	}
	if len(saveErrs) > 0 {
		return errors.Join(saveErrs...)
	}
	log.Printf("correspondence: email %s extracted as document %s", event.Key, docID)
	return nil
}

func (s *correspondenceService) ProcessTranscript(ctx context.Context, event domain.TriggerEvent) error {
	raw, err := s.objects.Read(ctx, event.Bucket, event.Key)
	if err != nil {
		return err
	}
	turns, err := extract.ParseTranscript(raw)
	if err != nil {
		return err
	}
	docID := domain.DocumentID(event.Key)

	text := extract.TranscriptText(turns)
	entities, phrases, err := s.enrich(ctx, text)
	if err != nil {
		return err
	}

	// Per-turn sentiments come with the transcript itself; no detection call.
	var sentiments []string
	for _, turn := range turns {
		if turn.Sentiment != "" {
			sentiments = append(sentiments, turn.Sentiment)
		}
	}
	sentiments = filter.Dedup(sentiments, func(v string) string { return v })

	extraction := make([]map[string]any, 0, len(turns))
	for _, turn := range turns {
		extraction = append(extraction, map[string]any{
			"text":        turn.Content,
			"sentiment":   turn.Sentiment,
			"participant": turn.ParticipantID,
		})
	}

	err = s.store.Insert(ctx, docID, map[string]any{
		"originalFile": event.Key,
		"type":         string(domain.DocumentTypeCorrespondence),
		"subtype":      string(domain.SubtypeTranscript),
		"extraction":   extraction,
		"entities":     entities,
		"sentiments":   sentiments,
		"keyPhrases":   phrases,
	})
	if err != nil {
		return err
	}
	log.Printf("correspondence: transcript %s extracted as document %s", event.Key, docID)
	return nil
}
