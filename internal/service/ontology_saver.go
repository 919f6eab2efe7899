package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"docflow/internal/config"
	"docflow/internal/domain"
	"docflow/internal/extract"
	"docflow/internal/filter"
	"docflow/internal/port"
)

// OntologySaver parses the output files of a completed inference job and
// persists the coded results onto the document record. Each ontology kind
// owns exactly one record field, so concurrent branches never collide.
type OntologySaver interface {
	Save(ctx context.Context, kind domain.OntologyKind, docID string, output domain.Location) error
}

type ontologySaver struct {
	objects    port.ObjectStorage
	store      port.DocumentStore
	thresholds filter.Thresholds
}

// NewOntologySaver creates a new OntologySaver implementation.
func NewOntologySaver(objects port.ObjectStorage, store port.DocumentStore, cfg *config.Config) OntologySaver {
	return &ontologySaver{
		objects: objects,
		store:   store,
		thresholds: filter.Thresholds{
			Entity:    cfg.Thresholds.Entity,
			Concept:   cfg.Thresholds.Concept,
			Attribute: cfg.Thresholds.Attribute,
			Trait:     cfg.Thresholds.Trait,
		},
	}
}

func (s *ontologySaver) Save(ctx context.Context, kind domain.OntologyKind, docID string, output domain.Location) error {
	// Manifest files are job bookkeeping, not entity lists.
	files, err := s.objects.FilesForPrefix(ctx, output.Bucket, output.Prefix, func(key string) bool {
		return !strings.Contains(key, "Manifest")
	})
	if err != nil {
		return fmt.Errorf("reading %s output for %s: %w", kind, docID, err)
	}

	var value any
	var count int
	switch kind {
	case domain.OntologyICD10:
		var all []domain.Condition
		for _, file := range files {
			conditions, err := extract.ParseConditions(file, s.thresholds)
			if err != nil {
				return err
			}
			all = append(all, conditions...)
		}
		all = filter.Dedup(all, func(c domain.Condition) string { return c.Code })
		value, count = all, len(all)
	case domain.OntologyRxNorm:
		var all []domain.Prescription
		for _, file := range files {
			prescriptions, err := extract.ParsePrescriptions(file, s.thresholds)
			if err != nil {
				return err
			}
			all = append(all, prescriptions...)
		}
		all = filter.Dedup(all, func(p domain.Prescription) string { return p.Code })
		value, count = all, len(all)
	case domain.OntologySNOMED:
		var all []domain.Diagnosis
		for _, file := range files {
			diagnoses, err := extract.ParseDiagnoses(file, s.thresholds)
			if err != nil {
				return err
			}
			all = append(all, diagnoses...)
		}
		all = filter.Dedup(all, func(d domain.Diagnosis) string { return d.Code })
		value, count = all, len(all)
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownJobKind, kind)
	}

	log.Printf("ontologySaver: persisting %d %s codes for document %s", count, kind, docID)
	return s.store.Update(ctx, docID, map[string]any{kind.Field(): value})
}
