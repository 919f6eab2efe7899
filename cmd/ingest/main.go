// Command ingest submits one document to the pipeline by hand, bypassing the
// trigger queue.
// Usage: go run ./cmd/ingest -bucket my-bucket -key expenses/invoice.pdf
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"docflow/internal/awsclient"
	"docflow/internal/config"
	"docflow/internal/domain"
	"docflow/internal/nlp"
	"docflow/internal/service"
	dynamostore "docflow/internal/storage/dynamo"
	s3storage "docflow/internal/storage/s3"
	"docflow/internal/textract"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	bucket := flag.String("bucket", "", "source bucket of the document")
	key := flag.String("key", "", "object key of the document")
	flag.Parse()
	if *bucket == "" || *key == "" {
		return fmt.Errorf("both -bucket and -key are required")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Intake.SubmitTimeout)
	defer cancel()

	awsCfg, err := awsclient.Load(ctx, cfg.AWS)
	if err != nil {
		return err
	}

	objects := s3storage.NewS3Client(awsCfg, cfg)
	store := dynamostore.NewDynamoStore(awsCfg, cfg)
	jobs := textract.NewTextractClient(awsCfg, cfg)
	correspondence := service.NewCorrespondenceService(objects, store, nlp.NewComprehendClient(awsCfg))
	intake := service.NewIntakeService(store, jobs, correspondence, cfg.Intake)

	event := domain.TriggerEvent{Bucket: *bucket, Key: *key}
	if err := intake.HandleTrigger(ctx, event); err != nil {
		return err
	}
	log.Printf("submitted %s as document %s", *key, domain.DocumentID(*key))
	return nil
}
