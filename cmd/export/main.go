// Command export writes a document's extracted expenses to an XLSX workbook.
// Usage: go run ./cmd/export -doc <documentId> -out expenses.xlsx
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"docflow/internal/awsclient"
	"docflow/internal/config"
	"docflow/internal/export"
	dynamostore "docflow/internal/storage/dynamo"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	docID := flag.String("doc", "", "document identifier")
	out := flag.String("out", "expenses.xlsx", "output workbook path")
	flag.Parse()
	if *docID == "" {
		return fmt.Errorf("-doc is required")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	awsCfg, err := awsclient.Load(ctx, cfg.AWS)
	if err != nil {
		return err
	}
	store := dynamostore.NewDynamoStore(awsCfg, cfg)

	record, err := store.Get(ctx, *docID)
	if err != nil {
		return err
	}

	workbook, err := export.ExpenseWorkbook(*docID, record)
	if err != nil {
		return err
	}
	if err := workbook.SaveAs(*out); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	log.Printf("wrote %s", *out)
	return nil
}
