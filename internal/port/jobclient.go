package port

import (
	"context"

	"docflow/internal/domain"
)

// JobClient submits asynchronous OCR jobs against a document location and
// fetches their paginated output. Job identifiers are issued by the external
// service; the job tag is the document identifier used to correlate
// completion notifications.
type JobClient interface {
	StartTextDetection(ctx context.Context, bucket, key, jobTag string) (string, error)
	StartExpenseAnalysis(ctx context.Context, bucket, key, jobTag string) (string, error)
	StartDocumentAnalysis(ctx context.Context, bucket, key, jobTag string, queries []domain.Query) (string, error)

	// Page fetchers return one page of output and the continuation token
	// for the next page (nil when exhausted). Errors propagate uncaught:
	// retry policy belongs to the event-delivery substrate.
	TextDetectionPage(ctx context.Context, jobID string, token *string) ([]domain.Block, *string, error)
	ExpenseAnalysisPage(ctx context.Context, jobID string, token *string) ([]domain.ExpenseDoc, *string, error)
	DocumentAnalysisPage(ctx context.Context, jobID string, token *string) ([]domain.Block, *string, error)
}
