package port

import (
	"context"

	"docflow/internal/domain"
)

// OntologyJob is the observed state of one asynchronous inference job.
type OntologyJob struct {
	JobID  string
	Status domain.JobStatus
	Output domain.Location
}

// OntologyClient starts and observes medical ontology inference jobs
// (ICD10-CM, RxNorm, SNOMED-CT). Output lands as a set of files at the
// output location; files whose names contain "Manifest" are bookkeeping,
// not entity lists.
type OntologyClient interface {
	StartInference(ctx context.Context, kind domain.OntologyKind, input, output domain.Location, jobName string) (string, error)
	DescribeJob(ctx context.Context, kind domain.OntologyKind, jobID string) (OntologyJob, error)
}
