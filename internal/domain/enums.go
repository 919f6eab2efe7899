package domain

// DocumentType classifies a document by the pipeline that owns it.
type DocumentType string

const (
	DocumentTypeMedical        DocumentType = "medical"
	DocumentTypeCorrespondence DocumentType = "correspondence"
	DocumentTypeExpense        DocumentType = "expense"
	DocumentTypePleading       DocumentType = "pleading"
)

// DocumentSubtype refines correspondence documents.
type DocumentSubtype string

const (
	SubtypeEmail      DocumentSubtype = "email"
	SubtypeTranscript DocumentSubtype = "transcript"
)

// JobStatus mirrors the status values reported by the external OCR/NLP
// services for asynchronous jobs.
type JobStatus string

const (
	JobStatusPending       JobStatus = "PENDING"
	JobStatusInProgress    JobStatus = "IN_PROGRESS"
	JobStatusCompleted     JobStatus = "COMPLETED"
	JobStatusPartialDone   JobStatus = "PARTIAL_SUCCESS"
	JobStatusFailed        JobStatus = "FAILED"
	JobStatusStopRequested JobStatus = "STOP_REQUESTED"
	JobStatusStopped       JobStatus = "STOPPED"
)

// Terminal reports whether the status ends the job's lifecycle.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s.Failure()
}

// Failure reports whether the status is one of the failed terminal states.
func (s JobStatus) Failure() bool {
	switch s {
	case JobStatusPartialDone, JobStatusFailed, JobStatusStopRequested, JobStatusStopped:
		return true
	}
	return false
}

// OntologyKind identifies a coded medical vocabulary produced by NLP
// inference over extracted text.
type OntologyKind string

const (
	OntologyICD10  OntologyKind = "icd10"
	OntologyRxNorm OntologyKind = "rxnorm"
	OntologySNOMED OntologyKind = "snomed"
)

// AllOntologies lists the inference branches the orchestrator runs in
// parallel for a medical document.
var AllOntologies = []OntologyKind{OntologyICD10, OntologyRxNorm, OntologySNOMED}

// Field returns the document attribute this ontology's saver owns. Each
// saver writes only its own field, so concurrent branches never clobber
// each other.
func (k OntologyKind) Field() string {
	switch k {
	case OntologyICD10:
		return "icd10Conditions"
	case OntologyRxNorm:
		return "prescriptions"
	case OntologySNOMED:
		return "snomedCodes"
	}
	return ""
}

// Category returns the entity category this ontology keeps, or "" when all
// categories are kept.
func (k OntologyKind) Category() string {
	switch k {
	case OntologyICD10:
		return "MEDICAL_CONDITION"
	case OntologyRxNorm:
		return "MEDICATION"
	}
	return ""
}

// JobKind identifies the API that produced an asynchronous job.
type JobKind string

const (
	JobKindTextDetection    JobKind = "StartDocumentTextDetection"
	JobKindExpenseAnalysis  JobKind = "StartExpenseAnalysis"
	JobKindDocumentAnalysis JobKind = "StartDocumentAnalysis"
)
