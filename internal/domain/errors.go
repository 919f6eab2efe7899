package domain

import "errors"

var (
	ErrMissingTableName    = errors.New("document table name is not configured")
	ErrMissingBucket       = errors.New("storage bucket is not configured")
	ErrMissingTopic        = errors.New("notification topic is not configured")
	ErrMissingJobID        = errors.New("notification is missing a job id")
	ErrMissingJobTag       = errors.New("notification is missing a job tag")
	ErrUnknownNotification = errors.New("unrecognized job notification shape")
	ErrUnknownJobKind      = errors.New("unrecognized job kind")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrEmptyEmail          = errors.New("email message has no headers or body")
	ErrNoTextSaved         = errors.New("no extracted text was saved to storage")
	ErrDocumentNotFound    = errors.New("document not found")
)

// IsFatal reports whether err can never succeed on redelivery: malformed or
// unrecognized payloads, unsupported inputs, empty extractions. Retryable
// infrastructure errors are everything else.
func IsFatal(err error) bool {
	for _, fatal := range []error{
		ErrUnknownNotification,
		ErrMissingJobID,
		ErrMissingJobTag,
		ErrUnknownJobKind,
		ErrUnsupportedFileType,
		ErrEmptyEmail,
		ErrNoTextSaved,
	} {
		if errors.Is(err, fatal) {
			return true
		}
	}
	return IsFormatError(err)
}

// FormatError reports that a heuristic parser could not locate an expected
// anchor in the document text. It is fatal for that document's enrichment
// step only and is never retried.
type FormatError struct {
	Anchor string
}

func (e *FormatError) Error() string {
	return "unable to find " + e.Anchor + " line"
}

// Distinct anchor errors for the pleading header locators. Callers compare
// with errors.Is to decide per-field fallback behavior.
var (
	ErrNoDefendantLine  = &FormatError{Anchor: "defendant"}
	ErrNoCaseNumberLine = &FormatError{Anchor: "case number"}
	ErrNoVsLine         = &FormatError{Anchor: "vs"}
	ErrNoDivisionLine   = &FormatError{Anchor: "division"}
	ErrNoPlaintiffLine  = &FormatError{Anchor: "plaintiff"}
)

// ErrUnterminatedParagraph is returned when the paragraph segmenter reaches
// the end of the text without finding terminal punctuation.
var ErrUnterminatedParagraph = &FormatError{Anchor: "paragraph terminator"}

// IsFormatError reports whether err is (or wraps) a FormatError.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}
