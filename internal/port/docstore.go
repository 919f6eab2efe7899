package port

import "context"

// DocumentStore persists document records keyed by document identifier.
// Records are sparse attribute sets: each pipeline stage writes only the
// fields it owns.
type DocumentStore interface {
	// Insert writes the initial record for a document. Re-inserting the
	// same id overwrites the named fields (id-keyed upsert).
	Insert(ctx context.Context, docID string, fields map[string]any) error
	// Update performs a field-level merge: the named fields are set, all
	// other fields are left untouched. Never a full replace.
	Update(ctx context.Context, docID string, fields map[string]any) error
	// Get returns the current record, or domain.ErrDocumentNotFound when
	// absent.
	Get(ctx context.Context, docID string) (map[string]any, error)
}
