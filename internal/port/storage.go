package port

import (
	"context"

	"docflow/internal/domain"
)

// ObjectStorage abstracts cloud object storage operations.
type ObjectStorage interface {
	// SaveText stores contents under key in the results bucket and returns
	// the saved location, with Prefix set to the key's parent.
	SaveText(ctx context.Context, key, contents string) (domain.Location, error)
	// Read returns the full contents of an object.
	Read(ctx context.Context, bucket, key string) ([]byte, error)
	// FilesForPrefix reads every object under prefix whose key passes keep
	// (a nil keep reads everything), in listing order.
	FilesForPrefix(ctx context.Context, bucket, prefix string, keep func(key string) bool) ([][]byte, error)
}
