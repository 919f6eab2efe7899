// Package paginate drains paginated job-result APIs into a single ordered
// collection.
package paginate

import "context"

// FetchPage returns one page of items plus the continuation token for the
// next page. A nil or empty token means the output is exhausted.
type FetchPage[T any] func(ctx context.Context, token *string) ([]T, *string, error)

// Drain invokes fetch until the continuation token is exhausted,
// accumulating items in call order. An empty first page is a valid empty
// result. Fetch errors propagate as-is with whatever was accumulated so
// far discarded; no retry happens here.
func Drain[T any](ctx context.Context, fetch FetchPage[T]) ([]T, error) {
	var all []T
	var token *string
	for {
		items, next, err := fetch(ctx, token)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
		if next == nil || *next == "" {
			return all, nil
		}
		token = next
	}
}
