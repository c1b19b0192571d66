package service

import "context"

// ExistsFunc reports whether an id is already taken in the backing store.
type ExistsFunc func(ctx context.Context, id string) (bool, error)

// IDGenerator produces random identifiers that are not yet taken.
type IDGenerator interface {
	// Generate retries with fresh random ids until exists reports a free one.
	// It fails with ErrIDGenerationFailed once the generation budget is spent.
	Generate(ctx context.Context, exists ExistsFunc) (string, error)
}
