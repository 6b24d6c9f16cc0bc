package port

import "context"

// Staging manages the two local scratch directories holding in-flight
// raw and processed files.
type Staging interface {
	EnsureDirs() error
	RawPath(name string) string
	ProcessedPath(name string) string
	// RemoveRaw and RemoveProcessed are idempotent: deleting a file that
	// does not exist succeeds.
	RemoveRaw(ctx context.Context, name string) error
	RemoveProcessed(ctx context.Context, name string) error
}
