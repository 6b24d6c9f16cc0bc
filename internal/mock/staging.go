package mock

import (
	"context"
	"path/filepath"
	"sync"
)

// Staging implements the staging port for tests.
type Staging struct {
	mu sync.Mutex

	// errors
	EnsureErr          error
	RemoveRawErr       error
	RemoveProcessedErr error

	// captured inputs
	RemovedRaw       []string
	RemovedProcessed []string

	// call flags
	EnsureCalled bool
}

func (m *Staging) EnsureDirs() error {
	m.EnsureCalled = true
	return m.EnsureErr
}

func (m *Staging) RawPath(name string) string {
	return filepath.Join("raw", filepath.Base(name))
}

func (m *Staging) ProcessedPath(name string) string {
	return filepath.Join("processed", filepath.Base(name))
}

func (m *Staging) RemoveRaw(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RemovedRaw = append(m.RemovedRaw, name)
	return m.RemoveRawErr
}

func (m *Staging) RemoveProcessed(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RemovedProcessed = append(m.RemovedProcessed, name)
	return m.RemoveProcessedErr
}
