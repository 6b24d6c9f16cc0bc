package mock

import (
	"context"

	"video-processor/internal/model"
)

// Ledger implements the ledger port for tests.
type Ledger struct {
	// stored values
	Record *model.VideoRecord

	// captured inputs
	Created   *model.VideoRecord
	UpdatedID string
	Updated   model.VideoUpdate

	// errors
	CreateErr error
	UpdateErr error
	GetErr    error

	// call flags
	CreateCalled bool
	UpdateCalled bool
	GetCalled    bool
}

func (m *Ledger) Create(ctx context.Context, v *model.VideoRecord) error {
	m.CreateCalled = true
	snapshot := *v
	m.Created = &snapshot
	return m.CreateErr
}

func (m *Ledger) Update(ctx context.Context, id string, upd model.VideoUpdate) error {
	m.UpdateCalled = true
	m.UpdatedID = id
	m.Updated = upd
	return m.UpdateErr
}

func (m *Ledger) GetByID(ctx context.Context, id string) (*model.VideoRecord, error) {
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.Record, nil
}
