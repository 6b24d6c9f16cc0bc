package model

import "time"

type Status string

const (
	StatusProcessing Status = "processing"
	StatusProcessed  Status = "processed"
)

// VideoRecord tracks the lifecycle of one uploaded video in the ledger.
// The id doubles as the idempotency key: a record existing for an id means
// the notification has already been handled.
type VideoRecord struct {
	ID        string    `bson:"_id" json:"id"`
	OwnerID   string    `bson:"owner_id" json:"owner_id"`
	Status    Status    `bson:"status" json:"status"`
	Filename  string    `bson:"filename,omitempty" json:"filename,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// VideoUpdate holds the fields the pipeline is allowed to overwrite after
// the record has been created.
type VideoUpdate struct {
	Status   Status `bson:"status"`
	Filename string `bson:"filename"`
}
