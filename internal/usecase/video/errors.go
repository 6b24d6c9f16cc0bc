package video

import "errors"

var (
	// ErrAlreadyExists is returned by the ledger when a record for the
	// video id is already present.
	ErrAlreadyExists = errors.New("ledger: video already exists")
	// ErrVideoNotFound is returned when no record exists for the id.
	ErrVideoNotFound = errors.New("ledger: video not found")
	// ErrConversionFailed wraps transcoder errors so the handler can map
	// them to the dedicated conversion-failure response.
	ErrConversionFailed = errors.New("transcoder: video conversion failed")

	ErrObjectNotFound = errors.New("storage: object not found")
	ErrBucketNotFound = errors.New("storage: bucket not found")
	ErrUnauthorized   = errors.New("storage: unauthorized")
	ErrInternal       = errors.New("storage: internal error")
)
