package event

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrMissingName = errors.New("event: missing file name")

// PushEnvelope is the push-delivery wrapper the notification bus wraps
// around its messages: the payload sits base64-encoded in message.data.
type PushEnvelope struct {
	Message struct {
		Data      string `json:"data" validate:"required"`
		MessageID string `json:"messageId,omitempty"`
	} `json:"message" validate:"required"`
	Subscription string `json:"subscription,omitempty"`
}

// NewObjectEvent is the decoded payload: a notification that a raw video
// object with the given name has been stored.
type NewObjectEvent struct {
	Name string `json:"name"`
}

// DecodePayload base64-decodes message.data and parses it as JSON. A
// payload that decodes but carries no name is rejected with
// ErrMissingName.
func (e *PushEnvelope) DecodePayload() (*NewObjectEvent, error) {
	raw, err := base64.StdEncoding.DecodeString(e.Message.Data)
	if err != nil {
		return nil, fmt.Errorf("decode message data: %w", err)
	}

	var evt NewObjectEvent
	if err := json.Unmarshal(raw, &evt); err != nil {
		return nil, fmt.Errorf("parse message payload: %w", err)
	}
	if evt.Name == "" {
		return nil, ErrMissingName
	}
	return &evt, nil
}
