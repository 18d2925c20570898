package goledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/hellofresh/goledger/metadata"
)

const (
	// StreamKey is the metadata key containing the name of the stream an event was committed to
	StreamKey = "_stream"
	// VersionKey is the metadata key containing the stream version an event was committed as
	VersionKey = "_stream_version"
	// CorrelationKey is the metadata key used to relate events that are part of the same action
	CorrelationKey = "_correlation_id"
)

type (
	// UUID is a 128 bit (16 byte) Universal Unique Identifier as defined in RFC4122
	UUID = uuid.UUID

	// Event is a serialized domain event as it is stored in an event stream
	Event struct {
		ID        UUID
		Type      string
		Payload   []byte
		Metadata  metadata.Metadata
		CreatedAt time.Time
	}
)

// NewEvent returns a new Event with a generated ID and empty metadata
func NewEvent(eventType string, payload []byte) Event {
	return Event{
		ID:        GenerateUUID(),
		Type:      eventType,
		Payload:   payload,
		Metadata:  metadata.New(),
		CreatedAt: time.Now().UTC(),
	}
}

// WithMetadata returns a copy of the event with key and value added to its metadata
func (e Event) WithMetadata(key string, value interface{}) Event {
	e.Metadata = metadata.WithValue(e.Metadata, key, value)

	return e
}

// StreamName returns the stream the event was committed to or an empty string when unknown
func (e Event) StreamName() StreamName {
	if e.Metadata == nil {
		return ""
	}

	switch name := e.Metadata.Value(StreamKey).(type) {
	case StreamName:
		return name
	case string:
		return StreamName(name)
	}

	return ""
}

// GenerateUUID creates a new random UUID or panics
func GenerateUUID() UUID {
	return uuid.New()
}

// IsUUIDEmpty returns true if the UUID is empty
func IsUUIDEmpty(id UUID) bool {
	return id == uuid.Nil
}
