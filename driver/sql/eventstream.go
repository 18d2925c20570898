package sql

import (
	"database/sql"
	"time"

	"github.com/hellofresh/goledger"
	"github.com/hellofresh/goledger/metadata"
)

// Ensure that eventStream satisfies the goledger.EventStream interface
var _ goledger.EventStream = &eventStream{}

type eventStream struct {
	rows     *sql.Rows
	position int64
}

// NewEventStream returns an goledger.EventStream reading the events from the rows.
// The rows must contain the columns event_id, event_type, payload, metadata and created_at in that order.
func NewEventStream(rows *sql.Rows) (goledger.EventStream, error) {
	if rows == nil {
		return nil, ErrNilRows
	}

	return &eventStream{rows: rows}, nil
}

func (s *eventStream) Next() bool {
	if !s.rows.Next() {
		return false
	}

	s.position++
	return true
}

func (s *eventStream) Err() error {
	return s.rows.Err()
}

func (s *eventStream) Close() error {
	return s.rows.Close()
}

func (s *eventStream) Message() (goledger.Event, int64, error) {
	var (
		event        goledger.Event
		jsonMetadata []byte
		createdAt    time.Time
	)

	err := s.rows.Scan(&event.ID, &event.Type, &event.Payload, &jsonMetadata, &createdAt)
	if err != nil {
		return goledger.Event{}, 0, err
	}

	if event.Metadata, err = metadata.UnmarshalJSON(jsonMetadata); err != nil {
		return goledger.Event{}, 0, err
	}
	event.CreatedAt = createdAt.UTC()

	return event, s.position, nil
}
