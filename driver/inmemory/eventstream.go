package inmemory

import (
	"errors"

	"github.com/hellofresh/goledger"
)

var (
	// ErrEventNumberCountMismatch occurs when the provided events and numbers do not have the same length
	ErrEventNumberCountMismatch = errors.New("provided events and numbers do not match")
	// ErrEventStreamClosed occurs when an eventstream is closed
	ErrEventStreamClosed = errors.New("no more events")
	// ErrEventStreamNotStarted occurs when an eventstream Message is called before Next
	ErrEventStreamNotStarted = errors.New("eventStream Message called without calling Next")
	// Ensure that EventStream satisfies the goledger.EventStream interface
	_ goledger.EventStream = &EventStream{}
)

// EventStream an inmemory goledger.EventStream implementation
type EventStream struct {
	events  []goledger.Event
	numbers []int64

	index  int
	closed bool
}

// NewEventStream return a new EventStream containing the given events
func NewEventStream(events []goledger.Event, numbers []int64) (*EventStream, error) {
	if len(numbers) != len(events) {
		return nil, ErrEventNumberCountMismatch
	}

	return &EventStream{
		events:  events,
		numbers: numbers,
		index:   -1,
	}, nil
}

// Next prepares the next result for reading.
func (e *EventStream) Next() bool {
	if e.closed {
		return false
	}

	e.index++
	if e.index >= len(e.events) {
		_ = e.Close()
		return false
	}

	return true
}

// Err returns the error, if any, that was encountered during iteration.
func (e *EventStream) Err() error {
	return nil
}

// Close closes the EventStream, preventing further enumeration.
func (e *EventStream) Close() error {
	if e.closed {
		return nil
	}

	e.closed = true
	e.events = nil
	e.numbers = nil

	return nil
}

// Message returns the current event in the EventStream.
func (e *EventStream) Message() (goledger.Event, int64, error) {
	if e.closed {
		return goledger.Event{}, 0, ErrEventStreamClosed
	}

	if e.index == -1 {
		return goledger.Event{}, 0, ErrEventStreamNotStarted
	}

	return e.events[e.index], e.numbers[e.index], nil
}
