package inmemory

import (
	"context"
	"sync"

	"github.com/hellofresh/goledger"
)

// Ensure that we satisfy the goledger.EventStore interface
var _ goledger.EventStore = &EventStore{}

// EventStore a in memory event store implementation
type EventStore struct {
	sync.RWMutex

	logger  goledger.Logger
	streams map[goledger.StreamName][]goledger.Event
	all     []goledger.Event
}

// NewEventStore return a new inmemory.EventStore
func NewEventStore(logger goledger.Logger) *EventStore {
	if logger == nil {
		logger = goledger.NopLogger
	}

	return &EventStore{
		logger:  logger,
		streams: map[goledger.StreamName][]goledger.Event{},
	}
}

// Setup is a no-op since there is no schema to create
func (i *EventStore) Setup(context.Context) error {
	return nil
}

// Load returns all events of the stream in commit order.
// Loading goledger.AllStreams returns the events of every stream in global commit order.
func (i *EventStore) Load(_ context.Context, streamName goledger.StreamName) (goledger.EventStream, error) {
	i.RLock()
	defer i.RUnlock()

	var storedEvents []goledger.Event
	if streamName == goledger.AllStreams {
		storedEvents = i.all
	} else {
		storedEvents = i.streams[streamName]
	}

	events := make([]goledger.Event, len(storedEvents))
	copy(events, storedEvents)

	numbers := make([]int64, len(events))
	for idx := range events {
		numbers[idx] = int64(idx + 1)
	}

	return NewEventStream(events, numbers)
}

// Commit appends the event to the stream when the stream is at the expected version
func (i *EventStore) Commit(
	_ context.Context,
	streamName goledger.StreamName,
	event goledger.Event,
	expectedVersion goledger.ExpectedVersion,
) error {
	switch {
	case streamName == goledger.AllStreams:
		return goledger.ErrAllStreamsIsReadOnly
	case streamName == "":
		return goledger.InvalidArgumentError("streamName")
	case event.Type == "":
		return goledger.ErrEmptyEventType
	}

	i.Lock()
	defer i.Unlock()

	storedEvents := i.streams[streamName]
	actualVersion := int64(len(storedEvents))
	if !expectedVersion.Matches(actualVersion) {
		i.logger.Debug("stream version mismatch", func(e goledger.LoggerEntry) {
			e.String("stream", string(streamName))
			e.Int64("expected", int64(expectedVersion))
			e.Int64("actual", actualVersion)
		})

		return &goledger.ConcurrencyError{
			StreamName: streamName,
			Expected:   expectedVersion,
			Actual:     actualVersion,
		}
	}

	event = event.
		WithMetadata(goledger.StreamKey, string(streamName)).
		WithMetadata(goledger.VersionKey, actualVersion+1)

	i.streams[streamName] = append(storedEvents, event)
	i.all = append(i.all, event)

	return nil
}
