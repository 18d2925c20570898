package goledger

import "context"

const (
	// AllStreams is the name of the virtual stream containing the events of every stream in commit order
	AllStreams StreamName = "$all"

	// AnyVersion disables the expected version check of a commit
	AnyVersion ExpectedVersion = -1
	// NoStream expects the stream to not contain any events
	NoStream ExpectedVersion = 0
)

type (
	// StreamName is the unique name of an event stream
	StreamName string

	// ExpectedVersion is the number of events a stream is expected to contain before a commit
	ExpectedVersion int64

	// EventStore an interface describing an append only event store
	EventStore interface {
		// Setup creates the underlying storage if it does not exist yet.
		// Calling Setup more than once must not fail.
		Setup(ctx context.Context) error

		// Load returns all events of the stream in commit order.
		// Loading an unknown stream returns an empty EventStream.
		Load(ctx context.Context, streamName StreamName) (EventStream, error)

		// Commit appends the event to the stream when the stream is at the expected version
		Commit(ctx context.Context, streamName StreamName, event Event, expectedVersion ExpectedVersion) error
	}
)

// Matches returns true if the expected version accepts the given actual stream version
func (v ExpectedVersion) Matches(actual int64) bool {
	return v == AnyVersion || int64(v) == actual
}
