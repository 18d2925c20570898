package goledger

// EventStream is the result of an event store query. Its cursor starts before the first event
// of the result set. Use Next to advance through the results:
//
//	stream, err := store.Load(ctx, streamName)
//	...
//	defer stream.Close()
//	for stream.Next() {
//		event, number, err := stream.Message()
//		...
//	}
//	err = stream.Err() // get any error encountered during iteration
type EventStream interface {
	// Next prepares the next result for reading.
	// It returns true on success, or false if there is no next result or an error occurred while preparing it.
	// Err should be consulted to distinguish between the two cases.
	Next() bool

	// Err returns the error, if any, that was encountered during iteration.
	Err() error

	// Close closes the EventStream, preventing further enumeration. If Next is called
	// and returns false and there are no further result sets,
	// result of Err. Close is idempotent and does not affect the result of Err.
	Close() error

	// Message returns the current event and its position in the loaded stream.
	Message() (Event, int64, error)
}

// ReadEventStream reads the entire event stream and returns its content
func ReadEventStream(stream EventStream) ([]Event, []int64, error) {
	var (
		events  []Event
		numbers []int64
	)
	for stream.Next() {
		event, number, err := stream.Message()
		if err != nil {
			return nil, nil, err
		}

		events = append(events, event)
		numbers = append(numbers, number)
	}

	if err := stream.Err(); err != nil {
		return nil, nil, err
	}

	return events, numbers, nil
}
