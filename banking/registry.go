package banking

import (
	"github.com/pkg/errors"

	"github.com/hellofresh/goledger/internal/json"
)

type (
	// EventRegistry is the single authority translating between stored event payloads and banking events.
	// An EventRegistry is read-only after construction and safe for concurrent use.
	EventRegistry struct {
		decoders map[string]eventDecoder
	}

	eventDecoder func(data []byte) (Event, error)
)

// NewEventRegistry returns an EventRegistry that knows all banking events
func NewEventRegistry() *EventRegistry {
	return &EventRegistry{
		decoders: map[string]eventDecoder{
			AccountOpenedType:     decodeEvent[AccountOpened],
			OverdraftLimitSetType: decodeEvent[OverdraftLimitSet],
			AccountBlockedType:    decodeEvent[AccountBlocked],
			AccountUnblockedType:  decodeEvent[AccountUnblocked],
			AccountClosedType:     decodeEvent[AccountClosed],
			MoneyTransferredType:  decodeEvent[MoneyTransferred],
		},
	}
}

// EventType returns the wire name of the event
func (r *EventRegistry) EventType(event Event) (string, error) {
	switch event.(type) {
	case AccountOpened:
		return AccountOpenedType, nil
	case OverdraftLimitSet:
		return OverdraftLimitSetType, nil
	case AccountBlocked:
		return AccountBlockedType, nil
	case AccountUnblocked:
		return AccountUnblockedType, nil
	case AccountClosed:
		return AccountClosedType, nil
	case MoneyTransferred:
		return MoneyTransferredType, nil
	}

	return "", &UnsupportedEventKindError{Value: event}
}

// Encode returns the wire name and the serialized payload of the event
func (r *EventRegistry) Encode(event Event) (string, []byte, error) {
	eventType, err := r.EventType(event)
	if err != nil {
		return "", nil, err
	}

	data, err := json.MarshalJSON(event)
	if err != nil {
		return "", nil, errors.Wrapf(err, "goledger: failed to encode %s", eventType)
	}

	return eventType, data, nil
}

// Decode reconstructs the banking event from its wire name and serialized payload
func (r *EventRegistry) Decode(eventType string, data []byte) (Event, error) {
	decode, found := r.decoders[eventType]
	if !found {
		return nil, UnknownEventTypeError(eventType)
	}

	event, err := decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "goledger: failed to decode %s", eventType)
	}

	return event, nil
}

// EventTypes returns the wire names of all known events
func (r *EventRegistry) EventTypes() []string {
	return []string{
		AccountOpenedType,
		OverdraftLimitSetType,
		AccountBlockedType,
		AccountUnblockedType,
		AccountClosedType,
		MoneyTransferredType,
	}
}

func decodeEvent[E Event](data []byte) (Event, error) {
	var event E
	if err := json.UnmarshalJSON(data, &event); err != nil {
		return nil, err
	}

	return event, nil
}
