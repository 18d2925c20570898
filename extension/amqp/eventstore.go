package amqp

import (
	"context"

	"github.com/hellofresh/goledger"
)

// Ensure that we satisfy the goledger.EventStore interface
var _ goledger.EventStore = &PublishingEventStore{}

type (
	// Publisher publishes the notification of a committed event
	Publisher interface {
		Publish(ctx context.Context, notification *EventNotification) error
	}

	// PublishingEventStore is a goledger.EventStore that publishes a notification for every committed event
	PublishingEventStore struct {
		goledger.EventStore

		publisher Publisher
		logger    goledger.Logger
	}
)

// NewPublishingEventStore wraps the store
func NewPublishingEventStore(store goledger.EventStore, publisher Publisher, logger goledger.Logger) (*PublishingEventStore, error) {
	switch {
	case store == nil:
		return nil, invalidArgument("store")
	case publisher == nil:
		return nil, invalidArgument("publisher")
	}
	if logger == nil {
		logger = goledger.NopLogger
	}

	return &PublishingEventStore{
		EventStore: store,
		publisher:  publisher,
		logger:     logger,
	}, nil
}

// Commit commits the event to the wrapped store and publishes it afterwards.
// A failed publication is logged and does not fail the commit.
func (s *PublishingEventStore) Commit(
	ctx context.Context,
	streamName goledger.StreamName,
	event goledger.Event,
	expectedVersion goledger.ExpectedVersion,
) error {
	if err := s.EventStore.Commit(ctx, streamName, event, expectedVersion); err != nil {
		return err
	}

	notification := NewEventNotification(streamName, event)

	if err := s.publisher.Publish(ctx, notification); err != nil {
		s.logger.Error("failed to publish committed event", func(e goledger.LoggerEntry) {
			e.Error(err)
			e.String("stream", string(streamName))
			e.String("event_id", notification.EventID)
			e.String("event_type", notification.EventType)
		})
	}

	return nil
}

func invalidArgument(name string) error {
	return goledger.InvalidArgumentError(name)
}
