package amqp

import (
	"context"
	"io"
	"sync"

	"github.com/mailru/easyjson"
	"github.com/streadway/amqp"

	"github.com/hellofresh/goledger"
)

// NotificationPublisher is responsible of publishing a notification to queue
type NotificationPublisher struct {
	amqpDSN string
	queue   string
	logger  goledger.Logger

	connection io.Closer
	channel    NotificationChannel

	mux sync.Mutex
}

// NewNotificationPublisher returns an instance of NotificationPublisher.
// The connection and channel are optional, they are created on the first Publish when nil.
func NewNotificationPublisher(
	amqpDSN,
	queue string,
	logger goledger.Logger,
	connection io.Closer,
	channel NotificationChannel,
) (*NotificationPublisher, error) {
	if _, err := amqp.ParseURI(amqpDSN); err != nil {
		return nil, invalidArgument("amqpDSN")
	}
	if len(queue) == 0 {
		return nil, invalidArgument("queue")
	}
	if logger == nil {
		logger = goledger.NopLogger
	}

	return &NotificationPublisher{
		amqpDSN:    amqpDSN,
		queue:      queue,
		logger:     logger,
		connection: connection,
		channel:    channel,
	}, nil
}

// Publish sends an EventNotification to the queue
func (p *NotificationPublisher) Publish(ctx context.Context, notification *EventNotification) error {
	// Ignore nil notifications since this is not supported
	if notification == nil {
		p.logger.Warn("unable to handle nil notification, skipping", nil)
		return nil
	}

	msgBody, err := easyjson.Marshal(notification)
	if err != nil {
		return err
	}

	p.mux.Lock()
	defer p.mux.Unlock()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if p.channel == nil {
			connection, channel, err := setup(p.amqpDSN, p.queue)
			if err != nil {
				return err
			}
			p.connection, p.channel = connection, channel
		}

		err = p.channel.Publish("", p.queue, true, false, amqp.Publishing{
			ContentType:   "application/json",
			DeliveryMode:  amqp.Persistent,
			CorrelationId: notification.CorrelationID,
			Type:          notification.EventType,
			Body:          msgBody,
		})
		if err == amqp.ErrClosed || err == amqp.ErrFrame || err == amqp.ErrUnexpectedFrame {
			p.reset()
			continue
		}

		return err
	}
}

// Close closes the underlying amqp connection
func (p *NotificationPublisher) Close() error {
	p.mux.Lock()
	defer p.mux.Unlock()

	if p.connection == nil {
		return nil
	}

	err := p.connection.Close()
	p.connection = nil
	p.channel = nil

	return err
}

func (p *NotificationPublisher) reset() {
	if p.connection != nil {
		if err := p.connection.Close(); err != nil {
			p.logger.Error("failed to close amqp connection", func(entry goledger.LoggerEntry) {
				entry.Error(err)
			})
		}
	}
	p.connection = nil
	p.channel = nil
}
