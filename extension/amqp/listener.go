package amqp

import (
	"context"
	"io"
	"time"

	"github.com/mailru/easyjson"
	"github.com/streadway/amqp"

	"github.com/hellofresh/goledger"
)

type (
	// Consume returns a channel of amqp.Delivery's and a related closer or an error
	Consume func() (io.Closer, <-chan amqp.Delivery, error)

	// Trigger is called for every EventNotification that was received
	Trigger func(ctx context.Context, notification *EventNotification) error

	// Listener consumes the notifications of committed ledger events from a queue
	Listener struct {
		consume              Consume
		minReconnectInterval time.Duration
		maxReconnectInterval time.Duration
		logger               goledger.Logger
		waitFn               func(time.Duration)
	}
)

// NewListener returns a new Listener
func NewListener(
	consume Consume,
	minReconnectInterval time.Duration,
	maxReconnectInterval time.Duration,
	logger goledger.Logger,
) (*Listener, error) {
	switch {
	case consume == nil:
		return nil, invalidArgument("consume")
	case minReconnectInterval <= 0:
		return nil, invalidArgument("minReconnectInterval")
	case maxReconnectInterval < minReconnectInterval:
		return nil, invalidArgument("maxReconnectInterval")
	}

	if logger == nil {
		logger = goledger.NopLogger
	}

	return &Listener{
		consume:              consume,
		minReconnectInterval: minReconnectInterval,
		maxReconnectInterval: maxReconnectInterval,
		logger:               logger,
		waitFn:               time.Sleep,
	}, nil
}

// WithWaitFn replaces the default function called to wait (time.Sleep)
func (l *Listener) WithWaitFn(fn func(time.Duration)) {
	l.waitFn = fn
}

// Listen calls the trigger for every ledger notification until the context is done.
// A consumer that cannot be started is retried after an interval that doubles up to maxReconnectInterval.
func (l *Listener) Listen(ctx context.Context, trigger Trigger) error {
	retryIn := l.minReconnectInterval
	for ctx.Err() == nil {
		conn, deliveries, err := l.consume()
		if err != nil {
			l.logger.Error("failed to start consuming ledger notifications", func(e goledger.LoggerEntry) {
				e.Error(err)
				e.String("reconnect_in", retryIn.String())
			})

			l.waitFn(retryIn)
			retryIn = l.backOff(retryIn)
			continue
		}

		retryIn = l.minReconnectInterval
		consumingSince := time.Now()

		l.consumeNotifications(ctx, conn, deliveries, trigger)

		if ctx.Err() == nil {
			l.waitFn(time.Until(consumingSince.Add(l.minReconnectInterval)))
		}
	}

	return context.Canceled
}

func (l *Listener) backOff(interval time.Duration) time.Duration {
	if interval *= 2; interval > l.maxReconnectInterval {
		return l.maxReconnectInterval
	}

	return interval
}

func (l *Listener) consumeNotifications(ctx context.Context, conn io.Closer, deliveries <-chan amqp.Delivery, trigger Trigger) {
	defer func() {
		if conn == nil {
			return
		}

		if err := conn.Close(); err != nil {
			l.logger.Warn("failed to close ledger notification consumer", func(e goledger.LoggerEntry) {
				e.Error(err)
			})
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case delivery, ok := <-deliveries:
			if !ok {
				return
			}

			l.handleDelivery(ctx, delivery, trigger)
		}
	}
}

func (l *Listener) handleDelivery(ctx context.Context, delivery amqp.Delivery, trigger Trigger) {
	deliveryFields := func(e goledger.LoggerEntry) {
		e.String("event_type", delivery.Type)
		e.String("correlation_id", delivery.CorrelationId)
	}

	notification := &EventNotification{}
	if err := easyjson.Unmarshal(delivery.Body, notification); err != nil {
		// rejected without requeue, a consumer with a prefetch of one would otherwise stall on it
		if rejectErr := delivery.Reject(false); rejectErr != nil {
			err = rejectErr
		}

		l.logger.Error("dropping undecodable ledger notification", func(e goledger.LoggerEntry) {
			deliveryFields(e)
			e.Error(err)
		})
		return
	}

	notificationFields := func(e goledger.LoggerEntry) {
		deliveryFields(e)
		e.String("stream", notification.Stream)
		e.String("event_id", notification.EventID)
	}

	if err := delivery.Ack(false); err != nil {
		l.logger.Error("failed to acknowledge ledger notification", func(e goledger.LoggerEntry) {
			notificationFields(e)
			e.Error(err)
		})
		return
	}

	if err := trigger(ctx, notification); err != nil {
		l.logger.Error("failed to handle ledger notification", func(e goledger.LoggerEntry) {
			notificationFields(e)
			e.Error(err)
		})
	}
}
