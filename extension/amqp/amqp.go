package amqp

import (
	"io"

	"github.com/streadway/amqp"
)

// NotificationChannel represents a channel for notifications
type NotificationChannel interface {
	Publish(exchange, queue string, mandatory, immediate bool, msg amqp.Publishing) error
}

// setup returns a connection and channel to be used for the Queue setup
func setup(url, queue string) (io.Closer, *amqp.Channel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, nil, err
	}

	return conn, ch, nil
}

// DirectQueueConsume returns a Consume func that will connect to the provided AMQP server and create a queue for direct message delivery
func DirectQueueConsume(amqpDSN, queue string) (Consume, error) {
	switch {
	case len(amqpDSN) == 0:
		return nil, invalidArgument("amqpDSN")
	case len(queue) == 0:
		return nil, invalidArgument("queue")
	}

	return func() (io.Closer, <-chan amqp.Delivery, error) {
		conn, ch, err := setup(amqpDSN, queue)
		if err != nil {
			return nil, nil, err
		}

		// Indicate we only want 1 message to acknowledge at a time.
		if err := ch.Qos(1, 0, false); err != nil {
			_ = conn.Close()
			return nil, nil, err
		}

		// Exclusive consumer
		deliveries, err := ch.Consume(queue, "", false, false, false, false, nil)
		if err != nil {
			_ = conn.Close()
			return nil, nil, err
		}

		return conn, deliveries, nil
	}, nil
}
