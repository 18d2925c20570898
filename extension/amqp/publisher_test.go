//go:build unit

package amqp_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	libamqp "github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellofresh/goledger"
	goledgerAmqp "github.com/hellofresh/goledger/extension/amqp"
	"github.com/hellofresh/goledger/mocks"
)

func TestNotificationPublisher_Publish(t *testing.T) {
	ctx, ctxCancel := context.WithTimeout(context.Background(), time.Second)
	defer ctxCancel()

	t.Run("Invalid arguments", func(t *testing.T) {
		logger, _ := getLogger()

		_, err := goledgerAmqp.NewNotificationPublisher("http://localhost:5672/", "my-queue", logger, nil, nil)
		assert.Equal(t, goledger.InvalidArgumentError("amqpDSN"), err)

		_, err = goledgerAmqp.NewNotificationPublisher("amqp://localhost:5672/", "", logger, nil, nil)
		assert.Equal(t, goledger.InvalidArgumentError("queue"), err)
	})

	t.Run("Publish Nil Notification Message", func(t *testing.T) {
		ensure := require.New(t)
		ctrl := gomock.NewController(t)
		logger, loggerHook := getLogger()

		publisher, err := goledgerAmqp.NewNotificationPublisher("amqp://localhost:5672/", "my-queue", logger, &mockConnection{}, mocks.NewNotificationChannel(ctrl))
		ensure.NoError(err)

		err = publisher.Publish(ctx, nil)
		ensure.NoError(err)
		ensure.Len(loggerHook.Entries, 1)
		ensure.Equal("unable to handle nil notification, skipping", loggerHook.LastEntry().Message)
	})

	t.Run("Publish Message", func(t *testing.T) {
		ensure := require.New(t)
		ctrl := gomock.NewController(t)
		logger, loggerHook := getLogger()

		channel := mocks.NewNotificationChannel(ctrl)
		channel.EXPECT().
			Publish("", "my-queue", true, false, gomock.Any()).
			DoAndReturn(func(_, _ string, _, _ bool, msg libamqp.Publishing) error {
				assert.Equal(t, "banking:AccountOpened", msg.Type)
				assert.Equal(t, "correlation", msg.CorrelationId)
				assert.JSONEq(t, `{
					"event_id": "8150276e-34fe-49d9-aeae-a35af0040a4f",
					"event_type": "banking:AccountOpened",
					"stream": "banking:account:A",
					"correlation_id": "correlation",
					"payload": {"accountNumber": "A"}
				}`, string(msg.Body))
				return nil
			})

		publisher, err := goledgerAmqp.NewNotificationPublisher("amqp://localhost:5672/", "my-queue", logger, &mockConnection{}, channel)
		ensure.NoError(err)

		err = publisher.Publish(ctx, &goledgerAmqp.EventNotification{
			EventID:       "8150276e-34fe-49d9-aeae-a35af0040a4f",
			EventType:     "banking:AccountOpened",
			Stream:        "banking:account:A",
			CorrelationID: "correlation",
			Payload:       []byte(`{"accountNumber":"A"}`),
		})

		ensure.NoError(err)
		ensure.Len(loggerHook.Entries, 0)
	})

	t.Run("Publish error is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		logger, _ := getLogger()

		channel := mocks.NewNotificationChannel(ctrl)
		channel.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(libamqp.ErrCommandInvalid)

		publisher, err := goledgerAmqp.NewNotificationPublisher("amqp://localhost:5672/", "my-queue", logger, &mockConnection{}, channel)
		require.NoError(t, err)

		err = publisher.Publish(ctx, &goledgerAmqp.EventNotification{EventID: "1"})
		assert.Equal(t, libamqp.ErrCommandInvalid, err)
	})

	t.Run("Close the connection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		connection := &mockConnection{}

		publisher, err := goledgerAmqp.NewNotificationPublisher("amqp://localhost:5672/", "my-queue", nil, connection, mocks.NewNotificationChannel(ctrl))
		require.NoError(t, err)

		assert.NoError(t, publisher.Close())
		assert.NoError(t, publisher.Close())
		assert.Equal(t, 1, connection.closed)
	})
}
