//go:build unit

package amqp_test

import (
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/hellofresh/goledger"
	goledgerLogger "github.com/hellofresh/goledger/extension/logrus"
)

type mockConnection struct {
	closed int
}

func (cn *mockConnection) Close() error {
	cn.closed++
	return nil
}

// mockAcknowledger records the delivery tags that were acknowledged or rejected
type mockAcknowledger struct {
	acked    []uint64
	rejected []uint64
}

func (ack *mockAcknowledger) Ack(tag uint64, multiple bool) error {
	ack.acked = append(ack.acked, tag)
	return nil
}

func (ack *mockAcknowledger) Nack(tag uint64, multiple bool, requeue bool) error {
	ack.rejected = append(ack.rejected, tag)
	return nil
}

func (ack *mockAcknowledger) Reject(tag uint64, requeue bool) error {
	ack.rejected = append(ack.rejected, tag)
	return nil
}

func getLogger() (goledger.Logger, *test.Hook) {
	logger, loggerHook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	return goledgerLogger.Wrap(logger), loggerHook
}
