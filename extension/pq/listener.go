package pq

import (
	"context"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/mailru/easyjson"

	"github.com/hellofresh/goledger"
	"github.com/hellofresh/goledger/driver/sql"
)

// Ensure Listener implements sql.Listener
var _ sql.Listener = &Listener{}

// Listener follows the notifications postgres sends for every event inserted into an event table
type Listener struct {
	dbDSN     string
	dbChannel string

	minReconnectInterval time.Duration
	maxReconnectInterval time.Duration

	logger goledger.Logger
}

// NewListener returns a Listener for the channel the event table trigger notifies
func NewListener(
	dbDSN string,
	dbChannel string,
	minReconnectInterval time.Duration,
	maxReconnectInterval time.Duration,
	logger goledger.Logger,
) (*Listener, error) {
	switch {
	case strings.TrimSpace(dbDSN) == "":
		return nil, goledger.InvalidArgumentError("dbDSN")
	case strings.TrimSpace(dbChannel) == "":
		return nil, goledger.InvalidArgumentError("dbChannel")
	case minReconnectInterval == 0:
		return nil, goledger.InvalidArgumentError("minReconnectInterval")
	case maxReconnectInterval < minReconnectInterval:
		return nil, goledger.InvalidArgumentError("maxReconnectInterval")
	}

	if logger == nil {
		logger = goledger.NopLogger
	}

	return &Listener{
		dbDSN:                dbDSN,
		dbChannel:            dbChannel,
		minReconnectInterval: minReconnectInterval,
		maxReconnectInterval: maxReconnectInterval,
		logger:               logger,
	}, nil
}

// Listen calls the trigger for every committed ledger event until the context is done.
// Notifications sent while the connection was lost are not redelivered.
func (s *Listener) Listen(ctx context.Context, trigger sql.Trigger) error {
	select {
	default:
	case <-ctx.Done():
		return nil
	}

	listener := pq.NewListener(s.dbDSN, s.minReconnectInterval, s.maxReconnectInterval, s.listenerStateCallback)
	defer func() {
		if err := listener.Close(); err != nil {
			s.logger.Warn("failed to close ledger notification listener", func(e goledger.LoggerEntry) {
				e.String("channel", s.dbChannel)
				e.Error(err)
			})
		}
	}()

	if err := listener.Listen(s.dbChannel); err != nil {
		return err
	}

	for {
		select {
		case n := <-listener.Notify:
			notification := s.unmarshalNotification(n)
			if notification == nil {
				continue
			}

			if err := trigger(ctx, notification); err != nil {
				return err
			}
		case <-ctx.Done():
			s.logger.Debug("stopped following ledger notifications", func(e goledger.LoggerEntry) {
				e.String("channel", s.dbChannel)
			})
			return nil
		}
	}
}

// listenerStateCallback logs the connection state changes of the pq.Listener
func (s *Listener) listenerStateCallback(event pq.ListenerEventType, err error) {
	logFields := func(e goledger.LoggerEntry) {
		e.String("channel", s.dbChannel)
		e.Int("listener_event", int(event))
		if err != nil {
			e.Error(err)
		}
	}

	switch event {
	case pq.ListenerEventConnected:
		s.logger.Debug("ledger notification listener connected", logFields)
	case pq.ListenerEventConnectionAttemptFailed:
		s.logger.Debug("ledger notification listener failed to connect", logFields)
	case pq.ListenerEventDisconnected:
		s.logger.Debug("ledger notification listener disconnected", logFields)
	case pq.ListenerEventReconnected:
		// events committed while disconnected were not notified
		s.logger.Warn("ledger notification listener reconnected, notifications may have been missed", logFields)
	default:
		s.logger.Warn("ledger notification listener reported an unknown state", logFields)
	}
}

// unmarshalNotification decodes the payload of the event table trigger, nil is returned for unusable notifications
func (s *Listener) unmarshalNotification(n *pq.Notification) *sql.Notification {
	if n == nil {
		s.logger.Info("received empty ledger notification", nil)
		return nil
	}

	if n.Extra == "" {
		s.logger.Error("received ledger notification without payload", func(e goledger.LoggerEntry) {
			e.String("channel", n.Channel)
			e.Int("backend_pid", n.BePid)
		})
		return nil
	}

	notification := &sql.Notification{}
	if err := easyjson.Unmarshal([]byte(n.Extra), notification); err != nil {
		s.logger.Error("received undecodable ledger notification", func(e goledger.LoggerEntry) {
			e.String("channel", n.Channel)
			e.String("payload", n.Extra)
			e.Error(err)
		})
		return nil
	}

	s.logger.Debug("received ledger notification", func(e goledger.LoggerEntry) {
		e.Int64("no", notification.No)
		e.String("stream", notification.Stream)
		e.String("event_type", notification.EventType)
		e.String("event_id", notification.EventID)
	})

	return notification
}
