package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/hellofresh/goledger"
	driverSQL "github.com/hellofresh/goledger/driver/sql"
	"github.com/hellofresh/goledger/internal/json"
)

// uniqueViolation is the postgres error code raised when a unique constraint is violated
const uniqueViolation pq.ErrorCode = "23505"

// Ensure that we satisfy the goledger.EventStore interface
var _ goledger.EventStore = &EventStore{}

// EventStore a postgres event store implementation storing all streams of a bank in a single table
type EventStore struct {
	db            *sql.DB
	tableName     string
	table         string
	notifyChannel string
	logger        goledger.Logger

	querySelectStream string
	querySelectAll    string
	queryLockStream   string
	queryStreamLength string
	queryInsert       string
}

// NewEventStore return a new postgres.EventStore
func NewEventStore(db *sql.DB, tableName string, logger goledger.Logger) (*EventStore, error) {
	switch {
	case db == nil:
		return nil, goledger.InvalidArgumentError("db")
	case tableName == "":
		return nil, goledger.InvalidArgumentError("tableName")
	}
	if logger == nil {
		logger = goledger.NopLogger
	}

	table := QuoteIdentifier(tableName)

	return &EventStore{
		db:        db,
		tableName: tableName,
		table:     table,
		logger:    logger,

		/* #nosec G201 */
		querySelectStream: fmt.Sprintf(
			`SELECT event_id, event_type, payload, metadata, created_at FROM %s WHERE stream = $1 ORDER BY version`,
			table,
		),
		/* #nosec G201 */
		querySelectAll: fmt.Sprintf(
			`SELECT event_id, event_type, payload, metadata, created_at FROM %s ORDER BY no`,
			table,
		),
		queryLockStream: `SELECT pg_advisory_xact_lock(hashtext($1))`,
		/* #nosec G201 */
		queryStreamLength: fmt.Sprintf(
			`SELECT COALESCE(MAX(version), 0) FROM %s WHERE stream = $1`,
			table,
		),
		/* #nosec G201 */
		queryInsert: fmt.Sprintf(
			`INSERT INTO %s (event_id, stream, version, event_type, payload, metadata, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			table,
		),
	}, nil
}

// Setup creates the event table and its indexes when they do not exist
func (e *EventStore) Setup(ctx context.Context) error {
	return driverSQL.ExecInTransaction(ctx, e.db, e.logger, func(ctx context.Context, tx *sql.Tx) error {
		for _, q := range e.createSchema() {
			if _, err := tx.ExecContext(ctx, q); err != nil {
				e.logger.Error("failed to create event table", func(entry goledger.LoggerEntry) {
					entry.Error(err)
					entry.String("query", q)
				})

				return err
			}
		}

		return nil
	})
}

// EnableNotifications makes Setup create a trigger that notifies the channel of every inserted event
func (e *EventStore) EnableNotifications(channel string) error {
	if channel == "" {
		return goledger.InvalidArgumentError("channel")
	}
	e.notifyChannel = channel

	return nil
}

func (e *EventStore) createSchema() []string {
	schema := []string{
		fmt.Sprintf(
			`CREATE TABLE IF NOT EXISTS %s (
    no BIGSERIAL,
    event_id UUID NOT NULL,
    stream VARCHAR(255) NOT NULL,
    version BIGINT NOT NULL,
    event_type VARCHAR(100) NOT NULL,
    payload JSON NOT NULL,
    metadata JSONB NOT NULL,
    created_at TIMESTAMP(6) NOT NULL,
    PRIMARY KEY (no),
    UNIQUE (event_id),
    UNIQUE (stream, version)
);`,
			e.table,
		),
	}

	if e.notifyChannel != "" {
		schema = append(schema, notifySchema(e.tableName, e.notifyChannel)...)
	}

	return schema
}

// Load returns all events of the stream in commit order
func (e *EventStore) Load(ctx context.Context, streamName goledger.StreamName) (goledger.EventStream, error) {
	return e.LoadWithConnection(ctx, e.db, streamName)
}

// LoadWithConnection returns all events of the stream in commit order using the provided connection
func (e *EventStore) LoadWithConnection(
	ctx context.Context,
	conn driverSQL.Queryer,
	streamName goledger.StreamName,
) (goledger.EventStream, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if streamName == goledger.AllStreams {
		rows, err = conn.QueryContext(ctx, e.querySelectAll)
	} else {
		rows, err = conn.QueryContext(ctx, e.querySelectStream, string(streamName))
	}
	if err != nil {
		return nil, errors.Wrapf(err, "goledger: failed to query stream %s", streamName)
	}

	return driverSQL.NewEventStream(rows)
}

// Commit appends the event to the stream when the stream is at the expected version.
// Commits to the same stream are serialized by a transaction level advisory lock.
func (e *EventStore) Commit(
	ctx context.Context,
	streamName goledger.StreamName,
	event goledger.Event,
	expectedVersion goledger.ExpectedVersion,
) error {
	switch {
	case streamName == goledger.AllStreams:
		return goledger.ErrAllStreamsIsReadOnly
	case streamName == "":
		return goledger.InvalidArgumentError("streamName")
	case event.Type == "":
		return goledger.ErrEmptyEventType
	}

	return driverSQL.ExecInTransaction(ctx, e.db, e.logger, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, e.queryLockStream, string(streamName)); err != nil {
			return errors.Wrap(err, "goledger: failed to lock stream")
		}

		var actualVersion int64
		if err := tx.QueryRowContext(ctx, e.queryStreamLength, string(streamName)).Scan(&actualVersion); err != nil {
			return errors.Wrap(err, "goledger: failed to read stream version")
		}

		if !expectedVersion.Matches(actualVersion) {
			return &goledger.ConcurrencyError{
				StreamName: streamName,
				Expected:   expectedVersion,
				Actual:     actualVersion,
			}
		}

		return e.insert(ctx, tx, streamName, actualVersion+1, event, expectedVersion)
	})
}

func (e *EventStore) insert(
	ctx context.Context,
	conn driverSQL.Execer,
	streamName goledger.StreamName,
	version int64,
	event goledger.Event,
	expectedVersion goledger.ExpectedVersion,
) error {
	event = event.
		WithMetadata(goledger.StreamKey, string(streamName)).
		WithMetadata(goledger.VersionKey, version)

	meta, err := json.MarshalJSON(event.Metadata)
	if err != nil {
		return err
	}

	_, err = conn.ExecContext(
		ctx,
		e.queryInsert,
		event.ID,
		string(streamName),
		version,
		event.Type,
		event.Payload,
		meta,
		event.CreatedAt,
	)
	if err != nil {
		e.logger.Warn("failed to insert event into the event table", func(entry goledger.LoggerEntry) {
			entry.Error(err)
			entry.String("stream", string(streamName))
			entry.Int64("version", version)
		})

		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return &goledger.ConcurrencyError{
				StreamName: streamName,
				Expected:   expectedVersion,
				Actual:     version,
			}
		}

		return err
	}

	e.logger.Debug("inserted event into the event table", func(entry goledger.LoggerEntry) {
		entry.String("stream", string(streamName))
		entry.Int64("version", version)
		entry.String("event_id", event.ID.String())
	})

	return nil
}
