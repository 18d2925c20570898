package sql

import (
	"context"
	"database/sql"

	"github.com/hellofresh/goledger"
)

type (
	// Execer a interface used to execute a query on a sql.DB, sql.Conn or sql.Tx
	Execer interface {
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	}

	// Queryer an interface used to query a sql.DB, sql.Conn or sql.Tx
	Queryer interface {
		QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	}

	// TxBeginner an interface used to start a transaction on a sql.DB or sql.Conn
	TxBeginner interface {
		BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
	}
)

// ExecInTransaction runs the callback in a transaction which is committed when the callback succeeds
// and rolled back otherwise
func ExecInTransaction(
	ctx context.Context,
	db TxBeginner,
	logger goledger.Logger,
	callback func(ctx context.Context, tx *sql.Tx) error,
) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err := callback(ctx, tx); err != nil {
		if errRollback := tx.Rollback(); errRollback != nil {
			logger.Error("could not rollback transaction", func(e goledger.LoggerEntry) {
				e.Error(errRollback)
			})
		}

		return err
	}

	return tx.Commit()
}
