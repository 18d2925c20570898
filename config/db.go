package config

import (
	"database/sql"
	"time"

	// postgres driver
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// NewPostgresDB creates a new sql.DB and waits for the database to accept connections
func NewPostgresDB(dsn string, logger *zap.Logger) (*sql.DB, func(), error) {
	postgresDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, nil, err
	}

	postgresDBCloser := func() {
		if err := postgresDB.Close(); err != nil {
			logger.With(zap.Error(err)).Warn("postgresDB.Close return an error")
		}
	}

	for i := 0; ; i++ {
		err := postgresDB.Ping()
		if err == nil {
			break
		}

		if i > 5 {
			postgresDBCloser()
			return nil, nil, err
		}
		logger.With(zap.Error(err)).Warn("failed to ping db waiting to try again")
		time.Sleep(time.Second)
	}

	return postgresDB, postgresDBCloser, nil
}
