//go:build integration

package test

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

// PostgresDatabase creates a fresh database, provides a connection to it to the callback and drops it afterwards.
// The server is configured using the POSTGRES_DSN environment variable.
func PostgresDatabase(t *testing.T, testCase func(db *sql.DB)) {
	dsn, exists := os.LookupEnv("POSTGRES_DSN")
	if !exists {
		t.Fatalf("test.postgres: missing POSTGRES_DSN enviroment variable")
	}

	// Parse the postgres dsn into key value pairs
	parsedDSN, err := pq.ParseURL(dsn)
	require.NoError(t, err, "test.postgres: failed to parse postgres dsn")

	control, err := sql.Open("postgres", withDatabase(parsedDSN, "postgres"))
	require.NoError(t, err, "test.postgres: failed to connect to postgres db")
	defer control.Close()

	databaseName := "goledger_" + strings.ReplaceAll(uuid.New().String(), "-", "")
	_, err = control.Exec(fmt.Sprintf(`CREATE DATABASE %s`, pq.QuoteIdentifier(databaseName)))
	require.NoError(t, err, "test.postgres: failed to create database")
	defer func() {
		if _, err := control.Exec(fmt.Sprintf(`DROP DATABASE IF EXISTS %s`, pq.QuoteIdentifier(databaseName))); err != nil {
			t.Errorf("test.postgres: failed to drop database: %+v", err)
		}
	}()

	db, err := sql.Open("postgres", withDatabase(parsedDSN, databaseName))
	require.NoError(t, err, "test.postgres: connection failed")
	defer func() {
		if err := db.Close(); err != nil {
			t.Errorf("test.postgres: connection failed to close: %+v", err)
		}
	}()

	testCase(db)
}

// withDatabase replaces or adds the dbname of a key value dsn
func withDatabase(dsn string, databaseName string) string {
	parts := strings.Fields(dsn)
	for i, part := range parts {
		if strings.HasPrefix(part, "dbname=") {
			parts = append(parts[:i], parts[i+1:]...)
			break
		}
	}

	return strings.Join(append(parts, "dbname="+databaseName), " ")
}
