//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellofresh/goledger"
	"github.com/hellofresh/goledger/driver/sql/postgres"
	"github.com/hellofresh/goledger/internal/test"
)

func TestEventStore_Integration(t *testing.T) {
	test.PostgresDatabase(t, func(db *sql.DB) {
		ctx := context.Background()

		store, err := postgres.NewEventStore(db, "events_acme", nil)
		require.NoError(t, err)

		require.NoError(t, store.Setup(ctx))
		require.NoError(t, store.Setup(ctx), "setup must be idempotent")

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				event := goledger.NewEvent("banking:AccountOpened", []byte(`{"accountNumber":"A"}`))
				assert.NoError(t, store.Commit(ctx, "banking:account:A", event, goledger.AnyVersion))
			}()
		}
		wg.Wait()

		event := goledger.NewEvent("banking:AccountOpened", []byte(`{"accountNumber":"B"}`))
		require.NoError(t, store.Commit(ctx, "banking:account:B", event, goledger.NoStream))
		assert.IsType(t, &goledger.ConcurrencyError{}, store.Commit(ctx, "banking:account:B", event, goledger.NoStream))

		stream, err := store.Load(ctx, "banking:account:A")
		require.NoError(t, err)
		events, _, err := goledger.ReadEventStream(stream)
		require.NoError(t, err)
		require.Len(t, events, 10)
		for i, e := range events {
			assert.Equal(t, float64(i+1), e.Metadata.Value(goledger.VersionKey))
		}

		stream, err = store.Load(ctx, goledger.AllStreams)
		require.NoError(t, err)
		events, _, err = goledger.ReadEventStream(stream)
		require.NoError(t, err)
		assert.Len(t, events, 11)
	})
}
