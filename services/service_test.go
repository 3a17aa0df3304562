package services

import (
	"io"
	"log/slog"
	"testing"

	"chatboard/store"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

// newTestGate opens a throwaway badger-backed store, the same setup the
// server uses in production.
func newTestGate(t *testing.T) *store.Gate {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return store.NewGate(store.NewBadgerStore(db, testLogger()))
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
