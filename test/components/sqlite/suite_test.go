package integration

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"invoicesim/internal/sqlite"
)

type TestSuite struct {
	DB       *sql.DB
	Store    *sqlite.LedgerStore
	teardown func()
}

func NewTestSuite(t *testing.T) *TestSuite {
	t.Helper()

	config := sqlite.Config{
		LedgerPath:   filepath.Join(t.TempDir(), "test_ledger.db"),
		MaxOpenConns: 1,
		BusyTimeout:  30 * time.Second,
		EnableWAL:    true,
	}

	client, err := sqlite.NewClient(config)
	require.NoError(t, err, "failed to create test client")

	store, err := sqlite.NewLedgerStore(client.DB())
	require.NoError(t, err, "failed to create ledger store")

	return &TestSuite{
		DB:    client.DB(),
		Store: store,
		teardown: func() {
			client.Close()
		},
	}
}

func (s *TestSuite) Teardown() {
	s.teardown()
}

func (s *TestSuite) Count(t *testing.T, table string) int {
	t.Helper()

	var count int
	err := s.DB.QueryRow("SELECT COUNT(*) FROM "+table+" WHERE run_id = ?", s.Store.RunID()).Scan(&count)
	require.NoError(t, err)
	return count
}
