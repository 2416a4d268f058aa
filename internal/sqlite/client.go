package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type Client struct {
	db     *sql.DB
	config Config
}

func NewClient(config Config) (*Client, error) {
	db, err := sql.Open("sqlite3", buildDSN(config))
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger database: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping ledger database: %w", err)
	}

	// The simulator is the only writer; a single connection keeps inserts
	// ordered the way the run produced them.
	db.SetMaxOpenConns(config.MaxOpenConns)

	return &Client{
		db:     db,
		config: config,
	}, nil
}

func buildDSN(config Config) string {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=%d", config.LedgerPath, int(config.BusyTimeout.Milliseconds()))

	if config.EnableWAL {
		dsn += "&_journal_mode=WAL"
	}

	return dsn
}

func (c *Client) DB() *sql.DB {
	return c.db
}

func (c *Client) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}
