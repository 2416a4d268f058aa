package sqlite

import (
	"time"
)

// Config describes the run-ledger database. An empty path disables the
// ledger entirely; the simulator never reads the file back.
type Config struct {
	LedgerPath   string        `envconfig:"LEDGER_PATH" default:""`
	MaxOpenConns int           `envconfig:"LEDGER_MAX_OPEN_CONNS" default:"1"`
	BusyTimeout  time.Duration `envconfig:"LEDGER_BUSY_TIMEOUT" default:"30s"`
	EnableWAL    bool          `envconfig:"LEDGER_ENABLE_WAL" default:"true"`
}
