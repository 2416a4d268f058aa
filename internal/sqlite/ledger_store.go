package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"invoicesim/internal/core"
	"invoicesim/internal/sim"
)

// LedgerStore is the write-only audit trail of a simulation run: the run
// header, every invoice and payment, default classifications, and one
// balance-sheet snapshot per business per day, all keyed by a uuid run id.
// It implements sim.Recorder. Nothing here is ever read back by the
// simulator; the file exists for after-the-fact analysis.
type LedgerStore struct {
	db    *sql.DB
	runID string
}

func NewLedgerStore(db *sql.DB) (*LedgerStore, error) {
	store := &LedgerStore{
		db:    db,
		runID: uuid.NewString(),
	}

	if err := store.ensureSchema(); err != nil {
		return nil, err
	}

	return store, nil
}

// RunID identifies this run's rows across all ledger tables.
func (s *LedgerStore) RunID() string {
	return s.runID
}

func (s *LedgerStore) ensureSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			seed INTEGER NOT NULL,
			days INTEGER NOT NULL,
			due_days INTEGER NOT NULL,
			start_date TEXT NOT NULL,
			started_at TEXT NOT NULL,
			finished_at TEXT
		);

		CREATE TABLE IF NOT EXISTS businesses (
			run_id TEXT NOT NULL,
			business_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			invoices_per_year INTEGER NOT NULL,
			on_time_percentage REAL NOT NULL,
			max_payment_delay INTEGER NOT NULL,
			PRIMARY KEY (run_id, business_id)
		);

		CREATE TABLE IF NOT EXISTS invoices (
			run_id TEXT NOT NULL,
			day INTEGER NOT NULL,
			invoice_id INTEGER NOT NULL,
			issuer_id INTEGER NOT NULL,
			recipient_id INTEGER NOT NULL,
			amount REAL NOT NULL,
			due_date TEXT NOT NULL,
			PRIMARY KEY (run_id, invoice_id)
		);

		CREATE TABLE IF NOT EXISTS payments (
			run_id TEXT NOT NULL,
			day INTEGER NOT NULL,
			payment_id INTEGER NOT NULL,
			payer_id INTEGER NOT NULL,
			invoice_id INTEGER NOT NULL,
			amount REAL NOT NULL,
			days_overdue INTEGER NOT NULL,
			PRIMARY KEY (run_id, payment_id, invoice_id)
		);

		CREATE TABLE IF NOT EXISTS defaults (
			run_id TEXT NOT NULL,
			day INTEGER NOT NULL,
			business_id INTEGER NOT NULL,
			invoice_id INTEGER NOT NULL,
			days_overdue INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS balance_snapshots (
			run_id TEXT NOT NULL,
			day INTEGER NOT NULL,
			business_id INTEGER NOT NULL,
			cash REAL NOT NULL,
			accounts_receivable REAL NOT NULL,
			accounts_payable REAL NOT NULL,
			debt REAL NOT NULL,
			PRIMARY KEY (run_id, day, business_id)
		);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create ledger schema: %w", err)
	}

	return nil
}

func (s *LedgerStore) RunStarted(ctx context.Context, opts sim.Options, businesses []*core.Business) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO runs (id, seed, days, due_days, start_date, started_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, s.runID, opts.Seed, opts.Days, opts.DueDays,
			opts.StartDate.Format(time.DateOnly), time.Now().UTC().Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("failed to insert run: %w", err)
		}

		for _, business := range businesses {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO businesses (run_id, business_id, name, invoices_per_year, on_time_percentage, max_payment_delay)
				VALUES (?, ?, ?, ?, ?, ?)
			`, s.runID, business.ID, business.Name, business.Profile.InvoicesPerYear,
				business.Profile.OnTimePaymentPercentage, business.Profile.MaxPaymentDelay)
			if err != nil {
				return fmt.Errorf("failed to insert business %d: %w", business.ID, err)
			}
		}

		return nil
	})
}

func (s *LedgerStore) InvoiceIssued(ctx context.Context, day int, invoice *core.Invoice) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO invoices (run_id, day, invoice_id, issuer_id, recipient_id, amount, due_date)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, s.runID, day, invoice.ID, invoice.Issuer.ID, invoice.Recipient.ID,
		invoice.Amount, invoice.DueDate.Format(time.DateOnly))
	if err != nil {
		return fmt.Errorf("failed to insert invoice %d: %w", invoice.ID, err)
	}

	return nil
}

func (s *LedgerStore) InvoicePaid(ctx context.Context, day int, payment *core.Payment, invoice *core.Invoice, daysOverdue int) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO payments (run_id, day, payment_id, payer_id, invoice_id, amount, days_overdue)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, s.runID, day, payment.ID, payment.Payer.ID, invoice.ID, payment.Amount, daysOverdue)
	if err != nil {
		return fmt.Errorf("failed to insert payment %d: %w", payment.ID, err)
	}

	return nil
}

func (s *LedgerStore) DefaultRecorded(ctx context.Context, day int, debtor *core.Business, invoice *core.Invoice, daysOverdue int) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO defaults (run_id, day, business_id, invoice_id, days_overdue)
		VALUES (?, ?, ?, ?, ?)
	`, s.runID, day, debtor.ID, invoice.ID, daysOverdue)
	if err != nil {
		return fmt.Errorf("failed to insert default record: %w", err)
	}

	return nil
}

func (s *LedgerStore) DayEnded(ctx context.Context, day int, _ time.Time, businesses []*core.Business) error {
	// SQLite caps bound parameters (SQLITE_MAX_VARIABLE_NUMBER, 999 by
	// default); at 7 per snapshot, 100 rows per statement stays well clear.
	const batchSize = 100

	return s.withTx(ctx, func(tx *sql.Tx) error {
		for i := 0; i < len(businesses); i += batchSize {
			end := i + batchSize
			if end > len(businesses) {
				end = len(businesses)
			}
			if err := s.insertSnapshots(ctx, tx, day, businesses[i:end]); err != nil {
				return err
			}
		}

		return nil
	})
}

func (s *LedgerStore) insertSnapshots(ctx context.Context, tx *sql.Tx, day int, businesses []*core.Business) error {
	query := `
		INSERT INTO balance_snapshots (
			run_id,
			day,
			business_id,
			cash,
			accounts_receivable,
			accounts_payable,
			debt
		) VALUES ` + valuePlaceholders(len(businesses), 7)

	args := make([]interface{}, 0, len(businesses)*7)
	for _, business := range businesses {
		balance := business.Balance
		args = append(args,
			s.runID,
			day,
			business.ID,
			balance.Cash,
			balance.AccountsReceivable,
			balance.AccountsPayable,
			balance.Debt,
		)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to bulk insert balance snapshots: %w", err)
	}

	return nil
}

func (s *LedgerStore) RunEnded(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE runs SET finished_at = ? WHERE id = ?
	`, time.Now().UTC().Format(time.RFC3339), s.runID)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}

	return nil
}

func (s *LedgerStore) withTx(ctx context.Context, cb func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err = cb(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction error: %w, rollback error: %w", err, rbErr)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func valuePlaceholders(rows, cols int) string {
	row := "(?"
	for i := 1; i < cols; i++ {
		row += ", ?"
	}
	row += ")"

	query := row
	for i := 1; i < rows; i++ {
		query += ", " + row
	}

	return query
}
