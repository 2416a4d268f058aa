package integration

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"invoicesim/internal/core"
	"invoicesim/internal/sim"
	"invoicesim/internal/sqlite"
)

func ledgerFixture(t *testing.T) (sim.Options, []*core.Business, *core.Invoice, *core.Payment) {
	t.Helper()

	seller, err := core.NewBusiness(1, "Business 1", core.NewAttributeProfile(365, 100, 0))
	require.NoError(t, err)
	payer, err := core.NewBusiness(2, "Business 2", core.NewAttributeProfile(123, 50, 50))
	require.NoError(t, err)

	require.NoError(t, seller.AddCustomer(payer))
	seller.Profile.SetCustomerAverage(payer.ID, 1000)

	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	invoice, err := seller.IssueInvoice(payer, start.AddDate(0, 0, 30), start, core.NewSequence(), rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	payment, err := payer.IssuePayment([]*core.Invoice{invoice}, invoice.OutstandingBalance, start.AddDate(0, 0, 30), nil, core.NewSequence())
	require.NoError(t, err)

	opts := sim.Options{Days: 31, DueDays: 30, Seed: 42, StartDate: start}
	return opts, []*core.Business{seller, payer}, invoice, payment
}

func TestLedgerStore_RecordsFullRun(t *testing.T) {
	suite := NewTestSuite(t)
	defer suite.Teardown()

	ctx := context.Background()
	opts, businesses, invoice, payment := ledgerFixture(t)

	require.NoError(t, suite.Store.RunStarted(ctx, opts, businesses))
	require.NoError(t, suite.Store.InvoiceIssued(ctx, 1, invoice))
	require.NoError(t, suite.Store.InvoicePaid(ctx, 31, payment, invoice, 0))
	require.NoError(t, suite.Store.DefaultRecorded(ctx, 31, businesses[1], invoice, 5))
	require.NoError(t, suite.Store.DayEnded(ctx, 1, opts.StartDate.AddDate(0, 0, 1), businesses))
	require.NoError(t, suite.Store.DayEnded(ctx, 2, opts.StartDate.AddDate(0, 0, 2), businesses))
	require.NoError(t, suite.Store.RunEnded(ctx))

	require.Equal(t, 1, suite.Count(t, "runs"))
	require.Equal(t, 2, suite.Count(t, "businesses"))
	require.Equal(t, 1, suite.Count(t, "invoices"))
	require.Equal(t, 1, suite.Count(t, "payments"))
	require.Equal(t, 1, suite.Count(t, "defaults"))
	require.Equal(t, 4, suite.Count(t, "balance_snapshots"))

	var (
		seed       int64
		days       int
		finishedAt *string
	)
	err := suite.DB.QueryRow(
		"SELECT seed, days, finished_at FROM runs WHERE id = ?", suite.Store.RunID(),
	).Scan(&seed, &days, &finishedAt)
	require.NoError(t, err)
	require.Equal(t, int64(42), seed)
	require.Equal(t, 31, days)
	require.NotNil(t, finishedAt)

	var amount float64
	var dueDate string
	err = suite.DB.QueryRow(
		"SELECT amount, due_date FROM invoices WHERE run_id = ? AND invoice_id = ?",
		suite.Store.RunID(), invoice.ID,
	).Scan(&amount, &dueDate)
	require.NoError(t, err)
	require.Equal(t, invoice.Amount, amount)
	require.Equal(t, "2026-01-31", dueDate)
}

func TestLedgerStore_SnapshotsTrackBalances(t *testing.T) {
	suite := NewTestSuite(t)
	defer suite.Teardown()

	ctx := context.Background()
	opts, businesses, _, _ := ledgerFixture(t)

	require.NoError(t, suite.Store.RunStarted(ctx, opts, businesses))
	require.NoError(t, suite.Store.DayEnded(ctx, 1, opts.StartDate.AddDate(0, 0, 1), businesses))

	var cash, receivable float64
	err := suite.DB.QueryRow(`
		SELECT cash, accounts_receivable FROM balance_snapshots
		WHERE run_id = ? AND day = 1 AND business_id = 1
	`, suite.Store.RunID()).Scan(&cash, &receivable)
	require.NoError(t, err)
	require.Equal(t, businesses[0].Balance.Cash, cash)
	require.Equal(t, businesses[0].Balance.AccountsReceivable, receivable)
}

func TestLedgerStore_DistinctRunsDoNotCollide(t *testing.T) {
	suite := NewTestSuite(t)
	defer suite.Teardown()

	ctx := context.Background()
	opts, businesses, _, _ := ledgerFixture(t)

	require.NoError(t, suite.Store.RunStarted(ctx, opts, businesses))

	// a second store over the same database gets its own run id
	second, err := sqlite.NewLedgerStore(suite.DB)
	require.NoError(t, err)
	require.NotEqual(t, suite.Store.RunID(), second.RunID())
	require.NoError(t, second.RunStarted(ctx, opts, businesses))

	var runs int
	require.NoError(t, suite.DB.QueryRow("SELECT COUNT(*) FROM runs").Scan(&runs))
	require.Equal(t, 2, runs)
}
