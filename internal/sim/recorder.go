package sim

import (
	"context"
	"time"

	"invoicesim/internal/core"
)

//go:generate go tool go.uber.org/mock/mockgen -source=recorder.go -destination=recorder_mock.go -package=sim

// Recorder receives the simulation's event stream: run boundaries, every
// issued invoice and settled payment, default classifications, and the
// end-of-day balance-sheet snapshot. Implementations must treat the
// entities they are handed as read-only. A Recorder error aborts the run;
// the audit trail is either complete or the run fails.
type Recorder interface {
	RunStarted(ctx context.Context, opts Options, businesses []*core.Business) error
	InvoiceIssued(ctx context.Context, day int, invoice *core.Invoice) error
	InvoicePaid(ctx context.Context, day int, payment *core.Payment, invoice *core.Invoice, daysOverdue int) error
	DefaultRecorded(ctx context.Context, day int, debtor *core.Business, invoice *core.Invoice, daysOverdue int) error
	DayEnded(ctx context.Context, day int, date time.Time, businesses []*core.Business) error
	RunEnded(ctx context.Context) error
}

// MultiRecorder fans every event out to each recorder in order, stopping at
// the first error.
type MultiRecorder []Recorder

func (m MultiRecorder) RunStarted(ctx context.Context, opts Options, businesses []*core.Business) error {
	for _, r := range m {
		if err := r.RunStarted(ctx, opts, businesses); err != nil {
			return err
		}
	}
	return nil
}

func (m MultiRecorder) InvoiceIssued(ctx context.Context, day int, invoice *core.Invoice) error {
	for _, r := range m {
		if err := r.InvoiceIssued(ctx, day, invoice); err != nil {
			return err
		}
	}
	return nil
}

func (m MultiRecorder) InvoicePaid(ctx context.Context, day int, payment *core.Payment, invoice *core.Invoice, daysOverdue int) error {
	for _, r := range m {
		if err := r.InvoicePaid(ctx, day, payment, invoice, daysOverdue); err != nil {
			return err
		}
	}
	return nil
}

func (m MultiRecorder) DefaultRecorded(ctx context.Context, day int, debtor *core.Business, invoice *core.Invoice, daysOverdue int) error {
	for _, r := range m {
		if err := r.DefaultRecorded(ctx, day, debtor, invoice, daysOverdue); err != nil {
			return err
		}
	}
	return nil
}

func (m MultiRecorder) DayEnded(ctx context.Context, day int, date time.Time, businesses []*core.Business) error {
	for _, r := range m {
		if err := r.DayEnded(ctx, day, date, businesses); err != nil {
			return err
		}
	}
	return nil
}

func (m MultiRecorder) RunEnded(ctx context.Context) error {
	for _, r := range m {
		if err := r.RunEnded(ctx); err != nil {
			return err
		}
	}
	return nil
}
