package sim

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"invoicesim/internal/core"
)

// Engine drives the day-stepped simulation. Each simulated day runs an
// issuance pass, then a payment pass, then reports end-of-day state; all
// businesses are visited in slice order within each pass, and every random
// draw comes from the single seeded rng, so a run is reproducible from its
// options and initial businesses.
type Engine struct {
	opts       Options
	businesses []*core.Business
	rng        *rand.Rand
	recorder   Recorder
	logger     core.Logger
	invoiceIDs *core.Sequence
	paymentIDs *core.Sequence
}

func NewEngine(opts Options, businesses []*core.Business, recorder Recorder, logger core.Logger) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &Engine{
		opts:       opts,
		businesses: businesses,
		rng:        rand.New(rand.NewSource(opts.Seed)),
		recorder:   recorder,
		logger:     logger,
		invoiceIDs: core.NewSequence(),
		paymentIDs: core.NewSequence(),
	}, nil
}

func (e *Engine) Run(ctx context.Context) error {
	e.logger.InfoContext(ctx, "simulation starting",
		"businesses", len(e.businesses), "days", e.opts.Days, "seed", e.opts.Seed)

	if err := e.recorder.RunStarted(ctx, e.opts, e.businesses); err != nil {
		return fmt.Errorf("record run start: %w", err)
	}

	for day := 1; day <= e.opts.Days; day++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		date := e.opts.StartDate.AddDate(0, 0, day)
		e.logger.DebugContext(ctx, "simulating day", "day", day, "date", date.Format(time.DateOnly))

		if err := e.issuancePass(ctx, day, date); err != nil {
			return fmt.Errorf("day %d issuance pass: %w", day, err)
		}
		if err := e.paymentPass(ctx, day, date); err != nil {
			return fmt.Errorf("day %d payment pass: %w", day, err)
		}
		if err := e.recorder.DayEnded(ctx, day, date, e.businesses); err != nil {
			return fmt.Errorf("day %d report: %w", day, err)
		}
	}

	e.logger.InfoContext(ctx, "simulation completed", "days", e.opts.Days)
	return e.recorder.RunEnded(ctx)
}

// issuancePass gives every business one chance per customer to issue an
// invoice, with daily probability (invoices_per_year / customers) / 365.
// Invoices issued here are due DueDays later, so they are never payable on
// the day they are issued.
func (e *Engine) issuancePass(ctx context.Context, day int, date time.Time) error {
	for _, business := range e.businesses {
		if len(business.Customers) == 0 {
			continue
		}

		perCustomer := float64(business.Profile.InvoicesPerYear) / float64(len(business.Customers))
		dailyProbability := perCustomer / 365.0

		for _, customer := range business.Customers {
			if e.rng.Float64() >= dailyProbability {
				continue
			}

			dueDate := date.AddDate(0, 0, e.opts.DueDays)
			invoice, err := business.IssueInvoice(customer, dueDate, date, e.invoiceIDs, e.rng)
			if err != nil {
				// An extreme draw from the amount distribution can come out
				// non-positive; that burns today's chance without an invoice.
				if errors.Is(err, core.ErrAmountNotPositive) {
					e.logger.DebugContext(ctx, "discarded non-positive amount draw",
						"day", day, "issuer", business.Name, "customer", customer.Name)
					continue
				}
				return err
			}

			if err := e.recorder.InvoiceIssued(ctx, day, invoice); err != nil {
				return err
			}
		}
	}

	return nil
}

// paymentPass walks every business's unpaid received invoices and settles
// the due ones probabilistically. The payment probability is the profile's
// on-time percentage, halved while the invoice is overdue but still within
// the profile's maximum delay. An unpaid invoice past the maximum delay is
// classified as a default; that is a reporting event only, the invoice
// keeps its state and stays eligible on later days.
func (e *Engine) paymentPass(ctx context.Context, day int, date time.Time) error {
	for _, business := range e.businesses {
		for _, invoice := range business.UnpaidReceived() {
			if date.Before(invoice.DueDate) {
				continue
			}

			daysOverdue := daysBetween(invoice.DueDate, date)
			if daysOverdue < 0 {
				daysOverdue = 0
			}

			probability := business.Profile.OnTimePaymentPercentage
			if daysOverdue > 0 && daysOverdue <= business.Profile.MaxPaymentDelay {
				probability /= 2
			}

			if float64(e.rng.Intn(100)+1) <= probability {
				payment, err := business.IssuePayment(
					[]*core.Invoice{invoice}, invoice.OutstandingBalance, date, nil, e.paymentIDs)
				if err != nil {
					return err
				}

				if err := e.recorder.InvoicePaid(ctx, day, payment, invoice, daysOverdue); err != nil {
					return err
				}
			} else if daysOverdue > business.Profile.MaxPaymentDelay {
				if err := e.recorder.DefaultRecorded(ctx, day, business, invoice, daysOverdue); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
