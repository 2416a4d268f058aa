// Package report renders the simulation's event stream for humans.
package report

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"invoicesim/internal/core"
	"invoicesim/internal/sim"
)

// Console writes the per-day activity narrative and an end-of-day balance
// sheet dump for every business. It implements sim.Recorder; writes never
// fail the run short of the writer itself erroring.
type Console struct {
	w io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) RunStarted(_ context.Context, opts sim.Options, businesses []*core.Business) error {
	_, err := fmt.Fprintf(c.w, "Simulation starting: %d businesses, %d days, seed %d\n",
		len(businesses), opts.Days, opts.Seed)
	return err
}

func (c *Console) InvoiceIssued(_ context.Context, day int, invoice *core.Invoice) error {
	_, err := fmt.Fprintf(c.w, "Day %d: %s issued invoice #%d to %s for %.2f, due %s\n",
		day, invoice.Issuer.Name, invoice.ID, invoice.Recipient.Name,
		invoice.Amount, invoice.DueDate.Format(time.DateOnly))
	return err
}

func (c *Console) InvoicePaid(_ context.Context, day int, _ *core.Payment, invoice *core.Invoice, daysOverdue int) error {
	status := "on time"
	if daysOverdue > 0 {
		status = "late"
	}

	_, err := fmt.Fprintf(c.w, "Day %d: %s paid %s invoice #%d.\n",
		day, invoice.Recipient.Name, status, invoice.ID)
	return err
}

func (c *Console) DefaultRecorded(_ context.Context, day int, debtor *core.Business, invoice *core.Invoice, _ int) error {
	_, err := fmt.Fprintf(c.w, "Day %d: %s has defaulted on invoice #%d.\n", day, debtor.Name, invoice.ID)
	return err
}

func (c *Console) DayEnded(_ context.Context, day int, date time.Time, businesses []*core.Business) error {
	if _, err := fmt.Fprintf(c.w, "\nEnd of Day %d (%s): Business Details and Balance Sheets\n%s\n",
		day, date.Format(time.DateOnly), strings.Repeat("-", 60)); err != nil {
		return err
	}

	for _, business := range businesses {
		profile := business.Profile
		if _, err := fmt.Fprintf(c.w, "Business %d %q: %d invoices/year, pays on time %.0f%%, max delay %d days\n",
			business.ID, business.Name, profile.InvoicesPerYear,
			profile.OnTimePaymentPercentage, profile.MaxPaymentDelay); err != nil {
			return err
		}

		balance := business.Balance
		if _, err := fmt.Fprintf(c.w, "  cash=%.2f receivable=%.2f payable=%.2f debt=%.2f\n",
			balance.Cash, balance.AccountsReceivable, balance.AccountsPayable, balance.Debt); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(c.w)
	return err
}

func (c *Console) RunEnded(_ context.Context) error {
	_, err := fmt.Fprintln(c.w, "Simulation completed.")
	return err
}
