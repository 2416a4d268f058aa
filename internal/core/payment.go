package core

import (
	"math"
	"time"
)

// Distribution percentages are compared against 100 with a small tolerance
// so even splits over e.g. 3 invoices still validate.
const distributionTolerance = 1e-6

// Payment is a single disbursement from Payer applied across one or more
// invoices. Distribution holds percentages parallel to Invoices;
// PayeeAmounts accumulates, per invoice issuer id, the slice of the payment
// routed to that issuer.
type Payment struct {
	ID           int64
	Payer        *Business
	Amount       float64
	Date         time.Time
	Invoices     []*Invoice
	Distribution []float64
	PayeeAmounts map[int64]float64
}

// EvenDistribution splits 100% evenly across n invoices.
func EvenDistribution(n int) []float64 {
	shares := make([]float64, n)
	for i := range shares {
		shares[i] = 100 / float64(n)
	}

	return shares
}

func newPayment(id int64, payer *Business, amount float64, date time.Time, invoices []*Invoice, distribution []float64) (*Payment, error) {
	if amount <= 0 {
		return nil, ErrAmountNotPositive
	}
	if len(invoices) == 0 {
		return nil, ErrEmptyInvoiceList
	}

	if distribution == nil {
		distribution = EvenDistribution(len(invoices))
	}
	if len(distribution) != len(invoices) {
		return nil, ErrBadDistribution
	}

	var total float64
	for _, share := range distribution {
		total += share
	}
	if math.Abs(total-100) > distributionTolerance {
		return nil, ErrBadDistribution
	}

	return &Payment{
		ID:           id,
		Payer:        payer,
		Amount:       amount,
		Date:         date,
		Invoices:     invoices,
		Distribution: distribution,
		PayeeAmounts: make(map[int64]float64),
	}, nil
}

// applyToInvoices settles the payment against every listed invoice in list
// order. Each invoice receives its distribution share of the total amount,
// and the share is booked against the invoice's issuer in PayeeAmounts.
func (p *Payment) applyToInvoices() {
	for idx, invoice := range p.Invoices {
		share := p.Amount * (p.Distribution[idx] / 100)
		invoice.ApplyPayment(share, p.Date, p)
		p.PayeeAmounts[invoice.Issuer.ID] += share
	}
}
