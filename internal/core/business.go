package core

import (
	"fmt"
	"math/rand"
	"time"
)

// Business is one node in the invoice network. It owns its balance sheet
// exclusively and its attribute profile by reference (possibly shared, see
// AttributeProfile). Customers is the directed "sells to" edge list; the
// three logs are append-only audit trails and outlive the run.
//
// Membership and lookups are keyed by id rather than pointer identity.
type Business struct {
	ID      int64
	Name    string
	Profile *AttributeProfile
	Balance *BalanceSheet

	Customers   []*Business
	customerIDs map[int64]struct{}

	SentInvoices     []*Invoice
	ReceivedInvoices []*Invoice
	PaymentsMade     []*Payment
}

func NewBusiness(id int64, name string, profile *AttributeProfile) (*Business, error) {
	if profile == nil {
		return nil, ErrNilProfile
	}

	return &Business{
		ID:          id,
		Name:        name,
		Profile:     profile,
		Balance:     &BalanceSheet{},
		customerIDs: make(map[int64]struct{}),
	}, nil
}

// AddCustomer links customer as a recipient of this business's invoices.
// Adding the same customer twice is a no-op.
func (b *Business) AddCustomer(customer *Business) error {
	if customer == nil {
		return ErrNilBusiness
	}
	if b.IsCustomer(customer.ID) {
		return nil
	}

	b.Customers = append(b.Customers, customer)
	b.customerIDs[customer.ID] = struct{}{}
	return nil
}

func (b *Business) IsCustomer(id int64) bool {
	_, ok := b.customerIDs[id]
	return ok
}

// IssueInvoice draws an amount for the recipient from the issuer's profile
// and issues a new invoice due on dueDate. asOf is the current simulation
// date; all preconditions are checked before any state changes. On success
// the issuer's receivable and the recipient's payable both grow by the
// invoice amount and the invoice lands in both parties' logs.
func (b *Business) IssueInvoice(recipient *Business, dueDate, asOf time.Time, seq *Sequence, rng *rand.Rand) (*Invoice, error) {
	if recipient == nil {
		return nil, ErrNilBusiness
	}
	if dueDate.Before(asOf) {
		return nil, fmt.Errorf("due %s before %s: %w",
			dueDate.Format(time.DateOnly), asOf.Format(time.DateOnly), ErrPastDueDate)
	}
	if !b.IsCustomer(recipient.ID) {
		return nil, fmt.Errorf("%s is not a customer of %s: %w", recipient.Name, b.Name, ErrNotCustomer)
	}

	amount, err := b.Profile.GenerateInvoiceAmount(recipient.ID, rng)
	if err != nil {
		return nil, err
	}

	invoice, err := newInvoice(seq.Next(), b, recipient, amount, dueDate)
	if err != nil {
		return nil, err
	}

	b.Balance.AddAccountsReceivable(amount)
	recipient.Balance.AddAccountsPayable(amount)

	b.SentInvoices = append(b.SentInvoices, invoice)
	recipient.ReceivedInvoices = append(recipient.ReceivedInvoices, invoice)
	return invoice, nil
}

// IssuePayment pays total across the given invoices on date. A nil
// distribution means an even split.
//
// Balance-sheet adjustments on both sides use the invoices' outstanding
// balances as they stand before the payment applies, mirroring how the
// payable was booked at issuance: the payer's payable drops by the summed
// pre-payment outstanding balances, and each issuer's cash/receivable move
// by its invoice's pre-payment outstanding balance scaled by the
// distribution share. Only afterwards does the payment apply itself to the
// invoices, so invoice state reflects the distributed amounts.
func (b *Business) IssuePayment(invoices []*Invoice, total float64, date time.Time, distribution []float64, seq *Sequence) (*Payment, error) {
	payment, err := newPayment(seq.Next(), b, total, date, invoices, distribution)
	if err != nil {
		return nil, err
	}

	var outstanding float64
	for _, invoice := range invoices {
		outstanding += invoice.OutstandingBalance
	}

	b.Balance.AddCash(-total)
	b.Balance.AddAccountsPayable(-outstanding)

	for idx, invoice := range invoices {
		settled := invoice.OutstandingBalance * (payment.Distribution[idx] / 100)
		invoice.Issuer.Balance.AddCash(settled)
		invoice.Issuer.Balance.AddAccountsReceivable(-settled)
	}

	payment.applyToInvoices()
	b.PaymentsMade = append(b.PaymentsMade, payment)
	return payment, nil
}

// UnpaidReceived returns the received invoices that are not yet fully paid,
// in arrival order.
func (b *Business) UnpaidReceived() []*Invoice {
	var unpaid []*Invoice
	for _, invoice := range b.ReceivedInvoices {
		if !invoice.Paid() {
			unpaid = append(unpaid, invoice)
		}
	}

	return unpaid
}

func (b *Business) CustomerByID(id int64) *Business {
	for _, customer := range b.Customers {
		if customer.ID == id {
			return customer
		}
	}

	return nil
}

func (b *Business) CustomerByName(name string) *Business {
	for _, customer := range b.Customers {
		if customer.Name == name {
			return customer
		}
	}

	return nil
}

// RandomCustomer picks a uniformly random customer, or nil when the list is
// empty.
func (b *Business) RandomCustomer(rng *rand.Rand) *Business {
	if len(b.Customers) == 0 {
		return nil
	}

	return b.Customers[rng.Intn(len(b.Customers))]
}

func (b *Business) SentInvoice(id int64) *Invoice {
	for _, invoice := range b.SentInvoices {
		if invoice.ID == id {
			return invoice
		}
	}

	return nil
}

// SentInvoicesTo returns every invoice this business has issued to the
// given recipient.
func (b *Business) SentInvoicesTo(recipientID int64) []*Invoice {
	var invoices []*Invoice
	for _, invoice := range b.SentInvoices {
		if invoice.Recipient.ID == recipientID {
			invoices = append(invoices, invoice)
		}
	}

	return invoices
}

func (b *Business) ReceivedInvoice(id int64) *Invoice {
	for _, invoice := range b.ReceivedInvoices {
		if invoice.ID == id {
			return invoice
		}
	}

	return nil
}

// ReceivedInvoicesFrom returns every invoice this business has received
// from the given issuer.
func (b *Business) ReceivedInvoicesFrom(issuerID int64) []*Invoice {
	var invoices []*Invoice
	for _, invoice := range b.ReceivedInvoices {
		if invoice.Issuer.ID == issuerID {
			invoices = append(invoices, invoice)
		}
	}

	return invoices
}

func (b *Business) PaymentByID(id int64) *Payment {
	for _, payment := range b.PaymentsMade {
		if payment.ID == id {
			return payment
		}
	}

	return nil
}

// PaymentForInvoice returns the first payment that touched the given
// invoice, or nil.
func (b *Business) PaymentForInvoice(invoiceID int64) *Payment {
	for _, payment := range b.PaymentsMade {
		for _, invoice := range payment.Invoices {
			if invoice.ID == invoiceID {
				return payment
			}
		}
	}

	return nil
}
