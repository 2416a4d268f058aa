package core

import (
	"time"
)

type InvoiceStatus string

const (
	InvoiceIssued        InvoiceStatus = "issued"
	InvoicePartiallyPaid InvoiceStatus = "partially_paid"
	InvoicePaid          InvoiceStatus = "paid"
)

// Invoice is a single obligation from Issuer to Recipient. Amount is fixed
// at creation; OutstandingBalance starts equal to it and only ever
// decreases, flooring at zero. Status is paid exactly when the outstanding
// balance reaches zero, and PaidDate is stamped on that transition.
type Invoice struct {
	ID                 int64
	Issuer             *Business
	Recipient          *Business
	Amount             float64
	DueDate            time.Time
	OutstandingBalance float64
	Status             InvoiceStatus
	PaidDate           time.Time // zero until fully paid
	Payments           []*Payment
}

func newInvoice(id int64, issuer, recipient *Business, amount float64, dueDate time.Time) (*Invoice, error) {
	if amount <= 0 {
		return nil, ErrAmountNotPositive
	}

	return &Invoice{
		ID:                 id,
		Issuer:             issuer,
		Recipient:          recipient,
		Amount:             amount,
		DueDate:            dueDate,
		OutstandingBalance: amount,
		Status:             InvoiceIssued,
	}, nil
}

// ApplyPayment reduces the outstanding balance by amount and advances the
// lifecycle. Over-payment is absorbed: the balance floors at zero and the
// surplus is not refunded. This never fails, however large the amount.
func (i *Invoice) ApplyPayment(amount float64, date time.Time, payment *Payment) {
	i.OutstandingBalance -= amount
	if i.OutstandingBalance <= 0 {
		i.OutstandingBalance = 0
		i.Status = InvoicePaid
		if date.IsZero() {
			date = time.Now()
		}
		i.PaidDate = date
	} else {
		i.Status = InvoicePartiallyPaid
	}

	if payment != nil {
		i.Payments = append(i.Payments, payment)
	}
}

func (i *Invoice) Paid() bool {
	return i.Status == InvoicePaid
}
