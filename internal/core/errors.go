package core

import (
	"errors"
)

var (
	ErrAmountNotPositive   = errors.New("amount must be positive")
	ErrPastDueDate         = errors.New("due date cannot be in the past")
	ErrNotCustomer         = errors.New("recipient is not a customer of the issuer")
	ErrNilBusiness         = errors.New("business reference must not be nil")
	ErrNilProfile          = errors.New("attribute profile must not be nil")
	ErrNoCustomerAverage   = errors.New("no average invoice amount set for customer")
	ErrNoPaymentDelayRange = errors.New("max payment delay is zero, no delay to draw")
	ErrEmptyInvoiceList    = errors.New("payment must cover at least one invoice")
	ErrBadDistribution     = errors.New("distribution percentages must match the invoice list and sum to 100")
)
