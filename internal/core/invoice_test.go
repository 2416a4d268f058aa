package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testDate(day int) time.Time {
	return time.Date(2026, time.March, day, 0, 0, 0, 0, time.UTC)
}

func TestInvoice_ApplyPayment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		amount          float64
		payments        []float64
		expectedBalance float64
		expectedStatus  InvoiceStatus
	}{
		{
			name:            "partial payment",
			amount:          1000,
			payments:        []float64{400},
			expectedBalance: 600,
			expectedStatus:  InvoicePartiallyPaid,
		},
		{
			name:            "two partials then settled",
			amount:          1000,
			payments:        []float64{400, 400, 200},
			expectedBalance: 0,
			expectedStatus:  InvoicePaid,
		},
		{
			name:            "exact payment settles",
			amount:          1000,
			payments:        []float64{1000},
			expectedBalance: 0,
			expectedStatus:  InvoicePaid,
		},
		{
			name:            "double over-payment floors at zero",
			amount:          1000,
			payments:        []float64{2000},
			expectedBalance: 0,
			expectedStatus:  InvoicePaid,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			invoice, err := newInvoice(1, nil, nil, tt.amount, testDate(30))
			require.NoError(t, err)
			require.Equal(t, InvoiceIssued, invoice.Status)
			require.Equal(t, tt.amount, invoice.OutstandingBalance)

			for _, payment := range tt.payments {
				invoice.ApplyPayment(payment, testDate(15), nil)
			}

			require.Equal(t, tt.expectedBalance, invoice.OutstandingBalance)
			require.Equal(t, tt.expectedStatus, invoice.Status)

			// paid iff zero balance, and PaidDate stamped iff paid
			require.Equal(t, invoice.OutstandingBalance == 0, invoice.Paid())
			require.Equal(t, invoice.Paid(), !invoice.PaidDate.IsZero())
			if invoice.Paid() {
				require.Equal(t, testDate(15), invoice.PaidDate)
			}
		})
	}
}

func TestInvoice_ApplyPayment_RecordsPaymentRefs(t *testing.T) {
	t.Parallel()

	invoice, err := newInvoice(1, nil, nil, 1000, testDate(30))
	require.NoError(t, err)

	first := &Payment{ID: 1}
	second := &Payment{ID: 2}

	invoice.ApplyPayment(300, testDate(10), first)
	invoice.ApplyPayment(700, testDate(11), second)

	require.Equal(t, []*Payment{first, second}, invoice.Payments)
}

func TestNewInvoice_RejectsNonPositiveAmount(t *testing.T) {
	t.Parallel()

	for _, amount := range []float64{0, -50} {
		_, err := newInvoice(1, nil, nil, amount, testDate(30))
		require.ErrorIs(t, err, ErrAmountNotPositive)
	}
}
