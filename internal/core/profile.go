package core

import (
	"fmt"
	"math/rand"
)

// AttributeProfile bundles the behavioral parameters assigned to a business
// at creation: how often it invoices, what it charges each customer on
// average, and how reliably it pays.
//
// CustomerAverages is keyed by customer business id and filled in lazily as
// relationships are wired. A profile handed to more than one business shares
// those writes; callers that want per-business averages must Clone first.
type AttributeProfile struct {
	InvoicesPerYear         int
	CustomerAverages        map[int64]float64
	OnTimePaymentPercentage float64
	MaxPaymentDelay         int
}

func NewAttributeProfile(invoicesPerYear int, onTimePercentage float64, maxDelay int) *AttributeProfile {
	return &AttributeProfile{
		InvoicesPerYear:         invoicesPerYear,
		CustomerAverages:        make(map[int64]float64),
		OnTimePaymentPercentage: onTimePercentage,
		MaxPaymentDelay:         maxDelay,
	}
}

// Clone returns a profile with its own CustomerAverages map. This is the
// sharing boundary: a cloned profile no longer sees average updates made
// through the original.
func (p *AttributeProfile) Clone() *AttributeProfile {
	averages := make(map[int64]float64, len(p.CustomerAverages))
	for id, average := range p.CustomerAverages {
		averages[id] = average
	}

	return &AttributeProfile{
		InvoicesPerYear:         p.InvoicesPerYear,
		CustomerAverages:        averages,
		OnTimePaymentPercentage: p.OnTimePaymentPercentage,
		MaxPaymentDelay:         p.MaxPaymentDelay,
	}
}

// SetCustomerAverage upserts the average invoice amount for a counterparty.
// The amount is not validated; callers pass positive values.
func (p *AttributeProfile) SetCustomerAverage(customerID int64, amount float64) {
	p.CustomerAverages[customerID] = amount
}

// GenerateInvoiceAmount draws from a normal distribution centered on the
// stored average for the customer, with a standard deviation of 20% of that
// average. A zero average means "unset". Extreme draws may come out
// non-positive; callers decide whether to clamp or discard those.
func (p *AttributeProfile) GenerateInvoiceAmount(customerID int64, rng *rand.Rand) (float64, error) {
	average := p.CustomerAverages[customerID]
	if average == 0 {
		return 0, fmt.Errorf("customer %d: %w", customerID, ErrNoCustomerAverage)
	}

	return rng.NormFloat64()*(0.2*average) + average, nil
}

// DecidesToPayOnTime is true with probability OnTimePaymentPercentage/100.
func (p *AttributeProfile) DecidesToPayOnTime(rng *rand.Rand) bool {
	return rng.Float64()*100 <= p.OnTimePaymentPercentage
}

// GeneratePaymentDelay draws a delay in [1, MaxPaymentDelay] days. There is
// no valid range when MaxPaymentDelay is zero.
func (p *AttributeProfile) GeneratePaymentDelay(rng *rand.Rand) (int, error) {
	if p.MaxPaymentDelay == 0 {
		return 0, ErrNoPaymentDelayRange
	}

	return rng.Intn(p.MaxPaymentDelay) + 1, nil
}
