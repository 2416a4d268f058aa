package sim

import (
	"math"
	"math/rand"

	"invoicesim/internal/core"
)

// BuildNetwork wires directed customer relationships between the
// businesses and seeds an average invoice amount for every relationship.
// Candidate pairs are gathered in enumeration order, skipping the reverse
// of an already-gathered pair so no two businesses end up as each other's
// customer, then shuffled and linked with each seller capped at n-1
// customers.
func BuildNetwork(businesses []*core.Business, rng *rand.Rand) {
	type pair struct {
		seller   *core.Business
		customer *core.Business
	}

	var pairs []pair
	gathered := make(map[[2]int64]bool)
	for _, business := range businesses {
		for _, other := range businesses {
			if other.ID == business.ID {
				continue
			}
			if gathered[[2]int64{other.ID, business.ID}] {
				continue
			}
			pairs = append(pairs, pair{seller: business, customer: other})
			gathered[[2]int64{business.ID, other.ID}] = true
		}
	}

	rng.Shuffle(len(pairs), func(i, j int) {
		pairs[i], pairs[j] = pairs[j], pairs[i]
	})

	for _, p := range pairs {
		if p.seller.IsCustomer(p.customer.ID) || len(p.seller.Customers) >= len(businesses)-1 {
			continue
		}

		_ = p.seller.AddCustomer(p.customer)
		p.seller.Profile.SetCustomerAverage(p.customer.ID, relationshipAverage(p.seller, p.customer, rng))
	}
}

// relationshipAverage draws a base amount in [1000, 10000] and scales it by
// both parties' invoice volume: a seller that invoices rarely sends larger
// invoices, a customer that handles more invoices absorbs larger ones. The
// result is clamped to [1000, 100000].
func relationshipAverage(seller, customer *core.Business, rng *rand.Rand) float64 {
	base := float64(rng.Intn(9001) + 1000)

	sellerAdjustment := 365.0 / float64(seller.Profile.InvoicesPerYear)
	customerAdjustment := float64(customer.Profile.InvoicesPerYear) / 365.0

	amount := base * sellerAdjustment * customerAdjustment
	return math.Min(math.Max(amount, 1000), 100_000)
}
