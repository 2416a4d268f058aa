package core

// BalanceSheet tracks the four running totals owned by a single business.
// Updates are purely additive; nothing forces a field to stay non-negative
// (a business that keeps paying invoices can run negative cash).
type BalanceSheet struct {
	Cash               float64
	AccountsReceivable float64
	AccountsPayable    float64
	Debt               float64
}

func (b *BalanceSheet) AddCash(amount float64) {
	b.Cash += amount
}

func (b *BalanceSheet) AddAccountsReceivable(amount float64) {
	b.AccountsReceivable += amount
}

func (b *BalanceSheet) AddAccountsPayable(amount float64) {
	b.AccountsPayable += amount
}

func (b *BalanceSheet) AddDebt(amount float64) {
	b.Debt += amount
}
