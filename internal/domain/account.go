package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a bank account held in the ledger. AccountNo is immutable once
// created and Transactions is append-only, in chronological order.
type Account struct {
	AccountNo    string
	HolderName   string
	Balance      decimal.Decimal
	KYCVerified  bool
	CreatedAt    time.Time
	Transactions []Transaction
}

// Clone returns a deep copy of the account so callers cannot mutate ledger
// state through a returned snapshot.
func (a *Account) Clone() *Account {
	c := *a
	c.Transactions = make([]Transaction, len(a.Transactions))
	copy(c.Transactions, a.Transactions)
	return &c
}

// LastTransaction returns the most recent transaction, or nil if the account
// has none.
func (a *Account) LastTransaction() *Transaction {
	if len(a.Transactions) == 0 {
		return nil
	}
	return &a.Transactions[len(a.Transactions)-1]
}

// SystemStats summarizes the ledger as a whole.
type SystemStats struct {
	TotalAccounts int
	TotalBalance  decimal.Decimal
}
