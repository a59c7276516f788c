package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType identifies the operation that produced a transaction.
type TransactionType string

const (
	TypeDeposit  TransactionType = "deposit"
	TypeWithdraw TransactionType = "withdraw"
	TypeTransfer TransactionType = "transfer"
)

// TransactionStatus is the outcome recorded on a transaction. Processors only
// append successful transactions; StatusFailed exists for completeness of the
// wire format.
type TransactionStatus string

const (
	StatusSuccess TransactionStatus = "success"
	StatusFailed  TransactionStatus = "failed"
)

// Transaction is one entry in an account's history, from that account's
// perspective: NewBalance = PreviousBalance +/- Amount depending on Type and
// direction. FromAccount/ToAccount are set only for transfers.
type Transaction struct {
	Type            TransactionType
	Amount          decimal.Decimal
	PreviousBalance decimal.Decimal
	NewBalance      decimal.Decimal
	FromAccount     string
	ToAccount       string
	Status          TransactionStatus
	Timestamp       time.Time
}

// TransferSnapshot is the all-or-nothing result of one transfer: both sides'
// balance movements plus the shared transaction identifier.
type TransferSnapshot struct {
	TransactionID string
	Sender        TransferParty
	Receiver      TransferParty
	Amount        decimal.Decimal
	Timestamp     time.Time
}

// TransferParty is one account's view of a transfer.
type TransferParty struct {
	AccountNo       string
	HolderName      string
	PreviousBalance decimal.Decimal
	NewBalance      decimal.Decimal
}
