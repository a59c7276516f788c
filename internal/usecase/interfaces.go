package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/avalonpay/bankledger/internal/domain"
)

// LedgerStore is the authoritative table of accounts and their transaction
// histories. Every operation is atomic with respect to the others; reads
// return snapshots.
type LedgerStore interface {
	// CreateAccount registers a new account with a zero balance and an empty
	// transaction log. Fails with domain.ErrDuplicateAccountNo if the number
	// is already taken.
	CreateAccount(ctx context.Context, accountNo, holderName string, kycVerified bool) (*domain.Account, error)
	GetAccount(ctx context.Context, accountNo string) (*domain.Account, error)
	// ListAccounts returns accounts in the order they were created.
	ListAccounts(ctx context.Context) ([]*domain.Account, error)
	// ApplyTransaction credits (deposit) or debits (withdraw) an account and
	// appends the matching log entry in one critical section, so the log
	// always chains and a concurrent reader never sees a moved balance
	// without its entry. The store re-checks that the balance stays
	// non-negative even though processors validate sufficiency first.
	ApplyTransaction(ctx context.Context, accountNo string, txnType domain.TransactionType, amount decimal.Decimal) (*domain.Transaction, error)
	// TransferAtomic moves amount between two accounts and records the paired
	// transfer transactions in a single critical section. No partial mutation
	// is ever visible.
	TransferAtomic(ctx context.Context, senderNo, receiverNo string, amount decimal.Decimal, transactionID string) (*domain.TransferSnapshot, error)
	SystemStats(ctx context.Context) (*domain.SystemStats, error)
}

// AccountNumberGenerator produces candidate account numbers. Uniqueness is
// not guaranteed by construction; callers retry on collision.
type AccountNumberGenerator interface {
	Generate() string
}

// IDGenerator generates unique transaction identifiers.
type IDGenerator interface {
	Generate() string
}

// IdempotencyStore handles idempotency key storage for the HTTP layer.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
