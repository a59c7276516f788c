package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/avalonpay/bankledger/internal/domain"
)

// LedgerStore implements usecase.LedgerStore with an in-memory table guarded
// by a single store-wide mutex. Operations are short and never block on I/O,
// so one lock is enough to serialize the per-account history and to make the
// transfer's dual mutation indivisible without any lock-ordering concerns.
// State is volatile and lost on restart.
type LedgerStore struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
	order    []string
}

// NewLedgerStore creates an empty ledger store.
func NewLedgerStore() *LedgerStore {
	return &LedgerStore{
		accounts: make(map[string]*domain.Account),
	}
}

// CreateAccount registers a new account with zero balance and an empty log.
func (s *LedgerStore) CreateAccount(ctx context.Context, accountNo, holderName string, kycVerified bool) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[accountNo]; exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateAccountNo, accountNo)
	}

	account := &domain.Account{
		AccountNo:    accountNo,
		HolderName:   holderName,
		Balance:      decimal.Zero,
		KYCVerified:  kycVerified,
		CreatedAt:    time.Now().UTC(),
		Transactions: []domain.Transaction{},
	}

	s.accounts[accountNo] = account
	s.order = append(s.order, accountNo)

	return account.Clone(), nil
}

// GetAccount returns a snapshot of an account.
func (s *LedgerStore) GetAccount(ctx context.Context, accountNo string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, exists := s.accounts[accountNo]
	if !exists {
		return nil, domain.ErrAccountNotFound
	}

	return account.Clone(), nil
}

// ListAccounts returns snapshots of all accounts in creation order.
func (s *LedgerStore) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make([]*domain.Account, 0, len(s.order))
	for _, accountNo := range s.order {
		accounts = append(accounts, s.accounts[accountNo].Clone())
	}

	return accounts, nil
}

// ApplyTransaction credits (deposit) or debits (withdraw) an account and
// appends the matching log entry under one critical section, so each entry's
// previous balance is the prior entry's new balance and timestamps never go
// backwards. The non-negativity re-check backs up the processors'
// sufficiency validation; tripping it means a caller skipped validation.
func (s *LedgerStore) ApplyTransaction(ctx context.Context, accountNo string, txnType domain.TransactionType, amount decimal.Decimal) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, exists := s.accounts[accountNo]
	if !exists {
		return nil, domain.ErrAccountNotFound
	}

	delta := amount
	if txnType == domain.TypeWithdraw {
		delta = amount.Neg()
	}

	newBalance := account.Balance.Add(delta)
	if newBalance.IsNegative() {
		return nil, fmt.Errorf("%w: balance %s, amount %s", domain.ErrNegativeBalance, account.Balance, amount)
	}

	txn := domain.Transaction{
		Type:            txnType,
		Amount:          amount,
		PreviousBalance: account.Balance,
		NewBalance:      newBalance,
		Status:          domain.StatusSuccess,
		Timestamp:       time.Now().UTC(),
	}

	account.Balance = newBalance
	account.Transactions = append(account.Transactions, txn)

	return &txn, nil
}

// TransferAtomic performs both balance changes and both transaction appends
// under one critical section. A concurrent reader never observes only one
// side updated, and any failure leaves the ledger untouched.
func (s *LedgerStore) TransferAtomic(ctx context.Context, senderNo, receiverNo string, amount decimal.Decimal, transactionID string) (*domain.TransferSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sender, exists := s.accounts[senderNo]
	if !exists {
		return nil, fmt.Errorf("sender %w", domain.ErrAccountNotFound)
	}

	receiver, exists := s.accounts[receiverNo]
	if !exists {
		return nil, fmt.Errorf("receiver %w", domain.ErrAccountNotFound)
	}

	senderNewBalance := sender.Balance.Sub(amount)
	if senderNewBalance.IsNegative() {
		return nil, fmt.Errorf("%w: balance %s, amount %s", domain.ErrNegativeBalance, sender.Balance, amount)
	}
	receiverNewBalance := receiver.Balance.Add(amount)

	now := time.Now().UTC()
	snapshot := &domain.TransferSnapshot{
		TransactionID: transactionID,
		Sender: domain.TransferParty{
			AccountNo:       senderNo,
			HolderName:      sender.HolderName,
			PreviousBalance: sender.Balance,
			NewBalance:      senderNewBalance,
		},
		Receiver: domain.TransferParty{
			AccountNo:       receiverNo,
			HolderName:      receiver.HolderName,
			PreviousBalance: receiver.Balance,
			NewBalance:      receiverNewBalance,
		},
		Amount:    amount,
		Timestamp: now,
	}

	// Both records reference the same counterparties, amount and timestamp.
	sender.Transactions = append(sender.Transactions, domain.Transaction{
		Type:            domain.TypeTransfer,
		Amount:          amount,
		PreviousBalance: sender.Balance,
		NewBalance:      senderNewBalance,
		FromAccount:     senderNo,
		ToAccount:       receiverNo,
		Status:          domain.StatusSuccess,
		Timestamp:       now,
	})
	receiver.Transactions = append(receiver.Transactions, domain.Transaction{
		Type:            domain.TypeTransfer,
		Amount:          amount,
		PreviousBalance: receiver.Balance,
		NewBalance:      receiverNewBalance,
		FromAccount:     senderNo,
		ToAccount:       receiverNo,
		Status:          domain.StatusSuccess,
		Timestamp:       now,
	})

	sender.Balance = senderNewBalance
	receiver.Balance = receiverNewBalance

	return snapshot, nil
}

// SystemStats reports the account count and the sum of all balances.
func (s *LedgerStore) SystemStats(ctx context.Context) (*domain.SystemStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero
	for _, account := range s.accounts {
		total = total.Add(account.Balance)
	}

	return &domain.SystemStats{
		TotalAccounts: len(s.accounts),
		TotalBalance:  total,
	}, nil
}
