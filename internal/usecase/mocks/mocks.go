package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/avalonpay/bankledger/internal/domain"
)

// MockLedgerStore is a function-field mock of usecase.LedgerStore. Methods
// fall back to a simple map-backed implementation when their Func field is
// unset, so tests only override what they need.
type MockLedgerStore struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
	order    []string

	CreateAccountFunc    func(ctx context.Context, accountNo, holderName string, kycVerified bool) (*domain.Account, error)
	GetAccountFunc       func(ctx context.Context, accountNo string) (*domain.Account, error)
	ListAccountsFunc     func(ctx context.Context) ([]*domain.Account, error)
	ApplyTransactionFunc func(ctx context.Context, accountNo string, txnType domain.TransactionType, amount decimal.Decimal) (*domain.Transaction, error)
	TransferAtomicFunc   func(ctx context.Context, senderNo, receiverNo string, amount decimal.Decimal, transactionID string) (*domain.TransferSnapshot, error)
	SystemStatsFunc      func(ctx context.Context) (*domain.SystemStats, error)
}

func NewMockLedgerStore() *MockLedgerStore {
	return &MockLedgerStore{
		accounts: make(map[string]*domain.Account),
	}
}

// Seed places an account directly into the mock's backing map.
func (m *MockLedgerStore) Seed(account *domain.Account) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.AccountNo] = account
	m.order = append(m.order, account.AccountNo)
}

func (m *MockLedgerStore) CreateAccount(ctx context.Context, accountNo, holderName string, kycVerified bool) (*domain.Account, error) {
	if m.CreateAccountFunc != nil {
		return m.CreateAccountFunc(ctx, accountNo, holderName, kycVerified)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[accountNo]; ok {
		return nil, domain.ErrDuplicateAccountNo
	}
	account := &domain.Account{
		AccountNo:   accountNo,
		HolderName:  holderName,
		Balance:     decimal.Zero,
		KYCVerified: kycVerified,
		CreatedAt:   time.Now().UTC(),
	}
	m.accounts[accountNo] = account
	m.order = append(m.order, accountNo)
	return account.Clone(), nil
}

func (m *MockLedgerStore) GetAccount(ctx context.Context, accountNo string) (*domain.Account, error) {
	if m.GetAccountFunc != nil {
		return m.GetAccountFunc(ctx, accountNo)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if account, ok := m.accounts[accountNo]; ok {
		return account.Clone(), nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockLedgerStore) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	if m.ListAccountsFunc != nil {
		return m.ListAccountsFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	accounts := make([]*domain.Account, 0, len(m.order))
	for _, accountNo := range m.order {
		accounts = append(accounts, m.accounts[accountNo].Clone())
	}
	return accounts, nil
}

func (m *MockLedgerStore) ApplyTransaction(ctx context.Context, accountNo string, txnType domain.TransactionType, amount decimal.Decimal) (*domain.Transaction, error) {
	if m.ApplyTransactionFunc != nil {
		return m.ApplyTransactionFunc(ctx, accountNo, txnType, amount)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	account, ok := m.accounts[accountNo]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	delta := amount
	if txnType == domain.TypeWithdraw {
		delta = amount.Neg()
	}
	newBalance := account.Balance.Add(delta)
	if newBalance.IsNegative() {
		return nil, domain.ErrNegativeBalance
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

func (m *MockLedgerStore) TransferAtomic(ctx context.Context, senderNo, receiverNo string, amount decimal.Decimal, transactionID string) (*domain.TransferSnapshot, error) {
	if m.TransferAtomicFunc != nil {
		return m.TransferAtomicFunc(ctx, senderNo, receiverNo, amount, transactionID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	sender, ok := m.accounts[senderNo]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	receiver, ok := m.accounts[receiverNo]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	if sender.Balance.LessThan(amount) {
		return nil, domain.ErrNegativeBalance
	}
	snapshot := &domain.TransferSnapshot{
		TransactionID: transactionID,
		Sender: domain.TransferParty{
			AccountNo:       senderNo,
			HolderName:      sender.HolderName,
			PreviousBalance: sender.Balance,
			NewBalance:      sender.Balance.Sub(amount),
		},
		Receiver: domain.TransferParty{
			AccountNo:       receiverNo,
			HolderName:      receiver.HolderName,
			PreviousBalance: receiver.Balance,
			NewBalance:      receiver.Balance.Add(amount),
		},
		Amount:    amount,
		Timestamp: time.Now().UTC(),
	}
	sender.Balance = snapshot.Sender.NewBalance
	receiver.Balance = snapshot.Receiver.NewBalance
	return snapshot, nil
}

func (m *MockLedgerStore) SystemStats(ctx context.Context) (*domain.SystemStats, error) {
	if m.SystemStatsFunc != nil {
		return m.SystemStatsFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	total := decimal.Zero
	for _, account := range m.accounts {
		total = total.Add(account.Balance)
	}
	return &domain.SystemStats{
		TotalAccounts: len(m.accounts),
		TotalBalance:  total,
	}, nil
}

// MockNumberGenerator is a mock implementation of AccountNumberGenerator.
type MockNumberGenerator struct {
	GenerateFunc func() string
}

func NewMockNumberGenerator() *MockNumberGenerator {
	return &MockNumberGenerator{}
}

func (m *MockNumberGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	return "ACC-20260901-00001"
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	return "01MOCKULID0000000000000000"
}
