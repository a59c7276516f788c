package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/avalonpay/bankledger/internal/domain"
)

// Collision retry settings. Collisions on the 5-digit random segment are
// rare, so a handful of quick regeneration attempts is enough.
const (
	createAccountMaxRetries      = 5
	createAccountInitialInterval = 10 * time.Millisecond
	createAccountMaxInterval     = 100 * time.Millisecond
)

// AccountUseCase handles account lifecycle operations.
type AccountUseCase struct {
	store     LedgerStore
	numberGen AccountNumberGenerator
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(store LedgerStore, numberGen AccountNumberGenerator) *AccountUseCase {
	return &AccountUseCase{
		store:     store,
		numberGen: numberGen,
	}
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	HolderName  string
	KYCVerified bool
}

// CreateAccount validates the holder name, generates an account number and
// registers the account. The generator's numbers are random draws, so a
// duplicate from the store triggers regeneration with backoff; exhausting the
// retries surfaces domain.ErrDuplicateAccountNo.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	holderName, err := domain.ValidateHolderName(input.HolderName)
	if err != nil {
		return nil, err
	}

	var account *domain.Account
	create := func() error {
		accountNo := uc.numberGen.Generate()

		created, err := uc.store.CreateAccount(ctx, accountNo, holderName, input.KYCVerified)
		if errors.Is(err, domain.ErrDuplicateAccountNo) {
			return err
		}
		if err != nil {
			return backoff.Permanent(err)
		}

		account = created
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = createAccountInitialInterval
	b.MaxInterval = createAccountMaxInterval

	policy := backoff.WithContext(backoff.WithMaxRetries(b, createAccountMaxRetries), ctx)
	if err := backoff.Retry(create, policy); err != nil {
		return nil, err
	}

	return account, nil
}

// GetAccount retrieves an account by number.
func (uc *AccountUseCase) GetAccount(ctx context.Context, accountNo string) (*domain.Account, error) {
	if err := domain.ValidateAccountNo(accountNo); err != nil {
		return nil, err
	}
	return uc.store.GetAccount(ctx, accountNo)
}

// ListAccounts lists all accounts in creation order.
func (uc *AccountUseCase) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	return uc.store.ListAccounts(ctx)
}

// ListTransactions returns an account's transaction history, oldest first.
func (uc *AccountUseCase) ListTransactions(ctx context.Context, accountNo string) ([]domain.Transaction, error) {
	account, err := uc.GetAccount(ctx, accountNo)
	if err != nil {
		return nil, err
	}
	return account.Transactions, nil
}
