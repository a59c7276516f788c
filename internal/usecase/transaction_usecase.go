package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/avalonpay/bankledger/internal/domain"
)

// TransactionUseCase orchestrates deposits, withdrawals and transfers.
// Each operation runs its validators in a fixed order and short-circuits on
// the first failure, so the reported error is deterministic when several
// conditions fail at once. Failed operations never mutate the ledger.
type TransactionUseCase struct {
	store LedgerStore
	idGen IDGenerator
}

// NewTransactionUseCase creates a new TransactionUseCase.
func NewTransactionUseCase(store LedgerStore, idGen IDGenerator) *TransactionUseCase {
	return &TransactionUseCase{
		store: store,
		idGen: idGen,
	}
}

// DepositInput represents input for a deposit. Amount arrives raw from the
// caller and is validated here.
type DepositInput struct {
	AccountNo string
	Amount    string
}

// WithdrawInput represents input for a withdrawal.
type WithdrawInput struct {
	AccountNo string
	Amount    string
}

// TransferInput represents input for a transfer between two accounts.
type TransferInput struct {
	SenderAccountNo   string
	ReceiverAccountNo string
	Amount            string
}

// OperationResult is the snapshot returned by deposits and withdrawals.
type OperationResult struct {
	AccountNo       string
	HolderName      string
	PreviousBalance decimal.Decimal
	Amount          decimal.Decimal
	NewBalance      decimal.Decimal
	Timestamp       time.Time
}

// Deposit credits an account.
// Validation order: account exists, then amount.
func (uc *TransactionUseCase) Deposit(ctx context.Context, input DepositInput) (*OperationResult, error) {
	account, err := uc.getAccount(ctx, input.AccountNo)
	if err != nil {
		return nil, err
	}

	amount, err := domain.ParseAmount(input.Amount)
	if err != nil {
		return nil, err
	}

	txn, err := uc.store.ApplyTransaction(ctx, input.AccountNo, domain.TypeDeposit, amount)
	if err != nil {
		return nil, err
	}

	return &OperationResult{
		AccountNo:       input.AccountNo,
		HolderName:      account.HolderName,
		PreviousBalance: txn.PreviousBalance,
		Amount:          amount,
		NewBalance:      txn.NewBalance,
		Timestamp:       txn.Timestamp,
	}, nil
}

// Withdraw debits an account.
// Validation order: account exists, then amount, then sufficient balance.
func (uc *TransactionUseCase) Withdraw(ctx context.Context, input WithdrawInput) (*OperationResult, error) {
	account, err := uc.getAccount(ctx, input.AccountNo)
	if err != nil {
		return nil, err
	}

	amount, err := domain.ParseAmount(input.Amount)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateSufficientBalance(account, amount); err != nil {
		return nil, err
	}

	txn, err := uc.store.ApplyTransaction(ctx, input.AccountNo, domain.TypeWithdraw, amount)
	if err != nil {
		return nil, err
	}

	return &OperationResult{
		AccountNo:       input.AccountNo,
		HolderName:      account.HolderName,
		PreviousBalance: txn.PreviousBalance,
		Amount:          amount,
		NewBalance:      txn.NewBalance,
		Timestamp:       txn.Timestamp,
	}, nil
}

// Transfer moves money between two accounts as an atomic pair.
// Validation order: sender exists, receiver exists, distinct accounts,
// amount, sender KYC, sender balance.
func (uc *TransactionUseCase) Transfer(ctx context.Context, input TransferInput) (*domain.TransferSnapshot, error) {
	sender, err := uc.getAccount(ctx, input.SenderAccountNo)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, fmt.Errorf("sender %w", domain.ErrAccountNotFound)
		}
		return nil, err
	}

	if _, err := uc.getAccount(ctx, input.ReceiverAccountNo); err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, fmt.Errorf("receiver %w", domain.ErrAccountNotFound)
		}
		return nil, err
	}

	if err := domain.ValidateDifferentAccounts(input.SenderAccountNo, input.ReceiverAccountNo); err != nil {
		return nil, err
	}

	amount, err := domain.ParseAmount(input.Amount)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateKYC(sender); err != nil {
		return nil, err
	}

	if err := domain.ValidateSufficientBalance(sender, amount); err != nil {
		return nil, err
	}

	transactionID := "TXN-" + uc.idGen.Generate()

	return uc.store.TransferAtomic(ctx, input.SenderAccountNo, input.ReceiverAccountNo, amount, transactionID)
}

func (uc *TransactionUseCase) getAccount(ctx context.Context, accountNo string) (*domain.Account, error) {
	if err := domain.ValidateAccountNo(accountNo); err != nil {
		return nil, err
	}
	return uc.store.GetAccount(ctx, accountNo)
}
