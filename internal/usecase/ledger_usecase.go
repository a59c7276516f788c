package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/avalonpay/bankledger/internal/domain"
)

// ErrInconsistentLedger is returned when stored balances do not match the
// balances recomputed from transaction history.
var ErrInconsistentLedger = errors.New("ledger is inconsistent: balances do not match transaction history")

// LedgerUseCase handles ledger-wide operations.
type LedgerUseCase struct {
	store LedgerStore
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(store LedgerStore) *LedgerUseCase {
	return &LedgerUseCase{store: store}
}

// SystemStats reports the account count and the total balance held across all
// accounts.
func (uc *LedgerUseCase) SystemStats(ctx context.Context) (*domain.SystemStats, error) {
	return uc.store.SystemStats(ctx)
}

// CheckConsistency replays every account's transaction log and verifies that
// the replayed balance matches the stored one, and that the sum of stored
// balances matches SystemStats. Total balance must equal net deposits minus
// withdrawals across all history; transfers cancel out inside the ledger.
func (uc *LedgerUseCase) CheckConsistency(ctx context.Context) (bool, error) {
	accounts, err := uc.store.ListAccounts(ctx)
	if err != nil {
		return false, err
	}

	total := decimal.Zero
	for _, account := range accounts {
		replayed, err := replayBalance(account)
		if err != nil {
			return false, err
		}

		if !replayed.Equal(account.Balance) {
			return false, fmt.Errorf("%w: account %s holds %s, history yields %s",
				ErrInconsistentLedger, account.AccountNo, account.Balance, replayed)
		}

		total = total.Add(account.Balance)
	}

	stats, err := uc.store.SystemStats(ctx)
	if err != nil {
		return false, err
	}

	if !total.Equal(stats.TotalBalance) {
		return false, fmt.Errorf("%w: accounts sum to %s, stats report %s",
			ErrInconsistentLedger, total, stats.TotalBalance)
	}

	return true, nil
}

func replayBalance(account *domain.Account) (decimal.Decimal, error) {
	balance := decimal.Zero
	for _, txn := range account.Transactions {
		switch txn.Type {
		case domain.TypeDeposit:
			balance = balance.Add(txn.Amount)
		case domain.TypeWithdraw:
			balance = balance.Sub(txn.Amount)
		case domain.TypeTransfer:
			if txn.FromAccount == account.AccountNo {
				balance = balance.Sub(txn.Amount)
			} else {
				balance = balance.Add(txn.Amount)
			}
		default:
			return decimal.Zero, fmt.Errorf("%w: account %s has unknown transaction type %q",
				ErrInconsistentLedger, account.AccountNo, txn.Type)
		}
	}
	return balance, nil
}
