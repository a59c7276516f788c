package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/avalonpay/bankledger/internal/domain"
	"github.com/avalonpay/bankledger/internal/usecase"
	"github.com/avalonpay/bankledger/internal/usecase/mocks"
)

func TestAccountUseCase_CreateAccount(t *testing.T) {
	tests := []struct {
		name        string
		input       usecase.CreateAccountInput
		wantError   error
		wantHolder  string
		wantKYC     bool
	}{
		{
			name:       "valid holder name",
			input:      usecase.CreateAccountInput{HolderName: "Alice", KYCVerified: true},
			wantHolder: "Alice",
			wantKYC:    true,
		},
		{
			name:       "holder name is trimmed",
			input:      usecase.CreateAccountInput{HolderName: "  Bob Smith  "},
			wantHolder: "Bob Smith",
		},
		{
			name:      "empty holder name",
			input:     usecase.CreateAccountInput{HolderName: ""},
			wantError: domain.ErrHolderNameRequired,
		},
		{
			name:      "two character holder name",
			input:     usecase.CreateAccountInput{HolderName: "Al"},
			wantError: domain.ErrHolderNameTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewMockLedgerStore()
			uc := usecase.NewAccountUseCase(store, mocks.NewMockNumberGenerator())

			account, err := uc.CreateAccount(context.Background(), tt.input)

			if tt.wantError != nil {
				if !errors.Is(err, tt.wantError) {
					t.Fatalf("expected error %v, got %v", tt.wantError, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if account.HolderName != tt.wantHolder {
				t.Fatalf("expected holder %q, got %q", tt.wantHolder, account.HolderName)
			}
			if account.KYCVerified != tt.wantKYC {
				t.Fatalf("expected KYC %v, got %v", tt.wantKYC, account.KYCVerified)
			}
			if !account.Balance.IsZero() {
				t.Fatalf("expected zero starting balance, got %s", account.Balance)
			}
			if len(account.Transactions) != 0 {
				t.Fatalf("expected empty transaction log, got %d entries", len(account.Transactions))
			}
		})
	}
}

func TestAccountUseCase_CreateAccount_RetriesOnCollision(t *testing.T) {
	store := mocks.NewMockLedgerStore()
	store.Seed(&domain.Account{AccountNo: "ACC-20260901-11111", HolderName: "Taken"})

	numbers := []string{"ACC-20260901-11111", "ACC-20260901-22222"}
	calls := 0
	numberGen := mocks.NewMockNumberGenerator()
	numberGen.GenerateFunc = func() string {
		n := numbers[calls]
		calls++
		return n
	}

	uc := usecase.NewAccountUseCase(store, numberGen)

	account, err := uc.CreateAccount(context.Background(), usecase.CreateAccountInput{HolderName: "Alice"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if account.AccountNo != "ACC-20260901-22222" {
		t.Fatalf("expected regenerated account number, got %s", account.AccountNo)
	}
	if calls != 2 {
		t.Fatalf("expected 2 generator calls, got %d", calls)
	}
}

func TestAccountUseCase_CreateAccount_GivesUpAfterRetries(t *testing.T) {
	store := mocks.NewMockLedgerStore()
	store.Seed(&domain.Account{AccountNo: "ACC-20260901-11111", HolderName: "Taken"})

	numberGen := mocks.NewMockNumberGenerator()
	numberGen.GenerateFunc = func() string { return "ACC-20260901-11111" }

	uc := usecase.NewAccountUseCase(store, numberGen)

	_, err := uc.CreateAccount(context.Background(), usecase.CreateAccountInput{HolderName: "Alice"})
	if !errors.Is(err, domain.ErrDuplicateAccountNo) {
		t.Fatalf("expected ErrDuplicateAccountNo after retries, got %v", err)
	}
}

func TestAccountUseCase_GetAccount(t *testing.T) {
	store := mocks.NewMockLedgerStore()
	store.Seed(&domain.Account{AccountNo: "ACC-20260901-00001", HolderName: "Alice"})

	uc := usecase.NewAccountUseCase(store, mocks.NewMockNumberGenerator())

	t.Run("existing account", func(t *testing.T) {
		account, err := uc.GetAccount(context.Background(), "ACC-20260901-00001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if account.HolderName != "Alice" {
			t.Fatalf("expected holder Alice, got %s", account.HolderName)
		}
	})

	t.Run("missing account number", func(t *testing.T) {
		_, err := uc.GetAccount(context.Background(), "")
		if !errors.Is(err, domain.ErrAccountNoRequired) {
			t.Fatalf("expected ErrAccountNoRequired, got %v", err)
		}
	})

	t.Run("unknown account", func(t *testing.T) {
		_, err := uc.GetAccount(context.Background(), "ACC-20260901-99999")
		if !errors.Is(err, domain.ErrAccountNotFound) {
			t.Fatalf("expected ErrAccountNotFound, got %v", err)
		}
	})
}

func TestAccountUseCase_ListAccounts_InsertionOrder(t *testing.T) {
	store := mocks.NewMockLedgerStore()
	uc := usecase.NewAccountUseCase(store, mocks.NewMockNumberGenerator())

	for _, no := range []string{"ACC-20260901-00003", "ACC-20260901-00001", "ACC-20260901-00002"} {
		store.Seed(&domain.Account{AccountNo: no})
	}

	accounts, err := uc.ListAccounts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"ACC-20260901-00003", "ACC-20260901-00001", "ACC-20260901-00002"}
	if len(accounts) != len(want) {
		t.Fatalf("expected %d accounts, got %d", len(want), len(accounts))
	}
	for i, no := range want {
		if accounts[i].AccountNo != no {
			t.Fatalf("expected account %s at position %d, got %s", no, i, accounts[i].AccountNo)
		}
	}
}
