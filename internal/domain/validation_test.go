package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateHolderName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantName  string
		wantError error
	}{
		{name: "valid name", input: "Alice", wantName: "Alice"},
		{name: "valid name with padding", input: "  John Doe  ", wantName: "John Doe"},
		{name: "empty name", input: "", wantError: ErrHolderNameRequired},
		{name: "two characters", input: "Al", wantError: ErrHolderNameTooShort},
		{name: "whitespace only", input: "   ", wantError: ErrHolderNameTooShort},
		{name: "padded below minimum", input: " Al ", wantError: ErrHolderNameTooShort},
		{name: "exactly three characters", input: "Bob", wantName: "Bob"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateHolderName(tt.input)

			if tt.wantError != nil {
				if !errors.Is(err, tt.wantError) {
					t.Fatalf("expected error %v, got %v", tt.wantError, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.wantName {
				t.Fatalf("expected trimmed name %q, got %q", tt.wantName, got)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      string
		wantError error
	}{
		{name: "integer", input: "100", want: "100"},
		{name: "decimal", input: "0.01", want: "0.01"},
		{name: "missing", input: "", wantError: ErrAmountRequired},
		{name: "not a number", input: "ten", wantError: ErrAmountNotANumber},
		{name: "garbage suffix", input: "10abc", wantError: ErrAmountNotANumber},
		{name: "zero", input: "0", wantError: ErrAmountNotPositive},
		{name: "negative", input: "-5", wantError: ErrAmountNotPositive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := ParseAmount(tt.input)

			if tt.wantError != nil {
				if !errors.Is(err, tt.wantError) {
					t.Fatalf("expected error %v, got %v", tt.wantError, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if amount.String() != tt.want {
				t.Fatalf("expected amount %s, got %s", tt.want, amount)
			}
		})
	}
}

func TestValidateSufficientBalance(t *testing.T) {
	account := &Account{AccountNo: "ACC-20260901-00001", Balance: decimal.NewFromInt(50)}

	if err := ValidateSufficientBalance(account, decimal.NewFromInt(50)); err != nil {
		t.Fatalf("exact balance should be sufficient, got %v", err)
	}

	err := ValidateSufficientBalance(account, decimal.NewFromInt(1000))
	if !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}

	// The message must name both the available and the required amounts.
	if !strings.Contains(err.Error(), "available 50") || !strings.Contains(err.Error(), "required 1000") {
		t.Fatalf("expected amounts in error message, got %q", err.Error())
	}
}

func TestValidateKYC(t *testing.T) {
	verified := &Account{KYCVerified: true}
	if err := ValidateKYC(verified); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	unverified := &Account{KYCVerified: false}
	if err := ValidateKYC(unverified); !errors.Is(err, ErrKYCNotVerified) {
		t.Fatalf("expected ErrKYCNotVerified, got %v", err)
	}
}

func TestValidateDifferentAccounts(t *testing.T) {
	if err := ValidateDifferentAccounts("ACC-1", "ACC-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := ValidateDifferentAccounts("ACC-1", "ACC-1"); !errors.Is(err, ErrSameAccount) {
		t.Fatalf("expected ErrSameAccount, got %v", err)
	}
}

func TestValidateAccountNo(t *testing.T) {
	if err := ValidateAccountNo("ACC-20260901-00001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := ValidateAccountNo(""); !errors.Is(err, ErrAccountNoRequired) {
		t.Fatalf("expected ErrAccountNoRequired, got %v", err)
	}
}
