package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MinHolderNameLength is measured after trimming surrounding whitespace.
const MinHolderNameLength = 3

// ValidateHolderName checks an account holder name and returns the trimmed
// form that should be stored.
func ValidateHolderName(name string) (string, error) {
	if name == "" {
		return "", ErrHolderNameRequired
	}

	trimmed := strings.TrimSpace(name)
	if len(trimmed) < MinHolderNameLength {
		return "", ErrHolderNameTooShort
	}

	return trimmed, nil
}

// ValidateAccountNo checks that an account number was supplied. Existence is
// the ledger store's concern.
func ValidateAccountNo(accountNo string) error {
	if accountNo == "" {
		return ErrAccountNoRequired
	}
	return nil
}

// ParseAmount parses a raw amount into a decimal, rejecting missing,
// unparseable and non-positive values in that order.
func ParseAmount(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, ErrAmountRequired
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrAmountNotANumber, raw)
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, ErrAmountNotPositive
	}

	return amount, nil
}

// ValidateSufficientBalance checks that the account can cover amount.
func ValidateSufficientBalance(account *Account, amount decimal.Decimal) error {
	if account.Balance.LessThan(amount) {
		return fmt.Errorf("%w: available %s, required %s", ErrInsufficientBalance, account.Balance, amount)
	}
	return nil
}

// ValidateKYC checks that the account may act as a transfer sender.
func ValidateKYC(account *Account) error {
	if !account.KYCVerified {
		return ErrKYCNotVerified
	}
	return nil
}

// ValidateDifferentAccounts rejects transfers where both sides are the same
// account number.
func ValidateDifferentAccounts(senderNo, receiverNo string) error {
	if senderNo == receiverNo {
		return ErrSameAccount
	}
	return nil
}
