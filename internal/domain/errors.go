package domain

import "errors"

var (
	// Input errors
	ErrHolderNameRequired = errors.New("holder name is required")
	ErrHolderNameTooShort = errors.New("holder name must be at least 3 characters long")
	ErrAccountNoRequired  = errors.New("account number is required")
	ErrAmountRequired     = errors.New("amount is required")
	ErrAmountNotANumber   = errors.New("amount must be a valid number")
	ErrAmountNotPositive  = errors.New("amount must be greater than 0")

	// Domain rule violations
	ErrAccountNotFound     = errors.New("account does not exist")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrKYCNotVerified      = errors.New("sender must be KYC verified to perform transfers")
	ErrSameAccount         = errors.New("cannot transfer to the same account")

	// Invariant guards. These indicate a bug or a lost race, not bad input.
	ErrDuplicateAccountNo = errors.New("account number already exists")
	ErrNegativeBalance    = errors.New("balance would become negative")
)
