package dto

import (
	"encoding/json"

	"github.com/avalonpay/bankledger/internal/usecase"
)

// CreateAccountRequest represents a request to open an account.
type CreateAccountRequest struct {
	HolderName  string `json:"holder_name"`
	KYCVerified bool   `json:"is_kyc_verified"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		HolderName:  r.HolderName,
		KYCVerified: r.KYCVerified,
	}
}

// DepositRequest represents a deposit request. Amount is a json.Number so an
// absent field reaches the processor as an empty string and is reported as a
// missing amount rather than a decode failure.
type DepositRequest struct {
	AccountNo string      `json:"account_no"`
	Amount    json.Number `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *DepositRequest) ToUseCaseInput() usecase.DepositInput {
	return usecase.DepositInput{
		AccountNo: r.AccountNo,
		Amount:    r.Amount.String(),
	}
}

// WithdrawRequest represents a withdrawal request.
type WithdrawRequest struct {
	AccountNo string      `json:"account_no"`
	Amount    json.Number `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *WithdrawRequest) ToUseCaseInput() usecase.WithdrawInput {
	return usecase.WithdrawInput{
		AccountNo: r.AccountNo,
		Amount:    r.Amount.String(),
	}
}

// TransferRequest represents a transfer request.
type TransferRequest struct {
	SenderAccountNo   string      `json:"sender_account_no"`
	ReceiverAccountNo string      `json:"receiver_account_no"`
	Amount            json.Number `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *TransferRequest) ToUseCaseInput() usecase.TransferInput {
	return usecase.TransferInput{
		SenderAccountNo:   r.SenderAccountNo,
		ReceiverAccountNo: r.ReceiverAccountNo,
		Amount:            r.Amount.String(),
	}
}
