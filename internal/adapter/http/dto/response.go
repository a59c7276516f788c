package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/avalonpay/bankledger/internal/domain"
	"github.com/avalonpay/bankledger/internal/usecase"
)

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	AccountNo   string          `json:"account_no"`
	HolderName  string          `json:"holder_name"`
	Balance     decimal.Decimal `json:"balance"`
	KYCVerified bool            `json:"is_kyc_verified"`
	CreatedAt   time.Time       `json:"created_at"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		AccountNo:   a.AccountNo,
		HolderName:  a.HolderName,
		Balance:     a.Balance,
		KYCVerified: a.KYCVerified,
		CreatedAt:   a.CreatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// ListAccountsResponse wraps the account listing.
type ListAccountsResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
	Total    int                `json:"total"`
}

// TransactionResponse represents one entry of an account's history.
type TransactionResponse struct {
	Type            string          `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	PreviousBalance decimal.Decimal `json:"previous_balance"`
	NewBalance      decimal.Decimal `json:"new_balance"`
	FromAccount     string          `json:"from_account,omitempty"`
	ToAccount       string          `json:"to_account,omitempty"`
	Status          string          `json:"status"`
	Timestamp       time.Time       `json:"timestamp"`
}

// TransactionsFromDomain converts a transaction log to responses.
func TransactionsFromDomain(txns []domain.Transaction) []TransactionResponse {
	result := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		result[i] = TransactionResponse{
			Type:            string(txn.Type),
			Amount:          txn.Amount,
			PreviousBalance: txn.PreviousBalance,
			NewBalance:      txn.NewBalance,
			FromAccount:     txn.FromAccount,
			ToAccount:       txn.ToAccount,
			Status:          string(txn.Status),
			Timestamp:       txn.Timestamp,
		}
	}
	return result
}

// OperationResponse is the snapshot returned for deposits and withdrawals.
type OperationResponse struct {
	AccountNo       string          `json:"account_no"`
	HolderName      string          `json:"holder_name"`
	PreviousBalance decimal.Decimal `json:"previous_balance"`
	Amount          decimal.Decimal `json:"amount"`
	NewBalance      decimal.Decimal `json:"new_balance"`
	Timestamp       time.Time       `json:"timestamp"`
}

// OperationFromResult converts a use case snapshot to a response.
func OperationFromResult(r *usecase.OperationResult) *OperationResponse {
	return &OperationResponse{
		AccountNo:       r.AccountNo,
		HolderName:      r.HolderName,
		PreviousBalance: r.PreviousBalance,
		Amount:          r.Amount,
		NewBalance:      r.NewBalance,
		Timestamp:       r.Timestamp,
	}
}

// TransferPartyResponse is one account's view of a transfer.
type TransferPartyResponse struct {
	AccountNo       string          `json:"account_no"`
	HolderName      string          `json:"holder_name"`
	PreviousBalance decimal.Decimal `json:"previous_balance"`
	NewBalance      decimal.Decimal `json:"new_balance"`
}

// TransferResponse represents a completed transfer.
type TransferResponse struct {
	TransactionID   string                `json:"transaction_id"`
	SenderAccount   TransferPartyResponse `json:"sender_account"`
	ReceiverAccount TransferPartyResponse `json:"receiver_account"`
	TransferAmount  decimal.Decimal       `json:"transfer_amount"`
	Timestamp       time.Time             `json:"timestamp"`
}

// TransferFromSnapshot converts a domain transfer snapshot to a response.
func TransferFromSnapshot(s *domain.TransferSnapshot) *TransferResponse {
	return &TransferResponse{
		TransactionID:   s.TransactionID,
		SenderAccount:   transferParty(s.Sender),
		ReceiverAccount: transferParty(s.Receiver),
		TransferAmount:  s.Amount,
		Timestamp:       s.Timestamp,
	}
}

func transferParty(p domain.TransferParty) TransferPartyResponse {
	return TransferPartyResponse{
		AccountNo:       p.AccountNo,
		HolderName:      p.HolderName,
		PreviousBalance: p.PreviousBalance,
		NewBalance:      p.NewBalance,
	}
}

// StatsResponse represents ledger-wide statistics.
type StatsResponse struct {
	TotalAccounts      int             `json:"total_accounts"`
	TotalSystemBalance decimal.Decimal `json:"total_system_balance"`
}

// StatsFromDomain converts system stats to a response.
func StatsFromDomain(s *domain.SystemStats) *StatsResponse {
	return &StatsResponse{
		TotalAccounts:      s.TotalAccounts,
		TotalSystemBalance: s.TotalBalance,
	}
}

// ConsistencyResponse reports the outcome of a ledger consistency check.
type ConsistencyResponse struct {
	Consistent bool   `json:"consistent"`
	Detail     string `json:"detail,omitempty"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
