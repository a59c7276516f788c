package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avalonpay/bankledger/internal/adapter/http/dto"
	"github.com/avalonpay/bankledger/internal/domain"
	"github.com/avalonpay/bankledger/internal/infrastructure/metrics"
	"github.com/avalonpay/bankledger/internal/usecase"
)

// AccountService defines the behavior needed by AccountHandler.
type AccountService interface {
	CreateAccount(ctx context.Context, input usecase.CreateAccountInput) (*domain.Account, error)
	GetAccount(ctx context.Context, accountNo string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]*domain.Account, error)
	ListTransactions(ctx context.Context, accountNo string) ([]domain.Transaction, error)
}

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	accountUC AccountService
	metrics   *metrics.Metrics
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountUC AccountService, m *metrics.Metrics) *AccountHandler {
	return &AccountHandler{accountUC: accountUC, metrics: m}
}

// Create opens a new account.
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	account, err := h.accountUC.CreateAccount(r.Context(), req.ToUseCaseInput())
	if err != nil {
		h.metrics.OperationErrors.WithLabelValues("create_account").Inc()
		writeError(w, mapDomainError(err), "failed to create account", err.Error())

		return
	}

	h.metrics.AccountsCreated.Inc()
	writeJSON(w, http.StatusCreated, dto.AccountFromDomain(account))
}

// Get retrieves an account by number.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	accountNo := chi.URLParam(r, "accountNo")
	if accountNo == "" {
		writeError(w, http.StatusBadRequest, "missing account number", "")
		return
	}

	account, err := h.accountUC.GetAccount(r.Context(), accountNo)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}

// List returns all accounts in creation order.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accountUC.ListAccounts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list accounts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListAccountsResponse{
		Accounts: dto.AccountsFromDomain(accounts),
		Total:    len(accounts),
	})
}

// ListTransactions returns an account's transaction history.
func (h *AccountHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	accountNo := chi.URLParam(r, "accountNo")
	if accountNo == "" {
		writeError(w, http.StatusBadRequest, "missing account number", "")
		return
	}

	txns, err := h.accountUC.ListTransactions(r.Context(), accountNo)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list transactions", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionsFromDomain(txns))
}
