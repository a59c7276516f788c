package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avalonpay/bankledger/internal/adapter/http/dto"
	"github.com/avalonpay/bankledger/internal/domain"
	"github.com/avalonpay/bankledger/internal/infrastructure/metrics"
	"github.com/avalonpay/bankledger/internal/usecase"
)

// TransactionService defines the behavior needed by TransactionHandler.
type TransactionService interface {
	Deposit(ctx context.Context, input usecase.DepositInput) (*usecase.OperationResult, error)
	Withdraw(ctx context.Context, input usecase.WithdrawInput) (*usecase.OperationResult, error)
	Transfer(ctx context.Context, input usecase.TransferInput) (*domain.TransferSnapshot, error)
}

// TransactionHandler handles money movement HTTP requests.
type TransactionHandler struct {
	transactionUC TransactionService
	metrics       *metrics.Metrics
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionUC TransactionService, m *metrics.Metrics) *TransactionHandler {
	return &TransactionHandler{transactionUC: transactionUC, metrics: m}
}

// Deposit credits an account.
func (h *TransactionHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	var req dto.DepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.transactionUC.Deposit(r.Context(), req.ToUseCaseInput())
	if err != nil {
		h.metrics.OperationErrors.WithLabelValues("deposit").Inc()
		writeError(w, mapDomainError(err), "deposit failed", err.Error())

		return
	}

	h.metrics.DepositsTotal.Inc()
	writeJSON(w, http.StatusOK, dto.OperationFromResult(result))
}

// Withdraw debits an account.
func (h *TransactionHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req dto.WithdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.transactionUC.Withdraw(r.Context(), req.ToUseCaseInput())
	if err != nil {
		h.metrics.OperationErrors.WithLabelValues("withdraw").Inc()
		writeError(w, mapDomainError(err), "withdrawal failed", err.Error())

		return
	}

	h.metrics.WithdrawalsTotal.Inc()
	writeJSON(w, http.StatusOK, dto.OperationFromResult(result))
}

// Transfer moves money between two accounts.
func (h *TransactionHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req dto.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	snapshot, err := h.transactionUC.Transfer(r.Context(), req.ToUseCaseInput())
	if err != nil {
		h.metrics.OperationErrors.WithLabelValues("transfer").Inc()
		writeError(w, mapDomainError(err), "transfer failed", err.Error())

		return
	}

	h.metrics.TransfersTotal.Inc()

	amount, _ := snapshot.Amount.Float64()
	h.metrics.TransferAmount.Observe(amount)

	writeJSON(w, http.StatusOK, dto.TransferFromSnapshot(snapshot))
}
