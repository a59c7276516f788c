package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/avalonpay/bankledger/internal/adapter/http/dto"
	"github.com/avalonpay/bankledger/internal/domain"
	"github.com/avalonpay/bankledger/internal/usecase"
)

// LedgerService defines the behavior needed by LedgerHandler.
type LedgerService interface {
	SystemStats(ctx context.Context) (*domain.SystemStats, error)
	CheckConsistency(ctx context.Context) (bool, error)
}

// LedgerHandler serves ledger-wide queries: aggregate stats and the
// consistency check.
type LedgerHandler struct {
	ledgerUC LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerUC LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerUC: ledgerUC}
}

// Stats returns the account count and total system balance.
func (h *LedgerHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.ledgerUC.SystemStats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute stats", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.StatsFromDomain(stats))
}

// CheckConsistency replays the full transaction history and reports whether
// stored balances agree with it.
func (h *LedgerHandler) CheckConsistency(w http.ResponseWriter, r *http.Request) {
	consistent, err := h.ledgerUC.CheckConsistency(r.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrInconsistentLedger) {
			writeJSON(w, http.StatusConflict, dto.ConsistencyResponse{
				Consistent: false,
				Detail:     err.Error(),
			})

			return
		}

		writeError(w, http.StatusInternalServerError, "consistency check failed", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.ConsistencyResponse{Consistent: consistent})
}
