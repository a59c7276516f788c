package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avalonpay/bankledger/internal/adapter/http/dto"
	"github.com/avalonpay/bankledger/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes. Input errors and
// business-rule rejections are the caller's problem; invariant guards mean
// the service itself is in trouble.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrHolderNameRequired),
		errors.Is(err, domain.ErrHolderNameTooShort),
		errors.Is(err, domain.ErrAccountNoRequired),
		errors.Is(err, domain.ErrAmountRequired),
		errors.Is(err, domain.ErrAmountNotANumber),
		errors.Is(err, domain.ErrAmountNotPositive),
		errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrKYCNotVerified),
		errors.Is(err, domain.ErrSameAccount):
		return http.StatusBadRequest
	default:
		// Includes ErrDuplicateAccountNo and ErrNegativeBalance.
		return http.StatusInternalServerError
	}
}
