// Package testutil wires a complete API instance over the in-memory ledger
// for end-to-end tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	adaptershttp "github.com/avalonpay/bankledger/internal/adapter/http"
	"github.com/avalonpay/bankledger/internal/adapter/http/dto"
	"github.com/avalonpay/bankledger/internal/adapter/http/handler"
	"github.com/avalonpay/bankledger/internal/adapter/repository/memory"
	"github.com/avalonpay/bankledger/internal/infrastructure/metrics"
	"github.com/avalonpay/bankledger/internal/usecase"
)

var (
	metricsOnce   sync.Once
	sharedMetrics *metrics.Metrics
)

// API is a running ledger service backed by the in-memory store.
type API struct {
	Server *httptest.Server
	Store  *memory.LedgerStore

	t *testing.T
}

// Option tweaks the router configuration before the server starts.
type Option func(*adaptershttp.RouterConfig)

// WithIdempotencyStore enables the idempotency middleware.
func WithIdempotencyStore(store usecase.IdempotencyStore) Option {
	return func(cfg *adaptershttp.RouterConfig) {
		cfg.IdempotencyStore = store
	}
}

// NewAPI starts a test server with the full middleware and handler stack.
func NewAPI(t *testing.T, opts ...Option) *API {
	t.Helper()

	metricsOnce.Do(func() {
		sharedMetrics = metrics.New()
	})

	store := memory.NewLedgerStore()
	accountUC := usecase.NewAccountUseCase(store, memory.NewAccountNumberGenerator())
	transactionUC := usecase.NewTransactionUseCase(store, memory.NewULIDGenerator())
	ledgerUC := usecase.NewLedgerUseCase(store)

	cfg := adaptershttp.RouterConfig{
		AccountHandler:     handler.NewAccountHandler(accountUC, sharedMetrics),
		TransactionHandler: handler.NewTransactionHandler(transactionUC, sharedMetrics),
		LedgerHandler:      handler.NewLedgerHandler(ledgerUC),
		HealthHandler:      handler.NewHealthHandler(nil),
		Logger:             zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	server := httptest.NewServer(adaptershttp.NewRouter(cfg))
	t.Cleanup(server.Close)

	return &API{Server: server, Store: store, t: t}
}

// Post sends a JSON payload and returns the status code and raw body.
func (a *API) Post(path string, payload any, headers ...string) (int, []byte) {
	a.t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		a.t.Fatalf("failed to encode payload: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, a.Server.URL+path, bytes.NewReader(body))
	if err != nil {
		a.t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := a.Server.Client().Do(req)
	if err != nil {
		a.t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		a.t.Fatalf("failed to read response: %v", err)
	}

	return resp.StatusCode, raw
}

// Get returns the status code and raw body for a GET request.
func (a *API) Get(path string) (int, []byte) {
	a.t.Helper()

	resp, err := a.Server.Client().Get(a.Server.URL + path)
	if err != nil {
		a.t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		a.t.Fatalf("failed to read response: %v", err)
	}

	return resp.StatusCode, raw
}

// CreateAccount opens an account via the API and fails the test on rejection.
func (a *API) CreateAccount(holderName string, kycVerified bool) dto.AccountResponse {
	a.t.Helper()

	status, body := a.Post("/api/v1/accounts", map[string]any{
		"holder_name":     holderName,
		"is_kyc_verified": kycVerified,
	})
	if status != http.StatusCreated {
		a.t.Fatalf("account creation failed with %d: %s", status, body)
	}

	var resp dto.AccountResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		a.t.Fatalf("failed to decode account: %v", err)
	}

	return resp
}

// Deposit credits an account via the API and fails the test on rejection.
func (a *API) Deposit(accountNo string, amount json.Number) dto.OperationResponse {
	a.t.Helper()

	status, body := a.Post("/api/v1/deposits", map[string]any{
		"account_no": accountNo,
		"amount":     amount,
	})
	if status != http.StatusOK {
		a.t.Fatalf("deposit failed with %d: %s", status, body)
	}

	var resp dto.OperationResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		a.t.Fatalf("failed to decode deposit result: %v", err)
	}

	return resp
}
