package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/avalonpay/bankledger/internal/adapter/http/handler"
	apimiddleware "github.com/avalonpay/bankledger/internal/adapter/http/middleware"
	"github.com/avalonpay/bankledger/internal/domain"
	"github.com/avalonpay/bankledger/internal/infrastructure/metrics"
	"github.com/avalonpay/bankledger/internal/usecase"
)

var routerMetrics = metrics.New()

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_MetricsEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /metrics to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_RateLimiterBlocksExcessRequests(t *testing.T) {
	rl := apimiddleware.NewRateLimiter(1, 1)
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.RateLimiter = rl
	}))

	req1 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req1.RemoteAddr = "1.2.3.4:1234"
	rec1 := httptest.NewRecorder()
	router.ServeHTTP(rec1, req1)
	if rec1.Code != http.StatusOK {
		t.Fatalf("expected first request to succeed, got %d", rec1.Code)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req2.RemoteAddr = "1.2.3.4:1234"
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req2)
	if rec2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be throttled, got %d", rec2.Code)
	}
}

func TestNewRouter_IdempotencyMiddlewareInvokesStore(t *testing.T) {
	store := &stubIdempotencyStore{}
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.IdempotencyStore = store
	}))

	body := `{"holder_name":"Alice Smith","is_kyc_verified":true}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apimiddleware.IdempotencyKeyHeader, "key-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if !store.checkCalled {
		t.Fatalf("expected idempotency store to be used")
	}
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig())

	chiRoutes, ok := router.(chi.Router)
	if !ok {
		t.Fatal("router does not implement chi.Routes")
	}

	seen := map[string]bool{}
	if err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	expected := []string{
		"GET /health",
		"GET /ready",
		"GET /metrics",
		"POST /api/v1/accounts/",
		"GET /api/v1/accounts/",
		"GET /api/v1/accounts/{accountNo}",
		"GET /api/v1/accounts/{accountNo}/transactions",
		"POST /api/v1/deposits",
		"POST /api/v1/withdrawals",
		"POST /api/v1/transfers",
		"GET /api/v1/stats",
		"GET /api/v1/ledger/consistency",
	}

	for _, route := range expected {
		if !seen[route] {
			t.Fatalf("expected route %s to be registered", route)
		}
	}
}

func newRouterConfig(opts ...func(*RouterConfig)) RouterConfig {
	cfg := RouterConfig{
		AccountHandler:     handler.NewAccountHandler(&stubAccountService{}, routerMetrics),
		TransactionHandler: handler.NewTransactionHandler(&stubTransactionService{}, routerMetrics),
		LedgerHandler:      handler.NewLedgerHandler(&stubLedgerService{}),
		HealthHandler:      handler.NewHealthHandler(nil),
		Logger:             zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

type stubAccountService struct{}

func (stubAccountService) CreateAccount(ctx context.Context, input usecase.CreateAccountInput) (*domain.Account, error) {
	return &domain.Account{AccountNo: "ACC-20260901-00001", HolderName: input.HolderName}, nil
}

func (stubAccountService) GetAccount(ctx context.Context, accountNo string) (*domain.Account, error) {
	return &domain.Account{AccountNo: accountNo}, nil
}

func (stubAccountService) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	return []*domain.Account{}, nil
}

func (stubAccountService) ListTransactions(ctx context.Context, accountNo string) ([]domain.Transaction, error) {
	return []domain.Transaction{}, nil
}

type stubTransactionService struct{}

func (stubTransactionService) Deposit(ctx context.Context, input usecase.DepositInput) (*usecase.OperationResult, error) {
	return &usecase.OperationResult{AccountNo: input.AccountNo}, nil
}

func (stubTransactionService) Withdraw(ctx context.Context, input usecase.WithdrawInput) (*usecase.OperationResult, error) {
	return &usecase.OperationResult{AccountNo: input.AccountNo}, nil
}

func (stubTransactionService) Transfer(ctx context.Context, input usecase.TransferInput) (*domain.TransferSnapshot, error) {
	return &domain.TransferSnapshot{TransactionID: "TXN-TEST"}, nil
}

type stubLedgerService struct{}

func (stubLedgerService) SystemStats(ctx context.Context) (*domain.SystemStats, error) {
	return &domain.SystemStats{TotalBalance: decimal.Zero}, nil
}

func (stubLedgerService) CheckConsistency(ctx context.Context) (bool, error) {
	return true, nil
}

type stubIdempotencyStore struct {
	checkCalled bool
}

func (s *stubIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	s.checkCalled = true
	return false, nil, nil
}

func (s *stubIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return nil
}
