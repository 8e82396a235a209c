package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corebank/ledgerengine/internal/adapter/http/handler"
	apimiddleware "github.com/corebank/ledgerengine/internal/adapter/http/middleware"
	"github.com/corebank/ledgerengine/internal/domain"
	"github.com/corebank/ledgerengine/internal/infrastructure/metrics"
	"github.com/corebank/ledgerengine/internal/usecase"
)

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestNewRouter_RateLimiterBlocksExcessRequests(t *testing.T) {
	rl := apimiddleware.NewRateLimiter(1, 1, nil)
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.RateLimiter = rl
	}))

	send := func() int {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.RemoteAddr = "1.2.3.4:1234"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send())
	assert.Equal(t, http.StatusTooManyRequests, send())
}

func TestNewRouter_IdempotencyMiddlewareInvokesStore(t *testing.T) {
	store := &stubIdempotencyStore{}
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.IdempotencyStore = store
	}))

	body := `{"reference":"TRX-001","event_code":"CASH_DEPOSIT","attribute_code":"PRINCIPAL","amount":"100","branch_id":"B1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/postings/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apimiddleware.IdempotencyKeyHeader, "key-123")
	req.Header.Set(apimiddleware.ActorHeader, "teller-1")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, store.checkCalled)
	assert.True(t, store.updated)
}

func TestNewRouter_ServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.Metrics = metrics.New(reg)
		cfg.Gatherer = reg
	}))

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/config/version", nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `ledgerengine_http_requests_total{method="GET",path="/api/v1/config/version",status="200"} 1`)
}

func TestNewRouter_CORSPreflight(t *testing.T) {
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.CORSAllowedOrigins = []string{"https://backoffice.example.com"}
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/postings/", nil)
	req.Header.Set("Origin", "https://backoffice.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "https://backoffice.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig())

	chiRoutes, ok := router.(chi.Routes)
	require.True(t, ok, "router does not implement chi.Routes")

	seen := map[string]bool{}
	require.NoError(t, chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	}))

	expected := []string{
		"GET /health",
		"GET /ready",
		"POST /api/v1/postings/",
		"POST /api/v1/postings/preview",
		"GET /api/v1/postings/{reference}",
		"POST /api/v1/postings/{reference}/reverse",
		"POST /api/v1/branches/{branchID}/days/{date}/close",
		"GET /api/v1/branches/{branchID}/days/{date}/close",
		"GET /api/v1/branches/{branchID}/trial-balance",
		"GET /api/v1/trackers/",
		"GET /api/v1/trackers/{reference}",
		"POST /api/v1/trackers/{reference}/retry",
		"POST /api/v1/config/refresh",
		"GET /api/v1/config/version",
		"GET /api/v1/ledger/consistency",
		"GET /api/v1/audit",
	}

	for _, route := range expected {
		assert.True(t, seen[route], "expected route %s to be registered", route)
	}
}

func newRouterConfig(opts ...func(*RouterConfig)) RouterConfig {
	clock := usecase.SystemClock{}
	cfg := RouterConfig{
		PostingHandler:  handler.NewPostingHandler(stubEngine{}, clock),
		DayCloseHandler: handler.NewDayCloseHandler(stubEngine{}, clock),
		TrackerHandler:  handler.NewTrackerHandler(stubTrackers{}),
		ConfigHandler:   handler.NewConfigHandler(stubConfig{}),
		LedgerHandler:   handler.NewLedgerHandler(usecase.NewLedgerUseCase(stubLedgerRepository{})),
		AuditHandler:    handler.NewAuditHandler(stubAudit{}),
		HealthHandler:   handler.NewHealthHandler(nil),
		Logger:          zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

type stubEngine struct{}

func (stubEngine) ResolveAndPost(ctx context.Context, cmd domain.PostingCommand) (*usecase.PostingResult, *domain.TransactionTracker, error) {
	return &usecase.PostingResult{Reference: cmd.Reference, Balanced: true}, nil, nil
}

func (stubEngine) Preview(ctx context.Context, cmd domain.PostingCommand) ([]domain.AccountingEntry, error) {
	return nil, nil
}

func (stubEngine) Reverse(ctx context.Context, reference string) (*usecase.PostingResult, error) {
	return &usecase.PostingResult{Reference: reference + domain.ReversalSuffix, ReversalOf: reference}, nil
}

func (stubEngine) GetPosting(ctx context.Context, reference string) (*usecase.PostingResult, error) {
	return nil, domain.ErrPostingNotFound
}

func (stubEngine) CloseDay(ctx context.Context, branchID string, date time.Time) (*domain.CloseOfDayData, error) {
	return &domain.CloseOfDayData{BranchID: branchID, BusinessDate: date, WasProcessingSuccessful: true}, nil
}

func (stubEngine) GetDayClose(ctx context.Context, branchID string, date time.Time) (*domain.CloseOfDayData, error) {
	return nil, domain.ErrDayNotClosed
}

func (stubEngine) GetTrialBalance(ctx context.Context, branchID string, asOf time.Time) (*domain.TrialBalanceFile, error) {
	return &domain.TrialBalanceFile{}, nil
}

type stubTrackers struct{}

func (stubTrackers) Get(ctx context.Context, reference string) (*domain.TransactionTracker, error) {
	return nil, domain.ErrTrackerNotFound
}

func (stubTrackers) List(ctx context.Context, status domain.TrackerStatus, limit, offset int) ([]*domain.TransactionTracker, error) {
	return nil, nil
}

func (stubTrackers) RetryFailed(ctx context.Context, reference string) (*usecase.PostingResult, *domain.TransactionTracker, error) {
	return nil, nil, domain.ErrTrackerNotFound
}

type stubConfig struct{}

func (stubConfig) Refresh(ctx context.Context) (usecase.SnapshotStats, error) {
	return usecase.SnapshotStats{Version: 1}, nil
}

func (stubConfig) Current() (usecase.SnapshotStats, error) {
	return usecase.SnapshotStats{Version: 1}, nil
}

type stubAudit struct{}

func (stubAudit) List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error) {
	return nil, nil
}

type stubLedgerRepository struct{}

func (stubLedgerRepository) CheckConsistency(ctx context.Context) (decimal.Decimal, decimal.Decimal, int64, error) {
	return decimal.Zero, decimal.Zero, 0, nil
}

type stubIdempotencyStore struct {
	checkCalled bool
	updated     bool
}

func (s *stubIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	s.checkCalled = true
	return false, nil, nil
}

func (s *stubIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	s.updated = true
	return nil
}

func (s *stubIdempotencyStore) Release(ctx context.Context, key string) error {
	return nil
}
