package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/corebank/ledgerengine/internal/domain"
	"github.com/corebank/ledgerengine/internal/infrastructure/logger"
)

func TestRequestContextCarriesActorAndRequestID(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	var actor string
	handler := chimw.RequestID(RequestContext(base)(Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor = domain.ActorFromContext(r.Context())
		logger.FromContext(r.Context()).Info().Msg("inside")
	}))))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/postings", nil)
	req.Header.Set(ActorHeader, "teller-7")
	req.Header.Set(chimw.RequestIDHeader, "req-42")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, "teller-7", actor)
	assert.Equal(t, "req-42", rr.Header().Get(chimw.RequestIDHeader))
	assert.Contains(t, buf.String(), `"actor_id":"teller-7"`)
	assert.Contains(t, buf.String(), `"request_id":"req-42"`)
	assert.Contains(t, buf.String(), `"message":"request completed"`)
}

func TestRequestContextRecordsCallerForAudit(t *testing.T) {
	var meta domain.RequestMeta
	handler := chimw.RequestID(RequestContext(zerolog.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		meta = domain.RequestMetaFromContext(r.Context())
	})))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/postings/DEP-1/reverse", nil)
	req.Header.Set(chimw.RequestIDHeader, "req-77")
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	req.Header.Set("User-Agent", "ledgerctl/1.0")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, domain.RequestMeta{RequestID: "req-77", IPAddress: "203.0.113.9", UserAgent: "ledgerctl/1.0"}, meta)
}

func TestRequestContextDefaultsActor(t *testing.T) {
	var actor string
	handler := RequestContext(zerolog.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor = domain.ActorFromContext(r.Context())
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "system", actor)
}

func TestRecoveryAnswers500(t *testing.T) {
	handler := Recovery(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rr.Body.String())
}
