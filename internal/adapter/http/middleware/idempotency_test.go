package middleware

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore mimics the Redis store's SETNX semantics.
type memoryStore struct {
	mu       sync.Mutex
	values   map[string][]byte
	checkErr error
	released []string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{values: make(map[string][]byte)}
}

func (s *memoryStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.checkErr != nil {
		return false, nil, s.checkErr
	}
	if v, ok := s.values[key]; ok {
		return true, v, nil
	}
	s.values[key] = response
	return false, nil, nil
}

func (s *memoryStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = response
	return nil
}

func (s *memoryStore) Release(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	s.released = append(s.released, key)
	return nil
}

func keyedPost(path, key string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(`{}`))
	req.Header.Set(IdempotencyKeyHeader, key)
	return req
}

func TestIdempotencyMiddleware_ReplaysSuccess(t *testing.T) {
	store := newMemoryStore()
	calls := 0
	handler := NewIdempotencyMiddleware(store).Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"reference":"TRX-001"}`))
	}))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, keyedPost("/api/v1/postings", "k1"))
	require.Equal(t, http.StatusCreated, first.Code)

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, keyedPost("/api/v1/postings", "k1"))

	assert.Equal(t, 1, calls)
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, "true", second.Header().Get(ReplayHeader))
	assert.JSONEq(t, `{"reference":"TRX-001"}`, second.Body.String())
}

func TestIdempotencyMiddleware_KeyScopedToPath(t *testing.T) {
	store := newMemoryStore()
	calls := 0
	handler := NewIdempotencyMiddleware(store).Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusCreated)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), keyedPost("/api/v1/postings", "k1"))
	handler.ServeHTTP(httptest.NewRecorder(), keyedPost("/api/v1/postings/TRX-001/reverse", "k1"))

	assert.Equal(t, 2, calls)
}

func TestIdempotencyMiddleware_ReleasesFailedResponses(t *testing.T) {
	store := newMemoryStore()
	calls := 0
	handler := NewIdempotencyMiddleware(store).Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusConflict)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, keyedPost("/api/v1/postings", "k-fail"))
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, []string{"/api/v1/postings|k-fail"}, store.released)

	handler.ServeHTTP(httptest.NewRecorder(), keyedPost("/api/v1/postings", "k-fail"))
	assert.Equal(t, 2, calls, "released key is retried")
}

func TestIdempotencyMiddleware_InFlightConflict(t *testing.T) {
	store := newMemoryStore()
	store.values["/api/v1/postings|k-busy"] = []byte(pendingMarker)
	called := false
	handler := NewIdempotencyMiddleware(store).Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, keyedPost("/api/v1/postings", "k-busy"))

	assert.False(t, called)
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestIdempotencyMiddleware_StoreError(t *testing.T) {
	store := newMemoryStore()
	store.checkErr = context.DeadlineExceeded
	called := false
	handler := NewIdempotencyMiddleware(store).Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, keyedPost("/api/v1/postings", "k-err"))

	assert.False(t, called, "handler should not be called when store errors")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestIdempotencyMiddleware_PassThrough(t *testing.T) {
	store := newMemoryStore()
	calls := 0
	handler := NewIdempotencyMiddleware(store).Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/postings", nil))
	get := httptest.NewRequest(http.MethodGet, "/api/v1/postings/TRX-001", nil)
	get.Header.Set(IdempotencyKeyHeader, "k1")
	handler.ServeHTTP(httptest.NewRecorder(), get)

	assert.Equal(t, 2, calls)
	assert.Empty(t, store.values)
}
