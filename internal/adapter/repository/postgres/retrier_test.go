package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/corebank/ledgerengine/internal/domain"
)

func fastRetrier(maxRetries int) *Retrier {
	return NewRetrierWithConfig(RetrierConfig{
		MaxRetries:      maxRetries,
		InitialInterval: time.Millisecond,
		MaxInterval:     2 * time.Millisecond,
		MaxElapsedTime:  time.Second,
	}, zerolog.Nop())
}

func TestRetrierRetriesOnRetryableError(t *testing.T) {
	attempts := 0
	err := fastRetrier(2).Retry(context.Background(), func() error {
		attempts++
		if attempts < 2 {
			return &pgconn.PgError{Code: pgErrDeadlock}
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, attempts)
}

func TestRetrierStopsAfterMaxRetries(t *testing.T) {
	attempts := 0
	err := fastRetrier(2).Retry(context.Background(), func() error {
		attempts++
		return fmt.Errorf("%w: TRX-1", domain.ErrConcurrentPosting)
	})

	assert.ErrorIs(t, err, domain.ErrConcurrentPosting)
	assert.Equal(t, 3, attempts, "first attempt plus two retries")
}

func TestRetrierStopsOnPermanentError(t *testing.T) {
	attempts := 0
	err := NewRetrier(zerolog.Nop()).Retry(context.Background(), func() error {
		attempts++
		return domain.ErrBranchDayClosed
	})

	assert.ErrorIs(t, err, domain.ErrBranchDayClosed)
	assert.Equal(t, 1, attempts)
}

func TestRetrierHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	attempts := 0
	err := fastRetrier(5).Retry(ctx, func() error {
		attempts++
		return &pgconn.PgError{Code: pgErrSerializationFailure}
	})

	assert.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestIsRetryableError(t *testing.T) {
	assert.True(t, isRetryableError(&pgconn.PgError{Code: pgErrDeadlock}))
	assert.True(t, isRetryableError(fmt.Errorf("post: %w", &pgconn.PgError{Code: pgErrSerializationFailure})))
	assert.True(t, isRetryableError(fmt.Errorf("%w: TRX-1", domain.ErrConcurrentPosting)))
	assert.False(t, isRetryableError(&pgconn.PgError{Code: pgErrUniqueViolation}))
	assert.False(t, isRetryableError(errors.New("other")))
}
