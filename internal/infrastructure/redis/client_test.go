package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientSuccess(t *testing.T) {
	s := miniredis.RunT(t)

	ctx := context.Background()
	client, err := NewClient(ctx, fmt.Sprintf("redis://%s", s.Addr()), time.Second)
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, client.Ping(ctx).Err())
	assert.Equal(t, time.Second, client.Options().DialTimeout)
}

func TestNewClientInvalidURL(t *testing.T) {
	_, err := NewClient(context.Background(), "://bad-url", time.Second)
	assert.ErrorContains(t, err, "failed to parse redis URL")
}

func TestNewClientPingFailure(t *testing.T) {
	s := miniredis.RunT(t)
	url := fmt.Sprintf("redis://%s", s.Addr())
	s.Close()

	_, err := NewClient(context.Background(), url, 200*time.Millisecond)
	assert.ErrorContains(t, err, "failed to ping redis")
}
