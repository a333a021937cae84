package http_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hnyhttp "github.com/irvingpop/honeycomb-api/internal/http"
	"github.com/irvingpop/honeycomb-api/pkg/honeycomb"
)

func TestNewPolicy_Defaults(t *testing.T) {
	t.Parallel()

	policy := hnyhttp.NewPolicy(nil)

	assert.Equal(t, 3, policy.MaxRetries)
	assert.Equal(t, time.Second, policy.BaseDelay)
	assert.Equal(t, 30*time.Second, policy.MaxDelay)
	assert.InEpsilon(t, 2.0, policy.ExponentialBase, 0.001)

	for _, status := range []int{429, 500, 502, 503, 504} {
		assert.True(t, policy.RetryableStatus(status), "status %d should be retryable", status)
	}

	for _, status := range []int{200, 400, 401, 403, 404, 422} {
		assert.False(t, policy.RetryableStatus(status), "status %d should not be retryable", status)
	}
}

func TestNewPolicy_ClampsMaxDelay(t *testing.T) {
	t.Parallel()

	policy := hnyhttp.NewPolicy(&honeycomb.RetryConfig{
		BaseDelay: 10 * time.Second,
		MaxDelay:  time.Second,
	})

	assert.Equal(t, policy.BaseDelay, policy.MaxDelay)
}

func TestPolicy_Delay(t *testing.T) {
	t.Parallel()

	policy := hnyhttp.NewPolicy(&honeycomb.RetryConfig{
		MaxRetries:      5,
		BaseDelay:       time.Second,
		MaxDelay:        10 * time.Second,
		ExponentialBase: 2.0,
	})

	t.Run("grows exponentially", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 1*time.Second, policy.Delay(0, nil))
		assert.Equal(t, 2*time.Second, policy.Delay(1, nil))
		assert.Equal(t, 4*time.Second, policy.Delay(2, nil))
		assert.Equal(t, 8*time.Second, policy.Delay(3, nil))
	})

	t.Run("caps at max delay", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 10*time.Second, policy.Delay(4, nil))
		assert.Equal(t, 10*time.Second, policy.Delay(20, nil))
	})

	t.Run("server hint wins over backoff", func(t *testing.T) {
		t.Parallel()

		resp := &http.Response{Header: http.Header{"Retry-After": []string{"7"}}}
		assert.Equal(t, 7*time.Second, policy.Delay(0, resp))
	})

	t.Run("hint honored on server errors too", func(t *testing.T) {
		t.Parallel()

		resp := &http.Response{
			StatusCode: http.StatusServiceUnavailable,
			Header:     http.Header{"Retry-After": []string{"3"}},
		}
		assert.Equal(t, 3*time.Second, policy.Delay(0, resp))
	})

	t.Run("http date hint", func(t *testing.T) {
		t.Parallel()

		when := time.Now().Add(5 * time.Second).UTC().Format(http.TimeFormat)
		resp := &http.Response{Header: http.Header{"Retry-After": []string{when}}}

		delay := policy.Delay(0, resp)
		assert.Greater(t, delay, 3*time.Second)
		assert.LessOrEqual(t, delay, 5*time.Second)
	})

	t.Run("malformed hint falls back to backoff", func(t *testing.T) {
		t.Parallel()

		resp := &http.Response{Header: http.Header{"Retry-After": []string{"soon"}}}
		assert.Equal(t, 1*time.Second, policy.Delay(0, resp))
	})
}

func TestPolicy_CheckRetry(t *testing.T) {
	t.Parallel()

	policy := hnyhttp.NewPolicy(nil)
	ctx := context.Background()

	t.Run("cancelled context stops", func(t *testing.T) {
		t.Parallel()

		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		retry, err := policy.CheckRetry(cancelled, nil, nil)
		assert.False(t, retry)
		require.Error(t, err)
	})

	t.Run("retryable status", func(t *testing.T) {
		t.Parallel()

		retry, err := policy.CheckRetry(ctx, &http.Response{StatusCode: 503}, nil)
		assert.True(t, retry)
		require.NoError(t, err)
	})

	t.Run("terminal status", func(t *testing.T) {
		t.Parallel()

		retry, err := policy.CheckRetry(ctx, &http.Response{StatusCode: 404}, nil)
		assert.False(t, retry)
		require.NoError(t, err)
	})

	t.Run("transport error is retryable", func(t *testing.T) {
		t.Parallel()

		retry, err := policy.CheckRetry(ctx, nil, errors.New("connection reset by peer"))
		assert.True(t, retry)
		require.NoError(t, err)
	})
}

func TestPolicy_CustomRetryableStatuses(t *testing.T) {
	t.Parallel()

	policy := hnyhttp.NewPolicy(&honeycomb.RetryConfig{
		RetryableStatuses: []int{429},
	})

	assert.True(t, policy.RetryableStatus(429))
	assert.False(t, policy.RetryableStatus(500))
}
