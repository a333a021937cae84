package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irvingpop/honeycomb-api/internal/auth"
	hnyhttp "github.com/irvingpop/honeycomb-api/internal/http"
	"github.com/irvingpop/honeycomb-api/pkg/honeycomb"
)

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

func newTestStrategy(t *testing.T) auth.Strategy {
	t.Helper()

	strategy, err := auth.NewConfigurationKeyAuth("test-key")
	require.NoError(t, err)

	return strategy
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/1/datasets", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "test-key", request.Header.Get("X-Honeycomb-Team"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))

			response := []map[string]string{{"name": "prod", "slug": "prod"}}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		client := hnyhttp.NewClient(server.URL, newTestStrategy(t))

		resp, err := client.Do(context.Background(), &hnyhttp.Request{
			Method: "GET",
			Path:   "/1/datasets",
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result []map[string]string

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, "prod", result[0]["slug"])
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "5", request.URL.Query().Get("page[size]"))
			_, _ = writer.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := hnyhttp.NewClient(server.URL, newTestStrategy(t))

		query := url.Values{}
		query.Set("page[size]", "5")

		resp, err := client.Get(context.Background(), "/2/teams/acme/api-keys", query)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with JSON body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]string

			err := json.NewDecoder(request.Body).Decode(&body)
			require.NoError(t, err)
			assert.Equal(t, "checkout", body["name"])

			writer.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(writer).Encode(body)
		}))
		defer server.Close()

		client := hnyhttp.NewClient(server.URL, newTestStrategy(t))

		resp, err := client.Post(context.Background(), "/1/datasets", map[string]string{"name": "checkout"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "2024-01-01T00:00:00Z", request.Header.Get("X-Honeycomb-Event-Time"))
			_, _ = writer.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := hnyhttp.NewClient(server.URL, newTestStrategy(t))

		_, err := client.Do(context.Background(), &hnyhttp.Request{
			Method:  "POST",
			Path:    "/1/events/prod",
			Body:    map[string]string{"key": "value"},
			Headers: map[string]string{"X-Honeycomb-Event-Time": "2024-01-01T00:00:00Z"},
		})
		require.NoError(t, err)
	})

	t.Run("error response is classified", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("X-Request-Id", "req-123")
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"error": "dataset not found"}`))
		}))
		defer server.Close()

		client := hnyhttp.NewClient(server.URL, newTestStrategy(t))

		resp, err := client.Get(context.Background(), "/1/datasets/missing", nil)
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var apiErr *honeycomb.APIError

		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, honeycomb.ErrorKindNotFound, apiErr.Kind)
		assert.Equal(t, "dataset not found", apiErr.Message)
		assert.Equal(t, "req-123", apiErr.RequestID)
		assert.True(t, honeycomb.IsNotFound(err))
	})

	t.Run("204 response has nil body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		client := hnyhttp.NewClient(server.URL, newTestStrategy(t))

		resp, err := client.Delete(context.Background(), "/1/datasets/old")
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		assert.Nil(t, resp.Body)
	})

	t.Run("debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`{}`))
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := hnyhttp.NewClient(server.URL, newTestStrategy(t),
			hnyhttp.WithLogger(logger), hnyhttp.WithDebug(true))

		_, err := client.Get(context.Background(), "/1/auth", nil)
		require.NoError(t, err)
		require.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
	})

	t.Run("connection failure is classified", func(t *testing.T) {
		t.Parallel()

		client := hnyhttp.NewClient("http://127.0.0.1:1", newTestStrategy(t),
			hnyhttp.WithRetryConfig(&honeycomb.RetryConfig{
				MaxRetries: 1,
				BaseDelay:  time.Millisecond,
			}))

		_, err := client.Get(context.Background(), "/1/auth", nil)
		require.Error(t, err)

		var apiErr *honeycomb.APIError

		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, honeycomb.ErrorKindConnection, apiErr.Kind)
		assert.Equal(t, 0, apiErr.StatusCode)
	})
}

func TestClient_Methods(t *testing.T) {
	t.Parallel()

	var lastMethod atomic.Value

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		lastMethod.Store(request.Method)
		_, _ = writer.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := hnyhttp.NewClient(server.URL, newTestStrategy(t))
	ctx := context.Background()

	_, err := client.Get(ctx, "/1/x", nil)
	require.NoError(t, err)
	assert.Equal(t, "GET", lastMethod.Load())

	_, err = client.Post(ctx, "/1/x", nil)
	require.NoError(t, err)
	assert.Equal(t, "POST", lastMethod.Load())

	_, err = client.Put(ctx, "/1/x", nil)
	require.NoError(t, err)
	assert.Equal(t, "PUT", lastMethod.Load())

	_, err = client.Patch(ctx, "/1/x", nil)
	require.NoError(t, err)
	assert.Equal(t, "PATCH", lastMethod.Load())

	_, err = client.Delete(ctx, "/1/x")
	require.NoError(t, err)
	assert.Equal(t, "DELETE", lastMethod.Load())
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Retries(t *testing.T) {
	t.Parallel()
	t.Run("retries 429 then succeeds", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if attempts.Add(1) == 1 {
				writer.Header().Set("Retry-After", "0")
				writer.WriteHeader(http.StatusTooManyRequests)

				return
			}

			_, _ = writer.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := hnyhttp.NewClient(server.URL, newTestStrategy(t),
			hnyhttp.WithRetryConfig(&honeycomb.RetryConfig{
				MaxRetries: 3,
				BaseDelay:  time.Millisecond,
				MaxDelay:   5 * time.Millisecond,
			}))

		resp, err := client.Get(context.Background(), "/1/datasets", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, int32(2), attempts.Load())
	})

	t.Run("exhausts retries on persistent 500", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writer.WriteHeader(http.StatusInternalServerError)
			_, _ = writer.Write([]byte(`{"error": "boom"}`))
		}))
		defer server.Close()

		client := hnyhttp.NewClient(server.URL, newTestStrategy(t),
			hnyhttp.WithRetryConfig(&honeycomb.RetryConfig{
				MaxRetries: 3,
				BaseDelay:  time.Millisecond,
				MaxDelay:   5 * time.Millisecond,
			}))

		_, err := client.Get(context.Background(), "/1/datasets", nil)
		require.Error(t, err)

		// Initial attempt plus three retries.
		assert.Equal(t, int32(4), attempts.Load())

		var apiErr *honeycomb.APIError

		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, honeycomb.ErrorKindServer, apiErr.Kind)
		assert.Equal(t, "boom", apiErr.Message)
	})

	t.Run("does not retry 400", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writer.WriteHeader(http.StatusBadRequest)
			_, _ = writer.Write([]byte(`{"error": "bad request"}`))
		}))
		defer server.Close()

		client := hnyhttp.NewClient(server.URL, newTestStrategy(t),
			hnyhttp.WithRetryConfig(&honeycomb.RetryConfig{
				MaxRetries: 3,
				BaseDelay:  time.Millisecond,
			}))

		_, err := client.Get(context.Background(), "/1/datasets", nil)
		require.Error(t, err)
		assert.Equal(t, int32(1), attempts.Load())
	})

	t.Run("cancelled context stops retrying", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		client := hnyhttp.NewClient(server.URL, newTestStrategy(t))

		_, err := client.Get(ctx, "/1/datasets", nil)
		require.Error(t, err)
	})
}
