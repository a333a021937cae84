package honeycomb_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irvingpop/honeycomb-api/pkg/honeycomb"
)

func TestClassify_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		kind   honeycomb.ErrorKind
	}{
		{400, honeycomb.ErrorKindValidation},
		{401, honeycomb.ErrorKindAuth},
		{403, honeycomb.ErrorKindForbidden},
		{404, honeycomb.ErrorKindNotFound},
		{422, honeycomb.ErrorKindValidation},
		{429, honeycomb.ErrorKindRateLimit},
		{500, honeycomb.ErrorKindServer},
		{502, honeycomb.ErrorKindServer},
		{503, honeycomb.ErrorKindServer},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("status %d", test.status), func(t *testing.T) {
			t.Parallel()

			apiErr := honeycomb.Classify(test.status, http.Header{}, nil)
			assert.Equal(t, test.kind, apiErr.Kind)
			assert.Equal(t, test.status, apiErr.StatusCode)
			assert.NotEmpty(t, apiErr.Message)
		})
	}
}

func TestClassify_NeverPanics(t *testing.T) {
	t.Parallel()

	bodies := [][]byte{
		nil,
		{},
		[]byte("not json"),
		[]byte(`<html>502 Bad Gateway</html>`),
		[]byte(`{"unexpected": true}`),
		[]byte(`[1, 2, 3]`),
	}

	for status := 400; status < 600; status++ {
		for _, body := range bodies {
			apiErr := honeycomb.Classify(status, http.Header{}, body)
			require.NotNil(t, apiErr)
			assert.NotEmpty(t, apiErr.Message)
		}
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClassify_BodyShapes(t *testing.T) {
	t.Parallel()
	t.Run("bare error object", func(t *testing.T) {
		t.Parallel()

		apiErr := honeycomb.Classify(404, http.Header{}, []byte(`{"error": "unknown dataset"}`))
		assert.Equal(t, "unknown dataset", apiErr.Message)
	})

	t.Run("problem detail object", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"type": "about:blank", "title": "Unprocessable Entity", "detail": "name is too long", "status": 422}`)
		apiErr := honeycomb.Classify(422, http.Header{}, body)
		assert.Equal(t, "name is too long", apiErr.Message)
	})

	t.Run("errors array", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"errors": [{"title": "Conflict", "detail": "key already exists"}]}`)
		apiErr := honeycomb.Classify(409, http.Header{}, body)
		assert.Equal(t, "key already exists", apiErr.Message)
	})

	t.Run("validation details from type_detail", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"error": "invalid trigger", "type_detail": [
			{"field": "frequency", "description": "must be at least 60"},
			{"field": "threshold.value", "description": "is required"}
		]}`)

		apiErr := honeycomb.Classify(422, http.Header{}, body)
		assert.Equal(t, honeycomb.ErrorKindValidation, apiErr.Kind)
		require.Len(t, apiErr.Details, 2)
		assert.Equal(t, "frequency", apiErr.Details[0].Field)
		assert.Equal(t, "must be at least 60", apiErr.Details[0].Description)
		assert.Contains(t, apiErr.Error(), "threshold.value: is required")
	})

	t.Run("validation details from errors array pointers", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"errors": [
			{"detail": "must not be empty", "source": {"pointer": "/data/attributes/name"}}
		]}`)

		apiErr := honeycomb.Classify(422, http.Header{}, body)
		require.Len(t, apiErr.Details, 1)
		assert.Equal(t, "name", apiErr.Details[0].Field)
	})
}

func TestClassify_RequestID(t *testing.T) {
	t.Parallel()

	header := http.Header{}
	header.Set("X-Request-Id", "req-abc")

	apiErr := honeycomb.Classify(500, header, nil)
	assert.Equal(t, "req-abc", apiErr.RequestID)
	assert.Contains(t, apiErr.Error(), "req-abc")

	header = http.Header{}
	header.Set("X-Honeycomb-Request-Id", "hny-def")

	apiErr = honeycomb.Classify(500, header, nil)
	assert.Equal(t, "hny-def", apiErr.RequestID)
}

func TestClassify_RetryAfter(t *testing.T) {
	t.Parallel()

	header := http.Header{}
	header.Set("Retry-After", "30")

	apiErr := honeycomb.Classify(429, header, nil)
	assert.Equal(t, 30*time.Second, apiErr.RetryAfter)

	// Non-429 statuses ignore the header.
	apiErr = honeycomb.Classify(503, header, nil)
	assert.Equal(t, time.Duration(0), apiErr.RetryAfter)
}

func TestAPIError_Sentinels(t *testing.T) {
	t.Parallel()

	assert.True(t, honeycomb.IsAuth(honeycomb.Classify(401, http.Header{}, nil)))
	assert.True(t, honeycomb.IsForbidden(honeycomb.Classify(403, http.Header{}, nil)))
	assert.True(t, honeycomb.IsNotFound(honeycomb.Classify(404, http.Header{}, nil)))
	assert.True(t, honeycomb.IsValidation(honeycomb.Classify(422, http.Header{}, nil)))
	assert.True(t, honeycomb.IsRateLimit(honeycomb.Classify(429, http.Header{}, nil)))
	assert.True(t, errors.Is(honeycomb.Classify(500, http.Header{}, nil), honeycomb.ErrServer))

	// Wrapped errors still match.
	wrapped := fmt.Errorf("getting dataset: %w", honeycomb.Classify(404, http.Header{}, nil))
	assert.True(t, honeycomb.IsNotFound(wrapped))
}

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestClassifyTransport(t *testing.T) {
	t.Parallel()
	t.Run("net timeout", func(t *testing.T) {
		t.Parallel()

		apiErr := honeycomb.ClassifyTransport(timeoutError{})
		assert.Equal(t, honeycomb.ErrorKindTimeout, apiErr.Kind)
		assert.Equal(t, 0, apiErr.StatusCode)
	})

	t.Run("context deadline", func(t *testing.T) {
		t.Parallel()

		apiErr := honeycomb.ClassifyTransport(context.DeadlineExceeded)
		assert.Equal(t, honeycomb.ErrorKindTimeout, apiErr.Kind)
	})

	t.Run("connection refused", func(t *testing.T) {
		t.Parallel()

		apiErr := honeycomb.ClassifyTransport(errors.New("connection refused"))
		assert.Equal(t, honeycomb.ErrorKindConnection, apiErr.Kind)
	})

	t.Run("unwraps url.Error", func(t *testing.T) {
		t.Parallel()

		wrapped := &url.Error{Op: "Get", URL: "https://api.honeycomb.io", Err: errors.New("connection refused")}
		apiErr := honeycomb.ClassifyTransport(wrapped)
		assert.Equal(t, "connection refused", apiErr.Message)
	})
}

func TestParseRetryAfter(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"empty", "", 0},
		{"seconds", "30", 30 * time.Second},
		{"fractional seconds", "1.5", 1500 * time.Millisecond},
		{"negative seconds", "-5", 0},
		{"future date", now.Add(time.Minute).Format(http.TimeFormat), time.Minute},
		{"past date", now.Add(-time.Minute).Format(http.TimeFormat), 0},
		{"garbage", "soon", 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.want, honeycomb.ParseRetryAfter(test.value, now))
		})
	}
}
