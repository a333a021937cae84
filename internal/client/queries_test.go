package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/irvingpop/honeycomb-api/internal/http"
	"github.com/irvingpop/honeycomb-api/pkg/honeycomb"
)

func TestQueriesClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/1/queries/production", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var spec honeycomb.QuerySpec

		_ = json.NewDecoder(r.Body).Decode(&spec)
		require.Len(t, spec.Calculations, 1)
		assert.Equal(t, honeycomb.CalculationOpCount, spec.Calculations[0].Op)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(honeycomb.SavedQuery{ID: "query-1", QuerySpec: spec})
	}))
	defer server.Close()

	queries := NewQueriesClient(internalhttp.NewClient(server.URL, nil))

	saved, err := queries.Create(context.Background(), "production", honeycomb.QueryInput{
		Builder: honeycomb.NewQueryBuilder().Count().TimeRange(3600),
	})
	require.NoError(t, err)
	assert.Equal(t, "query-1", saved.ID)
}

func TestQueriesClient_Create_InvalidQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("invalid queries must not reach the server")
	}))
	defer server.Close()

	queries := NewQueriesClient(internalhttp.NewClient(server.URL, nil))

	_, err := queries.Create(context.Background(), "production", honeycomb.QueryInput{
		Builder: honeycomb.NewQueryBuilder().Avg(""),
	})
	require.ErrorIs(t, err, honeycomb.ErrInvalidQuery)
}

func TestQueriesClient_Run_CompletesImmediately(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/1/queries/production":
			_ = json.NewEncoder(w).Encode(honeycomb.SavedQuery{ID: "query-1"})
		case "/1/query_results/production":
			var req honeycomb.QueryResultCreateRequest

			_ = json.NewDecoder(r.Body).Decode(&req)
			assert.Equal(t, "query-1", req.QueryID)

			_ = json.NewEncoder(w).Encode(honeycomb.QueryResult{
				ID:       "result-1",
				Complete: true,
				Data: &honeycomb.QueryResultData{
					Results: []map[string]interface{}{{"COUNT": float64(42)}},
				},
			})
		default:
			t.Errorf("unexpected request to %s", r.URL.Path)
		}
	}))
	defer server.Close()

	queries := NewQueriesClient(internalhttp.NewClient(server.URL, nil))

	result, err := queries.Run(context.Background(), "production", honeycomb.QueryInput{
		Builder: honeycomb.NewQueryBuilder().Count(),
	})
	require.NoError(t, err)
	assert.True(t, result.Complete)
	require.NotNil(t, result.Data)
	assert.Equal(t, float64(42), result.Data.Results[0]["COUNT"])
}

func TestQueriesClient_PollResult_Success(t *testing.T) {
	var polls atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/1/query_results/production/result-1", r.URL.Path)

		_ = json.NewEncoder(w).Encode(honeycomb.QueryResult{
			ID:       "result-1",
			Complete: polls.Add(1) >= 3,
		})
	}))
	defer server.Close()

	queries := NewQueriesClient(internalhttp.NewClient(server.URL, nil))
	queries.pollInterval = 10 * time.Millisecond

	result, err := queries.PollResult(context.Background(), "production", "result-1")
	require.NoError(t, err)
	assert.True(t, result.Complete)
	assert.Equal(t, int64(3), polls.Load())
}

func TestQueriesClient_PollResult_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(honeycomb.QueryResult{ID: "result-1", Complete: false})
	}))
	defer server.Close()

	queries := NewQueriesClient(internalhttp.NewClient(server.URL, nil))
	queries.pollInterval = 10 * time.Millisecond
	queries.pollTimeout = 50 * time.Millisecond

	_, err := queries.PollResult(context.Background(), "production", "result-1")
	require.ErrorIs(t, err, ErrPollTimeout)
}

func TestQueriesClient_PollResult_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(honeycomb.QueryResult{ID: "result-1", Complete: false})
	}))
	defer server.Close()

	queries := NewQueriesClient(internalhttp.NewClient(server.URL, nil))
	queries.pollInterval = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := queries.PollResult(ctx, "production", "result-1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPollTimeout)
}
