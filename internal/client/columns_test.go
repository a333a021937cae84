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

func columnFixtures() []honeycomb.Column {
	return []honeycomb.Column{
		{ID: "col-1", KeyName: "duration_ms", Type: "float"},
		{ID: "col-2", KeyName: "status_code", Type: "integer"},
	}
}

func TestColumnsClient_List_CachesResponse(t *testing.T) {
	var hits atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "/1/columns/production", r.URL.Path)

		_ = json.NewEncoder(w).Encode(columnFixtures())
	}))
	defer server.Close()

	columns := NewColumnsClient(internalhttp.NewClient(server.URL, nil), honeycomb.NewMemoryCache(10), time.Minute)

	first, err := columns.List(context.Background(), "production")
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := columns.List(context.Background(), "production")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.Equal(t, int64(1), hits.Load())
}

func TestColumnsClient_GetByKeyName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(columnFixtures())
	}))
	defer server.Close()

	columns := NewColumnsClient(internalhttp.NewClient(server.URL, nil), honeycomb.NewNoOpCache(), time.Minute)

	column, err := columns.GetByKeyName(context.Background(), "production", "status_code")
	require.NoError(t, err)
	assert.Equal(t, "col-2", column.ID)

	_, err = columns.GetByKeyName(context.Background(), "production", "nope")
	require.ErrorIs(t, err, ErrColumnNotFound)
	assert.Contains(t, err.Error(), "nope")
}

func TestColumnsClient_Create_InvalidatesListCache(t *testing.T) {
	var lists atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == "POST" {
			var req honeycomb.ColumnCreateRequest

			_ = json.NewDecoder(r.Body).Decode(&req)
			assert.Equal(t, "error", req.KeyName)

			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(honeycomb.Column{ID: "col-3", KeyName: req.KeyName})

			return
		}

		lists.Add(1)
		_ = json.NewEncoder(w).Encode(columnFixtures())
	}))
	defer server.Close()

	columns := NewColumnsClient(internalhttp.NewClient(server.URL, nil), honeycomb.NewMemoryCache(10), time.Minute)

	_, err := columns.List(context.Background(), "production")
	require.NoError(t, err)

	_, err = columns.Create(context.Background(), "production", &honeycomb.ColumnCreateRequest{KeyName: "error"})
	require.NoError(t, err)

	_, err = columns.List(context.Background(), "production")
	require.NoError(t, err)
	assert.Equal(t, int64(2), lists.Load())
}

func TestColumnsClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/1/columns/production/col-1", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	columns := NewColumnsClient(internalhttp.NewClient(server.URL, nil), honeycomb.NewNoOpCache(), time.Minute)

	require.NoError(t, columns.Delete(context.Background(), "production", "col-1"))
}
