package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/irvingpop/honeycomb-api/internal/http"
	"github.com/irvingpop/honeycomb-api/pkg/honeycomb"
)

func TestTriggersClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/1/triggers/production", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var req honeycomb.TriggerCreateRequest

		_ = json.NewDecoder(r.Body).Decode(&req)
		assert.Equal(t, "High error rate", req.Name)

		// Recipients with an id are reduced to the bare reference.
		require.Len(t, req.Recipients, 2)
		assert.Equal(t, honeycomb.Recipient{ID: "rcpt-1"}, req.Recipients[0])
		assert.Empty(t, req.Recipients[1].ID)
		assert.Equal(t, honeycomb.RecipientTypeEmail, req.Recipients[1].Type)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(honeycomb.Trigger{ID: "trigger-1", Name: req.Name})
	}))
	defer server.Close()

	triggers := NewTriggersClient(internalhttp.NewClient(server.URL, nil))

	request := &honeycomb.TriggerCreateRequest{
		Name:      "High error rate",
		Threshold: honeycomb.TriggerThreshold{Op: honeycomb.TriggerThresholdOpGT, Value: 100},
		Frequency: 900,
		QueryID:   "query-1",
		Recipients: []honeycomb.Recipient{
			{ID: "rcpt-1", Type: honeycomb.RecipientTypeSlack, Target: "#alerts"},
			{Type: honeycomb.RecipientTypeEmail, Target: "oncall@example.com"},
		},
	}

	trigger, err := triggers.Create(context.Background(), "production", request)
	require.NoError(t, err)
	assert.Equal(t, "trigger-1", trigger.ID)

	// The caller's request is not mutated by recipient reduction.
	assert.Equal(t, "#alerts", request.Recipients[0].Target)
}

func TestTriggersClient_Create_InvalidRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("invalid requests must not reach the server")
	}))
	defer server.Close()

	triggers := NewTriggersClient(internalhttp.NewClient(server.URL, nil))

	_, err := triggers.Create(context.Background(), "production", &honeycomb.TriggerCreateRequest{
		Name:      "Bad frequency",
		Frequency: 10,
		QueryID:   "query-1",
	})
	require.ErrorIs(t, err, honeycomb.ErrInvalidQuery)
}

func TestTriggersClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/1/triggers/production", r.URL.Path)

		_ = json.NewEncoder(w).Encode([]honeycomb.Trigger{
			{ID: "trigger-1", Name: "High error rate", Triggered: true},
			{ID: "trigger-2", Name: "Slow requests"},
		})
	}))
	defer server.Close()

	triggers := NewTriggersClient(internalhttp.NewClient(server.URL, nil))

	list, err := triggers.List(context.Background(), "production")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].Triggered)
}

func TestTriggersClient_Update(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/1/triggers/production/trigger-1", r.URL.Path)
		assert.Equal(t, "PUT", r.Method)

		var req honeycomb.TriggerCreateRequest

		_ = json.NewDecoder(r.Body).Decode(&req)
		assert.True(t, req.Disabled)

		_ = json.NewEncoder(w).Encode(honeycomb.Trigger{ID: "trigger-1", Disabled: true})
	}))
	defer server.Close()

	triggers := NewTriggersClient(internalhttp.NewClient(server.URL, nil))

	trigger, err := triggers.Update(context.Background(), "production", "trigger-1", &honeycomb.TriggerCreateRequest{
		Name:      "High error rate",
		Threshold: honeycomb.TriggerThreshold{Op: honeycomb.TriggerThresholdOpGT, Value: 100},
		Frequency: 900,
		QueryID:   "query-1",
		Disabled:  true,
	})
	require.NoError(t, err)
	assert.True(t, trigger.Disabled)
}

func TestTriggersClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/1/triggers/production/trigger-1", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	triggers := NewTriggersClient(internalhttp.NewClient(server.URL, nil))

	require.NoError(t, triggers.Delete(context.Background(), "production", "trigger-1"))
}
