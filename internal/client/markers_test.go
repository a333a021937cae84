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

func TestMarkersClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/1/markers/production", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var req honeycomb.MarkerCreateRequest

		_ = json.NewDecoder(r.Body).Decode(&req)
		assert.Equal(t, "deploy v1.2.3", req.Message)
		assert.Equal(t, "deploy", req.Type)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(honeycomb.Marker{
			ID:        "marker-1",
			StartTime: 1717243200,
			Message:   req.Message,
			Type:      req.Type,
		})
	}))
	defer server.Close()

	markers := NewMarkersClient(internalhttp.NewClient(server.URL, nil))

	marker, err := markers.Create(context.Background(), "production", &honeycomb.MarkerCreateRequest{
		Message: "deploy v1.2.3",
		Type:    "deploy",
	})
	require.NoError(t, err)
	assert.Equal(t, "marker-1", marker.ID)
	assert.Equal(t, int64(1717243200), marker.StartTime)
}

func TestMarkersClient_Delete_EchoesMarker(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/1/markers/production/marker-1", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)

		_ = json.NewEncoder(w).Encode(honeycomb.Marker{ID: "marker-1", Message: "deploy v1.2.3"})
	}))
	defer server.Close()

	markers := NewMarkersClient(internalhttp.NewClient(server.URL, nil))

	marker, err := markers.Delete(context.Background(), "production", "marker-1")
	require.NoError(t, err)
	assert.Equal(t, "deploy v1.2.3", marker.Message)
}

func TestMarkersClient_ListSettings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/1/marker_settings/production", r.URL.Path)

		_ = json.NewEncoder(w).Encode([]honeycomb.MarkerSetting{
			{ID: "setting-1", Type: "deploy", Color: "#F96E11"},
		})
	}))
	defer server.Close()

	markers := NewMarkersClient(internalhttp.NewClient(server.URL, nil))

	settings, err := markers.ListSettings(context.Background(), "production")
	require.NoError(t, err)
	require.Len(t, settings, 1)
	assert.Equal(t, "#F96E11", settings[0].Color)
}
