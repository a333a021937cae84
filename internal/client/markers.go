package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/irvingpop/honeycomb-api/internal/http"
	"github.com/irvingpop/honeycomb-api/pkg/honeycomb"
)

// MarkersClient implements honeycomb.MarkersClient.
type MarkersClient struct {
	httpClient *http.Client
}

// NewMarkersClient creates a new markers client.
func NewMarkersClient(httpClient *http.Client) *MarkersClient {
	return &MarkersClient{httpClient: httpClient}
}

// List implements honeycomb.MarkersClient.List.
func (c *MarkersClient) List(ctx context.Context, dataset string) ([]honeycomb.Marker, error) {
	resp, err := c.httpClient.Get(ctx, "/1/markers/"+url.PathEscape(dataset), nil)
	if err != nil {
		return nil, fmt.Errorf("listing markers: %w", err)
	}

	var markers []honeycomb.Marker

	err = json.Unmarshal(resp.Body, &markers)
	if err != nil {
		return nil, fmt.Errorf("parsing markers list: %w", err)
	}

	return markers, nil
}

// Create implements honeycomb.MarkersClient.Create.
func (c *MarkersClient) Create(ctx context.Context, dataset string, request *honeycomb.MarkerCreateRequest) (*honeycomb.Marker, error) {
	resp, err := c.httpClient.Post(ctx, "/1/markers/"+url.PathEscape(dataset), request)
	if err != nil {
		return nil, fmt.Errorf("creating marker: %w", err)
	}

	var marker honeycomb.Marker

	err = json.Unmarshal(resp.Body, &marker)
	if err != nil {
		return nil, fmt.Errorf("parsing marker response: %w", err)
	}

	return &marker, nil
}

// Update implements honeycomb.MarkersClient.Update.
func (c *MarkersClient) Update(ctx context.Context, dataset, id string, request *honeycomb.MarkerCreateRequest) (*honeycomb.Marker, error) {
	resp, err := c.httpClient.Put(ctx, "/1/markers/"+url.PathEscape(dataset)+"/"+id, request)
	if err != nil {
		return nil, fmt.Errorf("updating marker: %w", err)
	}

	var marker honeycomb.Marker

	err = json.Unmarshal(resp.Body, &marker)
	if err != nil {
		return nil, fmt.Errorf("parsing marker response: %w", err)
	}

	return &marker, nil
}

// Delete implements honeycomb.MarkersClient.Delete. The API echoes the
// deleted marker back.
func (c *MarkersClient) Delete(ctx context.Context, dataset, id string) (*honeycomb.Marker, error) {
	resp, err := c.httpClient.Delete(ctx, "/1/markers/"+url.PathEscape(dataset)+"/"+id)
	if err != nil {
		return nil, fmt.Errorf("deleting marker: %w", err)
	}

	var marker honeycomb.Marker

	err = json.Unmarshal(resp.Body, &marker)
	if err != nil {
		return nil, fmt.Errorf("parsing marker response: %w", err)
	}

	return &marker, nil
}

// ListSettings implements honeycomb.MarkersClient.ListSettings.
func (c *MarkersClient) ListSettings(ctx context.Context, dataset string) ([]honeycomb.MarkerSetting, error) {
	resp, err := c.httpClient.Get(ctx, "/1/marker_settings/"+url.PathEscape(dataset), nil)
	if err != nil {
		return nil, fmt.Errorf("listing marker settings: %w", err)
	}

	var settings []honeycomb.MarkerSetting

	err = json.Unmarshal(resp.Body, &settings)
	if err != nil {
		return nil, fmt.Errorf("parsing marker settings list: %w", err)
	}

	return settings, nil
}
