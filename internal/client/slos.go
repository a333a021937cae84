package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/irvingpop/honeycomb-api/internal/http"
	"github.com/irvingpop/honeycomb-api/pkg/honeycomb"
)

// SLOsClient implements honeycomb.SLOsClient.
type SLOsClient struct {
	httpClient *http.Client
}

// NewSLOsClient creates a new SLOs client.
func NewSLOsClient(httpClient *http.Client) *SLOsClient {
	return &SLOsClient{httpClient: httpClient}
}

// List implements honeycomb.SLOsClient.List.
func (c *SLOsClient) List(ctx context.Context, dataset string) ([]honeycomb.SLO, error) {
	resp, err := c.httpClient.Get(ctx, "/1/slos/"+url.PathEscape(dataset), nil)
	if err != nil {
		return nil, fmt.Errorf("listing slos: %w", err)
	}

	var slos []honeycomb.SLO

	err = json.Unmarshal(resp.Body, &slos)
	if err != nil {
		return nil, fmt.Errorf("parsing slos list: %w", err)
	}

	return slos, nil
}

// Get implements honeycomb.SLOsClient.Get.
func (c *SLOsClient) Get(ctx context.Context, dataset, id string) (*honeycomb.SLO, error) {
	resp, err := c.httpClient.Get(ctx, "/1/slos/"+url.PathEscape(dataset)+"/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting slo: %w", err)
	}

	var slo honeycomb.SLO

	err = json.Unmarshal(resp.Body, &slo)
	if err != nil {
		return nil, fmt.Errorf("parsing slo: %w", err)
	}

	return &slo, nil
}

// Create implements honeycomb.SLOsClient.Create.
func (c *SLOsClient) Create(ctx context.Context, dataset string, request *honeycomb.SLOCreateRequest) (*honeycomb.SLO, error) {
	resp, err := c.httpClient.Post(ctx, "/1/slos/"+url.PathEscape(dataset), request)
	if err != nil {
		return nil, fmt.Errorf("creating slo: %w", err)
	}

	var slo honeycomb.SLO

	err = json.Unmarshal(resp.Body, &slo)
	if err != nil {
		return nil, fmt.Errorf("parsing slo response: %w", err)
	}

	return &slo, nil
}

// Update implements honeycomb.SLOsClient.Update.
func (c *SLOsClient) Update(ctx context.Context, dataset, id string, request *honeycomb.SLOCreateRequest) (*honeycomb.SLO, error) {
	resp, err := c.httpClient.Put(ctx, "/1/slos/"+url.PathEscape(dataset)+"/"+id, request)
	if err != nil {
		return nil, fmt.Errorf("updating slo: %w", err)
	}

	var slo honeycomb.SLO

	err = json.Unmarshal(resp.Body, &slo)
	if err != nil {
		return nil, fmt.Errorf("parsing slo response: %w", err)
	}

	return &slo, nil
}

// Delete implements honeycomb.SLOsClient.Delete.
func (c *SLOsClient) Delete(ctx context.Context, dataset, id string) error {
	_, err := c.httpClient.Delete(ctx, "/1/slos/"+url.PathEscape(dataset)+"/"+id)
	if err != nil {
		return fmt.Errorf("deleting slo: %w", err)
	}

	return nil
}
