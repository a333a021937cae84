package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/irvingpop/honeycomb-api/internal/http"
	"github.com/irvingpop/honeycomb-api/pkg/honeycomb"
)

// DerivedColumnsClient implements honeycomb.DerivedColumnsClient.
type DerivedColumnsClient struct {
	httpClient *http.Client
}

// NewDerivedColumnsClient creates a new derived columns client.
func NewDerivedColumnsClient(httpClient *http.Client) *DerivedColumnsClient {
	return &DerivedColumnsClient{httpClient: httpClient}
}

// List implements honeycomb.DerivedColumnsClient.List.
func (c *DerivedColumnsClient) List(ctx context.Context, dataset string) ([]honeycomb.DerivedColumn, error) {
	resp, err := c.httpClient.Get(ctx, "/1/derived_columns/"+url.PathEscape(dataset), nil)
	if err != nil {
		return nil, fmt.Errorf("listing derived columns: %w", err)
	}

	var columns []honeycomb.DerivedColumn

	err = json.Unmarshal(resp.Body, &columns)
	if err != nil {
		return nil, fmt.Errorf("parsing derived columns list: %w", err)
	}

	return columns, nil
}

// Get implements honeycomb.DerivedColumnsClient.Get.
func (c *DerivedColumnsClient) Get(ctx context.Context, dataset, id string) (*honeycomb.DerivedColumn, error) {
	resp, err := c.httpClient.Get(ctx, "/1/derived_columns/"+url.PathEscape(dataset)+"/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting derived column: %w", err)
	}

	var column honeycomb.DerivedColumn

	err = json.Unmarshal(resp.Body, &column)
	if err != nil {
		return nil, fmt.Errorf("parsing derived column: %w", err)
	}

	return &column, nil
}

// Create implements honeycomb.DerivedColumnsClient.Create.
func (c *DerivedColumnsClient) Create(ctx context.Context, dataset string, request *honeycomb.DerivedColumnRequest) (*honeycomb.DerivedColumn, error) {
	resp, err := c.httpClient.Post(ctx, "/1/derived_columns/"+url.PathEscape(dataset), request)
	if err != nil {
		return nil, fmt.Errorf("creating derived column: %w", err)
	}

	var column honeycomb.DerivedColumn

	err = json.Unmarshal(resp.Body, &column)
	if err != nil {
		return nil, fmt.Errorf("parsing derived column response: %w", err)
	}

	return &column, nil
}

// Update implements honeycomb.DerivedColumnsClient.Update.
func (c *DerivedColumnsClient) Update(ctx context.Context, dataset, id string, request *honeycomb.DerivedColumnRequest) (*honeycomb.DerivedColumn, error) {
	resp, err := c.httpClient.Put(ctx, "/1/derived_columns/"+url.PathEscape(dataset)+"/"+id, request)
	if err != nil {
		return nil, fmt.Errorf("updating derived column: %w", err)
	}

	var column honeycomb.DerivedColumn

	err = json.Unmarshal(resp.Body, &column)
	if err != nil {
		return nil, fmt.Errorf("parsing derived column response: %w", err)
	}

	return &column, nil
}

// Delete implements honeycomb.DerivedColumnsClient.Delete.
func (c *DerivedColumnsClient) Delete(ctx context.Context, dataset, id string) error {
	_, err := c.httpClient.Delete(ctx, "/1/derived_columns/"+url.PathEscape(dataset)+"/"+id)
	if err != nil {
		return fmt.Errorf("deleting derived column: %w", err)
	}

	return nil
}
