package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/irvingpop/honeycomb-api/internal/http"
	"github.com/irvingpop/honeycomb-api/pkg/honeycomb"
)

// DatasetsClient implements honeycomb.DatasetsClient. Get responses are
// served from the optional metadata cache; writes invalidate the cached
// entry for the affected slug.
type DatasetsClient struct {
	httpClient *http.Client
	cache      honeycomb.Cache
	cacheTTL   time.Duration
}

// NewDatasetsClient creates a new datasets client.
func NewDatasetsClient(httpClient *http.Client, cache honeycomb.Cache, cacheTTL time.Duration) *DatasetsClient {
	return &DatasetsClient{
		httpClient: httpClient,
		cache:      cache,
		cacheTTL:   cacheTTL,
	}
}

func datasetCacheKey(slug string) string {
	return "/1/datasets/" + slug
}

// List implements honeycomb.DatasetsClient.List.
func (c *DatasetsClient) List(ctx context.Context) ([]honeycomb.Dataset, error) {
	resp, err := c.httpClient.Get(ctx, "/1/datasets", nil)
	if err != nil {
		return nil, fmt.Errorf("listing datasets: %w", err)
	}

	var datasets []honeycomb.Dataset

	err = json.Unmarshal(resp.Body, &datasets)
	if err != nil {
		return nil, fmt.Errorf("parsing datasets list: %w", err)
	}

	return datasets, nil
}

// Get implements honeycomb.DatasetsClient.Get.
func (c *DatasetsClient) Get(ctx context.Context, slug string) (*honeycomb.Dataset, error) {
	key := datasetCacheKey(slug)

	if entry, err := c.cache.Get(ctx, key); err == nil {
		var dataset honeycomb.Dataset
		if err := json.Unmarshal(entry.Data, &dataset); err == nil {
			return &dataset, nil
		}
	}

	resp, err := c.httpClient.Get(ctx, "/1/datasets/"+url.PathEscape(slug), nil)
	if err != nil {
		return nil, fmt.Errorf("getting dataset: %w", err)
	}

	var dataset honeycomb.Dataset

	err = json.Unmarshal(resp.Body, &dataset)
	if err != nil {
		return nil, fmt.Errorf("parsing dataset: %w", err)
	}

	_ = c.cache.Set(ctx, key, &honeycomb.CacheEntry{
		Data:      resp.Body,
		ExpiresAt: time.Now().Add(c.cacheTTL),
	})

	return &dataset, nil
}

// Create implements honeycomb.DatasetsClient.Create.
func (c *DatasetsClient) Create(ctx context.Context, request *honeycomb.DatasetCreateRequest) (*honeycomb.Dataset, error) {
	resp, err := c.httpClient.Post(ctx, "/1/datasets", request)
	if err != nil {
		return nil, fmt.Errorf("creating dataset: %w", err)
	}

	var dataset honeycomb.Dataset

	err = json.Unmarshal(resp.Body, &dataset)
	if err != nil {
		return nil, fmt.Errorf("parsing dataset response: %w", err)
	}

	return &dataset, nil
}

// Update implements honeycomb.DatasetsClient.Update.
func (c *DatasetsClient) Update(ctx context.Context, slug string, request *honeycomb.DatasetUpdateRequest) (*honeycomb.Dataset, error) {
	resp, err := c.httpClient.Put(ctx, "/1/datasets/"+url.PathEscape(slug), request)
	if err != nil {
		return nil, fmt.Errorf("updating dataset: %w", err)
	}

	var dataset honeycomb.Dataset

	err = json.Unmarshal(resp.Body, &dataset)
	if err != nil {
		return nil, fmt.Errorf("parsing dataset response: %w", err)
	}

	_ = c.cache.Delete(ctx, datasetCacheKey(slug))

	return &dataset, nil
}

// Delete implements honeycomb.DatasetsClient.Delete.
func (c *DatasetsClient) Delete(ctx context.Context, slug string) error {
	_, err := c.httpClient.Delete(ctx, "/1/datasets/"+url.PathEscape(slug))
	if err != nil {
		return fmt.Errorf("deleting dataset: %w", err)
	}

	_ = c.cache.Delete(ctx, datasetCacheKey(slug))

	return nil
}
