package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/irvingpop/honeycomb-api/internal/http"
	"github.com/irvingpop/honeycomb-api/pkg/honeycomb"
)

// Static errors for err113 compliance.
var (
	ErrColumnNotFound = errors.New("column not found")
)

// ColumnsClient implements honeycomb.ColumnsClient. The column list of a
// dataset is served from the optional metadata cache; writes invalidate it.
type ColumnsClient struct {
	httpClient *http.Client
	cache      honeycomb.Cache
	cacheTTL   time.Duration
}

// NewColumnsClient creates a new columns client.
func NewColumnsClient(httpClient *http.Client, cache honeycomb.Cache, cacheTTL time.Duration) *ColumnsClient {
	return &ColumnsClient{
		httpClient: httpClient,
		cache:      cache,
		cacheTTL:   cacheTTL,
	}
}

func columnsCacheKey(dataset string) string {
	return "/1/columns/" + dataset
}

// List implements honeycomb.ColumnsClient.List.
func (c *ColumnsClient) List(ctx context.Context, dataset string) ([]honeycomb.Column, error) {
	key := columnsCacheKey(dataset)

	if entry, err := c.cache.Get(ctx, key); err == nil {
		var columns []honeycomb.Column
		if err := json.Unmarshal(entry.Data, &columns); err == nil {
			return columns, nil
		}
	}

	resp, err := c.httpClient.Get(ctx, "/1/columns/"+url.PathEscape(dataset), nil)
	if err != nil {
		return nil, fmt.Errorf("listing columns: %w", err)
	}

	var columns []honeycomb.Column

	err = json.Unmarshal(resp.Body, &columns)
	if err != nil {
		return nil, fmt.Errorf("parsing columns list: %w", err)
	}

	_ = c.cache.Set(ctx, key, &honeycomb.CacheEntry{
		Data:      resp.Body,
		ExpiresAt: time.Now().Add(c.cacheTTL),
	})

	return columns, nil
}

// Get implements honeycomb.ColumnsClient.Get.
func (c *ColumnsClient) Get(ctx context.Context, dataset, id string) (*honeycomb.Column, error) {
	resp, err := c.httpClient.Get(ctx, "/1/columns/"+url.PathEscape(dataset)+"/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting column: %w", err)
	}

	var column honeycomb.Column

	err = json.Unmarshal(resp.Body, &column)
	if err != nil {
		return nil, fmt.Errorf("parsing column: %w", err)
	}

	return &column, nil
}

// GetByKeyName implements honeycomb.ColumnsClient.GetByKeyName.
func (c *ColumnsClient) GetByKeyName(ctx context.Context, dataset, keyName string) (*honeycomb.Column, error) {
	columns, err := c.List(ctx, dataset)
	if err != nil {
		return nil, err
	}

	for i := range columns {
		if columns[i].KeyName == keyName {
			return &columns[i], nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrColumnNotFound, keyName)
}

// Create implements honeycomb.ColumnsClient.Create.
func (c *ColumnsClient) Create(ctx context.Context, dataset string, request *honeycomb.ColumnCreateRequest) (*honeycomb.Column, error) {
	resp, err := c.httpClient.Post(ctx, "/1/columns/"+url.PathEscape(dataset), request)
	if err != nil {
		return nil, fmt.Errorf("creating column: %w", err)
	}

	var column honeycomb.Column

	err = json.Unmarshal(resp.Body, &column)
	if err != nil {
		return nil, fmt.Errorf("parsing column response: %w", err)
	}

	_ = c.cache.Delete(ctx, columnsCacheKey(dataset))

	return &column, nil
}

// Update implements honeycomb.ColumnsClient.Update.
func (c *ColumnsClient) Update(ctx context.Context, dataset, id string, request *honeycomb.ColumnCreateRequest) (*honeycomb.Column, error) {
	resp, err := c.httpClient.Put(ctx, "/1/columns/"+url.PathEscape(dataset)+"/"+id, request)
	if err != nil {
		return nil, fmt.Errorf("updating column: %w", err)
	}

	var column honeycomb.Column

	err = json.Unmarshal(resp.Body, &column)
	if err != nil {
		return nil, fmt.Errorf("parsing column response: %w", err)
	}

	_ = c.cache.Delete(ctx, columnsCacheKey(dataset))

	return &column, nil
}

// Delete implements honeycomb.ColumnsClient.Delete.
func (c *ColumnsClient) Delete(ctx context.Context, dataset, id string) error {
	_, err := c.httpClient.Delete(ctx, "/1/columns/"+url.PathEscape(dataset)+"/"+id)
	if err != nil {
		return fmt.Errorf("deleting column: %w", err)
	}

	_ = c.cache.Delete(ctx, columnsCacheKey(dataset))

	return nil
}
