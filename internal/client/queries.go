package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/irvingpop/honeycomb-api/internal/constants"
	"github.com/irvingpop/honeycomb-api/internal/http"
	"github.com/irvingpop/honeycomb-api/pkg/honeycomb"
)

// ErrPollTimeout is returned when a query result does not complete within the
// polling budget.
var ErrPollTimeout = errors.New("query result polling timed out")

// QueriesClient implements honeycomb.QueriesClient. Query execution is a
// two-step protocol: persist the spec, create a result, then poll the result
// until the server marks it complete.
type QueriesClient struct {
	httpClient   *http.Client
	pollInterval time.Duration
	pollTimeout  time.Duration
}

// NewQueriesClient creates a new queries client.
func NewQueriesClient(httpClient *http.Client) *QueriesClient {
	return &QueriesClient{
		httpClient:   httpClient,
		pollInterval: constants.DefaultPollInterval,
		pollTimeout:  constants.DefaultPollTimeout,
	}
}

// Create implements honeycomb.QueriesClient.Create.
func (c *QueriesClient) Create(ctx context.Context, dataset string, query honeycomb.QueryInput) (*honeycomb.SavedQuery, error) {
	spec, err := query.Resolve()
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, "/1/queries/"+url.PathEscape(dataset), spec)
	if err != nil {
		return nil, fmt.Errorf("creating query: %w", err)
	}

	var saved honeycomb.SavedQuery

	err = json.Unmarshal(resp.Body, &saved)
	if err != nil {
		return nil, fmt.Errorf("parsing query response: %w", err)
	}

	return &saved, nil
}

// Get implements honeycomb.QueriesClient.Get.
func (c *QueriesClient) Get(ctx context.Context, dataset, id string) (*honeycomb.SavedQuery, error) {
	resp, err := c.httpClient.Get(ctx, "/1/queries/"+url.PathEscape(dataset)+"/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting query: %w", err)
	}

	var saved honeycomb.SavedQuery

	err = json.Unmarshal(resp.Body, &saved)
	if err != nil {
		return nil, fmt.Errorf("parsing query: %w", err)
	}

	return &saved, nil
}

// CreateResult implements honeycomb.QueriesClient.CreateResult.
func (c *QueriesClient) CreateResult(ctx context.Context, dataset string, request *honeycomb.QueryResultCreateRequest) (*honeycomb.QueryResult, error) {
	resp, err := c.httpClient.Post(ctx, "/1/query_results/"+url.PathEscape(dataset), request)
	if err != nil {
		return nil, fmt.Errorf("creating query result: %w", err)
	}

	var result honeycomb.QueryResult

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing query result response: %w", err)
	}

	return &result, nil
}

// GetResult implements honeycomb.QueriesClient.GetResult.
func (c *QueriesClient) GetResult(ctx context.Context, dataset, id string) (*honeycomb.QueryResult, error) {
	resp, err := c.httpClient.Get(ctx, "/1/query_results/"+url.PathEscape(dataset)+"/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting query result: %w", err)
	}

	var result honeycomb.QueryResult

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing query result: %w", err)
	}

	return &result, nil
}

// PollResult implements honeycomb.QueriesClient.PollResult. It re-fetches the
// result on a fixed interval until the server marks it complete, the polling
// budget runs out, or ctx is cancelled.
func (c *QueriesClient) PollResult(ctx context.Context, dataset, id string) (*honeycomb.QueryResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.pollTimeout)
	defer cancel()

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		result, err := c.GetResult(ctx, dataset, id)
		if err != nil {
			return nil, err
		}

		if result.Complete {
			return result, nil
		}

		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return nil, fmt.Errorf("%w after %s", ErrPollTimeout, c.pollTimeout)
			}

			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// Run implements honeycomb.QueriesClient.Run: create the query, create a
// result for it, and poll to completion.
func (c *QueriesClient) Run(ctx context.Context, dataset string, query honeycomb.QueryInput) (*honeycomb.QueryResult, error) {
	saved, err := c.Create(ctx, dataset, query)
	if err != nil {
		return nil, err
	}

	result, err := c.CreateResult(ctx, dataset, &honeycomb.QueryResultCreateRequest{QueryID: saved.ID})
	if err != nil {
		return nil, err
	}

	if result.Complete {
		return result, nil
	}

	return c.PollResult(ctx, dataset, result.ID)
}
