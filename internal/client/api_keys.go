package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/irvingpop/honeycomb-api/internal/http"
	"github.com/irvingpop/honeycomb-api/pkg/honeycomb"
)

// APIKeysClient implements honeycomb.APIKeysClient against the v2 management
// API. v2 wraps single resources in a data envelope and paginates lists with
// an opaque cursor.
type APIKeysClient struct {
	httpClient *http.Client
}

// NewAPIKeysClient creates a new API keys client.
func NewAPIKeysClient(httpClient *http.Client) *APIKeysClient {
	return &APIKeysClient{httpClient: httpClient}
}

// envelope is the v2 single-resource response wrapper.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

func apiKeysPath(team string) string {
	return "/2/teams/" + url.PathEscape(team) + "/api-keys"
}

func unmarshalEnvelope(body []byte, target interface{}) error {
	var env envelope

	if err := json.Unmarshal(body, &env); err != nil {
		return err
	}

	return json.Unmarshal(env.Data, target)
}

// List implements honeycomb.APIKeysClient.List.
func (c *APIKeysClient) List(ctx context.Context, team string, params *honeycomb.ListParams) (*honeycomb.Page[honeycomb.APIKey], error) {
	resp, err := c.httpClient.Get(ctx, apiKeysPath(team), params.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing api keys: %w", err)
	}

	var page honeycomb.Page[honeycomb.APIKey]

	err = json.Unmarshal(resp.Body, &page)
	if err != nil {
		return nil, fmt.Errorf("parsing api keys page: %w", err)
	}

	return &page, nil
}

// ListAll implements honeycomb.APIKeysClient.ListAll by draining the cursor.
func (c *APIKeysClient) ListAll(ctx context.Context, team string) ([]honeycomb.APIKey, error) {
	it := honeycomb.NewPageIterator(func(ctx context.Context, params *honeycomb.ListParams) (*honeycomb.Page[honeycomb.APIKey], error) {
		return c.List(ctx, team, params)
	}, nil)

	return it.All(ctx)
}

// Get implements honeycomb.APIKeysClient.Get.
func (c *APIKeysClient) Get(ctx context.Context, team, id string) (*honeycomb.APIKey, error) {
	resp, err := c.httpClient.Get(ctx, apiKeysPath(team)+"/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting api key: %w", err)
	}

	var key honeycomb.APIKey

	err = unmarshalEnvelope(resp.Body, &key)
	if err != nil {
		return nil, fmt.Errorf("parsing api key: %w", err)
	}

	return &key, nil
}

// Create implements honeycomb.APIKeysClient.Create. The secret is only
// present in this response; it cannot be retrieved again.
func (c *APIKeysClient) Create(ctx context.Context, team string, request *honeycomb.APIKeyCreateRequest) (*honeycomb.APIKey, error) {
	resp, err := c.httpClient.Post(ctx, apiKeysPath(team), request)
	if err != nil {
		return nil, fmt.Errorf("creating api key: %w", err)
	}

	var key honeycomb.APIKey

	err = unmarshalEnvelope(resp.Body, &key)
	if err != nil {
		return nil, fmt.Errorf("parsing api key response: %w", err)
	}

	return &key, nil
}

// Update implements honeycomb.APIKeysClient.Update.
func (c *APIKeysClient) Update(ctx context.Context, team, id string, request *honeycomb.APIKeyUpdateRequest) (*honeycomb.APIKey, error) {
	resp, err := c.httpClient.Patch(ctx, apiKeysPath(team)+"/"+id, request)
	if err != nil {
		return nil, fmt.Errorf("updating api key: %w", err)
	}

	var key honeycomb.APIKey

	err = unmarshalEnvelope(resp.Body, &key)
	if err != nil {
		return nil, fmt.Errorf("parsing api key response: %w", err)
	}

	return &key, nil
}

// Delete implements honeycomb.APIKeysClient.Delete.
func (c *APIKeysClient) Delete(ctx context.Context, team, id string) error {
	_, err := c.httpClient.Delete(ctx, apiKeysPath(team)+"/"+id)
	if err != nil {
		return fmt.Errorf("deleting api key: %w", err)
	}

	return nil
}
