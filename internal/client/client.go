// Package client implements the honeycomb.Client interface as thin resource
// wrappers over the request execution core.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/irvingpop/honeycomb-api/internal/auth"
	"github.com/irvingpop/honeycomb-api/internal/http"
	"github.com/irvingpop/honeycomb-api/pkg/honeycomb"
)

// Client implements honeycomb.Client.
type Client struct {
	httpClient *http.Client

	// Resource clients
	authClient     honeycomb.AuthClient
	datasets       honeycomb.DatasetsClient
	columns        honeycomb.ColumnsClient
	derivedColumns honeycomb.DerivedColumnsClient
	queries        honeycomb.QueriesClient
	triggers       honeycomb.TriggersClient
	boards         honeycomb.BoardsClient
	markers        honeycomb.MarkersClient
	slos           honeycomb.SLOsClient
	burnAlerts     honeycomb.BurnAlertsClient
	recipients     honeycomb.RecipientsClient
	apiKeys        honeycomb.APIKeysClient
	events         honeycomb.EventsClient
}

// buildHTTPOptions translates client config into request core options.
func buildHTTPOptions(config *honeycomb.Config) []http.Option {
	var opts []http.Option

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.Timeout > 0 {
		opts = append(opts, http.WithTimeout(config.Timeout))
	}

	if config.Retry != nil {
		opts = append(opts, http.WithRetryConfig(config.Retry))
	}

	return opts
}

// New creates a Honeycomb API client from config.
func New(config *honeycomb.Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	strategy, err := auth.FromConfig(config)
	if err != nil {
		return nil, err
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = honeycomb.DefaultBaseURL
	}

	cache, err := honeycomb.NewCacheFromConfig(config.Cache)
	if err != nil {
		return nil, fmt.Errorf("building metadata cache: %w", err)
	}

	client := &Client{
		httpClient: http.NewClient(baseURL, strategy, buildHTTPOptions(config)...),
	}

	client.initializeResourceClients(cache, config.Cache.EntryTTL())

	return client, nil
}

// initializeResourceClients wires all resource-specific clients.
func (c *Client) initializeResourceClients(cache honeycomb.Cache, cacheTTL time.Duration) {
	c.datasets = NewDatasetsClient(c.httpClient, cache, cacheTTL)
	c.columns = NewColumnsClient(c.httpClient, cache, cacheTTL)
	c.derivedColumns = NewDerivedColumnsClient(c.httpClient)
	c.queries = NewQueriesClient(c.httpClient)
	c.triggers = NewTriggersClient(c.httpClient)
	c.boards = NewBoardsClient(c.httpClient)
	c.markers = NewMarkersClient(c.httpClient)
	c.slos = NewSLOsClient(c.httpClient)
	c.burnAlerts = NewBurnAlertsClient(c.httpClient)
	c.recipients = NewRecipientsClient(c.httpClient)
	c.apiKeys = NewAPIKeysClient(c.httpClient)
	c.events = NewEventsClient(c.httpClient)
}

// Auth implements honeycomb.Client.Auth.
func (c *Client) Auth() honeycomb.AuthClient {
	if c.authClient == nil {
		c.authClient = &authClient{httpClient: c.httpClient}
	}

	return c.authClient
}

// Datasets implements honeycomb.Client.Datasets.
func (c *Client) Datasets() honeycomb.DatasetsClient { return c.datasets }

// Columns implements honeycomb.Client.Columns.
func (c *Client) Columns() honeycomb.ColumnsClient { return c.columns }

// DerivedColumns implements honeycomb.Client.DerivedColumns.
func (c *Client) DerivedColumns() honeycomb.DerivedColumnsClient { return c.derivedColumns }

// Queries implements honeycomb.Client.Queries.
func (c *Client) Queries() honeycomb.QueriesClient { return c.queries }

// Triggers implements honeycomb.Client.Triggers.
func (c *Client) Triggers() honeycomb.TriggersClient { return c.triggers }

// Boards implements honeycomb.Client.Boards.
func (c *Client) Boards() honeycomb.BoardsClient { return c.boards }

// Markers implements honeycomb.Client.Markers.
func (c *Client) Markers() honeycomb.MarkersClient { return c.markers }

// SLOs implements honeycomb.Client.SLOs.
func (c *Client) SLOs() honeycomb.SLOsClient { return c.slos }

// BurnAlerts implements honeycomb.Client.BurnAlerts.
func (c *Client) BurnAlerts() honeycomb.BurnAlertsClient { return c.burnAlerts }

// Recipients implements honeycomb.Client.Recipients.
func (c *Client) Recipients() honeycomb.RecipientsClient { return c.recipients }

// APIKeys implements honeycomb.Client.APIKeys.
func (c *Client) APIKeys() honeycomb.APIKeysClient { return c.apiKeys }

// Events implements honeycomb.Client.Events.
func (c *Client) Events() honeycomb.EventsClient { return c.events }

// authClient implements honeycomb.AuthClient.
type authClient struct {
	httpClient *http.Client
}

// Whoami implements honeycomb.AuthClient.Whoami.
func (c *authClient) Whoami(ctx context.Context) (*honeycomb.AuthMetadata, error) {
	resp, err := c.httpClient.Get(ctx, "/1/auth", nil)
	if err != nil {
		return nil, fmt.Errorf("getting auth metadata: %w", err)
	}

	var meta honeycomb.AuthMetadata

	err = json.Unmarshal(resp.Body, &meta)
	if err != nil {
		return nil, fmt.Errorf("parsing auth metadata: %w", err)
	}

	return &meta, nil
}
