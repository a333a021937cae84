// Package http implements the request execution core: one logical API
// operation becomes a sequence of physical HTTP attempts with auth,
// retry/backoff, and error classification applied.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/irvingpop/honeycomb-api/internal/auth"
	"github.com/irvingpop/honeycomb-api/internal/constants"
	"github.com/irvingpop/honeycomb-api/pkg/honeycomb"
)

// defaultUserAgent identifies this library to the API.
const defaultUserAgent = "honeycomb-api-go"

// Request describes one logical API operation.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response is the decoded outcome of a successful operation. Body is nil for
// 204 responses.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client executes logical operations against the API. It holds no mutable
// state across calls; concurrent use is safe as long as the underlying
// transport supports concurrent requests, which net/http does.
type Client struct {
	baseURL   string
	strategy  auth.Strategy
	retry     *retryablehttp.Client
	policy    *Policy
	logger    honeycomb.Logger
	debug     bool
	userAgent string
}

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	logger    honeycomb.Logger
	debug     bool
	userAgent string
	timeout   time.Duration
	retry     *honeycomb.RetryConfig
}

// WithLogger sets the structured logger.
func WithLogger(logger honeycomb.Logger) Option {
	return func(o *clientOptions) { o.logger = logger }
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(o *clientOptions) { o.debug = debug }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) { o.userAgent = userAgent }
}

// WithTimeout sets the per-attempt timeout. Each physical attempt gets a
// fresh budget; compose with the retry config for the worst-case wall clock.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) { o.timeout = timeout }
}

// WithRetryConfig tunes retry/backoff behavior.
func WithRetryConfig(config *honeycomb.RetryConfig) Option {
	return func(o *clientOptions) { o.retry = config }
}

// NewClient creates a request execution client for the given endpoint and
// auth strategy. A nil strategy sends unauthenticated requests, which is
// only useful in tests.
func NewClient(baseURL string, strategy auth.Strategy, opts ...Option) *Client {
	options := &clientOptions{
		userAgent: defaultUserAgent,
		timeout:   constants.DefaultHTTPTimeout,
	}

	for _, opt := range opts {
		opt(options)
	}

	policy := NewPolicy(options.retry)

	rc := retryablehttp.NewClient()
	rc.Logger = nil
	rc.RetryMax = policy.MaxRetries
	rc.RetryWaitMin = policy.BaseDelay
	rc.RetryWaitMax = policy.MaxDelay
	rc.CheckRetry = policy.CheckRetry
	rc.Backoff = policy.Backoff
	// Hand the last response back after exhaustion so it can be classified
	// instead of surfacing retryablehttp's generic "giving up" error.
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	rc.HTTPClient.Timeout = options.timeout

	return &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		strategy:  strategy,
		retry:     rc,
		policy:    policy,
		logger:    options.logger,
		debug:     options.debug,
		userAgent: options.userAgent,
	}
}

// Do executes one logical operation: auth, retries, and classification are
// applied internally. On a non-2xx terminal outcome both the response and a
// classified *honeycomb.APIError are returned; transport failures return a
// classified error alone.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	opID := uuid.NewString()
	c.debugLog("HTTP Request", map[string]interface{}{
		"operation_id": opID,
		"method":       req.Method,
		"path":         req.Path,
	})

	httpResp, err := c.retry.Do(httpReq)
	if err != nil {
		apiErr := honeycomb.ClassifyTransport(err)
		c.debugLog("HTTP Transport Error", map[string]interface{}{
			"operation_id": opID,
			"kind":         string(apiErr.Kind),
			"error":        apiErr.Message,
		})

		return nil, apiErr
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, honeycomb.ClassifyTransport(err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
	}

	if httpResp.StatusCode != http.StatusNoContent {
		resp.Body = body
	}

	c.debugLog("HTTP Response", map[string]interface{}{
		"operation_id": opID,
		"method":       req.Method,
		"path":         req.Path,
		"status_code":  httpResp.StatusCode,
	})

	if httpResp.StatusCode >= http.StatusBadRequest {
		return resp, honeycomb.Classify(httpResp.StatusCode, httpResp.Header, body)
	}

	return resp, nil
}

// buildRequest assembles the physical request template shared by all
// attempts of the operation.
func (c *Client) buildRequest(ctx context.Context, req *Request) (*retryablehttp.Request, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var rawBody []byte

	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		rawBody = encoded
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, rawBody)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if rawBody != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	for name, value := range req.Headers {
		httpReq.Header.Set(name, value)
	}

	if c.strategy != nil {
		c.strategy.Apply(httpReq.Header)
	}

	return httpReq, nil
}

func (c *Client) debugLog(msg string, fields map[string]interface{}) {
	if c.debug && c.logger != nil {
		c.logger.Debug(msg, fields)
	}
}

// Get executes a GET operation.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post executes a POST operation.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put executes a PUT operation.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch executes a PATCH operation.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete executes a DELETE operation.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}
