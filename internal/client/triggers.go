package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/irvingpop/honeycomb-api/internal/http"
	"github.com/irvingpop/honeycomb-api/pkg/honeycomb"
)

// TriggersClient implements honeycomb.TriggersClient. Requests are validated
// against the API's documented bounds before any network I/O.
type TriggersClient struct {
	httpClient *http.Client
}

// NewTriggersClient creates a new triggers client.
func NewTriggersClient(httpClient *http.Client) *TriggersClient {
	return &TriggersClient{httpClient: httpClient}
}

// List implements honeycomb.TriggersClient.List.
func (c *TriggersClient) List(ctx context.Context, dataset string) ([]honeycomb.Trigger, error) {
	resp, err := c.httpClient.Get(ctx, "/1/triggers/"+url.PathEscape(dataset), nil)
	if err != nil {
		return nil, fmt.Errorf("listing triggers: %w", err)
	}

	var triggers []honeycomb.Trigger

	err = json.Unmarshal(resp.Body, &triggers)
	if err != nil {
		return nil, fmt.Errorf("parsing triggers list: %w", err)
	}

	return triggers, nil
}

// Get implements honeycomb.TriggersClient.Get.
func (c *TriggersClient) Get(ctx context.Context, dataset, id string) (*honeycomb.Trigger, error) {
	resp, err := c.httpClient.Get(ctx, "/1/triggers/"+url.PathEscape(dataset)+"/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting trigger: %w", err)
	}

	var trigger honeycomb.Trigger

	err = json.Unmarshal(resp.Body, &trigger)
	if err != nil {
		return nil, fmt.Errorf("parsing trigger: %w", err)
	}

	return &trigger, nil
}

// prepare validates the request and reduces recipients to their reference
// shape. The returned request is a shallow copy; the caller's value is never
// mutated.
func prepareTriggerRequest(request *honeycomb.TriggerCreateRequest) (*honeycomb.TriggerCreateRequest, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	prepared := *request
	prepared.Recipients = honeycomb.ReferenceRecipients(request.Recipients)

	return &prepared, nil
}

// Create implements honeycomb.TriggersClient.Create.
func (c *TriggersClient) Create(ctx context.Context, dataset string, request *honeycomb.TriggerCreateRequest) (*honeycomb.Trigger, error) {
	prepared, err := prepareTriggerRequest(request)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, "/1/triggers/"+url.PathEscape(dataset), prepared)
	if err != nil {
		return nil, fmt.Errorf("creating trigger: %w", err)
	}

	var trigger honeycomb.Trigger

	err = json.Unmarshal(resp.Body, &trigger)
	if err != nil {
		return nil, fmt.Errorf("parsing trigger response: %w", err)
	}

	return &trigger, nil
}

// Update implements honeycomb.TriggersClient.Update.
func (c *TriggersClient) Update(ctx context.Context, dataset, id string, request *honeycomb.TriggerCreateRequest) (*honeycomb.Trigger, error) {
	prepared, err := prepareTriggerRequest(request)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, "/1/triggers/"+url.PathEscape(dataset)+"/"+id, prepared)
	if err != nil {
		return nil, fmt.Errorf("updating trigger: %w", err)
	}

	var trigger honeycomb.Trigger

	err = json.Unmarshal(resp.Body, &trigger)
	if err != nil {
		return nil, fmt.Errorf("parsing trigger response: %w", err)
	}

	return &trigger, nil
}

// Delete implements honeycomb.TriggersClient.Delete.
func (c *TriggersClient) Delete(ctx context.Context, dataset, id string) error {
	_, err := c.httpClient.Delete(ctx, "/1/triggers/"+url.PathEscape(dataset)+"/"+id)
	if err != nil {
		return fmt.Errorf("deleting trigger: %w", err)
	}

	return nil
}
