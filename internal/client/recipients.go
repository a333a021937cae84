package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/irvingpop/honeycomb-api/internal/http"
	"github.com/irvingpop/honeycomb-api/pkg/honeycomb"
)

// RecipientsClient implements honeycomb.RecipientsClient. Recipients are team
// scoped and shared between triggers and burn alerts.
type RecipientsClient struct {
	httpClient *http.Client
}

// NewRecipientsClient creates a new recipients client.
func NewRecipientsClient(httpClient *http.Client) *RecipientsClient {
	return &RecipientsClient{httpClient: httpClient}
}

// List implements honeycomb.RecipientsClient.List.
func (c *RecipientsClient) List(ctx context.Context) ([]honeycomb.Recipient, error) {
	resp, err := c.httpClient.Get(ctx, "/1/recipients", nil)
	if err != nil {
		return nil, fmt.Errorf("listing recipients: %w", err)
	}

	var recipients []honeycomb.Recipient

	err = json.Unmarshal(resp.Body, &recipients)
	if err != nil {
		return nil, fmt.Errorf("parsing recipients list: %w", err)
	}

	return recipients, nil
}

// Get implements honeycomb.RecipientsClient.Get.
func (c *RecipientsClient) Get(ctx context.Context, id string) (*honeycomb.Recipient, error) {
	resp, err := c.httpClient.Get(ctx, "/1/recipients/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting recipient: %w", err)
	}

	var recipient honeycomb.Recipient

	err = json.Unmarshal(resp.Body, &recipient)
	if err != nil {
		return nil, fmt.Errorf("parsing recipient: %w", err)
	}

	return &recipient, nil
}

// Create implements honeycomb.RecipientsClient.Create.
func (c *RecipientsClient) Create(ctx context.Context, request *honeycomb.Recipient) (*honeycomb.Recipient, error) {
	resp, err := c.httpClient.Post(ctx, "/1/recipients", request)
	if err != nil {
		return nil, fmt.Errorf("creating recipient: %w", err)
	}

	var recipient honeycomb.Recipient

	err = json.Unmarshal(resp.Body, &recipient)
	if err != nil {
		return nil, fmt.Errorf("parsing recipient response: %w", err)
	}

	return &recipient, nil
}

// Update implements honeycomb.RecipientsClient.Update.
func (c *RecipientsClient) Update(ctx context.Context, id string, request *honeycomb.Recipient) (*honeycomb.Recipient, error) {
	resp, err := c.httpClient.Put(ctx, "/1/recipients/"+id, request)
	if err != nil {
		return nil, fmt.Errorf("updating recipient: %w", err)
	}

	var recipient honeycomb.Recipient

	err = json.Unmarshal(resp.Body, &recipient)
	if err != nil {
		return nil, fmt.Errorf("parsing recipient response: %w", err)
	}

	return &recipient, nil
}

// Delete implements honeycomb.RecipientsClient.Delete.
func (c *RecipientsClient) Delete(ctx context.Context, id string) error {
	_, err := c.httpClient.Delete(ctx, "/1/recipients/"+id)
	if err != nil {
		return fmt.Errorf("deleting recipient: %w", err)
	}

	return nil
}
