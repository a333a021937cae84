package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/irvingpop/honeycomb-api/internal/http"
	"github.com/irvingpop/honeycomb-api/pkg/honeycomb"
)

// BurnAlertsClient implements honeycomb.BurnAlertsClient.
type BurnAlertsClient struct {
	httpClient *http.Client
}

// NewBurnAlertsClient creates a new burn alerts client.
func NewBurnAlertsClient(httpClient *http.Client) *BurnAlertsClient {
	return &BurnAlertsClient{httpClient: httpClient}
}

// ListForSLO implements honeycomb.BurnAlertsClient.ListForSLO. Burn alerts
// are only listable per SLO.
func (c *BurnAlertsClient) ListForSLO(ctx context.Context, dataset, sloID string) ([]honeycomb.BurnAlert, error) {
	query := url.Values{}
	query.Set("slo_id", sloID)

	resp, err := c.httpClient.Get(ctx, "/1/burn_alerts/"+url.PathEscape(dataset), query)
	if err != nil {
		return nil, fmt.Errorf("listing burn alerts: %w", err)
	}

	var alerts []honeycomb.BurnAlert

	err = json.Unmarshal(resp.Body, &alerts)
	if err != nil {
		return nil, fmt.Errorf("parsing burn alerts list: %w", err)
	}

	return alerts, nil
}

// Get implements honeycomb.BurnAlertsClient.Get.
func (c *BurnAlertsClient) Get(ctx context.Context, dataset, id string) (*honeycomb.BurnAlert, error) {
	resp, err := c.httpClient.Get(ctx, "/1/burn_alerts/"+url.PathEscape(dataset)+"/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting burn alert: %w", err)
	}

	var alert honeycomb.BurnAlert

	err = json.Unmarshal(resp.Body, &alert)
	if err != nil {
		return nil, fmt.Errorf("parsing burn alert: %w", err)
	}

	return &alert, nil
}

func prepareBurnAlertRequest(request *honeycomb.BurnAlertCreateRequest) (*honeycomb.BurnAlertCreateRequest, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	prepared := *request
	prepared.Recipients = honeycomb.ReferenceRecipients(request.Recipients)

	return &prepared, nil
}

// Create implements honeycomb.BurnAlertsClient.Create.
func (c *BurnAlertsClient) Create(ctx context.Context, dataset string, request *honeycomb.BurnAlertCreateRequest) (*honeycomb.BurnAlert, error) {
	prepared, err := prepareBurnAlertRequest(request)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, "/1/burn_alerts/"+url.PathEscape(dataset), prepared)
	if err != nil {
		return nil, fmt.Errorf("creating burn alert: %w", err)
	}

	var alert honeycomb.BurnAlert

	err = json.Unmarshal(resp.Body, &alert)
	if err != nil {
		return nil, fmt.Errorf("parsing burn alert response: %w", err)
	}

	return &alert, nil
}

// Update implements honeycomb.BurnAlertsClient.Update.
func (c *BurnAlertsClient) Update(ctx context.Context, dataset, id string, request *honeycomb.BurnAlertCreateRequest) (*honeycomb.BurnAlert, error) {
	prepared, err := prepareBurnAlertRequest(request)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, "/1/burn_alerts/"+url.PathEscape(dataset)+"/"+id, prepared)
	if err != nil {
		return nil, fmt.Errorf("updating burn alert: %w", err)
	}

	var alert honeycomb.BurnAlert

	err = json.Unmarshal(resp.Body, &alert)
	if err != nil {
		return nil, fmt.Errorf("parsing burn alert response: %w", err)
	}

	return &alert, nil
}

// Delete implements honeycomb.BurnAlertsClient.Delete.
func (c *BurnAlertsClient) Delete(ctx context.Context, dataset, id string) error {
	_, err := c.httpClient.Delete(ctx, "/1/burn_alerts/"+url.PathEscape(dataset)+"/"+id)
	if err != nil {
		return fmt.Errorf("deleting burn alert: %w", err)
	}

	return nil
}
