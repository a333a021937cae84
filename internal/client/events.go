package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/irvingpop/honeycomb-api/internal/http"
	"github.com/irvingpop/honeycomb-api/pkg/honeycomb"
)

// EventsClient implements honeycomb.EventsClient. Single events carry their
// timestamp and sample rate as headers; batch events carry them inline.
type EventsClient struct {
	httpClient *http.Client
}

// NewEventsClient creates a new events client.
func NewEventsClient(httpClient *http.Client) *EventsClient {
	return &EventsClient{httpClient: httpClient}
}

// Send implements honeycomb.EventsClient.Send.
func (c *EventsClient) Send(ctx context.Context, dataset string, event *honeycomb.Event) error {
	headers := map[string]string{}

	if event.Time != nil {
		headers["X-Honeycomb-Event-Time"] = event.Time.Format(time.RFC3339)
	}

	if event.SampleRate > 1 {
		headers["X-Honeycomb-Samplerate"] = strconv.Itoa(event.SampleRate)
	}

	_, err := c.httpClient.Do(ctx, &http.Request{
		Method:  "POST",
		Path:    "/1/events/" + url.PathEscape(dataset),
		Body:    event.Data,
		Headers: headers,
	})
	if err != nil {
		return fmt.Errorf("sending event: %w", err)
	}

	return nil
}

// SendBatch implements honeycomb.EventsClient.SendBatch. The batch endpoint
// returns 200 even when individual events fail; callers must inspect the
// per-event results.
func (c *EventsClient) SendBatch(ctx context.Context, dataset string, events []honeycomb.Event) ([]honeycomb.BatchResult, error) {
	resp, err := c.httpClient.Post(ctx, "/1/batch/"+url.PathEscape(dataset), events)
	if err != nil {
		return nil, fmt.Errorf("sending event batch: %w", err)
	}

	var results []honeycomb.BatchResult

	err = json.Unmarshal(resp.Body, &results)
	if err != nil {
		return nil, fmt.Errorf("parsing batch results: %w", err)
	}

	return results, nil
}
