package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/irvingpop/honeycomb-api/internal/http"
	"github.com/irvingpop/honeycomb-api/pkg/honeycomb"
)

// BoardsClient implements honeycomb.BoardsClient. Boards are environment
// scoped, so no dataset appears in the path.
type BoardsClient struct {
	httpClient *http.Client
}

// NewBoardsClient creates a new boards client.
func NewBoardsClient(httpClient *http.Client) *BoardsClient {
	return &BoardsClient{httpClient: httpClient}
}

// List implements honeycomb.BoardsClient.List.
func (c *BoardsClient) List(ctx context.Context) ([]honeycomb.Board, error) {
	resp, err := c.httpClient.Get(ctx, "/1/boards", nil)
	if err != nil {
		return nil, fmt.Errorf("listing boards: %w", err)
	}

	var boards []honeycomb.Board

	err = json.Unmarshal(resp.Body, &boards)
	if err != nil {
		return nil, fmt.Errorf("parsing boards list: %w", err)
	}

	return boards, nil
}

// Get implements honeycomb.BoardsClient.Get.
func (c *BoardsClient) Get(ctx context.Context, id string) (*honeycomb.Board, error) {
	resp, err := c.httpClient.Get(ctx, "/1/boards/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting board: %w", err)
	}

	var board honeycomb.Board

	err = json.Unmarshal(resp.Body, &board)
	if err != nil {
		return nil, fmt.Errorf("parsing board: %w", err)
	}

	return &board, nil
}

// Create implements honeycomb.BoardsClient.Create.
func (c *BoardsClient) Create(ctx context.Context, request *honeycomb.BoardCreateRequest) (*honeycomb.Board, error) {
	resp, err := c.httpClient.Post(ctx, "/1/boards", request)
	if err != nil {
		return nil, fmt.Errorf("creating board: %w", err)
	}

	var board honeycomb.Board

	err = json.Unmarshal(resp.Body, &board)
	if err != nil {
		return nil, fmt.Errorf("parsing board response: %w", err)
	}

	return &board, nil
}

// Update implements honeycomb.BoardsClient.Update.
func (c *BoardsClient) Update(ctx context.Context, id string, request *honeycomb.BoardCreateRequest) (*honeycomb.Board, error) {
	resp, err := c.httpClient.Put(ctx, "/1/boards/"+id, request)
	if err != nil {
		return nil, fmt.Errorf("updating board: %w", err)
	}

	var board honeycomb.Board

	err = json.Unmarshal(resp.Body, &board)
	if err != nil {
		return nil, fmt.Errorf("parsing board response: %w", err)
	}

	return &board, nil
}

// Delete implements honeycomb.BoardsClient.Delete.
func (c *BoardsClient) Delete(ctx context.Context, id string) error {
	_, err := c.httpClient.Delete(ctx, "/1/boards/"+id)
	if err != nil {
		return fmt.Errorf("deleting board: %w", err)
	}

	return nil
}
