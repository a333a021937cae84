package honeycomb

import (
	"context"
	"errors"
	"net/url"
	"strconv"
)

// ErrNoMorePages is returned by PageIterator.NextPage after the last page.
var ErrNoMorePages = errors.New("honeycomb: no more pages")

// ListParams carries cursor pagination parameters for v2 list endpoints.
type ListParams struct {
	// PageSize is the number of items per page. Zero uses the server default.
	PageSize int
	// Cursor is the opaque position returned by a previous page.
	Cursor string
}

// ToValues converts the params to query values.
func (p *ListParams) ToValues() url.Values {
	values := url.Values{}

	if p == nil {
		return values
	}

	if p.PageSize > 0 {
		values.Set("page[size]", strconv.Itoa(p.PageSize))
	}

	if p.Cursor != "" {
		values.Set("page[after]", p.Cursor)
	}

	return values
}

// PageLinks holds the navigation links of a paginated response.
type PageLinks struct {
	Next string `json:"next,omitempty" yaml:"next,omitempty"`
}

// Page is one page of a cursor-paginated list response.
type Page[T any] struct {
	Items []T       `json:"data"  yaml:"data"`
	Links PageLinks `json:"links" yaml:"links"`
}

// NextCursor extracts the cursor for the following page, or "" on the last
// page. The next link is a full URL carrying a page[after] parameter.
func (p *Page[T]) NextCursor() string {
	if p.Links.Next == "" {
		return ""
	}

	parsed, err := url.Parse(p.Links.Next)
	if err != nil {
		return ""
	}

	return parsed.Query().Get("page[after]")
}

// PageFetcher fetches one page for the given params.
type PageFetcher[T any] func(ctx context.Context, params *ListParams) (*Page[T], error)

// PageIterator walks a cursor-paginated list page by page.
type PageIterator[T any] struct {
	fetch    PageFetcher[T]
	params   ListParams
	started  bool
	finished bool
}

// NewPageIterator creates an iterator over the given fetch function. A nil
// params starts from the first page with the server's default page size.
func NewPageIterator[T any](fetch PageFetcher[T], params *ListParams) *PageIterator[T] {
	it := &PageIterator[T]{fetch: fetch}
	if params != nil {
		it.params = *params
	}

	return it
}

// HasMore reports whether another page may be available.
func (it *PageIterator[T]) HasMore() bool {
	return !it.finished
}

// NextPage fetches the next page of items. Returns ErrNoMorePages once the
// list is exhausted.
func (it *PageIterator[T]) NextPage(ctx context.Context) ([]T, error) {
	if it.finished {
		return nil, ErrNoMorePages
	}

	page, err := it.fetch(ctx, &it.params)
	if err != nil {
		return nil, err
	}

	it.started = true

	cursor := page.NextCursor()
	if cursor == "" {
		it.finished = true
	}

	it.params.Cursor = cursor

	return page.Items, nil
}

// All drains the iterator and returns every remaining item.
func (it *PageIterator[T]) All(ctx context.Context) ([]T, error) {
	var items []T

	for it.HasMore() {
		pageItems, err := it.NextPage(ctx)
		if err != nil {
			return nil, err
		}

		items = append(items, pageItems...)
	}

	return items, nil
}
