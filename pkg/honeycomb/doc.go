// Package honeycomb provides types, interfaces, and helpers for working with
// the Honeycomb observability API.
//
// # Overview
//
// The honeycomb package defines the domain types (Dataset, Trigger, Board,
// SLO, Marker, Recipient, ...) and the interfaces for resource-oriented
// clients (DatasetsClient, TriggersClient, ...). A concrete implementation is
// provided by the hnyclient package, which wires configuration, transport,
// authentication, and retries. Most consumers should import hnyclient to
// construct a client and then interact with the resource client interfaces
// exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/irvingpop/honeycomb-api/pkg/hnyclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := hnyclient.NewWithAPIKey(ctx, "your-api-key")
//	  if err != nil { log.Fatal(err) }
//
//	  datasets, err := cli.Datasets().List(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = datasets
//	}
//
// # Building queries
//
// QueryBuilder assembles a query specification through chained calls and
// validates it locally before any network I/O:
//
//	spec, err := honeycomb.NewQueryBuilder().
//	  Count().
//	  Filter("status_code", honeycomb.FilterOpGTE, 500).
//	  GroupBy("service.name").
//	  TimeRange(900).
//	  Build()
//
// BuildTriggerQuery applies the narrower trigger-query rules (exactly one
// calculation, relative time range of at most one hour).
//
// # Errors
//
// Failed API calls return *APIError carrying a semantic kind, the HTTP
// status, a request-correlation id, and field-level validation details when
// the server provides them. Helpers such as IsNotFound, IsRateLimit, and
// IsValidation make it easy to branch on common cases, and errors.Is works
// against the kind sentinels (ErrNotFound, ErrRateLimit, ...).
//
// # Retries
//
// Transient failures (429, 5xx, connection resets, timeouts) are retried
// inside the client with exponential backoff; a server-provided Retry-After
// hint takes precedence over the computed delay. Retries are transparent:
// callers see either a decoded response or one terminal *APIError.
package honeycomb
