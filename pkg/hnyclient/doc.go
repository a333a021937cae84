// Package hnyclient provides the primary entry point for constructing a
// Honeycomb API client that implements the honeycomb.Client interface.
//
// It layers configuration, HTTP transport, authentication, and retry behavior
// on top of the resource interfaces and types defined in the honeycomb
// package. Most applications should import hnyclient to build a client, then
// use the returned honeycomb.Client to access resource-specific clients, for
// example Datasets(), Triggers(), Queries(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/irvingpop/honeycomb-api/pkg/honeycomb"
//	  "github.com/irvingpop/honeycomb-api/pkg/hnyclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Minimal: a configuration key.
//	  cli, err := hnyclient.NewWithAPIKey("your-api-key")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with full configuration:
//	  cli, err = hnyclient.New(&honeycomb.Config{
//	    APIKey:  "your-api-key",
//	    Retry:   &honeycomb.RetryConfig{MaxRetries: 5},
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the honeycomb.Client interface
//	  datasets, err := cli.Datasets().List(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = datasets
//	}
//
// # Management API
//
// The v2 management endpoints (API key administration) require a management
// key pair instead of a configuration key. Use NewWithManagementKey, or set
// ManagementKey and ManagementSecret on the config. The two credential shapes
// are mutually exclusive.
//
// # Helpers
//
// The package also provides convenience constructors NewWithAPIKey and
// NewWithManagementKey that wrap New with the appropriate configuration.
package hnyclient
