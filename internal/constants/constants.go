package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default per-attempt timeout for API requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry behavior defaults.
const (
	// DefaultMaxRetries is the default maximum number of retries after the
	// initial attempt.
	DefaultMaxRetries = 3

	// DefaultBaseDelay is the starting backoff delay between retries.
	DefaultBaseDelay = 1 * time.Second

	// DefaultMaxDelay caps the backoff delay between retries.
	DefaultMaxDelay = 30 * time.Second

	// DefaultExponentialBase is the multiplier applied per retry attempt.
	DefaultExponentialBase = 2.0
)

// Query result polling.
const (
	// DefaultPollInterval is used when polling query results.
	DefaultPollInterval = 1 * time.Second

	// DefaultPollTimeout bounds how long query result polling may run.
	DefaultPollTimeout = 2 * time.Minute
)

// Trigger bounds documented by the Honeycomb API. Checked client-side so
// callers fail before network I/O.
const (
	// TriggerMinFrequency is the minimum trigger evaluation frequency in seconds.
	TriggerMinFrequency = 60

	// TriggerMaxFrequency is the maximum trigger evaluation frequency in seconds.
	TriggerMaxFrequency = 86400

	// TriggerMaxTimeRange is the maximum query time range for triggers in seconds.
	TriggerMaxTimeRange = 3600

	// TriggerMinExceededLimit is the minimum threshold exceeded_limit.
	TriggerMinExceededLimit = 1

	// TriggerMaxExceededLimit is the maximum threshold exceeded_limit.
	TriggerMaxExceededLimit = 5
)

// Cache defaults.
const (
	// DefaultCacheSize is the maximum number of entries in the memory cache.
	DefaultCacheSize = 1000

	// DefaultCacheTTL is the default time-to-live for cached entries.
	DefaultCacheTTL = 5 * time.Minute
)

// Display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"
)

// Output format constants.
const (
	// FormatTable for tabular output.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"
)
