package honeycomb

import (
	"context"
	"errors"
	"time"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.honeycomb.io"

// Static errors for client construction.
var (
	ErrConfigRequired     = errors.New("config is required")
	ErrNoCredentials      = errors.New("either APIKey or ManagementKey/ManagementSecret is required")
	ErrConflictingAuth    = errors.New("APIKey and ManagementKey are mutually exclusive")
	ErrManagementKeyPair  = errors.New("ManagementKey and ManagementSecret must both be set")
	ErrInvalidRetryConfig = errors.New("invalid retry configuration")
)

// Logger interface for structured logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// RetryConfig tunes the retry/backoff behavior of the request core. The
// zero value of any field falls back to the documented default. Created at
// client construction and immutable afterwards.
//
// Worst-case wall clock for one logical operation is
// (per-attempt timeout + backoff delay) × (MaxRetries + 1); size outer
// context timeouts accordingly.
type RetryConfig struct {
	// MaxRetries is the number of retries after the initial attempt.
	MaxRetries int
	// BaseDelay is the backoff delay before the first retry.
	BaseDelay time.Duration
	// MaxDelay caps the computed backoff delay. Must be >= BaseDelay.
	MaxDelay time.Duration
	// ExponentialBase is the per-attempt delay multiplier. Must be > 1.0.
	ExponentialBase float64
	// RetryableStatuses is the set of HTTP statuses worth retrying.
	// Defaults to 429, 500, 502, 503, 504.
	RetryableStatuses []int
}

// Config configures a Honeycomb API client.
//
// Exactly one credential shape must be provided: APIKey (a configuration
// key, sent as X-Honeycomb-Team) or ManagementKey+ManagementSecret (sent as
// a Bearer key:secret pair, required for the v2 management API).
type Config struct {
	// APIKey is a Honeycomb configuration key.
	APIKey string
	// ManagementKey is the key id of a management key pair.
	ManagementKey string
	// ManagementSecret is the secret of a management key pair.
	ManagementSecret string

	// BaseURL overrides the production endpoint. Trailing slashes are trimmed.
	BaseURL string
	// Timeout is the per-attempt HTTP timeout; retries get a fresh budget.
	Timeout time.Duration
	// Retry tunes retry/backoff behavior. Nil uses defaults.
	Retry *RetryConfig

	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// Debug enables request/response logging through Logger.
	Debug bool
	// Logger receives structured log output. Nil disables logging.
	Logger Logger

	// Cache configures the optional metadata cache used for dataset and
	// column lookups. Nil disables caching.
	Cache *CacheConfig
}

// Validate checks the credential shape eagerly, at construction time.
func (c *Config) Validate() error {
	if c == nil {
		return ErrConfigRequired
	}

	hasKey := c.APIKey != ""
	hasMgmt := c.ManagementKey != "" || c.ManagementSecret != ""

	switch {
	case hasKey && hasMgmt:
		return ErrConflictingAuth
	case hasMgmt && (c.ManagementKey == "" || c.ManagementSecret == ""):
		return ErrManagementKeyPair
	case !hasKey && !hasMgmt:
		return ErrNoCredentials
	}

	return nil
}

// AuthClient exposes metadata about the authenticated key.
type AuthClient interface {
	Whoami(ctx context.Context) (*AuthMetadata, error)
}

// DatasetsClient manages datasets.
type DatasetsClient interface {
	List(ctx context.Context) ([]Dataset, error)
	Get(ctx context.Context, slug string) (*Dataset, error)
	Create(ctx context.Context, request *DatasetCreateRequest) (*Dataset, error)
	Update(ctx context.Context, slug string, request *DatasetUpdateRequest) (*Dataset, error)
	Delete(ctx context.Context, slug string) error
}

// ColumnsClient manages dataset columns.
type ColumnsClient interface {
	List(ctx context.Context, dataset string) ([]Column, error)
	Get(ctx context.Context, dataset, id string) (*Column, error)
	GetByKeyName(ctx context.Context, dataset, keyName string) (*Column, error)
	Create(ctx context.Context, dataset string, request *ColumnCreateRequest) (*Column, error)
	Update(ctx context.Context, dataset, id string, request *ColumnCreateRequest) (*Column, error)
	Delete(ctx context.Context, dataset, id string) error
}

// DerivedColumnsClient manages derived columns.
type DerivedColumnsClient interface {
	List(ctx context.Context, dataset string) ([]DerivedColumn, error)
	Get(ctx context.Context, dataset, id string) (*DerivedColumn, error)
	Create(ctx context.Context, dataset string, request *DerivedColumnRequest) (*DerivedColumn, error)
	Update(ctx context.Context, dataset, id string, request *DerivedColumnRequest) (*DerivedColumn, error)
	Delete(ctx context.Context, dataset, id string) error
}

// QueriesClient persists query specifications and runs them asynchronously.
type QueriesClient interface {
	Create(ctx context.Context, dataset string, query QueryInput) (*SavedQuery, error)
	Get(ctx context.Context, dataset, id string) (*SavedQuery, error)
	CreateResult(ctx context.Context, dataset string, request *QueryResultCreateRequest) (*QueryResult, error)
	GetResult(ctx context.Context, dataset, id string) (*QueryResult, error)
	PollResult(ctx context.Context, dataset, id string) (*QueryResult, error)
	Run(ctx context.Context, dataset string, query QueryInput) (*QueryResult, error)
}

// TriggersClient manages alerting triggers.
type TriggersClient interface {
	List(ctx context.Context, dataset string) ([]Trigger, error)
	Get(ctx context.Context, dataset, id string) (*Trigger, error)
	Create(ctx context.Context, dataset string, request *TriggerCreateRequest) (*Trigger, error)
	Update(ctx context.Context, dataset, id string, request *TriggerCreateRequest) (*Trigger, error)
	Delete(ctx context.Context, dataset, id string) error
}

// BoardsClient manages boards.
type BoardsClient interface {
	List(ctx context.Context) ([]Board, error)
	Get(ctx context.Context, id string) (*Board, error)
	Create(ctx context.Context, request *BoardCreateRequest) (*Board, error)
	Update(ctx context.Context, id string, request *BoardCreateRequest) (*Board, error)
	Delete(ctx context.Context, id string) error
}

// MarkersClient manages markers and marker settings.
type MarkersClient interface {
	List(ctx context.Context, dataset string) ([]Marker, error)
	Create(ctx context.Context, dataset string, request *MarkerCreateRequest) (*Marker, error)
	Update(ctx context.Context, dataset, id string, request *MarkerCreateRequest) (*Marker, error)
	Delete(ctx context.Context, dataset, id string) (*Marker, error)
	ListSettings(ctx context.Context, dataset string) ([]MarkerSetting, error)
}

// SLOsClient manages service level objectives.
type SLOsClient interface {
	List(ctx context.Context, dataset string) ([]SLO, error)
	Get(ctx context.Context, dataset, id string) (*SLO, error)
	Create(ctx context.Context, dataset string, request *SLOCreateRequest) (*SLO, error)
	Update(ctx context.Context, dataset, id string, request *SLOCreateRequest) (*SLO, error)
	Delete(ctx context.Context, dataset, id string) error
}

// BurnAlertsClient manages SLO burn alerts.
type BurnAlertsClient interface {
	ListForSLO(ctx context.Context, dataset, sloID string) ([]BurnAlert, error)
	Get(ctx context.Context, dataset, id string) (*BurnAlert, error)
	Create(ctx context.Context, dataset string, request *BurnAlertCreateRequest) (*BurnAlert, error)
	Update(ctx context.Context, dataset, id string, request *BurnAlertCreateRequest) (*BurnAlert, error)
	Delete(ctx context.Context, dataset, id string) error
}

// RecipientsClient manages notification recipients.
type RecipientsClient interface {
	List(ctx context.Context) ([]Recipient, error)
	Get(ctx context.Context, id string) (*Recipient, error)
	Create(ctx context.Context, request *Recipient) (*Recipient, error)
	Update(ctx context.Context, id string, request *Recipient) (*Recipient, error)
	Delete(ctx context.Context, id string) error
}

// APIKeysClient manages API keys through the v2 management API. Requires
// management key credentials.
type APIKeysClient interface {
	List(ctx context.Context, team string, params *ListParams) (*Page[APIKey], error)
	ListAll(ctx context.Context, team string) ([]APIKey, error)
	Get(ctx context.Context, team, id string) (*APIKey, error)
	Create(ctx context.Context, team string, request *APIKeyCreateRequest) (*APIKey, error)
	Update(ctx context.Context, team, id string, request *APIKeyUpdateRequest) (*APIKey, error)
	Delete(ctx context.Context, team, id string) error
}

// EventsClient sends telemetry events.
type EventsClient interface {
	Send(ctx context.Context, dataset string, event *Event) error
	SendBatch(ctx context.Context, dataset string, events []Event) ([]BatchResult, error)
}

// Client is the full Honeycomb API surface.
type Client interface {
	Auth() AuthClient
	Datasets() DatasetsClient
	Columns() ColumnsClient
	DerivedColumns() DerivedColumnsClient
	Queries() QueriesClient
	Triggers() TriggersClient
	Boards() BoardsClient
	Markers() MarkersClient
	SLOs() SLOsClient
	BurnAlerts() BurnAlertsClient
	Recipients() RecipientsClient
	APIKeys() APIKeysClient
	Events() EventsClient
}
