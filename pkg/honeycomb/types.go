package honeycomb

import (
	"time"
)

// Dataset represents a Honeycomb dataset.
type Dataset struct {
	Name            string     `json:"name"                       yaml:"name"`
	Slug            string     `json:"slug"                       yaml:"slug"`
	Description     string     `json:"description,omitempty"      yaml:"description,omitempty"`
	ExpandJSONDepth int        `json:"expand_json_depth"          yaml:"expand_json_depth"`
	CreatedAt       *time.Time `json:"created_at,omitempty"       yaml:"created_at,omitempty"`
	LastWrittenAt   *time.Time `json:"last_written_at,omitempty"  yaml:"last_written_at,omitempty"`
	RegularColumns  int        `json:"regular_columns_count"      yaml:"regular_columns_count"`
}

// DatasetCreateRequest is the payload for creating a dataset.
type DatasetCreateRequest struct {
	Name            string `json:"name"                  yaml:"name"`
	Description     string `json:"description,omitempty" yaml:"description,omitempty"`
	ExpandJSONDepth int    `json:"expand_json_depth"     yaml:"expand_json_depth"`
}

// DatasetUpdateRequest is the payload for updating a dataset.
type DatasetUpdateRequest struct {
	Description     string `json:"description"       yaml:"description"`
	ExpandJSONDepth int    `json:"expand_json_depth" yaml:"expand_json_depth"`
}

// Column represents a dataset column.
type Column struct {
	ID            string     `json:"id"                        yaml:"id"`
	KeyName       string     `json:"key_name"                  yaml:"key_name"`
	Type          string     `json:"type"                      yaml:"type"`
	Description   string     `json:"description,omitempty"     yaml:"description,omitempty"`
	Hidden        bool       `json:"hidden"                    yaml:"hidden"`
	CreatedAt     *time.Time `json:"created_at,omitempty"      yaml:"created_at,omitempty"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"      yaml:"updated_at,omitempty"`
	LastWrittenAt *time.Time `json:"last_written,omitempty"    yaml:"last_written,omitempty"`
}

// ColumnCreateRequest is the payload for creating a column.
type ColumnCreateRequest struct {
	KeyName     string `json:"key_name"              yaml:"key_name"`
	Type        string `json:"type,omitempty"        yaml:"type,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Hidden      bool   `json:"hidden"                yaml:"hidden"`
}

// DerivedColumn represents a derived column (calculated field).
type DerivedColumn struct {
	ID          string `json:"id"                    yaml:"id"`
	Alias       string `json:"alias"                 yaml:"alias"`
	Expression  string `json:"expression"            yaml:"expression"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// DerivedColumnRequest is the payload for creating or updating a derived column.
type DerivedColumnRequest struct {
	Alias       string `json:"alias"                 yaml:"alias"`
	Expression  string `json:"expression"            yaml:"expression"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// SavedQuery is a query specification persisted by the API.
type SavedQuery struct {
	ID string `json:"id" yaml:"id"`
	QuerySpec
}

// QueryResult is the asynchronous result of running a saved query.
type QueryResult struct {
	ID       string           `json:"id"       yaml:"id"`
	Complete bool             `json:"complete" yaml:"complete"`
	Data     *QueryResultData `json:"data,omitempty"  yaml:"data,omitempty"`
	Links    QueryResultLinks `json:"links"    yaml:"links"`
}

// QueryResultData holds the computed series and summary rows.
type QueryResultData struct {
	Series  []QueryResultSeries      `json:"series"  yaml:"series"`
	Results []map[string]interface{} `json:"results" yaml:"results"`
}

// QueryResultSeries is one time bucket of computed data.
type QueryResultSeries struct {
	Time time.Time              `json:"time" yaml:"time"`
	Data map[string]interface{} `json:"data" yaml:"data"`
}

// QueryResultLinks holds permalinks for a query result.
type QueryResultLinks struct {
	QueryURL      string `json:"query_url"       yaml:"query_url"`
	GraphImageURL string `json:"graph_image_url" yaml:"graph_image_url"`
}

// QueryResultCreateRequest is the payload for running a saved query.
type QueryResultCreateRequest struct {
	QueryID       string `json:"query_id"                 yaml:"query_id"`
	DisableSeries bool   `json:"disable_series,omitempty" yaml:"disable_series,omitempty"`
	Limit         int    `json:"limit,omitempty"          yaml:"limit,omitempty"`
}

// TriggerThresholdOp is the comparison operator for a trigger threshold.
type TriggerThresholdOp string

// Trigger threshold operators.
const (
	TriggerThresholdOpGT  TriggerThresholdOp = ">"
	TriggerThresholdOpGTE TriggerThresholdOp = ">="
	TriggerThresholdOpLT  TriggerThresholdOp = "<"
	TriggerThresholdOpLTE TriggerThresholdOp = "<="
)

// TriggerThreshold is the threshold a trigger evaluates its query against.
type TriggerThreshold struct {
	Op            TriggerThresholdOp `json:"op"                       yaml:"op"`
	Value         float64            `json:"value"                    yaml:"value"`
	ExceededLimit int                `json:"exceeded_limit,omitempty" yaml:"exceeded_limit,omitempty"`
}

// Trigger represents an alerting trigger attached to a dataset.
type Trigger struct {
	ID          string           `json:"id"                    yaml:"id"`
	Name        string           `json:"name"                  yaml:"name"`
	Description string           `json:"description,omitempty" yaml:"description,omitempty"`
	Threshold   TriggerThreshold `json:"threshold"             yaml:"threshold"`
	Frequency   int              `json:"frequency"             yaml:"frequency"`
	AlertType   string           `json:"alert_type,omitempty"  yaml:"alert_type,omitempty"`
	Query       *QuerySpec       `json:"query,omitempty"       yaml:"query,omitempty"`
	QueryID     string           `json:"query_id,omitempty"    yaml:"query_id,omitempty"`
	Recipients  []Recipient      `json:"recipients,omitempty"  yaml:"recipients,omitempty"`
	Disabled    bool             `json:"disabled"              yaml:"disabled"`
	Triggered   bool             `json:"triggered"             yaml:"triggered"`
	CreatedAt   *time.Time       `json:"created_at,omitempty"  yaml:"created_at,omitempty"`
	UpdatedAt   *time.Time       `json:"updated_at,omitempty"  yaml:"updated_at,omitempty"`
}

// TriggerCreateRequest is the payload for creating or updating a trigger.
// Exactly one of Query or QueryID must be set.
type TriggerCreateRequest struct {
	Name        string           `json:"name"                  yaml:"name"`
	Description string           `json:"description,omitempty" yaml:"description,omitempty"`
	Threshold   TriggerThreshold `json:"threshold"             yaml:"threshold"`
	Frequency   int              `json:"frequency"             yaml:"frequency"`
	AlertType   string           `json:"alert_type,omitempty"  yaml:"alert_type,omitempty"`
	Query       *QuerySpec       `json:"query,omitempty"       yaml:"query,omitempty"`
	QueryID     string           `json:"query_id,omitempty"    yaml:"query_id,omitempty"`
	Recipients  []Recipient      `json:"recipients,omitempty"  yaml:"recipients,omitempty"`
	Disabled    bool             `json:"disabled"              yaml:"disabled"`
}

// Board represents a collection of saved queries displayed together.
type Board struct {
	ID           string       `json:"id"                      yaml:"id"`
	Name         string       `json:"name"                    yaml:"name"`
	Description  string       `json:"description,omitempty"   yaml:"description,omitempty"`
	Style        string       `json:"style,omitempty"         yaml:"style,omitempty"`
	ColumnLayout string       `json:"column_layout,omitempty" yaml:"column_layout,omitempty"`
	Queries      []BoardQuery `json:"queries"                 yaml:"queries"`
	Links        BoardLinks   `json:"links"                   yaml:"links"`
}

// BoardQuery is one panel on a board.
type BoardQuery struct {
	Caption       string         `json:"caption,omitempty"        yaml:"caption,omitempty"`
	Dataset       string         `json:"dataset"                  yaml:"dataset"`
	QueryID       string         `json:"query_id,omitempty"       yaml:"query_id,omitempty"`
	Query         *QuerySpec     `json:"query,omitempty"          yaml:"query,omitempty"`
	QueryStyle    string         `json:"query_style,omitempty"    yaml:"query_style,omitempty"`
	GraphSettings *GraphSettings `json:"graph_settings,omitempty" yaml:"graph_settings,omitempty"`
}

// GraphSettings controls how a board panel is rendered.
type GraphSettings struct {
	LogScale          bool `json:"log_scale"           yaml:"log_scale"`
	OmitMissingValues bool `json:"omit_missing_values" yaml:"omit_missing_values"`
	StackedGraphs     bool `json:"stacked_graphs"      yaml:"stacked_graphs"`
	UTCXAxis          bool `json:"utc_xaxis"           yaml:"utc_xaxis"`
}

// BoardLinks holds permalinks for a board.
type BoardLinks struct {
	BoardURL string `json:"board_url" yaml:"board_url"`
}

// BoardCreateRequest is the payload for creating or updating a board.
type BoardCreateRequest struct {
	Name         string       `json:"name"                    yaml:"name"`
	Description  string       `json:"description,omitempty"   yaml:"description,omitempty"`
	Style        string       `json:"style,omitempty"         yaml:"style,omitempty"`
	ColumnLayout string       `json:"column_layout,omitempty" yaml:"column_layout,omitempty"`
	Queries      []BoardQuery `json:"queries,omitempty"       yaml:"queries,omitempty"`
}

// Marker represents a point-in-time annotation on a dataset.
type Marker struct {
	ID        string     `json:"id"                   yaml:"id"`
	StartTime int64      `json:"start_time"           yaml:"start_time"`
	EndTime   int64      `json:"end_time,omitempty"   yaml:"end_time,omitempty"`
	Message   string     `json:"message,omitempty"    yaml:"message,omitempty"`
	Type      string     `json:"type,omitempty"       yaml:"type,omitempty"`
	URL       string     `json:"url,omitempty"        yaml:"url,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// MarkerCreateRequest is the payload for creating or updating a marker.
type MarkerCreateRequest struct {
	StartTime int64  `json:"start_time,omitempty" yaml:"start_time,omitempty"`
	EndTime   int64  `json:"end_time,omitempty"   yaml:"end_time,omitempty"`
	Message   string `json:"message,omitempty"    yaml:"message,omitempty"`
	Type      string `json:"type,omitempty"       yaml:"type,omitempty"`
	URL       string `json:"url,omitempty"        yaml:"url,omitempty"`
}

// MarkerSetting maps a marker type to a display color.
type MarkerSetting struct {
	ID        string     `json:"id"                   yaml:"id"`
	Type      string     `json:"type"                 yaml:"type"`
	Color     string     `json:"color"                yaml:"color"`
	CreatedAt *time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// SLO represents a service level objective.
type SLO struct {
	ID               string     `json:"id"                    yaml:"id"`
	Name             string     `json:"name"                  yaml:"name"`
	Description      string     `json:"description,omitempty" yaml:"description,omitempty"`
	SLI              SLIRef     `json:"sli"                   yaml:"sli"`
	TimePeriodDays   int        `json:"time_period_days"      yaml:"time_period_days"`
	TargetPerMillion int        `json:"target_per_million"    yaml:"target_per_million"`
	ResetAt          *time.Time `json:"reset_at,omitempty"    yaml:"reset_at,omitempty"`
	CreatedAt        *time.Time `json:"created_at,omitempty"  yaml:"created_at,omitempty"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"  yaml:"updated_at,omitempty"`
}

// SLIRef names the derived column used as a service level indicator.
type SLIRef struct {
	Alias string `json:"alias" yaml:"alias"`
}

// SLOCreateRequest is the payload for creating or updating an SLO.
type SLOCreateRequest struct {
	Name             string `json:"name"                  yaml:"name"`
	Description      string `json:"description,omitempty" yaml:"description,omitempty"`
	SLI              SLIRef `json:"sli"                   yaml:"sli"`
	TimePeriodDays   int    `json:"time_period_days"      yaml:"time_period_days"`
	TargetPerMillion int    `json:"target_per_million"    yaml:"target_per_million"`
}

// BurnAlert represents a burn-rate alert attached to an SLO.
type BurnAlert struct {
	ID                string      `json:"id"                           yaml:"id"`
	AlertType         string      `json:"alert_type,omitempty"         yaml:"alert_type,omitempty"`
	ExhaustionMinutes int         `json:"exhaustion_minutes,omitempty" yaml:"exhaustion_minutes,omitempty"`
	SLO               SLORef      `json:"slo"                          yaml:"slo"`
	Recipients        []Recipient `json:"recipients,omitempty"         yaml:"recipients,omitempty"`
	CreatedAt         *time.Time  `json:"created_at,omitempty"         yaml:"created_at,omitempty"`
	UpdatedAt         *time.Time  `json:"updated_at,omitempty"         yaml:"updated_at,omitempty"`
}

// SLORef identifies the SLO a burn alert belongs to.
type SLORef struct {
	ID string `json:"id" yaml:"id"`
}

// BurnAlertCreateRequest is the payload for creating or updating a burn alert.
type BurnAlertCreateRequest struct {
	AlertType         string      `json:"alert_type,omitempty"         yaml:"alert_type,omitempty"`
	ExhaustionMinutes int         `json:"exhaustion_minutes"           yaml:"exhaustion_minutes"`
	SLO               SLORef      `json:"slo"                          yaml:"slo"`
	Recipients        []Recipient `json:"recipients,omitempty"         yaml:"recipients,omitempty"`
}

// RecipientType identifies the notification channel for a recipient.
type RecipientType string

// Recipient types.
const (
	RecipientTypeEmail     RecipientType = "email"
	RecipientTypeSlack     RecipientType = "slack"
	RecipientTypePagerDuty RecipientType = "pagerduty"
	RecipientTypeWebhook   RecipientType = "webhook"
	RecipientTypeMSTeams   RecipientType = "msteams"
)

// Recipient represents a notification target shared by triggers and burn
// alerts. When referenced from a trigger or burn alert only ID and Type are
// required.
type Recipient struct {
	ID        string            `json:"id,omitempty"         yaml:"id,omitempty"`
	Type      RecipientType     `json:"type,omitempty"       yaml:"type,omitempty"`
	Target    string            `json:"target,omitempty"     yaml:"target,omitempty"`
	Details   *RecipientDetails `json:"details,omitempty"    yaml:"details,omitempty"`
	CreatedAt *time.Time        `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt *time.Time        `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// RecipientDetails carries the channel-specific configuration.
type RecipientDetails struct {
	EmailAddress     string `json:"email_address,omitempty"      yaml:"email_address,omitempty"`
	SlackChannel     string `json:"slack_channel,omitempty"      yaml:"slack_channel,omitempty"`
	WebhookName      string `json:"webhook_name,omitempty"       yaml:"webhook_name,omitempty"`
	WebhookURL       string `json:"webhook_url,omitempty"        yaml:"webhook_url,omitempty"`
	WebhookSecret    string `json:"webhook_secret,omitempty"     yaml:"webhook_secret,omitempty"`
	PDIntegrationKey string `json:"pagerduty_integration_key,omitempty" yaml:"pagerduty_integration_key,omitempty"`
}

// AuthMetadata describes the key used to authenticate, returned by /1/auth.
type AuthMetadata struct {
	APIKeyAccess map[string]bool `json:"api_key_access" yaml:"api_key_access"`
	Environment  NamedSlug       `json:"environment"    yaml:"environment"`
	Team         NamedSlug       `json:"team"           yaml:"team"`
}

// NamedSlug is a name/slug pair used for teams and environments.
type NamedSlug struct {
	Name string `json:"name" yaml:"name"`
	Slug string `json:"slug" yaml:"slug"`
}

// APIKey represents a management API key (v2 API).
type APIKey struct {
	ID          string     `json:"id"                   yaml:"id"`
	Name        string     `json:"name"                 yaml:"name"`
	KeyType     string     `json:"key_type"             yaml:"key_type"`
	Disabled    bool       `json:"disabled"             yaml:"disabled"`
	Secret      string     `json:"secret,omitempty"     yaml:"secret,omitempty"`
	Environment NamedSlug  `json:"environment"          yaml:"environment"`
	CreatedAt   *time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// APIKeyCreateRequest is the payload for creating a management API key.
type APIKeyCreateRequest struct {
	Name            string `json:"name"             yaml:"name"`
	KeyType         string `json:"key_type"         yaml:"key_type"`
	EnvironmentSlug string `json:"environment_slug" yaml:"environment_slug"`
	Disabled        bool   `json:"disabled"         yaml:"disabled"`
}

// APIKeyUpdateRequest is the payload for updating a management API key.
type APIKeyUpdateRequest struct {
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	Disabled *bool  `json:"disabled,omitempty" yaml:"disabled,omitempty"`
}

// Event is a single telemetry event sent to a dataset.
type Event struct {
	Time       *time.Time             `json:"time,omitempty"       yaml:"time,omitempty"`
	SampleRate int                    `json:"samplerate,omitempty" yaml:"samplerate,omitempty"`
	Data       map[string]interface{} `json:"data"                 yaml:"data"`
}

// BatchResult reports per-event status for a batch send.
type BatchResult struct {
	Status int    `json:"status"          yaml:"status"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}
