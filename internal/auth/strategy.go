// Package auth selects and applies the credential scheme for outgoing
// requests.
package auth

import (
	"errors"
	"net/http"

	"github.com/irvingpop/honeycomb-api/pkg/honeycomb"
)

// Static errors for err113 compliance.
var (
	ErrEmptyAPIKey        = errors.New("API key must not be empty")
	ErrEmptyManagementKey = errors.New("management key and secret must not be empty")
)

// Strategy sets the auth header(s) on an outgoing request. Implementations
// never fail at request time; credential validation happens at construction.
type Strategy interface {
	Apply(header http.Header)
}

// ConfigurationKeyAuth authenticates with a configuration key via the
// X-Honeycomb-Team header.
type ConfigurationKeyAuth struct {
	key string
}

// NewConfigurationKeyAuth validates the key eagerly.
func NewConfigurationKeyAuth(key string) (*ConfigurationKeyAuth, error) {
	if key == "" {
		return nil, ErrEmptyAPIKey
	}

	return &ConfigurationKeyAuth{key: key}, nil
}

// Apply implements Strategy.
func (a *ConfigurationKeyAuth) Apply(header http.Header) {
	header.Set("X-Honeycomb-Team", a.key)
}

// ManagementKeyAuth authenticates with a management key pair via a Bearer
// key:secret Authorization header, as required by the v2 management API.
type ManagementKeyAuth struct {
	key    string
	secret string
}

// NewManagementKeyAuth validates the pair eagerly.
func NewManagementKeyAuth(key, secret string) (*ManagementKeyAuth, error) {
	if key == "" || secret == "" {
		return nil, ErrEmptyManagementKey
	}

	return &ManagementKeyAuth{key: key, secret: secret}, nil
}

// Apply implements Strategy.
func (a *ManagementKeyAuth) Apply(header http.Header) {
	header.Set("Authorization", "Bearer "+a.key+":"+a.secret)
}

// FromConfig picks the strategy matching the configured credential shape.
// Config.Validate has already ruled out ambiguous or missing credentials.
func FromConfig(config *honeycomb.Config) (Strategy, error) {
	if config.APIKey != "" {
		return NewConfigurationKeyAuth(config.APIKey)
	}

	return NewManagementKeyAuth(config.ManagementKey, config.ManagementSecret)
}
