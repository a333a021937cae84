package constants

import "errors"

// Configuration errors.
var (
	ErrNoAPIKeyConfigured  = errors.New("no API key configured, use 'hny config set-key' or set HNY_API_KEY")
	ErrUnknownConfigKey    = errors.New("unknown configuration key")
	ErrUnknownOutputFormat = errors.New("unknown output format")
)

// Required flag errors.
var (
	ErrDatasetRequired   = errors.New("--dataset flag is required")
	ErrNameRequired      = errors.New("--name flag is required")
	ErrColumnRequired    = errors.New("--column flag is required")
	ErrMessageRequired   = errors.New("--message flag is required")
	ErrThresholdRequired = errors.New("--threshold flag is required")
)
