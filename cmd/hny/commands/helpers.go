package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/irvingpop/honeycomb-api/internal/constants"
	"github.com/irvingpop/honeycomb-api/pkg/honeycomb"
	"github.com/irvingpop/honeycomb-api/pkg/hnyclient"
)

// Output formats.
const (
	OutputFormatJSON = constants.FormatJSON
	OutputFormatYAML = constants.FormatYAML
)

// CreateClient builds an API client from flag, environment, and config file
// values resolved by viper.
func CreateClient() (honeycomb.Client, error) {
	apiKey := viper.GetString("api_key")
	mgmtKey := viper.GetString("management_key")
	mgmtSecret := viper.GetString("management_secret")

	if apiKey == "" && mgmtKey == "" {
		return nil, constants.ErrNoAPIKeyConfigured
	}

	config := &honeycomb.Config{
		APIKey:           apiKey,
		ManagementKey:    mgmtKey,
		ManagementSecret: mgmtSecret,
		BaseURL:          viper.GetString("api_url"),
	}

	return hnyclient.New(config)
}

// requireDataset resolves the dataset slug from args or the --dataset flag.
func requireDataset(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}

	if dataset := viper.GetString("dataset"); dataset != "" {
		return dataset, nil
	}

	return "", constants.ErrDatasetRequired
}

// encodeOutput writes v to stdout in the requested structured format and
// reports whether it handled the output. Table rendering stays with the
// caller.
func encodeOutput(v interface{}) (bool, error) {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		err := encoder.Encode(v)
		if err != nil {
			return true, fmt.Errorf("encoding JSON: %w", err)
		}

		return true, nil
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		err := encoder.Encode(v)
		if err != nil {
			return true, fmt.Errorf("encoding YAML: %w", err)
		}

		return true, nil
	default:
		return false, nil
	}
}

// formatTime renders an optional timestamp for table output.
func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return constants.NotAvailable
	}

	return t.Format("2006-01-02 15:04:05")
}

// yesNo renders a bool for table output.
func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
