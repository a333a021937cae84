package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/irvingpop/honeycomb-api/internal/constants"
)

// Config represents the persisted CLI configuration.
type Config struct {
	APIKey           string `json:"api_key,omitempty"           yaml:"api_key,omitempty"`
	ManagementKey    string `json:"management_key,omitempty"    yaml:"management_key,omitempty"`
	ManagementSecret string `json:"management_secret,omitempty" yaml:"management_secret,omitempty"`
	APIURL           string `json:"api_url,omitempty"           yaml:"api_url,omitempty"`
	Dataset          string `json:"dataset,omitempty"           yaml:"dataset,omitempty"`
	Output           string `json:"output,omitempty"            yaml:"output,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage hny CLI configuration stored in ~/.hny/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	cmd.AddCommand(newConfigSetKeyCommand())

	return cmd
}

func configFilePath() (string, error) {
	if used := viper.ConfigFileUsed(); used != "" {
		return used, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	return filepath.Join(home, ".hny", "config.yml"), nil
}

func loadConfig() (*Config, error) {
	path, err := configFilePath()
	if err != nil {
		return nil, err
	}

	config := &Config{}

	data, err := os.ReadFile(path) // #nosec G304 -- path is the user's own config file
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}

		return nil, fmt.Errorf("reading config file: %w", err)
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return config, nil
}

func saveConfig(config *Config) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

func mask(value string) string {
	if value == "" {
		return ""
	}

	return constants.MaskedSecret
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration with secrets masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}

			masked := *config
			masked.APIKey = mask(config.APIKey)
			masked.ManagementSecret = mask(config.ManagementSecret)

			if handled, err := encodeOutput(masked); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Key", "Value")
			_ = table.Append("api_key", masked.APIKey)
			_ = table.Append("management_key", config.ManagementKey)
			_ = table.Append("management_secret", masked.ManagementSecret)
			_ = table.Append("api_url", config.APIURL)
			_ = table.Append("dataset", config.Dataset)
			_ = table.Append("output", config.Output)

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func setConfigValue(config *Config, key, value string) error {
	switch key {
	case "api_key":
		config.APIKey = value
	case "management_key":
		config.ManagementKey = value
	case "management_secret":
		config.ManagementSecret = value
	case "api_url":
		config.APIURL = value
	case "dataset":
		config.Dataset = value
	case "output":
		if value != constants.FormatTable && value != constants.FormatJSON && value != constants.FormatYAML {
			return fmt.Errorf("%w: %s", constants.ErrUnknownOutputFormat, value)
		}

		config.Output = value
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}

			if err := setConfigValue(config, args[0], args[1]); err != nil {
				return err
			}

			if err := saveConfig(config); err != nil {
				return err
			}

			fmt.Printf("Set %s\n", args[0])

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}

			if err := setConfigValue(config, args[0], ""); err != nil {
				return err
			}

			if err := saveConfig(config); err != nil {
				return err
			}

			fmt.Printf("Unset %s\n", args[0])

			return nil
		},
	}
}

func newConfigSetKeyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-key",
		Short: "Set the API key interactively",
		Long:  "Prompt for the API key without echoing it to the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print("API key: ")

			keyBytes, err := term.ReadPassword(int(syscall.Stdin))

			fmt.Println()

			if err != nil {
				return fmt.Errorf("reading api key: %w", err)
			}

			config, err := loadConfig()
			if err != nil {
				return err
			}

			config.APIKey = string(keyBytes)

			if err := saveConfig(config); err != nil {
				return err
			}

			fmt.Println("API key saved")

			return nil
		},
	}
}
