package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/irvingpop/honeycomb-api/internal/constants"
	"github.com/irvingpop/honeycomb-api/pkg/honeycomb"
)

// NewAPIKeysCommand creates the api-keys command group. These commands talk
// to the v2 management API and require a management key pair.
func NewAPIKeysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "api-keys",
		Aliases: []string{"api-key", "keys"},
		Short:   "Manage API keys (management API)",
		Long:    "List, create, and disable API keys through the v2 management API",
	}

	cmd.AddCommand(newAPIKeysListCommand())
	cmd.AddCommand(newAPIKeysCreateCommand())
	cmd.AddCommand(newAPIKeysDisableCommand())

	return cmd
}

func newAPIKeysListCommand() *cobra.Command {
	var team string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all API keys of a team",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			keys, err := client.APIKeys().ListAll(context.Background(), team)
			if err != nil {
				return fmt.Errorf("listing api keys: %w", err)
			}

			if handled, err := encodeOutput(keys); handled {
				return err
			}

			if len(keys) == 0 {
				fmt.Println("No API keys found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Name", "ID", "Type", "Environment", "Disabled")

			for _, key := range keys {
				_ = table.Append(key.Name, key.ID, key.KeyType, key.Environment.Slug, yesNo(key.Disabled))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&team, "team", "", "team slug")
	_ = cmd.MarkFlagRequired("team")

	return cmd
}

func newAPIKeysCreateCommand() *cobra.Command {
	var team, keyType, environment string

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create an API key",
		Long:  "Create an API key. The secret is printed once and cannot be retrieved again.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return constants.ErrNameRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			key, err := client.APIKeys().Create(context.Background(), team, &honeycomb.APIKeyCreateRequest{
				Name:            args[0],
				KeyType:         keyType,
				EnvironmentSlug: environment,
			})
			if err != nil {
				return fmt.Errorf("creating api key: %w", err)
			}

			if handled, err := encodeOutput(key); handled {
				return err
			}

			fmt.Printf("Created API key '%s' (id: %s)\n", key.Name, key.ID)

			if key.Secret != "" {
				fmt.Printf("Secret (shown once): %s\n", key.Secret)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&team, "team", "", "team slug")
	cmd.Flags().StringVar(&keyType, "type", "configuration", "key type")
	cmd.Flags().StringVar(&environment, "environment", "", "environment slug")
	_ = cmd.MarkFlagRequired("team")

	return cmd
}

func newAPIKeysDisableCommand() *cobra.Command {
	var team string

	cmd := &cobra.Command{
		Use:   "disable ID",
		Short: "Disable an API key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			disabled := true

			key, err := client.APIKeys().Update(context.Background(), team, args[0], &honeycomb.APIKeyUpdateRequest{
				Disabled: &disabled,
			})
			if err != nil {
				return fmt.Errorf("disabling api key: %w", err)
			}

			fmt.Printf("Disabled API key '%s' (id: %s)\n", key.Name, key.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&team, "team", "", "team slug")
	_ = cmd.MarkFlagRequired("team")

	return cmd
}
