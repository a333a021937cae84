package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewAuthCommand creates the auth command group.
func NewAuthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Inspect authentication",
		Long:  "Inspect the key used to authenticate against the API",
	}

	cmd.AddCommand(newAuthWhoamiCommand())

	return cmd
}

func newAuthWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated team and environment",
		Long:  "Display the team, environment, and access scopes of the configured key",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			meta, err := client.Auth().Whoami(context.Background())
			if err != nil {
				return fmt.Errorf("fetching auth metadata: %w", err)
			}

			if handled, err := encodeOutput(meta); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("Team", meta.Team.Name)
			_ = table.Append("Team Slug", meta.Team.Slug)
			_ = table.Append("Environment", meta.Environment.Name)
			_ = table.Append("Environment Slug", meta.Environment.Slug)

			for scope, allowed := range meta.APIKeyAccess {
				_ = table.Append("Access: "+scope, yesNo(allowed))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}
