package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewRecipientsCommand creates the recipients command group.
func NewRecipientsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "recipients",
		Aliases: []string{"recipient"},
		Short:   "Manage notification recipients",
		Long:    "List and inspect recipients shared by triggers and burn alerts",
	}

	cmd.AddCommand(newRecipientsListCommand())
	cmd.AddCommand(newRecipientsDeleteCommand())

	return cmd
}

func newRecipientsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recipients",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			recipients, err := client.Recipients().List(context.Background())
			if err != nil {
				return fmt.Errorf("listing recipients: %w", err)
			}

			if handled, err := encodeOutput(recipients); handled {
				return err
			}

			if len(recipients) == 0 {
				fmt.Println("No recipients found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Type", "Target", "Created")

			for _, recipient := range recipients {
				_ = table.Append(recipient.ID, string(recipient.Type),
					recipient.Target, formatTime(recipient.CreatedAt))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newRecipientsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a recipient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Recipients().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("deleting recipient: %w", err)
			}

			fmt.Printf("Deleted recipient '%s'\n", args[0])

			return nil
		},
	}
}
