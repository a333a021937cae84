package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewBurnAlertsCommand creates the burn-alerts command group.
func NewBurnAlertsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "burn-alerts",
		Aliases: []string{"burn-alert", "ba"},
		Short:   "Manage SLO burn alerts",
		Long:    "List burn alerts attached to an SLO",
	}

	cmd.AddCommand(newBurnAlertsListCommand())

	return cmd
}

func newBurnAlertsListCommand() *cobra.Command {
	var dataset string

	cmd := &cobra.Command{
		Use:   "list SLO_ID",
		Short: "List burn alerts for an SLO",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := resolveDatasetFlag(dataset)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			alerts, err := client.BurnAlerts().ListForSLO(context.Background(), ds, args[0])
			if err != nil {
				return fmt.Errorf("listing burn alerts: %w", err)
			}

			if handled, err := encodeOutput(alerts); handled {
				return err
			}

			if len(alerts) == 0 {
				fmt.Println("No burn alerts found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Type", "Exhaustion (min)", "Recipients")

			for _, alert := range alerts {
				_ = table.Append(alert.ID, alert.AlertType,
					strconv.Itoa(alert.ExhaustionMinutes), strconv.Itoa(len(alert.Recipients)))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&dataset, "dataset", "", "dataset slug")

	return cmd
}
