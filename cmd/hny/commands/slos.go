package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewSLOsCommand creates the slos command group.
func NewSLOsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "slos",
		Aliases: []string{"slo"},
		Short:   "Manage service level objectives",
		Long:    "List and inspect SLOs on a dataset",
	}

	cmd.AddCommand(newSLOsListCommand())
	cmd.AddCommand(newSLOsGetCommand())

	return cmd
}

func newSLOsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [DATASET]",
		Short: "List SLOs of a dataset",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dataset, err := requireDataset(args)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			slos, err := client.SLOs().List(context.Background(), dataset)
			if err != nil {
				return fmt.Errorf("listing slos: %w", err)
			}

			if handled, err := encodeOutput(slos); handled {
				return err
			}

			if len(slos) == 0 {
				fmt.Println("No SLOs found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Name", "ID", "SLI", "Target (ppm)", "Period (days)")

			for _, slo := range slos {
				_ = table.Append(slo.Name, slo.ID, slo.SLI.Alias,
					strconv.Itoa(slo.TargetPerMillion), strconv.Itoa(slo.TimePeriodDays))
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newSLOsGetCommand() *cobra.Command {
	var dataset string

	cmd := &cobra.Command{
		Use:   "get ID",
		Short: "Show an SLO",
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

			slo, err := client.SLOs().Get(context.Background(), ds, args[0])
			if err != nil {
				return fmt.Errorf("getting slo: %w", err)
			}

			if handled, err := encodeOutput(slo); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("Name", slo.Name)
			_ = table.Append("ID", slo.ID)
			_ = table.Append("Description", slo.Description)
			_ = table.Append("SLI", slo.SLI.Alias)
			_ = table.Append("Target (ppm)", strconv.Itoa(slo.TargetPerMillion))
			_ = table.Append("Period (days)", strconv.Itoa(slo.TimePeriodDays))
			_ = table.Append("Created", formatTime(slo.CreatedAt))

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&dataset, "dataset", "", "dataset slug")

	return cmd
}
